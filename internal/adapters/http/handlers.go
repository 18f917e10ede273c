package httpadapter

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/usecase"
)

// Handler exposes the engine as a JSON API. Grids cross the boundary as
// plain 9x9 digit arrays with 0 for blanks.
type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/generate", h.Generate)
	v1.POST("/solve", h.Solve)
	v1.POST("/solve/all", h.SolveAll)
	v1.POST("/validate", h.Validate)
}

// ---- Generate ----

type generateReq struct {
	Seed int64 `json:"seed,omitempty"`
}

type generateResp struct {
	Grid       domain.Grid `json:"grid"`
	Solution   domain.Grid `json:"solution"`
	Seed       int64       `json:"seed"`
	Blanks     int         `json:"blanks"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(c.Request.Context(), seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Grid:       p.Grid,
		Solution:   p.Solution,
		Seed:       seed,
		Blanks:     p.Grid.CountBlanks(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Grid domain.Grid `json:"grid"`
}

type solveResp struct {
	Grid       domain.Grid `json:"grid"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) Solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	out, ok, st := h.UC.SolveAny(c.Request.Context(), req.Grid)
	if !ok {
		// Unsolvable input is a normal outcome, not a server fault.
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "no solution",
			"durationMs": st.Duration.Milliseconds(),
			"nodes":      st.Nodes,
		})
		return
	}
	c.JSON(http.StatusOK, solveResp{Grid: out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- SolveAll ----

type solveAllResp struct {
	Grids      []domain.Grid `json:"grids"`
	Count      int           `json:"count"`
	DurationMs int64         `json:"durationMs"`
	Nodes      int           `json:"nodes"`
}

func (h *Handler) SolveAll(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	grids, st := h.UC.SolveAll(c.Request.Context(), req.Grid)
	c.JSON(http.StatusOK, solveAllResp{
		Grids:      grids,
		Count:      len(grids),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) Validate(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts := h.UC.Validate(c.Request.Context(), &req.Grid)
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}
