package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-engine/internal/adapters/http"
)

func newServeCommand() *cobra.Command {
	var (
		addr  string
		level string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err == nil {
				log.Debug().Msg("loaded .env")
			}
			if addr == "" {
				addr = envOr("SUDOKU_ADDR", ":8080")
			}
			if level == "" {
				level = envOr("SUDOKU_LOG_LEVEL", "info")
			}
			lvl, err := zerolog.ParseLevel(level)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(lvl)

			gin.SetMode(gin.ReleaseMode)
			e := gin.New()
			e.Use(requestLogger(), gin.Recovery())
			httpadapter.New(newService()).Register(e)

			log.Info().Str("addr", addr).Msg("listening")
			return e.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $SUDOKU_ADDR or :8080)")
	cmd.Flags().StringVar(&level, "log-level", "", "debug|info|warn|error (default $SUDOKU_LOG_LEVEL or info)")
	return cmd
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
