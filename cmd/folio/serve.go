package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"folio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio content as read-only JSON",
	Long: `Start an HTTP server exposing the portfolio over JSON:

  GET /healthz
  GET /api/portfolio
  GET /api/{projects|certifications}
  GET /api/{projects|certifications}/{index}

Item responses carry the resolved image sequence. The listen address comes
from --addr, then $FOLIO_ADDR, then $PORT, then :8080.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	p, err := cfg.Portfolio()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(p, cfg.Addr).Run(ctx)
}
