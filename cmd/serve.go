package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/abhisek/coursegen/internal/logger"
	"github.com/abhisek/coursegen/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the course generation JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides http.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := buildPipeline(ctx, cfg, st, log)
	if err != nil {
		return err
	}
	defer p.Close()

	addr := cfg.HTTP.Addr
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		addr = a
	}
	srv := server.New(p.Orchestrator, p.Grading, cfg.HTTP.GinMode, log)
	return srv.Run(ctx, addr)
}
