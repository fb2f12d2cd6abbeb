package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/internal/server"
	"github.com/chainscope/chainscope/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	port    int
	backend string
	noCache bool
}

// newServeCmd creates the serve command. It runs the HTTP graph service
// until interrupted.
func newServeCmd() *cobra.Command {
	opts := serveOpts{port: 8080}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP graph service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", opts.port, "port to listen on")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "trace service URL (overrides config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.backend != "" {
		cfg.BackendURL = opts.backend
	}

	client, err := newTracerClient(cfg, opts.noCache)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:   opts.port,
		Logger: logger,
		Runner: pipeline.NewRunner(client, logger),
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
