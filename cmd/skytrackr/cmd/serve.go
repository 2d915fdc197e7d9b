package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/skytrackr/skytrackr/internal/server"
	"github.com/skytrackr/skytrackr/pkg/constants"
)

var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the enriched star catalog over HTTP",
	Long: `Serve builds the enriched catalog, then starts the read-only API
server. The catalog is fully constructed before the listener opens;
nothing mutates it while the server runs.`,
	Example: `  skytrackr serve
  skytrackr serve --port 8000 --data-dir ./data`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "address to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := application.Logger()

	// Construct fully, then serve.
	instance, err := application.Skytrackr()
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	if host := application.Config().Host; host != "" {
		cfg.Host = host
	}
	if port := application.Config().Port; port != 0 {
		cfg.Port = port
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv := server.New(instance.Store(), logger, cfg)

	// Shut down when the command context is cancelled (SIGINT/SIGTERM).
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}
