package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diariotrade/diario/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API over HTTP",
	Long: `Start an HTTP server exposing the journal's derived views:

  GET /api/summary  - dashboard summary plus today's risk decision
  GET /api/trades   - history rows with derived fee and net P&L
  GET /api/status   - today's risk decision

Both /api/summary and /api/trades accept ?date= and ?tag= filters.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8780", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	srv := &http.Server{
		Addr:    serveAddr,
		Handler: web.NewServer(j, loadConfigText()).Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("serving dashboard", "addr", serveAddr, "db", dbPath)
		errc <- srv.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-sigc:
		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
