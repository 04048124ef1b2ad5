package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/sudokuengine/core/internal/adapters/http"
	"github.com/sudokuengine/core/internal/config"
	"github.com/sudokuengine/core/internal/generator"
	"github.com/sudokuengine/core/internal/hint"
	"github.com/sudokuengine/core/internal/infrastructure/storage"
	"github.com/sudokuengine/core/internal/ports"
	"github.com/sudokuengine/core/internal/solver"
	"github.com/sudokuengine/core/internal/usecase"
	"github.com/sudokuengine/core/internal/validator"
)

type serveOptions struct {
	addr        string
	persistPath string
	solverKind  string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", ":8080", "listen address")
	f.StringVar(&opts.persistPath, "persist-path", "./data", "save directory")
	f.StringVar(&opts.solverKind, "solver", "dlx", "solver to use: dlx|deduce")
	return cmd
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}

// statusWriter captures the HTTP status and byte count a handler wrote,
// matching the teacher's request logger.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.persistPath, 0o755); err != nil {
		return err
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(opts.solverKind)) {
	case "deduce":
		s = solver.NewDeduceSolver(cfg.DeducerConfig())
	default:
		s = solver.NewDLXSolver()
	}

	gen := generator.NewUniqueGenerator(s)
	v := validator.NewAdapter()
	st := storage.NewFS(opts.persistPath)
	hn := hint.NewAdapter(hint.New())
	uc := usecase.NewService(s, gen, v, hn, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", opts.addr, "persist", opts.persistPath, "solver", opts.solverKind)
	return srv.ListenAndServe()
}
