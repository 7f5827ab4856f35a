package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/rpggio/proposta/internal/domain/proposal"
	"github.com/rpggio/proposta/internal/domain/session"
	"github.com/rpggio/proposta/internal/render"
)

// Document is the editing session the handlers read and write.
type Document interface {
	Snapshot() session.Snapshot
	Proposal() proposal.Proposal
	Apply(edits ...proposal.Edit) session.Snapshot
	ApplyAfter(base int64, build func(stale func(proposal.Field) bool) []proposal.Edit) session.Snapshot
	NextServiceID() int64
	Reset() session.Snapshot
}

// GenerationService fills free-text sections.
type GenerationService interface {
	Generate(ctx context.Context, doc generation.Document, section generation.Section) (session.Snapshot, error)
	InFlight() (generation.Section, bool)
}

// Options wires the HTTP server.
type Options struct {
	Document   Document
	Generation GenerationService
	Renderer   *render.Renderer
	TaxRate    float64
	PrintDelay time.Duration
	// MCP, when set, is mounted at /mcp.
	MCP    http.Handler
	Logger *slog.Logger
}

// Server serves the editor, preview, print and export routes.
type Server struct {
	doc        Document
	generation GenerationService
	renderer   *render.Renderer
	taxRate    float64
	printDelay time.Duration
	logger     *slog.Logger
}

// NewServer creates the HTTP router.
func NewServer(opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{
		doc:        opts.Document,
		generation: opts.Generation,
		renderer:   opts.Renderer,
		taxRate:    opts.TaxRate,
		printDelay: opts.PrintDelay,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/", srv.handleEditor)
	r.Post("/proposal", srv.handleUpdate)
	r.Post("/proposal/services", srv.handleAddService)
	r.Post("/proposal/services/{id}/delete", srv.handleRemoveService)
	r.Post("/proposal/generate/{section}", srv.handleGenerate)
	r.Post("/proposal/reset", srv.handleReset)
	r.Get("/print", srv.handlePrint)
	r.Get("/proposal.pdf", srv.handlePDF)
	r.Get("/api/proposal", srv.handleAPIProposal)
	r.Get("/health", srv.handleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(render.Static())))

	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// RequestLogger logs one line per request at debug level.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
