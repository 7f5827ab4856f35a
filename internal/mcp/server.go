package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/rpggio/proposta/internal/domain/proposal"
	"github.com/rpggio/proposta/internal/domain/session"
)

// Document is the editing session the tools operate on.
type Document interface {
	Snapshot() session.Snapshot
	Proposal() proposal.Proposal
	Apply(edits ...proposal.Edit) session.Snapshot
	AddService() (session.Snapshot, int64)
	RemoveService(id int64) session.Snapshot
	Reset() session.Snapshot
}

// GenerationService fills free-text sections.
type GenerationService interface {
	Generate(ctx context.Context, doc generation.Document, section generation.Section) (session.Snapshot, error)
	InFlight() (generation.Section, bool)
}

// Config contains server configuration.
type Config struct {
	Document   Document
	Generation GenerationService
	TaxRate    float64
	Version    string
	Logger     *slog.Logger
}

// NewServer creates an MCP server exposing the proposal as tools.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "proposta",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, &toolset{
		doc:        cfg.Document,
		generation: cfg.Generation,
		taxRate:    cfg.TaxRate,
	})

	return server
}
