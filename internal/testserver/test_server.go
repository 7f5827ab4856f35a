// Package testserver assembles the full HTTP stack for tests.
package testserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/rpggio/proposta/internal/domain/session"
	"github.com/rpggio/proposta/internal/mcp"
	"github.com/rpggio/proposta/internal/render"
	"github.com/rpggio/proposta/internal/transport"
	"github.com/stretchr/testify/require"
)

// Now is the fixed clock every test server starts from.
var Now = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

type TestServer struct {
	Server     *httptest.Server
	Session    *session.Session
	Generation *generation.Service
	// Client does not follow redirects so tests can inspect them.
	Client *http.Client
}

// Options tweaks the assembled stack.
type Options struct {
	TaxRate    float64
	PrintDelay time.Duration
}

// New starts a server backed by gen on a fresh session.
func New(t *testing.T, gen generation.Generator, opts ...Options) *TestServer {
	t.Helper()

	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	sess := session.New(session.Options{Now: func() time.Time { return Now }})
	genSvc := generation.NewService(gen, nil)

	renderer, err := render.New()
	require.NoError(t, err)

	mcpServer := mcp.NewServer(mcp.Config{
		Document:   sess,
		Generation: genSvc,
		TaxRate:    o.TaxRate,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)

	server := httptest.NewServer(transport.NewServer(transport.Options{
		Document:   sess,
		Generation: genSvc,
		Renderer:   renderer,
		TaxRate:    o.TaxRate,
		PrintDelay: o.PrintDelay,
		MCP:        mcpHandler,
	}))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:     server,
		Session:    sess,
		Generation: genSvc,
		Client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// MCPSession connects an MCP client to the server's /mcp endpoint.
func (ts *TestServer) MCPSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.Server.URL + "/mcp"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}
