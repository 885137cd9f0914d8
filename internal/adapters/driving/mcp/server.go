package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/metrics"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for ERPNext.
type Server struct {
	ports   *Ports
	log     *zap.Logger
	metrics *metrics.Metrics
	server  *mcp.Server
}

// NewServer creates a new MCP server with the given ports. log and
// metrics may be nil.
func NewServer(ports *Ports, log *zap.Logger, m *metrics.Metrics) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	impl := &mcp.Implementation{
		Name:    "erpnext",
		Version: Version,
	}

	s := &Server{
		ports:   ports,
		log:     log,
		metrics: m,
		server:  mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// When metrics are configured the Prometheus exposition is served on
// /metrics alongside the MCP endpoint.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	mux := http.NewServeMux()
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	mux.Handle("/", handler)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
