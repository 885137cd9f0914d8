package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// finish converts an operation result into the tool output triple.
// Business failures stay inside the envelope rather than becoming
// protocol errors, so a client always receives the structured
// {success, message, ...} payload.
func (s *Server) finish(tool string, start time.Time, res *domain.OperationResult) (*mcp.CallToolResult, domain.OperationResult, error) {
	outcome := "success"
	if !res.Success {
		outcome = res.ErrorCode
	}
	if s.metrics != nil {
		s.metrics.ObserveToolCall(tool, outcome, time.Since(start).Seconds())
	}
	s.log.Debug("tool call finished",
		zap.String("tool", tool),
		zap.Bool("success", res.Success),
		zap.String("outcome", outcome),
		zap.Duration("duration", time.Since(start)))
	return nil, *res, nil
}
