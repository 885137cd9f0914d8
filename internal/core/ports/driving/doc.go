// Package driving defines interfaces that external actors (MCP tools,
// CLI) use to interact with core services. These are the "driving"
// ports in hexagonal architecture terminology - they drive the
// application.
//
// Every operation returns a *domain.OperationResult rather than an
// error: failures are classified and folded into the envelope inside
// the services, so adapters never build error payloads themselves.
//
// Implementations of these interfaces live in internal/core/services.
package driving
