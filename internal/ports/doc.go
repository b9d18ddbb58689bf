// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, the CLI). Client ports are implemented by outbound
// adapters (host ACL client, local roller, SQLite chat log, template presenter)
// and called by the application layer.
package ports
