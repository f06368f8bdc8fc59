// Package ports declares the seams of the scorer. ScoringService is served
// by the application layer to the HTTP handlers and the CLI; DomainLookup
// is served by the Hunter adapter to the application layer.
package ports
