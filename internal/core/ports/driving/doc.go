// Package driving defines the interfaces through which external actors
// (the CLI) call INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement these interfaces, and driving adapters
// depend on them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
