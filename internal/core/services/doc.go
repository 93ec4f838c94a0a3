// Package services implements the driving port interfaces.
// Services contain the core traversal and matching logic and
// orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond ports.
package services
