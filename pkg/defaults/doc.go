// Package defaults provides centralized timing constants for the daemon.
//
// Timeouts are organized by component:
//
//   - Probe timeouts: for external probe utilities and slow sources
//   - Server timeouts: for the HTTP API listener
//
// Import and use constants directly:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
//	defer cancel()
package defaults
