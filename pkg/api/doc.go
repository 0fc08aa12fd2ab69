// Package api exposes the daemon's HTTP surface: the cached report, the
// declared identity, refresh and reload triggers, and the usual health and
// metrics endpoints. Handlers read the orchestrator's cache; only the
// explicit refresh route does any work.
package api
