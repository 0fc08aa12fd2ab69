// Package node orchestrates the report pipeline and the declared identity.
// A Service owns the in-memory cache slots and serializes every refresh so
// the persisted report and the cached report never diverge.
package node
