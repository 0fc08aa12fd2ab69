// Package report defines the node inventory report model and the integrity
// envelope that wraps it for persistence and caching.
package report
