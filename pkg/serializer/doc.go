// Package serializer writes reports and identities to JSON, YAML, or a
// flattened table for terminal use.
package serializer
