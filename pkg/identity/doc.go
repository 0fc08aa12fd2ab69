// Package identity loads the declared node identity: a base YAML document
// deep-merged with overlay fragments, decoded strictly into a typed schema,
// with structural redaction of private field paths.
package identity
