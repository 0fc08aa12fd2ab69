// Package errors provides structured error types for probe failures and
// programmatic error handling across the daemon.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to query GPU state",
//	    ctx.Err(),
//	    map[string]any{
//	        "command": "nvidia-smi",
//	    },
//	)
package errors
