// Package cli implements the nodescoped command line interface.
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//
//   - daemon: runs the collection scheduler and the HTTP API
//     (pkg/node, pkg/api)
//   - snapshot: one-shot report collection to stdout or a file
//     (pkg/collector, pkg/serializer)
//   - identity: inspects the declared node identity
//     (pkg/identity)
//
// Configuration layering (defaults, config file, environment) is handled
// by pkg/config; the --config and --log-level flags are accepted by every
// command.
package cli
