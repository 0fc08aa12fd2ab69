// Copyright (c) 2025, the nodescope authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Probe timeouts for data collection operations.
const (
	// ProbeTimeout is the default timeout for one probe utility invocation.
	// Probes respect parent context deadlines when shorter.
	ProbeTimeout = 10 * time.Second

	// NixStoreSizeTimeout bounds the du walk over /nix/store, which can
	// take minutes on large stores.
	NixStoreSizeTimeout = 2 * time.Minute

	// CPUSampleInterval is the delta window for CPU usage sampling.
	CPUSampleInterval = 250 * time.Millisecond
)

// Server timeouts for the HTTP API listener.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
