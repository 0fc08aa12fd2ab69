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

package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// ChecksumPrefix identifies the hash algorithm in the envelope checksum.
const ChecksumPrefix = "sha256:"

// Envelope wraps a Report with a content checksum and collection metadata
// for persistence and caching. A populated Envelope is immutable; each
// refresh cycle produces a new one.
type Envelope struct {
	// Checksum of the canonical JSON serialization of Report, "sha256:<hex>".
	Checksum string `json:"checksum" yaml:"checksum"`

	// CollectedAt is when the report was assembled.
	CollectedAt time.Time `json:"collectedAt" yaml:"collectedAt"`

	// CollectorVersion is the daemon version that produced the report.
	CollectorVersion string `json:"collectorVersion" yaml:"collectorVersion"`

	Report Report `json:"report" yaml:"report"`
}

// Wrap creates an Envelope for the given report, computing the checksum
// over its canonical JSON form and stamping the collection time.
func Wrap(r Report, collectorVersion string) (Envelope, error) {
	sum, err := checksum(r)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		Checksum:         sum,
		CollectedAt:      time.Now().UTC(),
		CollectorVersion: collectorVersion,
		Report:           r,
	}, nil
}

// Verify recomputes the report checksum and compares it to the stored one.
// This guards against file corruption, not against a malicious writer.
func (e *Envelope) Verify() bool {
	sum, err := checksum(e.Report)
	if err != nil {
		return false
	}
	return sum == e.Checksum
}

// AgeSeconds returns seconds elapsed since CollectedAt. The value is
// signed: a clock that moved backwards yields a negative age rather
// than a panic or a clamp, matching the staleness semantics below.
func (e *Envelope) AgeSeconds() int64 {
	return int64(time.Since(e.CollectedAt).Seconds())
}

// IsStale reports whether the envelope is older than maxAgeSeconds.
// An age exactly equal to maxAgeSeconds is not stale; a negative age
// (future timestamp) is never stale.
func (e *Envelope) IsStale(maxAgeSeconds int64) bool {
	return e.AgeSeconds() > maxAgeSeconds
}

func checksum(r Report) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to serialize report for checksum: %w", err)
	}
	hash := sha256.Sum256(data)
	return ChecksumPrefix + hex.EncodeToString(hash[:]), nil
}
