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

package api

import (
	"net/http"
)

// AgeResponse reports the cached report's age and staleness.
type AgeResponse struct {
	AgeSeconds int64 `json:"ageSeconds"`
	Stale      bool  `json:"stale"`
}

// handleReport serves the cached report envelope. It never triggers
// collection; an empty cache means the initial collection has not
// completed yet.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	env := s.service.CachedReport()
	if env == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, ErrCodeReportUnavailable,
			"report not yet available (initial collection in progress)", true, nil)
		return
	}
	respondJSON(w, http.StatusOK, env)
}

// handleReportAge serves the cached report's age.
func (s *Server) handleReportAge(w http.ResponseWriter, r *http.Request) {
	age, ok := s.service.ReportAge()
	if !ok {
		s.writeError(w, r, http.StatusServiceUnavailable, ErrCodeReportUnavailable,
			"report not yet available (initial collection in progress)", true, nil)
		return
	}
	respondJSON(w, http.StatusOK, AgeResponse{
		AgeSeconds: age,
		Stale:      s.service.IsStale(),
	})
}

// handleRefresh runs a full collection cycle and serves the new envelope.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	env, err := s.service.Refresh(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrCodeRefreshFailed,
			err.Error(), true, nil)
		return
	}
	respondJSON(w, http.StatusOK, env)
}

// handleIdentity serves the declared identity, redacted unless the caller
// asks for the full document with ?full=true.
func (s *Server) handleIdentity(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("full") == "true" {
		id := s.service.Identity()
		if id == nil {
			s.writeError(w, r, http.StatusNotFound, ErrCodeIdentityNotLoaded,
				"no node identity loaded", false, nil)
			return
		}
		respondJSON(w, http.StatusOK, id)
		return
	}

	id, err := s.service.RedactedIdentity()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			err.Error(), false, nil)
		return
	}
	if id == nil {
		s.writeError(w, r, http.StatusNotFound, ErrCodeIdentityNotLoaded,
			"no node identity loaded", false, nil)
		return
	}
	respondJSON(w, http.StatusOK, id)
}

// handleIdentityReload reloads the identity from disk. On failure the
// previously loaded identity stays active and the error is returned.
func (s *Server) handleIdentityReload(w http.ResponseWriter, r *http.Request) {
	if err := s.service.ReloadIdentity(); err != nil {
		s.writeError(w, r, http.StatusInternalServerError, ErrCodeReloadFailed,
			err.Error(), true, nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}
