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

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeToolMissing, "nvidia-smi not installed"),
			want: "[TOOL_MISSING] nvidia-smi not installed",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeCommandFailed, "df failed", errors.New("exit status 1")),
			want: "[COMMAND_FAILED] df failed: exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := Wrap(ErrCodeTimeout, "probe timed out", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapWithContext(t *testing.T) {
	err := WrapWithContext(ErrCodeTimeout, "GPU probe failed", errors.New("timeout"),
		map[string]any{"command": "nvidia-smi"})

	require.NotNil(t, err.Context)
	assert.Equal(t, "nvidia-smi", err.Context["command"])
}

func TestCodeOf(t *testing.T) {
	direct := New(ErrCodeToolMissing, "missing")
	assert.Equal(t, ErrCodeToolMissing, CodeOf(direct))

	wrapped := fmt.Errorf("probe: %w", Wrap(ErrCodeTimeout, "slow", errors.New("deadline")))
	assert.Equal(t, ErrCodeTimeout, CodeOf(wrapped))

	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
}
