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

package identity

import "strings"

// deepMerge merges an overlay value onto a base value and returns the result.
//
// Rules, applied recursively:
//   - mapping onto mapping: merge keys, overlay wins, unseen base keys kept
//   - nil overlay: base is left untouched (an explicit null means
//     "leave unchanged", not "erase")
//   - anything else (sequences, scalars, type mismatches): overlay replaces
//     the base value entirely; sequences are never merged element-wise
func deepMerge(base, overlay any) any {
	if overlay == nil {
		return base
	}

	baseMap, baseOK := base.(map[string]any)
	overlayMap, overlayOK := overlay.(map[string]any)
	if baseOK && overlayOK {
		for key, overlayVal := range overlayMap {
			if baseVal, ok := baseMap[key]; ok {
				baseMap[key] = deepMerge(baseVal, overlayVal)
			} else {
				baseMap[key] = overlayVal
			}
		}
		return baseMap
	}

	return overlay
}

// removePath deletes a dot-separated field path from an untyped tree.
// Intermediate segments must identify nested mappings; the leaf segment is
// removed from its parent. A path through a non-mapping node, or one that
// does not exist, is a no-op.
func removePath(tree any, path string) {
	parts := strings.Split(path, ".")
	if len(parts) == 0 || path == "" {
		return
	}

	node, ok := tree.(map[string]any)
	if !ok {
		return
	}

	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			return
		}
		node = child
	}
	delete(node, parts[len(parts)-1])
}
