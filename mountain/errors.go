// Copyright 2025 Naren Yellavula
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

package mountain

import "errors"

var (
	// ErrEmptyLabel is returned by NewRecord when the label is empty.
	ErrEmptyLabel = errors.New("mountain: record label cannot be empty")
	// ErrNegativeCount is returned by NewRecord when a supply or obstacle count is negative.
	ErrNegativeCount = errors.New("mountain: record counts must be non-negative")
	// ErrNilRecord is returned by Insert when it is handed no record.
	ErrNilRecord = errors.New("mountain: nil record")
	// ErrInvariant is returned by Validate when the tree shape is broken.
	ErrInvariant = errors.New("mountain: tree invariant violated")
)
