// Copyright 2025 Gharkhoj Labs
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


package dataset

import "errors"

var (
	// ErrConfigRequired is returned when a loader is created without a config.
	ErrConfigRequired = errors.New("dataset config required")

	// ErrMissingSource is returned when a source file cannot be opened.
	ErrMissingSource = errors.New("source file missing or unreadable")

	// ErrEmptySource is returned when a source file has no header row.
	ErrEmptySource = errors.New("source file has no header row")
)
