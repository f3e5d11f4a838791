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


// Package dataset loads the four listing source files and joins them
// into one denormalized in-memory table.
//
// The sources are CSV exports: projects, addresses, configurations and
// configuration variants. Loading left-joins them in that order on
// their foreign keys, so a project with no child rows still appears
// once with the child columns null. Column name collisions are
// resolved with per-stage suffixes, matching the layout the rest of
// the system expects (notably the configuration id surviving as
// "id_config").
//
// A missing or unreadable source file is fatal. Malformed rows are
// kept with null fields rather than dropped, and a join stage whose
// foreign-key column is absent from its source is skipped entirely,
// letting partial exports still load.
package dataset
