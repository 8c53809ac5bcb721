// Copyright 2025 Vidyasetu Labs
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


// Package search implements the retrieval-and-decision pipeline that ranks
// catalog entries against a free-text query and an applicant profile.
//
// A request flows through query normalization, parallel BM25 and vector
// search, reciprocal-rank fusion, memory-based personalization, the
// eligibility override and a confidence gate that decides whether an external
// fallback search is additionally warranted. The vector path may fail; the
// pipeline then degrades to lexical-only ranking rather than failing the
// request.
//
// All heuristic thresholds live in Config with named fields; see
// DefaultConfig for the tuned values.
package search
