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


package search

import "strings"

// NormalizedQuery is the cleaned form of a raw query string. Tokens drive
// lexical search; Raw is what gets embedded; SchemeCodes flag exact-identifier
// tokens so fusion can weight exact hits.
type NormalizedQuery struct {
	Raw         string
	Tokens      []string
	SchemeCodes []string
}

// HasSchemeCode reports whether the query contained at least one
// exact-identifier-shaped token.
func (q NormalizedQuery) HasSchemeCode() bool {
	return len(q.SchemeCodes) > 0
}

// NormalizeQuery cleans and tokenizes a raw query. It has no side effects and
// fails only with ErrEmptyQuery on empty or whitespace-only input.
func NormalizeQuery(raw string) (NormalizedQuery, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NormalizedQuery{}, ErrEmptyQuery
	}

	return NormalizedQuery{
		Raw:         trimmed,
		Tokens:      tokenizeAndFilter(trimmed),
		SchemeCodes: extractSchemeCodes(trimmed),
	}, nil
}
