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

import (
	"sort"
	"strings"

	"github.com/vidyasetu/scholarrank/core"
)

// exactMatchBonus is added to the normalized fused score of entries whose
// identifier or name carries a scheme code from the query. It exceeds the
// normalized score range, so an exact-identifier hit always ranks first.
const exactMatchBonus = 1.0

// fuseCandidates merges lexical and vector result lists with reciprocal-rank
// fusion: each list contributes 1/(k+rank) per item with rank starting at 1,
// contributions are summed per entry identity. Items present in only one list
// still score from that list alone.
//
// Raw RRF sums are normalized by the theoretical maximum for the number of
// contributing lists (numLists/(k+1)), which keeps the confidence threshold
// comparable when the vector path degrades. vectorRan distinguishes a vector
// search that produced no hits from one that never ran.
//
// Deterministic for identical inputs and k; ties break by catalog insertion
// ordinal, never by map iteration order.
func fuseCandidates(lex []LexicalHit, vec []*core.SimilarityMatch, vectorRan bool, schemeCodes []string, k int) []*core.RankedCandidate {
	if len(lex) == 0 && len(vec) == 0 {
		return []*core.RankedCandidate{}
	}

	byID := make(map[string]*core.RankedCandidate, len(lex)+len(vec))
	getOrCreate := func(entry *core.CatalogEntry) *core.RankedCandidate {
		if c, ok := byID[entry.ID]; ok {
			return c
		}
		c := &core.RankedCandidate{Entry: entry}
		byID[entry.ID] = c
		return c
	}

	for rank, hit := range lex {
		c := getOrCreate(hit.Entry)
		c.LexicalRank = rank + 1
		c.FusedScore += 1.0 / float64(k+rank+1)
	}
	for rank, match := range vec {
		c := getOrCreate(match.Entry)
		c.VectorRank = rank + 1
		c.FusedScore += 1.0 / float64(k+rank+1)
	}

	numLists := 1
	if vectorRan {
		numLists = 2
	}
	maxAttainable := float64(numLists) / float64(k+1)

	candidates := make([]*core.RankedCandidate, 0, len(byID))
	for _, c := range byID {
		c.FusedScore /= maxAttainable
		if matchesSchemeCode(c.Entry, schemeCodes) {
			c.ExactMatch = true
			c.FusedScore += exactMatchBonus
		}
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FusedScore != candidates[j].FusedScore {
			return candidates[i].FusedScore > candidates[j].FusedScore
		}
		return candidates[i].Entry.Ordinal < candidates[j].Entry.Ordinal
	})

	return candidates
}

// matchesSchemeCode reports whether the entry's identifier or name carries one
// of the query's scheme codes.
func matchesSchemeCode(entry *core.CatalogEntry, codes []string) bool {
	if len(codes) == 0 {
		return false
	}
	id := strings.ToUpper(entry.ID)
	name := strings.ToUpper(entry.Name)
	for _, code := range codes {
		if id == code || strings.Contains(name, code) {
			return true
		}
	}
	return false
}
