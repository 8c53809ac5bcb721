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
	"math"
	"sort"

	"github.com/vidyasetu/scholarrank/core"
)

// BM25 tuning constants. Standard values recommended by Robertson et al.
const (
	// bm25K1 controls term frequency saturation. Higher = slower saturation.
	bm25K1 = 1.5

	// bm25B controls document length normalization.
	// 0 = no normalization, 1 = full normalization.
	bm25B = 0.75
)

// lexicalDoc holds the tokenized representation of one catalog entry.
type lexicalDoc struct {
	entry *core.CatalogEntry

	// tf maps each term to its frequency within this entry's document.
	tf map[string]int

	// len is the token count of this entry's document.
	len int
}

// LexicalHit is a single scored result from the lexical index.
type LexicalHit struct {
	Entry *core.CatalogEntry
	Score float64
}

// LexicalIndex is an inverted index over tokenized catalog text scored with
// Okapi BM25.
//
// The index is immutable after construction and safe for concurrent use.
// Refreshing the catalog means building a new index and swapping the pointer,
// so readers always see either the old or the new snapshot.
type LexicalIndex struct {
	docs []lexicalDoc

	// idf maps each term to its inverse document frequency, computed once at
	// build time as log((N+1)/(df+1)) + 1 (Lucene-style smoothing).
	idf map[string]float64

	avgLen float64
}

// BuildLexicalIndex constructs a LexicalIndex over the given catalog entries.
// An empty catalog yields a valid index that scores every query to zero.
func BuildLexicalIndex(entries []*core.CatalogEntry) *LexicalIndex {
	if len(entries) == 0 {
		return &LexicalIndex{idf: make(map[string]float64)}
	}

	docs := make([]lexicalDoc, 0, len(entries))
	totalLen := 0

	// df[term] = number of entries whose document contains term.
	df := make(map[string]int)

	for _, entry := range entries {
		tokens := tokenizeAndFilter(entry.SearchText())
		tf := make(map[string]int, len(tokens))
		for _, t := range tokens {
			tf[t]++
		}
		doc := lexicalDoc{entry: entry, tf: tf, len: len(tokens)}
		docs = append(docs, doc)
		totalLen += doc.len

		for term := range tf {
			df[term]++
		}
	}

	n := len(docs)
	idf := make(map[string]float64, len(df))
	for term, docFreq := range df {
		// The +1 in numerator and denominator is Lucene-style smoothing,
		// the trailing +1 keeps IDF >= 1.
		idf[term] = math.Log(float64(n+1)/float64(docFreq+1)) + 1.0
	}

	return &LexicalIndex{
		docs:   docs,
		idf:    idf,
		avgLen: float64(totalLen) / float64(n),
	}
}

// Size returns the number of indexed entries.
func (idx *LexicalIndex) Size() int {
	return len(idx.docs)
}

// Search returns up to limit entries ranked by BM25 score, highest first.
// Entries with zero score are omitted; no matching tokens yields an empty
// slice, never an error. Identical index and tokens produce identical output;
// ties break by catalog insertion ordinal.
func (idx *LexicalIndex) Search(tokens []string, limit int) []LexicalHit {
	if len(tokens) == 0 || len(idx.docs) == 0 || limit <= 0 {
		return []LexicalHit{}
	}

	hits := make([]LexicalHit, 0, len(idx.docs))
	for i := range idx.docs {
		score := idx.scoreDoc(tokens, &idx.docs[i])
		if score > 0 {
			hits = append(hits, LexicalHit{Entry: idx.docs[i].entry, Score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Entry.Ordinal < hits[j].Entry.Ordinal
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// scoreDoc computes the raw BM25 score for a single (query, doc) pair.
func (idx *LexicalIndex) scoreDoc(tokens []string, doc *lexicalDoc) float64 {
	dl := float64(doc.len)
	var score float64

	// Deduplicate query terms so repeated words don't double-count.
	seen := make(map[string]bool, len(tokens))

	for _, term := range tokens {
		if seen[term] {
			continue
		}
		seen[term] = true

		tf, inDoc := doc.tf[term]
		if !inDoc {
			continue
		}
		termIDF, known := idx.idf[term]
		if !known {
			continue
		}

		tfFloat := float64(tf)
		numerator := tfFloat * (bm25K1 + 1)
		lengthNorm := bm25K1 * (1.0 - bm25B + bm25B*dl/idx.avgLen)
		score += termIDF * (numerator / (tfFloat + lengthNorm))
	}

	return score
}
