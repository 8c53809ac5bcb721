package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for interaction events.
// It is generated from database sequences or content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category is an applicant reservation category from a closed enumeration.
type Category string

const (
	CategoryGeneral  Category = "General"
	CategorySC       Category = "SC"
	CategoryST       Category = "ST"
	CategoryOBC      Category = "OBC"
	CategoryMinority Category = "Minority"
	CategoryEWS      Category = "EWS"
	CategoryPWD      Category = "PWD"
)

// Gender is an applicant gender value from a closed enumeration.
type Gender string

const (
	GenderAny    Gender = "Any"
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// EducationLevel is an education stage from a closed enumeration.
type EducationLevel string

const (
	EducationClass9To10  EducationLevel = "class_9_10"
	EducationClass11To12 EducationLevel = "class_11_12"
	EducationUndergrad   EducationLevel = "undergraduate"
	EducationPostgrad    EducationLevel = "postgraduate"
	EducationPhD         EducationLevel = "phd"
	EducationOther       EducationLevel = "other"
)

// InteractionKind identifies the type of a logged user action.
type InteractionKind int

const (
	// InteractionView represents a detail-page view.
	InteractionView InteractionKind = iota + 1
	// InteractionClick represents a result click.
	InteractionClick
	// InteractionSave represents a shortlist/save action.
	InteractionSave
	// InteractionApply represents an application start.
	InteractionApply
)

// CatalogEntry represents a single funding opportunity in the catalog.
// Entries are immutable once ingested; only the ingestion path writes them.
type CatalogEntry struct {
	ID              string
	Name            string
	Provider        string
	ProviderType    string
	Description     string
	Amount          int64
	Categories      []string // Empty means open to all categories
	MaxIncome       int64    // Annual income ceiling; 0 means no ceiling
	Regions         []string // Empty means no regional restriction
	EducationLevels []string // Empty means all levels
	Gender          string   // Empty or "All" means any gender
	TrustScore      float32  // Provider trust in [0,1]
	Verified        bool
	Deadline        string // YYYY-MM-DD, optional
	ApplicationLink string
	RequiredDocs    []string
	Keywords        []string
	Vector          []float32 // Embedding for semantic search (populated by ingestion)
	Ordinal         uint64    // Catalog insertion order, assigned by storage
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// SearchText returns the text from which the entry's lexical document and
// embedding are built.
func (e *CatalogEntry) SearchText() string {
	text := e.ID + " " + e.Name + " " + e.Provider + " " + e.Description
	for _, c := range e.Categories {
		text += " " + c
	}
	for _, k := range e.Keywords {
		text += " " + k
	}
	return text
}

// ApplicantProfile describes the applicant a request is ranked for.
// Profiles are supplied per request and never persisted.
type ApplicantProfile struct {
	Category  Category
	Income    int64 // Annual family income, non-negative
	Region    string
	Education EducationLevel
	Gender    Gender
}

// UserID derives a stable pseudonymous identifier from profile attributes.
func (p *ApplicantProfile) UserID() string {
	id := IDFromContent(string(p.Category) + "|" + p.Region + "|" + string(p.Education) + "|" + string(p.Gender))
	return idToHex(id)
}

func idToHex(id ID) string {
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexdigits[id&0xf]
		id >>= 4
	}
	return string(buf)
}

// InteractionEvent is a single logged user action against a catalog entry.
// Events are append-only and never mutated after creation. The decayed weight
// is recomputed at read time from Weight and Timestamp, never stored decayed,
// so replaying the log is reproducible.
type InteractionEvent struct {
	ID         ID
	UserID     string
	EntryID    string
	Kind       InteractionKind
	Vector     []float32 // Embedding derived from the entry's category/education/keyword metadata
	Weight     float32   // Initial weight, 1.0 at creation
	Timestamp  time.Time // When the interaction happened
	InsertedAt time.Time // When the event was appended to the log
}

// CriterionResult is the outcome of evaluating one eligibility criterion.
type CriterionResult struct {
	Criterion   string
	Passed      bool
	Points      int
	MaxPoints   int
	Explanation string
}

// EligibilityVerdict is the deterministic eligibility decision for one
// (profile, entry) pair. Recomputed on every request, never cached across
// profile changes.
type EligibilityVerdict struct {
	EntryID     string
	Eligible    bool
	Score       int // 0-100
	Breakdown   []CriterionResult
	MissingDocs []string
}

// SimilarityMatch represents a catalog entry match from vector similarity search.
type SimilarityMatch struct {
	Entry *CatalogEntry
	Score float32
}

// RankedCandidate is the transient per-request state of one catalog entry as
// it moves through the ranking pipeline. It lives only for one query.
type RankedCandidate struct {
	Entry       *CatalogEntry
	LexicalRank int // 1-indexed, 0 if absent from lexical results
	VectorRank  int // 1-indexed, 0 if absent from vector results
	ExactMatch  bool
	FusedScore  float64
	MemoryBoost float64
	Eligibility *EligibilityVerdict
	FinalScore  float64
}
