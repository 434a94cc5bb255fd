package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SectionName identifies a named section of a company profile.
// The set is closed; no section names are introduced at runtime.
type SectionName int

const (
	// SectionCompanyDescription is the meta-description of the company.
	SectionCompanyDescription SectionName = iota + 1
	// SectionAbout is the about/mission content.
	SectionAbout
	// SectionLeadership is leadership and team information.
	SectionLeadership
	// SectionJobs is job postings, a tech stack indicator.
	SectionJobs
	// SectionFinancial is financial and investor information.
	SectionFinancial
	// SectionMainContent is the main body content of the site.
	SectionMainContent
	// SectionPress is press release and news content. It is carried
	// separately from the structured blob and has no marker.
	SectionPress
)

// Sections returns all section names in wire-contract order.
func Sections() []SectionName {
	return []SectionName{
		SectionCompanyDescription,
		SectionAbout,
		SectionLeadership,
		SectionJobs,
		SectionFinancial,
		SectionMainContent,
		SectionPress,
	}
}

// String returns the stable snake_case name of the section.
func (s SectionName) String() string {
	switch s {
	case SectionCompanyDescription:
		return "company_description"
	case SectionAbout:
		return "about"
	case SectionLeadership:
		return "leadership"
	case SectionJobs:
		return "jobs"
	case SectionFinancial:
		return "financial"
	case SectionMainContent:
		return "main_content"
	case SectionPress:
		return "press"
	}
	return "unknown"
}

// Marker returns the marker string that starts the section inside the
// structured content blob. SectionPress has no marker; its content lives
// outside the blob.
//
// The jobs marker is a prefix: the actual marker line carries extra text
// ("JOB POSTINGS (TECH STACK INDICATORS):").
func (s SectionName) Marker() string {
	switch s {
	case SectionCompanyDescription:
		return "COMPANY DESCRIPTION:"
	case SectionAbout:
		return "ABOUT/MISSION:"
	case SectionLeadership:
		return "LEADERSHIP INFORMATION:"
	case SectionJobs:
		return "JOB POSTINGS"
	case SectionFinancial:
		return "FINANCIAL INFORMATION:"
	case SectionMainContent:
		return "MAIN CONTENT:"
	}
	return ""
}

// CompanyProfile is the request-scoped artifact produced by one scrape of a
// target company. It is immutable after construction; concurrent readers
// need no synchronization.
type CompanyProfile struct {
	URL          string
	RawContent   string // marker-delimited structured blob, see SectionName.Marker
	PressContent string // free text, may be empty

	// SectionEmbeddings maps section names to their embedding vectors.
	// Only sections whose extracted text passed the substantiality gate are
	// present; a missing key means "not computed", not "computed as zero".
	SectionEmbeddings map[SectionName][]float32

	// CombinedEmbedding represents description + about content and is the
	// fallback signal for general similarity matching.
	CombinedEmbedding []float32

	FetchedAt time.Time
}

// SearchResult is a per-section semantic search hit.
type SearchResult struct {
	Section SectionName
	Score   float32
	Content string // section text re-extracted at search time
}

// RelevanceMatch is a category-matcher hit carrying a short snippet rather
// than the full section content.
type RelevanceMatch struct {
	Section SectionName
	Score   float32
	Snippet string
}

// CategoryMatches buckets relevance matches by score tier. Every hit above
// the category search threshold appears in exactly one bucket.
type CategoryMatches struct {
	High   []RelevanceMatch
	Medium []RelevanceMatch
	Low    []RelevanceMatch
}

// SemanticMention is a sentence-level competitor reference found by the
// semantic matcher. A single section may contribute multiple mentions.
type SemanticMention struct {
	Section SectionName
	Score   float32
	Context string // the matched sentence
}
