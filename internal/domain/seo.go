package domain

// Trend direction of a tracked keyword's search interest.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// KeywordData is one row of the high-CPC monitoring table kept in
// tracked_keywords. Values come from a fixed in-memory list, not a live
// keyword-research API.
type KeywordData struct {
	Keyword         string   `json:"keyword"`
	Volume          int      `json:"volume"`
	Difficulty      int      `json:"difficulty"`
	CPC             float64  `json:"cpc"`
	Trend           Trend    `json:"trend"`
	RelatedKeywords []string `json:"related_keywords"`
}

// SEOOptimization collects the suggestions produced for a single article
// together with the additive improvement estimate.
type SEOOptimization struct {
	Page                string   `json:"page"`
	CurrentRank         int      `json:"current_rank"`
	TargetKeyword       string   `json:"target_keyword"`
	Optimizations       []string `json:"optimizations"`
	ExpectedImprovement float64  `json:"expected_improvement"`
}

// BacklinkOpportunity is a candidate partner domain for outreach.
type BacklinkOpportunity struct {
	Domain           string `json:"domain"`
	Authority        int    `json:"authority"`
	Relevance        int    `json:"relevance"`
	ContactEmail     string `json:"contact_email,omitempty"`
	OutreachTemplate string `json:"outreach_template"`
}

// SEOErrorType tags the defects the error monitor can detect.
type SEOErrorType string

const (
	ErrDuplicateTitle         SEOErrorType = "duplicate_title"
	ErrMissingMetaDescription SEOErrorType = "missing_meta_description"
	ErrTitleTooLong           SEOErrorType = "title_too_long"
)

// SEOError points at one detected defect on one article.
type SEOError struct {
	Type        SEOErrorType `json:"type"`
	ArticleID   string       `json:"article_id"`
	Description string       `json:"description"`
}
