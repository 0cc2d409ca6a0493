package domain

import "time"

// ContentType classifies a generated piece of viral content.
type ContentType string

const (
	ContentMeme        ContentType = "meme"
	ContentInfographic ContentType = "infographic"
	ContentVideo       ContentType = "video"
	ContentQuiz        ContentType = "quiz"
	ContentCalculator  ContentType = "calculator"
	ContentTrend       ContentType = "trend"
)

// Sentiment of a trending topic as reported by the (mock) trend feed.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// TrendingTopic is a finance trend the viral agent reacts to.
type TrendingTopic struct {
	Keyword      string    `json:"keyword"`
	Volume       int       `json:"volume"`
	Sentiment    Sentiment `json:"sentiment"`
	RelatedTerms []string  `json:"related_terms"`
}

// ViralContent is a generated content candidate. ViralPotential is a
// heuristic rank in [0,1], not a measured outcome.
type ViralContent struct {
	Type           ContentType `json:"type"`
	Title          string      `json:"title"`
	Content        string      `json:"content"`
	Platforms      []string    `json:"platforms"`
	ViralPotential float64     `json:"viral_potential"`
	Hashtags       []string    `json:"hashtags"`
}

// ScheduledContent is a viral_content_schedule row: a content candidate with
// its assigned publication slot.
type ScheduledContent struct {
	Type           ContentType `json:"type"`
	Title          string      `json:"title"`
	Content        string      `json:"content"`
	Platforms      []string    `json:"platforms"`
	ViralPotential float64     `json:"viral_potential"`
	Hashtags       []string    `json:"hashtags"`
	ScheduledTime  time.Time   `json:"scheduled_time"`
	Status         PostStatus  `json:"status"`
}

// FinancialEvent is a mock current event the agent turns into content.
type FinancialEvent struct {
	Title    string    `json:"title"`
	Impact   string    `json:"impact"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}
