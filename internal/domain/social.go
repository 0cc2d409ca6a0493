package domain

import "time"

// PostStatus tracks a scheduled social post through its lifecycle.
type PostStatus string

const (
	PostScheduled PostStatus = "scheduled"
	PostPublished PostStatus = "published"
	PostFailed    PostStatus = "failed"
)

// SocialPost is one platform-specific piece of content generated from an
// article. Repeated generation runs insert repeated rows for the same
// article and platform; nothing deduplicates them.
type SocialPost struct {
	ID            string     `json:"id,omitempty"`
	Platform      string     `json:"platform"`
	Content       string     `json:"content"`
	Hashtags      []string   `json:"hashtags"`
	ScheduledTime time.Time  `json:"scheduled_time"`
	ArticleID     string     `json:"article_id,omitempty"`
	Status        PostStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
}

// PlatformTrend is a mock trending topic tied to one social platform.
type PlatformTrend struct {
	Keyword  string `json:"keyword"`
	Volume   int    `json:"volume"`
	Platform string `json:"platform"`
}

// PostAnalytics summarises recently scheduled posts. Engagement numbers are
// not computed anywhere; the field stays at zero.
type PostAnalytics struct {
	TotalPosts    int            `json:"total_posts"`
	ByPlatform    map[string]int `json:"by_platform"`
	AvgEngagement float64        `json:"avg_engagement"`
}
