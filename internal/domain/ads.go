package domain

import "time"

// AdPlacement is read-mostly telemetry for one ad slot. Impressions, clicks
// and revenue are populated by the external ad network integration; this
// system only reads and reacts to them.
type AdPlacement struct {
	ID          string    `json:"id,omitempty"`
	Position    string    `json:"position"`
	Format      string    `json:"format"`
	CTR         float64   `json:"ctr"`
	RPM         float64   `json:"rpm"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Revenue     float64   `json:"revenue"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdOptimization is an advisory record for one underperforming placement.
type AdOptimization struct {
	Placement           string   `json:"placement"`
	CurrentCTR          float64  `json:"current_ctr"`
	SuggestedChanges    []string `json:"suggested_changes"`
	ExpectedImprovement float64  `json:"expected_improvement"`
}

// AdTestConfig describes one A/B format experiment row.
type AdTestConfig struct {
	Format       string `json:"format"`
	Position     string `json:"position"`
	Size         string `json:"size"`
	TestDuration int    `json:"test_duration_days"`
}

// AdNetwork is a configured ad provider with its waterfall priority.
type AdNetwork struct {
	Name     string  `json:"name"`
	Priority int     `json:"priority"`
	FillRate float64 `json:"fill_rate"`
	AvgCPM   float64 `json:"avg_cpm"`
}

// UserAnalytics is one visitor row of the user_analytics table.
type UserAnalytics struct {
	ID              string   `json:"id,omitempty"`
	SessionDuration int      `json:"session_duration"`
	PagesViewed     int      `json:"pages_viewed"`
	Interests       []string `json:"interests"`
}

// AdPerformanceReport aggregates placement telemetry over a period.
type AdPerformanceReport struct {
	Period                    string        `json:"period"`
	TotalRevenue              float64       `json:"total_revenue"`
	TotalImpressions          int           `json:"total_impressions"`
	TotalClicks               int           `json:"total_clicks"`
	AvgCTR                    float64       `json:"avg_ctr"`
	AvgRPM                    float64       `json:"avg_rpm"`
	TopPerformingPlacements   []AdPlacement `json:"top_performing_placements"`
	OptimizationOpportunities []string      `json:"optimization_opportunities"`
}
