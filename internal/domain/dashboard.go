package domain

// DashboardStats feeds the admin dashboard. Values are static placeholders
// until a real analytics integration exists.
type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	TotalViews     int     `json:"total_views"`
	MonthlyViews   int     `json:"monthly_views"`
	TotalClicks    int     `json:"total_clicks"`
	MonthlyClicks  int     `json:"monthly_clicks"`
	Subscribers    int     `json:"subscribers"`
	CTR            float64 `json:"ctr"`
	RPM            float64 `json:"rpm"`
}

// AgentStatus is one row of the dashboard's agent table.
type AgentStatus struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LastRun     string `json:"last_run"`
	NextRun     string `json:"next_run"`
	Performance int    `json:"performance"`
}
