package ads

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"financehub/internal/domain"
	"financehub/internal/ports"
)

// ctrBenchmarks holds the expected CTR per "format_position" key. Slots
// without a dedicated benchmark fall back to 0.5.
var ctrBenchmarks = map[string]float64{
	"banner_header":   0.8,
	"banner_sidebar":  0.6,
	"banner_footer":   0.4,
	"native_content":  1.2,
	"responsive_auto": 1.0,
	"video_preroll":   2.5,
	"interstitial":    3.0,
}

// adDensity estimates how much of each page region is covered by ads.
var adDensity = map[string]float64{
	"header":  0.1,
	"sidebar": 0.25,
	"content": 0.15,
	"footer":  0.1,
}

// formatTests are the fixed A/B experiments started by RunAdFormatTests.
var formatTests = []domain.AdTestConfig{
	{Format: "responsive", Position: "content_top", Size: "auto", TestDuration: 7},
	{Format: "native", Position: "content_middle", Size: "fluid", TestDuration: 7},
	{Format: "banner", Position: "sidebar", Size: "300x250", TestDuration: 7},
}

// adNetworks is the waterfall configuration synced by IntegrateAdNetworks.
var adNetworks = []domain.AdNetwork{
	{Name: "Google AdSense", Priority: 1, FillRate: 0.95, AvgCPM: 2.5},
	{Name: "Media.net", Priority: 2, FillRate: 0.85, AvgCPM: 2.0},
	{Name: "PropellerAds", Priority: 3, FillRate: 0.90, AvgCPM: 1.5},
}

// Optimizer analyses placement telemetry and records advisory adjustments.
// It never talks to an ad network directly; everything it produces lands in
// the store for a human or an external sync job to pick up.
type Optimizer struct {
	store  ports.Store
	rand   ports.Rand
	logger *slog.Logger
}

// NewOptimizer wires the agent. A nil rnd falls back to a time-seeded source.
func NewOptimizer(store ports.Store, rnd ports.Rand, logger *slog.Logger) *Optimizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Optimizer{store: store, rand: rnd, logger: logger}
}

// OptimizeAdPlacements reviews the last 24h of placement telemetry and
// persists an ad_optimizations row for every slot whose expected improvement
// exceeds 10%.
func (o *Optimizer) OptimizeAdPlacements(ctx context.Context, now time.Time) ([]domain.AdOptimization, error) {
	var placements []domain.AdPlacement
	q := ports.Query{
		Gte: map[string]string{"created_at": now.Add(-24 * time.Hour).UTC().Format(time.RFC3339)},
	}
	if err := o.store.Select(ctx, "ad_placements", q, &placements); err != nil {
		return nil, fmt.Errorf("load ad placements: %w", err)
	}

	var persisted []domain.AdOptimization
	for _, placement := range placements {
		opt := o.analyzePlacement(placement)
		if opt.ExpectedImprovement <= 0.1 {
			continue
		}
		if err := o.store.Insert(ctx, "ad_optimizations", opt, nil); err != nil {
			return nil, fmt.Errorf("record optimization for %s: %w", opt.Placement, err)
		}
		persisted = append(persisted, opt)
	}

	o.debug("ad placements optimized", "reviewed", len(placements), "flagged", len(persisted))
	return persisted, nil
}

// analyzePlacement applies the advisory rules to one placement.
func (o *Optimizer) analyzePlacement(placement domain.AdPlacement) domain.AdOptimization {
	benchmark, ok := ctrBenchmarks[placement.Format+"_"+placement.Position]
	if !ok {
		benchmark = 0.5
	}
	density, ok := adDensity[placement.Position]
	if !ok {
		density = 0.2
	}

	// Page weight is not measured anywhere yet, so the load time of the
	// creative is simulated in the 500-3500ms range.
	loadTime := o.rand.Float64()*3000 + 500

	opt := domain.AdOptimization{
		Placement:  placement.Format + "_" + placement.Position,
		CurrentCTR: placement.CTR,
	}

	if placement.CTR < benchmark*0.8 {
		opt.SuggestedChanges = append(opt.SuggestedChanges, "Reposicionar anúncio para área de maior visibilidade")
		opt.ExpectedImprovement += 0.15
	}
	if placement.Format == "banner" && placement.CTR < 0.5 {
		opt.SuggestedChanges = append(opt.SuggestedChanges, "Testar formato nativo ou responsivo")
		opt.ExpectedImprovement += 0.25
	}
	if density > 0.3 {
		opt.SuggestedChanges = append(opt.SuggestedChanges, "Reduzir densidade de anúncios na região")
		opt.ExpectedImprovement += 0.1
	}
	if loadTime > 2000 {
		opt.SuggestedChanges = append(opt.SuggestedChanges, "Otimizar velocidade de carregamento do anúncio")
		opt.ExpectedImprovement += 0.2
	}

	return opt
}

// RunAdFormatTests registers the fixed set of A/B format experiments.
func (o *Optimizer) RunAdFormatTests(ctx context.Context) error {
	for _, test := range formatTests {
		record := map[string]any{
			"format":             test.Format,
			"position":           test.Position,
			"size":               test.Size,
			"test_duration_days": test.TestDuration,
			"status":             "running",
			"started_at":         time.Now().UTC(),
		}
		if err := o.store.Insert(ctx, "ad_tests", record, nil); err != nil {
			return fmt.Errorf("start ad test %s/%s: %w", test.Format, test.Position, err)
		}
	}
	o.debug("ad format tests started", "count", len(formatTests))
	return nil
}

// MonitorAndAdjustCTR flags placements whose CTR dropped under 0.5% and
// records the corrective actions for each.
func (o *Optimizer) MonitorAndAdjustCTR(ctx context.Context) error {
	var placements []domain.AdPlacement
	q := ports.Query{Lt: map[string]string{"ctr": "0.5"}}
	if err := o.store.Select(ctx, "ad_placements", q, &placements); err != nil {
		return fmt.Errorf("load low-ctr placements: %w", err)
	}

	for _, placement := range placements {
		var actions []string
		if placement.CTR < 0.3 {
			actions = append(actions, "change_ad_position", "update_ad_format")
		}
		if placement.Impressions > 1000 && placement.Clicks < 5 {
			actions = append(actions, "improve_ad_relevance", "test_different_sizes")
		}

		// Every flagged placement gets an adjustment row, even when no
		// corrective action applies, so the audit trail stays complete.
		record := map[string]any{
			"placement_id": placement.ID,
			"current_ctr":  placement.CTR,
			"actions":      actions,
			"adjusted_at":  time.Now().UTC(),
		}
		if err := o.store.Insert(ctx, "ad_adjustments", record, nil); err != nil {
			return fmt.Errorf("record adjustment for %s: %w", placement.ID, err)
		}
	}

	o.debug("ctr monitoring pass finished", "low_ctr", len(placements))
	return nil
}

// GenerateAdPerformanceReport aggregates the last 30 days of telemetry into
// one report row. Averages are ratios over the raw totals, CTR as a
// percentage and RPM as revenue per thousand impressions.
func (o *Optimizer) GenerateAdPerformanceReport(ctx context.Context, now time.Time) (domain.AdPerformanceReport, error) {
	var placements []domain.AdPlacement
	q := ports.Query{
		Gte: map[string]string{"created_at": now.AddDate(0, 0, -30).UTC().Format(time.RFC3339)},
	}
	if err := o.store.Select(ctx, "ad_placements", q, &placements); err != nil {
		return domain.AdPerformanceReport{}, fmt.Errorf("load placements for report: %w", err)
	}

	report := domain.AdPerformanceReport{Period: "Últimos 30 dias"}
	for _, placement := range placements {
		report.TotalRevenue += placement.Revenue
		report.TotalImpressions += placement.Impressions
		report.TotalClicks += placement.Clicks
	}
	if report.TotalImpressions > 0 {
		report.AvgCTR = float64(report.TotalClicks) / float64(report.TotalImpressions) * 100
		report.AvgRPM = report.TotalRevenue / float64(report.TotalImpressions) * 1000
	}

	sorted := make([]domain.AdPlacement, len(placements))
	copy(sorted, placements)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Revenue > sorted[j].Revenue })
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	report.TopPerformingPlacements = sorted
	report.OptimizationOpportunities = opportunities(placements)

	if err := o.store.Insert(ctx, "ad_reports", report, nil); err != nil {
		return domain.AdPerformanceReport{}, fmt.Errorf("store ad report: %w", err)
	}
	return report, nil
}

// opportunities derives the advisory bullet list from the raw placements.
func opportunities(placements []domain.AdPlacement) []string {
	if len(placements) == 0 {
		return nil
	}

	var ctrSum, rpmSum float64
	low := 0
	for _, placement := range placements {
		ctrSum += placement.CTR
		rpmSum += placement.RPM
		if placement.CTR < 0.3 {
			low++
		}
	}
	avgCTR := ctrSum / float64(len(placements))
	avgRPM := rpmSum / float64(len(placements))

	var out []string
	if avgCTR < 0.5 {
		out = append(out, "CTR médio abaixo do benchmark - revisar posicionamento dos anúncios")
	}
	if avgRPM < 2.0 {
		out = append(out, "RPM médio baixo - testar novos formatos e redes de anúncios")
	}
	if low > 0 {
		out = append(out, fmt.Sprintf("%d posicionamentos com CTR crítico - otimização urgente", low))
	}
	return out
}

// SegmentAudienceForAds groups visitors into targeting cohorts and stores
// the resulting segment sizes.
func (o *Optimizer) SegmentAudienceForAds(ctx context.Context) error {
	var users []domain.UserAnalytics
	if err := o.store.Select(ctx, "user_analytics", ports.Query{}, &users); err != nil {
		return fmt.Errorf("load user analytics: %w", err)
	}

	segments := map[string]int{
		"high_value":         0,
		"investment_focused": 0,
		"credit_interested":  0,
		"loan_seekers":       0,
	}
	for _, user := range users {
		if user.SessionDuration > 300 && user.PagesViewed > 5 {
			segments["high_value"]++
		}
		if hasInterest(user.Interests, "investments") {
			segments["investment_focused"]++
		}
		if hasInterest(user.Interests, "credit_cards") {
			segments["credit_interested"]++
		}
		if hasInterest(user.Interests, "loans") {
			segments["loan_seekers"]++
		}
	}

	for name, size := range segments {
		record := map[string]any{
			"segment":    name,
			"size":       size,
			"updated_at": time.Now().UTC(),
		}
		if err := o.store.Insert(ctx, "audience_segments", record, nil); err != nil {
			return fmt.Errorf("store segment %s: %w", name, err)
		}
	}

	o.debug("audience segmented", "users", len(users))
	return nil
}

func hasInterest(interests []string, key string) bool {
	for _, interest := range interests {
		if interest == key {
			return true
		}
	}
	return false
}

// IntegrateAdNetworks syncs the waterfall configuration, keyed by network
// name so repeated runs update rather than duplicate.
func (o *Optimizer) IntegrateAdNetworks(ctx context.Context) error {
	for _, network := range adNetworks {
		if err := o.store.Upsert(ctx, "ad_networks", network, "name", nil); err != nil {
			return fmt.Errorf("sync ad network %s: %w", network.Name, err)
		}
	}
	o.debug("ad networks synced", "count", len(adNetworks))
	return nil
}

func (o *Optimizer) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}
