package ads

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"financehub/internal/domain"
	"financehub/internal/ports"
)

type fakeStore struct {
	data     map[string]any
	inserted map[string][]any
	upserted map[string][]any
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]any{}, inserted: map[string][]any{}, upserted: map[string][]any{}}
}

func (f *fakeStore) Insert(_ context.Context, table string, record any, _ any) error {
	f.inserted[table] = append(f.inserted[table], record)
	return nil
}

func (f *fakeStore) Select(_ context.Context, table string, _ ports.Query, dest any) error {
	rows, ok := f.data[table]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeStore) Update(context.Context, string, ports.Query, any, any) error { return nil }

func (f *fakeStore) Upsert(_ context.Context, table string, record any, _ string, _ any) error {
	f.upserted[table] = append(f.upserted[table], record)
	return nil
}

type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 { return r.f }

func TestAnalyzePlacementLowCTR(t *testing.T) {
	t.Parallel()

	// Float64()=0 keeps the simulated load time at 500ms, so only the CTR
	// rules can fire.
	optimizer := NewOptimizer(newFakeStore(), fixedRand{f: 0}, nil)

	placement := domain.AdPlacement{Format: "banner", Position: "header", CTR: 0.2}
	opt := optimizer.analyzePlacement(placement)

	if opt.Placement != "banner_header" {
		t.Fatalf("placement key = %q", opt.Placement)
	}

	var reposition, reformat bool
	for _, change := range opt.SuggestedChanges {
		if strings.Contains(change, "Reposicionar") {
			reposition = true
		}
		if strings.Contains(change, "formato nativo") {
			reformat = true
		}
	}
	if !reposition || !reformat {
		t.Fatalf("missing expected suggestions: %+v", opt.SuggestedChanges)
	}
	if opt.ExpectedImprovement < 0.4-1e-9 {
		t.Fatalf("improvement = %v, want 0.15+0.25", opt.ExpectedImprovement)
	}
}

func TestAnalyzePlacementHealthy(t *testing.T) {
	t.Parallel()

	optimizer := NewOptimizer(newFakeStore(), fixedRand{f: 0}, nil)

	placement := domain.AdPlacement{Format: "native", Position: "content", CTR: 1.5}
	opt := optimizer.analyzePlacement(placement)
	if len(opt.SuggestedChanges) != 0 || opt.ExpectedImprovement != 0 {
		t.Fatalf("healthy placement flagged: %+v", opt)
	}
}

func TestOptimizeAdPlacementsPersistsFlagged(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.data["ad_placements"] = []domain.AdPlacement{
		{Format: "banner", Position: "header", CTR: 0.2},
		{Format: "native", Position: "content", CTR: 1.5},
	}
	optimizer := NewOptimizer(store, fixedRand{f: 0}, nil)

	flagged, err := optimizer.OptimizeAdPlacements(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("OptimizeAdPlacements: %v", err)
	}
	if len(flagged) != 1 {
		t.Fatalf("got %d flagged placements, want 1", len(flagged))
	}
	if got := len(store.inserted["ad_optimizations"]); got != 1 {
		t.Fatalf("got %d persisted optimizations, want 1", got)
	}
}

func TestMonitorAndAdjustCTR(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.data["ad_placements"] = []domain.AdPlacement{
		{ID: "p1", CTR: 0.2},
		{ID: "p2", CTR: 0.4, Impressions: 5000, Clicks: 2},
		{ID: "p3", CTR: 0.45, Impressions: 100, Clicks: 1},
	}
	optimizer := NewOptimizer(store, fixedRand{}, nil)

	if err := optimizer.MonitorAndAdjustCTR(context.Background()); err != nil {
		t.Fatalf("MonitorAndAdjustCTR: %v", err)
	}

	adjustments := store.inserted["ad_adjustments"]
	if len(adjustments) != 3 {
		t.Fatalf("got %d adjustments, want one per low-ctr placement", len(adjustments))
	}

	first, ok := adjustments[0].(map[string]any)
	if !ok {
		t.Fatalf("adjustment is %T, want map", adjustments[0])
	}
	actions, ok := first["actions"].([]string)
	if !ok {
		t.Fatalf("actions is %T", first["actions"])
	}
	if len(actions) != 2 || actions[0] != "change_ad_position" {
		t.Fatalf("unexpected actions for p1: %v", actions)
	}

	// p3 is flagged but triggers neither rule; its row still lands with an
	// empty action list.
	last := adjustments[2].(map[string]any)
	if last["placement_id"] != "p3" {
		t.Fatalf("third adjustment for %v, want p3", last["placement_id"])
	}
	if got, _ := last["actions"].([]string); len(got) != 0 {
		t.Fatalf("p3 actions = %v, want none", got)
	}
}

func TestRunAdFormatTests(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	optimizer := NewOptimizer(store, fixedRand{}, nil)

	if err := optimizer.RunAdFormatTests(context.Background()); err != nil {
		t.Fatalf("RunAdFormatTests: %v", err)
	}

	tests := store.inserted["ad_tests"]
	if len(tests) != 3 {
		t.Fatalf("got %d ad tests, want 3", len(tests))
	}

	want := []struct{ format, position, size string }{
		{"responsive", "content_top", "auto"},
		{"native", "content_middle", "fluid"},
		{"banner", "sidebar", "300x250"},
	}
	for i, w := range want {
		record := tests[i].(map[string]any)
		if record["format"] != w.format || record["position"] != w.position || record["size"] != w.size {
			t.Fatalf("test %d = %v, want %+v", i, record, w)
		}
		if record["test_duration_days"] != 7 {
			t.Fatalf("test %d duration = %v, want 7", i, record["test_duration_days"])
		}
	}
}

func TestGenerateAdPerformanceReport(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.data["ad_placements"] = []domain.AdPlacement{
		{ID: "p1", Revenue: 100, Impressions: 10000, Clicks: 50, CTR: 0.5, RPM: 10},
		{ID: "p2", Revenue: 300, Impressions: 30000, Clicks: 150, CTR: 0.5, RPM: 10},
		{ID: "p3", Revenue: 200, Impressions: 20000, Clicks: 100, CTR: 0.5, RPM: 10},
	}
	optimizer := NewOptimizer(store, fixedRand{}, nil)

	report, err := optimizer.GenerateAdPerformanceReport(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("GenerateAdPerformanceReport: %v", err)
	}

	if report.Period != "Últimos 30 dias" {
		t.Fatalf("period = %q", report.Period)
	}
	if report.TotalRevenue != 600 || report.TotalImpressions != 60000 || report.TotalClicks != 300 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	if report.AvgCTR != 0.5 {
		t.Fatalf("avg ctr = %v, want 0.5 (300/60000*100)", report.AvgCTR)
	}
	if report.AvgRPM != 10 {
		t.Fatalf("avg rpm = %v, want 10 (600/60000*1000)", report.AvgRPM)
	}

	if len(report.TopPerformingPlacements) != 3 || report.TopPerformingPlacements[0].ID != "p2" {
		t.Fatalf("top placements not sorted by revenue: %+v", report.TopPerformingPlacements)
	}

	if got := len(store.inserted["ad_reports"]); got != 1 {
		t.Fatalf("got %d stored reports, want 1", got)
	}
}

func TestSegmentAudienceForAds(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.data["user_analytics"] = []domain.UserAnalytics{
		{SessionDuration: 400, PagesViewed: 8, Interests: []string{"investments"}},
		{SessionDuration: 100, PagesViewed: 2, Interests: []string{"credit_cards"}},
		{SessionDuration: 200, PagesViewed: 3, Interests: []string{"loans", "investments_advanced"}},
	}
	optimizer := NewOptimizer(store, fixedRand{}, nil)

	if err := optimizer.SegmentAudienceForAds(context.Background()); err != nil {
		t.Fatalf("SegmentAudienceForAds: %v", err)
	}

	segments := map[string]int{}
	for _, row := range store.inserted["audience_segments"] {
		record, ok := row.(map[string]any)
		if !ok {
			t.Fatalf("segment row is %T, want map", row)
		}
		segments[record["segment"].(string)] = record["size"].(int)
	}

	want := map[string]int{"high_value": 1, "investment_focused": 1, "credit_interested": 1, "loan_seekers": 1}
	for name, size := range want {
		if segments[name] != size {
			t.Fatalf("segment %s = %d, want %d (all: %+v)", name, segments[name], size, segments)
		}
	}
}

func TestIntegrateAdNetworks(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	optimizer := NewOptimizer(store, fixedRand{}, nil)

	for i := 0; i < 2; i++ {
		if err := optimizer.IntegrateAdNetworks(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	// Upserts keyed by name: repeated runs refresh, never multiply.
	networks := store.upserted["ad_networks"]
	if len(networks) != 6 {
		t.Fatalf("got %d upsert calls, want 3 per run", len(networks))
	}
	first, ok := networks[0].(domain.AdNetwork)
	if !ok {
		t.Fatalf("network is %T", networks[0])
	}
	if first.Name != "Google AdSense" || first.Priority != 1 {
		t.Fatalf("unexpected first network: %+v", first)
	}
}
