package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"financehub/internal/domain"
)

// spyAgents implements all four agent interfaces, recording call names and
// optionally failing on one of them.
type spyAgents struct {
	calls  []string
	failOn string
}

func (s *spyAgents) record(name string) error {
	s.calls = append(s.calls, name)
	if name == s.failOn {
		return errors.New("boom")
	}
	return nil
}

func (s *spyAgents) MonitorHighCPCKeywords(context.Context) ([]domain.KeywordData, error) {
	return nil, s.record("monitor_keywords")
}
func (s *spyAgents) OptimizeMetaTags(context.Context) ([]domain.SEOOptimization, error) {
	return nil, s.record("optimize_meta")
}
func (s *spyAgents) CreateBacklinks(context.Context) ([]domain.BacklinkOpportunity, error) {
	return nil, s.record("create_backlinks")
}
func (s *spyAgents) GenerateDynamicSitemap(context.Context, time.Time) (string, error) {
	return "", s.record("generate_sitemap")
}
func (s *spyAgents) MonitorSEOErrors(context.Context) ([]domain.SEOError, error) {
	return nil, s.record("monitor_seo_errors")
}
func (s *spyAgents) SubmitToDirectories(context.Context, time.Time) error {
	return s.record("submit_directories")
}

func (s *spyAgents) IdentifyFinancialTrends(context.Context) ([]domain.TrendingTopic, error) {
	return nil, s.record("identify_trends")
}
func (s *spyAgents) CreateFinancialMemes(context.Context) ([]domain.ViralContent, error) {
	return nil, s.record("create_memes")
}
func (s *spyAgents) CreateInfographics(context.Context) ([]domain.ViralContent, error) {
	return nil, s.record("create_infographics")
}
func (s *spyAgents) CreateShortVideos(context.Context) ([]domain.ViralContent, error) {
	return nil, s.record("create_videos")
}
func (s *spyAgents) CreateInteractiveQuizzes(context.Context) ([]domain.ViralContent, error) {
	return nil, s.record("create_quizzes")
}
func (s *spyAgents) CreateViralCalculators(context.Context) ([]domain.ViralContent, error) {
	return nil, s.record("create_calculators")
}
func (s *spyAgents) CreateEventBasedContent(context.Context) ([]domain.ViralContent, error) {
	return nil, s.record("create_event_content")
}
func (s *spyAgents) ScheduleViralContent(context.Context, time.Time) ([]domain.ScheduledContent, error) {
	return nil, s.record("schedule_viral")
}

func (s *spyAgents) ScheduleAutomaticPosts(context.Context, time.Time) error {
	return s.record("schedule_posts")
}
func (s *spyAgents) AutoEngage(context.Context) error { return s.record("auto_engage") }
func (s *spyAgents) AnalyzePostPerformance(context.Context, time.Time) (domain.PostAnalytics, error) {
	return domain.PostAnalytics{TotalPosts: 7}, s.record("analyze_posts")
}
func (s *spyAgents) TrendingFinanceTopics() []domain.PlatformTrend {
	s.calls = append(s.calls, "trending_topics")
	return nil
}

func (s *spyAgents) OptimizeAdPlacements(context.Context, time.Time) ([]domain.AdOptimization, error) {
	return nil, s.record("optimize_placements")
}
func (s *spyAgents) RunAdFormatTests(context.Context) error { return s.record("run_ad_tests") }
func (s *spyAgents) MonitorAndAdjustCTR(context.Context) error {
	return s.record("monitor_ctr")
}
func (s *spyAgents) GenerateAdPerformanceReport(context.Context, time.Time) (domain.AdPerformanceReport, error) {
	return domain.AdPerformanceReport{TotalRevenue: 600}, s.record("ad_report")
}
func (s *spyAgents) SegmentAudienceForAds(context.Context) error {
	return s.record("segment_audience")
}
func (s *spyAgents) IntegrateAdNetworks(context.Context) error {
	return s.record("integrate_networks")
}

func newAutomation(spy *spyAgents) *Automation {
	return New(Deps{SEO: spy, Viral: spy, Social: spy, Ads: spy})
}

func TestRunFullOrder(t *testing.T) {
	t.Parallel()

	spy := &spyAgents{}
	results, err := newAutomation(spy).RunFull(context.Background())
	if err != nil {
		t.Fatalf("RunFull: %v", err)
	}

	want := []string{
		"monitor_keywords", "optimize_meta", "monitor_seo_errors", "generate_sitemap",
		"identify_trends", "create_memes", "create_videos", "create_infographics", "schedule_viral",
		"schedule_posts", "auto_engage", "analyze_posts",
		"optimize_placements", "monitor_ctr", "run_ad_tests", "segment_audience", "ad_report",
	}
	if len(spy.calls) != len(want) {
		t.Fatalf("got %d calls, want %d: %v", len(spy.calls), len(want), spy.calls)
	}
	for i, name := range want {
		if spy.calls[i] != name {
			t.Fatalf("call %d = %s, want %s (all: %v)", i, spy.calls[i], name, spy.calls)
		}
	}

	agents := make([]string, len(results))
	for i, result := range results {
		agents[i] = result["agent"].(string)
	}
	wantAgents := []string{"seo_booster", "viral_creator", "social_media", "ad_optimizer"}
	for i, name := range wantAgents {
		if i >= len(agents) || agents[i] != name {
			t.Fatalf("result agents = %v, want %v", agents, wantAgents)
		}
	}

	social := results[2]
	if social["action"] != "posts_scheduled" {
		t.Fatalf("social action = %v", social["action"])
	}
	if perf, ok := social["performance"].(domain.PostAnalytics); !ok || perf.TotalPosts != 7 {
		t.Fatalf("social performance = %v", social["performance"])
	}
	adsResult := results[3]
	if report, ok := adsResult["report"].(domain.AdPerformanceReport); !ok || report.TotalRevenue != 600 {
		t.Fatalf("ads report = %v", adsResult["report"])
	}
}

func TestRunFullAbortsOnError(t *testing.T) {
	t.Parallel()

	spy := &spyAgents{failOn: "create_memes"}
	_, err := newAutomation(spy).RunFull(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	for _, call := range spy.calls {
		if call == "schedule_posts" || call == "optimize_placements" {
			t.Fatalf("later agent ran after failure: %v", spy.calls)
		}
	}
}

func TestRunScheduledHourMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour int
		want []string
	}{
		{6, []string{"monitor_keywords", "identify_trends"}},
		{8, []string{"schedule_posts"}},
		{12, []string{"create_memes"}},
		{14, []string{"create_videos", "create_infographics", "create_quizzes", "create_calculators", "create_event_content"}},
		{17, []string{"schedule_posts"}},
		{20, []string{"auto_engage"}},
		{22, []string{"ad_report"}},
		{3, []string{"monitor_ctr"}},
	}

	for _, tc := range cases {
		spy := &spyAgents{}
		if err := newAutomation(spy).RunScheduled(context.Background(), tc.hour); err != nil {
			t.Fatalf("hour %d: %v", tc.hour, err)
		}
		if len(spy.calls) != len(tc.want) {
			t.Fatalf("hour %d: got %v, want %v", tc.hour, spy.calls, tc.want)
		}
		for i, name := range tc.want {
			if spy.calls[i] != name {
				t.Fatalf("hour %d call %d = %s, want %s", tc.hour, i, spy.calls[i], name)
			}
		}
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	spy := &spyAgents{}
	report, err := newAutomation(spy).Report(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if report.Period != "Últimos 30 dias" {
		t.Fatalf("period = %q", report.Period)
	}
	if report.Summary.TotalPosts != 7 || report.Summary.TotalRevenue != 600 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
	if len(report.Summary.TopPlatforms) != 3 {
		t.Fatalf("top platforms: %v", report.Summary.TopPlatforms)
	}
}
