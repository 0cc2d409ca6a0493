package server

import (
	"context"
	"fmt"
	"time"
)

// actionFunc runs one agent action and returns its JSON-serialisable result.
// Actions without a meaningful payload return nil.
type actionFunc func(ctx context.Context) (any, error)

// UnknownActionError marks a request naming an agent or action that does not
// exist. The handler maps it to a 400 instead of the generic 500.
type UnknownActionError struct {
	Agent  string
	Action string
}

func (e *UnknownActionError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("unknown agent %q", e.Agent)
	}
	return fmt.Sprintf("unknown action %q for agent %q", e.Action, e.Agent)
}

// actions builds the agent/action dispatch table. Every entry closes over
// the agents held by the server; lookups never fall through to a default.
func (s *Server) actions() map[string]map[string]actionFunc {
	return map[string]map[string]actionFunc{
		"seo_booster": {
			"monitor_keywords": func(ctx context.Context) (any, error) {
				return s.seo.MonitorHighCPCKeywords(ctx)
			},
			"optimize_meta": func(ctx context.Context) (any, error) {
				return s.seo.OptimizeMetaTags(ctx)
			},
			"create_backlinks": func(ctx context.Context) (any, error) {
				return s.seo.CreateBacklinks(ctx)
			},
			"generate_sitemap": func(ctx context.Context) (any, error) {
				return s.seo.GenerateDynamicSitemap(ctx, time.Now())
			},
			"submit_directories": func(ctx context.Context) (any, error) {
				return nil, s.seo.SubmitToDirectories(ctx, time.Now())
			},
		},
		"social_media": {
			"schedule_posts": func(ctx context.Context) (any, error) {
				return nil, s.social.ScheduleAutomaticPosts(ctx, time.Now())
			},
			"auto_engage": func(ctx context.Context) (any, error) {
				return nil, s.social.AutoEngage(ctx)
			},
			"analyze_performance": func(ctx context.Context) (any, error) {
				return s.social.AnalyzePostPerformance(ctx, time.Now())
			},
			"trending_topics": func(ctx context.Context) (any, error) {
				return s.social.TrendingFinanceTopics(), nil
			},
		},
		"viral_creator": {
			"create_memes": func(ctx context.Context) (any, error) {
				return s.viral.CreateFinancialMemes(ctx)
			},
			"create_infographics": func(ctx context.Context) (any, error) {
				return s.viral.CreateInfographics(ctx)
			},
			"create_videos": func(ctx context.Context) (any, error) {
				return s.viral.CreateShortVideos(ctx)
			},
			"schedule_viral": func(ctx context.Context) (any, error) {
				return s.viral.ScheduleViralContent(ctx, time.Now())
			},
		},
		"ad_optimizer": {
			"optimize_placements": func(ctx context.Context) (any, error) {
				return s.ads.OptimizeAdPlacements(ctx, time.Now())
			},
			"run_tests": func(ctx context.Context) (any, error) {
				return nil, s.ads.RunAdFormatTests(ctx)
			},
			"monitor_ctr": func(ctx context.Context) (any, error) {
				return nil, s.ads.MonitorAndAdjustCTR(ctx)
			},
			"generate_report": func(ctx context.Context) (any, error) {
				return s.ads.GenerateAdPerformanceReport(ctx, time.Now())
			},
			"integrate_networks": func(ctx context.Context) (any, error) {
				return nil, s.ads.IntegrateAdNetworks(ctx)
			},
		},
	}
}

// dispatch resolves and runs one agent action.
func (s *Server) dispatch(ctx context.Context, agent, action string) (any, error) {
	byAgent, ok := s.actions()[agent]
	if !ok {
		return nil, &UnknownActionError{Agent: agent}
	}
	fn, ok := byAgent[action]
	if !ok {
		return nil, &UnknownActionError{Agent: agent, Action: action}
	}
	return fn(ctx)
}
