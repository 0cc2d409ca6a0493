package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"financehub/internal/domain"
)

// SEOAgent covers search optimization work.
type SEOAgent interface {
	MonitorHighCPCKeywords(ctx context.Context) ([]domain.KeywordData, error)
	OptimizeMetaTags(ctx context.Context) ([]domain.SEOOptimization, error)
	CreateBacklinks(ctx context.Context) ([]domain.BacklinkOpportunity, error)
	GenerateDynamicSitemap(ctx context.Context, now time.Time) (string, error)
	MonitorSEOErrors(ctx context.Context) ([]domain.SEOError, error)
	SubmitToDirectories(ctx context.Context, now time.Time) error
}

// ViralAgent covers trend-driven content generation.
type ViralAgent interface {
	IdentifyFinancialTrends(ctx context.Context) ([]domain.TrendingTopic, error)
	CreateFinancialMemes(ctx context.Context) ([]domain.ViralContent, error)
	CreateInfographics(ctx context.Context) ([]domain.ViralContent, error)
	CreateShortVideos(ctx context.Context) ([]domain.ViralContent, error)
	CreateInteractiveQuizzes(ctx context.Context) ([]domain.ViralContent, error)
	CreateViralCalculators(ctx context.Context) ([]domain.ViralContent, error)
	CreateEventBasedContent(ctx context.Context) ([]domain.ViralContent, error)
	ScheduleViralContent(ctx context.Context, now time.Time) ([]domain.ScheduledContent, error)
}

// SocialAgent covers post scheduling and engagement.
type SocialAgent interface {
	ScheduleAutomaticPosts(ctx context.Context, now time.Time) error
	AutoEngage(ctx context.Context) error
	AnalyzePostPerformance(ctx context.Context, now time.Time) (domain.PostAnalytics, error)
	TrendingFinanceTopics() []domain.PlatformTrend
}

// AdsAgent covers monetization telemetry and advisory adjustments.
type AdsAgent interface {
	OptimizeAdPlacements(ctx context.Context, now time.Time) ([]domain.AdOptimization, error)
	RunAdFormatTests(ctx context.Context) error
	MonitorAndAdjustCTR(ctx context.Context) error
	GenerateAdPerformanceReport(ctx context.Context, now time.Time) (domain.AdPerformanceReport, error)
	SegmentAudienceForAds(ctx context.Context) error
	IntegrateAdNetworks(ctx context.Context) error
}

// Deps wires all agents into the orchestrator.
type Deps struct {
	SEO    SEOAgent
	Viral  ViralAgent
	Social SocialAgent
	Ads    AdsAgent
	Logger *slog.Logger
}

// Automation sequences the four agents. Agents run strictly one after
// another; the first error aborts the whole run and is reported as-is.
type Automation struct {
	seo    SEOAgent
	viral  ViralAgent
	social SocialAgent
	ads    AdsAgent
	logger *slog.Logger
}

// MarketingReport is the combined output of a report run.
type MarketingReport struct {
	Period  string                     `json:"period"`
	Social  domain.PostAnalytics       `json:"social"`
	Ads     domain.AdPerformanceReport `json:"ads"`
	Summary ReportSummary              `json:"summary"`
}

// ReportSummary is the headline block of a marketing report.
type ReportSummary struct {
	TotalPosts   int      `json:"total_posts"`
	TotalRevenue float64  `json:"total_revenue"`
	TopPlatforms []string `json:"top_platforms"`
}

// New constructs the orchestration component.
func New(deps Deps) *Automation {
	return &Automation{
		seo:    deps.SEO,
		viral:  deps.Viral,
		social: deps.Social,
		ads:    deps.Ads,
		logger: deps.Logger,
	}
}

// AgentResult is one agent's slice of a full run summary. The keys vary
// per agent: keyword and meta batches for SEO, content batches for viral,
// scheduling and performance for social, placement advice and the report
// for ads. Every entry carries the agent name under "agent".
type AgentResult map[string]any

// RunFull executes the complete marketing cycle: SEO, viral content,
// social scheduling, ad optimization, in that order. It returns one
// result entry per agent with that agent's key outputs.
func (a *Automation) RunFull(ctx context.Context) ([]AgentResult, error) {
	now := time.Now()

	a.info("full automation started")

	keywords, err := a.seo.MonitorHighCPCKeywords(ctx)
	if err != nil {
		return nil, fmt.Errorf("monitor keywords: %w", err)
	}
	seoOpts, err := a.seo.OptimizeMetaTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("optimize meta tags: %w", err)
	}
	if _, err := a.seo.MonitorSEOErrors(ctx); err != nil {
		return nil, fmt.Errorf("monitor seo errors: %w", err)
	}
	if _, err := a.seo.GenerateDynamicSitemap(ctx, now); err != nil {
		return nil, fmt.Errorf("generate sitemap: %w", err)
	}

	if _, err := a.viral.IdentifyFinancialTrends(ctx); err != nil {
		return nil, fmt.Errorf("identify trends: %w", err)
	}
	memes, err := a.viral.CreateFinancialMemes(ctx)
	if err != nil {
		return nil, fmt.Errorf("create memes: %w", err)
	}
	videos, err := a.viral.CreateShortVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("create videos: %w", err)
	}
	if _, err := a.viral.CreateInfographics(ctx); err != nil {
		return nil, fmt.Errorf("create infographics: %w", err)
	}
	if _, err := a.viral.ScheduleViralContent(ctx, now); err != nil {
		return nil, fmt.Errorf("schedule viral content: %w", err)
	}

	if err := a.social.ScheduleAutomaticPosts(ctx, now); err != nil {
		return nil, fmt.Errorf("schedule posts: %w", err)
	}
	if err := a.social.AutoEngage(ctx); err != nil {
		return nil, fmt.Errorf("auto engage: %w", err)
	}
	performance, err := a.social.AnalyzePostPerformance(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("analyze posts: %w", err)
	}

	adOpts, err := a.ads.OptimizeAdPlacements(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("optimize placements: %w", err)
	}
	if err := a.ads.MonitorAndAdjustCTR(ctx); err != nil {
		return nil, fmt.Errorf("monitor ctr: %w", err)
	}
	if err := a.ads.RunAdFormatTests(ctx); err != nil {
		return nil, fmt.Errorf("run ad tests: %w", err)
	}
	if err := a.ads.SegmentAudienceForAds(ctx); err != nil {
		return nil, fmt.Errorf("segment audience: %w", err)
	}
	adReport, err := a.ads.GenerateAdPerformanceReport(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("ad report: %w", err)
	}

	a.info("full automation finished")
	return []AgentResult{
		{"agent": "seo_booster", "keywords": keywords, "optimizations": seoOpts},
		{"agent": "viral_creator", "memes": memes, "videos": videos},
		{"agent": "social_media", "action": "posts_scheduled", "performance": performance},
		{"agent": "ad_optimizer", "optimizations": adOpts, "report": adReport},
	}, nil
}

// RunScheduled executes the slice of work assigned to one hour of the day.
// Hours without a dedicated task fall through to CTR monitoring.
func (a *Automation) RunScheduled(ctx context.Context, hour int) error {
	now := time.Now()

	a.info("scheduled automation", "hour", hour)

	switch hour {
	case 6:
		if _, err := a.seo.MonitorHighCPCKeywords(ctx); err != nil {
			return fmt.Errorf("monitor keywords: %w", err)
		}
		if _, err := a.viral.IdentifyFinancialTrends(ctx); err != nil {
			return fmt.Errorf("identify trends: %w", err)
		}
		return nil
	case 8:
		return a.social.ScheduleAutomaticPosts(ctx, now)
	case 12:
		_, err := a.viral.CreateFinancialMemes(ctx)
		return err
	case 14:
		if _, err := a.viral.CreateShortVideos(ctx); err != nil {
			return fmt.Errorf("create videos: %w", err)
		}
		if _, err := a.viral.CreateInfographics(ctx); err != nil {
			return fmt.Errorf("create infographics: %w", err)
		}
		if _, err := a.viral.CreateInteractiveQuizzes(ctx); err != nil {
			return fmt.Errorf("create quizzes: %w", err)
		}
		if _, err := a.viral.CreateViralCalculators(ctx); err != nil {
			return fmt.Errorf("create calculators: %w", err)
		}
		if _, err := a.viral.CreateEventBasedContent(ctx); err != nil {
			return fmt.Errorf("create event content: %w", err)
		}
		return nil
	case 17:
		return a.social.ScheduleAutomaticPosts(ctx, now)
	case 20:
		return a.social.AutoEngage(ctx)
	case 22:
		_, err := a.ads.GenerateAdPerformanceReport(ctx, now)
		return err
	default:
		return a.ads.MonitorAndAdjustCTR(ctx)
	}
}

// Report aggregates social and ad performance into one document.
func (a *Automation) Report(ctx context.Context, now time.Time) (MarketingReport, error) {
	social, err := a.social.AnalyzePostPerformance(ctx, now)
	if err != nil {
		return MarketingReport{}, fmt.Errorf("social report: %w", err)
	}

	ads, err := a.ads.GenerateAdPerformanceReport(ctx, now)
	if err != nil {
		return MarketingReport{}, fmt.Errorf("ads report: %w", err)
	}

	return MarketingReport{
		Period: "Últimos 30 dias",
		Social: social,
		Ads:    ads,
		Summary: ReportSummary{
			TotalPosts:   social.TotalPosts,
			TotalRevenue: ads.TotalRevenue,
			TopPlatforms: []string{"Instagram", "TikTok", "Twitter"},
		},
	}, nil
}

func (a *Automation) info(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
	}
}
