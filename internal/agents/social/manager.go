package social

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"financehub/internal/domain"
	"financehub/internal/ports"
)

// engagementActions are the named engagement routines. All of them are
// no-ops that only log their execution; real platform APIs are not wired.
var engagementActions = []string{
	"like_finance_posts",
	"comment_on_trending",
	"share_relevant_content",
	"follow_finance_influencers",
}

// trendingTopics mocks the per-platform trend feed.
var trendingTopics = []domain.PlatformTrend{
	{Keyword: "bitcoin", Volume: 100000, Platform: "twitter"},
	{Keyword: "investimentos", Volume: 50000, Platform: "instagram"},
	{Keyword: "poupança", Volume: 30000, Platform: "tiktok"},
	{Keyword: "cartão de crédito", Volume: 40000, Platform: "linkedin"},
}

// Manager turns articles into platform-specific posts and schedules them.
type Manager struct {
	store   ports.Store
	rand    ports.Rand
	logger  *slog.Logger
	siteURL string
}

// NewManager wires the agent. A nil rnd falls back to a time-seeded source.
func NewManager(store ports.Store, siteURL string, rnd ports.Rand, logger *slog.Logger) *Manager {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{store: store, rand: rnd, logger: logger, siteURL: siteURL}
}

// GenerateSocialContent builds one post per platform for the given article.
func (m *Manager) GenerateSocialContent(ctx context.Context, articleID string, now time.Time) ([]domain.SocialPost, error) {
	var articles []domain.Article
	q := ports.Query{Eq: map[string]string{"id": articleID}, Limit: 1}
	if err := m.store.Select(ctx, "articles", q, &articles); err != nil {
		return nil, fmt.Errorf("load article %s: %w", articleID, err)
	}
	if len(articles) == 0 {
		return nil, nil
	}
	article := articles[0]
	url := fmt.Sprintf("%s/blog/%s", m.siteURL, article.Slug)

	posts := make([]domain.SocialPost, 0, len(platforms))
	for _, platform := range platforms {
		var content string
		switch platform {
		case "twitter":
			content = twitterThread(article, url)
		case "linkedin":
			content = linkedInPost(article, url)
		case "instagram":
			content = instagramStory(article)
		case "tiktok":
			content = tikTokScript(article)
		}

		posts = append(posts, domain.SocialPost{
			Platform:      platform,
			Content:       content,
			Hashtags:      hashtagsByPlatform[platform],
			ScheduledTime: m.optimalPostTime(platform, now),
			ArticleID:     articleID,
			Status:        domain.PostScheduled,
		})
	}

	return posts, nil
}

// optimalPostTime picks a random optimal hour for the platform, rolling to
// tomorrow when that slot already passed today.
func (m *Manager) optimalPostTime(platform string, now time.Time) time.Time {
	hours, ok := optimalHours[platform]
	if !ok {
		hours = []int{12}
	}

	hour := hours[m.rand.Intn(len(hours))]
	minute := m.rand.Intn(60)

	scheduled := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !scheduled.After(now) {
		scheduled = scheduled.AddDate(0, 0, 1)
	}
	return scheduled
}

// ScheduleAutomaticPosts generates and persists posts for the five most
// recent published articles. There is no idempotency check: running this
// twice doubles the rows for the same article and platform.
func (m *Manager) ScheduleAutomaticPosts(ctx context.Context, now time.Time) error {
	var articles []domain.Article
	q := ports.Query{
		Eq:         map[string]string{"status": string(domain.StatusPublished)},
		Order:      "published_at",
		Descending: true,
		Limit:      5,
	}
	if err := m.store.Select(ctx, "articles", q, &articles); err != nil {
		return fmt.Errorf("load recent articles: %w", err)
	}

	for _, article := range articles {
		posts, err := m.GenerateSocialContent(ctx, article.ID, now)
		if err != nil {
			return err
		}

		for _, post := range posts {
			if err := m.store.Insert(ctx, "social_posts", post, nil); err != nil {
				return fmt.Errorf("schedule %s post for %s: %w", post.Platform, article.Slug, err)
			}
		}
	}

	m.debug("automatic posts scheduled", "articles", len(articles))
	return nil
}

// AutoEngage walks the engagement action list, logging each run to the
// engagement_logs table.
func (m *Manager) AutoEngage(ctx context.Context) error {
	for _, action := range engagementActions {
		m.debug("engagement action", "action", action)

		record := map[string]any{
			"action":      action,
			"executed_at": time.Now().UTC(),
			"status":      "completed",
		}
		if err := m.store.Insert(ctx, "engagement_logs", record, nil); err != nil {
			return fmt.Errorf("log engagement %s: %w", action, err)
		}
	}
	return nil
}

// AnalyzePostPerformance counts posts of the last seven days per platform.
// Despite the name, no engagement metric is computed; the source data for
// that does not exist yet.
func (m *Manager) AnalyzePostPerformance(ctx context.Context, now time.Time) (domain.PostAnalytics, error) {
	var posts []domain.SocialPost
	q := ports.Query{
		Gte: map[string]string{"created_at": now.AddDate(0, 0, -7).UTC().Format(time.RFC3339)},
	}
	if err := m.store.Select(ctx, "social_posts", q, &posts); err != nil {
		return domain.PostAnalytics{}, fmt.Errorf("load recent posts: %w", err)
	}

	analytics := domain.PostAnalytics{
		TotalPosts: len(posts),
		ByPlatform: map[string]int{},
	}
	for _, post := range posts {
		analytics.ByPlatform[post.Platform]++
	}

	return analytics, nil
}

// TrendingFinanceTopics returns the mock per-platform trend list.
func (m *Manager) TrendingFinanceTopics() []domain.PlatformTrend {
	return trendingTopics
}

func (m *Manager) debug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}
