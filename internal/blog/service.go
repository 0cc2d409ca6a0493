// Package blog serves the public read side: published articles and the
// static admin dashboard data. It reads through the anon-key store client,
// never the service-role one.
package blog

import (
	"context"
	"fmt"

	"financehub/internal/domain"
	"financehub/internal/ports"
)

const defaultArticleLimit = 10

// Service exposes read-only queries over published content.
type Service struct {
	store ports.Store
}

// NewService builds the read-side service on top of the given store.
func NewService(store ports.Store) *Service {
	return &Service{store: store}
}

// PublishedArticles lists published articles newest-first. A non-positive
// limit falls back to the default of 10.
func (s *Service) PublishedArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = defaultArticleLimit
	}

	var articles []domain.Article
	q := ports.Query{
		Eq:         map[string]string{"status": string(domain.StatusPublished)},
		Order:      "published_at",
		Descending: true,
		Limit:      limit,
	}
	if err := s.store.Select(ctx, "articles", q, &articles); err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	return articles, nil
}

// ArticleBySlug fetches one published article. A missing slug returns
// (nil, nil); drafts are never served.
func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var articles []domain.Article
	q := ports.Query{
		Eq: map[string]string{
			"slug":   slug,
			"status": string(domain.StatusPublished),
		},
		Limit: 1,
	}
	if err := s.store.Select(ctx, "articles", q, &articles); err != nil {
		return nil, fmt.Errorf("load article %s: %w", slug, err)
	}
	if len(articles) == 0 {
		return nil, nil
	}
	return &articles[0], nil
}

// DashboardStats returns the static admin dashboard numbers.
func (s *Service) DashboardStats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalRevenue:   12450.80,
		MonthlyRevenue: 3250.40,
		TotalViews:     125000,
		MonthlyViews:   45000,
		TotalClicks:    2500,
		MonthlyClicks:  890,
		Subscribers:    1250,
		CTR:            2.1,
		RPM:            4.85,
	}
}

// AgentStatuses returns the static agent table shown on the dashboard.
func (s *Service) AgentStatuses() []domain.AgentStatus {
	return []domain.AgentStatus{
		{Name: "SEO Booster", Status: "running", LastRun: "5 min atrás", NextRun: "em 55 min", Performance: 95},
		{Name: "Social Media Manager", Status: "running", LastRun: "12 min atrás", NextRun: "em 48 min", Performance: 88},
		{Name: "Viral Content Creator", Status: "running", LastRun: "8 min atrás", NextRun: "em 52 min", Performance: 92},
		{Name: "Ad Optimizer", Status: "running", LastRun: "3 min atrás", NextRun: "em 57 min", Performance: 87},
	}
}
