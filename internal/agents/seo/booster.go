package seo

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"financehub/internal/domain"
	"financehub/internal/ports"
)

// Booster bundles the SEO automation routines: keyword monitoring, meta-tag
// rewrites, backlink outreach, sitemap generation and error fixing. Every
// run appends fresh rows; nothing is deduplicated.
type Booster struct {
	store   ports.Store
	rand    ports.Rand
	logger  *slog.Logger
	siteURL string
}

// NewBooster wires the agent. A nil rnd falls back to a time-seeded source.
func NewBooster(store ports.Store, siteURL string, rnd ports.Rand, logger *slog.Logger) *Booster {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Booster{store: store, rand: rnd, logger: logger, siteURL: siteURL}
}

// MonitorHighCPCKeywords refreshes the tracked_keywords cache from the fixed
// monitoring table and returns the table.
func (b *Booster) MonitorHighCPCKeywords(ctx context.Context) ([]domain.KeywordData, error) {
	for _, kw := range highCPCKeywords {
		record := map[string]any{
			"keyword":          kw.Keyword,
			"volume":           kw.Volume,
			"difficulty":       kw.Difficulty,
			"cpc":              kw.CPC,
			"trend":            kw.Trend,
			"related_keywords": kw.RelatedKeywords,
			"last_updated":     time.Now().UTC(),
		}
		if err := b.store.Upsert(ctx, "tracked_keywords", record, "keyword", nil); err != nil {
			return nil, fmt.Errorf("track keyword %q: %w", kw.Keyword, err)
		}
	}

	b.debug("keywords refreshed", "count", len(highCPCKeywords))
	return highCPCKeywords, nil
}

// OptimizeMetaTags rewrites title and meta description of every published
// article not yet flagged seo_optimized. The rewrite is applied whether or
// not the heuristics flagged the title itself.
func (b *Booster) OptimizeMetaTags(ctx context.Context) ([]domain.SEOOptimization, error) {
	var articles []domain.Article
	q := ports.Query{
		Eq: map[string]string{"status": string(domain.StatusPublished)},
		Is: map[string]string{"seo_optimized": "false"},
	}
	if err := b.store.Select(ctx, "articles", q, &articles); err != nil {
		return nil, fmt.Errorf("load unoptimized articles: %w", err)
	}

	optimizations := make([]domain.SEOOptimization, 0, len(articles))
	for _, article := range articles {
		opt := b.optimizeArticle(article)
		if err := b.applyMetaOptimizations(ctx, article.ID, opt); err != nil {
			return nil, err
		}
		optimizations = append(optimizations, opt)
	}

	b.debug("meta tags optimized", "articles", len(optimizations))
	return optimizations, nil
}

// optimizeArticle runs the heuristic checks and accumulates the additive
// improvement estimate.
func (b *Booster) optimizeArticle(article domain.Article) domain.SEOOptimization {
	keyword := targetKeyword(article)

	var suggestions []string
	var improvement float64

	if !strings.Contains(strings.ToLower(article.Title), strings.ToLower(keyword)) {
		suggestions = append(suggestions, fmt.Sprintf("Incluir palavra-chave %q no título", keyword))
		improvement += 0.15
	}

	if len(article.MetaDescription) < 150 {
		suggestions = append(suggestions, "Criar meta description otimizada (150-160 caracteres)")
		improvement += 0.1
	}

	if headings, err := analyzeHeadings(article.Content); err == nil && headings.NeedsWork {
		suggestions = append(suggestions, "Otimizar estrutura de headings (H1, H2, H3)")
		improvement += 0.12
	}

	if density := keywordDensity(article.Content, keyword); density < 0.5 || density > 3 {
		suggestions = append(suggestions, fmt.Sprintf("Ajustar densidade da palavra-chave para 1-2%% (atual: %.1f%%)", density))
		improvement += 0.08
	}

	if links, err := internalLinkCount(article.Content, b.siteURL); err == nil && links < 3 {
		suggestions = append(suggestions, "Adicionar mais links internos relevantes")
		improvement += 0.1
	}

	return domain.SEOOptimization{
		Page: article.Slug,
		// Rank tracking is not integrated; the value is a placeholder.
		CurrentRank:         b.rand.Intn(100) + 1,
		TargetKeyword:       keyword,
		Optimizations:       suggestions,
		ExpectedImprovement: improvement,
	}
}

func (b *Booster) applyMetaOptimizations(ctx context.Context, articleID string, opt domain.SEOOptimization) error {
	patch := map[string]any{
		"title":            b.optimizedTitle(opt.TargetKeyword),
		"meta_description": fmt.Sprintf(descriptionTemplate, opt.TargetKeyword),
		"seo_optimized":    true,
		"target_keyword":   opt.TargetKeyword,
		"last_seo_update":  time.Now().UTC(),
	}
	q := ports.Query{Eq: map[string]string{"id": articleID}}
	if err := b.store.Update(ctx, "articles", q, patch, nil); err != nil {
		return fmt.Errorf("apply meta optimizations %s: %w", articleID, err)
	}

	log := map[string]any{
		"article_id":           articleID,
		"optimizations":        opt.Optimizations,
		"expected_improvement": opt.ExpectedImprovement,
		"applied_at":           time.Now().UTC(),
	}
	if err := b.store.Insert(ctx, "seo_optimizations", log, nil); err != nil {
		return fmt.Errorf("log optimization %s: %w", articleID, err)
	}
	return nil
}

func (b *Booster) optimizedTitle(keyword string) string {
	template := titleTemplates[b.rand.Intn(len(titleTemplates))]
	return fmt.Sprintf(template, keyword)
}

// CreateBacklinks filters the candidate list by authority and relevance and
// records an outreach row for up to five prospects. No email goes out.
func (b *Booster) CreateBacklinks(ctx context.Context) ([]domain.BacklinkOpportunity, error) {
	var opportunities []domain.BacklinkOpportunity
	for _, candidate := range backlinkCandidates {
		if candidate.Authority > 30 && candidate.Relevance > 80 {
			opportunities = append(opportunities, candidate)
		}
	}

	limit := len(opportunities)
	if limit > 5 {
		limit = 5
	}
	for _, opp := range opportunities[:limit] {
		record := map[string]any{
			"target_domain":  opp.Domain,
			"authority":      opp.Authority,
			"relevance":      opp.Relevance,
			"email_template": opp.OutreachTemplate,
			"status":         "sent",
			"sent_at":        time.Now().UTC(),
		}
		if err := b.store.Insert(ctx, "backlink_outreach", record, nil); err != nil {
			return nil, fmt.Errorf("record outreach %s: %w", opp.Domain, err)
		}
		b.debug("outreach recorded", "domain", opp.Domain, "template", opp.OutreachTemplate)
	}

	return opportunities, nil
}

// GenerateDynamicSitemap renders the sitemap XML from all published slugs
// and caches it in the sitemaps table.
func (b *Booster) GenerateDynamicSitemap(ctx context.Context, now time.Time) (string, error) {
	var articles []domain.Article
	q := ports.Query{
		Eq:         map[string]string{"status": string(domain.StatusPublished)},
		Order:      "published_at",
		Descending: true,
	}
	if err := b.store.Select(ctx, "articles", q, &articles); err != nil {
		return "", fmt.Errorf("load published articles: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeSitemapEntry(&sb, b.siteURL+"/", now, "daily", "1.0")
	for _, article := range articles {
		lastmod := article.UpdatedAt
		if lastmod.IsZero() {
			lastmod = article.PublishedAt
		}
		writeSitemapEntry(&sb, fmt.Sprintf("%s/blog/%s", b.siteURL, article.Slug), lastmod, "weekly", "0.8")
	}
	sb.WriteString("</urlset>")
	sitemap := sb.String()

	record := map[string]any{
		"type":         "main",
		"content":      sitemap,
		"generated_at": now.UTC(),
	}
	if err := b.store.Upsert(ctx, "sitemaps", record, "type", nil); err != nil {
		return "", fmt.Errorf("cache sitemap: %w", err)
	}

	b.debug("sitemap generated", "urls", len(articles)+1)
	return sitemap, nil
}

func writeSitemapEntry(sb *strings.Builder, loc string, lastmod time.Time, changefreq, priority string) {
	sb.WriteString("  <url>\n")
	fmt.Fprintf(sb, "    <loc>%s</loc>\n", loc)
	fmt.Fprintf(sb, "    <lastmod>%s</lastmod>\n", lastmod.UTC().Format(time.RFC3339))
	fmt.Fprintf(sb, "    <changefreq>%s</changefreq>\n", changefreq)
	fmt.Fprintf(sb, "    <priority>%s</priority>\n", priority)
	sb.WriteString("  </url>\n")
}

// MonitorSEOErrors detects duplicate titles, missing meta descriptions and
// over-long titles across published articles and applies a templated fix for
// each, logging the fix.
func (b *Booster) MonitorSEOErrors(ctx context.Context) ([]domain.SEOError, error) {
	var articles []domain.Article
	q := ports.Query{Eq: map[string]string{"status": string(domain.StatusPublished)}}
	if err := b.store.Select(ctx, "articles", q, &articles); err != nil {
		return nil, fmt.Errorf("load published articles: %w", err)
	}

	byID := make(map[string]domain.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}

	errs := detectErrors(articles)
	for _, seoErr := range errs {
		if err := b.fixError(ctx, byID[seoErr.ArticleID], seoErr); err != nil {
			return nil, err
		}

		record := map[string]any{
			"error_type": seoErr.Type,
			"article_id": seoErr.ArticleID,
			"fixed_at":   time.Now().UTC(),
		}
		if err := b.store.Insert(ctx, "seo_error_fixes", record, nil); err != nil {
			return nil, fmt.Errorf("log error fix %s: %w", seoErr.ArticleID, err)
		}
	}

	b.debug("seo errors fixed", "count", len(errs))
	return errs, nil
}

func (b *Booster) fixError(ctx context.Context, article domain.Article, seoErr domain.SEOError) error {
	var patch map[string]any

	switch seoErr.Type {
	case domain.ErrDuplicateTitle:
		patch = map[string]any{"title": article.Title + " - Atualizado 2025"}
	case domain.ErrMissingMetaDescription:
		description := fmt.Sprintf("%s - Guia completo no FinanceHub.", article.Title)
		if article.Excerpt != "" {
			// Excerpt-derived descriptions always carry the trailing
			// ellipsis, even when the excerpt is already short.
			runes := []rune(article.Excerpt)
			if len(runes) > 155 {
				runes = runes[:155]
			}
			description = string(runes) + "..."
		}
		patch = map[string]any{"meta_description": description}
	case domain.ErrTitleTooLong:
		patch = map[string]any{"title": truncateRunes(article.Title, 57)}
	default:
		return nil
	}

	q := ports.Query{Eq: map[string]string{"id": article.ID}}
	if err := b.store.Update(ctx, "articles", q, patch, nil); err != nil {
		return fmt.Errorf("fix %s on %s: %w", seoErr.Type, article.ID, err)
	}
	return nil
}

// SubmitToDirectories registers a submission row for every fresh published
// article against each free directory, then flags the article so the next
// pass skips it.
func (b *Booster) SubmitToDirectories(ctx context.Context, now time.Time) error {
	var articles []domain.Article
	q := ports.Query{
		Eq:  map[string]string{"status": string(domain.StatusPublished)},
		Is:  map[string]string{"submitted_to_directories": "false"},
		Gte: map[string]string{"published_at": now.AddDate(0, 0, -7).UTC().Format(time.RFC3339)},
	}
	if err := b.store.Select(ctx, "articles", q, &articles); err != nil {
		return fmt.Errorf("load recent articles: %w", err)
	}

	for _, article := range articles {
		for _, directory := range directoryURLs {
			record := map[string]any{
				"article_id":    article.ID,
				"directory_url": directory,
				"submitted_at":  now.UTC(),
				"status":        "submitted",
			}
			if err := b.store.Insert(ctx, "directory_submissions", record, nil); err != nil {
				return fmt.Errorf("submit %s to %s: %w", article.Slug, directory, err)
			}
		}

		patch := map[string]any{"submitted_to_directories": true}
		uq := ports.Query{Eq: map[string]string{"id": article.ID}}
		if err := b.store.Update(ctx, "articles", uq, patch, nil); err != nil {
			return fmt.Errorf("flag submitted %s: %w", article.ID, err)
		}
	}

	b.debug("directory submissions done", "articles", len(articles))
	return nil
}

// OutreachTemplate returns the canned email body for a template name,
// defaulting to the guest-post pitch.
func OutreachTemplate(name string) string {
	if template, ok := outreachTemplates[name]; ok {
		return template
	}
	return outreachTemplates["guest_post_finance"]
}

func (b *Booster) debug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}
