package viral

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"financehub/internal/domain"
	"financehub/internal/ports"
)

// Creator produces viral content candidates from fixed tables and ranks them
// by heuristic potential for scheduling.
type Creator struct {
	store  ports.Store
	rand   ports.Rand
	logger *slog.Logger
}

// NewCreator wires the agent. A nil rnd falls back to a time-seeded source.
func NewCreator(store ports.Store, rnd ports.Rand, logger *slog.Logger) *Creator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Creator{store: store, rand: rnd, logger: logger}
}

// IdentifyFinancialTrends returns the trend list and refreshes the
// trending_topics cache.
func (c *Creator) IdentifyFinancialTrends(ctx context.Context) ([]domain.TrendingTopic, error) {
	for _, trend := range financialTrends {
		record := map[string]any{
			"keyword":       trend.Keyword,
			"volume":        trend.Volume,
			"sentiment":     trend.Sentiment,
			"related_terms": trend.RelatedTerms,
			"detected_at":   time.Now().UTC(),
		}
		if err := c.store.Upsert(ctx, "trending_topics", record, "keyword", nil); err != nil {
			return nil, fmt.Errorf("record trend %q: %w", trend.Keyword, err)
		}
	}

	c.debug("trends identified", "count", len(financialTrends))
	return financialTrends, nil
}

// CreateFinancialMemes turns the top three trends into meme captions, one
// random template per trend.
func (c *Creator) CreateFinancialMemes(ctx context.Context) ([]domain.ViralContent, error) {
	trends, err := c.IdentifyFinancialTrends(ctx)
	if err != nil {
		return nil, err
	}

	if len(trends) > 3 {
		trends = trends[:3]
	}

	memes := make([]domain.ViralContent, 0, len(trends))
	for _, trend := range trends {
		template := memeTemplates[c.rand.Intn(len(memeTemplates))]

		hashtags := []string{"#memeFinanceiro", "#financaspessoais", "#investimentos"}
		for _, term := range trend.RelatedTerms {
			hashtags = append(hashtags, "#"+strings.ReplaceAll(term, " ", ""))
		}

		memes = append(memes, domain.ViralContent{
			Type:           domain.ContentMeme,
			Title:          "Meme: " + trend.Keyword,
			Content:        fmt.Sprintf(template, trend.Keyword),
			Platforms:      memePlatforms,
			ViralPotential: CalculateViralPotential(trend),
			Hashtags:       hashtags,
		})
	}

	return memes, nil
}

// CreateInfographics renders a production brief for each fixed topic.
func (c *Creator) CreateInfographics(ctx context.Context) ([]domain.ViralContent, error) {
	infographics := make([]domain.ViralContent, 0, len(infographicTopics))
	for _, topic := range infographicTopics {
		data, err := json.MarshalIndent(topic.Data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode infographic data: %w", err)
		}

		brief := fmt.Sprintf(`INFOGRÁFICO: %s

DESIGN:
- Cores: Azul (#2563eb), Verde (#16a34a), Branco (#ffffff)
- Fonte: Inter, sans-serif
- Layout: Vertical, mobile-first

CONTEÚDO:
%s

ELEMENTOS VISUAIS:
- Ícones financeiros
- Gráficos simples
- Estatísticas destacadas
- Call-to-action no final

TEXTO FINAL: "Quer mais dicas? Acesse FinanceHub.com"
`, topic.Title, data)

		infographics = append(infographics, domain.ViralContent{
			Type:           domain.ContentInfographic,
			Title:          topic.Title,
			Content:        brief,
			Platforms:      []string{"instagram", "linkedin", "pinterest", "facebook"},
			ViralPotential: 0.7,
			Hashtags:       []string{"#infografico", "#financaspessoais", "#dadosfinanceiros", "#educacaofinanceira"},
		})
	}

	return infographics, nil
}

// CreateShortVideos emits a script per fixed topic; topics without a
// hand-written script get a placeholder.
func (c *Creator) CreateShortVideos(ctx context.Context) ([]domain.ViralContent, error) {
	videos := make([]domain.ViralContent, 0, len(videoTopics))
	for _, topic := range videoTopics {
		script, ok := videoScripts[topic]
		if !ok {
			script = "Script para: " + topic
		}

		videos = append(videos, domain.ViralContent{
			Type:           domain.ContentVideo,
			Title:          topic,
			Content:        script,
			Platforms:      []string{"tiktok", "instagram", "youtube", "facebook"},
			ViralPotential: 0.8,
			Hashtags:       []string{"#financaspessoais", "#dicasfinanceiras", "#educacaofinanceira", "#viral", "#fyp"},
		})
	}

	return videos, nil
}

// CreateInteractiveQuizzes serializes the fixed quiz specs.
func (c *Creator) CreateInteractiveQuizzes(ctx context.Context) ([]domain.ViralContent, error) {
	content := make([]domain.ViralContent, 0, len(quizzes))
	for _, quiz := range quizzes {
		body, err := json.MarshalIndent(quiz, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode quiz: %w", err)
		}

		content = append(content, domain.ViralContent{
			Type:           domain.ContentQuiz,
			Title:          quiz.Title,
			Content:        string(body),
			Platforms:      []string{"instagram", "facebook", "website"},
			ViralPotential: 0.9,
			Hashtags:       []string{"#quiz", "#financaspessoais", "#teste", "#educacaofinanceira"},
		})
	}

	return content, nil
}

// CreateViralCalculators serializes the fixed calculator specs.
func (c *Creator) CreateViralCalculators(ctx context.Context) ([]domain.ViralContent, error) {
	content := make([]domain.ViralContent, 0, len(calculators))
	for _, calc := range calculators {
		body, err := json.MarshalIndent(calc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode calculator: %w", err)
		}

		content = append(content, domain.ViralContent{
			Type:           domain.ContentCalculator,
			Title:          calc.Name,
			Content:        string(body),
			Platforms:      []string{"website", "instagram", "tiktok"},
			ViralPotential: 0.85,
			Hashtags:       []string{"#calculadora", "#financaspessoais", "#planejamento", "#investimentos"},
		})
	}

	return content, nil
}

// CreateEventBasedContent reacts to the mock current-event list, picking a
// random content shape per event.
func (c *Creator) CreateEventBasedContent(ctx context.Context) ([]domain.ViralContent, error) {
	content := make([]domain.ViralContent, 0, len(currentEvents))
	for _, event := range currentEvents {
		shape := eventContentShapes[c.rand.Intn(len(eventContentShapes))]

		var body string
		switch shape {
		case "explanation":
			body = fmt.Sprintf("O que significa: %s\n\nExplicação simples:\n- Impacto direto no seu bolso\n- O que você precisa fazer\n- Oportunidades que surgem", event.Title)
		case "tips":
			body = fmt.Sprintf("%s\n\n5 dicas para aproveitar:\n1. Analise o impacto\n2. Ajuste sua estratégia\n3. Busque oportunidades\n4. Proteja-se dos riscos\n5. Mantenha-se informado", event.Title)
		case "impact_analysis":
			body = fmt.Sprintf("ANÁLISE: %s\n\n✅ Pontos positivos\n❌ Pontos negativos\n💡 Recomendações\n📈 Perspectivas", event.Title)
		}

		potential := 0.6
		if event.Impact == "high" {
			potential = 0.9
		}

		content = append(content, domain.ViralContent{
			Type:           domain.ContentTrend,
			Title:          "Análise: " + event.Title,
			Content:        body,
			Platforms:      []string{"twitter", "linkedin", "instagram"},
			ViralPotential: potential,
			Hashtags:       []string{"#atualidadefinanceira", "#economia", "#financaspessoais", "#noticias"},
		})
	}

	return content, nil
}

// CalculateViralPotential scores a trend in [0,1]: a 0.5 base plus volume
// buckets, sentiment and related-term count.
func CalculateViralPotential(trend domain.TrendingTopic) float64 {
	potential := 0.5

	switch {
	case trend.Volume > 100000:
		potential += 0.3
	case trend.Volume > 50000:
		potential += 0.2
	case trend.Volume > 10000:
		potential += 0.1
	}

	switch trend.Sentiment {
	case domain.SentimentPositive:
		potential += 0.2
	case domain.SentimentNegative:
		potential += 0.1
	}

	potential += math.Min(float64(len(trend.RelatedTerms))*0.05, 0.2)

	return math.Min(potential, 1.0)
}

// ScheduleViralContent collects every generator's output, keeps the ten
// highest-potential pieces and books them two hours apart starting from now.
// Each run appends a fresh batch; previous schedules stay untouched.
func (c *Creator) ScheduleViralContent(ctx context.Context, now time.Time) ([]domain.ScheduledContent, error) {
	var all []domain.ViralContent
	generators := []func(context.Context) ([]domain.ViralContent, error){
		c.CreateFinancialMemes,
		c.CreateInfographics,
		c.CreateShortVideos,
		c.CreateInteractiveQuizzes,
		c.CreateViralCalculators,
		c.CreateEventBasedContent,
	}
	for _, generate := range generators {
		batch, err := generate(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ViralPotential > all[j].ViralPotential
	})

	limit := len(all)
	if limit > 10 {
		limit = 10
	}

	scheduled := make([]domain.ScheduledContent, 0, limit)
	for i, content := range all[:limit] {
		entry := domain.ScheduledContent{
			Type:           content.Type,
			Title:          content.Title,
			Content:        content.Content,
			Platforms:      content.Platforms,
			ViralPotential: content.ViralPotential,
			Hashtags:       content.Hashtags,
			ScheduledTime:  now.Add(time.Duration(i) * 2 * time.Hour),
			Status:         domain.PostScheduled,
		}
		if err := c.store.Insert(ctx, "viral_content_schedule", entry, nil); err != nil {
			return nil, fmt.Errorf("schedule %q: %w", content.Title, err)
		}
		scheduled = append(scheduled, entry)
	}

	c.debug("viral content scheduled", "candidates", len(all), "scheduled", len(scheduled))
	return scheduled, nil
}

func (c *Creator) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
