package seo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"financehub/internal/domain"
)

// targetKeyword picks the tracked keyword whose text appears in the article
// title, falling back to the title's first three words.
func targetKeyword(article domain.Article) string {
	title := strings.ToLower(article.Title)
	for _, kw := range highCPCKeywords {
		if strings.Contains(title, strings.ToLower(kw.Keyword)) {
			return kw.Keyword
		}
	}

	words := strings.Fields(article.Title)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// keywordDensity returns keyword occurrences as a percentage of the word
// count of the raw article body.
func keywordDensity(content, keyword string) float64 {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}

	occurrences := strings.Count(strings.ToLower(content), strings.ToLower(keyword))
	return float64(occurrences) / float64(words) * 100
}

type headingAnalysis struct {
	H1Count   int
	H2Count   int
	NeedsWork bool
}

// analyzeHeadings parses the article HTML and checks the expected structure:
// exactly one h1 and at least two h2.
func analyzeHeadings(content string) (headingAnalysis, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return headingAnalysis{}, err
	}

	analysis := headingAnalysis{
		H1Count: doc.Find("h1").Length(),
		H2Count: doc.Find("h2").Length(),
	}
	analysis.NeedsWork = analysis.H1Count != 1 || analysis.H2Count < 2
	return analysis, nil
}

// internalLinkCount counts anchors in the article HTML that point back at
// the site itself.
func internalLinkCount(content, siteURL string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return 0, err
	}

	count := 0
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if strings.Contains(href, siteURL) || strings.HasPrefix(href, "/") {
			count++
		}
	})
	return count, nil
}

// detectErrors scans published articles for duplicate titles, missing meta
// descriptions and over-long titles.
func detectErrors(articles []domain.Article) []domain.SEOError {
	titleCount := map[string]int{}
	for _, article := range articles {
		titleCount[article.Title]++
	}

	var errs []domain.SEOError
	for _, article := range articles {
		if titleCount[article.Title] > 1 {
			errs = append(errs, domain.SEOError{
				Type:        domain.ErrDuplicateTitle,
				ArticleID:   article.ID,
				Description: "Título duplicado encontrado",
			})
		}

		if article.MetaDescription == "" {
			errs = append(errs, domain.SEOError{
				Type:        domain.ErrMissingMetaDescription,
				ArticleID:   article.ID,
				Description: "Meta description ausente",
			})
		}

		if len([]rune(article.Title)) > 60 {
			errs = append(errs, domain.SEOError{
				Type:        domain.ErrTitleTooLong,
				ArticleID:   article.ID,
				Description: "Título muito longo para SEO",
			})
		}
	}

	return errs
}

// truncateRunes shortens s to limit runes, appending an ellipsis.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
