package domain

import "time"

// PublicationStatus enumerates article lifecycle states owned by editors.
type PublicationStatus string

const (
	StatusDraft     PublicationStatus = "draft"
	StatusPublished PublicationStatus = "published"
)

// Article is a blog entry row in the hosted store. Created by editors,
// mutated by the SEO agent, never deleted from this side.
type Article struct {
	ID                     string            `json:"id,omitempty"`
	Title                  string            `json:"title"`
	Slug                   string            `json:"slug"`
	Content                string            `json:"content,omitempty"`
	Excerpt                string            `json:"excerpt,omitempty"`
	MetaDescription        string            `json:"meta_description,omitempty"`
	TargetKeyword          string            `json:"target_keyword,omitempty"`
	Author                 string            `json:"author,omitempty"`
	Category               string            `json:"category,omitempty"`
	FeaturedImage          string            `json:"featured_image,omitempty"`
	ReadTime               string            `json:"read_time,omitempty"`
	Status                 PublicationStatus `json:"status"`
	SEOOptimized           bool              `json:"seo_optimized"`
	SubmittedToDirectories bool              `json:"submitted_to_directories"`
	PublishedAt            time.Time         `json:"published_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}
