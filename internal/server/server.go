// Package server exposes the HTTP surface: automation triggers, the cron
// hook, and the public blog endpoints.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"financehub/internal/blog"
	"financehub/internal/usecase"
)

// Deps carries everything the HTTP layer depends on.
type Deps struct {
	SEO        usecase.SEOAgent
	Viral      usecase.ViralAgent
	Social     usecase.SocialAgent
	Ads        usecase.AdsAgent
	Automation *usecase.Automation
	Blog       *blog.Service
	CronToken  string
	Logger     *slog.Logger
}

// Server routes HTTP requests to the agents and the orchestrator.
type Server struct {
	seo        usecase.SEOAgent
	viral      usecase.ViralAgent
	social     usecase.SocialAgent
	ads        usecase.AdsAgent
	automation *usecase.Automation
	blog       *blog.Service
	cronToken  string
	logger     *slog.Logger
}

// New builds the server from its dependencies.
func New(deps Deps) *Server {
	return &Server{
		seo:        deps.SEO,
		viral:      deps.Viral,
		social:     deps.Social,
		ads:        deps.Ads,
		automation: deps.Automation,
		blog:       deps.Blog,
		cronToken:  deps.CronToken,
		logger:     deps.Logger,
	}
}

// Router assembles the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(s.logger))

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	api.POST("/agents/run-marketing", s.handleRunMarketing)
	api.GET("/agents/run-marketing", s.handleRunMarketingGet)
	api.POST("/cron/marketing", s.handleCron)
	api.GET("/cron/marketing", s.handleCronGet)
	api.GET("/articles", s.handleArticles)
	api.GET("/articles/:slug", s.handleArticleBySlug)
	api.GET("/admin/stats", s.handleAdminStats)

	return router
}
