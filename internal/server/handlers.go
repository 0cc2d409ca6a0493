package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"financehub/internal/usecase"
)

// runRequest is the body of the agent trigger endpoint.
type runRequest struct {
	Agent  string `json:"agent"`
	Action string `json:"action"`
}

// cronRequest is the body of the cron trigger endpoint. Hour overrides the
// wall-clock hour for scheduled runs, so a job can replay any slot.
type cronRequest struct {
	Action string `json:"action"`
	Hour   *int   `json:"hour"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

// handleRunMarketing runs one named agent action. Unknown agent/action pairs
// come back as 400; everything else that fails is a 500 with the error text
// echoed to the caller.
func (s *Server) handleRunMarketing(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	result, err := s.dispatch(c.Request.Context(), req.Agent, req.Action)
	if err != nil {
		var unknown *UnknownActionError
		if errors.As(err, &unknown) {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
		s.fail(c, http.StatusInternalServerError, err)
		return
	}

	resp := gin.H{
		"success":   true,
		"agent":     req.Agent,
		"action":    req.Action,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if result != nil {
		resp["result"] = result
	}
	c.JSON(http.StatusOK, resp)
}

// handleRunMarketingGet triggers orchestrated runs from a browser or a
// simple curl. Anything other than the named actions falls back to a full
// run.
func (s *Server) handleRunMarketingGet(c *gin.Context) {
	ctx := c.Request.Context()

	switch c.DefaultQuery("action", "full_automation") {
	case "full_automation":
		results, err := s.automation.RunFull(ctx)
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.okResults(c, "Todos os agentes executados com sucesso", results)
	case "scheduled":
		hour := time.Now().Hour()
		if raw := c.Query("hour"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				hour = parsed
			}
		}
		if err := s.automation.RunScheduled(ctx, hour); err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.ok(c, fmt.Sprintf("Automação agendada executada para hora %d", hour), nil)
	case "report":
		report, err := s.automation.Report(ctx, time.Now())
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.ok(c, "Relatório de marketing gerado", report)
	default:
		results, err := s.automation.RunFull(ctx)
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.okResults(c, "Todos os agentes executados com sucesso", results)
	}
}

// handleCron is the POST cron hook used by internal jobs.
func (s *Server) handleCron(c *gin.Context) {
	var req cronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case "full_automation":
		results, err := s.automation.RunFull(ctx)
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.okResults(c, "Automação completa executada", results)
	case "scheduled_automation":
		hour := time.Now().Hour()
		if req.Hour != nil {
			hour = *req.Hour
		}
		if err := s.automation.RunScheduled(ctx, hour); err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.ok(c, fmt.Sprintf("Automação agendada executada para hora %d", hour), nil)
	case "generate_report":
		report, err := s.automation.Report(ctx, time.Now())
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.ok(c, "Relatório de marketing gerado", report)
	default:
		s.fail(c, http.StatusBadRequest, fmt.Errorf("unknown cron action %q", req.Action))
	}
}

// handleCronGet is the hosted-cron entrypoint. The token (query param or
// bearer header) is checked before any agent code runs. Unknown actions fall
// back to a full run, matching what the hosted scheduler expects.
func (s *Server) handleCronGet(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if s.cronToken == "" || token != s.cronToken {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de autenticação inválido"})
		return
	}

	ctx := c.Request.Context()
	switch c.DefaultQuery("action", "full_automation") {
	case "scheduled":
		hour := time.Now().Hour()
		if raw := c.Query("hour"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				hour = parsed
			}
		}
		if err := s.automation.RunScheduled(ctx, hour); err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.ok(c, fmt.Sprintf("Automação agendada executada para hora %d", hour), nil)
	case "report":
		report, err := s.automation.Report(ctx, time.Now())
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.ok(c, "Relatório de marketing gerado", report)
	default:
		results, err := s.automation.RunFull(ctx)
		if err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		s.okResults(c, "Automação completa executada", results)
	}
}

// handleArticles lists published articles.
func (s *Server) handleArticles(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	articles, err := s.blog.PublishedArticles(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// handleArticleBySlug serves one published article.
func (s *Server) handleArticleBySlug(c *gin.Context) {
	article, err := s.blog.ArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artigo não encontrado"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// handleAdminStats serves the static dashboard blocks.
func (s *Server) handleAdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats":  s.blog.DashboardStats(),
		"agents": s.blog.AgentStatuses(),
	})
}

func (s *Server) ok(c *gin.Context, message string, result any) {
	resp := gin.H{
		"success":   true,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if result != nil {
		resp["result"] = result
	}
	c.JSON(http.StatusOK, resp)
}

// okResults is the full-run variant of ok: the per-agent outputs go out as
// a results array rather than a single result object.
func (s *Server) okResults(c *gin.Context, message string, results []usecase.AgentResult) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   message,
		"results":   results,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	if s.logger != nil {
		s.logger.Error("request failed", "request_id", c.GetString("request_id"), "error", err)
	}
	c.JSON(status, gin.H{
		"success":   false,
		"error":     err.Error(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
