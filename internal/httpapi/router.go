package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitcoach/website-kb/internal/domain"
)

// NewRouter assembles the HTTP routes. Admin routes are guarded by the
// static bearer token when one is configured; role management itself
// lives in the main platform, not here.
func NewRouter(knowledgeBase domain.KnowledgeBase, adminToken string) *gin.Engine {
	engine := gin.New()
	engine.Use(requestLogger(), gin.Recovery())

	h := NewHandler(knowledgeBase)

	api := engine.Group("/api")
	api.POST("/website-kb/query", h.Query)

	admin := api.Group("/admin/website-kb", requireAdmin(adminToken))
	admin.GET("/status", h.Status)
	admin.GET("/source", h.GetSource)
	admin.PUT("/source", h.PutSource)
	admin.POST("/reindex", h.Reindex)

	return engine
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}

func requireAdmin(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		got := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if got != token {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
