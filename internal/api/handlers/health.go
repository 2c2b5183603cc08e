package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz reports process liveness.
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports readiness: the database must answer.
func (s *Server) Readyz(c *gin.Context) {
	// A cheap round-trip through Ent; any schema works.
	if _, err := s.client.Org.Query().Count(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "database unreachable",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
