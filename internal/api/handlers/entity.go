package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"waterline.io/waterline/internal/api/middleware"
)

// ListEntities handles GET /entities/:type with limit/offset paging.
func (s *Server) ListEntities(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	views, err := s.entitiesUC.List(c.Request.Context(), middleware.OrgID(c), c.Param("type"), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entities": views,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetEntity handles GET /entities/:type/:id.
func (s *Server) GetEntity(c *gin.Context) {
	view, err := s.entitiesUC.Get(c.Request.Context(), middleware.OrgID(c), c.Param("type"), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListEntitySnapshots handles GET /entities/:type/:id/snapshots.
func (s *Server) ListEntitySnapshots(c *gin.Context) {
	limit := queryInt(c, "limit", 20)

	views, err := s.snapshotsUC.List(c.Request.Context(), middleware.OrgID(c), c.Param("type"), c.Param("id"), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": views})
}

// GetEntityChanges handles GET /entities/:type/:id/changes. ?fields=a,b
// restricts the diff to the named fields.
func (s *Server) GetEntityChanges(c *gin.Context) {
	var watched []string
	if raw := strings.TrimSpace(c.Query("fields")); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				watched = append(watched, f)
			}
		}
	}

	report, err := s.entitiesUC.Changes(c.Request.Context(), middleware.OrgID(c), c.Param("type"), c.Param("id"), watched)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report.ToMap())
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
