package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waterline.io/waterline/internal/api/middleware"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/usecase"
)

// SubmitBatchRequest is the payload for POST /submissions. EntityType is the
// default for the batch; entities may carry their own "entity_type" key.
type SubmitBatchRequest struct {
	BlueprintID string                   `json:"blueprint_id" binding:"required"`
	CompanyID   string                   `json:"company_id"`
	EntityType  string                   `json:"entity_type"`
	Entities    []map[string]interface{} `json:"entities" binding:"required"`
	MaxDepth    *int                     `json:"max_depth"`
}

// SubmitBatch handles POST /submissions.
func (s *Server) SubmitBatch(c *gin.Context) {
	var req SubmitBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	out, err := s.submitUC.Execute(c.Request.Context(), usecase.SubmitBatchInput{
		OrgID:       middleware.OrgID(c),
		BlueprintID: req.BlueprintID,
		CompanyID:   req.CompanyID,
		EntityType:  req.EntityType,
		Entities:    req.Entities,
		MaxDepth:    req.MaxDepth,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, out)
}

// GetSubmission handles GET /submissions/:id. ?include_steps=true pulls the
// per-run step result history into the response.
func (s *Server) GetSubmission(c *gin.Context) {
	includeSteps := c.Query("include_steps") == "true"

	out, err := s.statusUC.Execute(c.Request.Context(), middleware.OrgID(c), c.Param("id"), includeSteps)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CancelSubmission handles POST /submissions/:id/cancel.
func (s *Server) CancelSubmission(c *gin.Context) {
	out, err := s.cancelUC.Execute(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}
