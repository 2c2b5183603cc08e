package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"waterline.io/waterline/internal/api/middleware"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/service"
)

// CreateBlueprintRequest is the payload for POST /blueprints.
type CreateBlueprintRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Steps       []service.StepInput `json:"steps" binding:"required"`
}

// ReplaceStepsRequest is the payload for PUT /blueprints/:id/steps.
type ReplaceStepsRequest struct {
	Steps []service.StepInput `json:"steps" binding:"required"`
}

// CreateBlueprint handles POST /blueprints.
func (s *Server) CreateBlueprint(c *gin.Context) {
	var req CreateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	bp, err := s.blueprintSvc.Create(c.Request.Context(), middleware.OrgID(c), req.Name, req.Description, req.Steps)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, blueprintResponse(bp))
}

// ListBlueprints handles GET /blueprints.
func (s *Server) ListBlueprints(c *gin.Context) {
	bps, err := s.blueprintSvc.List(c.Request.Context(), middleware.OrgID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	out := make([]gin.H, 0, len(bps))
	for _, bp := range bps {
		out = append(out, blueprintResponse(bp))
	}
	c.JSON(http.StatusOK, gin.H{"blueprints": out})
}

// GetBlueprint handles GET /blueprints/:id.
func (s *Server) GetBlueprint(c *gin.Context) {
	bp, err := s.blueprintSvc.Get(c.Request.Context(), middleware.OrgID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, blueprintResponse(bp))
}

// ReplaceBlueprintSteps handles PUT /blueprints/:id/steps.
func (s *Server) ReplaceBlueprintSteps(c *gin.Context) {
	var req ReplaceStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	bp, err := s.blueprintSvc.ReplaceSteps(c.Request.Context(), middleware.OrgID(c), c.Param("id"), req.Steps)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, blueprintResponse(bp))
}

// ActivateBlueprint handles POST /blueprints/:id/activate.
func (s *Server) ActivateBlueprint(c *gin.Context) {
	s.setBlueprintActive(c, true)
}

// DeactivateBlueprint handles POST /blueprints/:id/deactivate.
func (s *Server) DeactivateBlueprint(c *gin.Context) {
	s.setBlueprintActive(c, false)
}

func (s *Server) setBlueprintActive(c *gin.Context, active bool) {
	bp, err := s.blueprintSvc.SetActive(c.Request.Context(), middleware.OrgID(c), c.Param("id"), active)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, blueprintResponse(bp))
}

// ListOperations handles GET /operations: the registered operation catalog.
func (s *Server) ListOperations(c *gin.Context) {
	ids := s.registry.IDs()
	sort.Strings(ids)
	ops := make([]gin.H, 0, len(ids))
	for _, id := range ids {
		op, _ := s.registry.Lookup(id)
		entry := gin.H{
			"operation_id": id,
			"entity_type":  string(op.Metadata.EntityType),
		}
		if op.Metadata.FanOutKey != "" {
			entry["fan_out_key"] = op.Metadata.FanOutKey
			entry["fan_out_entity_type"] = string(op.Metadata.FanOutEntityType)
		}
		ops = append(ops, entry)
	}
	c.JSON(http.StatusOK, gin.H{"operations": ops})
}
