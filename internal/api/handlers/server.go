// Package handlers implements the HTTP surface of the pipeline engine.
// Handlers stay thin: bind, delegate to a use case, and push errors to the
// centralized error middleware via c.Error().
package handlers

import (
	"github.com/gin-gonic/gin"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/internal/api/middleware"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/service"
	"waterline.io/waterline/internal/usecase"
)

// Server holds all API handlers.
type Server struct {
	client       *ent.Client
	registry     *registry.Registry
	blueprintSvc *service.BlueprintService
	submitUC     *usecase.SubmitBatchUseCase
	statusUC     *usecase.BatchStatusUseCase
	cancelUC     *usecase.CancelSubmissionUseCase
	entitiesUC   *usecase.QueryEntitiesUseCase
	snapshotsUC  *usecase.QuerySnapshotsUseCase
}

// ServerDeps holds all dependencies for creating a Server. Manual DI, no
// container.
type ServerDeps struct {
	EntClient    *ent.Client
	Registry     *registry.Registry
	BlueprintSvc *service.BlueprintService
	SubmitUC     *usecase.SubmitBatchUseCase
	StatusUC     *usecase.BatchStatusUseCase
	CancelUC     *usecase.CancelSubmissionUseCase
	EntitiesUC   *usecase.QueryEntitiesUseCase
	SnapshotsUC  *usecase.QuerySnapshotsUseCase
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.EntClient,
		registry:     deps.Registry,
		blueprintSvc: deps.BlueprintSvc,
		submitUC:     deps.SubmitUC,
		statusUC:     deps.StatusUC,
		cancelUC:     deps.CancelUC,
		entitiesUC:   deps.EntitiesUC,
		snapshotsUC:  deps.SnapshotsUC,
	}
}

// RegisterRoutes wires all org-scoped API routes onto the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Healthz)
	r.GET("/readyz", s.Readyz)

	v1 := r.Group("/api/v1", middleware.RequireOrg(s.client))
	{
		v1.GET("/operations", s.ListOperations)

		v1.POST("/blueprints", s.CreateBlueprint)
		v1.GET("/blueprints", s.ListBlueprints)
		v1.GET("/blueprints/:id", s.GetBlueprint)
		v1.PUT("/blueprints/:id/steps", s.ReplaceBlueprintSteps)
		v1.POST("/blueprints/:id/activate", s.ActivateBlueprint)
		v1.POST("/blueprints/:id/deactivate", s.DeactivateBlueprint)

		v1.POST("/submissions", s.SubmitBatch)
		v1.GET("/submissions/:id", s.GetSubmission)
		v1.POST("/submissions/:id/cancel", s.CancelSubmission)

		v1.GET("/entities/:type", s.ListEntities)
		v1.GET("/entities/:type/:id", s.GetEntity)
		v1.GET("/entities/:type/:id/snapshots", s.ListEntitySnapshots)
		v1.GET("/entities/:type/:id/changes", s.GetEntityChanges)
	}
}
