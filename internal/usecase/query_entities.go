package usecase

import (
	"context"
	"net/http"
	"time"

	"waterline.io/waterline/internal/domain"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/store"
)

// EntityView is one canonical entity row in a query response.
type EntityView struct {
	EntityID        string                 `json:"entity_id"`
	EntityType      string                 `json:"entity_type"`
	RecordVersion   int                    `json:"record_version"`
	Payload         map[string]interface{} `json:"payload"`
	LastEnrichedAt  *time.Time             `json:"last_enriched_at,omitempty"`
	LastRunID       string                 `json:"last_run_id,omitempty"`
	LastOperationID string                 `json:"last_operation_id,omitempty"`
	SourceProviders []string               `json:"source_providers,omitempty"`
}

// QueryEntitiesUseCase reads canonical entities and their change reports.
type QueryEntitiesUseCase struct {
	entities *store.EntityStore
	detector *store.ChangeDetector
}

// NewQueryEntitiesUseCase creates a QueryEntitiesUseCase.
func NewQueryEntitiesUseCase(entities *store.EntityStore, detector *store.ChangeDetector) *QueryEntitiesUseCase {
	return &QueryEntitiesUseCase{entities: entities, detector: detector}
}

// List pages entities of one type for an org.
func (uc *QueryEntitiesUseCase) List(ctx context.Context, orgID, entityType string, limit, offset int) ([]EntityView, error) {
	t, err := domain.ParseEntityType(entityType)
	if err != nil {
		return nil, invalidEntityType(err)
	}
	records, err := uc.entities.List(ctx, orgID, t, limit, offset)
	if err != nil {
		return nil, err
	}
	views := make([]EntityView, 0, len(records))
	for _, rec := range records {
		views = append(views, entityView(rec))
	}
	return views, nil
}

// Get loads one entity by id.
func (uc *QueryEntitiesUseCase) Get(ctx context.Context, orgID, entityType, entityID string) (*EntityView, error) {
	t, err := domain.ParseEntityType(entityType)
	if err != nil {
		return nil, invalidEntityType(err)
	}
	rec, err := uc.entities.Get(ctx, orgID, t, entityID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, entityNotFound(entityID)
	}
	view := entityView(rec)
	return &view, nil
}

// Changes diffs the entity's live payload against its latest snapshot.
func (uc *QueryEntitiesUseCase) Changes(ctx context.Context, orgID, entityType, entityID string, watched []string) (*store.ChangeReport, error) {
	t, err := domain.ParseEntityType(entityType)
	if err != nil {
		return nil, invalidEntityType(err)
	}
	rec, err := uc.entities.Get(ctx, orgID, t, entityID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, entityNotFound(entityID)
	}
	return uc.detector.Detect(ctx, orgID, t, entityID, watched)
}

func entityView(rec *store.Record) EntityView {
	return EntityView{
		EntityID:        rec.ID,
		EntityType:      string(rec.EntityType),
		RecordVersion:   rec.RecordVersion,
		Payload:         rec.CanonicalPayload,
		LastEnrichedAt:  rec.LastEnrichedAt,
		LastRunID:       rec.LastRunID,
		LastOperationID: rec.LastOperationID,
		SourceProviders: rec.SourceProviders,
	}
}

func invalidEntityType(err error) *apperrors.AppError {
	return &apperrors.AppError{
		Code:       apperrors.CodeInvalidEntity,
		Message:    err.Error(),
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func entityNotFound(entityID string) *apperrors.AppError {
	return &apperrors.AppError{
		Code:       apperrors.CodeEntityNotFound,
		Message:    "entity not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"entity_id": entityID},
	}
}
