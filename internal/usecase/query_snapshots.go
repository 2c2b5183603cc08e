package usecase

import (
	"context"
	"time"

	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/store"
)

// SnapshotView is one pre-image snapshot in a query response.
type SnapshotView struct {
	SnapshotID    string                 `json:"snapshot_id"`
	EntityID      string                 `json:"entity_id"`
	EntityType    string                 `json:"entity_type"`
	RecordVersion int                    `json:"record_version"`
	Payload       map[string]interface{} `json:"payload"`
	SourceRunID   string                 `json:"source_run_id,omitempty"`
	CapturedAt    time.Time              `json:"captured_at"`
}

// QuerySnapshotsUseCase reads the pre-image history of an entity.
type QuerySnapshotsUseCase struct {
	entities *store.EntityStore
}

// NewQuerySnapshotsUseCase creates a QuerySnapshotsUseCase.
func NewQuerySnapshotsUseCase(entities *store.EntityStore) *QuerySnapshotsUseCase {
	return &QuerySnapshotsUseCase{entities: entities}
}

// List returns the entity's snapshots, newest first.
func (uc *QuerySnapshotsUseCase) List(ctx context.Context, orgID, entityType, entityID string, limit int) ([]SnapshotView, error) {
	t, err := domain.ParseEntityType(entityType)
	if err != nil {
		return nil, invalidEntityType(err)
	}
	rows, err := uc.entities.Snapshots(ctx, orgID, t, entityID, limit)
	if err != nil {
		return nil, err
	}
	views := make([]SnapshotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, SnapshotView{
			SnapshotID:    row.ID,
			EntityID:      row.EntityID,
			EntityType:    string(row.EntityType),
			RecordVersion: row.RecordVersion,
			Payload:       row.CanonicalPayload,
			SourceRunID:   row.SourceRunID,
			CapturedAt:    row.CapturedAt,
		})
	}
	return views, nil
}
