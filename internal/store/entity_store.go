// Package store implements the versioned entity state store: deterministic
// identity, additive merge, optimistic concurrency, and pre-image snapshots.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/companyentity"
	"waterline.io/waterline/ent/entitysnapshot"
	"waterline.io/waterline/ent/jobpostingentity"
	"waterline.io/waterline/ent/personentity"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/pkg/logger"
)

// maxUpsertRetries bounds the reload-and-retry loop after a CAS loss.
const maxUpsertRetries = 3

// Record is the store's view of an entity row, independent of which of the
// three per-type tables it lives in.
type Record struct {
	ID               string
	OrgID            string
	EntityType       domain.EntityType
	RecordVersion    int
	CanonicalPayload map[string]interface{}
	LastEnrichedAt   *time.Time
	LastRunID        string
	LastOperationID  string
	SourceProviders  []string
}

// UpsertRequest carries one merge into the store.
type UpsertRequest struct {
	OrgID      string
	EntityType domain.EntityType
	// Fields is the canonical field map to merge. Identity resolution runs
	// over these same fields, so the caller never supplies an entity id.
	Fields      map[string]interface{}
	RunID       string
	OperationID string
	Providers   []string
}

// UpsertResult reports what a merge did.
type UpsertResult struct {
	Record  *Record
	Created bool
	// Conflicts is how many CAS rounds were lost before the write landed.
	Conflicts int
}

// EntityStore persists canonical entities across the three per-type tables.
type EntityStore struct {
	client  *ent.Client
	metrics *metrics.Metrics
}

// NewEntityStore creates an EntityStore.
func NewEntityStore(client *ent.Client, m *metrics.Metrics) *EntityStore {
	return &EntityStore{client: client, metrics: m}
}

// Get loads one entity row by id within an org. Returns (nil, nil) when the
// row does not exist.
func (s *EntityStore) Get(ctx context.Context, orgID string, t domain.EntityType, id string) (*Record, error) {
	switch t {
	case domain.EntityCompany:
		row, err := s.client.CompanyEntity.Query().
			Where(companyentity.ID(id), companyentity.OrgID(orgID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return companyRecord(row), nil
	case domain.EntityPerson:
		row, err := s.client.PersonEntity.Query().
			Where(personentity.ID(id), personentity.OrgID(orgID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return personRecord(row), nil
	case domain.EntityJob:
		row, err := s.client.JobPostingEntity.Query().
			Where(jobpostingentity.ID(id), jobpostingentity.OrgID(orgID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return jobRecord(row), nil
	}
	return nil, &errors.AppError{
		Code:       errors.CodeInvalidEntity,
		Message:    "unsupported entity type",
		HTTPStatus: 422,
		Params:     map[string]interface{}{"entity_type": string(t)},
	}
}

// Resolve derives the deterministic entity id for the fields and loads the
// matching row when one exists. When the derived id misses, the projected
// natural-key columns are consulted: a row first written under a different
// identity field (domain vs LinkedIn URL) is found and its stored id
// adopted, so one real-world entity never splits across rows.
func (s *EntityStore) Resolve(ctx context.Context, orgID string, t domain.EntityType, fields map[string]interface{}) (string, *Record, error) {
	id := identity.ResolveEntityID(t, fields)
	rec, err := s.Get(ctx, orgID, t, id)
	if err != nil || rec != nil {
		return id, rec, err
	}
	rec, err = s.LookupByNaturalKey(ctx, orgID, t, fields)
	if err != nil {
		return id, nil, err
	}
	if rec != nil {
		return rec.ID, rec, nil
	}
	return id, nil, nil
}

// LookupByNaturalKey finds an entity row by its projected identity columns:
// canonical domain or LinkedIn URL for companies, LinkedIn URL or work email
// for persons, the TheirStack job id for jobs. Returns (nil, nil) when no
// key matches.
func (s *EntityStore) LookupByNaturalKey(ctx context.Context, orgID string, t domain.EntityType, fields map[string]interface{}) (*Record, error) {
	switch t {
	case domain.EntityCompany:
		if v := payloadString(fields, domain.FieldCompanyDomain, domain.FieldDomain, domain.FieldCanonicalDomain); v != "" {
			row, err := s.client.CompanyEntity.Query().
				Where(companyentity.OrgID(orgID), companyentity.CanonicalDomain(identity.NormalizeDomain(v))).
				Order(ent.Desc(companyentity.FieldUpdatedAt)).
				First(ctx)
			if err == nil {
				return companyRecord(row), nil
			}
			if !ent.IsNotFound(err) {
				return nil, err
			}
		}
		if v := payloadString(fields, domain.FieldLinkedInURL); v != "" {
			row, err := s.client.CompanyEntity.Query().
				Where(companyentity.OrgID(orgID), companyentity.LinkedinURL(identity.NormalizeLinkedInURL(v))).
				Order(ent.Desc(companyentity.FieldUpdatedAt)).
				First(ctx)
			if err == nil {
				return companyRecord(row), nil
			}
			if !ent.IsNotFound(err) {
				return nil, err
			}
		}
		return nil, nil
	case domain.EntityPerson:
		if v := payloadString(fields, domain.FieldLinkedInURL); v != "" {
			row, err := s.client.PersonEntity.Query().
				Where(personentity.OrgID(orgID), personentity.LinkedinURL(identity.NormalizeLinkedInURL(v))).
				Order(ent.Desc(personentity.FieldUpdatedAt)).
				First(ctx)
			if err == nil {
				return personRecord(row), nil
			}
			if !ent.IsNotFound(err) {
				return nil, err
			}
		}
		if v := payloadString(fields, domain.FieldWorkEmail); v != "" {
			row, err := s.client.PersonEntity.Query().
				Where(personentity.OrgID(orgID), personentity.WorkEmail(identity.NormalizeEmail(v))).
				Order(ent.Desc(personentity.FieldUpdatedAt)).
				First(ctx)
			if err == nil {
				return personRecord(row), nil
			}
			if !ent.IsNotFound(err) {
				return nil, err
			}
		}
		return nil, nil
	case domain.EntityJob:
		if v := payloadString(fields, domain.FieldTheirstackJobID); v != "" {
			row, err := s.client.JobPostingEntity.Query().
				Where(jobpostingentity.OrgID(orgID), jobpostingentity.TheirstackJobID(v)).
				Order(ent.Desc(jobpostingentity.FieldUpdatedAt)).
				First(ctx)
			if err == nil {
				return jobRecord(row), nil
			}
			if !ent.IsNotFound(err) {
				return nil, err
			}
		}
		return nil, nil
	}
	return nil, &errors.AppError{
		Code:       errors.CodeInvalidEntity,
		Message:    "unsupported entity type",
		HTTPStatus: 422,
		Params:     map[string]interface{}{"entity_type": string(t)},
	}
}

// CheckFreshness reports whether the entity identified by fields was
// enriched within maxAge. A missing row or a row that was never enriched is
// stale.
func (s *EntityStore) CheckFreshness(ctx context.Context, orgID string, t domain.EntityType, fields map[string]interface{}, maxAge time.Duration) (bool, *Record, error) {
	_, rec, err := s.Resolve(ctx, orgID, t, fields)
	if err != nil || rec == nil {
		return false, rec, err
	}
	if rec.LastEnrichedAt == nil {
		return false, rec, nil
	}
	return fresh(*rec.LastEnrichedAt, time.Now(), maxAge), rec, nil
}

// fresh reports whether an enrichment at last is within maxAge of now. The
// boundary is inclusive: age equal to the window still counts as fresh.
func fresh(last, now time.Time, maxAge time.Duration) bool {
	return now.Sub(last) <= maxAge
}

// List pages entity rows for one org and type, most recently enriched first.
func (s *EntityStore) List(ctx context.Context, orgID string, t domain.EntityType, limit, offset int) ([]*Record, error) {
	if limit <= 0 {
		limit = 50
	}
	switch t {
	case domain.EntityCompany:
		rows, err := s.client.CompanyEntity.Query().
			Where(companyentity.OrgID(orgID)).
			Order(ent.Desc(companyentity.FieldUpdatedAt)).
			Limit(limit).Offset(offset).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, companyRecord(row))
		}
		return out, nil
	case domain.EntityPerson:
		rows, err := s.client.PersonEntity.Query().
			Where(personentity.OrgID(orgID)).
			Order(ent.Desc(personentity.FieldUpdatedAt)).
			Limit(limit).Offset(offset).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, personRecord(row))
		}
		return out, nil
	case domain.EntityJob:
		rows, err := s.client.JobPostingEntity.Query().
			Where(jobpostingentity.OrgID(orgID)).
			Order(ent.Desc(jobpostingentity.FieldUpdatedAt)).
			Limit(limit).Offset(offset).
			All(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*Record, 0, len(rows))
		for _, row := range rows {
			out = append(out, jobRecord(row))
		}
		return out, nil
	}
	return nil, &errors.AppError{
		Code:       errors.CodeInvalidEntity,
		Message:    "unsupported entity type",
		HTTPStatus: 422,
		Params:     map[string]interface{}{"entity_type": string(t)},
	}
}

// Snapshots lists the pre-image history of one entity, newest first.
func (s *EntityStore) Snapshots(ctx context.Context, orgID string, t domain.EntityType, entityID string, limit int) ([]*ent.EntitySnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.client.EntitySnapshot.Query().
		Where(
			entitysnapshot.OrgID(orgID),
			entitysnapshot.EntityTypeEQ(entitysnapshot.EntityType(t)),
			entitysnapshot.EntityID(entityID),
		).
		Order(ent.Desc(entitysnapshot.FieldRecordVersion)).
		Limit(limit).
		All(ctx)
}

// Upsert merges canonical fields into the entity the fields identify.
//
// Sequence per attempt: resolve the row (derived id, then natural key, with
// the stored id adopted on a natural-key hit), snapshot the pre-image, merge
// additively, then a compare-and-swap update guarded by the loaded
// record_version. A lost CAS reloads and retries; the snapshot taken for the
// losing attempt is at a version the winner also snapshotted, so duplicates
// at the same version are harmless (the chain stays contiguous).
func (s *EntityStore) Upsert(ctx context.Context, req UpsertRequest) (*UpsertResult, error) {
	derivedID := identity.ResolveEntityID(req.EntityType, req.Fields)

	conflicts := 0
	for attempt := 0; attempt <= maxUpsertRetries; attempt++ {
		entityID, current, err := s.Resolve(ctx, req.OrgID, req.EntityType, req.Fields)
		if err != nil {
			return nil, err
		}

		if current == nil {
			rec, err := s.create(ctx, req, entityID)
			if ent.IsConstraintError(err) {
				// Lost a create race; reload and merge instead.
				conflicts++
				s.countConflict(req.EntityType)
				continue
			}
			if err != nil {
				return nil, err
			}
			return &UpsertResult{Record: rec, Created: true, Conflicts: conflicts}, nil
		}

		s.captureSnapshot(ctx, current, req.RunID)

		merged := AdditiveMerge(current.CanonicalPayload, req.Fields)
		providers := MergeProviders(current.SourceProviders, req.Providers...)

		n, err := s.casUpdate(ctx, req, entityID, current.RecordVersion, merged, providers)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			conflicts++
			s.countConflict(req.EntityType)
			continue
		}

		rec, err := s.Get(ctx, req.OrgID, req.EntityType, entityID)
		if err != nil {
			return nil, err
		}
		return &UpsertResult{Record: rec, Conflicts: conflicts}, nil
	}

	return nil, errors.ErrVersionConflictf(derivedID, conflicts)
}

func (s *EntityStore) create(ctx context.Context, req UpsertRequest, entityID string) (*Record, error) {
	now := time.Now().UTC()
	payload := AdditiveMerge(nil, req.Fields)
	providers := MergeProviders(nil, req.Providers...)

	switch req.EntityType {
	case domain.EntityCompany:
		create := s.client.CompanyEntity.Create().
			SetID(entityID).
			SetOrgID(req.OrgID).
			SetCanonicalPayload(payload).
			SetLastEnrichedAt(now).
			SetLastRunID(req.RunID).
			SetLastOperationID(req.OperationID).
			SetSourceProviders(providers)
		if v := payloadString(payload, domain.FieldCanonicalDomain, domain.FieldCompanyDomain, domain.FieldDomain); v != "" {
			create.SetCanonicalDomain(identity.NormalizeDomain(v))
		}
		if v := payloadString(payload, domain.FieldLinkedInURL); v != "" {
			create.SetLinkedinURL(identity.NormalizeLinkedInURL(v))
		}
		if v := payloadString(payload, domain.FieldName, domain.FieldCompanyName); v != "" {
			create.SetName(v)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return nil, err
		}
		return companyRecord(row), nil
	case domain.EntityPerson:
		create := s.client.PersonEntity.Create().
			SetID(entityID).
			SetOrgID(req.OrgID).
			SetCanonicalPayload(payload).
			SetLastEnrichedAt(now).
			SetLastRunID(req.RunID).
			SetLastOperationID(req.OperationID).
			SetSourceProviders(providers)
		if v := payloadString(payload, domain.FieldLinkedInURL); v != "" {
			create.SetLinkedinURL(identity.NormalizeLinkedInURL(v))
		}
		if v := payloadString(payload, domain.FieldWorkEmail); v != "" {
			create.SetWorkEmail(identity.NormalizeEmail(v))
		}
		if v := payloadString(payload, domain.FieldFullName, domain.FieldName); v != "" {
			create.SetFullName(v)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return nil, err
		}
		return personRecord(row), nil
	case domain.EntityJob:
		create := s.client.JobPostingEntity.Create().
			SetID(entityID).
			SetOrgID(req.OrgID).
			SetCanonicalPayload(payload).
			SetLastEnrichedAt(now).
			SetLastRunID(req.RunID).
			SetLastOperationID(req.OperationID).
			SetSourceProviders(providers)
		if v := payloadString(payload, domain.FieldTheirstackJobID); v != "" {
			create.SetTheirstackJobID(v)
		}
		if v := payloadString(payload, domain.FieldJobURL); v != "" {
			create.SetJobURL(v)
		}
		if v := payloadString(payload, domain.FieldTitle); v != "" {
			create.SetTitle(v)
		}
		if v := payloadString(payload, domain.FieldCompanyDomain, domain.FieldDomain); v != "" {
			create.SetCompanyDomain(identity.NormalizeDomain(v))
		}
		row, err := create.Save(ctx)
		if err != nil {
			return nil, err
		}
		return jobRecord(row), nil
	}
	return nil, &errors.AppError{
		Code:       errors.CodeInvalidEntity,
		Message:    "unsupported entity type",
		HTTPStatus: 422,
		Params:     map[string]interface{}{"entity_type": string(req.EntityType)},
	}
}

func (s *EntityStore) casUpdate(ctx context.Context, req UpsertRequest, entityID string, expectedVersion int, merged map[string]interface{}, providers []string) (int, error) {
	now := time.Now().UTC()

	switch req.EntityType {
	case domain.EntityCompany:
		update := s.client.CompanyEntity.Update().
			Where(
				companyentity.ID(entityID),
				companyentity.OrgID(req.OrgID),
				companyentity.RecordVersion(expectedVersion),
			).
			SetRecordVersion(expectedVersion + 1).
			SetCanonicalPayload(merged).
			SetLastEnrichedAt(now).
			SetLastRunID(req.RunID).
			SetLastOperationID(req.OperationID).
			SetSourceProviders(providers)
		if v := payloadString(merged, domain.FieldCanonicalDomain, domain.FieldCompanyDomain, domain.FieldDomain); v != "" {
			update.SetCanonicalDomain(identity.NormalizeDomain(v))
		}
		if v := payloadString(merged, domain.FieldLinkedInURL); v != "" {
			update.SetLinkedinURL(identity.NormalizeLinkedInURL(v))
		}
		if v := payloadString(merged, domain.FieldName, domain.FieldCompanyName); v != "" {
			update.SetName(v)
		}
		return update.Save(ctx)
	case domain.EntityPerson:
		update := s.client.PersonEntity.Update().
			Where(
				personentity.ID(entityID),
				personentity.OrgID(req.OrgID),
				personentity.RecordVersion(expectedVersion),
			).
			SetRecordVersion(expectedVersion + 1).
			SetCanonicalPayload(merged).
			SetLastEnrichedAt(now).
			SetLastRunID(req.RunID).
			SetLastOperationID(req.OperationID).
			SetSourceProviders(providers)
		if v := payloadString(merged, domain.FieldLinkedInURL); v != "" {
			update.SetLinkedinURL(identity.NormalizeLinkedInURL(v))
		}
		if v := payloadString(merged, domain.FieldWorkEmail); v != "" {
			update.SetWorkEmail(identity.NormalizeEmail(v))
		}
		if v := payloadString(merged, domain.FieldFullName, domain.FieldName); v != "" {
			update.SetFullName(v)
		}
		return update.Save(ctx)
	case domain.EntityJob:
		update := s.client.JobPostingEntity.Update().
			Where(
				jobpostingentity.ID(entityID),
				jobpostingentity.OrgID(req.OrgID),
				jobpostingentity.RecordVersion(expectedVersion),
			).
			SetRecordVersion(expectedVersion + 1).
			SetCanonicalPayload(merged).
			SetLastEnrichedAt(now).
			SetLastRunID(req.RunID).
			SetLastOperationID(req.OperationID).
			SetSourceProviders(providers)
		if v := payloadString(merged, domain.FieldTheirstackJobID); v != "" {
			update.SetTheirstackJobID(v)
		}
		if v := payloadString(merged, domain.FieldJobURL); v != "" {
			update.SetJobURL(v)
		}
		if v := payloadString(merged, domain.FieldTitle); v != "" {
			update.SetTitle(v)
		}
		if v := payloadString(merged, domain.FieldCompanyDomain, domain.FieldDomain); v != "" {
			update.SetCompanyDomain(identity.NormalizeDomain(v))
		}
		return update.Save(ctx)
	}
	return 0, &errors.AppError{
		Code:       errors.CodeInvalidEntity,
		Message:    "unsupported entity type",
		HTTPStatus: 422,
		Params:     map[string]interface{}{"entity_type": string(req.EntityType)},
	}
}

// captureSnapshot writes the pre-image of the current row. Failures are
// swallowed: a lost snapshot degrades diff history, it never blocks the
// enrichment write. Every swallow is logged and counted.
func (s *EntityStore) captureSnapshot(ctx context.Context, current *Record, runID string) {
	_, err := s.client.EntitySnapshot.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(current.OrgID).
		SetEntityType(entitysnapshot.EntityType(current.EntityType)).
		SetEntityID(current.ID).
		SetRecordVersion(current.RecordVersion).
		SetCanonicalPayload(current.CanonicalPayload).
		SetSourceRunID(runID).
		SetCapturedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if s.metrics != nil {
			s.metrics.SnapshotWriteFailures.Inc()
		}
		logger.Warn("Entity snapshot write failed, continuing without pre-image",
			zap.String("entity_id", current.ID),
			zap.String("entity_type", string(current.EntityType)),
			zap.Int("record_version", current.RecordVersion),
			zap.Error(err),
		)
	}
}

func (s *EntityStore) countConflict(t domain.EntityType) {
	if s.metrics != nil {
		s.metrics.VersionConflicts.WithLabelValues(string(t)).Inc()
	}
}

func companyRecord(row *ent.CompanyEntity) *Record {
	return &Record{
		ID:               row.ID,
		OrgID:            row.OrgID,
		EntityType:       domain.EntityCompany,
		RecordVersion:    row.RecordVersion,
		CanonicalPayload: row.CanonicalPayload,
		LastEnrichedAt:   row.LastEnrichedAt,
		LastRunID:        row.LastRunID,
		LastOperationID:  row.LastOperationID,
		SourceProviders:  row.SourceProviders,
	}
}

func personRecord(row *ent.PersonEntity) *Record {
	return &Record{
		ID:               row.ID,
		OrgID:            row.OrgID,
		EntityType:       domain.EntityPerson,
		RecordVersion:    row.RecordVersion,
		CanonicalPayload: row.CanonicalPayload,
		LastEnrichedAt:   row.LastEnrichedAt,
		LastRunID:        row.LastRunID,
		LastOperationID:  row.LastOperationID,
		SourceProviders:  row.SourceProviders,
	}
}

func jobRecord(row *ent.JobPostingEntity) *Record {
	return &Record{
		ID:               row.ID,
		OrgID:            row.OrgID,
		EntityType:       domain.EntityJob,
		RecordVersion:    row.RecordVersion,
		CanonicalPayload: row.CanonicalPayload,
		LastEnrichedAt:   row.LastEnrichedAt,
		LastRunID:        row.LastRunID,
		LastOperationID:  row.LastOperationID,
		SourceProviders:  row.SourceProviders,
	}
}

func payloadString(payload map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if raw, ok := payload[key]; ok {
			if s, ok := raw.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
