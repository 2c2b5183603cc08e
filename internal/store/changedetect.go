package store

import (
	"context"
	"math"
	"reflect"
	"sort"
	"time"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/entitysnapshot"
	"waterline.io/waterline/internal/domain"
)

// Change kinds.
const (
	ChangeAdded     = "added"
	ChangeRemoved   = "removed"
	ChangeChanged   = "changed"
	ChangeIncreased = "increased"
	ChangeDecreased = "decreased"
)

// ReasonInsufficientHistory marks a report with fewer than two snapshots to
// diff.
const ReasonInsufficientHistory = "insufficient_history"

// FieldChange is one observed delta between the two compared snapshots.
// Numeric moves carry magnitudes; percent is omitted when the old value is
// zero.
type FieldChange struct {
	Field          string      `json:"field"`
	Kind           string      `json:"kind"`
	Before         interface{} `json:"before,omitempty"`
	After          interface{} `json:"after,omitempty"`
	AbsoluteChange *float64    `json:"absolute_change,omitempty"`
	PercentChange  *float64    `json:"percent_change,omitempty"`
}

// ChangeReport is the outcome of diffing the two most recent snapshots of an
// entity.
type ChangeReport struct {
	EntityID           string        `json:"entity_id"`
	EntityType         string        `json:"entity_type"`
	HasChanges         bool          `json:"has_changes"`
	Reason             string        `json:"reason,omitempty"`
	FromVersion        int           `json:"from_version,omitempty"`
	ToVersion          int           `json:"to_version,omitempty"`
	PreviousSnapshotAt *time.Time    `json:"previous_snapshot_at,omitempty"`
	CurrentSnapshotAt  *time.Time    `json:"current_snapshot_at,omitempty"`
	Changes            []FieldChange `json:"changes"`
	UnchangedFields    []string      `json:"unchanged_fields"`
}

// ToMap renders the report as a canonical output map for envelopes.
func (r *ChangeReport) ToMap() map[string]interface{} {
	changes := make([]interface{}, 0, len(r.Changes))
	for _, c := range r.Changes {
		m := map[string]interface{}{
			"field": c.Field,
			"kind":  c.Kind,
		}
		if c.Before != nil {
			m["before"] = c.Before
		}
		if c.After != nil {
			m["after"] = c.After
		}
		if c.AbsoluteChange != nil {
			m["absolute_change"] = *c.AbsoluteChange
		}
		if c.PercentChange != nil {
			m["percent_change"] = *c.PercentChange
		}
		changes = append(changes, m)
	}
	out := map[string]interface{}{
		"entity_id":        r.EntityID,
		"entity_type":      r.EntityType,
		"has_changes":      r.HasChanges,
		"changes":          changes,
		"change_count":     len(changes),
		"unchanged_fields": r.UnchangedFields,
	}
	if r.Reason != "" {
		out["reason"] = r.Reason
	}
	if r.FromVersion > 0 {
		out["from_version"] = r.FromVersion
	}
	if r.ToVersion > 0 {
		out["to_version"] = r.ToVersion
	}
	if r.PreviousSnapshotAt != nil {
		out["previous_snapshot_at"] = r.PreviousSnapshotAt.UTC().Format(time.RFC3339)
	}
	if r.CurrentSnapshotAt != nil {
		out["current_snapshot_at"] = r.CurrentSnapshotAt.UTC().Format(time.RFC3339)
	}
	return out
}

// ChangeDetector diffs the two most recent snapshots of an entity.
type ChangeDetector struct {
	client *ent.Client
}

// NewChangeDetector creates a ChangeDetector.
func NewChangeDetector(client *ent.Client) *ChangeDetector {
	return &ChangeDetector{client: client}
}

// Detect loads the two newest snapshots for the entity and classifies each
// field delta between them. With fewer than two snapshots the report carries
// has_changes=false and reason=insufficient_history. When watched is
// non-empty only those fields are diffed.
func (d *ChangeDetector) Detect(ctx context.Context, orgID string, t domain.EntityType, entityID string, watched []string) (*ChangeReport, error) {
	report := &ChangeReport{
		EntityID:        entityID,
		EntityType:      string(t),
		Changes:         []FieldChange{},
		UnchangedFields: []string{},
	}

	snaps, err := d.client.EntitySnapshot.Query().
		Where(
			entitysnapshot.OrgID(orgID),
			entitysnapshot.EntityTypeEQ(entitysnapshot.EntityType(t)),
			entitysnapshot.EntityID(entityID),
		).
		Order(
			ent.Desc(entitysnapshot.FieldCapturedAt),
			ent.Desc(entitysnapshot.FieldRecordVersion),
		).
		Limit(2).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(snaps) < 2 {
		report.Reason = ReasonInsufficientHistory
		return report, nil
	}

	current, previous := snaps[0], snaps[1]
	report.FromVersion = previous.RecordVersion
	report.ToVersion = current.RecordVersion
	prevAt, curAt := previous.CapturedAt, current.CapturedAt
	report.PreviousSnapshotAt = &prevAt
	report.CurrentSnapshotAt = &curAt
	report.Changes, report.UnchangedFields = DiffPayloads(previous.CanonicalPayload, current.CanonicalPayload, watched)
	report.HasChanges = len(report.Changes) > 0
	return report, nil
}

// DiffPayloads classifies field deltas between two canonical payloads and
// lists the compared fields that did not move. Numeric fields that change
// get increased/decreased with an absolute magnitude and, when the old value
// is non-zero, a percent magnitude. Fields only in after are added, only in
// before are removed; anything else that differs is changed.
func DiffPayloads(before, after map[string]interface{}, watched []string) ([]FieldChange, []string) {
	fields := diffFieldSet(before, after, watched)

	changes := []FieldChange{}
	unchanged := []string{}
	for _, field := range fields {
		bv, inBefore := before[field]
		av, inAfter := after[field]

		switch {
		case !inBefore && !inAfter:
			// Watched field absent on both sides.
		case !inBefore && inAfter:
			changes = append(changes, FieldChange{Field: field, Kind: ChangeAdded, After: av})
		case inBefore && !inAfter:
			changes = append(changes, FieldChange{Field: field, Kind: ChangeRemoved, Before: bv})
		case reflect.DeepEqual(bv, av):
			unchanged = append(unchanged, field)
		default:
			change := FieldChange{Field: field, Kind: ChangeChanged, Before: bv, After: av}
			if bn, bok := asNumber(bv); bok {
				if an, aok := asNumber(av); aok {
					if an == bn {
						unchanged = append(unchanged, field)
						continue
					}
					if an > bn {
						change.Kind = ChangeIncreased
					} else {
						change.Kind = ChangeDecreased
					}
					abs := math.Abs(an - bn)
					change.AbsoluteChange = &abs
					if bn != 0 {
						pct := abs / math.Abs(bn) * 100
						change.PercentChange = &pct
					}
				}
			}
			changes = append(changes, change)
		}
	}
	return changes, unchanged
}

func diffFieldSet(before, after map[string]interface{}, watched []string) []string {
	if len(watched) > 0 {
		return watched
	}
	seen := make(map[string]struct{}, len(before)+len(after))
	fields := make([]string, 0, len(before)+len(after))
	for k := range before {
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			fields = append(fields, k)
		}
	}
	for k := range after {
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	return fields
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
