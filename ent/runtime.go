// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/ent/blueprintstep"
	"waterline.io/waterline/ent/companyentity"
	"waterline.io/waterline/ent/entitysnapshot"
	"waterline.io/waterline/ent/jobpostingentity"
	"waterline.io/waterline/ent/org"
	"waterline.io/waterline/ent/personentity"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/schema"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blueprintMixin := schema.Blueprint{}.Mixin()
	blueprintMixinFields0 := blueprintMixin[0].Fields()
	_ = blueprintMixinFields0
	blueprintFields := schema.Blueprint{}.Fields()
	_ = blueprintFields
	// blueprintDescCreatedAt is the schema descriptor for created_at field.
	blueprintDescCreatedAt := blueprintMixinFields0[0].Descriptor()
	// blueprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprint.DefaultCreatedAt = blueprintDescCreatedAt.Default.(func() time.Time)
	// blueprintDescUpdatedAt is the schema descriptor for updated_at field.
	blueprintDescUpdatedAt := blueprintMixinFields0[1].Descriptor()
	// blueprint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blueprint.DefaultUpdatedAt = blueprintDescUpdatedAt.Default.(func() time.Time)
	// blueprint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blueprint.UpdateDefaultUpdatedAt = blueprintDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blueprintDescOrgID is the schema descriptor for org_id field.
	blueprintDescOrgID := blueprintFields[1].Descriptor()
	// blueprint.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	blueprint.OrgIDValidator = blueprintDescOrgID.Validators[0].(func(string) error)
	// blueprintDescName is the schema descriptor for name field.
	blueprintDescName := blueprintFields[2].Descriptor()
	// blueprint.NameValidator is a validator for the "name" field. It is called by the builders before save.
	blueprint.NameValidator = blueprintDescName.Validators[0].(func(string) error)
	// blueprintDescIsActive is the schema descriptor for is_active field.
	blueprintDescIsActive := blueprintFields[4].Descriptor()
	// blueprint.DefaultIsActive holds the default value on creation for the is_active field.
	blueprint.DefaultIsActive = blueprintDescIsActive.Default.(bool)
	blueprintstepMixin := schema.BlueprintStep{}.Mixin()
	blueprintstepMixinFields0 := blueprintstepMixin[0].Fields()
	_ = blueprintstepMixinFields0
	blueprintstepFields := schema.BlueprintStep{}.Fields()
	_ = blueprintstepFields
	// blueprintstepDescCreatedAt is the schema descriptor for created_at field.
	blueprintstepDescCreatedAt := blueprintstepMixinFields0[0].Descriptor()
	// blueprintstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprintstep.DefaultCreatedAt = blueprintstepDescCreatedAt.Default.(func() time.Time)
	// blueprintstepDescUpdatedAt is the schema descriptor for updated_at field.
	blueprintstepDescUpdatedAt := blueprintstepMixinFields0[1].Descriptor()
	// blueprintstep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blueprintstep.DefaultUpdatedAt = blueprintstepDescUpdatedAt.Default.(func() time.Time)
	// blueprintstep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blueprintstep.UpdateDefaultUpdatedAt = blueprintstepDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blueprintstepDescPosition is the schema descriptor for position field.
	blueprintstepDescPosition := blueprintstepFields[1].Descriptor()
	// blueprintstep.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	blueprintstep.PositionValidator = blueprintstepDescPosition.Validators[0].(func(int) error)
	// blueprintstepDescOperationID is the schema descriptor for operation_id field.
	blueprintstepDescOperationID := blueprintstepFields[2].Descriptor()
	// blueprintstep.OperationIDValidator is a validator for the "operation_id" field. It is called by the builders before save.
	blueprintstep.OperationIDValidator = blueprintstepDescOperationID.Validators[0].(func(string) error)
	// blueprintstepDescFanOut is the schema descriptor for fan_out field.
	blueprintstepDescFanOut := blueprintstepFields[4].Descriptor()
	// blueprintstep.DefaultFanOut holds the default value on creation for the fan_out field.
	blueprintstep.DefaultFanOut = blueprintstepDescFanOut.Default.(bool)
	// blueprintstepDescIsEnabled is the schema descriptor for is_enabled field.
	blueprintstepDescIsEnabled := blueprintstepFields[5].Descriptor()
	// blueprintstep.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	blueprintstep.DefaultIsEnabled = blueprintstepDescIsEnabled.Default.(bool)
	companyentityMixin := schema.CompanyEntity{}.Mixin()
	companyentityMixinFields0 := companyentityMixin[0].Fields()
	_ = companyentityMixinFields0
	companyentityFields := schema.CompanyEntity{}.Fields()
	_ = companyentityFields
	// companyentityDescCreatedAt is the schema descriptor for created_at field.
	companyentityDescCreatedAt := companyentityMixinFields0[0].Descriptor()
	// companyentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	companyentity.DefaultCreatedAt = companyentityDescCreatedAt.Default.(func() time.Time)
	// companyentityDescUpdatedAt is the schema descriptor for updated_at field.
	companyentityDescUpdatedAt := companyentityMixinFields0[1].Descriptor()
	// companyentity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	companyentity.DefaultUpdatedAt = companyentityDescUpdatedAt.Default.(func() time.Time)
	// companyentity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	companyentity.UpdateDefaultUpdatedAt = companyentityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyentityDescOrgID is the schema descriptor for org_id field.
	companyentityDescOrgID := companyentityFields[1].Descriptor()
	// companyentity.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	companyentity.OrgIDValidator = companyentityDescOrgID.Validators[0].(func(string) error)
	// companyentityDescRecordVersion is the schema descriptor for record_version field.
	companyentityDescRecordVersion := companyentityFields[2].Descriptor()
	// companyentity.DefaultRecordVersion holds the default value on creation for the record_version field.
	companyentity.DefaultRecordVersion = companyentityDescRecordVersion.Default.(int)
	// companyentity.RecordVersionValidator is a validator for the "record_version" field. It is called by the builders before save.
	companyentity.RecordVersionValidator = companyentityDescRecordVersion.Validators[0].(func(int) error)
	entitysnapshotMixin := schema.EntitySnapshot{}.Mixin()
	entitysnapshotMixinFields0 := entitysnapshotMixin[0].Fields()
	_ = entitysnapshotMixinFields0
	entitysnapshotFields := schema.EntitySnapshot{}.Fields()
	_ = entitysnapshotFields
	// entitysnapshotDescCreatedAt is the schema descriptor for created_at field.
	entitysnapshotDescCreatedAt := entitysnapshotMixinFields0[0].Descriptor()
	// entitysnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	entitysnapshot.DefaultCreatedAt = entitysnapshotDescCreatedAt.Default.(func() time.Time)
	// entitysnapshotDescOrgID is the schema descriptor for org_id field.
	entitysnapshotDescOrgID := entitysnapshotFields[1].Descriptor()
	// entitysnapshot.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	entitysnapshot.OrgIDValidator = entitysnapshotDescOrgID.Validators[0].(func(string) error)
	// entitysnapshotDescEntityID is the schema descriptor for entity_id field.
	entitysnapshotDescEntityID := entitysnapshotFields[3].Descriptor()
	// entitysnapshot.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	entitysnapshot.EntityIDValidator = entitysnapshotDescEntityID.Validators[0].(func(string) error)
	// entitysnapshotDescRecordVersion is the schema descriptor for record_version field.
	entitysnapshotDescRecordVersion := entitysnapshotFields[4].Descriptor()
	// entitysnapshot.RecordVersionValidator is a validator for the "record_version" field. It is called by the builders before save.
	entitysnapshot.RecordVersionValidator = entitysnapshotDescRecordVersion.Validators[0].(func(int) error)
	// entitysnapshotDescCapturedAt is the schema descriptor for captured_at field.
	entitysnapshotDescCapturedAt := entitysnapshotFields[7].Descriptor()
	// entitysnapshot.DefaultCapturedAt holds the default value on creation for the captured_at field.
	entitysnapshot.DefaultCapturedAt = entitysnapshotDescCapturedAt.Default.(func() time.Time)
	jobpostingentityMixin := schema.JobPostingEntity{}.Mixin()
	jobpostingentityMixinFields0 := jobpostingentityMixin[0].Fields()
	_ = jobpostingentityMixinFields0
	jobpostingentityFields := schema.JobPostingEntity{}.Fields()
	_ = jobpostingentityFields
	// jobpostingentityDescCreatedAt is the schema descriptor for created_at field.
	jobpostingentityDescCreatedAt := jobpostingentityMixinFields0[0].Descriptor()
	// jobpostingentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobpostingentity.DefaultCreatedAt = jobpostingentityDescCreatedAt.Default.(func() time.Time)
	// jobpostingentityDescUpdatedAt is the schema descriptor for updated_at field.
	jobpostingentityDescUpdatedAt := jobpostingentityMixinFields0[1].Descriptor()
	// jobpostingentity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobpostingentity.DefaultUpdatedAt = jobpostingentityDescUpdatedAt.Default.(func() time.Time)
	// jobpostingentity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobpostingentity.UpdateDefaultUpdatedAt = jobpostingentityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobpostingentityDescOrgID is the schema descriptor for org_id field.
	jobpostingentityDescOrgID := jobpostingentityFields[1].Descriptor()
	// jobpostingentity.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	jobpostingentity.OrgIDValidator = jobpostingentityDescOrgID.Validators[0].(func(string) error)
	// jobpostingentityDescRecordVersion is the schema descriptor for record_version field.
	jobpostingentityDescRecordVersion := jobpostingentityFields[2].Descriptor()
	// jobpostingentity.DefaultRecordVersion holds the default value on creation for the record_version field.
	jobpostingentity.DefaultRecordVersion = jobpostingentityDescRecordVersion.Default.(int)
	// jobpostingentity.RecordVersionValidator is a validator for the "record_version" field. It is called by the builders before save.
	jobpostingentity.RecordVersionValidator = jobpostingentityDescRecordVersion.Validators[0].(func(int) error)
	orgMixin := schema.Org{}.Mixin()
	orgMixinFields0 := orgMixin[0].Fields()
	_ = orgMixinFields0
	orgFields := schema.Org{}.Fields()
	_ = orgFields
	// orgDescCreatedAt is the schema descriptor for created_at field.
	orgDescCreatedAt := orgMixinFields0[0].Descriptor()
	// org.DefaultCreatedAt holds the default value on creation for the created_at field.
	org.DefaultCreatedAt = orgDescCreatedAt.Default.(func() time.Time)
	// orgDescUpdatedAt is the schema descriptor for updated_at field.
	orgDescUpdatedAt := orgMixinFields0[1].Descriptor()
	// org.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	org.DefaultUpdatedAt = orgDescUpdatedAt.Default.(func() time.Time)
	// org.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	org.UpdateDefaultUpdatedAt = orgDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orgDescName is the schema descriptor for name field.
	orgDescName := orgFields[1].Descriptor()
	// org.NameValidator is a validator for the "name" field. It is called by the builders before save.
	org.NameValidator = orgDescName.Validators[0].(func(string) error)
	// orgDescIsActive is the schema descriptor for is_active field.
	orgDescIsActive := orgFields[2].Descriptor()
	// org.DefaultIsActive holds the default value on creation for the is_active field.
	org.DefaultIsActive = orgDescIsActive.Default.(bool)
	personentityMixin := schema.PersonEntity{}.Mixin()
	personentityMixinFields0 := personentityMixin[0].Fields()
	_ = personentityMixinFields0
	personentityFields := schema.PersonEntity{}.Fields()
	_ = personentityFields
	// personentityDescCreatedAt is the schema descriptor for created_at field.
	personentityDescCreatedAt := personentityMixinFields0[0].Descriptor()
	// personentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	personentity.DefaultCreatedAt = personentityDescCreatedAt.Default.(func() time.Time)
	// personentityDescUpdatedAt is the schema descriptor for updated_at field.
	personentityDescUpdatedAt := personentityMixinFields0[1].Descriptor()
	// personentity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	personentity.DefaultUpdatedAt = personentityDescUpdatedAt.Default.(func() time.Time)
	// personentity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	personentity.UpdateDefaultUpdatedAt = personentityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// personentityDescOrgID is the schema descriptor for org_id field.
	personentityDescOrgID := personentityFields[1].Descriptor()
	// personentity.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	personentity.OrgIDValidator = personentityDescOrgID.Validators[0].(func(string) error)
	// personentityDescRecordVersion is the schema descriptor for record_version field.
	personentityDescRecordVersion := personentityFields[2].Descriptor()
	// personentity.DefaultRecordVersion holds the default value on creation for the record_version field.
	personentity.DefaultRecordVersion = personentityDescRecordVersion.Default.(int)
	// personentity.RecordVersionValidator is a validator for the "record_version" field. It is called by the builders before save.
	personentity.RecordVersionValidator = personentityDescRecordVersion.Validators[0].(func(int) error)
	pipelinerunMixin := schema.PipelineRun{}.Mixin()
	pipelinerunMixinFields0 := pipelinerunMixin[0].Fields()
	_ = pipelinerunMixinFields0
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunMixinFields0[0].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	// pipelinerunDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinerunDescUpdatedAt := pipelinerunMixinFields0[1].Descriptor()
	// pipelinerun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinerun.DefaultUpdatedAt = pipelinerunDescUpdatedAt.Default.(func() time.Time)
	// pipelinerun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinerun.UpdateDefaultUpdatedAt = pipelinerunDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pipelinerunDescOrgID is the schema descriptor for org_id field.
	pipelinerunDescOrgID := pipelinerunFields[1].Descriptor()
	// pipelinerun.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	pipelinerun.OrgIDValidator = pipelinerunDescOrgID.Validators[0].(func(string) error)
	// pipelinerunDescEntityIndex is the schema descriptor for entity_index field.
	pipelinerunDescEntityIndex := pipelinerunFields[5].Descriptor()
	// pipelinerun.DefaultEntityIndex holds the default value on creation for the entity_index field.
	pipelinerun.DefaultEntityIndex = pipelinerunDescEntityIndex.Default.(int)
	// pipelinerunDescCurrentPosition is the schema descriptor for current_position field.
	pipelinerunDescCurrentPosition := pipelinerunFields[9].Descriptor()
	// pipelinerun.DefaultCurrentPosition holds the default value on creation for the current_position field.
	pipelinerun.DefaultCurrentPosition = pipelinerunDescCurrentPosition.Default.(int)
	// pipelinerun.CurrentPositionValidator is a validator for the "current_position" field. It is called by the builders before save.
	pipelinerun.CurrentPositionValidator = pipelinerunDescCurrentPosition.Validators[0].(func(int) error)
	// pipelinerunDescDepth is the schema descriptor for depth field.
	pipelinerunDescDepth := pipelinerunFields[10].Descriptor()
	// pipelinerun.DefaultDepth holds the default value on creation for the depth field.
	pipelinerun.DefaultDepth = pipelinerunDescDepth.Default.(int)
	// pipelinerun.DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	pipelinerun.DepthValidator = pipelinerunDescDepth.Validators[0].(func(int) error)
	stepresultMixin := schema.StepResult{}.Mixin()
	stepresultMixinFields0 := stepresultMixin[0].Fields()
	_ = stepresultMixinFields0
	stepresultFields := schema.StepResult{}.Fields()
	_ = stepresultFields
	// stepresultDescCreatedAt is the schema descriptor for created_at field.
	stepresultDescCreatedAt := stepresultMixinFields0[0].Descriptor()
	// stepresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	stepresult.DefaultCreatedAt = stepresultDescCreatedAt.Default.(func() time.Time)
	// stepresultDescOrgID is the schema descriptor for org_id field.
	stepresultDescOrgID := stepresultFields[1].Descriptor()
	// stepresult.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	stepresult.OrgIDValidator = stepresultDescOrgID.Validators[0].(func(string) error)
	// stepresultDescPosition is the schema descriptor for position field.
	stepresultDescPosition := stepresultFields[2].Descriptor()
	// stepresult.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	stepresult.PositionValidator = stepresultDescPosition.Validators[0].(func(int) error)
	// stepresultDescOperationID is the schema descriptor for operation_id field.
	stepresultDescOperationID := stepresultFields[3].Descriptor()
	// stepresult.OperationIDValidator is a validator for the "operation_id" field. It is called by the builders before save.
	stepresult.OperationIDValidator = stepresultDescOperationID.Validators[0].(func(string) error)
	// stepresultDescAttemptNumber is the schema descriptor for attempt_number field.
	stepresultDescAttemptNumber := stepresultFields[4].Descriptor()
	// stepresult.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	stepresult.DefaultAttemptNumber = stepresultDescAttemptNumber.Default.(int)
	// stepresult.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	stepresult.AttemptNumberValidator = stepresultDescAttemptNumber.Validators[0].(func(int) error)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields0[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionMixinFields0[1].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescOrgID is the schema descriptor for org_id field.
	submissionDescOrgID := submissionFields[1].Descriptor()
	// submission.OrgIDValidator is a validator for the "org_id" field. It is called by the builders before save.
	submission.OrgIDValidator = submissionDescOrgID.Validators[0].(func(string) error)
	// submissionDescBlueprintID is the schema descriptor for blueprint_id field.
	submissionDescBlueprintID := submissionFields[3].Descriptor()
	// submission.BlueprintIDValidator is a validator for the "blueprint_id" field. It is called by the builders before save.
	submission.BlueprintIDValidator = submissionDescBlueprintID.Validators[0].(func(string) error)
	// submissionDescMaxDepth is the schema descriptor for max_depth field.
	submissionDescMaxDepth := submissionFields[6].Descriptor()
	// submission.DefaultMaxDepth holds the default value on creation for the max_depth field.
	submission.DefaultMaxDepth = submissionDescMaxDepth.Default.(int)
	// submission.MaxDepthValidator is a validator for the "max_depth" field. It is called by the builders before save.
	submission.MaxDepthValidator = submissionDescMaxDepth.Validators[0].(func(int) error)
	// submissionDescCancelRequested is the schema descriptor for cancel_requested field.
	submissionDescCancelRequested := submissionFields[7].Descriptor()
	// submission.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	submission.DefaultCancelRequested = submissionDescCancelRequested.Default.(bool)
}
