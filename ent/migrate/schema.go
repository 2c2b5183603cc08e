// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlueprintsColumns holds the columns for the "blueprints" table.
	BlueprintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "org_id", Type: field.TypeString},
	}
	// BlueprintsTable holds the schema information for the "blueprints" table.
	BlueprintsTable = &schema.Table{
		Name:       "blueprints",
		Columns:    BlueprintsColumns,
		PrimaryKey: []*schema.Column{BlueprintsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blueprints_orgs_blueprints",
				Columns:    []*schema.Column{BlueprintsColumns[6]},
				RefColumns: []*schema.Column{OrgsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blueprint_org_id_name",
				Unique:  true,
				Columns: []*schema.Column{BlueprintsColumns[6], BlueprintsColumns[3]},
			},
			{
				Name:    "blueprint_is_active",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[5]},
			},
		},
	}
	// BlueprintStepsColumns holds the columns for the "blueprint_steps" table.
	BlueprintStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "position", Type: field.TypeInt},
		{Name: "operation_id", Type: field.TypeString},
		{Name: "step_config", Type: field.TypeJSON, Nullable: true},
		{Name: "fan_out", Type: field.TypeBool, Default: false},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "skip_if_fresh", Type: field.TypeJSON, Nullable: true},
		{Name: "blueprint_steps", Type: field.TypeString},
	}
	// BlueprintStepsTable holds the schema information for the "blueprint_steps" table.
	BlueprintStepsTable = &schema.Table{
		Name:       "blueprint_steps",
		Columns:    BlueprintStepsColumns,
		PrimaryKey: []*schema.Column{BlueprintStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blueprint_steps_blueprints_steps",
				Columns:    []*schema.Column{BlueprintStepsColumns[9]},
				RefColumns: []*schema.Column{BlueprintsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blueprintstep_position_blueprint_steps",
				Unique:  true,
				Columns: []*schema.Column{BlueprintStepsColumns[3], BlueprintStepsColumns[9]},
			},
		},
	}
	// CompanyEntitiesColumns holds the columns for the "company_entities" table.
	CompanyEntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeString},
		{Name: "record_version", Type: field.TypeInt, Default: 1},
		{Name: "canonical_payload", Type: field.TypeJSON},
		{Name: "canonical_domain", Type: field.TypeString, Nullable: true},
		{Name: "linkedin_url", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "last_enriched_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_id", Type: field.TypeString, Nullable: true},
		{Name: "last_operation_id", Type: field.TypeString, Nullable: true},
		{Name: "source_providers", Type: field.TypeJSON, Nullable: true},
	}
	// CompanyEntitiesTable holds the schema information for the "company_entities" table.
	CompanyEntitiesTable = &schema.Table{
		Name:       "company_entities",
		Columns:    CompanyEntitiesColumns,
		PrimaryKey: []*schema.Column{CompanyEntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "companyentity_org_id_canonical_domain",
				Unique:  false,
				Columns: []*schema.Column{CompanyEntitiesColumns[3], CompanyEntitiesColumns[6]},
			},
			{
				Name:    "companyentity_org_id_linkedin_url",
				Unique:  false,
				Columns: []*schema.Column{CompanyEntitiesColumns[3], CompanyEntitiesColumns[7]},
			},
			{
				Name:    "companyentity_org_id_last_enriched_at",
				Unique:  false,
				Columns: []*schema.Column{CompanyEntitiesColumns[3], CompanyEntitiesColumns[9]},
			},
		},
	}
	// EntitySnapshotsColumns holds the columns for the "entity_snapshots" table.
	EntitySnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"company", "person", "job"}},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "record_version", Type: field.TypeInt},
		{Name: "canonical_payload", Type: field.TypeJSON},
		{Name: "source_run_id", Type: field.TypeString, Nullable: true},
		{Name: "captured_at", Type: field.TypeTime},
	}
	// EntitySnapshotsTable holds the schema information for the "entity_snapshots" table.
	EntitySnapshotsTable = &schema.Table{
		Name:       "entity_snapshots",
		Columns:    EntitySnapshotsColumns,
		PrimaryKey: []*schema.Column{EntitySnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitysnapshot_org_id_entity_type_entity_id_captured_at",
				Unique:  false,
				Columns: []*schema.Column{EntitySnapshotsColumns[2], EntitySnapshotsColumns[3], EntitySnapshotsColumns[4], EntitySnapshotsColumns[8]},
			},
			{
				Name:    "entitysnapshot_entity_type_entity_id_record_version",
				Unique:  false,
				Columns: []*schema.Column{EntitySnapshotsColumns[3], EntitySnapshotsColumns[4], EntitySnapshotsColumns[5]},
			},
		},
	}
	// JobPostingEntitiesColumns holds the columns for the "job_posting_entities" table.
	JobPostingEntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeString},
		{Name: "record_version", Type: field.TypeInt, Default: 1},
		{Name: "canonical_payload", Type: field.TypeJSON},
		{Name: "theirstack_job_id", Type: field.TypeString, Nullable: true},
		{Name: "job_url", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "company_domain", Type: field.TypeString, Nullable: true},
		{Name: "last_enriched_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_id", Type: field.TypeString, Nullable: true},
		{Name: "last_operation_id", Type: field.TypeString, Nullable: true},
		{Name: "source_providers", Type: field.TypeJSON, Nullable: true},
	}
	// JobPostingEntitiesTable holds the schema information for the "job_posting_entities" table.
	JobPostingEntitiesTable = &schema.Table{
		Name:       "job_posting_entities",
		Columns:    JobPostingEntitiesColumns,
		PrimaryKey: []*schema.Column{JobPostingEntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "jobpostingentity_org_id_theirstack_job_id",
				Unique:  false,
				Columns: []*schema.Column{JobPostingEntitiesColumns[3], JobPostingEntitiesColumns[6]},
			},
			{
				Name:    "jobpostingentity_org_id_job_url",
				Unique:  false,
				Columns: []*schema.Column{JobPostingEntitiesColumns[3], JobPostingEntitiesColumns[7]},
			},
			{
				Name:    "jobpostingentity_org_id_company_domain",
				Unique:  false,
				Columns: []*schema.Column{JobPostingEntitiesColumns[3], JobPostingEntitiesColumns[9]},
			},
		},
	}
	// OrgsColumns holds the columns for the "orgs" table.
	OrgsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// OrgsTable holds the schema information for the "orgs" table.
	OrgsTable = &schema.Table{
		Name:       "orgs",
		Columns:    OrgsColumns,
		PrimaryKey: []*schema.Column{OrgsColumns[0]},
	}
	// PersonEntitiesColumns holds the columns for the "person_entities" table.
	PersonEntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeString},
		{Name: "record_version", Type: field.TypeInt, Default: 1},
		{Name: "canonical_payload", Type: field.TypeJSON},
		{Name: "linkedin_url", Type: field.TypeString, Nullable: true},
		{Name: "work_email", Type: field.TypeString, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "last_enriched_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_run_id", Type: field.TypeString, Nullable: true},
		{Name: "last_operation_id", Type: field.TypeString, Nullable: true},
		{Name: "source_providers", Type: field.TypeJSON, Nullable: true},
	}
	// PersonEntitiesTable holds the schema information for the "person_entities" table.
	PersonEntitiesTable = &schema.Table{
		Name:       "person_entities",
		Columns:    PersonEntitiesColumns,
		PrimaryKey: []*schema.Column{PersonEntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "personentity_org_id_linkedin_url",
				Unique:  false,
				Columns: []*schema.Column{PersonEntitiesColumns[3], PersonEntitiesColumns[6]},
			},
			{
				Name:    "personentity_org_id_work_email",
				Unique:  false,
				Columns: []*schema.Column{PersonEntitiesColumns[3], PersonEntitiesColumns[7]},
			},
			{
				Name:    "personentity_org_id_last_enriched_at",
				Unique:  false,
				Columns: []*schema.Column{PersonEntitiesColumns[3], PersonEntitiesColumns[9]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeString},
		{Name: "parent_run_id", Type: field.TypeString, Nullable: true},
		{Name: "trigger_run_id", Type: field.TypeString, Nullable: true},
		{Name: "entity_type", Type: field.TypeEnum, Enums: []string{"company", "person", "job"}},
		{Name: "entity_index", Type: field.TypeInt, Default: 0},
		{Name: "blueprint_snapshot", Type: field.TypeJSON},
		{Name: "entity_input", Type: field.TypeJSON},
		{Name: "cumulative_context", Type: field.TypeJSON, Nullable: true},
		{Name: "current_position", Type: field.TypeInt, Default: 1},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"QUEUED", "RUNNING", "SUCCEEDED", "FAILED", "SKIPPED"}, Default: "QUEUED"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "submission_runs", Type: field.TypeString},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_runs_submissions_runs",
				Columns:    []*schema.Column{PipelineRunsColumns[17]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[3], PipelineRunsColumns[13]},
			},
			{
				Name:    "pipelinerun_parent_run_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[4]},
			},
			{
				Name:    "pipelinerun_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[13]},
			},
		},
	}
	// StepResultsColumns holds the columns for the "step_results" table.
	StepResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "operation_id", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"QUEUED", "RUNNING", "SUCCEEDED", "NOT_FOUND", "FAILED", "SKIPPED"}},
		{Name: "input_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "output_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "provider_attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "children_spawned", Type: field.TypeInt, Nullable: true},
		{Name: "skipped_duplicates", Type: field.TypeJSON, Nullable: true},
		{Name: "pipeline_run_step_results", Type: field.TypeString},
	}
	// StepResultsTable holds the schema information for the "step_results" table.
	StepResultsTable = &schema.Table{
		Name:       "step_results",
		Columns:    StepResultsColumns,
		PrimaryKey: []*schema.Column{StepResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "step_results_pipeline_runs_step_results",
				Columns:    []*schema.Column{StepResultsColumns[14]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stepresult_position_pipeline_run_step_results",
				Unique:  false,
				Columns: []*schema.Column{StepResultsColumns[3], StepResultsColumns[14]},
			},
			{
				Name:    "stepresult_operation_id",
				Unique:  false,
				Columns: []*schema.Column{StepResultsColumns[4]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString, Nullable: true},
		{Name: "blueprint_id", Type: field.TypeString},
		{Name: "entities", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "PROCESSING", "COMPLETED", "FAILED", "CANCELLED"}, Default: "PENDING"},
		{Name: "max_depth", Type: field.TypeInt, Default: 3},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "org_id", Type: field.TypeString},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_orgs_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[9]},
				RefColumns: []*schema.Column{OrgsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[9], SubmissionsColumns[6]},
			},
			{
				Name:    "submission_blueprint_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[4]},
			},
			{
				Name:    "submission_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlueprintsTable,
		BlueprintStepsTable,
		CompanyEntitiesTable,
		EntitySnapshotsTable,
		JobPostingEntitiesTable,
		OrgsTable,
		PersonEntitiesTable,
		PipelineRunsTable,
		StepResultsTable,
		SubmissionsTable,
	}
)

func init() {
	BlueprintsTable.ForeignKeys[0].RefTable = OrgsTable
	BlueprintStepsTable.ForeignKeys[0].RefTable = BlueprintsTable
	PipelineRunsTable.ForeignKeys[0].RefTable = SubmissionsTable
	StepResultsTable.ForeignKeys[0].RefTable = PipelineRunsTable
	SubmissionsTable.ForeignKeys[0].RefTable = OrgsTable
}
