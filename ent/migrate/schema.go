// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmProviderConfigsColumns holds the columns for the "llm_provider_configs" table.
	LlmProviderConfigsColumns = []*schema.Column{
		{Name: "provider_id", Type: field.TypeString, Unique: true},
		{Name: "vendor_tag", Type: field.TypeEnum, Enums: []string{"openai", "mistral"}},
		{Name: "model_name", Type: field.TypeString},
		{Name: "api_key_encrypted", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.7},
		{Name: "max_tokens", Type: field.TypeInt, Default: 512},
		{Name: "json_mode", Type: field.TypeBool, Default: false},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// LlmProviderConfigsTable holds the schema information for the "llm_provider_configs" table.
	LlmProviderConfigsTable = &schema.Table{
		Name:       "llm_provider_configs",
		Columns:    LlmProviderConfigsColumns,
		PrimaryKey: []*schema.Column{LlmProviderConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_provider_configs_users_llm_providers",
				Columns:    []*schema.Column{LlmProviderConfigsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llmproviderconfig_user_id",
				Unique:  false,
				Columns: []*schema.Column{LlmProviderConfigsColumns[8]},
			},
		},
	}
	// MonitoringProcessesColumns holds the columns for the "monitoring_processes" table.
	MonitoringProcessesColumns = []*schema.Column{
		{Name: "process_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "llm_provider_id", Type: field.TypeString},
		{Name: "tab_filters", Type: field.TypeJSON, Nullable: true},
		{Name: "category_filter", Type: field.TypeString, Nullable: true},
		{Name: "keyword_filters", Type: field.TypeJSON, Nullable: true},
		{Name: "generate_only", Type: field.TypeBool, Default: false},
		{Name: "max_duration_minutes", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "running", "stopped", "completed", "failed"}, Default: "created"},
		{Name: "stop_reason", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "stopped_at", Type: field.TypeTime, Nullable: true},
		{Name: "stage_task_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "articles_discovered", Type: field.TypeInt, Default: 0},
		{Name: "articles_prepared", Type: field.TypeInt, Default: 0},
		{Name: "comments_generated", Type: field.TypeInt, Default: 0},
		{Name: "comments_posted", Type: field.TypeInt, Default: 0},
		{Name: "errors_discovery", Type: field.TypeInt, Default: 0},
		{Name: "errors_preparation", Type: field.TypeInt, Default: 0},
		{Name: "errors_generation", Type: field.TypeInt, Default: 0},
		{Name: "errors_posting", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// MonitoringProcessesTable holds the schema information for the "monitoring_processes" table.
	MonitoringProcessesTable = &schema.Table{
		Name:       "monitoring_processes",
		Columns:    MonitoringProcessesColumns,
		PrimaryKey: []*schema.Column{MonitoringProcessesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "monitoring_processes_users_processes",
				Columns:    []*schema.Column{MonitoringProcessesColumns[26]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "monitoringprocess_status",
				Unique:  false,
				Columns: []*schema.Column{MonitoringProcessesColumns[9]},
			},
			{
				Name:    "monitoringprocess_user_id",
				Unique:  false,
				Columns: []*schema.Column{MonitoringProcessesColumns[26]},
			},
			{
				Name:    "monitoringprocess_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{MonitoringProcessesColumns[26], MonitoringProcessesColumns[9]},
			},
			{
				Name:    "monitoringprocess_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{MonitoringProcessesColumns[9], MonitoringProcessesColumns[12]},
			},
		},
	}
	// PromptTemplatesColumns holds the columns for the "prompt_templates" table.
	PromptTemplatesColumns = []*schema.Column{
		{Name: "template_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "user_prompt_template", Type: field.TypeString, Size: 2147483647},
		{Name: "is_system", Type: field.TypeBool, Default: false},
		{Name: "owner_user_id", Type: field.TypeString, Nullable: true},
	}
	// PromptTemplatesTable holds the schema information for the "prompt_templates" table.
	PromptTemplatesTable = &schema.Table{
		Name:       "prompt_templates",
		Columns:    PromptTemplatesColumns,
		PrimaryKey: []*schema.Column{PromptTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_templates_users_templates",
				Columns:    []*schema.Column{PromptTemplatesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prompttemplate_owner_user_id",
				Unique:  false,
				Columns: []*schema.Column{PromptTemplatesColumns[5]},
			},
			{
				Name:    "prompttemplate_is_system",
				Unique:  false,
				Columns: []*schema.Column{PromptTemplatesColumns[4]},
			},
		},
	}
	// StageTasksColumns holds the columns for the "stage_tasks" table.
	StageTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "queue", Type: field.TypeEnum, Enums: []string{"discovery", "preparation", "generation", "posting", "timeouts", "scheduler", "sessions"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "started", "retry", "success", "failure", "revoked"}, Default: "pending"},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "process_id", Type: field.TypeString},
	}
	// StageTasksTable holds the schema information for the "stage_tasks" table.
	StageTasksTable = &schema.Table{
		Name:       "stage_tasks",
		Columns:    StageTasksColumns,
		PrimaryKey: []*schema.Column{StageTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_tasks_monitoring_processes_stage_tasks",
				Columns:    []*schema.Column{StageTasksColumns[8]},
				RefColumns: []*schema.Column{MonitoringProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stagetask_queue_status_enqueued_at",
				Unique:  false,
				Columns: []*schema.Column{StageTasksColumns[1], StageTasksColumns[2], StageTasksColumns[3]},
			},
			{
				Name:    "stagetask_process_id",
				Unique:  false,
				Columns: []*schema.Column{StageTasksColumns[8]},
			},
			{
				Name:    "stagetask_status",
				Unique:  false,
				Columns: []*schema.Column{StageTasksColumns[2]},
			},
		},
	}
	// UpstreamCredentialsColumns holds the columns for the "upstream_credentials" table.
	UpstreamCredentialsColumns = []*schema.Column{
		{Name: "credential_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "password_encrypted", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// UpstreamCredentialsTable holds the schema information for the "upstream_credentials" table.
	UpstreamCredentialsTable = &schema.Table{
		Name:       "upstream_credentials",
		Columns:    UpstreamCredentialsColumns,
		PrimaryKey: []*schema.Column{UpstreamCredentialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upstream_credentials_users_credentials",
				Columns:    []*schema.Column{UpstreamCredentialsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "upstreamcredential_user_id",
				Unique:  false,
				Columns: []*schema.Column{UpstreamCredentialsColumns[7]},
			},
			{
				Name:    "upstreamcredential_user_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{UpstreamCredentialsColumns[7], UpstreamCredentialsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// WorkRecordsColumns holds the columns for the "work_records" table.
	WorkRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "credential_id", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeString},
		{Name: "llm_provider_id", Type: field.TypeString},
		{Name: "upstream_article_id", Type: field.TypeString},
		{Name: "article_title", Type: field.TypeString},
		{Name: "article_author", Type: field.TypeString, Nullable: true},
		{Name: "article_category", Type: field.TypeString, Nullable: true},
		{Name: "article_url", Type: field.TypeString, Nullable: true},
		{Name: "article_edited_at", Type: field.TypeTime, Nullable: true},
		{Name: "article_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "article_raw_html", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "article_published_at", Type: field.TypeTime, Nullable: true},
		{Name: "article_scraped_at", Type: field.TypeTime, Nullable: true},
		{Name: "comment_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "upstream_comment_id", Type: field.TypeString, Nullable: true},
		{Name: "ai_model_name", Type: field.TypeString, Nullable: true},
		{Name: "ai_vendor_tag", Type: field.TypeString, Nullable: true},
		{Name: "generation_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "generation_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"discovered", "prepared", "generated", "posted", "failed"}, Default: "discovered"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "posted_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "process_id", Type: field.TypeString},
	}
	// WorkRecordsTable holds the schema information for the "work_records" table.
	WorkRecordsTable = &schema.Table{
		Name:       "work_records",
		Columns:    WorkRecordsColumns,
		PrimaryKey: []*schema.Column{WorkRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "work_records_monitoring_processes_work_records",
				Columns:    []*schema.Column{WorkRecordsColumns[28]},
				RefColumns: []*schema.Column{MonitoringProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workrecord_process_id_credential_id_template_id_upstream_article_id",
				Unique:  true,
				Columns: []*schema.Column{WorkRecordsColumns[28], WorkRecordsColumns[2], WorkRecordsColumns[3], WorkRecordsColumns[5]},
			},
			{
				Name:    "workrecord_process_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkRecordsColumns[28], WorkRecordsColumns[21]},
			},
			{
				Name:    "workrecord_status",
				Unique:  false,
				Columns: []*schema.Column{WorkRecordsColumns[21]},
			},
			{
				Name:    "workrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkRecordsColumns[26]},
			},
		},
	}
	// MonitoringProcessCredentialsColumns holds the columns for the "monitoring_process_credentials" table.
	MonitoringProcessCredentialsColumns = []*schema.Column{
		{Name: "monitoring_process_id", Type: field.TypeString},
		{Name: "upstream_credential_id", Type: field.TypeString},
	}
	// MonitoringProcessCredentialsTable holds the schema information for the "monitoring_process_credentials" table.
	MonitoringProcessCredentialsTable = &schema.Table{
		Name:       "monitoring_process_credentials",
		Columns:    MonitoringProcessCredentialsColumns,
		PrimaryKey: []*schema.Column{MonitoringProcessCredentialsColumns[0], MonitoringProcessCredentialsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "monitoring_process_credentials_monitoring_process_id",
				Columns:    []*schema.Column{MonitoringProcessCredentialsColumns[0]},
				RefColumns: []*schema.Column{MonitoringProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "monitoring_process_credentials_upstream_credential_id",
				Columns:    []*schema.Column{MonitoringProcessCredentialsColumns[1]},
				RefColumns: []*schema.Column{UpstreamCredentialsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// MonitoringProcessTemplatesColumns holds the columns for the "monitoring_process_templates" table.
	MonitoringProcessTemplatesColumns = []*schema.Column{
		{Name: "monitoring_process_id", Type: field.TypeString},
		{Name: "prompt_template_id", Type: field.TypeString},
	}
	// MonitoringProcessTemplatesTable holds the schema information for the "monitoring_process_templates" table.
	MonitoringProcessTemplatesTable = &schema.Table{
		Name:       "monitoring_process_templates",
		Columns:    MonitoringProcessTemplatesColumns,
		PrimaryKey: []*schema.Column{MonitoringProcessTemplatesColumns[0], MonitoringProcessTemplatesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "monitoring_process_templates_monitoring_process_id",
				Columns:    []*schema.Column{MonitoringProcessTemplatesColumns[0]},
				RefColumns: []*schema.Column{MonitoringProcessesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "monitoring_process_templates_prompt_template_id",
				Columns:    []*schema.Column{MonitoringProcessTemplatesColumns[1]},
				RefColumns: []*schema.Column{PromptTemplatesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmProviderConfigsTable,
		MonitoringProcessesTable,
		PromptTemplatesTable,
		StageTasksTable,
		UpstreamCredentialsTable,
		UsersTable,
		WorkRecordsTable,
		MonitoringProcessCredentialsTable,
		MonitoringProcessTemplatesTable,
	}
)

func init() {
	LlmProviderConfigsTable.ForeignKeys[0].RefTable = UsersTable
	MonitoringProcessesTable.ForeignKeys[0].RefTable = UsersTable
	PromptTemplatesTable.ForeignKeys[0].RefTable = UsersTable
	StageTasksTable.ForeignKeys[0].RefTable = MonitoringProcessesTable
	UpstreamCredentialsTable.ForeignKeys[0].RefTable = UsersTable
	WorkRecordsTable.ForeignKeys[0].RefTable = MonitoringProcessesTable
	MonitoringProcessCredentialsTable.ForeignKeys[0].RefTable = MonitoringProcessesTable
	MonitoringProcessCredentialsTable.ForeignKeys[1].RefTable = UpstreamCredentialsTable
	MonitoringProcessTemplatesTable.ForeignKeys[0].RefTable = MonitoringProcessesTable
	MonitoringProcessTemplatesTable.ForeignKeys[1].RefTable = PromptTemplatesTable
}
