// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/schema"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/user"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmproviderconfigFields := schema.LLMProviderConfig{}.Fields()
	_ = llmproviderconfigFields
	// llmproviderconfigDescTemperature is the schema descriptor for temperature field.
	llmproviderconfigDescTemperature := llmproviderconfigFields[5].Descriptor()
	// llmproviderconfig.DefaultTemperature holds the default value on creation for the temperature field.
	llmproviderconfig.DefaultTemperature = llmproviderconfigDescTemperature.Default.(float64)
	// llmproviderconfig.TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	llmproviderconfig.TemperatureValidator = llmproviderconfigDescTemperature.Validators[0].(func(float64) error)
	// llmproviderconfigDescMaxTokens is the schema descriptor for max_tokens field.
	llmproviderconfigDescMaxTokens := llmproviderconfigFields[6].Descriptor()
	// llmproviderconfig.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	llmproviderconfig.DefaultMaxTokens = llmproviderconfigDescMaxTokens.Default.(int)
	// llmproviderconfig.MaxTokensValidator is a validator for the "max_tokens" field. It is called by the builders before save.
	llmproviderconfig.MaxTokensValidator = llmproviderconfigDescMaxTokens.Validators[0].(func(int) error)
	// llmproviderconfigDescJSONMode is the schema descriptor for json_mode field.
	llmproviderconfigDescJSONMode := llmproviderconfigFields[7].Descriptor()
	// llmproviderconfig.DefaultJSONMode holds the default value on creation for the json_mode field.
	llmproviderconfig.DefaultJSONMode = llmproviderconfigDescJSONMode.Default.(bool)
	// llmproviderconfigDescIsActive is the schema descriptor for is_active field.
	llmproviderconfigDescIsActive := llmproviderconfigFields[8].Descriptor()
	// llmproviderconfig.DefaultIsActive holds the default value on creation for the is_active field.
	llmproviderconfig.DefaultIsActive = llmproviderconfigDescIsActive.Default.(bool)
	monitoringprocessFields := schema.MonitoringProcess{}.Fields()
	_ = monitoringprocessFields
	// monitoringprocessDescGenerateOnly is the schema descriptor for generate_only field.
	monitoringprocessDescGenerateOnly := monitoringprocessFields[8].Descriptor()
	// monitoringprocess.DefaultGenerateOnly holds the default value on creation for the generate_only field.
	monitoringprocess.DefaultGenerateOnly = monitoringprocessDescGenerateOnly.Default.(bool)
	// monitoringprocessDescMaxDurationMinutes is the schema descriptor for max_duration_minutes field.
	monitoringprocessDescMaxDurationMinutes := monitoringprocessFields[9].Descriptor()
	// monitoringprocess.MaxDurationMinutesValidator is a validator for the "max_duration_minutes" field. It is called by the builders before save.
	monitoringprocess.MaxDurationMinutesValidator = monitoringprocessDescMaxDurationMinutes.Validators[0].(func(int) error)
	// monitoringprocessDescArticlesDiscovered is the schema descriptor for articles_discovered field.
	monitoringprocessDescArticlesDiscovered := monitoringprocessFields[16].Descriptor()
	// monitoringprocess.DefaultArticlesDiscovered holds the default value on creation for the articles_discovered field.
	monitoringprocess.DefaultArticlesDiscovered = monitoringprocessDescArticlesDiscovered.Default.(int)
	// monitoringprocessDescArticlesPrepared is the schema descriptor for articles_prepared field.
	monitoringprocessDescArticlesPrepared := monitoringprocessFields[17].Descriptor()
	// monitoringprocess.DefaultArticlesPrepared holds the default value on creation for the articles_prepared field.
	monitoringprocess.DefaultArticlesPrepared = monitoringprocessDescArticlesPrepared.Default.(int)
	// monitoringprocessDescCommentsGenerated is the schema descriptor for comments_generated field.
	monitoringprocessDescCommentsGenerated := monitoringprocessFields[18].Descriptor()
	// monitoringprocess.DefaultCommentsGenerated holds the default value on creation for the comments_generated field.
	monitoringprocess.DefaultCommentsGenerated = monitoringprocessDescCommentsGenerated.Default.(int)
	// monitoringprocessDescCommentsPosted is the schema descriptor for comments_posted field.
	monitoringprocessDescCommentsPosted := monitoringprocessFields[19].Descriptor()
	// monitoringprocess.DefaultCommentsPosted holds the default value on creation for the comments_posted field.
	monitoringprocess.DefaultCommentsPosted = monitoringprocessDescCommentsPosted.Default.(int)
	// monitoringprocessDescErrorsDiscovery is the schema descriptor for errors_discovery field.
	monitoringprocessDescErrorsDiscovery := monitoringprocessFields[20].Descriptor()
	// monitoringprocess.DefaultErrorsDiscovery holds the default value on creation for the errors_discovery field.
	monitoringprocess.DefaultErrorsDiscovery = monitoringprocessDescErrorsDiscovery.Default.(int)
	// monitoringprocessDescErrorsPreparation is the schema descriptor for errors_preparation field.
	monitoringprocessDescErrorsPreparation := monitoringprocessFields[21].Descriptor()
	// monitoringprocess.DefaultErrorsPreparation holds the default value on creation for the errors_preparation field.
	monitoringprocess.DefaultErrorsPreparation = monitoringprocessDescErrorsPreparation.Default.(int)
	// monitoringprocessDescErrorsGeneration is the schema descriptor for errors_generation field.
	monitoringprocessDescErrorsGeneration := monitoringprocessFields[22].Descriptor()
	// monitoringprocess.DefaultErrorsGeneration holds the default value on creation for the errors_generation field.
	monitoringprocess.DefaultErrorsGeneration = monitoringprocessDescErrorsGeneration.Default.(int)
	// monitoringprocessDescErrorsPosting is the schema descriptor for errors_posting field.
	monitoringprocessDescErrorsPosting := monitoringprocessFields[23].Descriptor()
	// monitoringprocess.DefaultErrorsPosting holds the default value on creation for the errors_posting field.
	monitoringprocess.DefaultErrorsPosting = monitoringprocessDescErrorsPosting.Default.(int)
	// monitoringprocessDescCreatedAt is the schema descriptor for created_at field.
	monitoringprocessDescCreatedAt := monitoringprocessFields[25].Descriptor()
	// monitoringprocess.DefaultCreatedAt holds the default value on creation for the created_at field.
	monitoringprocess.DefaultCreatedAt = monitoringprocessDescCreatedAt.Default.(func() time.Time)
	// monitoringprocessDescUpdatedAt is the schema descriptor for updated_at field.
	monitoringprocessDescUpdatedAt := monitoringprocessFields[26].Descriptor()
	// monitoringprocess.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	monitoringprocess.DefaultUpdatedAt = monitoringprocessDescUpdatedAt.Default.(func() time.Time)
	// monitoringprocess.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	monitoringprocess.UpdateDefaultUpdatedAt = monitoringprocessDescUpdatedAt.UpdateDefault.(func() time.Time)
	prompttemplateFields := schema.PromptTemplate{}.Fields()
	_ = prompttemplateFields
	// prompttemplateDescIsSystem is the schema descriptor for is_system field.
	prompttemplateDescIsSystem := prompttemplateFields[5].Descriptor()
	// prompttemplate.DefaultIsSystem holds the default value on creation for the is_system field.
	prompttemplate.DefaultIsSystem = prompttemplateDescIsSystem.Default.(bool)
	stagetaskFields := schema.StageTask{}.Fields()
	_ = stagetaskFields
	// stagetaskDescEnqueuedAt is the schema descriptor for enqueued_at field.
	stagetaskDescEnqueuedAt := stagetaskFields[4].Descriptor()
	// stagetask.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	stagetask.DefaultEnqueuedAt = stagetaskDescEnqueuedAt.Default.(func() time.Time)
	upstreamcredentialFields := schema.UpstreamCredential{}.Fields()
	_ = upstreamcredentialFields
	// upstreamcredentialDescIsActive is the schema descriptor for is_active field.
	upstreamcredentialDescIsActive := upstreamcredentialFields[5].Descriptor()
	// upstreamcredential.DefaultIsActive holds the default value on creation for the is_active field.
	upstreamcredential.DefaultIsActive = upstreamcredentialDescIsActive.Default.(bool)
	// upstreamcredentialDescCreatedAt is the schema descriptor for created_at field.
	upstreamcredentialDescCreatedAt := upstreamcredentialFields[6].Descriptor()
	// upstreamcredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	upstreamcredential.DefaultCreatedAt = upstreamcredentialDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	workrecordFields := schema.WorkRecord{}.Fields()
	_ = workrecordFields
	// workrecordDescRetryCount is the schema descriptor for retry_count field.
	workrecordDescRetryCount := workrecordFields[24].Descriptor()
	// workrecord.DefaultRetryCount holds the default value on creation for the retry_count field.
	workrecord.DefaultRetryCount = workrecordDescRetryCount.Default.(int)
	// workrecordDescCreatedAt is the schema descriptor for created_at field.
	workrecordDescCreatedAt := workrecordFields[27].Descriptor()
	// workrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	workrecord.DefaultCreatedAt = workrecordDescCreatedAt.Default.(func() time.Time)
	// workrecordDescUpdatedAt is the schema descriptor for updated_at field.
	workrecordDescUpdatedAt := workrecordFields[28].Descriptor()
	// workrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workrecord.DefaultUpdatedAt = workrecordDescUpdatedAt.Default.(func() time.Time)
	// workrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workrecord.UpdateDefaultUpdatedAt = workrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
