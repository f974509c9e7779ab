// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMProviderConfig is the predicate function for llmproviderconfig builders.
type LLMProviderConfig func(*sql.Selector)

// MonitoringProcess is the predicate function for monitoringprocess builders.
type MonitoringProcess func(*sql.Selector)

// PromptTemplate is the predicate function for prompttemplate builders.
type PromptTemplate func(*sql.Selector)

// StageTask is the predicate function for stagetask builders.
type StageTask func(*sql.Selector)

// UpstreamCredential is the predicate function for upstreamcredential builders.
type UpstreamCredential func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WorkRecord is the predicate function for workrecord builders.
type WorkRecord func(*sql.Selector)
