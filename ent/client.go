// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/yourmoment/yourmoment/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/user"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMProviderConfig is the client for interacting with the LLMProviderConfig builders.
	LLMProviderConfig *LLMProviderConfigClient
	// MonitoringProcess is the client for interacting with the MonitoringProcess builders.
	MonitoringProcess *MonitoringProcessClient
	// PromptTemplate is the client for interacting with the PromptTemplate builders.
	PromptTemplate *PromptTemplateClient
	// StageTask is the client for interacting with the StageTask builders.
	StageTask *StageTaskClient
	// UpstreamCredential is the client for interacting with the UpstreamCredential builders.
	UpstreamCredential *UpstreamCredentialClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WorkRecord is the client for interacting with the WorkRecord builders.
	WorkRecord *WorkRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMProviderConfig = NewLLMProviderConfigClient(c.config)
	c.MonitoringProcess = NewMonitoringProcessClient(c.config)
	c.PromptTemplate = NewPromptTemplateClient(c.config)
	c.StageTask = NewStageTaskClient(c.config)
	c.UpstreamCredential = NewUpstreamCredentialClient(c.config)
	c.User = NewUserClient(c.config)
	c.WorkRecord = NewWorkRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		LLMProviderConfig:  NewLLMProviderConfigClient(cfg),
		MonitoringProcess:  NewMonitoringProcessClient(cfg),
		PromptTemplate:     NewPromptTemplateClient(cfg),
		StageTask:          NewStageTaskClient(cfg),
		UpstreamCredential: NewUpstreamCredentialClient(cfg),
		User:               NewUserClient(cfg),
		WorkRecord:         NewWorkRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		LLMProviderConfig:  NewLLMProviderConfigClient(cfg),
		MonitoringProcess:  NewMonitoringProcessClient(cfg),
		PromptTemplate:     NewPromptTemplateClient(cfg),
		StageTask:          NewStageTaskClient(cfg),
		UpstreamCredential: NewUpstreamCredentialClient(cfg),
		User:               NewUserClient(cfg),
		WorkRecord:         NewWorkRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMProviderConfig.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.LLMProviderConfig, c.MonitoringProcess, c.PromptTemplate, c.StageTask,
		c.UpstreamCredential, c.User, c.WorkRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LLMProviderConfig, c.MonitoringProcess, c.PromptTemplate, c.StageTask,
		c.UpstreamCredential, c.User, c.WorkRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMProviderConfigMutation:
		return c.LLMProviderConfig.mutate(ctx, m)
	case *MonitoringProcessMutation:
		return c.MonitoringProcess.mutate(ctx, m)
	case *PromptTemplateMutation:
		return c.PromptTemplate.mutate(ctx, m)
	case *StageTaskMutation:
		return c.StageTask.mutate(ctx, m)
	case *UpstreamCredentialMutation:
		return c.UpstreamCredential.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WorkRecordMutation:
		return c.WorkRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMProviderConfigClient is a client for the LLMProviderConfig schema.
type LLMProviderConfigClient struct {
	config
}

// NewLLMProviderConfigClient returns a client for the LLMProviderConfig from the given config.
func NewLLMProviderConfigClient(c config) *LLMProviderConfigClient {
	return &LLMProviderConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmproviderconfig.Hooks(f(g(h())))`.
func (c *LLMProviderConfigClient) Use(hooks ...Hook) {
	c.hooks.LLMProviderConfig = append(c.hooks.LLMProviderConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmproviderconfig.Intercept(f(g(h())))`.
func (c *LLMProviderConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMProviderConfig = append(c.inters.LLMProviderConfig, interceptors...)
}

// Create returns a builder for creating a LLMProviderConfig entity.
func (c *LLMProviderConfigClient) Create() *LLMProviderConfigCreate {
	mutation := newLLMProviderConfigMutation(c.config, OpCreate)
	return &LLMProviderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMProviderConfig entities.
func (c *LLMProviderConfigClient) CreateBulk(builders ...*LLMProviderConfigCreate) *LLMProviderConfigCreateBulk {
	return &LLMProviderConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMProviderConfigClient) MapCreateBulk(slice any, setFunc func(*LLMProviderConfigCreate, int)) *LLMProviderConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMProviderConfigCreateBulk{err: fmt.Errorf("calling to LLMProviderConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMProviderConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMProviderConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMProviderConfig.
func (c *LLMProviderConfigClient) Update() *LLMProviderConfigUpdate {
	mutation := newLLMProviderConfigMutation(c.config, OpUpdate)
	return &LLMProviderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMProviderConfigClient) UpdateOne(_m *LLMProviderConfig) *LLMProviderConfigUpdateOne {
	mutation := newLLMProviderConfigMutation(c.config, OpUpdateOne, withLLMProviderConfig(_m))
	return &LLMProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMProviderConfigClient) UpdateOneID(id string) *LLMProviderConfigUpdateOne {
	mutation := newLLMProviderConfigMutation(c.config, OpUpdateOne, withLLMProviderConfigID(id))
	return &LLMProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMProviderConfig.
func (c *LLMProviderConfigClient) Delete() *LLMProviderConfigDelete {
	mutation := newLLMProviderConfigMutation(c.config, OpDelete)
	return &LLMProviderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMProviderConfigClient) DeleteOne(_m *LLMProviderConfig) *LLMProviderConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMProviderConfigClient) DeleteOneID(id string) *LLMProviderConfigDeleteOne {
	builder := c.Delete().Where(llmproviderconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMProviderConfigDeleteOne{builder}
}

// Query returns a query builder for LLMProviderConfig.
func (c *LLMProviderConfigClient) Query() *LLMProviderConfigQuery {
	return &LLMProviderConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMProviderConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMProviderConfig entity by its id.
func (c *LLMProviderConfigClient) Get(ctx context.Context, id string) (*LLMProviderConfig, error) {
	return c.Query().Where(llmproviderconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMProviderConfigClient) GetX(ctx context.Context, id string) *LLMProviderConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a LLMProviderConfig.
func (c *LLMProviderConfigClient) QueryOwner(_m *LLMProviderConfig) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llmproviderconfig.Table, llmproviderconfig.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llmproviderconfig.OwnerTable, llmproviderconfig.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LLMProviderConfigClient) Hooks() []Hook {
	return c.hooks.LLMProviderConfig
}

// Interceptors returns the client interceptors.
func (c *LLMProviderConfigClient) Interceptors() []Interceptor {
	return c.inters.LLMProviderConfig
}

func (c *LLMProviderConfigClient) mutate(ctx context.Context, m *LLMProviderConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMProviderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMProviderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMProviderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMProviderConfig mutation op: %q", m.Op())
	}
}

// MonitoringProcessClient is a client for the MonitoringProcess schema.
type MonitoringProcessClient struct {
	config
}

// NewMonitoringProcessClient returns a client for the MonitoringProcess from the given config.
func NewMonitoringProcessClient(c config) *MonitoringProcessClient {
	return &MonitoringProcessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monitoringprocess.Hooks(f(g(h())))`.
func (c *MonitoringProcessClient) Use(hooks ...Hook) {
	c.hooks.MonitoringProcess = append(c.hooks.MonitoringProcess, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monitoringprocess.Intercept(f(g(h())))`.
func (c *MonitoringProcessClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonitoringProcess = append(c.inters.MonitoringProcess, interceptors...)
}

// Create returns a builder for creating a MonitoringProcess entity.
func (c *MonitoringProcessClient) Create() *MonitoringProcessCreate {
	mutation := newMonitoringProcessMutation(c.config, OpCreate)
	return &MonitoringProcessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonitoringProcess entities.
func (c *MonitoringProcessClient) CreateBulk(builders ...*MonitoringProcessCreate) *MonitoringProcessCreateBulk {
	return &MonitoringProcessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonitoringProcessClient) MapCreateBulk(slice any, setFunc func(*MonitoringProcessCreate, int)) *MonitoringProcessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonitoringProcessCreateBulk{err: fmt.Errorf("calling to MonitoringProcessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonitoringProcessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonitoringProcessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonitoringProcess.
func (c *MonitoringProcessClient) Update() *MonitoringProcessUpdate {
	mutation := newMonitoringProcessMutation(c.config, OpUpdate)
	return &MonitoringProcessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonitoringProcessClient) UpdateOne(_m *MonitoringProcess) *MonitoringProcessUpdateOne {
	mutation := newMonitoringProcessMutation(c.config, OpUpdateOne, withMonitoringProcess(_m))
	return &MonitoringProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonitoringProcessClient) UpdateOneID(id string) *MonitoringProcessUpdateOne {
	mutation := newMonitoringProcessMutation(c.config, OpUpdateOne, withMonitoringProcessID(id))
	return &MonitoringProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonitoringProcess.
func (c *MonitoringProcessClient) Delete() *MonitoringProcessDelete {
	mutation := newMonitoringProcessMutation(c.config, OpDelete)
	return &MonitoringProcessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonitoringProcessClient) DeleteOne(_m *MonitoringProcess) *MonitoringProcessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonitoringProcessClient) DeleteOneID(id string) *MonitoringProcessDeleteOne {
	builder := c.Delete().Where(monitoringprocess.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonitoringProcessDeleteOne{builder}
}

// Query returns a query builder for MonitoringProcess.
func (c *MonitoringProcessClient) Query() *MonitoringProcessQuery {
	return &MonitoringProcessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonitoringProcess},
		inters: c.Interceptors(),
	}
}

// Get returns a MonitoringProcess entity by its id.
func (c *MonitoringProcessClient) Get(ctx context.Context, id string) (*MonitoringProcess, error) {
	return c.Query().Where(monitoringprocess.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonitoringProcessClient) GetX(ctx context.Context, id string) *MonitoringProcess {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a MonitoringProcess.
func (c *MonitoringProcessClient) QueryOwner(_m *MonitoringProcess) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, monitoringprocess.OwnerTable, monitoringprocess.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCredentials queries the credentials edge of a MonitoringProcess.
func (c *MonitoringProcessClient) QueryCredentials(_m *MonitoringProcess) *UpstreamCredentialQuery {
	query := (&UpstreamCredentialClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, id),
			sqlgraph.To(upstreamcredential.Table, upstreamcredential.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, monitoringprocess.CredentialsTable, monitoringprocess.CredentialsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplates queries the templates edge of a MonitoringProcess.
func (c *MonitoringProcessClient) QueryTemplates(_m *MonitoringProcess) *PromptTemplateQuery {
	query := (&PromptTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, id),
			sqlgraph.To(prompttemplate.Table, prompttemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, monitoringprocess.TemplatesTable, monitoringprocess.TemplatesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkRecords queries the work_records edge of a MonitoringProcess.
func (c *MonitoringProcessClient) QueryWorkRecords(_m *MonitoringProcess) *WorkRecordQuery {
	query := (&WorkRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, id),
			sqlgraph.To(workrecord.Table, workrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, monitoringprocess.WorkRecordsTable, monitoringprocess.WorkRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStageTasks queries the stage_tasks edge of a MonitoringProcess.
func (c *MonitoringProcessClient) QueryStageTasks(_m *MonitoringProcess) *StageTaskQuery {
	query := (&StageTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, id),
			sqlgraph.To(stagetask.Table, stagetask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, monitoringprocess.StageTasksTable, monitoringprocess.StageTasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MonitoringProcessClient) Hooks() []Hook {
	return c.hooks.MonitoringProcess
}

// Interceptors returns the client interceptors.
func (c *MonitoringProcessClient) Interceptors() []Interceptor {
	return c.inters.MonitoringProcess
}

func (c *MonitoringProcessClient) mutate(ctx context.Context, m *MonitoringProcessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonitoringProcessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonitoringProcessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonitoringProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonitoringProcessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MonitoringProcess mutation op: %q", m.Op())
	}
}

// PromptTemplateClient is a client for the PromptTemplate schema.
type PromptTemplateClient struct {
	config
}

// NewPromptTemplateClient returns a client for the PromptTemplate from the given config.
func NewPromptTemplateClient(c config) *PromptTemplateClient {
	return &PromptTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompttemplate.Hooks(f(g(h())))`.
func (c *PromptTemplateClient) Use(hooks ...Hook) {
	c.hooks.PromptTemplate = append(c.hooks.PromptTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompttemplate.Intercept(f(g(h())))`.
func (c *PromptTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptTemplate = append(c.inters.PromptTemplate, interceptors...)
}

// Create returns a builder for creating a PromptTemplate entity.
func (c *PromptTemplateClient) Create() *PromptTemplateCreate {
	mutation := newPromptTemplateMutation(c.config, OpCreate)
	return &PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptTemplate entities.
func (c *PromptTemplateClient) CreateBulk(builders ...*PromptTemplateCreate) *PromptTemplateCreateBulk {
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptTemplateClient) MapCreateBulk(slice any, setFunc func(*PromptTemplateCreate, int)) *PromptTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptTemplateCreateBulk{err: fmt.Errorf("calling to PromptTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptTemplate.
func (c *PromptTemplateClient) Update() *PromptTemplateUpdate {
	mutation := newPromptTemplateMutation(c.config, OpUpdate)
	return &PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptTemplateClient) UpdateOne(_m *PromptTemplate) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplate(_m))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptTemplateClient) UpdateOneID(id string) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplateID(id))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptTemplate.
func (c *PromptTemplateClient) Delete() *PromptTemplateDelete {
	mutation := newPromptTemplateMutation(c.config, OpDelete)
	return &PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptTemplateClient) DeleteOne(_m *PromptTemplate) *PromptTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptTemplateClient) DeleteOneID(id string) *PromptTemplateDeleteOne {
	builder := c.Delete().Where(prompttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptTemplateDeleteOne{builder}
}

// Query returns a query builder for PromptTemplate.
func (c *PromptTemplateClient) Query() *PromptTemplateQuery {
	return &PromptTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptTemplate entity by its id.
func (c *PromptTemplateClient) Get(ctx context.Context, id string) (*PromptTemplate, error) {
	return c.Query().Where(prompttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptTemplateClient) GetX(ctx context.Context, id string) *PromptTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a PromptTemplate.
func (c *PromptTemplateClient) QueryOwner(_m *PromptTemplate) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prompttemplate.Table, prompttemplate.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, prompttemplate.OwnerTable, prompttemplate.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProcesses queries the processes edge of a PromptTemplate.
func (c *PromptTemplateClient) QueryProcesses(_m *PromptTemplate) *MonitoringProcessQuery {
	query := (&MonitoringProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prompttemplate.Table, prompttemplate.FieldID, id),
			sqlgraph.To(monitoringprocess.Table, monitoringprocess.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, prompttemplate.ProcessesTable, prompttemplate.ProcessesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptTemplateClient) Hooks() []Hook {
	return c.hooks.PromptTemplate
}

// Interceptors returns the client interceptors.
func (c *PromptTemplateClient) Interceptors() []Interceptor {
	return c.inters.PromptTemplate
}

func (c *PromptTemplateClient) mutate(ctx context.Context, m *PromptTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptTemplate mutation op: %q", m.Op())
	}
}

// StageTaskClient is a client for the StageTask schema.
type StageTaskClient struct {
	config
}

// NewStageTaskClient returns a client for the StageTask from the given config.
func NewStageTaskClient(c config) *StageTaskClient {
	return &StageTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagetask.Hooks(f(g(h())))`.
func (c *StageTaskClient) Use(hooks ...Hook) {
	c.hooks.StageTask = append(c.hooks.StageTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagetask.Intercept(f(g(h())))`.
func (c *StageTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.StageTask = append(c.inters.StageTask, interceptors...)
}

// Create returns a builder for creating a StageTask entity.
func (c *StageTaskClient) Create() *StageTaskCreate {
	mutation := newStageTaskMutation(c.config, OpCreate)
	return &StageTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StageTask entities.
func (c *StageTaskClient) CreateBulk(builders ...*StageTaskCreate) *StageTaskCreateBulk {
	return &StageTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StageTaskClient) MapCreateBulk(slice any, setFunc func(*StageTaskCreate, int)) *StageTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StageTaskCreateBulk{err: fmt.Errorf("calling to StageTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StageTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StageTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StageTask.
func (c *StageTaskClient) Update() *StageTaskUpdate {
	mutation := newStageTaskMutation(c.config, OpUpdate)
	return &StageTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StageTaskClient) UpdateOne(_m *StageTask) *StageTaskUpdateOne {
	mutation := newStageTaskMutation(c.config, OpUpdateOne, withStageTask(_m))
	return &StageTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StageTaskClient) UpdateOneID(id string) *StageTaskUpdateOne {
	mutation := newStageTaskMutation(c.config, OpUpdateOne, withStageTaskID(id))
	return &StageTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StageTask.
func (c *StageTaskClient) Delete() *StageTaskDelete {
	mutation := newStageTaskMutation(c.config, OpDelete)
	return &StageTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StageTaskClient) DeleteOne(_m *StageTask) *StageTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StageTaskClient) DeleteOneID(id string) *StageTaskDeleteOne {
	builder := c.Delete().Where(stagetask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StageTaskDeleteOne{builder}
}

// Query returns a query builder for StageTask.
func (c *StageTaskClient) Query() *StageTaskQuery {
	return &StageTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStageTask},
		inters: c.Interceptors(),
	}
}

// Get returns a StageTask entity by its id.
func (c *StageTaskClient) Get(ctx context.Context, id string) (*StageTask, error) {
	return c.Query().Where(stagetask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StageTaskClient) GetX(ctx context.Context, id string) *StageTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcess queries the process edge of a StageTask.
func (c *StageTaskClient) QueryProcess(_m *StageTask) *MonitoringProcessQuery {
	query := (&MonitoringProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stagetask.Table, stagetask.FieldID, id),
			sqlgraph.To(monitoringprocess.Table, monitoringprocess.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stagetask.ProcessTable, stagetask.ProcessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StageTaskClient) Hooks() []Hook {
	return c.hooks.StageTask
}

// Interceptors returns the client interceptors.
func (c *StageTaskClient) Interceptors() []Interceptor {
	return c.inters.StageTask
}

func (c *StageTaskClient) mutate(ctx context.Context, m *StageTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StageTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StageTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StageTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StageTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StageTask mutation op: %q", m.Op())
	}
}

// UpstreamCredentialClient is a client for the UpstreamCredential schema.
type UpstreamCredentialClient struct {
	config
}

// NewUpstreamCredentialClient returns a client for the UpstreamCredential from the given config.
func NewUpstreamCredentialClient(c config) *UpstreamCredentialClient {
	return &UpstreamCredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `upstreamcredential.Hooks(f(g(h())))`.
func (c *UpstreamCredentialClient) Use(hooks ...Hook) {
	c.hooks.UpstreamCredential = append(c.hooks.UpstreamCredential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `upstreamcredential.Intercept(f(g(h())))`.
func (c *UpstreamCredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.UpstreamCredential = append(c.inters.UpstreamCredential, interceptors...)
}

// Create returns a builder for creating a UpstreamCredential entity.
func (c *UpstreamCredentialClient) Create() *UpstreamCredentialCreate {
	mutation := newUpstreamCredentialMutation(c.config, OpCreate)
	return &UpstreamCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UpstreamCredential entities.
func (c *UpstreamCredentialClient) CreateBulk(builders ...*UpstreamCredentialCreate) *UpstreamCredentialCreateBulk {
	return &UpstreamCredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UpstreamCredentialClient) MapCreateBulk(slice any, setFunc func(*UpstreamCredentialCreate, int)) *UpstreamCredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UpstreamCredentialCreateBulk{err: fmt.Errorf("calling to UpstreamCredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UpstreamCredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UpstreamCredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UpstreamCredential.
func (c *UpstreamCredentialClient) Update() *UpstreamCredentialUpdate {
	mutation := newUpstreamCredentialMutation(c.config, OpUpdate)
	return &UpstreamCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UpstreamCredentialClient) UpdateOne(_m *UpstreamCredential) *UpstreamCredentialUpdateOne {
	mutation := newUpstreamCredentialMutation(c.config, OpUpdateOne, withUpstreamCredential(_m))
	return &UpstreamCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UpstreamCredentialClient) UpdateOneID(id string) *UpstreamCredentialUpdateOne {
	mutation := newUpstreamCredentialMutation(c.config, OpUpdateOne, withUpstreamCredentialID(id))
	return &UpstreamCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UpstreamCredential.
func (c *UpstreamCredentialClient) Delete() *UpstreamCredentialDelete {
	mutation := newUpstreamCredentialMutation(c.config, OpDelete)
	return &UpstreamCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UpstreamCredentialClient) DeleteOne(_m *UpstreamCredential) *UpstreamCredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UpstreamCredentialClient) DeleteOneID(id string) *UpstreamCredentialDeleteOne {
	builder := c.Delete().Where(upstreamcredential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UpstreamCredentialDeleteOne{builder}
}

// Query returns a query builder for UpstreamCredential.
func (c *UpstreamCredentialClient) Query() *UpstreamCredentialQuery {
	return &UpstreamCredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpstreamCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a UpstreamCredential entity by its id.
func (c *UpstreamCredentialClient) Get(ctx context.Context, id string) (*UpstreamCredential, error) {
	return c.Query().Where(upstreamcredential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UpstreamCredentialClient) GetX(ctx context.Context, id string) *UpstreamCredential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a UpstreamCredential.
func (c *UpstreamCredentialClient) QueryOwner(_m *UpstreamCredential) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamcredential.Table, upstreamcredential.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, upstreamcredential.OwnerTable, upstreamcredential.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProcesses queries the processes edge of a UpstreamCredential.
func (c *UpstreamCredentialClient) QueryProcesses(_m *UpstreamCredential) *MonitoringProcessQuery {
	query := (&MonitoringProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamcredential.Table, upstreamcredential.FieldID, id),
			sqlgraph.To(monitoringprocess.Table, monitoringprocess.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, upstreamcredential.ProcessesTable, upstreamcredential.ProcessesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UpstreamCredentialClient) Hooks() []Hook {
	return c.hooks.UpstreamCredential
}

// Interceptors returns the client interceptors.
func (c *UpstreamCredentialClient) Interceptors() []Interceptor {
	return c.inters.UpstreamCredential
}

func (c *UpstreamCredentialClient) mutate(ctx context.Context, m *UpstreamCredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UpstreamCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UpstreamCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UpstreamCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UpstreamCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UpstreamCredential mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCredentials queries the credentials edge of a User.
func (c *UserClient) QueryCredentials(_m *User) *UpstreamCredentialQuery {
	query := (&UpstreamCredentialClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(upstreamcredential.Table, upstreamcredential.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.CredentialsTable, user.CredentialsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmProviders queries the llm_providers edge of a User.
func (c *UserClient) QueryLlmProviders(_m *User) *LLMProviderConfigQuery {
	query := (&LLMProviderConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(llmproviderconfig.Table, llmproviderconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.LlmProvidersTable, user.LlmProvidersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplates queries the templates edge of a User.
func (c *UserClient) QueryTemplates(_m *User) *PromptTemplateQuery {
	query := (&PromptTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(prompttemplate.Table, prompttemplate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.TemplatesTable, user.TemplatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProcesses queries the processes edge of a User.
func (c *UserClient) QueryProcesses(_m *User) *MonitoringProcessQuery {
	query := (&MonitoringProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(monitoringprocess.Table, monitoringprocess.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ProcessesTable, user.ProcessesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WorkRecordClient is a client for the WorkRecord schema.
type WorkRecordClient struct {
	config
}

// NewWorkRecordClient returns a client for the WorkRecord from the given config.
func NewWorkRecordClient(c config) *WorkRecordClient {
	return &WorkRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workrecord.Hooks(f(g(h())))`.
func (c *WorkRecordClient) Use(hooks ...Hook) {
	c.hooks.WorkRecord = append(c.hooks.WorkRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workrecord.Intercept(f(g(h())))`.
func (c *WorkRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkRecord = append(c.inters.WorkRecord, interceptors...)
}

// Create returns a builder for creating a WorkRecord entity.
func (c *WorkRecordClient) Create() *WorkRecordCreate {
	mutation := newWorkRecordMutation(c.config, OpCreate)
	return &WorkRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkRecord entities.
func (c *WorkRecordClient) CreateBulk(builders ...*WorkRecordCreate) *WorkRecordCreateBulk {
	return &WorkRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkRecordClient) MapCreateBulk(slice any, setFunc func(*WorkRecordCreate, int)) *WorkRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkRecordCreateBulk{err: fmt.Errorf("calling to WorkRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkRecord.
func (c *WorkRecordClient) Update() *WorkRecordUpdate {
	mutation := newWorkRecordMutation(c.config, OpUpdate)
	return &WorkRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkRecordClient) UpdateOne(_m *WorkRecord) *WorkRecordUpdateOne {
	mutation := newWorkRecordMutation(c.config, OpUpdateOne, withWorkRecord(_m))
	return &WorkRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkRecordClient) UpdateOneID(id string) *WorkRecordUpdateOne {
	mutation := newWorkRecordMutation(c.config, OpUpdateOne, withWorkRecordID(id))
	return &WorkRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkRecord.
func (c *WorkRecordClient) Delete() *WorkRecordDelete {
	mutation := newWorkRecordMutation(c.config, OpDelete)
	return &WorkRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkRecordClient) DeleteOne(_m *WorkRecord) *WorkRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkRecordClient) DeleteOneID(id string) *WorkRecordDeleteOne {
	builder := c.Delete().Where(workrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkRecordDeleteOne{builder}
}

// Query returns a query builder for WorkRecord.
func (c *WorkRecordClient) Query() *WorkRecordQuery {
	return &WorkRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkRecord entity by its id.
func (c *WorkRecordClient) Get(ctx context.Context, id string) (*WorkRecord, error) {
	return c.Query().Where(workrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkRecordClient) GetX(ctx context.Context, id string) *WorkRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcess queries the process edge of a WorkRecord.
func (c *WorkRecordClient) QueryProcess(_m *WorkRecord) *MonitoringProcessQuery {
	query := (&MonitoringProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workrecord.Table, workrecord.FieldID, id),
			sqlgraph.To(monitoringprocess.Table, monitoringprocess.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workrecord.ProcessTable, workrecord.ProcessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkRecordClient) Hooks() []Hook {
	return c.hooks.WorkRecord
}

// Interceptors returns the client interceptors.
func (c *WorkRecordClient) Interceptors() []Interceptor {
	return c.inters.WorkRecord
}

func (c *WorkRecordClient) mutate(ctx context.Context, m *WorkRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMProviderConfig, MonitoringProcess, PromptTemplate, StageTask,
		UpstreamCredential, User, WorkRecord []ent.Hook
	}
	inters struct {
		LLMProviderConfig, MonitoringProcess, PromptTemplate, StageTask,
		UpstreamCredential, User, WorkRecord []ent.Interceptor
	}
)
