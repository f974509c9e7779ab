// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/user"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMProviderConfig  = "LLMProviderConfig"
	TypeMonitoringProcess  = "MonitoringProcess"
	TypePromptTemplate     = "PromptTemplate"
	TypeStageTask          = "StageTask"
	TypeUpstreamCredential = "UpstreamCredential"
	TypeUser               = "User"
	TypeWorkRecord         = "WorkRecord"
)

// LLMProviderConfigMutation represents an operation that mutates the LLMProviderConfig nodes in the graph.
type LLMProviderConfigMutation struct {
	config
	op                Op
	typ               string
	id                *string
	vendor_tag        *llmproviderconfig.VendorTag
	model_name        *string
	api_key_encrypted *string
	temperature       *float64
	addtemperature    *float64
	max_tokens        *int
	addmax_tokens     *int
	json_mode         *bool
	is_active         *bool
	clearedFields     map[string]struct{}
	owner             *string
	clearedowner      bool
	done              bool
	oldValue          func(context.Context) (*LLMProviderConfig, error)
	predicates        []predicate.LLMProviderConfig
}

var _ ent.Mutation = (*LLMProviderConfigMutation)(nil)

// llmproviderconfigOption allows management of the mutation configuration using functional options.
type llmproviderconfigOption func(*LLMProviderConfigMutation)

// newLLMProviderConfigMutation creates new mutation for the LLMProviderConfig entity.
func newLLMProviderConfigMutation(c config, op Op, opts ...llmproviderconfigOption) *LLMProviderConfigMutation {
	m := &LLMProviderConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMProviderConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMProviderConfigID sets the ID field of the mutation.
func withLLMProviderConfigID(id string) llmproviderconfigOption {
	return func(m *LLMProviderConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMProviderConfig
		)
		m.oldValue = func(ctx context.Context) (*LLMProviderConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMProviderConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMProviderConfig sets the old LLMProviderConfig of the mutation.
func withLLMProviderConfig(node *LLMProviderConfig) llmproviderconfigOption {
	return func(m *LLMProviderConfigMutation) {
		m.oldValue = func(context.Context) (*LLMProviderConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMProviderConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMProviderConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMProviderConfig entities.
func (m *LLMProviderConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMProviderConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMProviderConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMProviderConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LLMProviderConfigMutation) SetUserID(s string) {
	m.owner = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LLMProviderConfigMutation) UserID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LLMProviderConfigMutation) ResetUserID() {
	m.owner = nil
}

// SetVendorTag sets the "vendor_tag" field.
func (m *LLMProviderConfigMutation) SetVendorTag(lt llmproviderconfig.VendorTag) {
	m.vendor_tag = &lt
}

// VendorTag returns the value of the "vendor_tag" field in the mutation.
func (m *LLMProviderConfigMutation) VendorTag() (r llmproviderconfig.VendorTag, exists bool) {
	v := m.vendor_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorTag returns the old "vendor_tag" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldVendorTag(ctx context.Context) (v llmproviderconfig.VendorTag, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorTag: %w", err)
	}
	return oldValue.VendorTag, nil
}

// ResetVendorTag resets all changes to the "vendor_tag" field.
func (m *LLMProviderConfigMutation) ResetVendorTag() {
	m.vendor_tag = nil
}

// SetModelName sets the "model_name" field.
func (m *LLMProviderConfigMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *LLMProviderConfigMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *LLMProviderConfigMutation) ResetModelName() {
	m.model_name = nil
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (m *LLMProviderConfigMutation) SetAPIKeyEncrypted(s string) {
	m.api_key_encrypted = &s
}

// APIKeyEncrypted returns the value of the "api_key_encrypted" field in the mutation.
func (m *LLMProviderConfigMutation) APIKeyEncrypted() (r string, exists bool) {
	v := m.api_key_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyEncrypted returns the old "api_key_encrypted" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldAPIKeyEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyEncrypted: %w", err)
	}
	return oldValue.APIKeyEncrypted, nil
}

// ResetAPIKeyEncrypted resets all changes to the "api_key_encrypted" field.
func (m *LLMProviderConfigMutation) ResetAPIKeyEncrypted() {
	m.api_key_encrypted = nil
}

// SetTemperature sets the "temperature" field.
func (m *LLMProviderConfigMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *LLMProviderConfigMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *LLMProviderConfigMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *LLMProviderConfigMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *LLMProviderConfigMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *LLMProviderConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *LLMProviderConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *LLMProviderConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *LLMProviderConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *LLMProviderConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetJSONMode sets the "json_mode" field.
func (m *LLMProviderConfigMutation) SetJSONMode(b bool) {
	m.json_mode = &b
}

// JSONMode returns the value of the "json_mode" field in the mutation.
func (m *LLMProviderConfigMutation) JSONMode() (r bool, exists bool) {
	v := m.json_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldJSONMode returns the old "json_mode" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldJSONMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJSONMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJSONMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJSONMode: %w", err)
	}
	return oldValue.JSONMode, nil
}

// ResetJSONMode resets all changes to the "json_mode" field.
func (m *LLMProviderConfigMutation) ResetJSONMode() {
	m.json_mode = nil
}

// SetIsActive sets the "is_active" field.
func (m *LLMProviderConfigMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *LLMProviderConfigMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the LLMProviderConfig entity.
// If the LLMProviderConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMProviderConfigMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *LLMProviderConfigMutation) ResetIsActive() {
	m.is_active = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *LLMProviderConfigMutation) SetOwnerID(id string) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *LLMProviderConfigMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[llmproviderconfig.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *LLMProviderConfigMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *LLMProviderConfigMutation) OwnerID() (id string, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *LLMProviderConfigMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *LLMProviderConfigMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the LLMProviderConfigMutation builder.
func (m *LLMProviderConfigMutation) Where(ps ...predicate.LLMProviderConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMProviderConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMProviderConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMProviderConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMProviderConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMProviderConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMProviderConfig).
func (m *LLMProviderConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMProviderConfigMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.owner != nil {
		fields = append(fields, llmproviderconfig.FieldUserID)
	}
	if m.vendor_tag != nil {
		fields = append(fields, llmproviderconfig.FieldVendorTag)
	}
	if m.model_name != nil {
		fields = append(fields, llmproviderconfig.FieldModelName)
	}
	if m.api_key_encrypted != nil {
		fields = append(fields, llmproviderconfig.FieldAPIKeyEncrypted)
	}
	if m.temperature != nil {
		fields = append(fields, llmproviderconfig.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, llmproviderconfig.FieldMaxTokens)
	}
	if m.json_mode != nil {
		fields = append(fields, llmproviderconfig.FieldJSONMode)
	}
	if m.is_active != nil {
		fields = append(fields, llmproviderconfig.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMProviderConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmproviderconfig.FieldUserID:
		return m.UserID()
	case llmproviderconfig.FieldVendorTag:
		return m.VendorTag()
	case llmproviderconfig.FieldModelName:
		return m.ModelName()
	case llmproviderconfig.FieldAPIKeyEncrypted:
		return m.APIKeyEncrypted()
	case llmproviderconfig.FieldTemperature:
		return m.Temperature()
	case llmproviderconfig.FieldMaxTokens:
		return m.MaxTokens()
	case llmproviderconfig.FieldJSONMode:
		return m.JSONMode()
	case llmproviderconfig.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMProviderConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmproviderconfig.FieldUserID:
		return m.OldUserID(ctx)
	case llmproviderconfig.FieldVendorTag:
		return m.OldVendorTag(ctx)
	case llmproviderconfig.FieldModelName:
		return m.OldModelName(ctx)
	case llmproviderconfig.FieldAPIKeyEncrypted:
		return m.OldAPIKeyEncrypted(ctx)
	case llmproviderconfig.FieldTemperature:
		return m.OldTemperature(ctx)
	case llmproviderconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case llmproviderconfig.FieldJSONMode:
		return m.OldJSONMode(ctx)
	case llmproviderconfig.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown LLMProviderConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMProviderConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmproviderconfig.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case llmproviderconfig.FieldVendorTag:
		v, ok := value.(llmproviderconfig.VendorTag)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorTag(v)
		return nil
	case llmproviderconfig.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case llmproviderconfig.FieldAPIKeyEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyEncrypted(v)
		return nil
	case llmproviderconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case llmproviderconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case llmproviderconfig.FieldJSONMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJSONMode(v)
		return nil
	case llmproviderconfig.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMProviderConfigMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, llmproviderconfig.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, llmproviderconfig.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMProviderConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmproviderconfig.FieldTemperature:
		return m.AddedTemperature()
	case llmproviderconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMProviderConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmproviderconfig.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case llmproviderconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMProviderConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMProviderConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMProviderConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMProviderConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMProviderConfigMutation) ResetField(name string) error {
	switch name {
	case llmproviderconfig.FieldUserID:
		m.ResetUserID()
		return nil
	case llmproviderconfig.FieldVendorTag:
		m.ResetVendorTag()
		return nil
	case llmproviderconfig.FieldModelName:
		m.ResetModelName()
		return nil
	case llmproviderconfig.FieldAPIKeyEncrypted:
		m.ResetAPIKeyEncrypted()
		return nil
	case llmproviderconfig.FieldTemperature:
		m.ResetTemperature()
		return nil
	case llmproviderconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case llmproviderconfig.FieldJSONMode:
		m.ResetJSONMode()
		return nil
	case llmproviderconfig.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMProviderConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, llmproviderconfig.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMProviderConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llmproviderconfig.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMProviderConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMProviderConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMProviderConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, llmproviderconfig.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMProviderConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case llmproviderconfig.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMProviderConfigMutation) ClearEdge(name string) error {
	switch name {
	case llmproviderconfig.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMProviderConfigMutation) ResetEdge(name string) error {
	switch name {
	case llmproviderconfig.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown LLMProviderConfig edge %s", name)
}

// MonitoringProcessMutation represents an operation that mutates the MonitoringProcess nodes in the graph.
type MonitoringProcessMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	name                    *string
	description             *string
	llm_provider_id         *string
	tab_filters             *[]string
	appendtab_filters       []string
	category_filter         *string
	keyword_filters         *[]string
	appendkeyword_filters   []string
	generate_only           *bool
	max_duration_minutes    *int
	addmax_duration_minutes *int
	status                  *monitoringprocess.Status
	stop_reason             *string
	started_at              *time.Time
	expires_at              *time.Time
	stopped_at              *time.Time
	stage_task_ids          *map[string]string
	articles_discovered     *int
	addarticles_discovered  *int
	articles_prepared       *int
	addarticles_prepared    *int
	comments_generated      *int
	addcomments_generated   *int
	comments_posted         *int
	addcomments_posted      *int
	errors_discovery        *int
	adderrors_discovery     *int
	errors_preparation      *int
	adderrors_preparation   *int
	errors_generation       *int
	adderrors_generation    *int
	errors_posting          *int
	adderrors_posting       *int
	error_message           *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	owner                   *string
	clearedowner            bool
	credentials             map[string]struct{}
	removedcredentials      map[string]struct{}
	clearedcredentials      bool
	templates               map[string]struct{}
	removedtemplates        map[string]struct{}
	clearedtemplates        bool
	work_records            map[string]struct{}
	removedwork_records     map[string]struct{}
	clearedwork_records     bool
	stage_tasks             map[string]struct{}
	removedstage_tasks      map[string]struct{}
	clearedstage_tasks      bool
	done                    bool
	oldValue                func(context.Context) (*MonitoringProcess, error)
	predicates              []predicate.MonitoringProcess
}

var _ ent.Mutation = (*MonitoringProcessMutation)(nil)

// monitoringprocessOption allows management of the mutation configuration using functional options.
type monitoringprocessOption func(*MonitoringProcessMutation)

// newMonitoringProcessMutation creates new mutation for the MonitoringProcess entity.
func newMonitoringProcessMutation(c config, op Op, opts ...monitoringprocessOption) *MonitoringProcessMutation {
	m := &MonitoringProcessMutation{
		config:        c,
		op:            op,
		typ:           TypeMonitoringProcess,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonitoringProcessID sets the ID field of the mutation.
func withMonitoringProcessID(id string) monitoringprocessOption {
	return func(m *MonitoringProcessMutation) {
		var (
			err   error
			once  sync.Once
			value *MonitoringProcess
		)
		m.oldValue = func(ctx context.Context) (*MonitoringProcess, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonitoringProcess.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonitoringProcess sets the old MonitoringProcess of the mutation.
func withMonitoringProcess(node *MonitoringProcess) monitoringprocessOption {
	return func(m *MonitoringProcessMutation) {
		m.oldValue = func(context.Context) (*MonitoringProcess, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonitoringProcessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonitoringProcessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonitoringProcess entities.
func (m *MonitoringProcessMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonitoringProcessMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonitoringProcessMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonitoringProcess.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MonitoringProcessMutation) SetUserID(s string) {
	m.owner = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MonitoringProcessMutation) UserID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MonitoringProcessMutation) ResetUserID() {
	m.owner = nil
}

// SetName sets the "name" field.
func (m *MonitoringProcessMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MonitoringProcessMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MonitoringProcessMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *MonitoringProcessMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MonitoringProcessMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MonitoringProcessMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[monitoringprocess.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MonitoringProcessMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MonitoringProcessMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, monitoringprocess.FieldDescription)
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (m *MonitoringProcessMutation) SetLlmProviderID(s string) {
	m.llm_provider_id = &s
}

// LlmProviderID returns the value of the "llm_provider_id" field in the mutation.
func (m *MonitoringProcessMutation) LlmProviderID() (r string, exists bool) {
	v := m.llm_provider_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProviderID returns the old "llm_provider_id" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldLlmProviderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProviderID: %w", err)
	}
	return oldValue.LlmProviderID, nil
}

// ResetLlmProviderID resets all changes to the "llm_provider_id" field.
func (m *MonitoringProcessMutation) ResetLlmProviderID() {
	m.llm_provider_id = nil
}

// SetTabFilters sets the "tab_filters" field.
func (m *MonitoringProcessMutation) SetTabFilters(s []string) {
	m.tab_filters = &s
	m.appendtab_filters = nil
}

// TabFilters returns the value of the "tab_filters" field in the mutation.
func (m *MonitoringProcessMutation) TabFilters() (r []string, exists bool) {
	v := m.tab_filters
	if v == nil {
		return
	}
	return *v, true
}

// OldTabFilters returns the old "tab_filters" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldTabFilters(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTabFilters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTabFilters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTabFilters: %w", err)
	}
	return oldValue.TabFilters, nil
}

// AppendTabFilters adds s to the "tab_filters" field.
func (m *MonitoringProcessMutation) AppendTabFilters(s []string) {
	m.appendtab_filters = append(m.appendtab_filters, s...)
}

// AppendedTabFilters returns the list of values that were appended to the "tab_filters" field in this mutation.
func (m *MonitoringProcessMutation) AppendedTabFilters() ([]string, bool) {
	if len(m.appendtab_filters) == 0 {
		return nil, false
	}
	return m.appendtab_filters, true
}

// ClearTabFilters clears the value of the "tab_filters" field.
func (m *MonitoringProcessMutation) ClearTabFilters() {
	m.tab_filters = nil
	m.appendtab_filters = nil
	m.clearedFields[monitoringprocess.FieldTabFilters] = struct{}{}
}

// TabFiltersCleared returns if the "tab_filters" field was cleared in this mutation.
func (m *MonitoringProcessMutation) TabFiltersCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldTabFilters]
	return ok
}

// ResetTabFilters resets all changes to the "tab_filters" field.
func (m *MonitoringProcessMutation) ResetTabFilters() {
	m.tab_filters = nil
	m.appendtab_filters = nil
	delete(m.clearedFields, monitoringprocess.FieldTabFilters)
}

// SetCategoryFilter sets the "category_filter" field.
func (m *MonitoringProcessMutation) SetCategoryFilter(s string) {
	m.category_filter = &s
}

// CategoryFilter returns the value of the "category_filter" field in the mutation.
func (m *MonitoringProcessMutation) CategoryFilter() (r string, exists bool) {
	v := m.category_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryFilter returns the old "category_filter" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldCategoryFilter(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryFilter: %w", err)
	}
	return oldValue.CategoryFilter, nil
}

// ClearCategoryFilter clears the value of the "category_filter" field.
func (m *MonitoringProcessMutation) ClearCategoryFilter() {
	m.category_filter = nil
	m.clearedFields[monitoringprocess.FieldCategoryFilter] = struct{}{}
}

// CategoryFilterCleared returns if the "category_filter" field was cleared in this mutation.
func (m *MonitoringProcessMutation) CategoryFilterCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldCategoryFilter]
	return ok
}

// ResetCategoryFilter resets all changes to the "category_filter" field.
func (m *MonitoringProcessMutation) ResetCategoryFilter() {
	m.category_filter = nil
	delete(m.clearedFields, monitoringprocess.FieldCategoryFilter)
}

// SetKeywordFilters sets the "keyword_filters" field.
func (m *MonitoringProcessMutation) SetKeywordFilters(s []string) {
	m.keyword_filters = &s
	m.appendkeyword_filters = nil
}

// KeywordFilters returns the value of the "keyword_filters" field in the mutation.
func (m *MonitoringProcessMutation) KeywordFilters() (r []string, exists bool) {
	v := m.keyword_filters
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywordFilters returns the old "keyword_filters" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldKeywordFilters(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywordFilters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywordFilters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywordFilters: %w", err)
	}
	return oldValue.KeywordFilters, nil
}

// AppendKeywordFilters adds s to the "keyword_filters" field.
func (m *MonitoringProcessMutation) AppendKeywordFilters(s []string) {
	m.appendkeyword_filters = append(m.appendkeyword_filters, s...)
}

// AppendedKeywordFilters returns the list of values that were appended to the "keyword_filters" field in this mutation.
func (m *MonitoringProcessMutation) AppendedKeywordFilters() ([]string, bool) {
	if len(m.appendkeyword_filters) == 0 {
		return nil, false
	}
	return m.appendkeyword_filters, true
}

// ClearKeywordFilters clears the value of the "keyword_filters" field.
func (m *MonitoringProcessMutation) ClearKeywordFilters() {
	m.keyword_filters = nil
	m.appendkeyword_filters = nil
	m.clearedFields[monitoringprocess.FieldKeywordFilters] = struct{}{}
}

// KeywordFiltersCleared returns if the "keyword_filters" field was cleared in this mutation.
func (m *MonitoringProcessMutation) KeywordFiltersCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldKeywordFilters]
	return ok
}

// ResetKeywordFilters resets all changes to the "keyword_filters" field.
func (m *MonitoringProcessMutation) ResetKeywordFilters() {
	m.keyword_filters = nil
	m.appendkeyword_filters = nil
	delete(m.clearedFields, monitoringprocess.FieldKeywordFilters)
}

// SetGenerateOnly sets the "generate_only" field.
func (m *MonitoringProcessMutation) SetGenerateOnly(b bool) {
	m.generate_only = &b
}

// GenerateOnly returns the value of the "generate_only" field in the mutation.
func (m *MonitoringProcessMutation) GenerateOnly() (r bool, exists bool) {
	v := m.generate_only
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerateOnly returns the old "generate_only" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldGenerateOnly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerateOnly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerateOnly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerateOnly: %w", err)
	}
	return oldValue.GenerateOnly, nil
}

// ResetGenerateOnly resets all changes to the "generate_only" field.
func (m *MonitoringProcessMutation) ResetGenerateOnly() {
	m.generate_only = nil
}

// SetMaxDurationMinutes sets the "max_duration_minutes" field.
func (m *MonitoringProcessMutation) SetMaxDurationMinutes(i int) {
	m.max_duration_minutes = &i
	m.addmax_duration_minutes = nil
}

// MaxDurationMinutes returns the value of the "max_duration_minutes" field in the mutation.
func (m *MonitoringProcessMutation) MaxDurationMinutes() (r int, exists bool) {
	v := m.max_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDurationMinutes returns the old "max_duration_minutes" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldMaxDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDurationMinutes: %w", err)
	}
	return oldValue.MaxDurationMinutes, nil
}

// AddMaxDurationMinutes adds i to the "max_duration_minutes" field.
func (m *MonitoringProcessMutation) AddMaxDurationMinutes(i int) {
	if m.addmax_duration_minutes != nil {
		*m.addmax_duration_minutes += i
	} else {
		m.addmax_duration_minutes = &i
	}
}

// AddedMaxDurationMinutes returns the value that was added to the "max_duration_minutes" field in this mutation.
func (m *MonitoringProcessMutation) AddedMaxDurationMinutes() (r int, exists bool) {
	v := m.addmax_duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDurationMinutes resets all changes to the "max_duration_minutes" field.
func (m *MonitoringProcessMutation) ResetMaxDurationMinutes() {
	m.max_duration_minutes = nil
	m.addmax_duration_minutes = nil
}

// SetStatus sets the "status" field.
func (m *MonitoringProcessMutation) SetStatus(value monitoringprocess.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MonitoringProcessMutation) Status() (r monitoringprocess.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldStatus(ctx context.Context) (v monitoringprocess.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MonitoringProcessMutation) ResetStatus() {
	m.status = nil
}

// SetStopReason sets the "stop_reason" field.
func (m *MonitoringProcessMutation) SetStopReason(s string) {
	m.stop_reason = &s
}

// StopReason returns the value of the "stop_reason" field in the mutation.
func (m *MonitoringProcessMutation) StopReason() (r string, exists bool) {
	v := m.stop_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStopReason returns the old "stop_reason" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldStopReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopReason: %w", err)
	}
	return oldValue.StopReason, nil
}

// ClearStopReason clears the value of the "stop_reason" field.
func (m *MonitoringProcessMutation) ClearStopReason() {
	m.stop_reason = nil
	m.clearedFields[monitoringprocess.FieldStopReason] = struct{}{}
}

// StopReasonCleared returns if the "stop_reason" field was cleared in this mutation.
func (m *MonitoringProcessMutation) StopReasonCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldStopReason]
	return ok
}

// ResetStopReason resets all changes to the "stop_reason" field.
func (m *MonitoringProcessMutation) ResetStopReason() {
	m.stop_reason = nil
	delete(m.clearedFields, monitoringprocess.FieldStopReason)
}

// SetStartedAt sets the "started_at" field.
func (m *MonitoringProcessMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MonitoringProcessMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *MonitoringProcessMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[monitoringprocess.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *MonitoringProcessMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MonitoringProcessMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, monitoringprocess.FieldStartedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *MonitoringProcessMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *MonitoringProcessMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *MonitoringProcessMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[monitoringprocess.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *MonitoringProcessMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *MonitoringProcessMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, monitoringprocess.FieldExpiresAt)
}

// SetStoppedAt sets the "stopped_at" field.
func (m *MonitoringProcessMutation) SetStoppedAt(t time.Time) {
	m.stopped_at = &t
}

// StoppedAt returns the value of the "stopped_at" field in the mutation.
func (m *MonitoringProcessMutation) StoppedAt() (r time.Time, exists bool) {
	v := m.stopped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStoppedAt returns the old "stopped_at" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldStoppedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoppedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoppedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoppedAt: %w", err)
	}
	return oldValue.StoppedAt, nil
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (m *MonitoringProcessMutation) ClearStoppedAt() {
	m.stopped_at = nil
	m.clearedFields[monitoringprocess.FieldStoppedAt] = struct{}{}
}

// StoppedAtCleared returns if the "stopped_at" field was cleared in this mutation.
func (m *MonitoringProcessMutation) StoppedAtCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldStoppedAt]
	return ok
}

// ResetStoppedAt resets all changes to the "stopped_at" field.
func (m *MonitoringProcessMutation) ResetStoppedAt() {
	m.stopped_at = nil
	delete(m.clearedFields, monitoringprocess.FieldStoppedAt)
}

// SetStageTaskIds sets the "stage_task_ids" field.
func (m *MonitoringProcessMutation) SetStageTaskIds(value map[string]string) {
	m.stage_task_ids = &value
}

// StageTaskIds returns the value of the "stage_task_ids" field in the mutation.
func (m *MonitoringProcessMutation) StageTaskIds() (r map[string]string, exists bool) {
	v := m.stage_task_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldStageTaskIds returns the old "stage_task_ids" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldStageTaskIds(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageTaskIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageTaskIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageTaskIds: %w", err)
	}
	return oldValue.StageTaskIds, nil
}

// ClearStageTaskIds clears the value of the "stage_task_ids" field.
func (m *MonitoringProcessMutation) ClearStageTaskIds() {
	m.stage_task_ids = nil
	m.clearedFields[monitoringprocess.FieldStageTaskIds] = struct{}{}
}

// StageTaskIdsCleared returns if the "stage_task_ids" field was cleared in this mutation.
func (m *MonitoringProcessMutation) StageTaskIdsCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldStageTaskIds]
	return ok
}

// ResetStageTaskIds resets all changes to the "stage_task_ids" field.
func (m *MonitoringProcessMutation) ResetStageTaskIds() {
	m.stage_task_ids = nil
	delete(m.clearedFields, monitoringprocess.FieldStageTaskIds)
}

// SetArticlesDiscovered sets the "articles_discovered" field.
func (m *MonitoringProcessMutation) SetArticlesDiscovered(i int) {
	m.articles_discovered = &i
	m.addarticles_discovered = nil
}

// ArticlesDiscovered returns the value of the "articles_discovered" field in the mutation.
func (m *MonitoringProcessMutation) ArticlesDiscovered() (r int, exists bool) {
	v := m.articles_discovered
	if v == nil {
		return
	}
	return *v, true
}

// OldArticlesDiscovered returns the old "articles_discovered" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldArticlesDiscovered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticlesDiscovered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticlesDiscovered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticlesDiscovered: %w", err)
	}
	return oldValue.ArticlesDiscovered, nil
}

// AddArticlesDiscovered adds i to the "articles_discovered" field.
func (m *MonitoringProcessMutation) AddArticlesDiscovered(i int) {
	if m.addarticles_discovered != nil {
		*m.addarticles_discovered += i
	} else {
		m.addarticles_discovered = &i
	}
}

// AddedArticlesDiscovered returns the value that was added to the "articles_discovered" field in this mutation.
func (m *MonitoringProcessMutation) AddedArticlesDiscovered() (r int, exists bool) {
	v := m.addarticles_discovered
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticlesDiscovered resets all changes to the "articles_discovered" field.
func (m *MonitoringProcessMutation) ResetArticlesDiscovered() {
	m.articles_discovered = nil
	m.addarticles_discovered = nil
}

// SetArticlesPrepared sets the "articles_prepared" field.
func (m *MonitoringProcessMutation) SetArticlesPrepared(i int) {
	m.articles_prepared = &i
	m.addarticles_prepared = nil
}

// ArticlesPrepared returns the value of the "articles_prepared" field in the mutation.
func (m *MonitoringProcessMutation) ArticlesPrepared() (r int, exists bool) {
	v := m.articles_prepared
	if v == nil {
		return
	}
	return *v, true
}

// OldArticlesPrepared returns the old "articles_prepared" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldArticlesPrepared(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticlesPrepared is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticlesPrepared requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticlesPrepared: %w", err)
	}
	return oldValue.ArticlesPrepared, nil
}

// AddArticlesPrepared adds i to the "articles_prepared" field.
func (m *MonitoringProcessMutation) AddArticlesPrepared(i int) {
	if m.addarticles_prepared != nil {
		*m.addarticles_prepared += i
	} else {
		m.addarticles_prepared = &i
	}
}

// AddedArticlesPrepared returns the value that was added to the "articles_prepared" field in this mutation.
func (m *MonitoringProcessMutation) AddedArticlesPrepared() (r int, exists bool) {
	v := m.addarticles_prepared
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticlesPrepared resets all changes to the "articles_prepared" field.
func (m *MonitoringProcessMutation) ResetArticlesPrepared() {
	m.articles_prepared = nil
	m.addarticles_prepared = nil
}

// SetCommentsGenerated sets the "comments_generated" field.
func (m *MonitoringProcessMutation) SetCommentsGenerated(i int) {
	m.comments_generated = &i
	m.addcomments_generated = nil
}

// CommentsGenerated returns the value of the "comments_generated" field in the mutation.
func (m *MonitoringProcessMutation) CommentsGenerated() (r int, exists bool) {
	v := m.comments_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentsGenerated returns the old "comments_generated" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldCommentsGenerated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentsGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentsGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentsGenerated: %w", err)
	}
	return oldValue.CommentsGenerated, nil
}

// AddCommentsGenerated adds i to the "comments_generated" field.
func (m *MonitoringProcessMutation) AddCommentsGenerated(i int) {
	if m.addcomments_generated != nil {
		*m.addcomments_generated += i
	} else {
		m.addcomments_generated = &i
	}
}

// AddedCommentsGenerated returns the value that was added to the "comments_generated" field in this mutation.
func (m *MonitoringProcessMutation) AddedCommentsGenerated() (r int, exists bool) {
	v := m.addcomments_generated
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommentsGenerated resets all changes to the "comments_generated" field.
func (m *MonitoringProcessMutation) ResetCommentsGenerated() {
	m.comments_generated = nil
	m.addcomments_generated = nil
}

// SetCommentsPosted sets the "comments_posted" field.
func (m *MonitoringProcessMutation) SetCommentsPosted(i int) {
	m.comments_posted = &i
	m.addcomments_posted = nil
}

// CommentsPosted returns the value of the "comments_posted" field in the mutation.
func (m *MonitoringProcessMutation) CommentsPosted() (r int, exists bool) {
	v := m.comments_posted
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentsPosted returns the old "comments_posted" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldCommentsPosted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentsPosted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentsPosted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentsPosted: %w", err)
	}
	return oldValue.CommentsPosted, nil
}

// AddCommentsPosted adds i to the "comments_posted" field.
func (m *MonitoringProcessMutation) AddCommentsPosted(i int) {
	if m.addcomments_posted != nil {
		*m.addcomments_posted += i
	} else {
		m.addcomments_posted = &i
	}
}

// AddedCommentsPosted returns the value that was added to the "comments_posted" field in this mutation.
func (m *MonitoringProcessMutation) AddedCommentsPosted() (r int, exists bool) {
	v := m.addcomments_posted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommentsPosted resets all changes to the "comments_posted" field.
func (m *MonitoringProcessMutation) ResetCommentsPosted() {
	m.comments_posted = nil
	m.addcomments_posted = nil
}

// SetErrorsDiscovery sets the "errors_discovery" field.
func (m *MonitoringProcessMutation) SetErrorsDiscovery(i int) {
	m.errors_discovery = &i
	m.adderrors_discovery = nil
}

// ErrorsDiscovery returns the value of the "errors_discovery" field in the mutation.
func (m *MonitoringProcessMutation) ErrorsDiscovery() (r int, exists bool) {
	v := m.errors_discovery
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorsDiscovery returns the old "errors_discovery" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldErrorsDiscovery(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorsDiscovery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorsDiscovery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorsDiscovery: %w", err)
	}
	return oldValue.ErrorsDiscovery, nil
}

// AddErrorsDiscovery adds i to the "errors_discovery" field.
func (m *MonitoringProcessMutation) AddErrorsDiscovery(i int) {
	if m.adderrors_discovery != nil {
		*m.adderrors_discovery += i
	} else {
		m.adderrors_discovery = &i
	}
}

// AddedErrorsDiscovery returns the value that was added to the "errors_discovery" field in this mutation.
func (m *MonitoringProcessMutation) AddedErrorsDiscovery() (r int, exists bool) {
	v := m.adderrors_discovery
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorsDiscovery resets all changes to the "errors_discovery" field.
func (m *MonitoringProcessMutation) ResetErrorsDiscovery() {
	m.errors_discovery = nil
	m.adderrors_discovery = nil
}

// SetErrorsPreparation sets the "errors_preparation" field.
func (m *MonitoringProcessMutation) SetErrorsPreparation(i int) {
	m.errors_preparation = &i
	m.adderrors_preparation = nil
}

// ErrorsPreparation returns the value of the "errors_preparation" field in the mutation.
func (m *MonitoringProcessMutation) ErrorsPreparation() (r int, exists bool) {
	v := m.errors_preparation
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorsPreparation returns the old "errors_preparation" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldErrorsPreparation(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorsPreparation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorsPreparation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorsPreparation: %w", err)
	}
	return oldValue.ErrorsPreparation, nil
}

// AddErrorsPreparation adds i to the "errors_preparation" field.
func (m *MonitoringProcessMutation) AddErrorsPreparation(i int) {
	if m.adderrors_preparation != nil {
		*m.adderrors_preparation += i
	} else {
		m.adderrors_preparation = &i
	}
}

// AddedErrorsPreparation returns the value that was added to the "errors_preparation" field in this mutation.
func (m *MonitoringProcessMutation) AddedErrorsPreparation() (r int, exists bool) {
	v := m.adderrors_preparation
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorsPreparation resets all changes to the "errors_preparation" field.
func (m *MonitoringProcessMutation) ResetErrorsPreparation() {
	m.errors_preparation = nil
	m.adderrors_preparation = nil
}

// SetErrorsGeneration sets the "errors_generation" field.
func (m *MonitoringProcessMutation) SetErrorsGeneration(i int) {
	m.errors_generation = &i
	m.adderrors_generation = nil
}

// ErrorsGeneration returns the value of the "errors_generation" field in the mutation.
func (m *MonitoringProcessMutation) ErrorsGeneration() (r int, exists bool) {
	v := m.errors_generation
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorsGeneration returns the old "errors_generation" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldErrorsGeneration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorsGeneration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorsGeneration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorsGeneration: %w", err)
	}
	return oldValue.ErrorsGeneration, nil
}

// AddErrorsGeneration adds i to the "errors_generation" field.
func (m *MonitoringProcessMutation) AddErrorsGeneration(i int) {
	if m.adderrors_generation != nil {
		*m.adderrors_generation += i
	} else {
		m.adderrors_generation = &i
	}
}

// AddedErrorsGeneration returns the value that was added to the "errors_generation" field in this mutation.
func (m *MonitoringProcessMutation) AddedErrorsGeneration() (r int, exists bool) {
	v := m.adderrors_generation
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorsGeneration resets all changes to the "errors_generation" field.
func (m *MonitoringProcessMutation) ResetErrorsGeneration() {
	m.errors_generation = nil
	m.adderrors_generation = nil
}

// SetErrorsPosting sets the "errors_posting" field.
func (m *MonitoringProcessMutation) SetErrorsPosting(i int) {
	m.errors_posting = &i
	m.adderrors_posting = nil
}

// ErrorsPosting returns the value of the "errors_posting" field in the mutation.
func (m *MonitoringProcessMutation) ErrorsPosting() (r int, exists bool) {
	v := m.errors_posting
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorsPosting returns the old "errors_posting" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldErrorsPosting(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorsPosting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorsPosting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorsPosting: %w", err)
	}
	return oldValue.ErrorsPosting, nil
}

// AddErrorsPosting adds i to the "errors_posting" field.
func (m *MonitoringProcessMutation) AddErrorsPosting(i int) {
	if m.adderrors_posting != nil {
		*m.adderrors_posting += i
	} else {
		m.adderrors_posting = &i
	}
}

// AddedErrorsPosting returns the value that was added to the "errors_posting" field in this mutation.
func (m *MonitoringProcessMutation) AddedErrorsPosting() (r int, exists bool) {
	v := m.adderrors_posting
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorsPosting resets all changes to the "errors_posting" field.
func (m *MonitoringProcessMutation) ResetErrorsPosting() {
	m.errors_posting = nil
	m.adderrors_posting = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *MonitoringProcessMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MonitoringProcessMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MonitoringProcessMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[monitoringprocess.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MonitoringProcessMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[monitoringprocess.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MonitoringProcessMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, monitoringprocess.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *MonitoringProcessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MonitoringProcessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MonitoringProcessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MonitoringProcessMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MonitoringProcessMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MonitoringProcess entity.
// If the MonitoringProcess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoringProcessMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MonitoringProcessMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *MonitoringProcessMutation) SetOwnerID(id string) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *MonitoringProcessMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[monitoringprocess.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *MonitoringProcessMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *MonitoringProcessMutation) OwnerID() (id string, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *MonitoringProcessMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *MonitoringProcessMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddCredentialIDs adds the "credentials" edge to the UpstreamCredential entity by ids.
func (m *MonitoringProcessMutation) AddCredentialIDs(ids ...string) {
	if m.credentials == nil {
		m.credentials = make(map[string]struct{})
	}
	for i := range ids {
		m.credentials[ids[i]] = struct{}{}
	}
}

// ClearCredentials clears the "credentials" edge to the UpstreamCredential entity.
func (m *MonitoringProcessMutation) ClearCredentials() {
	m.clearedcredentials = true
}

// CredentialsCleared reports if the "credentials" edge to the UpstreamCredential entity was cleared.
func (m *MonitoringProcessMutation) CredentialsCleared() bool {
	return m.clearedcredentials
}

// RemoveCredentialIDs removes the "credentials" edge to the UpstreamCredential entity by IDs.
func (m *MonitoringProcessMutation) RemoveCredentialIDs(ids ...string) {
	if m.removedcredentials == nil {
		m.removedcredentials = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credentials, ids[i])
		m.removedcredentials[ids[i]] = struct{}{}
	}
}

// RemovedCredentials returns the removed IDs of the "credentials" edge to the UpstreamCredential entity.
func (m *MonitoringProcessMutation) RemovedCredentialsIDs() (ids []string) {
	for id := range m.removedcredentials {
		ids = append(ids, id)
	}
	return
}

// CredentialsIDs returns the "credentials" edge IDs in the mutation.
func (m *MonitoringProcessMutation) CredentialsIDs() (ids []string) {
	for id := range m.credentials {
		ids = append(ids, id)
	}
	return
}

// ResetCredentials resets all changes to the "credentials" edge.
func (m *MonitoringProcessMutation) ResetCredentials() {
	m.credentials = nil
	m.clearedcredentials = false
	m.removedcredentials = nil
}

// AddTemplateIDs adds the "templates" edge to the PromptTemplate entity by ids.
func (m *MonitoringProcessMutation) AddTemplateIDs(ids ...string) {
	if m.templates == nil {
		m.templates = make(map[string]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the PromptTemplate entity.
func (m *MonitoringProcessMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the PromptTemplate entity was cleared.
func (m *MonitoringProcessMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the PromptTemplate entity by IDs.
func (m *MonitoringProcessMutation) RemoveTemplateIDs(ids ...string) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the PromptTemplate entity.
func (m *MonitoringProcessMutation) RemovedTemplatesIDs() (ids []string) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *MonitoringProcessMutation) TemplatesIDs() (ids []string) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *MonitoringProcessMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// AddWorkRecordIDs adds the "work_records" edge to the WorkRecord entity by ids.
func (m *MonitoringProcessMutation) AddWorkRecordIDs(ids ...string) {
	if m.work_records == nil {
		m.work_records = make(map[string]struct{})
	}
	for i := range ids {
		m.work_records[ids[i]] = struct{}{}
	}
}

// ClearWorkRecords clears the "work_records" edge to the WorkRecord entity.
func (m *MonitoringProcessMutation) ClearWorkRecords() {
	m.clearedwork_records = true
}

// WorkRecordsCleared reports if the "work_records" edge to the WorkRecord entity was cleared.
func (m *MonitoringProcessMutation) WorkRecordsCleared() bool {
	return m.clearedwork_records
}

// RemoveWorkRecordIDs removes the "work_records" edge to the WorkRecord entity by IDs.
func (m *MonitoringProcessMutation) RemoveWorkRecordIDs(ids ...string) {
	if m.removedwork_records == nil {
		m.removedwork_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.work_records, ids[i])
		m.removedwork_records[ids[i]] = struct{}{}
	}
}

// RemovedWorkRecords returns the removed IDs of the "work_records" edge to the WorkRecord entity.
func (m *MonitoringProcessMutation) RemovedWorkRecordsIDs() (ids []string) {
	for id := range m.removedwork_records {
		ids = append(ids, id)
	}
	return
}

// WorkRecordsIDs returns the "work_records" edge IDs in the mutation.
func (m *MonitoringProcessMutation) WorkRecordsIDs() (ids []string) {
	for id := range m.work_records {
		ids = append(ids, id)
	}
	return
}

// ResetWorkRecords resets all changes to the "work_records" edge.
func (m *MonitoringProcessMutation) ResetWorkRecords() {
	m.work_records = nil
	m.clearedwork_records = false
	m.removedwork_records = nil
}

// AddStageTaskIDs adds the "stage_tasks" edge to the StageTask entity by ids.
func (m *MonitoringProcessMutation) AddStageTaskIDs(ids ...string) {
	if m.stage_tasks == nil {
		m.stage_tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_tasks[ids[i]] = struct{}{}
	}
}

// ClearStageTasks clears the "stage_tasks" edge to the StageTask entity.
func (m *MonitoringProcessMutation) ClearStageTasks() {
	m.clearedstage_tasks = true
}

// StageTasksCleared reports if the "stage_tasks" edge to the StageTask entity was cleared.
func (m *MonitoringProcessMutation) StageTasksCleared() bool {
	return m.clearedstage_tasks
}

// RemoveStageTaskIDs removes the "stage_tasks" edge to the StageTask entity by IDs.
func (m *MonitoringProcessMutation) RemoveStageTaskIDs(ids ...string) {
	if m.removedstage_tasks == nil {
		m.removedstage_tasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_tasks, ids[i])
		m.removedstage_tasks[ids[i]] = struct{}{}
	}
}

// RemovedStageTasks returns the removed IDs of the "stage_tasks" edge to the StageTask entity.
func (m *MonitoringProcessMutation) RemovedStageTasksIDs() (ids []string) {
	for id := range m.removedstage_tasks {
		ids = append(ids, id)
	}
	return
}

// StageTasksIDs returns the "stage_tasks" edge IDs in the mutation.
func (m *MonitoringProcessMutation) StageTasksIDs() (ids []string) {
	for id := range m.stage_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetStageTasks resets all changes to the "stage_tasks" edge.
func (m *MonitoringProcessMutation) ResetStageTasks() {
	m.stage_tasks = nil
	m.clearedstage_tasks = false
	m.removedstage_tasks = nil
}

// Where appends a list predicates to the MonitoringProcessMutation builder.
func (m *MonitoringProcessMutation) Where(ps ...predicate.MonitoringProcess) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonitoringProcessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonitoringProcessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonitoringProcess, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonitoringProcessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonitoringProcessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonitoringProcess).
func (m *MonitoringProcessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonitoringProcessMutation) Fields() []string {
	fields := make([]string, 0, 26)
	if m.owner != nil {
		fields = append(fields, monitoringprocess.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, monitoringprocess.FieldName)
	}
	if m.description != nil {
		fields = append(fields, monitoringprocess.FieldDescription)
	}
	if m.llm_provider_id != nil {
		fields = append(fields, monitoringprocess.FieldLlmProviderID)
	}
	if m.tab_filters != nil {
		fields = append(fields, monitoringprocess.FieldTabFilters)
	}
	if m.category_filter != nil {
		fields = append(fields, monitoringprocess.FieldCategoryFilter)
	}
	if m.keyword_filters != nil {
		fields = append(fields, monitoringprocess.FieldKeywordFilters)
	}
	if m.generate_only != nil {
		fields = append(fields, monitoringprocess.FieldGenerateOnly)
	}
	if m.max_duration_minutes != nil {
		fields = append(fields, monitoringprocess.FieldMaxDurationMinutes)
	}
	if m.status != nil {
		fields = append(fields, monitoringprocess.FieldStatus)
	}
	if m.stop_reason != nil {
		fields = append(fields, monitoringprocess.FieldStopReason)
	}
	if m.started_at != nil {
		fields = append(fields, monitoringprocess.FieldStartedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, monitoringprocess.FieldExpiresAt)
	}
	if m.stopped_at != nil {
		fields = append(fields, monitoringprocess.FieldStoppedAt)
	}
	if m.stage_task_ids != nil {
		fields = append(fields, monitoringprocess.FieldStageTaskIds)
	}
	if m.articles_discovered != nil {
		fields = append(fields, monitoringprocess.FieldArticlesDiscovered)
	}
	if m.articles_prepared != nil {
		fields = append(fields, monitoringprocess.FieldArticlesPrepared)
	}
	if m.comments_generated != nil {
		fields = append(fields, monitoringprocess.FieldCommentsGenerated)
	}
	if m.comments_posted != nil {
		fields = append(fields, monitoringprocess.FieldCommentsPosted)
	}
	if m.errors_discovery != nil {
		fields = append(fields, monitoringprocess.FieldErrorsDiscovery)
	}
	if m.errors_preparation != nil {
		fields = append(fields, monitoringprocess.FieldErrorsPreparation)
	}
	if m.errors_generation != nil {
		fields = append(fields, monitoringprocess.FieldErrorsGeneration)
	}
	if m.errors_posting != nil {
		fields = append(fields, monitoringprocess.FieldErrorsPosting)
	}
	if m.error_message != nil {
		fields = append(fields, monitoringprocess.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, monitoringprocess.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, monitoringprocess.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonitoringProcessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monitoringprocess.FieldUserID:
		return m.UserID()
	case monitoringprocess.FieldName:
		return m.Name()
	case monitoringprocess.FieldDescription:
		return m.Description()
	case monitoringprocess.FieldLlmProviderID:
		return m.LlmProviderID()
	case monitoringprocess.FieldTabFilters:
		return m.TabFilters()
	case monitoringprocess.FieldCategoryFilter:
		return m.CategoryFilter()
	case monitoringprocess.FieldKeywordFilters:
		return m.KeywordFilters()
	case monitoringprocess.FieldGenerateOnly:
		return m.GenerateOnly()
	case monitoringprocess.FieldMaxDurationMinutes:
		return m.MaxDurationMinutes()
	case monitoringprocess.FieldStatus:
		return m.Status()
	case monitoringprocess.FieldStopReason:
		return m.StopReason()
	case monitoringprocess.FieldStartedAt:
		return m.StartedAt()
	case monitoringprocess.FieldExpiresAt:
		return m.ExpiresAt()
	case monitoringprocess.FieldStoppedAt:
		return m.StoppedAt()
	case monitoringprocess.FieldStageTaskIds:
		return m.StageTaskIds()
	case monitoringprocess.FieldArticlesDiscovered:
		return m.ArticlesDiscovered()
	case monitoringprocess.FieldArticlesPrepared:
		return m.ArticlesPrepared()
	case monitoringprocess.FieldCommentsGenerated:
		return m.CommentsGenerated()
	case monitoringprocess.FieldCommentsPosted:
		return m.CommentsPosted()
	case monitoringprocess.FieldErrorsDiscovery:
		return m.ErrorsDiscovery()
	case monitoringprocess.FieldErrorsPreparation:
		return m.ErrorsPreparation()
	case monitoringprocess.FieldErrorsGeneration:
		return m.ErrorsGeneration()
	case monitoringprocess.FieldErrorsPosting:
		return m.ErrorsPosting()
	case monitoringprocess.FieldErrorMessage:
		return m.ErrorMessage()
	case monitoringprocess.FieldCreatedAt:
		return m.CreatedAt()
	case monitoringprocess.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonitoringProcessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monitoringprocess.FieldUserID:
		return m.OldUserID(ctx)
	case monitoringprocess.FieldName:
		return m.OldName(ctx)
	case monitoringprocess.FieldDescription:
		return m.OldDescription(ctx)
	case monitoringprocess.FieldLlmProviderID:
		return m.OldLlmProviderID(ctx)
	case monitoringprocess.FieldTabFilters:
		return m.OldTabFilters(ctx)
	case monitoringprocess.FieldCategoryFilter:
		return m.OldCategoryFilter(ctx)
	case monitoringprocess.FieldKeywordFilters:
		return m.OldKeywordFilters(ctx)
	case monitoringprocess.FieldGenerateOnly:
		return m.OldGenerateOnly(ctx)
	case monitoringprocess.FieldMaxDurationMinutes:
		return m.OldMaxDurationMinutes(ctx)
	case monitoringprocess.FieldStatus:
		return m.OldStatus(ctx)
	case monitoringprocess.FieldStopReason:
		return m.OldStopReason(ctx)
	case monitoringprocess.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case monitoringprocess.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case monitoringprocess.FieldStoppedAt:
		return m.OldStoppedAt(ctx)
	case monitoringprocess.FieldStageTaskIds:
		return m.OldStageTaskIds(ctx)
	case monitoringprocess.FieldArticlesDiscovered:
		return m.OldArticlesDiscovered(ctx)
	case monitoringprocess.FieldArticlesPrepared:
		return m.OldArticlesPrepared(ctx)
	case monitoringprocess.FieldCommentsGenerated:
		return m.OldCommentsGenerated(ctx)
	case monitoringprocess.FieldCommentsPosted:
		return m.OldCommentsPosted(ctx)
	case monitoringprocess.FieldErrorsDiscovery:
		return m.OldErrorsDiscovery(ctx)
	case monitoringprocess.FieldErrorsPreparation:
		return m.OldErrorsPreparation(ctx)
	case monitoringprocess.FieldErrorsGeneration:
		return m.OldErrorsGeneration(ctx)
	case monitoringprocess.FieldErrorsPosting:
		return m.OldErrorsPosting(ctx)
	case monitoringprocess.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case monitoringprocess.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case monitoringprocess.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonitoringProcess field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoringProcessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monitoringprocess.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case monitoringprocess.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case monitoringprocess.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case monitoringprocess.FieldLlmProviderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProviderID(v)
		return nil
	case monitoringprocess.FieldTabFilters:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTabFilters(v)
		return nil
	case monitoringprocess.FieldCategoryFilter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryFilter(v)
		return nil
	case monitoringprocess.FieldKeywordFilters:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywordFilters(v)
		return nil
	case monitoringprocess.FieldGenerateOnly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerateOnly(v)
		return nil
	case monitoringprocess.FieldMaxDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDurationMinutes(v)
		return nil
	case monitoringprocess.FieldStatus:
		v, ok := value.(monitoringprocess.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case monitoringprocess.FieldStopReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopReason(v)
		return nil
	case monitoringprocess.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case monitoringprocess.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case monitoringprocess.FieldStoppedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoppedAt(v)
		return nil
	case monitoringprocess.FieldStageTaskIds:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageTaskIds(v)
		return nil
	case monitoringprocess.FieldArticlesDiscovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticlesDiscovered(v)
		return nil
	case monitoringprocess.FieldArticlesPrepared:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticlesPrepared(v)
		return nil
	case monitoringprocess.FieldCommentsGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentsGenerated(v)
		return nil
	case monitoringprocess.FieldCommentsPosted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentsPosted(v)
		return nil
	case monitoringprocess.FieldErrorsDiscovery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorsDiscovery(v)
		return nil
	case monitoringprocess.FieldErrorsPreparation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorsPreparation(v)
		return nil
	case monitoringprocess.FieldErrorsGeneration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorsGeneration(v)
		return nil
	case monitoringprocess.FieldErrorsPosting:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorsPosting(v)
		return nil
	case monitoringprocess.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case monitoringprocess.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case monitoringprocess.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonitoringProcess field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonitoringProcessMutation) AddedFields() []string {
	var fields []string
	if m.addmax_duration_minutes != nil {
		fields = append(fields, monitoringprocess.FieldMaxDurationMinutes)
	}
	if m.addarticles_discovered != nil {
		fields = append(fields, monitoringprocess.FieldArticlesDiscovered)
	}
	if m.addarticles_prepared != nil {
		fields = append(fields, monitoringprocess.FieldArticlesPrepared)
	}
	if m.addcomments_generated != nil {
		fields = append(fields, monitoringprocess.FieldCommentsGenerated)
	}
	if m.addcomments_posted != nil {
		fields = append(fields, monitoringprocess.FieldCommentsPosted)
	}
	if m.adderrors_discovery != nil {
		fields = append(fields, monitoringprocess.FieldErrorsDiscovery)
	}
	if m.adderrors_preparation != nil {
		fields = append(fields, monitoringprocess.FieldErrorsPreparation)
	}
	if m.adderrors_generation != nil {
		fields = append(fields, monitoringprocess.FieldErrorsGeneration)
	}
	if m.adderrors_posting != nil {
		fields = append(fields, monitoringprocess.FieldErrorsPosting)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonitoringProcessMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case monitoringprocess.FieldMaxDurationMinutes:
		return m.AddedMaxDurationMinutes()
	case monitoringprocess.FieldArticlesDiscovered:
		return m.AddedArticlesDiscovered()
	case monitoringprocess.FieldArticlesPrepared:
		return m.AddedArticlesPrepared()
	case monitoringprocess.FieldCommentsGenerated:
		return m.AddedCommentsGenerated()
	case monitoringprocess.FieldCommentsPosted:
		return m.AddedCommentsPosted()
	case monitoringprocess.FieldErrorsDiscovery:
		return m.AddedErrorsDiscovery()
	case monitoringprocess.FieldErrorsPreparation:
		return m.AddedErrorsPreparation()
	case monitoringprocess.FieldErrorsGeneration:
		return m.AddedErrorsGeneration()
	case monitoringprocess.FieldErrorsPosting:
		return m.AddedErrorsPosting()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoringProcessMutation) AddField(name string, value ent.Value) error {
	switch name {
	case monitoringprocess.FieldMaxDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDurationMinutes(v)
		return nil
	case monitoringprocess.FieldArticlesDiscovered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticlesDiscovered(v)
		return nil
	case monitoringprocess.FieldArticlesPrepared:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticlesPrepared(v)
		return nil
	case monitoringprocess.FieldCommentsGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentsGenerated(v)
		return nil
	case monitoringprocess.FieldCommentsPosted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentsPosted(v)
		return nil
	case monitoringprocess.FieldErrorsDiscovery:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorsDiscovery(v)
		return nil
	case monitoringprocess.FieldErrorsPreparation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorsPreparation(v)
		return nil
	case monitoringprocess.FieldErrorsGeneration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorsGeneration(v)
		return nil
	case monitoringprocess.FieldErrorsPosting:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorsPosting(v)
		return nil
	}
	return fmt.Errorf("unknown MonitoringProcess numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonitoringProcessMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monitoringprocess.FieldDescription) {
		fields = append(fields, monitoringprocess.FieldDescription)
	}
	if m.FieldCleared(monitoringprocess.FieldTabFilters) {
		fields = append(fields, monitoringprocess.FieldTabFilters)
	}
	if m.FieldCleared(monitoringprocess.FieldCategoryFilter) {
		fields = append(fields, monitoringprocess.FieldCategoryFilter)
	}
	if m.FieldCleared(monitoringprocess.FieldKeywordFilters) {
		fields = append(fields, monitoringprocess.FieldKeywordFilters)
	}
	if m.FieldCleared(monitoringprocess.FieldStopReason) {
		fields = append(fields, monitoringprocess.FieldStopReason)
	}
	if m.FieldCleared(monitoringprocess.FieldStartedAt) {
		fields = append(fields, monitoringprocess.FieldStartedAt)
	}
	if m.FieldCleared(monitoringprocess.FieldExpiresAt) {
		fields = append(fields, monitoringprocess.FieldExpiresAt)
	}
	if m.FieldCleared(monitoringprocess.FieldStoppedAt) {
		fields = append(fields, monitoringprocess.FieldStoppedAt)
	}
	if m.FieldCleared(monitoringprocess.FieldStageTaskIds) {
		fields = append(fields, monitoringprocess.FieldStageTaskIds)
	}
	if m.FieldCleared(monitoringprocess.FieldErrorMessage) {
		fields = append(fields, monitoringprocess.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonitoringProcessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonitoringProcessMutation) ClearField(name string) error {
	switch name {
	case monitoringprocess.FieldDescription:
		m.ClearDescription()
		return nil
	case monitoringprocess.FieldTabFilters:
		m.ClearTabFilters()
		return nil
	case monitoringprocess.FieldCategoryFilter:
		m.ClearCategoryFilter()
		return nil
	case monitoringprocess.FieldKeywordFilters:
		m.ClearKeywordFilters()
		return nil
	case monitoringprocess.FieldStopReason:
		m.ClearStopReason()
		return nil
	case monitoringprocess.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case monitoringprocess.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case monitoringprocess.FieldStoppedAt:
		m.ClearStoppedAt()
		return nil
	case monitoringprocess.FieldStageTaskIds:
		m.ClearStageTaskIds()
		return nil
	case monitoringprocess.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown MonitoringProcess nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonitoringProcessMutation) ResetField(name string) error {
	switch name {
	case monitoringprocess.FieldUserID:
		m.ResetUserID()
		return nil
	case monitoringprocess.FieldName:
		m.ResetName()
		return nil
	case monitoringprocess.FieldDescription:
		m.ResetDescription()
		return nil
	case monitoringprocess.FieldLlmProviderID:
		m.ResetLlmProviderID()
		return nil
	case monitoringprocess.FieldTabFilters:
		m.ResetTabFilters()
		return nil
	case monitoringprocess.FieldCategoryFilter:
		m.ResetCategoryFilter()
		return nil
	case monitoringprocess.FieldKeywordFilters:
		m.ResetKeywordFilters()
		return nil
	case monitoringprocess.FieldGenerateOnly:
		m.ResetGenerateOnly()
		return nil
	case monitoringprocess.FieldMaxDurationMinutes:
		m.ResetMaxDurationMinutes()
		return nil
	case monitoringprocess.FieldStatus:
		m.ResetStatus()
		return nil
	case monitoringprocess.FieldStopReason:
		m.ResetStopReason()
		return nil
	case monitoringprocess.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case monitoringprocess.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case monitoringprocess.FieldStoppedAt:
		m.ResetStoppedAt()
		return nil
	case monitoringprocess.FieldStageTaskIds:
		m.ResetStageTaskIds()
		return nil
	case monitoringprocess.FieldArticlesDiscovered:
		m.ResetArticlesDiscovered()
		return nil
	case monitoringprocess.FieldArticlesPrepared:
		m.ResetArticlesPrepared()
		return nil
	case monitoringprocess.FieldCommentsGenerated:
		m.ResetCommentsGenerated()
		return nil
	case monitoringprocess.FieldCommentsPosted:
		m.ResetCommentsPosted()
		return nil
	case monitoringprocess.FieldErrorsDiscovery:
		m.ResetErrorsDiscovery()
		return nil
	case monitoringprocess.FieldErrorsPreparation:
		m.ResetErrorsPreparation()
		return nil
	case monitoringprocess.FieldErrorsGeneration:
		m.ResetErrorsGeneration()
		return nil
	case monitoringprocess.FieldErrorsPosting:
		m.ResetErrorsPosting()
		return nil
	case monitoringprocess.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case monitoringprocess.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case monitoringprocess.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitoringProcess field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonitoringProcessMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.owner != nil {
		edges = append(edges, monitoringprocess.EdgeOwner)
	}
	if m.credentials != nil {
		edges = append(edges, monitoringprocess.EdgeCredentials)
	}
	if m.templates != nil {
		edges = append(edges, monitoringprocess.EdgeTemplates)
	}
	if m.work_records != nil {
		edges = append(edges, monitoringprocess.EdgeWorkRecords)
	}
	if m.stage_tasks != nil {
		edges = append(edges, monitoringprocess.EdgeStageTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonitoringProcessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case monitoringprocess.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case monitoringprocess.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.credentials))
		for id := range m.credentials {
			ids = append(ids, id)
		}
		return ids
	case monitoringprocess.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	case monitoringprocess.EdgeWorkRecords:
		ids := make([]ent.Value, 0, len(m.work_records))
		for id := range m.work_records {
			ids = append(ids, id)
		}
		return ids
	case monitoringprocess.EdgeStageTasks:
		ids := make([]ent.Value, 0, len(m.stage_tasks))
		for id := range m.stage_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonitoringProcessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedcredentials != nil {
		edges = append(edges, monitoringprocess.EdgeCredentials)
	}
	if m.removedtemplates != nil {
		edges = append(edges, monitoringprocess.EdgeTemplates)
	}
	if m.removedwork_records != nil {
		edges = append(edges, monitoringprocess.EdgeWorkRecords)
	}
	if m.removedstage_tasks != nil {
		edges = append(edges, monitoringprocess.EdgeStageTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonitoringProcessMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case monitoringprocess.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.removedcredentials))
		for id := range m.removedcredentials {
			ids = append(ids, id)
		}
		return ids
	case monitoringprocess.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	case monitoringprocess.EdgeWorkRecords:
		ids := make([]ent.Value, 0, len(m.removedwork_records))
		for id := range m.removedwork_records {
			ids = append(ids, id)
		}
		return ids
	case monitoringprocess.EdgeStageTasks:
		ids := make([]ent.Value, 0, len(m.removedstage_tasks))
		for id := range m.removedstage_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonitoringProcessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedowner {
		edges = append(edges, monitoringprocess.EdgeOwner)
	}
	if m.clearedcredentials {
		edges = append(edges, monitoringprocess.EdgeCredentials)
	}
	if m.clearedtemplates {
		edges = append(edges, monitoringprocess.EdgeTemplates)
	}
	if m.clearedwork_records {
		edges = append(edges, monitoringprocess.EdgeWorkRecords)
	}
	if m.clearedstage_tasks {
		edges = append(edges, monitoringprocess.EdgeStageTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonitoringProcessMutation) EdgeCleared(name string) bool {
	switch name {
	case monitoringprocess.EdgeOwner:
		return m.clearedowner
	case monitoringprocess.EdgeCredentials:
		return m.clearedcredentials
	case monitoringprocess.EdgeTemplates:
		return m.clearedtemplates
	case monitoringprocess.EdgeWorkRecords:
		return m.clearedwork_records
	case monitoringprocess.EdgeStageTasks:
		return m.clearedstage_tasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonitoringProcessMutation) ClearEdge(name string) error {
	switch name {
	case monitoringprocess.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown MonitoringProcess unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonitoringProcessMutation) ResetEdge(name string) error {
	switch name {
	case monitoringprocess.EdgeOwner:
		m.ResetOwner()
		return nil
	case monitoringprocess.EdgeCredentials:
		m.ResetCredentials()
		return nil
	case monitoringprocess.EdgeTemplates:
		m.ResetTemplates()
		return nil
	case monitoringprocess.EdgeWorkRecords:
		m.ResetWorkRecords()
		return nil
	case monitoringprocess.EdgeStageTasks:
		m.ResetStageTasks()
		return nil
	}
	return fmt.Errorf("unknown MonitoringProcess edge %s", name)
}

// PromptTemplateMutation represents an operation that mutates the PromptTemplate nodes in the graph.
type PromptTemplateMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	system_prompt        *string
	user_prompt_template *string
	is_system            *bool
	clearedFields        map[string]struct{}
	owner                *string
	clearedowner         bool
	processes            map[string]struct{}
	removedprocesses     map[string]struct{}
	clearedprocesses     bool
	done                 bool
	oldValue             func(context.Context) (*PromptTemplate, error)
	predicates           []predicate.PromptTemplate
}

var _ ent.Mutation = (*PromptTemplateMutation)(nil)

// prompttemplateOption allows management of the mutation configuration using functional options.
type prompttemplateOption func(*PromptTemplateMutation)

// newPromptTemplateMutation creates new mutation for the PromptTemplate entity.
func newPromptTemplateMutation(c config, op Op, opts ...prompttemplateOption) *PromptTemplateMutation {
	m := &PromptTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypePromptTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptTemplateID sets the ID field of the mutation.
func withPromptTemplateID(id string) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptTemplate
		)
		m.oldValue = func(ctx context.Context) (*PromptTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptTemplate sets the old PromptTemplate of the mutation.
func withPromptTemplate(node *PromptTemplate) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		m.oldValue = func(context.Context) (*PromptTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptTemplate entities.
func (m *PromptTemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptTemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptTemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *PromptTemplateMutation) SetOwnerUserID(s string) {
	m.owner = &s
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *PromptTemplateMutation) OwnerUserID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldOwnerUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ClearOwnerUserID clears the value of the "owner_user_id" field.
func (m *PromptTemplateMutation) ClearOwnerUserID() {
	m.owner = nil
	m.clearedFields[prompttemplate.FieldOwnerUserID] = struct{}{}
}

// OwnerUserIDCleared returns if the "owner_user_id" field was cleared in this mutation.
func (m *PromptTemplateMutation) OwnerUserIDCleared() bool {
	_, ok := m.clearedFields[prompttemplate.FieldOwnerUserID]
	return ok
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *PromptTemplateMutation) ResetOwnerUserID() {
	m.owner = nil
	delete(m.clearedFields, prompttemplate.FieldOwnerUserID)
}

// SetName sets the "name" field.
func (m *PromptTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptTemplateMutation) ResetName() {
	m.name = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *PromptTemplateMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *PromptTemplateMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *PromptTemplateMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetUserPromptTemplate sets the "user_prompt_template" field.
func (m *PromptTemplateMutation) SetUserPromptTemplate(s string) {
	m.user_prompt_template = &s
}

// UserPromptTemplate returns the value of the "user_prompt_template" field in the mutation.
func (m *PromptTemplateMutation) UserPromptTemplate() (r string, exists bool) {
	v := m.user_prompt_template
	if v == nil {
		return
	}
	return *v, true
}

// OldUserPromptTemplate returns the old "user_prompt_template" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldUserPromptTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserPromptTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserPromptTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserPromptTemplate: %w", err)
	}
	return oldValue.UserPromptTemplate, nil
}

// ResetUserPromptTemplate resets all changes to the "user_prompt_template" field.
func (m *PromptTemplateMutation) ResetUserPromptTemplate() {
	m.user_prompt_template = nil
}

// SetIsSystem sets the "is_system" field.
func (m *PromptTemplateMutation) SetIsSystem(b bool) {
	m.is_system = &b
}

// IsSystem returns the value of the "is_system" field in the mutation.
func (m *PromptTemplateMutation) IsSystem() (r bool, exists bool) {
	v := m.is_system
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSystem returns the old "is_system" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldIsSystem(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSystem: %w", err)
	}
	return oldValue.IsSystem, nil
}

// ResetIsSystem resets all changes to the "is_system" field.
func (m *PromptTemplateMutation) ResetIsSystem() {
	m.is_system = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *PromptTemplateMutation) SetOwnerID(id string) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *PromptTemplateMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[prompttemplate.FieldOwnerUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *PromptTemplateMutation) OwnerCleared() bool {
	return m.OwnerUserIDCleared() || m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *PromptTemplateMutation) OwnerID() (id string, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *PromptTemplateMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *PromptTemplateMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by ids.
func (m *PromptTemplateMutation) AddProcessIDs(ids ...string) {
	if m.processes == nil {
		m.processes = make(map[string]struct{})
	}
	for i := range ids {
		m.processes[ids[i]] = struct{}{}
	}
}

// ClearProcesses clears the "processes" edge to the MonitoringProcess entity.
func (m *PromptTemplateMutation) ClearProcesses() {
	m.clearedprocesses = true
}

// ProcessesCleared reports if the "processes" edge to the MonitoringProcess entity was cleared.
func (m *PromptTemplateMutation) ProcessesCleared() bool {
	return m.clearedprocesses
}

// RemoveProcessIDs removes the "processes" edge to the MonitoringProcess entity by IDs.
func (m *PromptTemplateMutation) RemoveProcessIDs(ids ...string) {
	if m.removedprocesses == nil {
		m.removedprocesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.processes, ids[i])
		m.removedprocesses[ids[i]] = struct{}{}
	}
}

// RemovedProcesses returns the removed IDs of the "processes" edge to the MonitoringProcess entity.
func (m *PromptTemplateMutation) RemovedProcessesIDs() (ids []string) {
	for id := range m.removedprocesses {
		ids = append(ids, id)
	}
	return
}

// ProcessesIDs returns the "processes" edge IDs in the mutation.
func (m *PromptTemplateMutation) ProcessesIDs() (ids []string) {
	for id := range m.processes {
		ids = append(ids, id)
	}
	return
}

// ResetProcesses resets all changes to the "processes" edge.
func (m *PromptTemplateMutation) ResetProcesses() {
	m.processes = nil
	m.clearedprocesses = false
	m.removedprocesses = nil
}

// Where appends a list predicates to the PromptTemplateMutation builder.
func (m *PromptTemplateMutation) Where(ps ...predicate.PromptTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptTemplate).
func (m *PromptTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptTemplateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner != nil {
		fields = append(fields, prompttemplate.FieldOwnerUserID)
	}
	if m.name != nil {
		fields = append(fields, prompttemplate.FieldName)
	}
	if m.system_prompt != nil {
		fields = append(fields, prompttemplate.FieldSystemPrompt)
	}
	if m.user_prompt_template != nil {
		fields = append(fields, prompttemplate.FieldUserPromptTemplate)
	}
	if m.is_system != nil {
		fields = append(fields, prompttemplate.FieldIsSystem)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompttemplate.FieldOwnerUserID:
		return m.OwnerUserID()
	case prompttemplate.FieldName:
		return m.Name()
	case prompttemplate.FieldSystemPrompt:
		return m.SystemPrompt()
	case prompttemplate.FieldUserPromptTemplate:
		return m.UserPromptTemplate()
	case prompttemplate.FieldIsSystem:
		return m.IsSystem()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompttemplate.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case prompttemplate.FieldName:
		return m.OldName(ctx)
	case prompttemplate.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case prompttemplate.FieldUserPromptTemplate:
		return m.OldUserPromptTemplate(ctx)
	case prompttemplate.FieldIsSystem:
		return m.OldIsSystem(ctx)
	}
	return nil, fmt.Errorf("unknown PromptTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompttemplate.FieldOwnerUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case prompttemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompttemplate.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case prompttemplate.FieldUserPromptTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserPromptTemplate(v)
		return nil
	case prompttemplate.FieldIsSystem:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSystem(v)
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PromptTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompttemplate.FieldOwnerUserID) {
		fields = append(fields, prompttemplate.FieldOwnerUserID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ClearField(name string) error {
	switch name {
	case prompttemplate.FieldOwnerUserID:
		m.ClearOwnerUserID()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ResetField(name string) error {
	switch name {
	case prompttemplate.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case prompttemplate.FieldName:
		m.ResetName()
		return nil
	case prompttemplate.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case prompttemplate.FieldUserPromptTemplate:
		m.ResetUserPromptTemplate()
		return nil
	case prompttemplate.FieldIsSystem:
		m.ResetIsSystem()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.owner != nil {
		edges = append(edges, prompttemplate.EdgeOwner)
	}
	if m.processes != nil {
		edges = append(edges, prompttemplate.EdgeProcesses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prompttemplate.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case prompttemplate.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.processes))
		for id := range m.processes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedprocesses != nil {
		edges = append(edges, prompttemplate.EdgeProcesses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case prompttemplate.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.removedprocesses))
		for id := range m.removedprocesses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedowner {
		edges = append(edges, prompttemplate.EdgeOwner)
	}
	if m.clearedprocesses {
		edges = append(edges, prompttemplate.EdgeProcesses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case prompttemplate.EdgeOwner:
		return m.clearedowner
	case prompttemplate.EdgeProcesses:
		return m.clearedprocesses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptTemplateMutation) ClearEdge(name string) error {
	switch name {
	case prompttemplate.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptTemplateMutation) ResetEdge(name string) error {
	switch name {
	case prompttemplate.EdgeOwner:
		m.ResetOwner()
		return nil
	case prompttemplate.EdgeProcesses:
		m.ResetProcesses()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate edge %s", name)
}

// StageTaskMutation represents an operation that mutates the StageTask nodes in the graph.
type StageTaskMutation struct {
	config
	op             Op
	typ            string
	id             *string
	queue          *stagetask.Queue
	status         *stagetask.Status
	enqueued_at    *time.Time
	started_at     *time.Time
	finished_at    *time.Time
	error_message  *string
	worker_id      *string
	clearedFields  map[string]struct{}
	process        *string
	clearedprocess bool
	done           bool
	oldValue       func(context.Context) (*StageTask, error)
	predicates     []predicate.StageTask
}

var _ ent.Mutation = (*StageTaskMutation)(nil)

// stagetaskOption allows management of the mutation configuration using functional options.
type stagetaskOption func(*StageTaskMutation)

// newStageTaskMutation creates new mutation for the StageTask entity.
func newStageTaskMutation(c config, op Op, opts ...stagetaskOption) *StageTaskMutation {
	m := &StageTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeStageTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageTaskID sets the ID field of the mutation.
func withStageTaskID(id string) stagetaskOption {
	return func(m *StageTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *StageTask
		)
		m.oldValue = func(ctx context.Context) (*StageTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageTask sets the old StageTask of the mutation.
func withStageTask(node *StageTask) stagetaskOption {
	return func(m *StageTaskMutation) {
		m.oldValue = func(context.Context) (*StageTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageTask entities.
func (m *StageTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *StageTaskMutation) SetQueue(s stagetask.Queue) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *StageTaskMutation) Queue() (r stagetask.Queue, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldQueue(ctx context.Context) (v stagetask.Queue, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *StageTaskMutation) ResetQueue() {
	m.queue = nil
}

// SetProcessID sets the "process_id" field.
func (m *StageTaskMutation) SetProcessID(s string) {
	m.process = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *StageTaskMutation) ProcessID() (r string, exists bool) {
	v := m.process
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *StageTaskMutation) ResetProcessID() {
	m.process = nil
}

// SetStatus sets the "status" field.
func (m *StageTaskMutation) SetStatus(s stagetask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageTaskMutation) Status() (r stagetask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldStatus(ctx context.Context) (v stagetask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageTaskMutation) ResetStatus() {
	m.status = nil
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *StageTaskMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *StageTaskMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *StageTaskMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StageTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StageTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stagetask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StageTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stagetask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stagetask.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *StageTaskMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *StageTaskMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *StageTaskMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[stagetask.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *StageTaskMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[stagetask.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *StageTaskMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, stagetask.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stagetask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stagetask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stagetask.FieldErrorMessage)
}

// SetWorkerID sets the "worker_id" field.
func (m *StageTaskMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *StageTaskMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the StageTask entity.
// If the StageTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageTaskMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *StageTaskMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[stagetask.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *StageTaskMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[stagetask.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *StageTaskMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, stagetask.FieldWorkerID)
}

// ClearProcess clears the "process" edge to the MonitoringProcess entity.
func (m *StageTaskMutation) ClearProcess() {
	m.clearedprocess = true
	m.clearedFields[stagetask.FieldProcessID] = struct{}{}
}

// ProcessCleared reports if the "process" edge to the MonitoringProcess entity was cleared.
func (m *StageTaskMutation) ProcessCleared() bool {
	return m.clearedprocess
}

// ProcessIDs returns the "process" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessID instead. It exists only for internal usage by the builders.
func (m *StageTaskMutation) ProcessIDs() (ids []string) {
	if id := m.process; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcess resets all changes to the "process" edge.
func (m *StageTaskMutation) ResetProcess() {
	m.process = nil
	m.clearedprocess = false
}

// Where appends a list predicates to the StageTaskMutation builder.
func (m *StageTaskMutation) Where(ps ...predicate.StageTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageTask).
func (m *StageTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageTaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.queue != nil {
		fields = append(fields, stagetask.FieldQueue)
	}
	if m.process != nil {
		fields = append(fields, stagetask.FieldProcessID)
	}
	if m.status != nil {
		fields = append(fields, stagetask.FieldStatus)
	}
	if m.enqueued_at != nil {
		fields = append(fields, stagetask.FieldEnqueuedAt)
	}
	if m.started_at != nil {
		fields = append(fields, stagetask.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, stagetask.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, stagetask.FieldErrorMessage)
	}
	if m.worker_id != nil {
		fields = append(fields, stagetask.FieldWorkerID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagetask.FieldQueue:
		return m.Queue()
	case stagetask.FieldProcessID:
		return m.ProcessID()
	case stagetask.FieldStatus:
		return m.Status()
	case stagetask.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case stagetask.FieldStartedAt:
		return m.StartedAt()
	case stagetask.FieldFinishedAt:
		return m.FinishedAt()
	case stagetask.FieldErrorMessage:
		return m.ErrorMessage()
	case stagetask.FieldWorkerID:
		return m.WorkerID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagetask.FieldQueue:
		return m.OldQueue(ctx)
	case stagetask.FieldProcessID:
		return m.OldProcessID(ctx)
	case stagetask.FieldStatus:
		return m.OldStatus(ctx)
	case stagetask.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case stagetask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stagetask.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case stagetask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stagetask.FieldWorkerID:
		return m.OldWorkerID(ctx)
	}
	return nil, fmt.Errorf("unknown StageTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagetask.FieldQueue:
		v, ok := value.(stagetask.Queue)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case stagetask.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case stagetask.FieldStatus:
		v, ok := value.(stagetask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stagetask.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case stagetask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stagetask.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case stagetask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stagetask.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	}
	return fmt.Errorf("unknown StageTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StageTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stagetask.FieldStartedAt) {
		fields = append(fields, stagetask.FieldStartedAt)
	}
	if m.FieldCleared(stagetask.FieldFinishedAt) {
		fields = append(fields, stagetask.FieldFinishedAt)
	}
	if m.FieldCleared(stagetask.FieldErrorMessage) {
		fields = append(fields, stagetask.FieldErrorMessage)
	}
	if m.FieldCleared(stagetask.FieldWorkerID) {
		fields = append(fields, stagetask.FieldWorkerID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageTaskMutation) ClearField(name string) error {
	switch name {
	case stagetask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stagetask.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case stagetask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stagetask.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	}
	return fmt.Errorf("unknown StageTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageTaskMutation) ResetField(name string) error {
	switch name {
	case stagetask.FieldQueue:
		m.ResetQueue()
		return nil
	case stagetask.FieldProcessID:
		m.ResetProcessID()
		return nil
	case stagetask.FieldStatus:
		m.ResetStatus()
		return nil
	case stagetask.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case stagetask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stagetask.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case stagetask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stagetask.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	}
	return fmt.Errorf("unknown StageTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.process != nil {
		edges = append(edges, stagetask.EdgeProcess)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stagetask.EdgeProcess:
		if id := m.process; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocess {
		edges = append(edges, stagetask.EdgeProcess)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case stagetask.EdgeProcess:
		return m.clearedprocess
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageTaskMutation) ClearEdge(name string) error {
	switch name {
	case stagetask.EdgeProcess:
		m.ClearProcess()
		return nil
	}
	return fmt.Errorf("unknown StageTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageTaskMutation) ResetEdge(name string) error {
	switch name {
	case stagetask.EdgeProcess:
		m.ResetProcess()
		return nil
	}
	return fmt.Errorf("unknown StageTask edge %s", name)
}

// UpstreamCredentialMutation represents an operation that mutates the UpstreamCredential nodes in the graph.
type UpstreamCredentialMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	display_name       *string
	username           *string
	password_encrypted *string
	is_active          *bool
	created_at         *time.Time
	last_used_at       *time.Time
	clearedFields      map[string]struct{}
	owner              *string
	clearedowner       bool
	processes          map[string]struct{}
	removedprocesses   map[string]struct{}
	clearedprocesses   bool
	done               bool
	oldValue           func(context.Context) (*UpstreamCredential, error)
	predicates         []predicate.UpstreamCredential
}

var _ ent.Mutation = (*UpstreamCredentialMutation)(nil)

// upstreamcredentialOption allows management of the mutation configuration using functional options.
type upstreamcredentialOption func(*UpstreamCredentialMutation)

// newUpstreamCredentialMutation creates new mutation for the UpstreamCredential entity.
func newUpstreamCredentialMutation(c config, op Op, opts ...upstreamcredentialOption) *UpstreamCredentialMutation {
	m := &UpstreamCredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeUpstreamCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUpstreamCredentialID sets the ID field of the mutation.
func withUpstreamCredentialID(id string) upstreamcredentialOption {
	return func(m *UpstreamCredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *UpstreamCredential
		)
		m.oldValue = func(ctx context.Context) (*UpstreamCredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UpstreamCredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpstreamCredential sets the old UpstreamCredential of the mutation.
func withUpstreamCredential(node *UpstreamCredential) upstreamcredentialOption {
	return func(m *UpstreamCredentialMutation) {
		m.oldValue = func(context.Context) (*UpstreamCredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UpstreamCredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UpstreamCredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UpstreamCredential entities.
func (m *UpstreamCredentialMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UpstreamCredentialMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UpstreamCredentialMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UpstreamCredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UpstreamCredentialMutation) SetUserID(s string) {
	m.owner = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UpstreamCredentialMutation) UserID() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UpstreamCredential entity.
// If the UpstreamCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamCredentialMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UpstreamCredentialMutation) ResetUserID() {
	m.owner = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UpstreamCredentialMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UpstreamCredentialMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the UpstreamCredential entity.
// If the UpstreamCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamCredentialMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UpstreamCredentialMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetUsername sets the "username" field.
func (m *UpstreamCredentialMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UpstreamCredentialMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the UpstreamCredential entity.
// If the UpstreamCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamCredentialMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UpstreamCredentialMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordEncrypted sets the "password_encrypted" field.
func (m *UpstreamCredentialMutation) SetPasswordEncrypted(s string) {
	m.password_encrypted = &s
}

// PasswordEncrypted returns the value of the "password_encrypted" field in the mutation.
func (m *UpstreamCredentialMutation) PasswordEncrypted() (r string, exists bool) {
	v := m.password_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordEncrypted returns the old "password_encrypted" field's value of the UpstreamCredential entity.
// If the UpstreamCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamCredentialMutation) OldPasswordEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordEncrypted: %w", err)
	}
	return oldValue.PasswordEncrypted, nil
}

// ResetPasswordEncrypted resets all changes to the "password_encrypted" field.
func (m *UpstreamCredentialMutation) ResetPasswordEncrypted() {
	m.password_encrypted = nil
}

// SetIsActive sets the "is_active" field.
func (m *UpstreamCredentialMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UpstreamCredentialMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the UpstreamCredential entity.
// If the UpstreamCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamCredentialMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UpstreamCredentialMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UpstreamCredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UpstreamCredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UpstreamCredential entity.
// If the UpstreamCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamCredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UpstreamCredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UpstreamCredentialMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UpstreamCredentialMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UpstreamCredential entity.
// If the UpstreamCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UpstreamCredentialMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UpstreamCredentialMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[upstreamcredential.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UpstreamCredentialMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[upstreamcredential.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UpstreamCredentialMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, upstreamcredential.FieldLastUsedAt)
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *UpstreamCredentialMutation) SetOwnerID(id string) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *UpstreamCredentialMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[upstreamcredential.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *UpstreamCredentialMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *UpstreamCredentialMutation) OwnerID() (id string, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *UpstreamCredentialMutation) OwnerIDs() (ids []string) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *UpstreamCredentialMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by ids.
func (m *UpstreamCredentialMutation) AddProcessIDs(ids ...string) {
	if m.processes == nil {
		m.processes = make(map[string]struct{})
	}
	for i := range ids {
		m.processes[ids[i]] = struct{}{}
	}
}

// ClearProcesses clears the "processes" edge to the MonitoringProcess entity.
func (m *UpstreamCredentialMutation) ClearProcesses() {
	m.clearedprocesses = true
}

// ProcessesCleared reports if the "processes" edge to the MonitoringProcess entity was cleared.
func (m *UpstreamCredentialMutation) ProcessesCleared() bool {
	return m.clearedprocesses
}

// RemoveProcessIDs removes the "processes" edge to the MonitoringProcess entity by IDs.
func (m *UpstreamCredentialMutation) RemoveProcessIDs(ids ...string) {
	if m.removedprocesses == nil {
		m.removedprocesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.processes, ids[i])
		m.removedprocesses[ids[i]] = struct{}{}
	}
}

// RemovedProcesses returns the removed IDs of the "processes" edge to the MonitoringProcess entity.
func (m *UpstreamCredentialMutation) RemovedProcessesIDs() (ids []string) {
	for id := range m.removedprocesses {
		ids = append(ids, id)
	}
	return
}

// ProcessesIDs returns the "processes" edge IDs in the mutation.
func (m *UpstreamCredentialMutation) ProcessesIDs() (ids []string) {
	for id := range m.processes {
		ids = append(ids, id)
	}
	return
}

// ResetProcesses resets all changes to the "processes" edge.
func (m *UpstreamCredentialMutation) ResetProcesses() {
	m.processes = nil
	m.clearedprocesses = false
	m.removedprocesses = nil
}

// Where appends a list predicates to the UpstreamCredentialMutation builder.
func (m *UpstreamCredentialMutation) Where(ps ...predicate.UpstreamCredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UpstreamCredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UpstreamCredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UpstreamCredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UpstreamCredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UpstreamCredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UpstreamCredential).
func (m *UpstreamCredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UpstreamCredentialMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner != nil {
		fields = append(fields, upstreamcredential.FieldUserID)
	}
	if m.display_name != nil {
		fields = append(fields, upstreamcredential.FieldDisplayName)
	}
	if m.username != nil {
		fields = append(fields, upstreamcredential.FieldUsername)
	}
	if m.password_encrypted != nil {
		fields = append(fields, upstreamcredential.FieldPasswordEncrypted)
	}
	if m.is_active != nil {
		fields = append(fields, upstreamcredential.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, upstreamcredential.FieldCreatedAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, upstreamcredential.FieldLastUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UpstreamCredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upstreamcredential.FieldUserID:
		return m.UserID()
	case upstreamcredential.FieldDisplayName:
		return m.DisplayName()
	case upstreamcredential.FieldUsername:
		return m.Username()
	case upstreamcredential.FieldPasswordEncrypted:
		return m.PasswordEncrypted()
	case upstreamcredential.FieldIsActive:
		return m.IsActive()
	case upstreamcredential.FieldCreatedAt:
		return m.CreatedAt()
	case upstreamcredential.FieldLastUsedAt:
		return m.LastUsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UpstreamCredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upstreamcredential.FieldUserID:
		return m.OldUserID(ctx)
	case upstreamcredential.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case upstreamcredential.FieldUsername:
		return m.OldUsername(ctx)
	case upstreamcredential.FieldPasswordEncrypted:
		return m.OldPasswordEncrypted(ctx)
	case upstreamcredential.FieldIsActive:
		return m.OldIsActive(ctx)
	case upstreamcredential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case upstreamcredential.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UpstreamCredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpstreamCredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upstreamcredential.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case upstreamcredential.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case upstreamcredential.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case upstreamcredential.FieldPasswordEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordEncrypted(v)
		return nil
	case upstreamcredential.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case upstreamcredential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case upstreamcredential.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UpstreamCredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UpstreamCredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UpstreamCredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UpstreamCredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UpstreamCredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UpstreamCredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(upstreamcredential.FieldLastUsedAt) {
		fields = append(fields, upstreamcredential.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UpstreamCredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UpstreamCredentialMutation) ClearField(name string) error {
	switch name {
	case upstreamcredential.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown UpstreamCredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UpstreamCredentialMutation) ResetField(name string) error {
	switch name {
	case upstreamcredential.FieldUserID:
		m.ResetUserID()
		return nil
	case upstreamcredential.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case upstreamcredential.FieldUsername:
		m.ResetUsername()
		return nil
	case upstreamcredential.FieldPasswordEncrypted:
		m.ResetPasswordEncrypted()
		return nil
	case upstreamcredential.FieldIsActive:
		m.ResetIsActive()
		return nil
	case upstreamcredential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case upstreamcredential.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown UpstreamCredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UpstreamCredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.owner != nil {
		edges = append(edges, upstreamcredential.EdgeOwner)
	}
	if m.processes != nil {
		edges = append(edges, upstreamcredential.EdgeProcesses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UpstreamCredentialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upstreamcredential.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case upstreamcredential.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.processes))
		for id := range m.processes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UpstreamCredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedprocesses != nil {
		edges = append(edges, upstreamcredential.EdgeProcesses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UpstreamCredentialMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case upstreamcredential.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.removedprocesses))
		for id := range m.removedprocesses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UpstreamCredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedowner {
		edges = append(edges, upstreamcredential.EdgeOwner)
	}
	if m.clearedprocesses {
		edges = append(edges, upstreamcredential.EdgeProcesses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UpstreamCredentialMutation) EdgeCleared(name string) bool {
	switch name {
	case upstreamcredential.EdgeOwner:
		return m.clearedowner
	case upstreamcredential.EdgeProcesses:
		return m.clearedprocesses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UpstreamCredentialMutation) ClearEdge(name string) error {
	switch name {
	case upstreamcredential.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown UpstreamCredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UpstreamCredentialMutation) ResetEdge(name string) error {
	switch name {
	case upstreamcredential.EdgeOwner:
		m.ResetOwner()
		return nil
	case upstreamcredential.EdgeProcesses:
		m.ResetProcesses()
		return nil
	}
	return fmt.Errorf("unknown UpstreamCredential edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	email                *string
	password_hash        *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	credentials          map[string]struct{}
	removedcredentials   map[string]struct{}
	clearedcredentials   bool
	llm_providers        map[string]struct{}
	removedllm_providers map[string]struct{}
	clearedllm_providers bool
	templates            map[string]struct{}
	removedtemplates     map[string]struct{}
	clearedtemplates     bool
	processes            map[string]struct{}
	removedprocesses     map[string]struct{}
	clearedprocesses     bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddCredentialIDs adds the "credentials" edge to the UpstreamCredential entity by ids.
func (m *UserMutation) AddCredentialIDs(ids ...string) {
	if m.credentials == nil {
		m.credentials = make(map[string]struct{})
	}
	for i := range ids {
		m.credentials[ids[i]] = struct{}{}
	}
}

// ClearCredentials clears the "credentials" edge to the UpstreamCredential entity.
func (m *UserMutation) ClearCredentials() {
	m.clearedcredentials = true
}

// CredentialsCleared reports if the "credentials" edge to the UpstreamCredential entity was cleared.
func (m *UserMutation) CredentialsCleared() bool {
	return m.clearedcredentials
}

// RemoveCredentialIDs removes the "credentials" edge to the UpstreamCredential entity by IDs.
func (m *UserMutation) RemoveCredentialIDs(ids ...string) {
	if m.removedcredentials == nil {
		m.removedcredentials = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credentials, ids[i])
		m.removedcredentials[ids[i]] = struct{}{}
	}
}

// RemovedCredentials returns the removed IDs of the "credentials" edge to the UpstreamCredential entity.
func (m *UserMutation) RemovedCredentialsIDs() (ids []string) {
	for id := range m.removedcredentials {
		ids = append(ids, id)
	}
	return
}

// CredentialsIDs returns the "credentials" edge IDs in the mutation.
func (m *UserMutation) CredentialsIDs() (ids []string) {
	for id := range m.credentials {
		ids = append(ids, id)
	}
	return
}

// ResetCredentials resets all changes to the "credentials" edge.
func (m *UserMutation) ResetCredentials() {
	m.credentials = nil
	m.clearedcredentials = false
	m.removedcredentials = nil
}

// AddLlmProviderIDs adds the "llm_providers" edge to the LLMProviderConfig entity by ids.
func (m *UserMutation) AddLlmProviderIDs(ids ...string) {
	if m.llm_providers == nil {
		m.llm_providers = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_providers[ids[i]] = struct{}{}
	}
}

// ClearLlmProviders clears the "llm_providers" edge to the LLMProviderConfig entity.
func (m *UserMutation) ClearLlmProviders() {
	m.clearedllm_providers = true
}

// LlmProvidersCleared reports if the "llm_providers" edge to the LLMProviderConfig entity was cleared.
func (m *UserMutation) LlmProvidersCleared() bool {
	return m.clearedllm_providers
}

// RemoveLlmProviderIDs removes the "llm_providers" edge to the LLMProviderConfig entity by IDs.
func (m *UserMutation) RemoveLlmProviderIDs(ids ...string) {
	if m.removedllm_providers == nil {
		m.removedllm_providers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_providers, ids[i])
		m.removedllm_providers[ids[i]] = struct{}{}
	}
}

// RemovedLlmProviders returns the removed IDs of the "llm_providers" edge to the LLMProviderConfig entity.
func (m *UserMutation) RemovedLlmProvidersIDs() (ids []string) {
	for id := range m.removedllm_providers {
		ids = append(ids, id)
	}
	return
}

// LlmProvidersIDs returns the "llm_providers" edge IDs in the mutation.
func (m *UserMutation) LlmProvidersIDs() (ids []string) {
	for id := range m.llm_providers {
		ids = append(ids, id)
	}
	return
}

// ResetLlmProviders resets all changes to the "llm_providers" edge.
func (m *UserMutation) ResetLlmProviders() {
	m.llm_providers = nil
	m.clearedllm_providers = false
	m.removedllm_providers = nil
}

// AddTemplateIDs adds the "templates" edge to the PromptTemplate entity by ids.
func (m *UserMutation) AddTemplateIDs(ids ...string) {
	if m.templates == nil {
		m.templates = make(map[string]struct{})
	}
	for i := range ids {
		m.templates[ids[i]] = struct{}{}
	}
}

// ClearTemplates clears the "templates" edge to the PromptTemplate entity.
func (m *UserMutation) ClearTemplates() {
	m.clearedtemplates = true
}

// TemplatesCleared reports if the "templates" edge to the PromptTemplate entity was cleared.
func (m *UserMutation) TemplatesCleared() bool {
	return m.clearedtemplates
}

// RemoveTemplateIDs removes the "templates" edge to the PromptTemplate entity by IDs.
func (m *UserMutation) RemoveTemplateIDs(ids ...string) {
	if m.removedtemplates == nil {
		m.removedtemplates = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.templates, ids[i])
		m.removedtemplates[ids[i]] = struct{}{}
	}
}

// RemovedTemplates returns the removed IDs of the "templates" edge to the PromptTemplate entity.
func (m *UserMutation) RemovedTemplatesIDs() (ids []string) {
	for id := range m.removedtemplates {
		ids = append(ids, id)
	}
	return
}

// TemplatesIDs returns the "templates" edge IDs in the mutation.
func (m *UserMutation) TemplatesIDs() (ids []string) {
	for id := range m.templates {
		ids = append(ids, id)
	}
	return
}

// ResetTemplates resets all changes to the "templates" edge.
func (m *UserMutation) ResetTemplates() {
	m.templates = nil
	m.clearedtemplates = false
	m.removedtemplates = nil
}

// AddProcessIDs adds the "processes" edge to the MonitoringProcess entity by ids.
func (m *UserMutation) AddProcessIDs(ids ...string) {
	if m.processes == nil {
		m.processes = make(map[string]struct{})
	}
	for i := range ids {
		m.processes[ids[i]] = struct{}{}
	}
}

// ClearProcesses clears the "processes" edge to the MonitoringProcess entity.
func (m *UserMutation) ClearProcesses() {
	m.clearedprocesses = true
}

// ProcessesCleared reports if the "processes" edge to the MonitoringProcess entity was cleared.
func (m *UserMutation) ProcessesCleared() bool {
	return m.clearedprocesses
}

// RemoveProcessIDs removes the "processes" edge to the MonitoringProcess entity by IDs.
func (m *UserMutation) RemoveProcessIDs(ids ...string) {
	if m.removedprocesses == nil {
		m.removedprocesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.processes, ids[i])
		m.removedprocesses[ids[i]] = struct{}{}
	}
}

// RemovedProcesses returns the removed IDs of the "processes" edge to the MonitoringProcess entity.
func (m *UserMutation) RemovedProcessesIDs() (ids []string) {
	for id := range m.removedprocesses {
		ids = append(ids, id)
	}
	return
}

// ProcessesIDs returns the "processes" edge IDs in the mutation.
func (m *UserMutation) ProcessesIDs() (ids []string) {
	for id := range m.processes {
		ids = append(ids, id)
	}
	return
}

// ResetProcesses resets all changes to the "processes" edge.
func (m *UserMutation) ResetProcesses() {
	m.processes = nil
	m.clearedprocesses = false
	m.removedprocesses = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.credentials != nil {
		edges = append(edges, user.EdgeCredentials)
	}
	if m.llm_providers != nil {
		edges = append(edges, user.EdgeLlmProviders)
	}
	if m.templates != nil {
		edges = append(edges, user.EdgeTemplates)
	}
	if m.processes != nil {
		edges = append(edges, user.EdgeProcesses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.credentials))
		for id := range m.credentials {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLlmProviders:
		ids := make([]ent.Value, 0, len(m.llm_providers))
		for id := range m.llm_providers {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.templates))
		for id := range m.templates {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.processes))
		for id := range m.processes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcredentials != nil {
		edges = append(edges, user.EdgeCredentials)
	}
	if m.removedllm_providers != nil {
		edges = append(edges, user.EdgeLlmProviders)
	}
	if m.removedtemplates != nil {
		edges = append(edges, user.EdgeTemplates)
	}
	if m.removedprocesses != nil {
		edges = append(edges, user.EdgeProcesses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.removedcredentials))
		for id := range m.removedcredentials {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeLlmProviders:
		ids := make([]ent.Value, 0, len(m.removedllm_providers))
		for id := range m.removedllm_providers {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeTemplates:
		ids := make([]ent.Value, 0, len(m.removedtemplates))
		for id := range m.removedtemplates {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeProcesses:
		ids := make([]ent.Value, 0, len(m.removedprocesses))
		for id := range m.removedprocesses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcredentials {
		edges = append(edges, user.EdgeCredentials)
	}
	if m.clearedllm_providers {
		edges = append(edges, user.EdgeLlmProviders)
	}
	if m.clearedtemplates {
		edges = append(edges, user.EdgeTemplates)
	}
	if m.clearedprocesses {
		edges = append(edges, user.EdgeProcesses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeCredentials:
		return m.clearedcredentials
	case user.EdgeLlmProviders:
		return m.clearedllm_providers
	case user.EdgeTemplates:
		return m.clearedtemplates
	case user.EdgeProcesses:
		return m.clearedprocesses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeCredentials:
		m.ResetCredentials()
		return nil
	case user.EdgeLlmProviders:
		m.ResetLlmProviders()
		return nil
	case user.EdgeTemplates:
		m.ResetTemplates()
		return nil
	case user.EdgeProcesses:
		m.ResetProcesses()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// WorkRecordMutation represents an operation that mutates the WorkRecord nodes in the graph.
type WorkRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	credential_id         *string
	template_id           *string
	llm_provider_id       *string
	upstream_article_id   *string
	article_title         *string
	article_author        *string
	article_category      *string
	article_url           *string
	article_edited_at     *time.Time
	article_content       *string
	article_raw_html      *string
	article_published_at  *time.Time
	article_scraped_at    *time.Time
	comment_content       *string
	upstream_comment_id   *string
	ai_model_name         *string
	ai_vendor_tag         *string
	generation_tokens     *int
	addgeneration_tokens  *int
	generation_time_ms    *int
	addgeneration_time_ms *int
	status                *workrecord.Status
	error_message         *string
	retry_count           *int
	addretry_count        *int
	posted_at             *time.Time
	failed_at             *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	process               *string
	clearedprocess        bool
	done                  bool
	oldValue              func(context.Context) (*WorkRecord, error)
	predicates            []predicate.WorkRecord
}

var _ ent.Mutation = (*WorkRecordMutation)(nil)

// workrecordOption allows management of the mutation configuration using functional options.
type workrecordOption func(*WorkRecordMutation)

// newWorkRecordMutation creates new mutation for the WorkRecord entity.
func newWorkRecordMutation(c config, op Op, opts ...workrecordOption) *WorkRecordMutation {
	m := &WorkRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkRecordID sets the ID field of the mutation.
func withWorkRecordID(id string) workrecordOption {
	return func(m *WorkRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkRecord
		)
		m.oldValue = func(ctx context.Context) (*WorkRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkRecord sets the old WorkRecord of the mutation.
func withWorkRecord(node *WorkRecord) workrecordOption {
	return func(m *WorkRecordMutation) {
		m.oldValue = func(context.Context) (*WorkRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkRecord entities.
func (m *WorkRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessID sets the "process_id" field.
func (m *WorkRecordMutation) SetProcessID(s string) {
	m.process = &s
}

// ProcessID returns the value of the "process_id" field in the mutation.
func (m *WorkRecordMutation) ProcessID() (r string, exists bool) {
	v := m.process
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessID returns the old "process_id" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldProcessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessID: %w", err)
	}
	return oldValue.ProcessID, nil
}

// ResetProcessID resets all changes to the "process_id" field.
func (m *WorkRecordMutation) ResetProcessID() {
	m.process = nil
}

// SetUserID sets the "user_id" field.
func (m *WorkRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WorkRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WorkRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetCredentialID sets the "credential_id" field.
func (m *WorkRecordMutation) SetCredentialID(s string) {
	m.credential_id = &s
}

// CredentialID returns the value of the "credential_id" field in the mutation.
func (m *WorkRecordMutation) CredentialID() (r string, exists bool) {
	v := m.credential_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialID returns the old "credential_id" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldCredentialID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialID: %w", err)
	}
	return oldValue.CredentialID, nil
}

// ResetCredentialID resets all changes to the "credential_id" field.
func (m *WorkRecordMutation) ResetCredentialID() {
	m.credential_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *WorkRecordMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *WorkRecordMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *WorkRecordMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetLlmProviderID sets the "llm_provider_id" field.
func (m *WorkRecordMutation) SetLlmProviderID(s string) {
	m.llm_provider_id = &s
}

// LlmProviderID returns the value of the "llm_provider_id" field in the mutation.
func (m *WorkRecordMutation) LlmProviderID() (r string, exists bool) {
	v := m.llm_provider_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProviderID returns the old "llm_provider_id" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldLlmProviderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProviderID: %w", err)
	}
	return oldValue.LlmProviderID, nil
}

// ResetLlmProviderID resets all changes to the "llm_provider_id" field.
func (m *WorkRecordMutation) ResetLlmProviderID() {
	m.llm_provider_id = nil
}

// SetUpstreamArticleID sets the "upstream_article_id" field.
func (m *WorkRecordMutation) SetUpstreamArticleID(s string) {
	m.upstream_article_id = &s
}

// UpstreamArticleID returns the value of the "upstream_article_id" field in the mutation.
func (m *WorkRecordMutation) UpstreamArticleID() (r string, exists bool) {
	v := m.upstream_article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamArticleID returns the old "upstream_article_id" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldUpstreamArticleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamArticleID: %w", err)
	}
	return oldValue.UpstreamArticleID, nil
}

// ResetUpstreamArticleID resets all changes to the "upstream_article_id" field.
func (m *WorkRecordMutation) ResetUpstreamArticleID() {
	m.upstream_article_id = nil
}

// SetArticleTitle sets the "article_title" field.
func (m *WorkRecordMutation) SetArticleTitle(s string) {
	m.article_title = &s
}

// ArticleTitle returns the value of the "article_title" field in the mutation.
func (m *WorkRecordMutation) ArticleTitle() (r string, exists bool) {
	v := m.article_title
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleTitle returns the old "article_title" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleTitle: %w", err)
	}
	return oldValue.ArticleTitle, nil
}

// ResetArticleTitle resets all changes to the "article_title" field.
func (m *WorkRecordMutation) ResetArticleTitle() {
	m.article_title = nil
}

// SetArticleAuthor sets the "article_author" field.
func (m *WorkRecordMutation) SetArticleAuthor(s string) {
	m.article_author = &s
}

// ArticleAuthor returns the value of the "article_author" field in the mutation.
func (m *WorkRecordMutation) ArticleAuthor() (r string, exists bool) {
	v := m.article_author
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleAuthor returns the old "article_author" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleAuthor: %w", err)
	}
	return oldValue.ArticleAuthor, nil
}

// ClearArticleAuthor clears the value of the "article_author" field.
func (m *WorkRecordMutation) ClearArticleAuthor() {
	m.article_author = nil
	m.clearedFields[workrecord.FieldArticleAuthor] = struct{}{}
}

// ArticleAuthorCleared returns if the "article_author" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticleAuthorCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticleAuthor]
	return ok
}

// ResetArticleAuthor resets all changes to the "article_author" field.
func (m *WorkRecordMutation) ResetArticleAuthor() {
	m.article_author = nil
	delete(m.clearedFields, workrecord.FieldArticleAuthor)
}

// SetArticleCategory sets the "article_category" field.
func (m *WorkRecordMutation) SetArticleCategory(s string) {
	m.article_category = &s
}

// ArticleCategory returns the value of the "article_category" field in the mutation.
func (m *WorkRecordMutation) ArticleCategory() (r string, exists bool) {
	v := m.article_category
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleCategory returns the old "article_category" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleCategory: %w", err)
	}
	return oldValue.ArticleCategory, nil
}

// ClearArticleCategory clears the value of the "article_category" field.
func (m *WorkRecordMutation) ClearArticleCategory() {
	m.article_category = nil
	m.clearedFields[workrecord.FieldArticleCategory] = struct{}{}
}

// ArticleCategoryCleared returns if the "article_category" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticleCategoryCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticleCategory]
	return ok
}

// ResetArticleCategory resets all changes to the "article_category" field.
func (m *WorkRecordMutation) ResetArticleCategory() {
	m.article_category = nil
	delete(m.clearedFields, workrecord.FieldArticleCategory)
}

// SetArticleURL sets the "article_url" field.
func (m *WorkRecordMutation) SetArticleURL(s string) {
	m.article_url = &s
}

// ArticleURL returns the value of the "article_url" field in the mutation.
func (m *WorkRecordMutation) ArticleURL() (r string, exists bool) {
	v := m.article_url
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleURL returns the old "article_url" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleURL: %w", err)
	}
	return oldValue.ArticleURL, nil
}

// ClearArticleURL clears the value of the "article_url" field.
func (m *WorkRecordMutation) ClearArticleURL() {
	m.article_url = nil
	m.clearedFields[workrecord.FieldArticleURL] = struct{}{}
}

// ArticleURLCleared returns if the "article_url" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticleURLCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticleURL]
	return ok
}

// ResetArticleURL resets all changes to the "article_url" field.
func (m *WorkRecordMutation) ResetArticleURL() {
	m.article_url = nil
	delete(m.clearedFields, workrecord.FieldArticleURL)
}

// SetArticleEditedAt sets the "article_edited_at" field.
func (m *WorkRecordMutation) SetArticleEditedAt(t time.Time) {
	m.article_edited_at = &t
}

// ArticleEditedAt returns the value of the "article_edited_at" field in the mutation.
func (m *WorkRecordMutation) ArticleEditedAt() (r time.Time, exists bool) {
	v := m.article_edited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleEditedAt returns the old "article_edited_at" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleEditedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleEditedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleEditedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleEditedAt: %w", err)
	}
	return oldValue.ArticleEditedAt, nil
}

// ClearArticleEditedAt clears the value of the "article_edited_at" field.
func (m *WorkRecordMutation) ClearArticleEditedAt() {
	m.article_edited_at = nil
	m.clearedFields[workrecord.FieldArticleEditedAt] = struct{}{}
}

// ArticleEditedAtCleared returns if the "article_edited_at" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticleEditedAtCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticleEditedAt]
	return ok
}

// ResetArticleEditedAt resets all changes to the "article_edited_at" field.
func (m *WorkRecordMutation) ResetArticleEditedAt() {
	m.article_edited_at = nil
	delete(m.clearedFields, workrecord.FieldArticleEditedAt)
}

// SetArticleContent sets the "article_content" field.
func (m *WorkRecordMutation) SetArticleContent(s string) {
	m.article_content = &s
}

// ArticleContent returns the value of the "article_content" field in the mutation.
func (m *WorkRecordMutation) ArticleContent() (r string, exists bool) {
	v := m.article_content
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleContent returns the old "article_content" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleContent: %w", err)
	}
	return oldValue.ArticleContent, nil
}

// ClearArticleContent clears the value of the "article_content" field.
func (m *WorkRecordMutation) ClearArticleContent() {
	m.article_content = nil
	m.clearedFields[workrecord.FieldArticleContent] = struct{}{}
}

// ArticleContentCleared returns if the "article_content" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticleContentCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticleContent]
	return ok
}

// ResetArticleContent resets all changes to the "article_content" field.
func (m *WorkRecordMutation) ResetArticleContent() {
	m.article_content = nil
	delete(m.clearedFields, workrecord.FieldArticleContent)
}

// SetArticleRawHTML sets the "article_raw_html" field.
func (m *WorkRecordMutation) SetArticleRawHTML(s string) {
	m.article_raw_html = &s
}

// ArticleRawHTML returns the value of the "article_raw_html" field in the mutation.
func (m *WorkRecordMutation) ArticleRawHTML() (r string, exists bool) {
	v := m.article_raw_html
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleRawHTML returns the old "article_raw_html" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleRawHTML(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleRawHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleRawHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleRawHTML: %w", err)
	}
	return oldValue.ArticleRawHTML, nil
}

// ClearArticleRawHTML clears the value of the "article_raw_html" field.
func (m *WorkRecordMutation) ClearArticleRawHTML() {
	m.article_raw_html = nil
	m.clearedFields[workrecord.FieldArticleRawHTML] = struct{}{}
}

// ArticleRawHTMLCleared returns if the "article_raw_html" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticleRawHTMLCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticleRawHTML]
	return ok
}

// ResetArticleRawHTML resets all changes to the "article_raw_html" field.
func (m *WorkRecordMutation) ResetArticleRawHTML() {
	m.article_raw_html = nil
	delete(m.clearedFields, workrecord.FieldArticleRawHTML)
}

// SetArticlePublishedAt sets the "article_published_at" field.
func (m *WorkRecordMutation) SetArticlePublishedAt(t time.Time) {
	m.article_published_at = &t
}

// ArticlePublishedAt returns the value of the "article_published_at" field in the mutation.
func (m *WorkRecordMutation) ArticlePublishedAt() (r time.Time, exists bool) {
	v := m.article_published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArticlePublishedAt returns the old "article_published_at" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticlePublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticlePublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticlePublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticlePublishedAt: %w", err)
	}
	return oldValue.ArticlePublishedAt, nil
}

// ClearArticlePublishedAt clears the value of the "article_published_at" field.
func (m *WorkRecordMutation) ClearArticlePublishedAt() {
	m.article_published_at = nil
	m.clearedFields[workrecord.FieldArticlePublishedAt] = struct{}{}
}

// ArticlePublishedAtCleared returns if the "article_published_at" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticlePublishedAtCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticlePublishedAt]
	return ok
}

// ResetArticlePublishedAt resets all changes to the "article_published_at" field.
func (m *WorkRecordMutation) ResetArticlePublishedAt() {
	m.article_published_at = nil
	delete(m.clearedFields, workrecord.FieldArticlePublishedAt)
}

// SetArticleScrapedAt sets the "article_scraped_at" field.
func (m *WorkRecordMutation) SetArticleScrapedAt(t time.Time) {
	m.article_scraped_at = &t
}

// ArticleScrapedAt returns the value of the "article_scraped_at" field in the mutation.
func (m *WorkRecordMutation) ArticleScrapedAt() (r time.Time, exists bool) {
	v := m.article_scraped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleScrapedAt returns the old "article_scraped_at" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldArticleScrapedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleScrapedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleScrapedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleScrapedAt: %w", err)
	}
	return oldValue.ArticleScrapedAt, nil
}

// ClearArticleScrapedAt clears the value of the "article_scraped_at" field.
func (m *WorkRecordMutation) ClearArticleScrapedAt() {
	m.article_scraped_at = nil
	m.clearedFields[workrecord.FieldArticleScrapedAt] = struct{}{}
}

// ArticleScrapedAtCleared returns if the "article_scraped_at" field was cleared in this mutation.
func (m *WorkRecordMutation) ArticleScrapedAtCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldArticleScrapedAt]
	return ok
}

// ResetArticleScrapedAt resets all changes to the "article_scraped_at" field.
func (m *WorkRecordMutation) ResetArticleScrapedAt() {
	m.article_scraped_at = nil
	delete(m.clearedFields, workrecord.FieldArticleScrapedAt)
}

// SetCommentContent sets the "comment_content" field.
func (m *WorkRecordMutation) SetCommentContent(s string) {
	m.comment_content = &s
}

// CommentContent returns the value of the "comment_content" field in the mutation.
func (m *WorkRecordMutation) CommentContent() (r string, exists bool) {
	v := m.comment_content
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentContent returns the old "comment_content" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldCommentContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentContent: %w", err)
	}
	return oldValue.CommentContent, nil
}

// ClearCommentContent clears the value of the "comment_content" field.
func (m *WorkRecordMutation) ClearCommentContent() {
	m.comment_content = nil
	m.clearedFields[workrecord.FieldCommentContent] = struct{}{}
}

// CommentContentCleared returns if the "comment_content" field was cleared in this mutation.
func (m *WorkRecordMutation) CommentContentCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldCommentContent]
	return ok
}

// ResetCommentContent resets all changes to the "comment_content" field.
func (m *WorkRecordMutation) ResetCommentContent() {
	m.comment_content = nil
	delete(m.clearedFields, workrecord.FieldCommentContent)
}

// SetUpstreamCommentID sets the "upstream_comment_id" field.
func (m *WorkRecordMutation) SetUpstreamCommentID(s string) {
	m.upstream_comment_id = &s
}

// UpstreamCommentID returns the value of the "upstream_comment_id" field in the mutation.
func (m *WorkRecordMutation) UpstreamCommentID() (r string, exists bool) {
	v := m.upstream_comment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamCommentID returns the old "upstream_comment_id" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldUpstreamCommentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamCommentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamCommentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamCommentID: %w", err)
	}
	return oldValue.UpstreamCommentID, nil
}

// ClearUpstreamCommentID clears the value of the "upstream_comment_id" field.
func (m *WorkRecordMutation) ClearUpstreamCommentID() {
	m.upstream_comment_id = nil
	m.clearedFields[workrecord.FieldUpstreamCommentID] = struct{}{}
}

// UpstreamCommentIDCleared returns if the "upstream_comment_id" field was cleared in this mutation.
func (m *WorkRecordMutation) UpstreamCommentIDCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldUpstreamCommentID]
	return ok
}

// ResetUpstreamCommentID resets all changes to the "upstream_comment_id" field.
func (m *WorkRecordMutation) ResetUpstreamCommentID() {
	m.upstream_comment_id = nil
	delete(m.clearedFields, workrecord.FieldUpstreamCommentID)
}

// SetAiModelName sets the "ai_model_name" field.
func (m *WorkRecordMutation) SetAiModelName(s string) {
	m.ai_model_name = &s
}

// AiModelName returns the value of the "ai_model_name" field in the mutation.
func (m *WorkRecordMutation) AiModelName() (r string, exists bool) {
	v := m.ai_model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAiModelName returns the old "ai_model_name" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldAiModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiModelName: %w", err)
	}
	return oldValue.AiModelName, nil
}

// ClearAiModelName clears the value of the "ai_model_name" field.
func (m *WorkRecordMutation) ClearAiModelName() {
	m.ai_model_name = nil
	m.clearedFields[workrecord.FieldAiModelName] = struct{}{}
}

// AiModelNameCleared returns if the "ai_model_name" field was cleared in this mutation.
func (m *WorkRecordMutation) AiModelNameCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldAiModelName]
	return ok
}

// ResetAiModelName resets all changes to the "ai_model_name" field.
func (m *WorkRecordMutation) ResetAiModelName() {
	m.ai_model_name = nil
	delete(m.clearedFields, workrecord.FieldAiModelName)
}

// SetAiVendorTag sets the "ai_vendor_tag" field.
func (m *WorkRecordMutation) SetAiVendorTag(s string) {
	m.ai_vendor_tag = &s
}

// AiVendorTag returns the value of the "ai_vendor_tag" field in the mutation.
func (m *WorkRecordMutation) AiVendorTag() (r string, exists bool) {
	v := m.ai_vendor_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldAiVendorTag returns the old "ai_vendor_tag" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldAiVendorTag(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiVendorTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiVendorTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiVendorTag: %w", err)
	}
	return oldValue.AiVendorTag, nil
}

// ClearAiVendorTag clears the value of the "ai_vendor_tag" field.
func (m *WorkRecordMutation) ClearAiVendorTag() {
	m.ai_vendor_tag = nil
	m.clearedFields[workrecord.FieldAiVendorTag] = struct{}{}
}

// AiVendorTagCleared returns if the "ai_vendor_tag" field was cleared in this mutation.
func (m *WorkRecordMutation) AiVendorTagCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldAiVendorTag]
	return ok
}

// ResetAiVendorTag resets all changes to the "ai_vendor_tag" field.
func (m *WorkRecordMutation) ResetAiVendorTag() {
	m.ai_vendor_tag = nil
	delete(m.clearedFields, workrecord.FieldAiVendorTag)
}

// SetGenerationTokens sets the "generation_tokens" field.
func (m *WorkRecordMutation) SetGenerationTokens(i int) {
	m.generation_tokens = &i
	m.addgeneration_tokens = nil
}

// GenerationTokens returns the value of the "generation_tokens" field in the mutation.
func (m *WorkRecordMutation) GenerationTokens() (r int, exists bool) {
	v := m.generation_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTokens returns the old "generation_tokens" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldGenerationTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTokens: %w", err)
	}
	return oldValue.GenerationTokens, nil
}

// AddGenerationTokens adds i to the "generation_tokens" field.
func (m *WorkRecordMutation) AddGenerationTokens(i int) {
	if m.addgeneration_tokens != nil {
		*m.addgeneration_tokens += i
	} else {
		m.addgeneration_tokens = &i
	}
}

// AddedGenerationTokens returns the value that was added to the "generation_tokens" field in this mutation.
func (m *WorkRecordMutation) AddedGenerationTokens() (r int, exists bool) {
	v := m.addgeneration_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationTokens clears the value of the "generation_tokens" field.
func (m *WorkRecordMutation) ClearGenerationTokens() {
	m.generation_tokens = nil
	m.addgeneration_tokens = nil
	m.clearedFields[workrecord.FieldGenerationTokens] = struct{}{}
}

// GenerationTokensCleared returns if the "generation_tokens" field was cleared in this mutation.
func (m *WorkRecordMutation) GenerationTokensCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldGenerationTokens]
	return ok
}

// ResetGenerationTokens resets all changes to the "generation_tokens" field.
func (m *WorkRecordMutation) ResetGenerationTokens() {
	m.generation_tokens = nil
	m.addgeneration_tokens = nil
	delete(m.clearedFields, workrecord.FieldGenerationTokens)
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (m *WorkRecordMutation) SetGenerationTimeMs(i int) {
	m.generation_time_ms = &i
	m.addgeneration_time_ms = nil
}

// GenerationTimeMs returns the value of the "generation_time_ms" field in the mutation.
func (m *WorkRecordMutation) GenerationTimeMs() (r int, exists bool) {
	v := m.generation_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTimeMs returns the old "generation_time_ms" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldGenerationTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTimeMs: %w", err)
	}
	return oldValue.GenerationTimeMs, nil
}

// AddGenerationTimeMs adds i to the "generation_time_ms" field.
func (m *WorkRecordMutation) AddGenerationTimeMs(i int) {
	if m.addgeneration_time_ms != nil {
		*m.addgeneration_time_ms += i
	} else {
		m.addgeneration_time_ms = &i
	}
}

// AddedGenerationTimeMs returns the value that was added to the "generation_time_ms" field in this mutation.
func (m *WorkRecordMutation) AddedGenerationTimeMs() (r int, exists bool) {
	v := m.addgeneration_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearGenerationTimeMs clears the value of the "generation_time_ms" field.
func (m *WorkRecordMutation) ClearGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	m.clearedFields[workrecord.FieldGenerationTimeMs] = struct{}{}
}

// GenerationTimeMsCleared returns if the "generation_time_ms" field was cleared in this mutation.
func (m *WorkRecordMutation) GenerationTimeMsCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldGenerationTimeMs]
	return ok
}

// ResetGenerationTimeMs resets all changes to the "generation_time_ms" field.
func (m *WorkRecordMutation) ResetGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
	delete(m.clearedFields, workrecord.FieldGenerationTimeMs)
}

// SetStatus sets the "status" field.
func (m *WorkRecordMutation) SetStatus(w workrecord.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkRecordMutation) Status() (r workrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldStatus(ctx context.Context) (v workrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkRecordMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workrecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workrecord.FieldErrorMessage)
}

// SetRetryCount sets the "retry_count" field.
func (m *WorkRecordMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *WorkRecordMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *WorkRecordMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *WorkRecordMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *WorkRecordMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetPostedAt sets the "posted_at" field.
func (m *WorkRecordMutation) SetPostedAt(t time.Time) {
	m.posted_at = &t
}

// PostedAt returns the value of the "posted_at" field in the mutation.
func (m *WorkRecordMutation) PostedAt() (r time.Time, exists bool) {
	v := m.posted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedAt returns the old "posted_at" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldPostedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedAt: %w", err)
	}
	return oldValue.PostedAt, nil
}

// ClearPostedAt clears the value of the "posted_at" field.
func (m *WorkRecordMutation) ClearPostedAt() {
	m.posted_at = nil
	m.clearedFields[workrecord.FieldPostedAt] = struct{}{}
}

// PostedAtCleared returns if the "posted_at" field was cleared in this mutation.
func (m *WorkRecordMutation) PostedAtCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldPostedAt]
	return ok
}

// ResetPostedAt resets all changes to the "posted_at" field.
func (m *WorkRecordMutation) ResetPostedAt() {
	m.posted_at = nil
	delete(m.clearedFields, workrecord.FieldPostedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *WorkRecordMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *WorkRecordMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *WorkRecordMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[workrecord.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *WorkRecordMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[workrecord.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *WorkRecordMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, workrecord.FieldFailedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkRecord entity.
// If the WorkRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProcess clears the "process" edge to the MonitoringProcess entity.
func (m *WorkRecordMutation) ClearProcess() {
	m.clearedprocess = true
	m.clearedFields[workrecord.FieldProcessID] = struct{}{}
}

// ProcessCleared reports if the "process" edge to the MonitoringProcess entity was cleared.
func (m *WorkRecordMutation) ProcessCleared() bool {
	return m.clearedprocess
}

// ProcessIDs returns the "process" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessID instead. It exists only for internal usage by the builders.
func (m *WorkRecordMutation) ProcessIDs() (ids []string) {
	if id := m.process; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcess resets all changes to the "process" edge.
func (m *WorkRecordMutation) ResetProcess() {
	m.process = nil
	m.clearedprocess = false
}

// Where appends a list predicates to the WorkRecordMutation builder.
func (m *WorkRecordMutation) Where(ps ...predicate.WorkRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkRecord).
func (m *WorkRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkRecordMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.process != nil {
		fields = append(fields, workrecord.FieldProcessID)
	}
	if m.user_id != nil {
		fields = append(fields, workrecord.FieldUserID)
	}
	if m.credential_id != nil {
		fields = append(fields, workrecord.FieldCredentialID)
	}
	if m.template_id != nil {
		fields = append(fields, workrecord.FieldTemplateID)
	}
	if m.llm_provider_id != nil {
		fields = append(fields, workrecord.FieldLlmProviderID)
	}
	if m.upstream_article_id != nil {
		fields = append(fields, workrecord.FieldUpstreamArticleID)
	}
	if m.article_title != nil {
		fields = append(fields, workrecord.FieldArticleTitle)
	}
	if m.article_author != nil {
		fields = append(fields, workrecord.FieldArticleAuthor)
	}
	if m.article_category != nil {
		fields = append(fields, workrecord.FieldArticleCategory)
	}
	if m.article_url != nil {
		fields = append(fields, workrecord.FieldArticleURL)
	}
	if m.article_edited_at != nil {
		fields = append(fields, workrecord.FieldArticleEditedAt)
	}
	if m.article_content != nil {
		fields = append(fields, workrecord.FieldArticleContent)
	}
	if m.article_raw_html != nil {
		fields = append(fields, workrecord.FieldArticleRawHTML)
	}
	if m.article_published_at != nil {
		fields = append(fields, workrecord.FieldArticlePublishedAt)
	}
	if m.article_scraped_at != nil {
		fields = append(fields, workrecord.FieldArticleScrapedAt)
	}
	if m.comment_content != nil {
		fields = append(fields, workrecord.FieldCommentContent)
	}
	if m.upstream_comment_id != nil {
		fields = append(fields, workrecord.FieldUpstreamCommentID)
	}
	if m.ai_model_name != nil {
		fields = append(fields, workrecord.FieldAiModelName)
	}
	if m.ai_vendor_tag != nil {
		fields = append(fields, workrecord.FieldAiVendorTag)
	}
	if m.generation_tokens != nil {
		fields = append(fields, workrecord.FieldGenerationTokens)
	}
	if m.generation_time_ms != nil {
		fields = append(fields, workrecord.FieldGenerationTimeMs)
	}
	if m.status != nil {
		fields = append(fields, workrecord.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, workrecord.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, workrecord.FieldRetryCount)
	}
	if m.posted_at != nil {
		fields = append(fields, workrecord.FieldPostedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, workrecord.FieldFailedAt)
	}
	if m.created_at != nil {
		fields = append(fields, workrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workrecord.FieldProcessID:
		return m.ProcessID()
	case workrecord.FieldUserID:
		return m.UserID()
	case workrecord.FieldCredentialID:
		return m.CredentialID()
	case workrecord.FieldTemplateID:
		return m.TemplateID()
	case workrecord.FieldLlmProviderID:
		return m.LlmProviderID()
	case workrecord.FieldUpstreamArticleID:
		return m.UpstreamArticleID()
	case workrecord.FieldArticleTitle:
		return m.ArticleTitle()
	case workrecord.FieldArticleAuthor:
		return m.ArticleAuthor()
	case workrecord.FieldArticleCategory:
		return m.ArticleCategory()
	case workrecord.FieldArticleURL:
		return m.ArticleURL()
	case workrecord.FieldArticleEditedAt:
		return m.ArticleEditedAt()
	case workrecord.FieldArticleContent:
		return m.ArticleContent()
	case workrecord.FieldArticleRawHTML:
		return m.ArticleRawHTML()
	case workrecord.FieldArticlePublishedAt:
		return m.ArticlePublishedAt()
	case workrecord.FieldArticleScrapedAt:
		return m.ArticleScrapedAt()
	case workrecord.FieldCommentContent:
		return m.CommentContent()
	case workrecord.FieldUpstreamCommentID:
		return m.UpstreamCommentID()
	case workrecord.FieldAiModelName:
		return m.AiModelName()
	case workrecord.FieldAiVendorTag:
		return m.AiVendorTag()
	case workrecord.FieldGenerationTokens:
		return m.GenerationTokens()
	case workrecord.FieldGenerationTimeMs:
		return m.GenerationTimeMs()
	case workrecord.FieldStatus:
		return m.Status()
	case workrecord.FieldErrorMessage:
		return m.ErrorMessage()
	case workrecord.FieldRetryCount:
		return m.RetryCount()
	case workrecord.FieldPostedAt:
		return m.PostedAt()
	case workrecord.FieldFailedAt:
		return m.FailedAt()
	case workrecord.FieldCreatedAt:
		return m.CreatedAt()
	case workrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workrecord.FieldProcessID:
		return m.OldProcessID(ctx)
	case workrecord.FieldUserID:
		return m.OldUserID(ctx)
	case workrecord.FieldCredentialID:
		return m.OldCredentialID(ctx)
	case workrecord.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case workrecord.FieldLlmProviderID:
		return m.OldLlmProviderID(ctx)
	case workrecord.FieldUpstreamArticleID:
		return m.OldUpstreamArticleID(ctx)
	case workrecord.FieldArticleTitle:
		return m.OldArticleTitle(ctx)
	case workrecord.FieldArticleAuthor:
		return m.OldArticleAuthor(ctx)
	case workrecord.FieldArticleCategory:
		return m.OldArticleCategory(ctx)
	case workrecord.FieldArticleURL:
		return m.OldArticleURL(ctx)
	case workrecord.FieldArticleEditedAt:
		return m.OldArticleEditedAt(ctx)
	case workrecord.FieldArticleContent:
		return m.OldArticleContent(ctx)
	case workrecord.FieldArticleRawHTML:
		return m.OldArticleRawHTML(ctx)
	case workrecord.FieldArticlePublishedAt:
		return m.OldArticlePublishedAt(ctx)
	case workrecord.FieldArticleScrapedAt:
		return m.OldArticleScrapedAt(ctx)
	case workrecord.FieldCommentContent:
		return m.OldCommentContent(ctx)
	case workrecord.FieldUpstreamCommentID:
		return m.OldUpstreamCommentID(ctx)
	case workrecord.FieldAiModelName:
		return m.OldAiModelName(ctx)
	case workrecord.FieldAiVendorTag:
		return m.OldAiVendorTag(ctx)
	case workrecord.FieldGenerationTokens:
		return m.OldGenerationTokens(ctx)
	case workrecord.FieldGenerationTimeMs:
		return m.OldGenerationTimeMs(ctx)
	case workrecord.FieldStatus:
		return m.OldStatus(ctx)
	case workrecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workrecord.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case workrecord.FieldPostedAt:
		return m.OldPostedAt(ctx)
	case workrecord.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case workrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workrecord.FieldProcessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessID(v)
		return nil
	case workrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case workrecord.FieldCredentialID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialID(v)
		return nil
	case workrecord.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case workrecord.FieldLlmProviderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProviderID(v)
		return nil
	case workrecord.FieldUpstreamArticleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamArticleID(v)
		return nil
	case workrecord.FieldArticleTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleTitle(v)
		return nil
	case workrecord.FieldArticleAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleAuthor(v)
		return nil
	case workrecord.FieldArticleCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleCategory(v)
		return nil
	case workrecord.FieldArticleURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleURL(v)
		return nil
	case workrecord.FieldArticleEditedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleEditedAt(v)
		return nil
	case workrecord.FieldArticleContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleContent(v)
		return nil
	case workrecord.FieldArticleRawHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleRawHTML(v)
		return nil
	case workrecord.FieldArticlePublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticlePublishedAt(v)
		return nil
	case workrecord.FieldArticleScrapedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleScrapedAt(v)
		return nil
	case workrecord.FieldCommentContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentContent(v)
		return nil
	case workrecord.FieldUpstreamCommentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamCommentID(v)
		return nil
	case workrecord.FieldAiModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiModelName(v)
		return nil
	case workrecord.FieldAiVendorTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiVendorTag(v)
		return nil
	case workrecord.FieldGenerationTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTokens(v)
		return nil
	case workrecord.FieldGenerationTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTimeMs(v)
		return nil
	case workrecord.FieldStatus:
		v, ok := value.(workrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workrecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workrecord.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case workrecord.FieldPostedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedAt(v)
		return nil
	case workrecord.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case workrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkRecordMutation) AddedFields() []string {
	var fields []string
	if m.addgeneration_tokens != nil {
		fields = append(fields, workrecord.FieldGenerationTokens)
	}
	if m.addgeneration_time_ms != nil {
		fields = append(fields, workrecord.FieldGenerationTimeMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, workrecord.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workrecord.FieldGenerationTokens:
		return m.AddedGenerationTokens()
	case workrecord.FieldGenerationTimeMs:
		return m.AddedGenerationTimeMs()
	case workrecord.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workrecord.FieldGenerationTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTokens(v)
		return nil
	case workrecord.FieldGenerationTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTimeMs(v)
		return nil
	case workrecord.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown WorkRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workrecord.FieldArticleAuthor) {
		fields = append(fields, workrecord.FieldArticleAuthor)
	}
	if m.FieldCleared(workrecord.FieldArticleCategory) {
		fields = append(fields, workrecord.FieldArticleCategory)
	}
	if m.FieldCleared(workrecord.FieldArticleURL) {
		fields = append(fields, workrecord.FieldArticleURL)
	}
	if m.FieldCleared(workrecord.FieldArticleEditedAt) {
		fields = append(fields, workrecord.FieldArticleEditedAt)
	}
	if m.FieldCleared(workrecord.FieldArticleContent) {
		fields = append(fields, workrecord.FieldArticleContent)
	}
	if m.FieldCleared(workrecord.FieldArticleRawHTML) {
		fields = append(fields, workrecord.FieldArticleRawHTML)
	}
	if m.FieldCleared(workrecord.FieldArticlePublishedAt) {
		fields = append(fields, workrecord.FieldArticlePublishedAt)
	}
	if m.FieldCleared(workrecord.FieldArticleScrapedAt) {
		fields = append(fields, workrecord.FieldArticleScrapedAt)
	}
	if m.FieldCleared(workrecord.FieldCommentContent) {
		fields = append(fields, workrecord.FieldCommentContent)
	}
	if m.FieldCleared(workrecord.FieldUpstreamCommentID) {
		fields = append(fields, workrecord.FieldUpstreamCommentID)
	}
	if m.FieldCleared(workrecord.FieldAiModelName) {
		fields = append(fields, workrecord.FieldAiModelName)
	}
	if m.FieldCleared(workrecord.FieldAiVendorTag) {
		fields = append(fields, workrecord.FieldAiVendorTag)
	}
	if m.FieldCleared(workrecord.FieldGenerationTokens) {
		fields = append(fields, workrecord.FieldGenerationTokens)
	}
	if m.FieldCleared(workrecord.FieldGenerationTimeMs) {
		fields = append(fields, workrecord.FieldGenerationTimeMs)
	}
	if m.FieldCleared(workrecord.FieldErrorMessage) {
		fields = append(fields, workrecord.FieldErrorMessage)
	}
	if m.FieldCleared(workrecord.FieldPostedAt) {
		fields = append(fields, workrecord.FieldPostedAt)
	}
	if m.FieldCleared(workrecord.FieldFailedAt) {
		fields = append(fields, workrecord.FieldFailedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkRecordMutation) ClearField(name string) error {
	switch name {
	case workrecord.FieldArticleAuthor:
		m.ClearArticleAuthor()
		return nil
	case workrecord.FieldArticleCategory:
		m.ClearArticleCategory()
		return nil
	case workrecord.FieldArticleURL:
		m.ClearArticleURL()
		return nil
	case workrecord.FieldArticleEditedAt:
		m.ClearArticleEditedAt()
		return nil
	case workrecord.FieldArticleContent:
		m.ClearArticleContent()
		return nil
	case workrecord.FieldArticleRawHTML:
		m.ClearArticleRawHTML()
		return nil
	case workrecord.FieldArticlePublishedAt:
		m.ClearArticlePublishedAt()
		return nil
	case workrecord.FieldArticleScrapedAt:
		m.ClearArticleScrapedAt()
		return nil
	case workrecord.FieldCommentContent:
		m.ClearCommentContent()
		return nil
	case workrecord.FieldUpstreamCommentID:
		m.ClearUpstreamCommentID()
		return nil
	case workrecord.FieldAiModelName:
		m.ClearAiModelName()
		return nil
	case workrecord.FieldAiVendorTag:
		m.ClearAiVendorTag()
		return nil
	case workrecord.FieldGenerationTokens:
		m.ClearGenerationTokens()
		return nil
	case workrecord.FieldGenerationTimeMs:
		m.ClearGenerationTimeMs()
		return nil
	case workrecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workrecord.FieldPostedAt:
		m.ClearPostedAt()
		return nil
	case workrecord.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkRecordMutation) ResetField(name string) error {
	switch name {
	case workrecord.FieldProcessID:
		m.ResetProcessID()
		return nil
	case workrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case workrecord.FieldCredentialID:
		m.ResetCredentialID()
		return nil
	case workrecord.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case workrecord.FieldLlmProviderID:
		m.ResetLlmProviderID()
		return nil
	case workrecord.FieldUpstreamArticleID:
		m.ResetUpstreamArticleID()
		return nil
	case workrecord.FieldArticleTitle:
		m.ResetArticleTitle()
		return nil
	case workrecord.FieldArticleAuthor:
		m.ResetArticleAuthor()
		return nil
	case workrecord.FieldArticleCategory:
		m.ResetArticleCategory()
		return nil
	case workrecord.FieldArticleURL:
		m.ResetArticleURL()
		return nil
	case workrecord.FieldArticleEditedAt:
		m.ResetArticleEditedAt()
		return nil
	case workrecord.FieldArticleContent:
		m.ResetArticleContent()
		return nil
	case workrecord.FieldArticleRawHTML:
		m.ResetArticleRawHTML()
		return nil
	case workrecord.FieldArticlePublishedAt:
		m.ResetArticlePublishedAt()
		return nil
	case workrecord.FieldArticleScrapedAt:
		m.ResetArticleScrapedAt()
		return nil
	case workrecord.FieldCommentContent:
		m.ResetCommentContent()
		return nil
	case workrecord.FieldUpstreamCommentID:
		m.ResetUpstreamCommentID()
		return nil
	case workrecord.FieldAiModelName:
		m.ResetAiModelName()
		return nil
	case workrecord.FieldAiVendorTag:
		m.ResetAiVendorTag()
		return nil
	case workrecord.FieldGenerationTokens:
		m.ResetGenerationTokens()
		return nil
	case workrecord.FieldGenerationTimeMs:
		m.ResetGenerationTimeMs()
		return nil
	case workrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case workrecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workrecord.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case workrecord.FieldPostedAt:
		m.ResetPostedAt()
		return nil
	case workrecord.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case workrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.process != nil {
		edges = append(edges, workrecord.EdgeProcess)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workrecord.EdgeProcess:
		if id := m.process; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprocess {
		edges = append(edges, workrecord.EdgeProcess)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case workrecord.EdgeProcess:
		return m.clearedprocess
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkRecordMutation) ClearEdge(name string) error {
	switch name {
	case workrecord.EdgeProcess:
		m.ClearProcess()
		return nil
	}
	return fmt.Errorf("unknown WorkRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkRecordMutation) ResetEdge(name string) error {
	switch name {
	case workrecord.EdgeProcess:
		m.ResetProcess()
		return nil
	}
	return fmt.Errorf("unknown WorkRecord edge %s", name)
}
