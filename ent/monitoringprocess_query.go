// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yourmoment/yourmoment/ent/monitoringprocess"
	"github.com/yourmoment/yourmoment/ent/predicate"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/stagetask"
	"github.com/yourmoment/yourmoment/ent/upstreamcredential"
	"github.com/yourmoment/yourmoment/ent/user"
	"github.com/yourmoment/yourmoment/ent/workrecord"
)

// MonitoringProcessQuery is the builder for querying MonitoringProcess entities.
type MonitoringProcessQuery struct {
	config
	ctx             *QueryContext
	order           []monitoringprocess.OrderOption
	inters          []Interceptor
	predicates      []predicate.MonitoringProcess
	withOwner       *UserQuery
	withCredentials *UpstreamCredentialQuery
	withTemplates   *PromptTemplateQuery
	withWorkRecords *WorkRecordQuery
	withStageTasks  *StageTaskQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MonitoringProcessQuery builder.
func (_q *MonitoringProcessQuery) Where(ps ...predicate.MonitoringProcess) *MonitoringProcessQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MonitoringProcessQuery) Limit(limit int) *MonitoringProcessQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MonitoringProcessQuery) Offset(offset int) *MonitoringProcessQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MonitoringProcessQuery) Unique(unique bool) *MonitoringProcessQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MonitoringProcessQuery) Order(o ...monitoringprocess.OrderOption) *MonitoringProcessQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOwner chains the current query on the "owner" edge.
func (_q *MonitoringProcessQuery) QueryOwner() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, monitoringprocess.OwnerTable, monitoringprocess.OwnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCredentials chains the current query on the "credentials" edge.
func (_q *MonitoringProcessQuery) QueryCredentials() *UpstreamCredentialQuery {
	query := (&UpstreamCredentialClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, selector),
			sqlgraph.To(upstreamcredential.Table, upstreamcredential.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, monitoringprocess.CredentialsTable, monitoringprocess.CredentialsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTemplates chains the current query on the "templates" edge.
func (_q *MonitoringProcessQuery) QueryTemplates() *PromptTemplateQuery {
	query := (&PromptTemplateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, selector),
			sqlgraph.To(prompttemplate.Table, prompttemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, monitoringprocess.TemplatesTable, monitoringprocess.TemplatesPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWorkRecords chains the current query on the "work_records" edge.
func (_q *MonitoringProcessQuery) QueryWorkRecords() *WorkRecordQuery {
	query := (&WorkRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, selector),
			sqlgraph.To(workrecord.Table, workrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, monitoringprocess.WorkRecordsTable, monitoringprocess.WorkRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStageTasks chains the current query on the "stage_tasks" edge.
func (_q *MonitoringProcessQuery) QueryStageTasks() *StageTaskQuery {
	query := (&StageTaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringprocess.Table, monitoringprocess.FieldID, selector),
			sqlgraph.To(stagetask.Table, stagetask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, monitoringprocess.StageTasksTable, monitoringprocess.StageTasksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MonitoringProcess entity from the query.
// Returns a *NotFoundError when no MonitoringProcess was found.
func (_q *MonitoringProcessQuery) First(ctx context.Context) (*MonitoringProcess, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{monitoringprocess.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MonitoringProcessQuery) FirstX(ctx context.Context) *MonitoringProcess {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MonitoringProcess ID from the query.
// Returns a *NotFoundError when no MonitoringProcess ID was found.
func (_q *MonitoringProcessQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{monitoringprocess.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MonitoringProcessQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MonitoringProcess entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MonitoringProcess entity is found.
// Returns a *NotFoundError when no MonitoringProcess entities are found.
func (_q *MonitoringProcessQuery) Only(ctx context.Context) (*MonitoringProcess, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{monitoringprocess.Label}
	default:
		return nil, &NotSingularError{monitoringprocess.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MonitoringProcessQuery) OnlyX(ctx context.Context) *MonitoringProcess {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MonitoringProcess ID in the query.
// Returns a *NotSingularError when more than one MonitoringProcess ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MonitoringProcessQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{monitoringprocess.Label}
	default:
		err = &NotSingularError{monitoringprocess.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MonitoringProcessQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MonitoringProcesses.
func (_q *MonitoringProcessQuery) All(ctx context.Context) ([]*MonitoringProcess, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MonitoringProcess, *MonitoringProcessQuery]()
	return withInterceptors[[]*MonitoringProcess](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MonitoringProcessQuery) AllX(ctx context.Context) []*MonitoringProcess {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MonitoringProcess IDs.
func (_q *MonitoringProcessQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(monitoringprocess.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MonitoringProcessQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MonitoringProcessQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MonitoringProcessQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MonitoringProcessQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MonitoringProcessQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MonitoringProcessQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MonitoringProcessQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MonitoringProcessQuery) Clone() *MonitoringProcessQuery {
	if _q == nil {
		return nil
	}
	return &MonitoringProcessQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]monitoringprocess.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.MonitoringProcess{}, _q.predicates...),
		withOwner:       _q.withOwner.Clone(),
		withCredentials: _q.withCredentials.Clone(),
		withTemplates:   _q.withTemplates.Clone(),
		withWorkRecords: _q.withWorkRecords.Clone(),
		withStageTasks:  _q.withStageTasks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOwner tells the query-builder to eager-load the nodes that are connected to
// the "owner" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoringProcessQuery) WithOwner(opts ...func(*UserQuery)) *MonitoringProcessQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOwner = query
	return _q
}

// WithCredentials tells the query-builder to eager-load the nodes that are connected to
// the "credentials" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoringProcessQuery) WithCredentials(opts ...func(*UpstreamCredentialQuery)) *MonitoringProcessQuery {
	query := (&UpstreamCredentialClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCredentials = query
	return _q
}

// WithTemplates tells the query-builder to eager-load the nodes that are connected to
// the "templates" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoringProcessQuery) WithTemplates(opts ...func(*PromptTemplateQuery)) *MonitoringProcessQuery {
	query := (&PromptTemplateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTemplates = query
	return _q
}

// WithWorkRecords tells the query-builder to eager-load the nodes that are connected to
// the "work_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoringProcessQuery) WithWorkRecords(opts ...func(*WorkRecordQuery)) *MonitoringProcessQuery {
	query := (&WorkRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkRecords = query
	return _q
}

// WithStageTasks tells the query-builder to eager-load the nodes that are connected to
// the "stage_tasks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoringProcessQuery) WithStageTasks(opts ...func(*StageTaskQuery)) *MonitoringProcessQuery {
	query := (&StageTaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStageTasks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MonitoringProcess.Query().
//		GroupBy(monitoringprocess.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MonitoringProcessQuery) GroupBy(field string, fields ...string) *MonitoringProcessGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MonitoringProcessGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = monitoringprocess.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.MonitoringProcess.Query().
//		Select(monitoringprocess.FieldUserID).
//		Scan(ctx, &v)
func (_q *MonitoringProcessQuery) Select(fields ...string) *MonitoringProcessSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MonitoringProcessSelect{MonitoringProcessQuery: _q}
	sbuild.label = monitoringprocess.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MonitoringProcessSelect configured with the given aggregations.
func (_q *MonitoringProcessQuery) Aggregate(fns ...AggregateFunc) *MonitoringProcessSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MonitoringProcessQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !monitoringprocess.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MonitoringProcessQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MonitoringProcess, error) {
	var (
		nodes       = []*MonitoringProcess{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withOwner != nil,
			_q.withCredentials != nil,
			_q.withTemplates != nil,
			_q.withWorkRecords != nil,
			_q.withStageTasks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MonitoringProcess).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MonitoringProcess{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOwner; query != nil {
		if err := _q.loadOwner(ctx, query, nodes, nil,
			func(n *MonitoringProcess, e *User) { n.Edges.Owner = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCredentials; query != nil {
		if err := _q.loadCredentials(ctx, query, nodes,
			func(n *MonitoringProcess) { n.Edges.Credentials = []*UpstreamCredential{} },
			func(n *MonitoringProcess, e *UpstreamCredential) {
				n.Edges.Credentials = append(n.Edges.Credentials, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withTemplates; query != nil {
		if err := _q.loadTemplates(ctx, query, nodes,
			func(n *MonitoringProcess) { n.Edges.Templates = []*PromptTemplate{} },
			func(n *MonitoringProcess, e *PromptTemplate) { n.Edges.Templates = append(n.Edges.Templates, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWorkRecords; query != nil {
		if err := _q.loadWorkRecords(ctx, query, nodes,
			func(n *MonitoringProcess) { n.Edges.WorkRecords = []*WorkRecord{} },
			func(n *MonitoringProcess, e *WorkRecord) { n.Edges.WorkRecords = append(n.Edges.WorkRecords, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStageTasks; query != nil {
		if err := _q.loadStageTasks(ctx, query, nodes,
			func(n *MonitoringProcess) { n.Edges.StageTasks = []*StageTask{} },
			func(n *MonitoringProcess, e *StageTask) { n.Edges.StageTasks = append(n.Edges.StageTasks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MonitoringProcessQuery) loadOwner(ctx context.Context, query *UserQuery, nodes []*MonitoringProcess, init func(*MonitoringProcess), assign func(*MonitoringProcess, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*MonitoringProcess)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MonitoringProcessQuery) loadCredentials(ctx context.Context, query *UpstreamCredentialQuery, nodes []*MonitoringProcess, init func(*MonitoringProcess), assign func(*MonitoringProcess, *UpstreamCredential)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*MonitoringProcess)
	nids := make(map[string]map[*MonitoringProcess]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(monitoringprocess.CredentialsTable)
		s.Join(joinT).On(s.C(upstreamcredential.FieldID), joinT.C(monitoringprocess.CredentialsPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(monitoringprocess.CredentialsPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(monitoringprocess.CredentialsPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*MonitoringProcess]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*UpstreamCredential](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "credentials" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *MonitoringProcessQuery) loadTemplates(ctx context.Context, query *PromptTemplateQuery, nodes []*MonitoringProcess, init func(*MonitoringProcess), assign func(*MonitoringProcess, *PromptTemplate)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*MonitoringProcess)
	nids := make(map[string]map[*MonitoringProcess]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(monitoringprocess.TemplatesTable)
		s.Join(joinT).On(s.C(prompttemplate.FieldID), joinT.C(monitoringprocess.TemplatesPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(monitoringprocess.TemplatesPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(monitoringprocess.TemplatesPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*MonitoringProcess]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*PromptTemplate](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "templates" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *MonitoringProcessQuery) loadWorkRecords(ctx context.Context, query *WorkRecordQuery, nodes []*MonitoringProcess, init func(*MonitoringProcess), assign func(*MonitoringProcess, *WorkRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*MonitoringProcess)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workrecord.FieldProcessID)
	}
	query.Where(predicate.WorkRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(monitoringprocess.WorkRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ProcessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "process_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MonitoringProcessQuery) loadStageTasks(ctx context.Context, query *StageTaskQuery, nodes []*MonitoringProcess, init func(*MonitoringProcess), assign func(*MonitoringProcess, *StageTask)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*MonitoringProcess)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(stagetask.FieldProcessID)
	}
	query.Where(predicate.StageTask(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(monitoringprocess.StageTasksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ProcessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "process_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MonitoringProcessQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MonitoringProcessQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(monitoringprocess.Table, monitoringprocess.Columns, sqlgraph.NewFieldSpec(monitoringprocess.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoringprocess.FieldID)
		for i := range fields {
			if fields[i] != monitoringprocess.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOwner != nil {
			_spec.Node.AddColumnOnce(monitoringprocess.FieldUserID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MonitoringProcessQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(monitoringprocess.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = monitoringprocess.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *MonitoringProcessQuery) ForUpdate(opts ...sql.LockOption) *MonitoringProcessQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *MonitoringProcessQuery) ForShare(opts ...sql.LockOption) *MonitoringProcessQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// MonitoringProcessGroupBy is the group-by builder for MonitoringProcess entities.
type MonitoringProcessGroupBy struct {
	selector
	build *MonitoringProcessQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MonitoringProcessGroupBy) Aggregate(fns ...AggregateFunc) *MonitoringProcessGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MonitoringProcessGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MonitoringProcessQuery, *MonitoringProcessGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MonitoringProcessGroupBy) sqlScan(ctx context.Context, root *MonitoringProcessQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MonitoringProcessSelect is the builder for selecting fields of MonitoringProcess entities.
type MonitoringProcessSelect struct {
	*MonitoringProcessQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MonitoringProcessSelect) Aggregate(fns ...AggregateFunc) *MonitoringProcessSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MonitoringProcessSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MonitoringProcessQuery, *MonitoringProcessSelect](ctx, _s.MonitoringProcessQuery, _s, _s.inters, v)
}

func (_s *MonitoringProcessSelect) sqlScan(ctx context.Context, root *MonitoringProcessQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
