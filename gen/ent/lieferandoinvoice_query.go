// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/orderitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/google/uuid"
)

// LieferandoInvoiceQuery is the builder for querying LieferandoInvoice entities.
type LieferandoInvoiceQuery struct {
	config
	ctx            *QueryContext
	order          []lieferandoinvoice.OrderOption
	inters         []Interceptor
	predicates     []predicate.LieferandoInvoice
	withOrderItems *OrderItemQuery
	withTipItems   *TipItemQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LieferandoInvoiceQuery builder.
func (_q *LieferandoInvoiceQuery) Where(ps ...predicate.LieferandoInvoice) *LieferandoInvoiceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *LieferandoInvoiceQuery) Limit(limit int) *LieferandoInvoiceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *LieferandoInvoiceQuery) Offset(offset int) *LieferandoInvoiceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *LieferandoInvoiceQuery) Unique(unique bool) *LieferandoInvoiceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *LieferandoInvoiceQuery) Order(o ...lieferandoinvoice.OrderOption) *LieferandoInvoiceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOrderItems chains the current query on the "order_items" edge.
func (_q *LieferandoInvoiceQuery) QueryOrderItems() *OrderItemQuery {
	query := (&OrderItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lieferandoinvoice.Table, lieferandoinvoice.FieldID, selector),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lieferandoinvoice.OrderItemsTable, lieferandoinvoice.OrderItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTipItems chains the current query on the "tip_items" edge.
func (_q *LieferandoInvoiceQuery) QueryTipItems() *TipItemQuery {
	query := (&TipItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(lieferandoinvoice.Table, lieferandoinvoice.FieldID, selector),
			sqlgraph.To(tipitem.Table, tipitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lieferandoinvoice.TipItemsTable, lieferandoinvoice.TipItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first LieferandoInvoice entity from the query.
// Returns a *NotFoundError when no LieferandoInvoice was found.
func (_q *LieferandoInvoiceQuery) First(ctx context.Context) (*LieferandoInvoice, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lieferandoinvoice.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *LieferandoInvoiceQuery) FirstX(ctx context.Context) *LieferandoInvoice {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LieferandoInvoice ID from the query.
// Returns a *NotFoundError when no LieferandoInvoice ID was found.
func (_q *LieferandoInvoiceQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lieferandoinvoice.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *LieferandoInvoiceQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LieferandoInvoice entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LieferandoInvoice entity is found.
// Returns a *NotFoundError when no LieferandoInvoice entities are found.
func (_q *LieferandoInvoiceQuery) Only(ctx context.Context) (*LieferandoInvoice, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lieferandoinvoice.Label}
	default:
		return nil, &NotSingularError{lieferandoinvoice.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *LieferandoInvoiceQuery) OnlyX(ctx context.Context) *LieferandoInvoice {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LieferandoInvoice ID in the query.
// Returns a *NotSingularError when more than one LieferandoInvoice ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *LieferandoInvoiceQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lieferandoinvoice.Label}
	default:
		err = &NotSingularError{lieferandoinvoice.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *LieferandoInvoiceQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LieferandoInvoices.
func (_q *LieferandoInvoiceQuery) All(ctx context.Context) ([]*LieferandoInvoice, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LieferandoInvoice, *LieferandoInvoiceQuery]()
	return withInterceptors[[]*LieferandoInvoice](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *LieferandoInvoiceQuery) AllX(ctx context.Context) []*LieferandoInvoice {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LieferandoInvoice IDs.
func (_q *LieferandoInvoiceQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(lieferandoinvoice.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *LieferandoInvoiceQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *LieferandoInvoiceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*LieferandoInvoiceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *LieferandoInvoiceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *LieferandoInvoiceQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *LieferandoInvoiceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LieferandoInvoiceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *LieferandoInvoiceQuery) Clone() *LieferandoInvoiceQuery {
	if _q == nil {
		return nil
	}
	return &LieferandoInvoiceQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]lieferandoinvoice.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.LieferandoInvoice{}, _q.predicates...),
		withOrderItems: _q.withOrderItems.Clone(),
		withTipItems:   _q.withTipItems.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOrderItems tells the query-builder to eager-load the nodes that are connected to
// the "order_items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LieferandoInvoiceQuery) WithOrderItems(opts ...func(*OrderItemQuery)) *LieferandoInvoiceQuery {
	query := (&OrderItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrderItems = query
	return _q
}

// WithTipItems tells the query-builder to eager-load the nodes that are connected to
// the "tip_items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *LieferandoInvoiceQuery) WithTipItems(opts ...func(*TipItemQuery)) *LieferandoInvoiceQuery {
	query := (&TipItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTipItems = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		InvoiceNumber string `json:"invoice_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LieferandoInvoice.Query().
//		GroupBy(lieferandoinvoice.FieldInvoiceNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *LieferandoInvoiceQuery) GroupBy(field string, fields ...string) *LieferandoInvoiceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LieferandoInvoiceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = lieferandoinvoice.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		InvoiceNumber string `json:"invoice_number,omitempty"`
//	}
//
//	client.LieferandoInvoice.Query().
//		Select(lieferandoinvoice.FieldInvoiceNumber).
//		Scan(ctx, &v)
func (_q *LieferandoInvoiceQuery) Select(fields ...string) *LieferandoInvoiceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &LieferandoInvoiceSelect{LieferandoInvoiceQuery: _q}
	sbuild.label = lieferandoinvoice.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LieferandoInvoiceSelect configured with the given aggregations.
func (_q *LieferandoInvoiceQuery) Aggregate(fns ...AggregateFunc) *LieferandoInvoiceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *LieferandoInvoiceQuery) prepareQuery(ctx context.Context) error {
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
		if !lieferandoinvoice.ValidColumn(f) {
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

func (_q *LieferandoInvoiceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LieferandoInvoice, error) {
	var (
		nodes       = []*LieferandoInvoice{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withOrderItems != nil,
			_q.withTipItems != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LieferandoInvoice).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LieferandoInvoice{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withOrderItems; query != nil {
		if err := _q.loadOrderItems(ctx, query, nodes,
			func(n *LieferandoInvoice) { n.Edges.OrderItems = []*OrderItem{} },
			func(n *LieferandoInvoice, e *OrderItem) { n.Edges.OrderItems = append(n.Edges.OrderItems, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTipItems; query != nil {
		if err := _q.loadTipItems(ctx, query, nodes,
			func(n *LieferandoInvoice) { n.Edges.TipItems = []*TipItem{} },
			func(n *LieferandoInvoice, e *TipItem) { n.Edges.TipItems = append(n.Edges.TipItems, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *LieferandoInvoiceQuery) loadOrderItems(ctx context.Context, query *OrderItemQuery, nodes []*LieferandoInvoice, init func(*LieferandoInvoice), assign func(*LieferandoInvoice, *OrderItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*LieferandoInvoice)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.OrderItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lieferandoinvoice.OrderItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.lieferando_invoice_order_items
		if fk == nil {
			return fmt.Errorf(`foreign-key "lieferando_invoice_order_items" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lieferando_invoice_order_items" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *LieferandoInvoiceQuery) loadTipItems(ctx context.Context, query *TipItemQuery, nodes []*LieferandoInvoice, init func(*LieferandoInvoice), assign func(*LieferandoInvoice, *TipItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*LieferandoInvoice)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.TipItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(lieferandoinvoice.TipItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.lieferando_invoice_tip_items
		if fk == nil {
			return fmt.Errorf(`foreign-key "lieferando_invoice_tip_items" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "lieferando_invoice_tip_items" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *LieferandoInvoiceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *LieferandoInvoiceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lieferandoinvoice.Table, lieferandoinvoice.Columns, sqlgraph.NewFieldSpec(lieferandoinvoice.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lieferandoinvoice.FieldID)
		for i := range fields {
			if fields[i] != lieferandoinvoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *LieferandoInvoiceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(lieferandoinvoice.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = lieferandoinvoice.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// LieferandoInvoiceGroupBy is the group-by builder for LieferandoInvoice entities.
type LieferandoInvoiceGroupBy struct {
	selector
	build *LieferandoInvoiceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *LieferandoInvoiceGroupBy) Aggregate(fns ...AggregateFunc) *LieferandoInvoiceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *LieferandoInvoiceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LieferandoInvoiceQuery, *LieferandoInvoiceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *LieferandoInvoiceGroupBy) sqlScan(ctx context.Context, root *LieferandoInvoiceQuery, v any) error {
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

// LieferandoInvoiceSelect is the builder for selecting fields of LieferandoInvoice entities.
type LieferandoInvoiceSelect struct {
	*LieferandoInvoiceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *LieferandoInvoiceSelect) Aggregate(fns ...AggregateFunc) *LieferandoInvoiceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *LieferandoInvoiceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LieferandoInvoiceQuery, *LieferandoInvoiceSelect](ctx, _s.LieferandoInvoiceQuery, _s, _s.inters, v)
}

func (_s *LieferandoInvoiceSelect) sqlScan(ctx context.Context, root *LieferandoInvoiceQuery, v any) error {
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
