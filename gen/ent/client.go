// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cc-collective/invoice-ingest/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/orderitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/woltinvoice"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LieferandoInvoice is the client for interacting with the LieferandoInvoice builders.
	LieferandoInvoice *LieferandoInvoiceClient
	// OrderItem is the client for interacting with the OrderItem builders.
	OrderItem *OrderItemClient
	// TipItem is the client for interacting with the TipItem builders.
	TipItem *TipItemClient
	// UberEatsInvoice is the client for interacting with the UberEatsInvoice builders.
	UberEatsInvoice *UberEatsInvoiceClient
	// WoltInvoice is the client for interacting with the WoltInvoice builders.
	WoltInvoice *WoltInvoiceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LieferandoInvoice = NewLieferandoInvoiceClient(c.config)
	c.OrderItem = NewOrderItemClient(c.config)
	c.TipItem = NewTipItemClient(c.config)
	c.UberEatsInvoice = NewUberEatsInvoiceClient(c.config)
	c.WoltInvoice = NewWoltInvoiceClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		LieferandoInvoice: NewLieferandoInvoiceClient(cfg),
		OrderItem:         NewOrderItemClient(cfg),
		TipItem:           NewTipItemClient(cfg),
		UberEatsInvoice:   NewUberEatsInvoiceClient(cfg),
		WoltInvoice:       NewWoltInvoiceClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		LieferandoInvoice: NewLieferandoInvoiceClient(cfg),
		OrderItem:         NewOrderItemClient(cfg),
		TipItem:           NewTipItemClient(cfg),
		UberEatsInvoice:   NewUberEatsInvoiceClient(cfg),
		WoltInvoice:       NewWoltInvoiceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LieferandoInvoice.
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
	c.LieferandoInvoice.Use(hooks...)
	c.OrderItem.Use(hooks...)
	c.TipItem.Use(hooks...)
	c.UberEatsInvoice.Use(hooks...)
	c.WoltInvoice.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LieferandoInvoice.Intercept(interceptors...)
	c.OrderItem.Intercept(interceptors...)
	c.TipItem.Intercept(interceptors...)
	c.UberEatsInvoice.Intercept(interceptors...)
	c.WoltInvoice.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LieferandoInvoiceMutation:
		return c.LieferandoInvoice.mutate(ctx, m)
	case *OrderItemMutation:
		return c.OrderItem.mutate(ctx, m)
	case *TipItemMutation:
		return c.TipItem.mutate(ctx, m)
	case *UberEatsInvoiceMutation:
		return c.UberEatsInvoice.mutate(ctx, m)
	case *WoltInvoiceMutation:
		return c.WoltInvoice.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LieferandoInvoiceClient is a client for the LieferandoInvoice schema.
type LieferandoInvoiceClient struct {
	config
}

// NewLieferandoInvoiceClient returns a client for the LieferandoInvoice from the given config.
func NewLieferandoInvoiceClient(c config) *LieferandoInvoiceClient {
	return &LieferandoInvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lieferandoinvoice.Hooks(f(g(h())))`.
func (c *LieferandoInvoiceClient) Use(hooks ...Hook) {
	c.hooks.LieferandoInvoice = append(c.hooks.LieferandoInvoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lieferandoinvoice.Intercept(f(g(h())))`.
func (c *LieferandoInvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.LieferandoInvoice = append(c.inters.LieferandoInvoice, interceptors...)
}

// Create returns a builder for creating a LieferandoInvoice entity.
func (c *LieferandoInvoiceClient) Create() *LieferandoInvoiceCreate {
	mutation := newLieferandoInvoiceMutation(c.config, OpCreate)
	return &LieferandoInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LieferandoInvoice entities.
func (c *LieferandoInvoiceClient) CreateBulk(builders ...*LieferandoInvoiceCreate) *LieferandoInvoiceCreateBulk {
	return &LieferandoInvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LieferandoInvoiceClient) MapCreateBulk(slice any, setFunc func(*LieferandoInvoiceCreate, int)) *LieferandoInvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LieferandoInvoiceCreateBulk{err: fmt.Errorf("calling to LieferandoInvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LieferandoInvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LieferandoInvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LieferandoInvoice.
func (c *LieferandoInvoiceClient) Update() *LieferandoInvoiceUpdate {
	mutation := newLieferandoInvoiceMutation(c.config, OpUpdate)
	return &LieferandoInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LieferandoInvoiceClient) UpdateOne(_m *LieferandoInvoice) *LieferandoInvoiceUpdateOne {
	mutation := newLieferandoInvoiceMutation(c.config, OpUpdateOne, withLieferandoInvoice(_m))
	return &LieferandoInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LieferandoInvoiceClient) UpdateOneID(id uuid.UUID) *LieferandoInvoiceUpdateOne {
	mutation := newLieferandoInvoiceMutation(c.config, OpUpdateOne, withLieferandoInvoiceID(id))
	return &LieferandoInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LieferandoInvoice.
func (c *LieferandoInvoiceClient) Delete() *LieferandoInvoiceDelete {
	mutation := newLieferandoInvoiceMutation(c.config, OpDelete)
	return &LieferandoInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LieferandoInvoiceClient) DeleteOne(_m *LieferandoInvoice) *LieferandoInvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LieferandoInvoiceClient) DeleteOneID(id uuid.UUID) *LieferandoInvoiceDeleteOne {
	builder := c.Delete().Where(lieferandoinvoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LieferandoInvoiceDeleteOne{builder}
}

// Query returns a query builder for LieferandoInvoice.
func (c *LieferandoInvoiceClient) Query() *LieferandoInvoiceQuery {
	return &LieferandoInvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLieferandoInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a LieferandoInvoice entity by its id.
func (c *LieferandoInvoiceClient) Get(ctx context.Context, id uuid.UUID) (*LieferandoInvoice, error) {
	return c.Query().Where(lieferandoinvoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LieferandoInvoiceClient) GetX(ctx context.Context, id uuid.UUID) *LieferandoInvoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrderItems queries the order_items edge of a LieferandoInvoice.
func (c *LieferandoInvoiceClient) QueryOrderItems(_m *LieferandoInvoice) *OrderItemQuery {
	query := (&OrderItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lieferandoinvoice.Table, lieferandoinvoice.FieldID, id),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lieferandoinvoice.OrderItemsTable, lieferandoinvoice.OrderItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTipItems queries the tip_items edge of a LieferandoInvoice.
func (c *LieferandoInvoiceClient) QueryTipItems(_m *LieferandoInvoice) *TipItemQuery {
	query := (&TipItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lieferandoinvoice.Table, lieferandoinvoice.FieldID, id),
			sqlgraph.To(tipitem.Table, tipitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, lieferandoinvoice.TipItemsTable, lieferandoinvoice.TipItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LieferandoInvoiceClient) Hooks() []Hook {
	return c.hooks.LieferandoInvoice
}

// Interceptors returns the client interceptors.
func (c *LieferandoInvoiceClient) Interceptors() []Interceptor {
	return c.inters.LieferandoInvoice
}

func (c *LieferandoInvoiceClient) mutate(ctx context.Context, m *LieferandoInvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LieferandoInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LieferandoInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LieferandoInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LieferandoInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LieferandoInvoice mutation op: %q", m.Op())
	}
}

// OrderItemClient is a client for the OrderItem schema.
type OrderItemClient struct {
	config
}

// NewOrderItemClient returns a client for the OrderItem from the given config.
func NewOrderItemClient(c config) *OrderItemClient {
	return &OrderItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderitem.Hooks(f(g(h())))`.
func (c *OrderItemClient) Use(hooks ...Hook) {
	c.hooks.OrderItem = append(c.hooks.OrderItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderitem.Intercept(f(g(h())))`.
func (c *OrderItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderItem = append(c.inters.OrderItem, interceptors...)
}

// Create returns a builder for creating a OrderItem entity.
func (c *OrderItemClient) Create() *OrderItemCreate {
	mutation := newOrderItemMutation(c.config, OpCreate)
	return &OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderItem entities.
func (c *OrderItemClient) CreateBulk(builders ...*OrderItemCreate) *OrderItemCreateBulk {
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderItemClient) MapCreateBulk(slice any, setFunc func(*OrderItemCreate, int)) *OrderItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderItemCreateBulk{err: fmt.Errorf("calling to OrderItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderItem.
func (c *OrderItemClient) Update() *OrderItemUpdate {
	mutation := newOrderItemMutation(c.config, OpUpdate)
	return &OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderItemClient) UpdateOne(_m *OrderItem) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItem(_m))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderItemClient) UpdateOneID(id uuid.UUID) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItemID(id))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderItem.
func (c *OrderItemClient) Delete() *OrderItemDelete {
	mutation := newOrderItemMutation(c.config, OpDelete)
	return &OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderItemClient) DeleteOne(_m *OrderItem) *OrderItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderItemClient) DeleteOneID(id uuid.UUID) *OrderItemDeleteOne {
	builder := c.Delete().Where(orderitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderItemDeleteOne{builder}
}

// Query returns a query builder for OrderItem.
func (c *OrderItemClient) Query() *OrderItemQuery {
	return &OrderItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderItem},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderItem entity by its id.
func (c *OrderItemClient) Get(ctx context.Context, id uuid.UUID) (*OrderItem, error) {
	return c.Query().Where(orderitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderItemClient) GetX(ctx context.Context, id uuid.UUID) *OrderItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoice queries the invoice edge of a OrderItem.
func (c *OrderItemClient) QueryInvoice(_m *OrderItem) *LieferandoInvoiceQuery {
	query := (&LieferandoInvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderitem.Table, orderitem.FieldID, id),
			sqlgraph.To(lieferandoinvoice.Table, lieferandoinvoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderitem.InvoiceTable, orderitem.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderItemClient) Hooks() []Hook {
	return c.hooks.OrderItem
}

// Interceptors returns the client interceptors.
func (c *OrderItemClient) Interceptors() []Interceptor {
	return c.inters.OrderItem
}

func (c *OrderItemClient) mutate(ctx context.Context, m *OrderItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderItem mutation op: %q", m.Op())
	}
}

// TipItemClient is a client for the TipItem schema.
type TipItemClient struct {
	config
}

// NewTipItemClient returns a client for the TipItem from the given config.
func NewTipItemClient(c config) *TipItemClient {
	return &TipItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipitem.Hooks(f(g(h())))`.
func (c *TipItemClient) Use(hooks ...Hook) {
	c.hooks.TipItem = append(c.hooks.TipItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipitem.Intercept(f(g(h())))`.
func (c *TipItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipItem = append(c.inters.TipItem, interceptors...)
}

// Create returns a builder for creating a TipItem entity.
func (c *TipItemClient) Create() *TipItemCreate {
	mutation := newTipItemMutation(c.config, OpCreate)
	return &TipItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipItem entities.
func (c *TipItemClient) CreateBulk(builders ...*TipItemCreate) *TipItemCreateBulk {
	return &TipItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipItemClient) MapCreateBulk(slice any, setFunc func(*TipItemCreate, int)) *TipItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipItemCreateBulk{err: fmt.Errorf("calling to TipItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipItem.
func (c *TipItemClient) Update() *TipItemUpdate {
	mutation := newTipItemMutation(c.config, OpUpdate)
	return &TipItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipItemClient) UpdateOne(_m *TipItem) *TipItemUpdateOne {
	mutation := newTipItemMutation(c.config, OpUpdateOne, withTipItem(_m))
	return &TipItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipItemClient) UpdateOneID(id uuid.UUID) *TipItemUpdateOne {
	mutation := newTipItemMutation(c.config, OpUpdateOne, withTipItemID(id))
	return &TipItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipItem.
func (c *TipItemClient) Delete() *TipItemDelete {
	mutation := newTipItemMutation(c.config, OpDelete)
	return &TipItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipItemClient) DeleteOne(_m *TipItem) *TipItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipItemClient) DeleteOneID(id uuid.UUID) *TipItemDeleteOne {
	builder := c.Delete().Where(tipitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipItemDeleteOne{builder}
}

// Query returns a query builder for TipItem.
func (c *TipItemClient) Query() *TipItemQuery {
	return &TipItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipItem},
		inters: c.Interceptors(),
	}
}

// Get returns a TipItem entity by its id.
func (c *TipItemClient) Get(ctx context.Context, id uuid.UUID) (*TipItem, error) {
	return c.Query().Where(tipitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipItemClient) GetX(ctx context.Context, id uuid.UUID) *TipItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoice queries the invoice edge of a TipItem.
func (c *TipItemClient) QueryInvoice(_m *TipItem) *LieferandoInvoiceQuery {
	query := (&LieferandoInvoiceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tipitem.Table, tipitem.FieldID, id),
			sqlgraph.To(lieferandoinvoice.Table, lieferandoinvoice.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tipitem.InvoiceTable, tipitem.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TipItemClient) Hooks() []Hook {
	return c.hooks.TipItem
}

// Interceptors returns the client interceptors.
func (c *TipItemClient) Interceptors() []Interceptor {
	return c.inters.TipItem
}

func (c *TipItemClient) mutate(ctx context.Context, m *TipItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TipItem mutation op: %q", m.Op())
	}
}

// UberEatsInvoiceClient is a client for the UberEatsInvoice schema.
type UberEatsInvoiceClient struct {
	config
}

// NewUberEatsInvoiceClient returns a client for the UberEatsInvoice from the given config.
func NewUberEatsInvoiceClient(c config) *UberEatsInvoiceClient {
	return &UberEatsInvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ubereatsinvoice.Hooks(f(g(h())))`.
func (c *UberEatsInvoiceClient) Use(hooks ...Hook) {
	c.hooks.UberEatsInvoice = append(c.hooks.UberEatsInvoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ubereatsinvoice.Intercept(f(g(h())))`.
func (c *UberEatsInvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.UberEatsInvoice = append(c.inters.UberEatsInvoice, interceptors...)
}

// Create returns a builder for creating a UberEatsInvoice entity.
func (c *UberEatsInvoiceClient) Create() *UberEatsInvoiceCreate {
	mutation := newUberEatsInvoiceMutation(c.config, OpCreate)
	return &UberEatsInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UberEatsInvoice entities.
func (c *UberEatsInvoiceClient) CreateBulk(builders ...*UberEatsInvoiceCreate) *UberEatsInvoiceCreateBulk {
	return &UberEatsInvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UberEatsInvoiceClient) MapCreateBulk(slice any, setFunc func(*UberEatsInvoiceCreate, int)) *UberEatsInvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UberEatsInvoiceCreateBulk{err: fmt.Errorf("calling to UberEatsInvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UberEatsInvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UberEatsInvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UberEatsInvoice.
func (c *UberEatsInvoiceClient) Update() *UberEatsInvoiceUpdate {
	mutation := newUberEatsInvoiceMutation(c.config, OpUpdate)
	return &UberEatsInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UberEatsInvoiceClient) UpdateOne(_m *UberEatsInvoice) *UberEatsInvoiceUpdateOne {
	mutation := newUberEatsInvoiceMutation(c.config, OpUpdateOne, withUberEatsInvoice(_m))
	return &UberEatsInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UberEatsInvoiceClient) UpdateOneID(id uuid.UUID) *UberEatsInvoiceUpdateOne {
	mutation := newUberEatsInvoiceMutation(c.config, OpUpdateOne, withUberEatsInvoiceID(id))
	return &UberEatsInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UberEatsInvoice.
func (c *UberEatsInvoiceClient) Delete() *UberEatsInvoiceDelete {
	mutation := newUberEatsInvoiceMutation(c.config, OpDelete)
	return &UberEatsInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UberEatsInvoiceClient) DeleteOne(_m *UberEatsInvoice) *UberEatsInvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UberEatsInvoiceClient) DeleteOneID(id uuid.UUID) *UberEatsInvoiceDeleteOne {
	builder := c.Delete().Where(ubereatsinvoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UberEatsInvoiceDeleteOne{builder}
}

// Query returns a query builder for UberEatsInvoice.
func (c *UberEatsInvoiceClient) Query() *UberEatsInvoiceQuery {
	return &UberEatsInvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUberEatsInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a UberEatsInvoice entity by its id.
func (c *UberEatsInvoiceClient) Get(ctx context.Context, id uuid.UUID) (*UberEatsInvoice, error) {
	return c.Query().Where(ubereatsinvoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UberEatsInvoiceClient) GetX(ctx context.Context, id uuid.UUID) *UberEatsInvoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UberEatsInvoiceClient) Hooks() []Hook {
	return c.hooks.UberEatsInvoice
}

// Interceptors returns the client interceptors.
func (c *UberEatsInvoiceClient) Interceptors() []Interceptor {
	return c.inters.UberEatsInvoice
}

func (c *UberEatsInvoiceClient) mutate(ctx context.Context, m *UberEatsInvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UberEatsInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UberEatsInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UberEatsInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UberEatsInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UberEatsInvoice mutation op: %q", m.Op())
	}
}

// WoltInvoiceClient is a client for the WoltInvoice schema.
type WoltInvoiceClient struct {
	config
}

// NewWoltInvoiceClient returns a client for the WoltInvoice from the given config.
func NewWoltInvoiceClient(c config) *WoltInvoiceClient {
	return &WoltInvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `woltinvoice.Hooks(f(g(h())))`.
func (c *WoltInvoiceClient) Use(hooks ...Hook) {
	c.hooks.WoltInvoice = append(c.hooks.WoltInvoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `woltinvoice.Intercept(f(g(h())))`.
func (c *WoltInvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.WoltInvoice = append(c.inters.WoltInvoice, interceptors...)
}

// Create returns a builder for creating a WoltInvoice entity.
func (c *WoltInvoiceClient) Create() *WoltInvoiceCreate {
	mutation := newWoltInvoiceMutation(c.config, OpCreate)
	return &WoltInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WoltInvoice entities.
func (c *WoltInvoiceClient) CreateBulk(builders ...*WoltInvoiceCreate) *WoltInvoiceCreateBulk {
	return &WoltInvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WoltInvoiceClient) MapCreateBulk(slice any, setFunc func(*WoltInvoiceCreate, int)) *WoltInvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WoltInvoiceCreateBulk{err: fmt.Errorf("calling to WoltInvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WoltInvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WoltInvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WoltInvoice.
func (c *WoltInvoiceClient) Update() *WoltInvoiceUpdate {
	mutation := newWoltInvoiceMutation(c.config, OpUpdate)
	return &WoltInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WoltInvoiceClient) UpdateOne(_m *WoltInvoice) *WoltInvoiceUpdateOne {
	mutation := newWoltInvoiceMutation(c.config, OpUpdateOne, withWoltInvoice(_m))
	return &WoltInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WoltInvoiceClient) UpdateOneID(id uuid.UUID) *WoltInvoiceUpdateOne {
	mutation := newWoltInvoiceMutation(c.config, OpUpdateOne, withWoltInvoiceID(id))
	return &WoltInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WoltInvoice.
func (c *WoltInvoiceClient) Delete() *WoltInvoiceDelete {
	mutation := newWoltInvoiceMutation(c.config, OpDelete)
	return &WoltInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WoltInvoiceClient) DeleteOne(_m *WoltInvoice) *WoltInvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WoltInvoiceClient) DeleteOneID(id uuid.UUID) *WoltInvoiceDeleteOne {
	builder := c.Delete().Where(woltinvoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WoltInvoiceDeleteOne{builder}
}

// Query returns a query builder for WoltInvoice.
func (c *WoltInvoiceClient) Query() *WoltInvoiceQuery {
	return &WoltInvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWoltInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a WoltInvoice entity by its id.
func (c *WoltInvoiceClient) Get(ctx context.Context, id uuid.UUID) (*WoltInvoice, error) {
	return c.Query().Where(woltinvoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WoltInvoiceClient) GetX(ctx context.Context, id uuid.UUID) *WoltInvoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WoltInvoiceClient) Hooks() []Hook {
	return c.hooks.WoltInvoice
}

// Interceptors returns the client interceptors.
func (c *WoltInvoiceClient) Interceptors() []Interceptor {
	return c.inters.WoltInvoice
}

func (c *WoltInvoiceClient) mutate(ctx context.Context, m *WoltInvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WoltInvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WoltInvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WoltInvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WoltInvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WoltInvoice mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LieferandoInvoice, OrderItem, TipItem, UberEatsInvoice, WoltInvoice []ent.Hook
	}
	inters struct {
		LieferandoInvoice, OrderItem, TipItem, UberEatsInvoice,
		WoltInvoice []ent.Interceptor
	}
)
