// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/matuskalis/speaksharp-engine/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/matuskalis/speaksharp-engine/ent/card"
	"github.com/matuskalis/speaksharp-engine/ent/errorrecord"
	"github.com/matuskalis/speaksharp-engine/ent/observationevent"
	"github.com/matuskalis/speaksharp-engine/ent/reviewevent"
	"github.com/matuskalis/speaksharp-engine/ent/skillnode"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Card is the client for interacting with the Card builders.
	Card *CardClient
	// ErrorRecord is the client for interacting with the ErrorRecord builders.
	ErrorRecord *ErrorRecordClient
	// ObservationEvent is the client for interacting with the ObservationEvent builders.
	ObservationEvent *ObservationEventClient
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
	// SkillNode is the client for interacting with the SkillNode builders.
	SkillNode *SkillNodeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Card = NewCardClient(c.config)
	c.ErrorRecord = NewErrorRecordClient(c.config)
	c.ObservationEvent = NewObservationEventClient(c.config)
	c.ReviewEvent = NewReviewEventClient(c.config)
	c.SkillNode = NewSkillNodeClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Card:             NewCardClient(cfg),
		ErrorRecord:      NewErrorRecordClient(cfg),
		ObservationEvent: NewObservationEventClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SkillNode:        NewSkillNodeClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Card:             NewCardClient(cfg),
		ErrorRecord:      NewErrorRecordClient(cfg),
		ObservationEvent: NewObservationEventClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SkillNode:        NewSkillNodeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Card.
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
	c.Card.Use(hooks...)
	c.ErrorRecord.Use(hooks...)
	c.ObservationEvent.Use(hooks...)
	c.ReviewEvent.Use(hooks...)
	c.SkillNode.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Card.Intercept(interceptors...)
	c.ErrorRecord.Intercept(interceptors...)
	c.ObservationEvent.Intercept(interceptors...)
	c.ReviewEvent.Intercept(interceptors...)
	c.SkillNode.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CardMutation:
		return c.Card.mutate(ctx, m)
	case *ErrorRecordMutation:
		return c.ErrorRecord.mutate(ctx, m)
	case *ObservationEventMutation:
		return c.ObservationEvent.mutate(ctx, m)
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	case *SkillNodeMutation:
		return c.SkillNode.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CardClient is a client for the Card schema.
type CardClient struct {
	config
}

// NewCardClient returns a client for the Card from the given config.
func NewCardClient(c config) *CardClient {
	return &CardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `card.Hooks(f(g(h())))`.
func (c *CardClient) Use(hooks ...Hook) {
	c.hooks.Card = append(c.hooks.Card, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `card.Intercept(f(g(h())))`.
func (c *CardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Card = append(c.inters.Card, interceptors...)
}

// Create returns a builder for creating a Card entity.
func (c *CardClient) Create() *CardCreate {
	mutation := newCardMutation(c.config, OpCreate)
	return &CardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Card entities.
func (c *CardClient) CreateBulk(builders ...*CardCreate) *CardCreateBulk {
	return &CardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CardClient) MapCreateBulk(slice any, setFunc func(*CardCreate, int)) *CardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CardCreateBulk{err: fmt.Errorf("calling to CardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Card.
func (c *CardClient) Update() *CardUpdate {
	mutation := newCardMutation(c.config, OpUpdate)
	return &CardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CardClient) UpdateOne(_m *Card) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCard(_m))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CardClient) UpdateOneID(id uuid.UUID) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCardID(id))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Card.
func (c *CardClient) Delete() *CardDelete {
	mutation := newCardMutation(c.config, OpDelete)
	return &CardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CardClient) DeleteOne(_m *Card) *CardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CardClient) DeleteOneID(id uuid.UUID) *CardDeleteOne {
	builder := c.Delete().Where(card.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CardDeleteOne{builder}
}

// Query returns a query builder for Card.
func (c *CardClient) Query() *CardQuery {
	return &CardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCard},
		inters: c.Interceptors(),
	}
}

// Get returns a Card entity by its id.
func (c *CardClient) Get(ctx context.Context, id uuid.UUID) (*Card, error) {
	return c.Query().Where(card.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CardClient) GetX(ctx context.Context, id uuid.UUID) *Card {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CardClient) Hooks() []Hook {
	return c.hooks.Card
}

// Interceptors returns the client interceptors.
func (c *CardClient) Interceptors() []Interceptor {
	return c.inters.Card
}

func (c *CardClient) mutate(ctx context.Context, m *CardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Card mutation op: %q", m.Op())
	}
}

// ErrorRecordClient is a client for the ErrorRecord schema.
type ErrorRecordClient struct {
	config
}

// NewErrorRecordClient returns a client for the ErrorRecord from the given config.
func NewErrorRecordClient(c config) *ErrorRecordClient {
	return &ErrorRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `errorrecord.Hooks(f(g(h())))`.
func (c *ErrorRecordClient) Use(hooks ...Hook) {
	c.hooks.ErrorRecord = append(c.hooks.ErrorRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `errorrecord.Intercept(f(g(h())))`.
func (c *ErrorRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ErrorRecord = append(c.inters.ErrorRecord, interceptors...)
}

// Create returns a builder for creating a ErrorRecord entity.
func (c *ErrorRecordClient) Create() *ErrorRecordCreate {
	mutation := newErrorRecordMutation(c.config, OpCreate)
	return &ErrorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ErrorRecord entities.
func (c *ErrorRecordClient) CreateBulk(builders ...*ErrorRecordCreate) *ErrorRecordCreateBulk {
	return &ErrorRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ErrorRecordClient) MapCreateBulk(slice any, setFunc func(*ErrorRecordCreate, int)) *ErrorRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ErrorRecordCreateBulk{err: fmt.Errorf("calling to ErrorRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ErrorRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ErrorRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ErrorRecord.
func (c *ErrorRecordClient) Update() *ErrorRecordUpdate {
	mutation := newErrorRecordMutation(c.config, OpUpdate)
	return &ErrorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ErrorRecordClient) UpdateOne(_m *ErrorRecord) *ErrorRecordUpdateOne {
	mutation := newErrorRecordMutation(c.config, OpUpdateOne, withErrorRecord(_m))
	return &ErrorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ErrorRecordClient) UpdateOneID(id uuid.UUID) *ErrorRecordUpdateOne {
	mutation := newErrorRecordMutation(c.config, OpUpdateOne, withErrorRecordID(id))
	return &ErrorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ErrorRecord.
func (c *ErrorRecordClient) Delete() *ErrorRecordDelete {
	mutation := newErrorRecordMutation(c.config, OpDelete)
	return &ErrorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ErrorRecordClient) DeleteOne(_m *ErrorRecord) *ErrorRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ErrorRecordClient) DeleteOneID(id uuid.UUID) *ErrorRecordDeleteOne {
	builder := c.Delete().Where(errorrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ErrorRecordDeleteOne{builder}
}

// Query returns a query builder for ErrorRecord.
func (c *ErrorRecordClient) Query() *ErrorRecordQuery {
	return &ErrorRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeErrorRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ErrorRecord entity by its id.
func (c *ErrorRecordClient) Get(ctx context.Context, id uuid.UUID) (*ErrorRecord, error) {
	return c.Query().Where(errorrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ErrorRecordClient) GetX(ctx context.Context, id uuid.UUID) *ErrorRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ErrorRecordClient) Hooks() []Hook {
	return c.hooks.ErrorRecord
}

// Interceptors returns the client interceptors.
func (c *ErrorRecordClient) Interceptors() []Interceptor {
	return c.inters.ErrorRecord
}

func (c *ErrorRecordClient) mutate(ctx context.Context, m *ErrorRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ErrorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ErrorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ErrorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ErrorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ErrorRecord mutation op: %q", m.Op())
	}
}

// ObservationEventClient is a client for the ObservationEvent schema.
type ObservationEventClient struct {
	config
}

// NewObservationEventClient returns a client for the ObservationEvent from the given config.
func NewObservationEventClient(c config) *ObservationEventClient {
	return &ObservationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `observationevent.Hooks(f(g(h())))`.
func (c *ObservationEventClient) Use(hooks ...Hook) {
	c.hooks.ObservationEvent = append(c.hooks.ObservationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `observationevent.Intercept(f(g(h())))`.
func (c *ObservationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ObservationEvent = append(c.inters.ObservationEvent, interceptors...)
}

// Create returns a builder for creating a ObservationEvent entity.
func (c *ObservationEventClient) Create() *ObservationEventCreate {
	mutation := newObservationEventMutation(c.config, OpCreate)
	return &ObservationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ObservationEvent entities.
func (c *ObservationEventClient) CreateBulk(builders ...*ObservationEventCreate) *ObservationEventCreateBulk {
	return &ObservationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ObservationEventClient) MapCreateBulk(slice any, setFunc func(*ObservationEventCreate, int)) *ObservationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ObservationEventCreateBulk{err: fmt.Errorf("calling to ObservationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ObservationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ObservationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ObservationEvent.
func (c *ObservationEventClient) Update() *ObservationEventUpdate {
	mutation := newObservationEventMutation(c.config, OpUpdate)
	return &ObservationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ObservationEventClient) UpdateOne(_m *ObservationEvent) *ObservationEventUpdateOne {
	mutation := newObservationEventMutation(c.config, OpUpdateOne, withObservationEvent(_m))
	return &ObservationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ObservationEventClient) UpdateOneID(id int) *ObservationEventUpdateOne {
	mutation := newObservationEventMutation(c.config, OpUpdateOne, withObservationEventID(id))
	return &ObservationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ObservationEvent.
func (c *ObservationEventClient) Delete() *ObservationEventDelete {
	mutation := newObservationEventMutation(c.config, OpDelete)
	return &ObservationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ObservationEventClient) DeleteOne(_m *ObservationEvent) *ObservationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ObservationEventClient) DeleteOneID(id int) *ObservationEventDeleteOne {
	builder := c.Delete().Where(observationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ObservationEventDeleteOne{builder}
}

// Query returns a query builder for ObservationEvent.
func (c *ObservationEventClient) Query() *ObservationEventQuery {
	return &ObservationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeObservationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ObservationEvent entity by its id.
func (c *ObservationEventClient) Get(ctx context.Context, id int) (*ObservationEvent, error) {
	return c.Query().Where(observationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ObservationEventClient) GetX(ctx context.Context, id int) *ObservationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ObservationEventClient) Hooks() []Hook {
	return c.hooks.ObservationEvent
}

// Interceptors returns the client interceptors.
func (c *ObservationEventClient) Interceptors() []Interceptor {
	return c.inters.ObservationEvent
}

func (c *ObservationEventClient) mutate(ctx context.Context, m *ObservationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ObservationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ObservationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ObservationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ObservationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ObservationEvent mutation op: %q", m.Op())
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// SkillNodeClient is a client for the SkillNode schema.
type SkillNodeClient struct {
	config
}

// NewSkillNodeClient returns a client for the SkillNode from the given config.
func NewSkillNodeClient(c config) *SkillNodeClient {
	return &SkillNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillnode.Hooks(f(g(h())))`.
func (c *SkillNodeClient) Use(hooks ...Hook) {
	c.hooks.SkillNode = append(c.hooks.SkillNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillnode.Intercept(f(g(h())))`.
func (c *SkillNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillNode = append(c.inters.SkillNode, interceptors...)
}

// Create returns a builder for creating a SkillNode entity.
func (c *SkillNodeClient) Create() *SkillNodeCreate {
	mutation := newSkillNodeMutation(c.config, OpCreate)
	return &SkillNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillNode entities.
func (c *SkillNodeClient) CreateBulk(builders ...*SkillNodeCreate) *SkillNodeCreateBulk {
	return &SkillNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillNodeClient) MapCreateBulk(slice any, setFunc func(*SkillNodeCreate, int)) *SkillNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillNodeCreateBulk{err: fmt.Errorf("calling to SkillNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillNode.
func (c *SkillNodeClient) Update() *SkillNodeUpdate {
	mutation := newSkillNodeMutation(c.config, OpUpdate)
	return &SkillNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillNodeClient) UpdateOne(_m *SkillNode) *SkillNodeUpdateOne {
	mutation := newSkillNodeMutation(c.config, OpUpdateOne, withSkillNode(_m))
	return &SkillNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillNodeClient) UpdateOneID(id int) *SkillNodeUpdateOne {
	mutation := newSkillNodeMutation(c.config, OpUpdateOne, withSkillNodeID(id))
	return &SkillNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillNode.
func (c *SkillNodeClient) Delete() *SkillNodeDelete {
	mutation := newSkillNodeMutation(c.config, OpDelete)
	return &SkillNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillNodeClient) DeleteOne(_m *SkillNode) *SkillNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillNodeClient) DeleteOneID(id int) *SkillNodeDeleteOne {
	builder := c.Delete().Where(skillnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillNodeDeleteOne{builder}
}

// Query returns a query builder for SkillNode.
func (c *SkillNodeClient) Query() *SkillNodeQuery {
	return &SkillNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillNode},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillNode entity by its id.
func (c *SkillNodeClient) Get(ctx context.Context, id int) (*SkillNode, error) {
	return c.Query().Where(skillnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillNodeClient) GetX(ctx context.Context, id int) *SkillNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillNodeClient) Hooks() []Hook {
	return c.hooks.SkillNode
}

// Interceptors returns the client interceptors.
func (c *SkillNodeClient) Interceptors() []Interceptor {
	return c.inters.SkillNode
}

func (c *SkillNodeClient) mutate(ctx context.Context, m *SkillNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillNode mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Card, ErrorRecord, ObservationEvent, ReviewEvent, SkillNode []ent.Hook
	}
	inters struct {
		Card, ErrorRecord, ObservationEvent, ReviewEvent, SkillNode []ent.Interceptor
	}
)
