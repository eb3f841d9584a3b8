// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/kukulab/kuku/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent/achievement"
	"github.com/kukulab/kuku/ent/answerevent"
	"github.com/kukulab/kuku/ent/badge"
	"github.com/kukulab/kuku/ent/dailychallenge"
	"github.com/kukulab/kuku/ent/difficultquestion"
	"github.com/kukulab/kuku/ent/levelstate"
	"github.com/kukulab/kuku/ent/llmevent"
	"github.com/kukulab/kuku/ent/message"
	"github.com/kukulab/kuku/ent/pointevent"
	"github.com/kukulab/kuku/ent/pointstate"
	"github.com/kukulab/kuku/ent/setting"
	"github.com/kukulab/kuku/ent/tablestat"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Achievement is the client for interacting with the Achievement builders.
	Achievement *AchievementClient
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// Badge is the client for interacting with the Badge builders.
	Badge *BadgeClient
	// DailyChallenge is the client for interacting with the DailyChallenge builders.
	DailyChallenge *DailyChallengeClient
	// DifficultQuestion is the client for interacting with the DifficultQuestion builders.
	DifficultQuestion *DifficultQuestionClient
	// LLMEvent is the client for interacting with the LLMEvent builders.
	LLMEvent *LLMEventClient
	// LevelState is the client for interacting with the LevelState builders.
	LevelState *LevelStateClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// PointEvent is the client for interacting with the PointEvent builders.
	PointEvent *PointEventClient
	// PointState is the client for interacting with the PointState builders.
	PointState *PointStateClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// TableStat is the client for interacting with the TableStat builders.
	TableStat *TableStatClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Achievement = NewAchievementClient(c.config)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.Badge = NewBadgeClient(c.config)
	c.DailyChallenge = NewDailyChallengeClient(c.config)
	c.DifficultQuestion = NewDifficultQuestionClient(c.config)
	c.LLMEvent = NewLLMEventClient(c.config)
	c.LevelState = NewLevelStateClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.PointEvent = NewPointEventClient(c.config)
	c.PointState = NewPointStateClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.TableStat = NewTableStatClient(c.config)
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
		Achievement:       NewAchievementClient(cfg),
		AnswerEvent:       NewAnswerEventClient(cfg),
		Badge:             NewBadgeClient(cfg),
		DailyChallenge:    NewDailyChallengeClient(cfg),
		DifficultQuestion: NewDifficultQuestionClient(cfg),
		LLMEvent:          NewLLMEventClient(cfg),
		LevelState:        NewLevelStateClient(cfg),
		Message:           NewMessageClient(cfg),
		PointEvent:        NewPointEventClient(cfg),
		PointState:        NewPointStateClient(cfg),
		Setting:           NewSettingClient(cfg),
		TableStat:         NewTableStatClient(cfg),
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
		Achievement:       NewAchievementClient(cfg),
		AnswerEvent:       NewAnswerEventClient(cfg),
		Badge:             NewBadgeClient(cfg),
		DailyChallenge:    NewDailyChallengeClient(cfg),
		DifficultQuestion: NewDifficultQuestionClient(cfg),
		LLMEvent:          NewLLMEventClient(cfg),
		LevelState:        NewLevelStateClient(cfg),
		Message:           NewMessageClient(cfg),
		PointEvent:        NewPointEventClient(cfg),
		PointState:        NewPointStateClient(cfg),
		Setting:           NewSettingClient(cfg),
		TableStat:         NewTableStatClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Achievement.
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
		c.Achievement, c.AnswerEvent, c.Badge, c.DailyChallenge, c.DifficultQuestion,
		c.LLMEvent, c.LevelState, c.Message, c.PointEvent, c.PointState, c.Setting,
		c.TableStat,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Achievement, c.AnswerEvent, c.Badge, c.DailyChallenge, c.DifficultQuestion,
		c.LLMEvent, c.LevelState, c.Message, c.PointEvent, c.PointState, c.Setting,
		c.TableStat,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementMutation:
		return c.Achievement.mutate(ctx, m)
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *BadgeMutation:
		return c.Badge.mutate(ctx, m)
	case *DailyChallengeMutation:
		return c.DailyChallenge.mutate(ctx, m)
	case *DifficultQuestionMutation:
		return c.DifficultQuestion.mutate(ctx, m)
	case *LLMEventMutation:
		return c.LLMEvent.mutate(ctx, m)
	case *LevelStateMutation:
		return c.LevelState.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *PointEventMutation:
		return c.PointEvent.mutate(ctx, m)
	case *PointStateMutation:
		return c.PointState.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *TableStatMutation:
		return c.TableStat.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementClient is a client for the Achievement schema.
type AchievementClient struct {
	config
}

// NewAchievementClient returns a client for the Achievement from the given config.
func NewAchievementClient(c config) *AchievementClient {
	return &AchievementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievement.Hooks(f(g(h())))`.
func (c *AchievementClient) Use(hooks ...Hook) {
	c.hooks.Achievement = append(c.hooks.Achievement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievement.Intercept(f(g(h())))`.
func (c *AchievementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Achievement = append(c.inters.Achievement, interceptors...)
}

// Create returns a builder for creating a Achievement entity.
func (c *AchievementClient) Create() *AchievementCreate {
	mutation := newAchievementMutation(c.config, OpCreate)
	return &AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Achievement entities.
func (c *AchievementClient) CreateBulk(builders ...*AchievementCreate) *AchievementCreateBulk {
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementClient) MapCreateBulk(slice any, setFunc func(*AchievementCreate, int)) *AchievementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementCreateBulk{err: fmt.Errorf("calling to AchievementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Achievement.
func (c *AchievementClient) Update() *AchievementUpdate {
	mutation := newAchievementMutation(c.config, OpUpdate)
	return &AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementClient) UpdateOne(_m *Achievement) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievement(_m))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementClient) UpdateOneID(id int) *AchievementUpdateOne {
	mutation := newAchievementMutation(c.config, OpUpdateOne, withAchievementID(id))
	return &AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Achievement.
func (c *AchievementClient) Delete() *AchievementDelete {
	mutation := newAchievementMutation(c.config, OpDelete)
	return &AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementClient) DeleteOne(_m *Achievement) *AchievementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementClient) DeleteOneID(id int) *AchievementDeleteOne {
	builder := c.Delete().Where(achievement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementDeleteOne{builder}
}

// Query returns a query builder for Achievement.
func (c *AchievementClient) Query() *AchievementQuery {
	return &AchievementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievement},
		inters: c.Interceptors(),
	}
}

// Get returns a Achievement entity by its id.
func (c *AchievementClient) Get(ctx context.Context, id int) (*Achievement, error) {
	return c.Query().Where(achievement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementClient) GetX(ctx context.Context, id int) *Achievement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementClient) Hooks() []Hook {
	return c.hooks.Achievement
}

// Interceptors returns the client interceptors.
func (c *AchievementClient) Interceptors() []Interceptor {
	return c.inters.Achievement
}

func (c *AchievementClient) mutate(ctx context.Context, m *AchievementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Achievement mutation op: %q", m.Op())
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// BadgeClient is a client for the Badge schema.
type BadgeClient struct {
	config
}

// NewBadgeClient returns a client for the Badge from the given config.
func NewBadgeClient(c config) *BadgeClient {
	return &BadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badge.Hooks(f(g(h())))`.
func (c *BadgeClient) Use(hooks ...Hook) {
	c.hooks.Badge = append(c.hooks.Badge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badge.Intercept(f(g(h())))`.
func (c *BadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Badge = append(c.inters.Badge, interceptors...)
}

// Create returns a builder for creating a Badge entity.
func (c *BadgeClient) Create() *BadgeCreate {
	mutation := newBadgeMutation(c.config, OpCreate)
	return &BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Badge entities.
func (c *BadgeClient) CreateBulk(builders ...*BadgeCreate) *BadgeCreateBulk {
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeClient) MapCreateBulk(slice any, setFunc func(*BadgeCreate, int)) *BadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeCreateBulk{err: fmt.Errorf("calling to BadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Badge.
func (c *BadgeClient) Update() *BadgeUpdate {
	mutation := newBadgeMutation(c.config, OpUpdate)
	return &BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeClient) UpdateOne(_m *Badge) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadge(_m))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeClient) UpdateOneID(id int) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadgeID(id))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Badge.
func (c *BadgeClient) Delete() *BadgeDelete {
	mutation := newBadgeMutation(c.config, OpDelete)
	return &BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeClient) DeleteOne(_m *Badge) *BadgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeClient) DeleteOneID(id int) *BadgeDeleteOne {
	builder := c.Delete().Where(badge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeDeleteOne{builder}
}

// Query returns a query builder for Badge.
func (c *BadgeClient) Query() *BadgeQuery {
	return &BadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a Badge entity by its id.
func (c *BadgeClient) Get(ctx context.Context, id int) (*Badge, error) {
	return c.Query().Where(badge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeClient) GetX(ctx context.Context, id int) *Badge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeClient) Hooks() []Hook {
	return c.hooks.Badge
}

// Interceptors returns the client interceptors.
func (c *BadgeClient) Interceptors() []Interceptor {
	return c.inters.Badge
}

func (c *BadgeClient) mutate(ctx context.Context, m *BadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Badge mutation op: %q", m.Op())
	}
}

// DailyChallengeClient is a client for the DailyChallenge schema.
type DailyChallengeClient struct {
	config
}

// NewDailyChallengeClient returns a client for the DailyChallenge from the given config.
func NewDailyChallengeClient(c config) *DailyChallengeClient {
	return &DailyChallengeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailychallenge.Hooks(f(g(h())))`.
func (c *DailyChallengeClient) Use(hooks ...Hook) {
	c.hooks.DailyChallenge = append(c.hooks.DailyChallenge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailychallenge.Intercept(f(g(h())))`.
func (c *DailyChallengeClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyChallenge = append(c.inters.DailyChallenge, interceptors...)
}

// Create returns a builder for creating a DailyChallenge entity.
func (c *DailyChallengeClient) Create() *DailyChallengeCreate {
	mutation := newDailyChallengeMutation(c.config, OpCreate)
	return &DailyChallengeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyChallenge entities.
func (c *DailyChallengeClient) CreateBulk(builders ...*DailyChallengeCreate) *DailyChallengeCreateBulk {
	return &DailyChallengeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyChallengeClient) MapCreateBulk(slice any, setFunc func(*DailyChallengeCreate, int)) *DailyChallengeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyChallengeCreateBulk{err: fmt.Errorf("calling to DailyChallengeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyChallengeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyChallengeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyChallenge.
func (c *DailyChallengeClient) Update() *DailyChallengeUpdate {
	mutation := newDailyChallengeMutation(c.config, OpUpdate)
	return &DailyChallengeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyChallengeClient) UpdateOne(_m *DailyChallenge) *DailyChallengeUpdateOne {
	mutation := newDailyChallengeMutation(c.config, OpUpdateOne, withDailyChallenge(_m))
	return &DailyChallengeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyChallengeClient) UpdateOneID(id int) *DailyChallengeUpdateOne {
	mutation := newDailyChallengeMutation(c.config, OpUpdateOne, withDailyChallengeID(id))
	return &DailyChallengeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyChallenge.
func (c *DailyChallengeClient) Delete() *DailyChallengeDelete {
	mutation := newDailyChallengeMutation(c.config, OpDelete)
	return &DailyChallengeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyChallengeClient) DeleteOne(_m *DailyChallenge) *DailyChallengeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyChallengeClient) DeleteOneID(id int) *DailyChallengeDeleteOne {
	builder := c.Delete().Where(dailychallenge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyChallengeDeleteOne{builder}
}

// Query returns a query builder for DailyChallenge.
func (c *DailyChallengeClient) Query() *DailyChallengeQuery {
	return &DailyChallengeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyChallenge},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyChallenge entity by its id.
func (c *DailyChallengeClient) Get(ctx context.Context, id int) (*DailyChallenge, error) {
	return c.Query().Where(dailychallenge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyChallengeClient) GetX(ctx context.Context, id int) *DailyChallenge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DailyChallengeClient) Hooks() []Hook {
	return c.hooks.DailyChallenge
}

// Interceptors returns the client interceptors.
func (c *DailyChallengeClient) Interceptors() []Interceptor {
	return c.inters.DailyChallenge
}

func (c *DailyChallengeClient) mutate(ctx context.Context, m *DailyChallengeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyChallengeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyChallengeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyChallengeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyChallengeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyChallenge mutation op: %q", m.Op())
	}
}

// DifficultQuestionClient is a client for the DifficultQuestion schema.
type DifficultQuestionClient struct {
	config
}

// NewDifficultQuestionClient returns a client for the DifficultQuestion from the given config.
func NewDifficultQuestionClient(c config) *DifficultQuestionClient {
	return &DifficultQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `difficultquestion.Hooks(f(g(h())))`.
func (c *DifficultQuestionClient) Use(hooks ...Hook) {
	c.hooks.DifficultQuestion = append(c.hooks.DifficultQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `difficultquestion.Intercept(f(g(h())))`.
func (c *DifficultQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DifficultQuestion = append(c.inters.DifficultQuestion, interceptors...)
}

// Create returns a builder for creating a DifficultQuestion entity.
func (c *DifficultQuestionClient) Create() *DifficultQuestionCreate {
	mutation := newDifficultQuestionMutation(c.config, OpCreate)
	return &DifficultQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DifficultQuestion entities.
func (c *DifficultQuestionClient) CreateBulk(builders ...*DifficultQuestionCreate) *DifficultQuestionCreateBulk {
	return &DifficultQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DifficultQuestionClient) MapCreateBulk(slice any, setFunc func(*DifficultQuestionCreate, int)) *DifficultQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DifficultQuestionCreateBulk{err: fmt.Errorf("calling to DifficultQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DifficultQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DifficultQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DifficultQuestion.
func (c *DifficultQuestionClient) Update() *DifficultQuestionUpdate {
	mutation := newDifficultQuestionMutation(c.config, OpUpdate)
	return &DifficultQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DifficultQuestionClient) UpdateOne(_m *DifficultQuestion) *DifficultQuestionUpdateOne {
	mutation := newDifficultQuestionMutation(c.config, OpUpdateOne, withDifficultQuestion(_m))
	return &DifficultQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DifficultQuestionClient) UpdateOneID(id int) *DifficultQuestionUpdateOne {
	mutation := newDifficultQuestionMutation(c.config, OpUpdateOne, withDifficultQuestionID(id))
	return &DifficultQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DifficultQuestion.
func (c *DifficultQuestionClient) Delete() *DifficultQuestionDelete {
	mutation := newDifficultQuestionMutation(c.config, OpDelete)
	return &DifficultQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DifficultQuestionClient) DeleteOne(_m *DifficultQuestion) *DifficultQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DifficultQuestionClient) DeleteOneID(id int) *DifficultQuestionDeleteOne {
	builder := c.Delete().Where(difficultquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DifficultQuestionDeleteOne{builder}
}

// Query returns a query builder for DifficultQuestion.
func (c *DifficultQuestionClient) Query() *DifficultQuestionQuery {
	return &DifficultQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDifficultQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a DifficultQuestion entity by its id.
func (c *DifficultQuestionClient) Get(ctx context.Context, id int) (*DifficultQuestion, error) {
	return c.Query().Where(difficultquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DifficultQuestionClient) GetX(ctx context.Context, id int) *DifficultQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DifficultQuestionClient) Hooks() []Hook {
	return c.hooks.DifficultQuestion
}

// Interceptors returns the client interceptors.
func (c *DifficultQuestionClient) Interceptors() []Interceptor {
	return c.inters.DifficultQuestion
}

func (c *DifficultQuestionClient) mutate(ctx context.Context, m *DifficultQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DifficultQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DifficultQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DifficultQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DifficultQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DifficultQuestion mutation op: %q", m.Op())
	}
}

// LLMEventClient is a client for the LLMEvent schema.
type LLMEventClient struct {
	config
}

// NewLLMEventClient returns a client for the LLMEvent from the given config.
func NewLLMEventClient(c config) *LLMEventClient {
	return &LLMEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmevent.Hooks(f(g(h())))`.
func (c *LLMEventClient) Use(hooks ...Hook) {
	c.hooks.LLMEvent = append(c.hooks.LLMEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmevent.Intercept(f(g(h())))`.
func (c *LLMEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMEvent = append(c.inters.LLMEvent, interceptors...)
}

// Create returns a builder for creating a LLMEvent entity.
func (c *LLMEventClient) Create() *LLMEventCreate {
	mutation := newLLMEventMutation(c.config, OpCreate)
	return &LLMEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMEvent entities.
func (c *LLMEventClient) CreateBulk(builders ...*LLMEventCreate) *LLMEventCreateBulk {
	return &LLMEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMEventClient) MapCreateBulk(slice any, setFunc func(*LLMEventCreate, int)) *LLMEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMEventCreateBulk{err: fmt.Errorf("calling to LLMEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMEvent.
func (c *LLMEventClient) Update() *LLMEventUpdate {
	mutation := newLLMEventMutation(c.config, OpUpdate)
	return &LLMEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMEventClient) UpdateOne(_m *LLMEvent) *LLMEventUpdateOne {
	mutation := newLLMEventMutation(c.config, OpUpdateOne, withLLMEvent(_m))
	return &LLMEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMEventClient) UpdateOneID(id int) *LLMEventUpdateOne {
	mutation := newLLMEventMutation(c.config, OpUpdateOne, withLLMEventID(id))
	return &LLMEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMEvent.
func (c *LLMEventClient) Delete() *LLMEventDelete {
	mutation := newLLMEventMutation(c.config, OpDelete)
	return &LLMEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMEventClient) DeleteOne(_m *LLMEvent) *LLMEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMEventClient) DeleteOneID(id int) *LLMEventDeleteOne {
	builder := c.Delete().Where(llmevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMEventDeleteOne{builder}
}

// Query returns a query builder for LLMEvent.
func (c *LLMEventClient) Query() *LLMEventQuery {
	return &LLMEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMEvent entity by its id.
func (c *LLMEventClient) Get(ctx context.Context, id int) (*LLMEvent, error) {
	return c.Query().Where(llmevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMEventClient) GetX(ctx context.Context, id int) *LLMEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMEventClient) Hooks() []Hook {
	return c.hooks.LLMEvent
}

// Interceptors returns the client interceptors.
func (c *LLMEventClient) Interceptors() []Interceptor {
	return c.inters.LLMEvent
}

func (c *LLMEventClient) mutate(ctx context.Context, m *LLMEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMEvent mutation op: %q", m.Op())
	}
}

// LevelStateClient is a client for the LevelState schema.
type LevelStateClient struct {
	config
}

// NewLevelStateClient returns a client for the LevelState from the given config.
func NewLevelStateClient(c config) *LevelStateClient {
	return &LevelStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `levelstate.Hooks(f(g(h())))`.
func (c *LevelStateClient) Use(hooks ...Hook) {
	c.hooks.LevelState = append(c.hooks.LevelState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `levelstate.Intercept(f(g(h())))`.
func (c *LevelStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.LevelState = append(c.inters.LevelState, interceptors...)
}

// Create returns a builder for creating a LevelState entity.
func (c *LevelStateClient) Create() *LevelStateCreate {
	mutation := newLevelStateMutation(c.config, OpCreate)
	return &LevelStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LevelState entities.
func (c *LevelStateClient) CreateBulk(builders ...*LevelStateCreate) *LevelStateCreateBulk {
	return &LevelStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LevelStateClient) MapCreateBulk(slice any, setFunc func(*LevelStateCreate, int)) *LevelStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LevelStateCreateBulk{err: fmt.Errorf("calling to LevelStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LevelStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LevelStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LevelState.
func (c *LevelStateClient) Update() *LevelStateUpdate {
	mutation := newLevelStateMutation(c.config, OpUpdate)
	return &LevelStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LevelStateClient) UpdateOne(_m *LevelState) *LevelStateUpdateOne {
	mutation := newLevelStateMutation(c.config, OpUpdateOne, withLevelState(_m))
	return &LevelStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LevelStateClient) UpdateOneID(id int) *LevelStateUpdateOne {
	mutation := newLevelStateMutation(c.config, OpUpdateOne, withLevelStateID(id))
	return &LevelStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LevelState.
func (c *LevelStateClient) Delete() *LevelStateDelete {
	mutation := newLevelStateMutation(c.config, OpDelete)
	return &LevelStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LevelStateClient) DeleteOne(_m *LevelState) *LevelStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LevelStateClient) DeleteOneID(id int) *LevelStateDeleteOne {
	builder := c.Delete().Where(levelstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LevelStateDeleteOne{builder}
}

// Query returns a query builder for LevelState.
func (c *LevelStateClient) Query() *LevelStateQuery {
	return &LevelStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLevelState},
		inters: c.Interceptors(),
	}
}

// Get returns a LevelState entity by its id.
func (c *LevelStateClient) Get(ctx context.Context, id int) (*LevelState, error) {
	return c.Query().Where(levelstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LevelStateClient) GetX(ctx context.Context, id int) *LevelState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LevelStateClient) Hooks() []Hook {
	return c.hooks.LevelState
}

// Interceptors returns the client interceptors.
func (c *LevelStateClient) Interceptors() []Interceptor {
	return c.inters.LevelState
}

func (c *LevelStateClient) mutate(ctx context.Context, m *LevelStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LevelStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LevelStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LevelStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LevelStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LevelState mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id int) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id int) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id int) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id int) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// PointEventClient is a client for the PointEvent schema.
type PointEventClient struct {
	config
}

// NewPointEventClient returns a client for the PointEvent from the given config.
func NewPointEventClient(c config) *PointEventClient {
	return &PointEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pointevent.Hooks(f(g(h())))`.
func (c *PointEventClient) Use(hooks ...Hook) {
	c.hooks.PointEvent = append(c.hooks.PointEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pointevent.Intercept(f(g(h())))`.
func (c *PointEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PointEvent = append(c.inters.PointEvent, interceptors...)
}

// Create returns a builder for creating a PointEvent entity.
func (c *PointEventClient) Create() *PointEventCreate {
	mutation := newPointEventMutation(c.config, OpCreate)
	return &PointEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PointEvent entities.
func (c *PointEventClient) CreateBulk(builders ...*PointEventCreate) *PointEventCreateBulk {
	return &PointEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PointEventClient) MapCreateBulk(slice any, setFunc func(*PointEventCreate, int)) *PointEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PointEventCreateBulk{err: fmt.Errorf("calling to PointEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PointEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PointEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PointEvent.
func (c *PointEventClient) Update() *PointEventUpdate {
	mutation := newPointEventMutation(c.config, OpUpdate)
	return &PointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PointEventClient) UpdateOne(_m *PointEvent) *PointEventUpdateOne {
	mutation := newPointEventMutation(c.config, OpUpdateOne, withPointEvent(_m))
	return &PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PointEventClient) UpdateOneID(id int) *PointEventUpdateOne {
	mutation := newPointEventMutation(c.config, OpUpdateOne, withPointEventID(id))
	return &PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PointEvent.
func (c *PointEventClient) Delete() *PointEventDelete {
	mutation := newPointEventMutation(c.config, OpDelete)
	return &PointEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PointEventClient) DeleteOne(_m *PointEvent) *PointEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PointEventClient) DeleteOneID(id int) *PointEventDeleteOne {
	builder := c.Delete().Where(pointevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PointEventDeleteOne{builder}
}

// Query returns a query builder for PointEvent.
func (c *PointEventClient) Query() *PointEventQuery {
	return &PointEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePointEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PointEvent entity by its id.
func (c *PointEventClient) Get(ctx context.Context, id int) (*PointEvent, error) {
	return c.Query().Where(pointevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PointEventClient) GetX(ctx context.Context, id int) *PointEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PointEventClient) Hooks() []Hook {
	return c.hooks.PointEvent
}

// Interceptors returns the client interceptors.
func (c *PointEventClient) Interceptors() []Interceptor {
	return c.inters.PointEvent
}

func (c *PointEventClient) mutate(ctx context.Context, m *PointEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PointEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PointEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PointEvent mutation op: %q", m.Op())
	}
}

// PointStateClient is a client for the PointState schema.
type PointStateClient struct {
	config
}

// NewPointStateClient returns a client for the PointState from the given config.
func NewPointStateClient(c config) *PointStateClient {
	return &PointStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pointstate.Hooks(f(g(h())))`.
func (c *PointStateClient) Use(hooks ...Hook) {
	c.hooks.PointState = append(c.hooks.PointState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pointstate.Intercept(f(g(h())))`.
func (c *PointStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PointState = append(c.inters.PointState, interceptors...)
}

// Create returns a builder for creating a PointState entity.
func (c *PointStateClient) Create() *PointStateCreate {
	mutation := newPointStateMutation(c.config, OpCreate)
	return &PointStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PointState entities.
func (c *PointStateClient) CreateBulk(builders ...*PointStateCreate) *PointStateCreateBulk {
	return &PointStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PointStateClient) MapCreateBulk(slice any, setFunc func(*PointStateCreate, int)) *PointStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PointStateCreateBulk{err: fmt.Errorf("calling to PointStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PointStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PointStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PointState.
func (c *PointStateClient) Update() *PointStateUpdate {
	mutation := newPointStateMutation(c.config, OpUpdate)
	return &PointStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PointStateClient) UpdateOne(_m *PointState) *PointStateUpdateOne {
	mutation := newPointStateMutation(c.config, OpUpdateOne, withPointState(_m))
	return &PointStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PointStateClient) UpdateOneID(id int) *PointStateUpdateOne {
	mutation := newPointStateMutation(c.config, OpUpdateOne, withPointStateID(id))
	return &PointStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PointState.
func (c *PointStateClient) Delete() *PointStateDelete {
	mutation := newPointStateMutation(c.config, OpDelete)
	return &PointStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PointStateClient) DeleteOne(_m *PointState) *PointStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PointStateClient) DeleteOneID(id int) *PointStateDeleteOne {
	builder := c.Delete().Where(pointstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PointStateDeleteOne{builder}
}

// Query returns a query builder for PointState.
func (c *PointStateClient) Query() *PointStateQuery {
	return &PointStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePointState},
		inters: c.Interceptors(),
	}
}

// Get returns a PointState entity by its id.
func (c *PointStateClient) Get(ctx context.Context, id int) (*PointState, error) {
	return c.Query().Where(pointstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PointStateClient) GetX(ctx context.Context, id int) *PointState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PointStateClient) Hooks() []Hook {
	return c.hooks.PointState
}

// Interceptors returns the client interceptors.
func (c *PointStateClient) Interceptors() []Interceptor {
	return c.inters.PointState
}

func (c *PointStateClient) mutate(ctx context.Context, m *PointStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PointStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PointStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PointStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PointStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PointState mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(_m *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(_m))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(_m *Setting) *SettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	return c.hooks.Setting
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// TableStatClient is a client for the TableStat schema.
type TableStatClient struct {
	config
}

// NewTableStatClient returns a client for the TableStat from the given config.
func NewTableStatClient(c config) *TableStatClient {
	return &TableStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tablestat.Hooks(f(g(h())))`.
func (c *TableStatClient) Use(hooks ...Hook) {
	c.hooks.TableStat = append(c.hooks.TableStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tablestat.Intercept(f(g(h())))`.
func (c *TableStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.TableStat = append(c.inters.TableStat, interceptors...)
}

// Create returns a builder for creating a TableStat entity.
func (c *TableStatClient) Create() *TableStatCreate {
	mutation := newTableStatMutation(c.config, OpCreate)
	return &TableStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TableStat entities.
func (c *TableStatClient) CreateBulk(builders ...*TableStatCreate) *TableStatCreateBulk {
	return &TableStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TableStatClient) MapCreateBulk(slice any, setFunc func(*TableStatCreate, int)) *TableStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TableStatCreateBulk{err: fmt.Errorf("calling to TableStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TableStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TableStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TableStat.
func (c *TableStatClient) Update() *TableStatUpdate {
	mutation := newTableStatMutation(c.config, OpUpdate)
	return &TableStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TableStatClient) UpdateOne(_m *TableStat) *TableStatUpdateOne {
	mutation := newTableStatMutation(c.config, OpUpdateOne, withTableStat(_m))
	return &TableStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TableStatClient) UpdateOneID(id int) *TableStatUpdateOne {
	mutation := newTableStatMutation(c.config, OpUpdateOne, withTableStatID(id))
	return &TableStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TableStat.
func (c *TableStatClient) Delete() *TableStatDelete {
	mutation := newTableStatMutation(c.config, OpDelete)
	return &TableStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TableStatClient) DeleteOne(_m *TableStat) *TableStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TableStatClient) DeleteOneID(id int) *TableStatDeleteOne {
	builder := c.Delete().Where(tablestat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TableStatDeleteOne{builder}
}

// Query returns a query builder for TableStat.
func (c *TableStatClient) Query() *TableStatQuery {
	return &TableStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTableStat},
		inters: c.Interceptors(),
	}
}

// Get returns a TableStat entity by its id.
func (c *TableStatClient) Get(ctx context.Context, id int) (*TableStat, error) {
	return c.Query().Where(tablestat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TableStatClient) GetX(ctx context.Context, id int) *TableStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TableStatClient) Hooks() []Hook {
	return c.hooks.TableStat
}

// Interceptors returns the client interceptors.
func (c *TableStatClient) Interceptors() []Interceptor {
	return c.inters.TableStat
}

func (c *TableStatClient) mutate(ctx context.Context, m *TableStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TableStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TableStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TableStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TableStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TableStat mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Achievement, AnswerEvent, Badge, DailyChallenge, DifficultQuestion, LLMEvent,
		LevelState, Message, PointEvent, PointState, Setting, TableStat []ent.Hook
	}
	inters struct {
		Achievement, AnswerEvent, Badge, DailyChallenge, DifficultQuestion, LLMEvent,
		LevelState, Message, PointEvent, PointState, Setting,
		TableStat []ent.Interceptor
	}
)
