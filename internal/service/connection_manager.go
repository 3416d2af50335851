package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"mesagrid/internal/dbclient"
	"mesagrid/internal/domain"
	"mesagrid/internal/secret"
)

// Pool sizing. Test connections get a single throwaway connection with
// a short acquire timeout; live pools are sized for sustained use and
// rely on the driver's own timeouts.
const (
	testPoolConns      = 1
	testAcquireTimeout = 5 * time.Second
	livePoolConns      = 5
)

// openFunc builds an engine pool. Swappable in tests.
type openFunc func(kind domain.EngineKind, target dbclient.Target, opts dbclient.PoolOptions) (dbclient.Engine, error)

// ConnectionManager owns saved connection configs and live engine
// pools. The two maps are guarded independently and no lock is ever
// held across network I/O, so a slow connect or query on one
// connection never blocks operations on another.
type ConnectionManager struct {
	secrets secret.Store
	open    openFunc

	configMu sync.RWMutex
	configs  map[string]domain.ConnectionConfig

	engineMu sync.RWMutex
	engines  map[string]dbclient.Engine
}

// NewConnectionManager creates an empty manager backed by the given
// secret store.
func NewConnectionManager(secrets secret.Store) *ConnectionManager {
	return &ConnectionManager{
		secrets: secrets,
		open:    dbclient.Open,
		configs: make(map[string]domain.ConnectionConfig),
		engines: make(map[string]dbclient.Engine),
	}
}

// CreateConnection saves a new connection config and stores its
// password in the secret store. The secret write happens first: if it
// fails, no config is registered.
func (m *ConnectionManager) CreateConnection(params domain.CreateConnectionParams) (string, error) {
	id := uuid.New().String()

	if err := m.secrets.Set(id, []byte(params.Password)); err != nil {
		return "", fmt.Errorf("%w: store password: %v", ErrCredential, err)
	}

	now := time.Now().UTC()
	config := domain.ConnectionConfig{
		ID:        id,
		Name:      params.Name,
		Type:      params.Type,
		Host:      params.Host,
		Port:      params.Port,
		Database:  params.Database,
		Username:  params.Username,
		CreatedAt: &now,
	}

	m.configMu.Lock()
	m.configs[id] = config
	m.configMu.Unlock()

	return id, nil
}

// TestConnection checks connectivity with a throwaway single-connection
// pool built straight from the supplied parameters. Nothing is
// persisted and no typed error escapes: every failure folds into the
// result.
func (m *ConnectionManager) TestConnection(ctx context.Context, params domain.TestConnectionParams) domain.TestConnectionResult {
	eng, err := m.open(params.Type, dbclient.Target{
		Host:     params.Host,
		Port:     params.Port,
		Database: params.Database,
		Username: params.Username,
		Password: params.Password,
	}, dbclient.PoolOptions{MaxConns: testPoolConns})
	if err != nil {
		return domain.TestConnectionResult{Success: false, Error: err.Error()}
	}
	defer eng.Close()

	ctx, cancel := context.WithTimeout(ctx, testAcquireTimeout)
	defer cancel()
	if err := eng.Ping(ctx); err != nil {
		return domain.TestConnectionResult{Success: false, Error: err.Error()}
	}
	return domain.TestConnectionResult{Success: true}
}

// Connect builds a live pool for a saved connection and registers it
// under the connection id, replacing any prior pool. On success the
// config's last_connected timestamp is updated.
func (m *ConnectionManager) Connect(ctx context.Context, connectionID string) error {
	m.configMu.RLock()
	config, ok := m.configs[connectionID]
	m.configMu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, connectionID)
	}

	password, err := m.secrets.Get(connectionID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCredential, err)
	}

	eng, err := m.open(config.Type, dbclient.Target{
		Host:     config.Host,
		Port:     config.Port,
		Database: config.Database,
		Username: config.Username,
		Password: string(password),
	}, dbclient.PoolOptions{MaxConns: livePoolConns})
	if err != nil {
		return fmt.Errorf("connect %s: %w", connectionID, err)
	}

	// Establish at least one connection before registering the pool, so
	// auth and network failures surface here. No extra timeout: a slow
	// network should eventually succeed or report the driver's own error.
	if err := eng.Ping(ctx); err != nil {
		eng.Close()
		return fmt.Errorf("connect %s: %w", connectionID, err)
	}

	m.engineMu.Lock()
	old := m.engines[connectionID]
	m.engines[connectionID] = eng
	m.engineMu.Unlock()
	if old != nil {
		// Closing after the swap lets in-flight queries finish on
		// connections they already hold; only new acquires are cut off.
		old.Close()
	}

	m.configMu.Lock()
	if c, ok := m.configs[connectionID]; ok {
		now := time.Now().UTC()
		c.LastConnected = &now
		m.configs[connectionID] = c
	}
	m.configMu.Unlock()

	return nil
}

// Disconnect drops the live pool for a connection. Idempotent: a
// missing pool is not an error. The saved config is untouched.
func (m *ConnectionManager) Disconnect(connectionID string) {
	m.engineMu.Lock()
	old := m.engines[connectionID]
	delete(m.engines, connectionID)
	m.engineMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// ListConnections returns all saved configs. Order is not meaningful.
func (m *ConnectionManager) ListConnections() []domain.ConnectionConfig {
	m.configMu.RLock()
	defer m.configMu.RUnlock()
	configs := make([]domain.ConnectionConfig, 0, len(m.configs))
	for _, c := range m.configs {
		configs = append(configs, c)
	}
	return configs
}

// DeleteConnection removes the live pool and saved config for an id and
// best-effort deletes the secret. Always succeeds, even for unknown ids.
func (m *ConnectionManager) DeleteConnection(connectionID string) {
	m.engineMu.Lock()
	old := m.engines[connectionID]
	delete(m.engines, connectionID)
	m.engineMu.Unlock()
	if old != nil {
		old.Close()
	}

	m.configMu.Lock()
	delete(m.configs, connectionID)
	m.configMu.Unlock()

	_ = m.secrets.Delete(connectionID)
}

// ExecuteQuery runs SQL on a live connection and measures wall-clock
// duration. Limit and offset in the params are advisory; the statement
// is executed exactly as given.
func (m *ConnectionManager) ExecuteQuery(ctx context.Context, params domain.ExecuteQueryParams) (*domain.QueryResult, error) {
	eng := m.engine(params.ConnectionID)
	if eng == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, params.ConnectionID)
	}

	start := time.Now()
	result, err := eng.Query(ctx, params.SQL)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	result.ExecutionTimeMs = time.Since(start).Milliseconds()
	return result, nil
}

// ListTables enumerates tables and views on a live connection. Needs
// both the pool and the config: the MySQL-family listing is scoped to
// the configured database.
func (m *ConnectionManager) ListTables(ctx context.Context, connectionID string) ([]domain.TableInfo, error) {
	eng := m.engine(connectionID)
	if eng == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, connectionID)
	}

	m.configMu.RLock()
	config, ok := m.configs[connectionID]
	m.configMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, connectionID)
	}

	tables, err := eng.ListTables(ctx, config.Database)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// GetTableData reads one page of rows from a table. Unlike
// ExecuteQuery, the statement is built here, so limit and offset are
// enforced server-side.
func (m *ConnectionManager) GetTableData(ctx context.Context, params domain.GetTableDataParams) (*domain.TableDataResult, error) {
	eng := m.engine(params.ConnectionID)
	if eng == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, params.ConnectionID)
	}

	m.configMu.RLock()
	config, ok := m.configs[params.ConnectionID]
	m.configMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, params.ConnectionID)
	}

	schema := params.Schema
	if schema == "" {
		// Postgres defaults to the public schema; MySQL tables live in
		// the database itself.
		if config.Type == domain.EngineMySQL {
			schema = config.Database
		} else {
			schema = "public"
		}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = domain.DefaultQueryLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	result, err := eng.TableData(ctx, schema, params.TableName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("table data: %w", err)
	}
	return result, nil
}

// IsConnected reports whether a live pool is registered for the id.
func (m *ConnectionManager) IsConnected(connectionID string) bool {
	m.engineMu.RLock()
	defer m.engineMu.RUnlock()
	_, ok := m.engines[connectionID]
	return ok
}

// CloseAll tears down every live pool. Called on shutdown.
func (m *ConnectionManager) CloseAll() {
	m.engineMu.Lock()
	defer m.engineMu.Unlock()
	for id, eng := range m.engines {
		eng.Close()
		delete(m.engines, id)
	}
}

// engine returns the live pool for an id, or nil. The read lock is
// released before the caller issues any query, so slow statements never
// block map access for other connections.
func (m *ConnectionManager) engine(connectionID string) dbclient.Engine {
	m.engineMu.RLock()
	defer m.engineMu.RUnlock()
	return m.engines[connectionID]
}
