package domain

import "time"

// EngineKind identifies the database engine family of a connection.
type EngineKind string

const (
	EnginePostgres EngineKind = "postgres"
	EngineMySQL    EngineKind = "mysql"
)

// ConnectionConfig holds the saved, non-secret identity of a connection.
// The password lives in the SecretStore, keyed by the connection id.
type ConnectionConfig struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Type          EngineKind `json:"type"`
	Host          string     `json:"host"`
	Port          int        `json:"port"`
	Database      string     `json:"database"`
	Username      string     `json:"username"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	LastConnected *time.Time `json:"lastConnected,omitempty"`
}

// CreateConnectionParams are the inputs for saving a new connection.
// The password is written to the secret store, never to the config.
type CreateConnectionParams struct {
	Name     string     `json:"name"`
	Type     EngineKind `json:"type"`
	Host     string     `json:"host"`
	Port     int        `json:"port"`
	Database string     `json:"database"`
	Username string     `json:"username"`
	Password string     `json:"password"`
}

// TestConnectionParams are the inputs for a throwaway connectivity check.
// Nothing here is persisted.
type TestConnectionParams struct {
	Type     EngineKind `json:"type"`
	Host     string     `json:"host"`
	Port     int        `json:"port"`
	Database string     `json:"database"`
	Username string     `json:"username"`
	Password string     `json:"password"`
}

// TestConnectionResult reports whether a test connection succeeded.
// All failure modes fold into Error; callers never see a typed error.
type TestConnectionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
