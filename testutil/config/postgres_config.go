package config

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // database/sql driver for the sql.DB and sqlx test adapters
	"gopkg.in/yaml.v3"
)

const configPathEnvVar = "CATALOG_TEST_CONFIG"

// ProductsTableDDL creates the products table the Postgres catalog engine
// expects. Integration tests apply it to a scratch database before running.
const ProductsTableDDL = `
CREATE TABLE IF NOT EXISTS products (
    position   BIGSERIAL PRIMARY KEY,
    id         TEXT      NOT NULL UNIQUE,
    name       TEXT      NOT NULL,
    attributes JSONB     NOT NULL
);`

// PostgresSettings holds the connection settings for the test database.
type PostgresSettings struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DefaultPostgresSettings returns the settings matching the docker-compose
// test database.
func DefaultPostgresSettings() PostgresSettings {
	return PostgresSettings{
		Host:     "localhost",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "catalog_test",
		SSLMode:  "disable",
		PoolSize: 10,
	}
}

// LoadPostgresSettings returns the default settings, overridden by the YAML
// file named in CATALOG_TEST_CONFIG when that variable is set.
func LoadPostgresSettings() (PostgresSettings, error) {
	settings := DefaultPostgresSettings()

	path := os.Getenv(configPathEnvVar)
	if path == "" {
		return settings, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("reading test config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return settings, fmt.Errorf("parsing test config %q: %w", path, err)
	}

	return settings, nil
}

// DSN renders the settings as a keyword/value connection string understood by
// both pgx and lib/pq.
func (s PostgresSettings) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Database, s.SSLMode,
	)
}

// PGXPoolConfig builds a pgxpool configuration from the settings.
func (s PostgresSettings) PGXPoolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(s.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing pgxpool config: %w", err)
	}

	cfg.MaxConns = int32(s.PoolSize) //nolint:gosec

	return cfg, nil
}

// OpenSQLDB opens a database/sql connection pool using the lib/pq driver.
func (s PostgresSettings) OpenSQLDB() (*sql.DB, error) {
	db, err := sql.Open("postgres", s.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening sql.DB: %w", err)
	}

	db.SetMaxOpenConns(s.PoolSize)

	return db, nil
}

// OpenSQLXDB opens an sqlx connection pool using the lib/pq driver.
func (s PostgresSettings) OpenSQLXDB() (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", s.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening sqlx.DB: %w", err)
	}

	db.SetMaxOpenConns(s.PoolSize)

	return db, nil
}
