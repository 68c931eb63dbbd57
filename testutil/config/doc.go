// Package config provides Postgres connection settings and pool builders
// for the integration tests. Settings come from defaults, optionally
// overridden by a YAML file pointed to by the CATALOG_TEST_CONFIG
// environment variable.
package config
