// Package migrations registers the schema migrations with pkg/migration.
// cmd/server blank-imports it so the init() functions run.
package migrations
