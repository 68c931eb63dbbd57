// Package postgresengine provides the PostgreSQL-backed implementation of a
// filterable product catalog.
//
// The engine applies the same specification values used for in-memory
// filtering to persistent data: the closed set of catalog specifications
// (color, size, name prefix, and their boolean compositions) is compiled into
// SQL WHERE clauses, while opaque predicates transparently fall back to
// scanning and filtering in memory.
//
// The expected table schema is:
//
//	CREATE TABLE products (
//	    position   BIGSERIAL PRIMARY KEY,
//	    id         TEXT        NOT NULL UNIQUE,
//	    name       TEXT        NOT NULL,
//	    attributes JSONB       NOT NULL
//	);
//
// The position column defines insertion order; Query results are always
// returned in that order.
//
// Common usage pattern:
//
//	store, err := postgresengine.NewCatalogFromPGXPool(pool, postgresengine.WithTableName("products"))
//	if err != nil {
//		// handle error
//	}
//
//	spec := specification.And[catalog.Product](
//		catalog.HasColor(catalog.ColorGreen),
//		catalog.HasSize(catalog.SizeLarge))
//
//	greenAndLarge, err := store.Query(ctx, spec)
//
// Supported database libraries: pgxpool.Pool, sql.DB, and sqlx.DB, selected
// through the respective constructor.
package postgresengine
