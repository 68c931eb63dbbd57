package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/solidkit/specification-filter-go/catalog"
	"github.com/solidkit/specification-filter-go/catalog/postgresengine/internal/adapters"
	"github.com/solidkit/specification-filter-go/specification"
)

const (
	defaultProductsTableName     = "products"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgBuildUpsertQueryFailed = "failed to build upsert query"
	logMsgBuildDeleteQueryFailed = "failed to build delete query"
	logMsgBuildCountQueryFailed  = "failed to build count query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgDBExecFailed           = "database execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildProductFailed     = "failed to build product from database row"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgInMemoryFallback       = "specification is not compilable to sql, filtering in memory"
	logMsgQueryCompleted         = "query completed"
	logMsgProductSaved           = "product saved"
	logMsgProductsRemoved        = "products removed"
	logMsgProductsCounted        = "products counted"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "catalog operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrProductID             = "product_id"
	logAttrProductCount          = "product_count"
	logAttrDurationMS            = "duration_ms"
	logAttrRowsAffected          = "rows_affected"
	logActionQuery               = "query"
	logActionSave                = "save"
	logActionRemove              = "remove"
	logActionCount               = "count"
	colPosition                  = "position"
	colID                        = "id"
	colName                      = "name"
	colAttributes                = "attributes"
	dialectPostgres              = "postgres"
	castJsonb                    = "?::jsonb"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
	productSpec       = specification.Specification[catalog.Product]
)

// Catalog represents a Postgres-backed, filterable product collection.
// It leverages a database adapter and supports customizable logging, metrics,
// tracing, and product table configuration.
//
// Queries accept the same specification values that filter in-memory
// collections: the closed set of catalog specifications is compiled to SQL,
// opaque predicates fall back to scanning and filtering in memory.
type Catalog struct {
	db                adapters.DBAdapter
	productsTableName string
	logger            catalog.Logger
	contextualLogger  catalog.ContextualLogger
	metricsCollector  catalog.MetricsCollector
	tracingCollector  catalog.TracingCollector
}

type queryResultRow struct {
	id         string
	name       string
	attributes []byte
}

// NewCatalogFromPGXPool creates a new Catalog using a pgx Pool with optional configuration.
func NewCatalogFromPGXPool(db *pgxpool.Pool, options ...Option) (Catalog, error) {
	if db == nil {
		return Catalog{}, catalog.ErrNilDatabaseConnection
	}

	return applyOptions(
		Catalog{
			db:                adapters.NewPGXAdapter(db),
			productsTableName: defaultProductsTableName,
		},
		options...)
}

// NewCatalogFromSQLDB creates a new Catalog using a sql.DB with optional configuration.
func NewCatalogFromSQLDB(db *sql.DB, options ...Option) (Catalog, error) {
	if db == nil {
		return Catalog{}, catalog.ErrNilDatabaseConnection
	}

	return applyOptions(
		Catalog{
			db:                adapters.NewSQLAdapter(db),
			productsTableName: defaultProductsTableName,
		},
		options...)
}

// NewCatalogFromSQLX creates a new Catalog using a sqlx.DB with optional configuration.
func NewCatalogFromSQLX(db *sqlx.DB, options ...Option) (Catalog, error) {
	if db == nil {
		return Catalog{}, catalog.ErrNilDatabaseConnection
	}

	return applyOptions(
		Catalog{
			db:                adapters.NewSQLXAdapter(db),
			productsTableName: defaultProductsTableName,
		},
		options...)
}

func applyOptions(c Catalog, options ...Option) (Catalog, error) {
	for _, option := range options {
		if err := option(&c); err != nil {
			return Catalog{}, err
		}
	}

	return c, nil
}

// Query retrieves the products satisfying the given specification, preserving
// insertion order.
//
// Specifications from the closed catalog set are compiled into the WHERE
// clause and evaluated by Postgres. An opaque specification, e.g. one built
// with specification.Satisfies, causes a full scan with in-memory filtering
// through specification.Filter instead, which is logged at warn level.
func (c Catalog) Query(ctx context.Context, spec productSpec) ([]catalog.Product, error) {
	ctx, span := c.startSpan(ctx, spanNameQuery)

	whereExpression, compileErr := compileSpecification(spec)
	if errors.Is(compileErr, catalog.ErrUnsupportedSpecification) {
		products, err := c.queryWhere(ctx, goqu.L(sqlTrue), logActionQuery, metricQueryDuration)
		if err != nil {
			c.finishSpan(span, statusError, errorTypeOf(err))
			return nil, err
		}

		c.logWarnContext(ctx, logMsgInMemoryFallback, logAttrProductCount, len(products))
		c.recordFallbackMetricsContext(ctx, logActionQuery)

		matching := specification.CollectMatching(products, spec)
		c.finishSpan(span, statusOK, "")

		return matching, nil
	}

	if compileErr != nil {
		c.logErrorContext(ctx, logMsgBuildSelectQueryFailed, compileErr)
		c.finishSpan(span, statusError, errorTypeOf(compileErr))

		return nil, compileErr
	}

	products, err := c.queryWhere(ctx, whereExpression, logActionQuery, metricQueryDuration)
	if err != nil {
		c.finishSpan(span, statusError, errorTypeOf(err))
		return nil, err
	}

	c.finishSpan(span, statusOK, "")

	return products, nil
}

// queryWhere runs the select for the given WHERE expression and maps the rows
// to products. The scan duration is recorded under durationMetric so fallback
// scans count against the operation that triggered them.
func (c Catalog) queryWhere(
	ctx context.Context,
	where goqu.Expression,
	action string,
	durationMetric string,
) ([]catalog.Product, error) {
	sqlQuery, buildQueryErr := c.buildSelectQuery(where)
	if buildQueryErr != nil {
		c.logErrorContext(ctx, logMsgBuildSelectQueryFailed, buildQueryErr)
		return nil, buildQueryErr
	}

	rows, duration, queryErr := c.executeQuery(ctx, sqlQuery, action)
	if queryErr != nil {
		return nil, queryErr
	}
	defer c.closeRows(ctx, rows)

	products, scanErr := c.processQueryResults(ctx, rows)
	if scanErr != nil {
		return nil, scanErr
	}

	c.logOperationContext(
		ctx,
		logMsgQueryCompleted,
		logAttrProductCount, len(products),
		logAttrDurationMS, toMilliseconds(duration))
	c.recordDurationMetricsContext(ctx, durationMetric, duration, action, statusOK)

	return products, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (c Catalog) executeQuery(ctx context.Context, sqlQuery string, action string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := c.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	c.logQueryWithDuration(ctx, sqlQuery, action, duration)

	if queryErr != nil {
		c.logErrorContext(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		c.recordErrorMetricsContext(ctx, action, errorTypeDatabase)

		return nil, duration, errors.Join(catalog.ErrQueryingProductsFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (c Catalog) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		c.logWarnContext(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// processQueryResults processes database rows and converts them to products.
func (c Catalog) processQueryResults(ctx context.Context, rows adapters.DBRows) ([]catalog.Product, error) {
	result := queryResultRow{}
	products := make([]catalog.Product, 0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.id, &result.name, &result.attributes)
		if rowScanErr != nil {
			c.logErrorContext(ctx, logMsgScanRowFailed, rowScanErr)
			return nil, errors.Join(catalog.ErrScanningDBRowFailed, rowScanErr)
		}

		product, buildErr := productFromRow(result)
		if buildErr != nil {
			c.logErrorContext(ctx, logMsgBuildProductFailed, buildErr, logAttrProductID, result.id)
			return nil, errors.Join(catalog.ErrBuildingProductFailed, buildErr)
		}

		products = append(products, product)
	}

	return products, nil
}

// Save upserts the product by its ID: a new product is inserted, an existing
// one has its name and attributes overwritten.
func (c Catalog) Save(ctx context.Context, product catalog.Product) error {
	ctx, span := c.startSpan(ctx, spanNameSave)

	sqlQuery, buildQueryErr := c.buildUpsertQuery(product)
	if buildQueryErr != nil {
		c.logErrorContext(ctx, logMsgBuildUpsertQueryFailed, buildQueryErr, logAttrProductID, product.ID.String())
		c.finishSpan(span, statusError, errorTypeOf(buildQueryErr))

		return buildQueryErr
	}

	_, duration, execErr := c.executeExec(ctx, sqlQuery, logActionSave, catalog.ErrSavingProductFailed)
	if execErr != nil {
		c.finishSpan(span, statusError, errorTypeOf(execErr))
		return execErr
	}

	c.logOperationContext(
		ctx,
		logMsgProductSaved,
		logAttrProductID, product.ID.String(),
		logAttrDurationMS, toMilliseconds(duration))
	c.recordDurationMetricsContext(ctx, metricSaveDuration, duration, logActionSave, statusOK)
	c.finishSpan(span, statusOK, "")

	return nil
}

// Remove deletes the products satisfying the given specification and returns
// how many were removed.
//
// Unlike Query, Remove has no in-memory fallback: a specification that cannot
// be compiled to SQL yields catalog.ErrUnsupportedSpecification, since
// deleting through an opaque predicate would require a read-modify-write
// round trip per row.
func (c Catalog) Remove(ctx context.Context, spec productSpec) (int64, error) {
	ctx, span := c.startSpan(ctx, spanNameRemove)

	whereExpression, compileErr := compileSpecification(spec)
	if compileErr != nil {
		c.logErrorContext(ctx, logMsgBuildDeleteQueryFailed, compileErr)
		c.finishSpan(span, statusError, errorTypeOf(compileErr))

		return 0, compileErr
	}

	sqlQuery, buildQueryErr := c.buildDeleteQuery(whereExpression)
	if buildQueryErr != nil {
		c.logErrorContext(ctx, logMsgBuildDeleteQueryFailed, buildQueryErr)
		c.finishSpan(span, statusError, errorTypeOf(buildQueryErr))

		return 0, buildQueryErr
	}

	rowsAffected, duration, execErr := c.executeExec(ctx, sqlQuery, logActionRemove, catalog.ErrRemovingProductsFailed)
	if execErr != nil {
		c.finishSpan(span, statusError, errorTypeOf(execErr))
		return 0, execErr
	}

	c.logOperationContext(
		ctx,
		logMsgProductsRemoved,
		logAttrRowsAffected, rowsAffected,
		logAttrDurationMS, toMilliseconds(duration))
	c.recordDurationMetricsContext(ctx, metricRemoveDuration, duration, logActionRemove, statusOK)
	c.finishSpan(span, statusOK, "")

	return rowsAffected, nil
}

// Count returns how many products satisfy the given specification.
//
// Compilable specifications count in Postgres; opaque ones fall back to a
// full scan with in-memory filtering, logged at warn level.
func (c Catalog) Count(ctx context.Context, spec productSpec) (int64, error) {
	ctx, span := c.startSpan(ctx, spanNameCount)

	whereExpression, compileErr := compileSpecification(spec)
	if errors.Is(compileErr, catalog.ErrUnsupportedSpecification) {
		products, err := c.queryWhere(ctx, goqu.L(sqlTrue), logActionCount, metricCountDuration)
		if err != nil {
			c.finishSpan(span, statusError, errorTypeOf(err))
			return 0, err
		}

		c.logWarnContext(ctx, logMsgInMemoryFallback, logAttrProductCount, len(products))
		c.recordFallbackMetricsContext(ctx, logActionCount)

		count := int64(len(specification.CollectMatching(products, spec)))
		c.finishSpan(span, statusOK, "")

		return count, nil
	}

	if compileErr != nil {
		c.logErrorContext(ctx, logMsgBuildCountQueryFailed, compileErr)
		c.finishSpan(span, statusError, errorTypeOf(compileErr))

		return 0, compileErr
	}

	sqlQuery, buildQueryErr := c.buildCountQuery(whereExpression)
	if buildQueryErr != nil {
		c.logErrorContext(ctx, logMsgBuildCountQueryFailed, buildQueryErr)
		c.finishSpan(span, statusError, errorTypeOf(buildQueryErr))

		return 0, buildQueryErr
	}

	count, duration, countErr := c.executeCountQuery(ctx, sqlQuery)
	if countErr != nil {
		c.finishSpan(span, statusError, errorTypeOf(countErr))
		return 0, countErr
	}

	c.logOperationContext(
		ctx,
		logMsgProductsCounted,
		logAttrProductCount, count,
		logAttrDurationMS, toMilliseconds(duration))
	c.recordDurationMetricsContext(ctx, metricCountDuration, duration, logActionCount, statusOK)
	c.finishSpan(span, statusOK, "")

	return count, nil
}

// executeExec executes a SQL statement and returns rows affected and duration.
func (c Catalog) executeExec(ctx context.Context, sqlQuery string, action string, sentinel error) (
	rowsAffectedInt64,
	queryDuration,
	error,
) {

	start := time.Now()
	result, execErr := c.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	c.logQueryWithDuration(ctx, sqlQuery, action, duration)

	if execErr != nil {
		c.logErrorContext(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		c.recordErrorMetricsContext(ctx, action, errorTypeDatabase)

		return 0, duration, errors.Join(sentinel, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		c.logErrorContext(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, duration, errors.Join(catalog.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

// executeCountQuery executes the count query and scans the single result row.
func (c Catalog) executeCountQuery(ctx context.Context, sqlQuery string) (int64, time.Duration, error) {
	rows, duration, queryErr := c.executeQuery(ctx, sqlQuery, logActionCount)
	if queryErr != nil {
		return 0, duration, queryErr
	}
	defer c.closeRows(ctx, rows)

	var count int64

	if rows.Next() {
		if scanErr := rows.Scan(&count); scanErr != nil {
			c.logErrorContext(ctx, logMsgScanRowFailed, scanErr)
			return 0, duration, errors.Join(catalog.ErrScanningDBRowFailed, scanErr)
		}
	}

	return count, duration, nil
}

func (c Catalog) buildSelectQuery(where goqu.Expression) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(c.productsTableName).
		Select(colID, colName, colAttributes).
		Where(where).
		Order(goqu.I(colPosition).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(catalog.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (c Catalog) buildUpsertQuery(product catalog.Product) (sqlQueryString, error) {
	attributesJSON, attributesErr := product.AttributesJSON()
	if attributesErr != nil {
		return "", errors.Join(catalog.ErrBuildingQueryFailed, attributesErr)
	}

	attributesValue := goqu.L(castJsonb, string(attributesJSON))

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(c.productsTableName).
		Cols(colID, colName, colAttributes).
		Vals(goqu.Vals{product.ID.String(), product.Name, attributesValue}).
		OnConflict(goqu.DoUpdate(
			colID,
			goqu.Record{colName: product.Name, colAttributes: attributesValue},
		))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(catalog.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (c Catalog) buildDeleteQuery(where goqu.Expression) (sqlQueryString, error) {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(c.productsTableName).
		Where(where)

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(catalog.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (c Catalog) buildCountQuery(where goqu.Expression) (sqlQueryString, error) {
	countStmt := goqu.Dialect(dialectPostgres).
		From(c.productsTableName).
		Select(goqu.COUNT(goqu.Star())).
		Where(where)

	sqlQuery, _, toSQLErr := countStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(catalog.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// productFromRow maps a database row to a validated product.
func productFromRow(row queryResultRow) (catalog.Product, error) {
	id, parseErr := uuidFromString(row.id)
	if parseErr != nil {
		return catalog.Product{}, parseErr
	}

	attributes, attributesErr := attributesFromJSON(row.attributes)
	if attributesErr != nil {
		return catalog.Product{}, attributesErr
	}

	return catalog.BuildProduct(id, row.name, attributes.color, attributes.size)
}
