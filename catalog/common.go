package catalog

import (
	"errors"
)

var (
	// ErrEmptyProductName is returned when a product is built with an empty name.
	ErrEmptyProductName = errors.New("product name must not be empty")

	// ErrNilProductID is returned when a product is built with the zero UUID.
	ErrNilProductID = errors.New("product id must not be the nil uuid")

	// ErrUnknownColor is returned when a string does not name a known color.
	ErrUnknownColor = errors.New("unknown color")

	// ErrUnknownSize is returned when a string does not name a known size.
	ErrUnknownSize = errors.New("unknown size")

	// ErrInvalidProductJSON is returned when product JSON data is malformed or invalid.
	ErrInvalidProductJSON = errors.New("product json is not valid")

	// ErrEmptyProductsTableName is returned when an empty table name is configured.
	ErrEmptyProductsTableName = errors.New("empty products table name supplied")

	// ErrNilDatabaseConnection is returned when a storage engine is built without a database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrUnsupportedSpecification is returned when a specification cannot be
	// compiled to the storage engine's query language, e.g. an opaque predicate.
	ErrUnsupportedSpecification = errors.New("specification can not be compiled to a query")

	// ErrBuildingQueryFailed is returned when building a SQL query fails.
	ErrBuildingQueryFailed = errors.New("building the query failed")

	// ErrQueryingProductsFailed is returned when the product select query fails.
	ErrQueryingProductsFailed = errors.New("querying products failed")

	// ErrScanningDBRowFailed is returned when scanning a database row fails.
	ErrScanningDBRowFailed = errors.New("scanning the database row failed")

	// ErrBuildingProductFailed is returned when a stored row can not be turned into a Product.
	ErrBuildingProductFailed = errors.New("building product from database row failed")

	// ErrSavingProductFailed is returned when the product upsert fails.
	ErrSavingProductFailed = errors.New("saving product failed")

	// ErrRemovingProductsFailed is returned when the product delete fails.
	ErrRemovingProductsFailed = errors.New("removing products failed")

	// ErrCountingProductsFailed is returned when the product count query fails.
	ErrCountingProductsFailed = errors.New("counting products failed")

	// ErrGettingRowsAffectedFailed is returned when the affected row count can not be read.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
)
