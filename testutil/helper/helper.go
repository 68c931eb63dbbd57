package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/solidkit/specification-filter-go/catalog"
)

// GivenUniqueID generates a UUID v7 for test entity IDs.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// GivenProduct builds a validated product for a test.
func GivenProduct(t testing.TB, name string, color catalog.Color, size catalog.Size) catalog.Product {
	t.Helper()

	product, err := catalog.BuildProduct(GivenUniqueID(t), name, color, size)
	require.NoError(t, err, "error in arranging test data")

	return product
}

// GivenSampleProducts returns the canonical product trio used across the
// tests: a green small apple, a green large tree, and a blue large house,
// in that order.
func GivenSampleProducts(t testing.TB) []catalog.Product {
	t.Helper()

	return []catalog.Product{
		GivenProduct(t, "Apple", catalog.ColorGreen, catalog.SizeSmall),
		GivenProduct(t, "Tree", catalog.ColorGreen, catalog.SizeLarge),
		GivenProduct(t, "House", catalog.ColorBlue, catalog.SizeLarge),
	}
}
