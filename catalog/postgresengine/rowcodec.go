package postgresengine

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/solidkit/specification-filter-go/catalog"
)

// productAttributes is the decoded form of the attributes column.
type productAttributes struct {
	color catalog.Color
	size  catalog.Size
}

// attributesRow is the JSON shape of the attributes column.
type attributesRow struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

func uuidFromString(value string) (uuid.UUID, error) {
	return uuid.Parse(value)
}

func attributesFromJSON(data []byte) (productAttributes, error) {
	var row attributesRow
	if err := jsoniter.ConfigFastest.Unmarshal(data, &row); err != nil {
		return productAttributes{}, errors.Join(catalog.ErrInvalidProductJSON, err)
	}

	color, colorErr := catalog.ParseColor(row.Color)
	if colorErr != nil {
		return productAttributes{}, colorErr
	}

	size, sizeErr := catalog.ParseSize(row.Size)
	if sizeErr != nil {
		return productAttributes{}, sizeErr
	}

	return productAttributes{color: color, size: size}, nil
}
