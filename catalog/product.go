package catalog

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// Color is a comparable product attribute with a closed set of values.
type Color string

// The known colors.
const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

// ParseColor maps a string to a known Color.
// Returns ErrUnknownColor for anything else, including the empty string.
func ParseColor(value string) (Color, error) {
	switch Color(value) {
	case ColorRed, ColorGreen, ColorBlue:
		return Color(value), nil
	default:
		return "", ErrUnknownColor
	}
}

// Size is a comparable product attribute with a closed set of values.
type Size string

// The known sizes.
const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// ParseSize maps a string to a known Size.
// Returns ErrUnknownSize for anything else, including the empty string.
func ParseSize(value string) (Size, error) {
	switch Size(value) {
	case SizeSmall, SizeMedium, SizeLarge:
		return Size(value), nil
	default:
		return "", ErrUnknownSize
	}
}

// Product is an immutable record with comparable attributes. It has no
// identity beyond its ID and is treated as a value for the lifetime of a
// filter operation.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildProduct
//   - BuildProductWithGeneratedID
//   - ProductFromJSON
type Product struct {
	ID    uuid.UUID
	Name  string
	Color Color
	Size  Size
}

// BuildProduct is a factory method for Product.
//
// It validates the given scalar input and returns an error for an empty name,
// the nil UUID, or attribute values outside the known sets.
func BuildProduct(id uuid.UUID, name string, color Color, size Size) (Product, error) {
	if id == uuid.Nil {
		return Product{}, ErrNilProductID
	}

	if name == "" {
		return Product{}, ErrEmptyProductName
	}

	if _, err := ParseColor(string(color)); err != nil {
		return Product{}, err
	}

	if _, err := ParseSize(string(size)); err != nil {
		return Product{}, err
	}

	return Product{
		ID:    id,
		Name:  name,
		Color: color,
		Size:  size,
	}, nil
}

// BuildProductWithGeneratedID is a factory method for Product.
//
// It generates a UUIDv7 identifier and otherwise behaves like BuildProduct.
func BuildProductWithGeneratedID(name string, color Color, size Size) (Product, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Product{}, err
	}

	return BuildProduct(id, name, color, size)
}

// productDocument is the JSON shape of a Product.
type productDocument struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

// attributeDocument is the JSON shape of the comparable attributes alone,
// as stored in the attributes column by the storage engines.
type attributeDocument struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// ToJSON serializes the product.
func (p Product) ToJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(productDocument{
		ID:    p.ID.String(),
		Name:  p.Name,
		Color: string(p.Color),
		Size:  string(p.Size),
	})
}

// AttributesJSON serializes only the comparable attributes of the product.
func (p Product) AttributesJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(attributeDocument{
		Color: string(p.Color),
		Size:  string(p.Size),
	})
}

// ProductFromJSON deserializes and validates a product.
// Returns an error joined with ErrInvalidProductJSON if the data is not
// valid JSON or does not describe a valid product.
func ProductFromJSON(data []byte) (Product, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return Product{}, ErrInvalidProductJSON
	}

	var doc productDocument
	if err := jsoniter.ConfigFastest.Unmarshal(data, &doc); err != nil {
		return Product{}, errors.Join(ErrInvalidProductJSON, err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return Product{}, errors.Join(ErrInvalidProductJSON, err)
	}

	product, err := BuildProduct(id, doc.Name, Color(doc.Color), Size(doc.Size))
	if err != nil {
		return Product{}, errors.Join(ErrInvalidProductJSON, err)
	}

	return product, nil
}
