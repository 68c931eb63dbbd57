package catalog

import (
	"strings"

	"github.com/solidkit/specification-filter-go/specification"
)

// ColorSpecification is satisfied by products of one specific color.
type ColorSpecification struct {
	color Color
}

// HasColor creates a specification matching products of the given color.
func HasColor(color Color) ColorSpecification {
	return ColorSpecification{color: color}
}

// Color returns the color the specification matches on.
func (s ColorSpecification) Color() Color {
	return s.color
}

// IsSatisfiedBy reports whether the product has the specified color.
func (s ColorSpecification) IsSatisfiedBy(product Product) bool {
	return product.Color == s.color
}

// SizeSpecification is satisfied by products of one specific size.
type SizeSpecification struct {
	size Size
}

// HasSize creates a specification matching products of the given size.
func HasSize(size Size) SizeSpecification {
	return SizeSpecification{size: size}
}

// Size returns the size the specification matches on.
func (s SizeSpecification) Size() Size {
	return s.size
}

// IsSatisfiedBy reports whether the product has the specified size.
func (s SizeSpecification) IsSatisfiedBy(product Product) bool {
	return product.Size == s.size
}

// NameStartsWithSpecification is satisfied by products whose name starts with a prefix.
type NameStartsWithSpecification struct {
	prefix string
}

// NameStartsWith creates a specification matching products whose name starts
// with the given prefix. The empty prefix matches every product.
func NameStartsWith(prefix string) NameStartsWithSpecification {
	return NameStartsWithSpecification{prefix: prefix}
}

// Prefix returns the name prefix the specification matches on.
func (s NameStartsWithSpecification) Prefix() string {
	return s.prefix
}

// IsSatisfiedBy reports whether the product name starts with the specified prefix.
func (s NameStartsWithSpecification) IsSatisfiedBy(product Product) bool {
	return strings.HasPrefix(product.Name, s.prefix)
}

// The typed specifications must satisfy the generic contract.
var (
	_ specification.Specification[Product] = ColorSpecification{}
	_ specification.Specification[Product] = SizeSpecification{}
	_ specification.Specification[Product] = NameStartsWithSpecification{}
)
