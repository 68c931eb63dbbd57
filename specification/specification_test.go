package specification_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/specification-filter-go/specification"
)

type testItem struct {
	name  string
	color string
	size  string
}

func hasColor(color string) specification.Specification[testItem] {
	return specification.Satisfies(func(item testItem) bool {
		return item.color == color
	})
}

func hasSize(size string) specification.Specification[testItem] {
	return specification.Satisfies(func(item testItem) bool {
		return item.size == size
	})
}

func nameStartsWith(prefix string) specification.Specification[testItem] {
	return specification.Satisfies(func(item testItem) bool {
		return strings.HasPrefix(item.name, prefix)
	})
}

//nolint:funlen
func Test_Specification_IsSatisfiedBy(t *testing.T) {
	apple := testItem{name: "Apple", color: "green", size: "small"}
	tree := testItem{name: "Tree", color: "green", size: "large"}
	house := testItem{name: "House", color: "blue", size: "large"}

	tests := []struct {
		name     string
		spec     specification.Specification[testItem]
		item     testItem
		expected bool
	}{
		{
			name:     "color_spec_satisfied",
			spec:     hasColor("green"),
			item:     apple,
			expected: true,
		},
		{
			name:     "color_spec_not_satisfied",
			spec:     hasColor("green"),
			item:     house,
			expected: false,
		},
		{
			name:     "and_spec_satisfied_when_all_children_satisfied",
			spec:     specification.And(hasColor("green"), hasSize("large")),
			item:     tree,
			expected: true,
		},
		{
			name:     "and_spec_not_satisfied_when_one_child_fails",
			spec:     specification.And(hasColor("green"), hasSize("large")),
			item:     apple,
			expected: false,
		},
		{
			name:     "and_spec_not_satisfied_when_all_children_fail",
			spec:     specification.And(hasColor("red"), hasSize("medium")),
			item:     house,
			expected: false,
		},
		{
			name:     "and_spec_with_three_children",
			spec:     specification.And(hasColor("green"), hasSize("large"), nameStartsWith("T")),
			item:     tree,
			expected: true,
		},
		{
			name:     "or_spec_satisfied_when_one_child_satisfied",
			spec:     specification.Or(hasColor("blue"), hasSize("small")),
			item:     apple,
			expected: true,
		},
		{
			name:     "or_spec_not_satisfied_when_no_child_satisfied",
			spec:     specification.Or(hasColor("red"), hasSize("medium")),
			item:     tree,
			expected: false,
		},
		{
			name:     "not_spec_inverts_result",
			spec:     specification.Not(hasColor("green")),
			item:     house,
			expected: true,
		},
		{
			name:     "not_spec_inverts_satisfied_child",
			spec:     specification.Not(hasColor("green")),
			item:     apple,
			expected: false,
		},
		{
			name:     "all_spec_satisfied_by_anything",
			spec:     specification.All[testItem](),
			item:     house,
			expected: true,
		},
		{
			name:     "nested_composition",
			spec:     specification.And[testItem](specification.Or(hasColor("green"), hasColor("blue")), specification.Not(hasSize("small"))),
			item:     house,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.spec.IsSatisfiedBy(tc.item))
		})
	}
}

func Test_And_SanitizesNilSpecs(t *testing.T) {
	spec := specification.And(hasColor("green"), nil, hasSize("large"), nil)

	assert.Len(t, spec.Specs(), 2)
	assert.True(t, spec.IsSatisfiedBy(testItem{name: "Tree", color: "green", size: "large"}))
}

func Test_And_WithoutChildren_IsVacuouslySatisfied(t *testing.T) {
	spec := specification.And[testItem](nil)

	assert.Empty(t, spec.Specs())
	assert.True(t, spec.IsSatisfiedBy(testItem{}))
}

func Test_Or_SanitizesNilSpecs(t *testing.T) {
	spec := specification.Or(nil, hasColor("blue"))

	assert.Len(t, spec.Specs(), 1)
	assert.True(t, spec.IsSatisfiedBy(testItem{color: "blue"}))
}

func Test_Or_WithoutChildren_IsSatisfiedByNothing(t *testing.T) {
	spec := specification.Or[testItem](nil)

	assert.Empty(t, spec.Specs())
	assert.False(t, spec.IsSatisfiedBy(testItem{}))
}

func Test_Not_ExposesWrappedSpec(t *testing.T) {
	inner := hasColor("green")
	spec := specification.Not(inner)

	assert.Equal(t, inner, spec.Spec())
}

func Test_Not_SanitizesNilSpec(t *testing.T) {
	spec := specification.Not[testItem](nil)

	assert.NotPanics(t, func() {
		assert.False(t, spec.IsSatisfiedBy(testItem{name: "Apple"}))
	})
	assert.Equal(t, specification.All[testItem](), spec.Spec())
}

func Test_Satisfies_WithNilPredicate_IsSatisfiedByNothing(t *testing.T) {
	spec := specification.Satisfies[testItem](nil)

	assert.False(t, spec.IsSatisfiedBy(testItem{name: "Apple"}))
}

func Test_Specification_EvaluationIsRepeatable(t *testing.T) {
	spec := specification.And(hasColor("green"), hasSize("small"))
	item := testItem{name: "Apple", color: "green", size: "small"}

	for range 3 {
		assert.True(t, spec.IsSatisfiedBy(item))
	}
}
