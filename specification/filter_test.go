package specification_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/specification-filter-go/specification"
)

//nolint:funlen
func Test_Filter_SelectsMatchingItems(t *testing.T) {
	apple := testItem{name: "Apple", color: "green", size: "small"}
	tree := testItem{name: "Tree", color: "green", size: "large"}
	house := testItem{name: "House", color: "blue", size: "large"}
	items := []testItem{apple, tree, house}

	tests := []struct {
		name     string
		items    []testItem
		spec     specification.Specification[testItem]
		expected []testItem
	}{
		{
			name:     "single_criterion_selects_matching_items_in_order",
			items:    items,
			spec:     hasColor("green"),
			expected: []testItem{apple, tree},
		},
		{
			name:     "and_composition_selects_intersection",
			items:    items,
			spec:     specification.And(hasSize("large"), hasColor("green")),
			expected: []testItem{tree},
		},
		{
			name:     "or_composition_selects_union",
			items:    items,
			spec:     specification.Or(hasColor("blue"), hasSize("small")),
			expected: []testItem{apple, house},
		},
		{
			name:     "no_item_matches",
			items:    items,
			spec:     hasColor("red"),
			expected: []testItem{},
		},
		{
			name:     "all_items_match",
			items:    items,
			spec:     specification.All[testItem](),
			expected: items,
		},
		{
			name:     "nil_spec_matches_every_item",
			items:    items,
			spec:     nil,
			expected: items,
		},
		{
			name:     "empty_input_yields_empty_output",
			items:    []testItem{},
			spec:     hasColor("green"),
			expected: []testItem{},
		},
		{
			name:     "nil_input_yields_empty_output",
			items:    nil,
			spec:     hasColor("green"),
			expected: []testItem{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filtered := slices.Collect(specification.FilterSlice(tc.items, tc.spec))

			if len(tc.expected) == 0 {
				assert.Empty(t, filtered)
			} else {
				assert.Equal(t, tc.expected, filtered)
			}
		})
	}
}

func Test_Filter_IsLazy(t *testing.T) {
	evaluations := 0
	countingSpec := specification.Satisfies(func(_ testItem) bool {
		evaluations++
		return true
	})

	items := []testItem{{name: "Apple"}, {name: "Tree"}, {name: "House"}}
	filtered := specification.FilterSlice(items, countingSpec)

	assert.Zero(t, evaluations, "nothing may be evaluated before ranging starts")

	for item := range filtered {
		_ = item
		break // stop after the first match
	}

	assert.Equal(t, 1, evaluations, "evaluation must stop when the consumer stops")
}

func Test_Filter_CanBeRangedOverAgain(t *testing.T) {
	items := []testItem{
		{name: "Apple", color: "green"},
		{name: "House", color: "blue"},
	}
	filtered := specification.FilterSlice(items, hasColor("green"))

	first := slices.Collect(filtered)
	second := slices.Collect(filtered)

	assert.Equal(t, first, second)
}

func Test_Filter_WithNilSequence_YieldsNothing(t *testing.T) {
	var items iter.Seq[testItem]

	filtered := slices.Collect(specification.Filter(items, hasColor("green")))

	assert.Empty(t, filtered)
}

func Test_Filter_PreservesRelativeOrder(t *testing.T) {
	items := []testItem{
		{name: "A", size: "large"},
		{name: "B", size: "small"},
		{name: "C", size: "large"},
		{name: "D", size: "large"},
		{name: "E", size: "small"},
	}

	filtered := slices.Collect(specification.FilterSlice(items, hasSize("large")))

	names := make([]string, 0, len(filtered))
	for _, item := range filtered {
		names = append(names, item.name)
	}

	assert.Equal(t, []string{"A", "C", "D"}, names)
}

func Test_CollectMatching_ReturnsNonNilSlice(t *testing.T) {
	matching := specification.CollectMatching(nil, hasColor("green"))

	assert.NotNil(t, matching)
	assert.Empty(t, matching)
}

func Test_CollectMatching_PreservesInputOrder(t *testing.T) {
	apple := testItem{name: "Apple", color: "green", size: "small"}
	tree := testItem{name: "Tree", color: "green", size: "large"}
	house := testItem{name: "House", color: "blue", size: "large"}

	matching := specification.CollectMatching(
		[]testItem{apple, tree, house},
		specification.And(hasColor("green"), hasSize("large")),
	)

	assert.Equal(t, []testItem{tree}, matching)
}
