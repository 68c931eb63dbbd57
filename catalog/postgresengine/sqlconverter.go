package postgresengine

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/solidkit/specification-filter-go/catalog"
	"github.com/solidkit/specification-filter-go/specification"
)

const (
	attrKeyColor = "color"
	attrKeySize  = "size"
	sqlTrue      = "TRUE"
	sqlFalse     = "FALSE"
	sqlNot       = "NOT (?)"
	likeAny      = "%"
)

// likeEscaper escapes the LIKE wildcards in a name prefix so that the prefix
// is matched verbatim.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// compileSpecification translates a specification over products into a SQL
// boolean expression over the products table.
//
// The closed set of variants maps as follows:
//   - ColorSpecification / SizeSpecification -> JSONB containment on the attributes column
//   - NameStartsWithSpecification -> LIKE on the name column
//   - And / Or / Not / All -> boolean SQL composition
//
// A nil specification compiles like AllSpecification. Opaque specifications,
// e.g. specification.PredicateSpecification, cannot be compiled and yield
// catalog.ErrUnsupportedSpecification: callers decide whether to fail or to
// fall back to in-memory filtering.
func compileSpecification(spec specification.Specification[catalog.Product]) (goqu.Expression, error) {
	switch s := spec.(type) {
	case nil:
		return goqu.L(sqlTrue), nil

	case catalog.ColorSpecification:
		return attributeContainment(attrKeyColor, string(s.Color())), nil

	case catalog.SizeSpecification:
		return attributeContainment(attrKeySize, string(s.Size())), nil

	case catalog.NameStartsWithSpecification:
		return goqu.C(colName).Like(likeEscaper.Replace(s.Prefix()) + likeAny), nil

	case specification.AndSpecification[catalog.Product]:
		childExpressions, err := compileSpecifications(s.Specs())
		if err != nil {
			return nil, err
		}

		if len(childExpressions) == 0 {
			return goqu.L(sqlTrue), nil
		}

		return goqu.And(childExpressions...), nil

	case specification.OrSpecification[catalog.Product]:
		childExpressions, err := compileSpecifications(s.Specs())
		if err != nil {
			return nil, err
		}

		if len(childExpressions) == 0 {
			return goqu.L(sqlFalse), nil
		}

		return goqu.Or(childExpressions...), nil

	case specification.NotSpecification[catalog.Product]:
		innerExpression, err := compileSpecification(s.Spec())
		if err != nil {
			return nil, err
		}

		return goqu.L(sqlNot, innerExpression), nil

	case specification.AllSpecification[catalog.Product]:
		return goqu.L(sqlTrue), nil

	default:
		return nil, catalog.ErrUnsupportedSpecification
	}
}

func compileSpecifications(specs []specification.Specification[catalog.Product]) ([]goqu.Expression, error) {
	expressions := make([]goqu.Expression, 0, len(specs))

	for _, spec := range specs {
		expression, err := compileSpecification(spec)
		if err != nil {
			return nil, err
		}

		expressions = append(expressions, expression)
	}

	return expressions, nil
}

// attributeContainment builds a JSONB containment predicate on the attributes
// column. Attribute values come from the closed enum sets in the catalog
// package, so they are safe to inline.
func attributeContainment(key string, val string) goqu.Expression {
	return goqu.L(fmt.Sprintf(`%s @> '{"%s": "%s"}'`, colAttributes, key, val))
}
