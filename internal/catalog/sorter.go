package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type comparator func(a, b models.Product) int

// sortFields is the whitelist of sortable product fields.
var sortFields = map[string]comparator{
	"name":     func(a, b models.Product) int { return strings.Compare(a.Name, b.Name) },
	"category": func(a, b models.Product) int { return strings.Compare(a.Category, b.Category) },
	"company":  func(a, b models.Product) int { return strings.Compare(a.Company, b.Company) },
	"price":    func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) },
	"rating":   func(a, b models.Product) int { return cmp.Compare(a.Rating, b.Rating) },
	"discount": func(a, b models.Product) int { return cmp.Compare(a.Discount, b.Discount) },
}

// SortFields lists the accepted sort_by values.
func SortFields() []string {
	fields := make([]string, 0, len(sortFields))
	for f := range sortFields {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

func lookupComparator(field, order string) (comparator, error) {
	compare, ok := sortFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, field)
	}
	switch order {
	case "", SortAsc:
		return compare, nil
	case SortDesc:
		return func(a, b models.Product) int { return compare(b, a) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}
}

// ValidateSort checks field and order without sorting anything. An empty field is valid.
func ValidateSort(field, order string) error {
	if field == "" {
		if order != "" && order != SortAsc && order != SortDesc {
			return fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
		}
		return nil
	}
	_, err := lookupComparator(field, order)
	return err
}

// Sort returns a stably sorted copy of products. With no field the input order is kept.
func Sort(products []models.Product, field, order string) ([]models.Product, error) {
	if err := ValidateSort(field, order); err != nil {
		return nil, err
	}
	out := slices.Clone(products)
	if field == "" {
		return out, nil
	}

	compare, _ := lookupComparator(field, order)
	slices.SortStableFunc(out, compare)
	return out, nil
}
