package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rogerio-castellano/catalog-aggregator/internal/catalog"
)

// ErrInvalidQuery marks a listing request rejected before reaching the catalog.
var ErrInvalidQuery = errors.New("invalid query")

func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("sortfield", func(fl validator.FieldLevel) bool {
		return slices.Contains(catalog.SortFields(), fl.Field().String())
	})

	return validate
}

// parseListQuery reads n, page, sort_by and sort_order, applying defaults for absent values.
func (s *Server) parseListQuery(values url.Values) (ListProductsQuery, error) {
	q := ListProductsQuery{
		N:         catalog.DefaultPageSize,
		Page:      catalog.DefaultPage,
		SortBy:    values.Get("sort_by"),
		SortOrder: values.Get("sort_order"),
	}

	var err error
	if q.N, err = intParam(values, "n", q.N); err != nil {
		return q, err
	}
	if q.Page, err = intParam(values, "page", q.Page); err != nil {
		return q, err
	}

	if err := s.validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return q, fmt.Errorf("%w: %s", ErrInvalidQuery, validationMessage(verrs[0]))
		}
		return q, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return q, nil
}

func intParam(values url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' must be an integer", ErrInvalidQuery, name)
	}
	return n, nil
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "max":
		return fmt.Sprintf("'%s' should not exceed %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s", e.Field(), e.Param())
	case "sortfield":
		return fmt.Sprintf("'%s' must be one of: %s", e.Field(), strings.Join(catalog.SortFields(), " "))
	default:
		return fmt.Sprintf("'%s' is invalid", e.Field())
	}
}
