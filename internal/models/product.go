package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingFields is returned when an upstream record lacks one of the product fields.
var ErrMissingFields = errors.New("record is missing required fields")

// Product represents a catalog product as served by the aggregator.
// ID is the provider's id on lookup and a synthetic, response-scoped id on listings.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Company  string  `json:"company"`
	Discount float64 `json:"discount"`
}

// ProductRecord is the upstream wire shape. Pointers tell a missing field apart from a zero value.
// Providers send ids either as strings or as numbers, so ID stays raw.
type ProductRecord struct {
	ID       json.RawMessage `json:"id"`
	Name     *string         `json:"name"`
	Category *string         `json:"category"`
	Price    *float64        `json:"price"`
	Rating   *float64        `json:"rating"`
	Company  *string         `json:"company"`
	Discount *float64        `json:"discount"`
}

// Product builds a Product from the record. Every field must be present.
func (r ProductRecord) Product() (Product, error) {
	var missing []string
	if len(r.ID) == 0 || string(r.ID) == "null" {
		missing = append(missing, "id")
	}
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Category == nil {
		missing = append(missing, "category")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if r.Rating == nil {
		missing = append(missing, "rating")
	}
	if r.Company == nil {
		missing = append(missing, "company")
	}
	if r.Discount == nil {
		missing = append(missing, "discount")
	}
	if len(missing) > 0 {
		return Product{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	return Product{
		ID:       rawID(r.ID),
		Name:     *r.Name,
		Category: *r.Category,
		Price:    *r.Price,
		Rating:   *r.Rating,
		Company:  *r.Company,
		Discount: *r.Discount,
	}, nil
}

func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
