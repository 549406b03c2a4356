package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, raw string) ProductRecord {
	t.Helper()
	var rec ProductRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

func TestProductRecord_Product(t *testing.T) {
	rec := decodeRecord(t, `{"id":"p1","name":"Laptop","category":"Laptop","price":999.5,"rating":4.2,"company":"AMZ","discount":10}`)

	p, err := rec.Product()
	require.NoError(t, err)
	assert.Equal(t, Product{
		ID:       "p1",
		Name:     "Laptop",
		Category: "Laptop",
		Price:    999.5,
		Rating:   4.2,
		Company:  "AMZ",
		Discount: 10,
	}, p)
}

func TestProductRecord_NumericID(t *testing.T) {
	rec := decodeRecord(t, `{"id":42,"name":"Phone","category":"Phone","price":1,"rating":1,"company":"FLP","discount":0}`)

	p, err := rec.Product()
	require.NoError(t, err)
	assert.Equal(t, "42", p.ID)
}

func TestProductRecord_ZeroValuesArePresent(t *testing.T) {
	rec := decodeRecord(t, `{"id":"","name":"","category":"","price":0,"rating":0,"company":"","discount":0}`)

	_, err := rec.Product()
	assert.NoError(t, err)
}

func TestProductRecord_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		missing string
	}{
		{"no id", `{"name":"a","category":"c","price":1,"rating":1,"company":"x","discount":0}`, "id"},
		{"null id", `{"id":null,"name":"a","category":"c","price":1,"rating":1,"company":"x","discount":0}`, "id"},
		{"no price", `{"id":"1","name":"a","category":"c","rating":1,"company":"x","discount":0}`, "price"},
		{"no discount", `{"id":"1","name":"a","category":"c","price":1,"rating":1,"company":"x"}`, "discount"},
		{"empty object", `{}`, "id, name, category, price, rating, company, discount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeRecord(t, tt.raw).Product()
			require.ErrorIs(t, err, ErrMissingFields)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}
