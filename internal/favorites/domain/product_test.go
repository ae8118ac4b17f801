package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductJSON(t *testing.T) {
	score := 4
	product := Product{
		ID:          1842,
		Title:       "Cafeteira Espresso",
		Image:       "http://img.example.com/1842.jpg",
		Price:       decimal.RequireFromString("1842.3"),
		ReviewScore: &score,
		Link:        "http://catalog.example.com/api/product/1842/",
	}

	raw, err := json.Marshal(product)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, float64(1842), got["id"])
	assert.Equal(t, "Cafeteira Espresso", got["title"])
	// Price is a string, never a float
	assert.Equal(t, "1842.3", got["price"])
	assert.Equal(t, float64(4), got["review_score"])

	// Timestamps are internal
	assert.NotContains(t, got, "created_at")
	assert.NotContains(t, got, "updated_at")
}

func TestProductJSONOmitsNilReviewScore(t *testing.T) {
	product := Product{
		ID:    7,
		Title: "Panela",
		Price: decimal.RequireFromString("99.9"),
	}

	raw, err := json.Marshal(product)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.NotContains(t, got, "review_score")
}
