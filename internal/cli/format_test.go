package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcraddock/hbnb/internal/api"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		expected string
	}{
		{"zero", 0, "$0.00"},
		{"whole", 100, "$100.00"},
		{"fraction", 89.5, "$89.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPrice(tt.price))
		})
	}
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		name     string
		rating   int
		expected string
	}{
		{"one", 1, "★☆☆☆☆"},
		{"three", 3, "★★★☆☆"},
		{"five", 5, "★★★★★"},
		{"clamp low", 0, "★☆☆☆☆"},
		{"clamp high", 9, "★★★★★"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatRating(tt.rating))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate("éééééééééééé", 10))
}

func TestPrintPlaceTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPlaceTable(&buf, nil))
	assert.Equal(t, "No places found.\n", buf.String())
}

func TestPrintReviewListEmpty(t *testing.T) {
	var buf bytes.Buffer
	printReviewList(&buf, []api.ReviewSummary{})
	assert.Equal(t, "No reviews.\n", buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, api.AmenityResponse{ID: "a1", Name: "wifi"}))
	assert.JSONEq(t, `{"id":"a1","name":"wifi"}`, buf.String())
	assert.Contains(t, buf.String(), "\n  ")
}
