package web

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
)

func TestTemplates_ParsesEmbeddedSet(t *testing.T) {
	tpl := Templates()

	require.NotNil(t, tpl)
	assert.NotNil(t, tpl.Lookup("listing.tmpl"))
	assert.NotNil(t, tpl.Lookup("error.tmpl"))
}

func TestTemplates_ListingRender(t *testing.T) {
	products := []models.Product{
		{ID: 3, Title: "Portable External Drive", Price: decimal.NewFromFloat(64), Category: "electronics", Image: "https://img.example/3.jpg"},
	}

	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, "listing.tmpl", map[string]any{
		"title":           "All Products | Shopfront",
		"products":        products,
		"categories":      []string{"electronics"},
		"item_count":      1,
		"structured_data": template.JS(`{"@context":"https://schema.org"}`),
		"year":            2026,
	})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, "Portable External Drive")
	assert.Contains(t, body, "1 items")
	assert.Contains(t, body, `href="/product/3"`)
	assert.Contains(t, body, "$64.00")
	assert.Contains(t, body, `{"@context":"https://schema.org"}`)
	assert.Contains(t, body, `aria-label="Product filters"`)
	assert.Contains(t, body, `aria-label="Sort products"`)
}

func TestTemplates_ErrorRender(t *testing.T) {
	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, "error.tmpl", map[string]any{
		"status":  503,
		"title":   "Catalog unavailable",
		"message": "We could not load the product catalog right now.",
	})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, "503")
	assert.Contains(t, body, "Catalog unavailable")
}
