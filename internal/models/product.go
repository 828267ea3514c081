package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Product represents one catalog item as served by the upstream demo API.
// Fields are echoed from the upstream payload without validation.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// DisplayPrice formats the price for the product card, e.g. "$9.50".
func (p Product) DisplayPrice() string {
	return "$" + p.Price.StringFixed(2)
}

// Path returns the site-relative product path used by cards, the
// structured data and the sitemap.
func (p Product) Path() string {
	return "/product/" + strconv.Itoa(p.ID)
}
