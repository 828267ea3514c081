package services

import (
	"log"
	"sort"
	"strings"

	"shopfront/internal/models"
)

const (
	listingName        = "All Products"
	listingDescription = "Browse the full Shopfront catalog of products across every category."
)

// ListingService derives the presentation data for the listing page from a
// fetched product list. The derivations are pure: they never mutate their
// input and return the same output for the same product order.
type ListingService struct {
	siteBaseURL string
	logger      *log.Logger
}

func NewListingService(siteBaseURL string, logger *log.Logger) *ListingService {
	return &ListingService{
		siteBaseURL: strings.TrimSuffix(siteBaseURL, "/"),
		logger:      logger,
	}
}

// Categories returns the distinct category values across the product list,
// sorted ascending for a stable sidebar order.
func (ls *ListingService) Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

// StructuredData builds the schema.org CollectionPage document for the
// product list. Positions are 1-based and follow the upstream order.
func (ls *ListingService) StructuredData(products []models.Product) models.CollectionPage {
	items := make([]models.ListItem, 0, len(products))
	for i, p := range products {
		items = append(items, models.ListItem{
			Type:     "ListItem",
			Position: i + 1,
			URL:      ls.siteBaseURL + p.Path(),
			Name:     p.Title,
		})
	}

	return models.CollectionPage{
		Context:     "https://schema.org",
		Type:        "CollectionPage",
		Name:        listingName,
		Description: listingDescription,
		URL:         ls.siteBaseURL + "/",
		MainEntity: models.ItemList{
			Type:            "ItemList",
			NumberOfItems:   len(products),
			ItemListElement: items,
		},
	}
}
