package main

import (
	"encoding/json"
	"encoding/xml"
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shopfront/internal/config"
	"shopfront/internal/errors"
	"shopfront/internal/services"
	"shopfront/internal/web"
)

var (
	cfg            *config.Config
	catalogService *services.CatalogService
	listingService *services.ListingService
	logger         *log.Logger
)

func init() {
	cfg = config.Load()

	// Initialize logger
	logger = log.New(os.Stdout, "[SHOPFRONT] ", log.LstdFlags)

	// Initialize services
	catalogService = services.NewCatalogService(cfg.CatalogURL, cfg.HTTPTimeout, logger)
	listingService = services.NewListingService(cfg.SiteBaseURL, logger)
}

// sitemapURLSet is the <urlset> document served at /sitemap.xml.
type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	title := "Something went wrong"
	message := "An unexpected error occurred. Please try again."

	if apiErr, ok := err.(*errors.APIError); ok {
		switch apiErr.Type {
		case errors.ErrorTypeExternal:
			status = http.StatusServiceUnavailable
			title = "Catalog unavailable"
			message = "We could not load the product catalog right now. Please try again in a moment."
		case errors.ErrorTypeNotFound:
			status = http.StatusNotFound
			title = "Page not found"
			message = apiErr.Message
		}
	}

	c.HTML(status, "error.tmpl", gin.H{
		"status":  status,
		"title":   title,
		"message": message,
	})
}

func setupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(web.RequestID())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/", func(c *gin.Context) {
		products, err := catalogService.FetchProducts(c.Request.Context())
		if err != nil {
			renderError(c, err)
			return
		}

		doc := listingService.StructuredData(products)
		jsonLD, err := json.Marshal(doc)
		if err != nil {
			renderError(c, errors.NewInternalError(err))
			return
		}

		c.Header("Cache-Control", "no-store")
		c.HTML(http.StatusOK, "listing.tmpl", gin.H{
			"title":           "All Products | Shopfront",
			"products":        products,
			"categories":      listingService.Categories(products),
			"item_count":      len(products),
			"structured_data": template.JS(jsonLD),
			"year":            time.Now().Year(),
		})
	})

	r.GET("/sitemap.xml", func(c *gin.Context) {
		products, err := catalogService.FetchProducts(c.Request.Context())
		if err != nil {
			renderError(c, err)
			return
		}

		// The structured data already carries the canonical listing
		// and product URLs, so the sitemap reuses them.
		doc := listingService.StructuredData(products)
		urls := make([]sitemapURL, 0, len(products)+1)
		urls = append(urls, sitemapURL{Loc: doc.URL, ChangeFreq: "daily", Priority: "1.0"})
		for _, item := range doc.MainEntity.ItemListElement {
			urls = append(urls, sitemapURL{Loc: item.URL, ChangeFreq: "daily", Priority: "0.8"})
		}

		out, err := xml.MarshalIndent(sitemapURLSet{
			Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs:  urls,
		}, "", "  ")
		if err != nil {
			renderError(c, errors.NewInternalError(err))
			return
		}

		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml.Header+string(out)))
	})

	r.GET("/robots.txt", func(c *gin.Context) {
		base := strings.TrimSuffix(cfg.SiteBaseURL, "/")
		c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		renderError(c, errors.NewNotFoundError("The page you are looking for does not exist."))
	})

	return r
}

func main() {
	r := setupRouter()
	logger.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
