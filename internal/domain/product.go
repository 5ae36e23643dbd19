package domain

import "time"

// Data source values for ProductRecord.DataSource.
const (
	SourceLive  = "live"
	SourceCache = "cache"
)

// ProductRecord represents a product's technical specifications as extracted
// from a manufacturer page. Specifications maps category name -> spec name ->
// raw textual value; values are kept exactly as they appear on the page.
type ProductRecord struct {
	Name           string                       `json:"name"`
	Manufacturer   string                       `json:"manufacturer"` // canonical uppercase
	ProductID      string                       `json:"productId"`
	Specifications map[string]map[string]string `json:"specifications"`
	DataSource     string                       `json:"dataSource"` // "live" or "cache"
	FetchedAt      time.Time                    `json:"fetchedAt"`
	SourceURL      string                       `json:"url"`
}

// SelectorSet holds the CSS selectors used to locate product data in one
// manufacturer's page layout.
type SelectorSet struct {
	Title      string `mapstructure:"title"`
	SpecsTable string `mapstructure:"specs_table"`
	SpecRow    string `mapstructure:"spec_row"`
	SpecLabel  string `mapstructure:"spec_label"`
	SpecValue  string `mapstructure:"spec_value"`
}

// ManufacturerConfig describes one manufacturer's site: where product pages
// live and which selectors locate the specification data in its page layout.
// Injected from configuration and read-only afterwards.
type ManufacturerConfig struct {
	BaseURL   string            `mapstructure:"base_url"`
	Products  map[string]string `mapstructure:"products"` // product ID -> relative path
	Selectors SelectorSet       `mapstructure:"selectors"`
}

// Difference is a single specification that differs between two products.
// An absent value is reported as the literal "N/A".
type Difference struct {
	Category      string `json:"category"`
	Specification string `json:"specification"`
	Product1Value string `json:"product1_value"`
	Product2Value string `json:"product2_value"`
}

// Advantage is a specification where one product's numeric value strictly
// exceeds the competitor's. The Advantage string carries the raw values,
// e.g. "5.5 kW vs 4.0 kW".
type Advantage struct {
	Category      string `json:"category"`
	Specification string `json:"specification"`
	Advantage     string `json:"advantage"`
}

// AdvantageSet holds the per-direction advantages of a comparison.
type AdvantageSet struct {
	Product1 []Advantage `json:"product1"`
	Product2 []Advantage `json:"product2"`
}

// ComparisonResult bundles both resolved products with their computed
// differences and advantages.
type ComparisonResult struct {
	Product1    *ProductRecord `json:"product1"`
	Product2    *ProductRecord `json:"product2"`
	Differences []Difference   `json:"differences"`
	Advantages  AdvantageSet   `json:"advantages"`
}

// CatalogMatch is one hit from a catalog search over the manufacturer registry.
type CatalogMatch struct {
	Manufacturer string `json:"manufacturer"`
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	URL          string `json:"url"`
}

// CacheEntryInfo describes one cache entry in a stats snapshot.
type CacheEntryInfo struct {
	Key        string `json:"key"`
	AgeSeconds int    `json:"age_seconds"`
	Valid      bool   `json:"valid"`
}

// CacheStats is a read-only diagnostic snapshot of the cache.
type CacheStats struct {
	TotalEntries int              `json:"total_entries"`
	Entries      []CacheEntryInfo `json:"entries"`
}
