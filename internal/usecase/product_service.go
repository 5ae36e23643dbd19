package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/drivespec/backend/internal/domain"
)

// ProductService resolves product records through the cache-fetch-extract
// pipeline and answers catalog searches over the manufacturer registry.
type ProductService struct {
	cache         domain.CacheRepository
	fetcher       domain.PageFetcher
	extractor     domain.SpecExtractor
	manufacturers map[string]domain.ManufacturerConfig
}

// NewProductService creates a new product service with dependencies
func NewProductService(
	cache domain.CacheRepository,
	fetcher domain.PageFetcher,
	extractor domain.SpecExtractor,
	manufacturers map[string]domain.ManufacturerConfig,
) *ProductService {
	return &ProductService{
		cache:         cache,
		fetcher:       fetcher,
		extractor:     extractor,
		manufacturers: manufacturers,
	}
}

// cacheKey derives the cache key for a product. The manufacturer segment is
// already case-normalized by the caller; the cache itself treats keys as
// opaque strings.
func cacheKey(manufacturer, productID string) string {
	return manufacturer + "_" + productID
}

// Resolve returns the product record for a manufacturer/product pair.
// Flow: check cache -> fetch page -> extract specs -> cache -> return.
func (s *ProductService) Resolve(ctx context.Context, manufacturer, productID string) (*domain.ProductRecord, error) {
	manufacturer = strings.ToLower(strings.TrimSpace(manufacturer))
	productID = strings.TrimSpace(productID)
	if manufacturer == "" || productID == "" {
		return nil, domain.ErrInvalidRequest
	}

	key := cacheKey(manufacturer, productID)
	if record, ok, valid := s.cache.Get(key); ok && valid {
		logrus.WithField("key", key).Debug("returning cached product record")
		record.DataSource = domain.SourceCache
		return &record, nil
	}

	mfr, ok := s.manufacturers[manufacturer]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrManufacturerNotSupported, manufacturer)
	}

	path, ok := mfr.Products[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s for %s", domain.ErrProductNotFound, productID, manufacturer)
	}

	productURL := mfr.BaseURL + path
	logrus.WithField("url", productURL).Info("fetching product page")

	body, err := s.fetcher.Fetch(ctx, productURL)
	if err != nil {
		return nil, err
	}

	title, specs, err := s.extractor.Extract(body, mfr.Selectors)
	if err != nil {
		return nil, fmt.Errorf("failed to extract specifications: %w", err)
	}

	if title == "" {
		title = fmt.Sprintf("%s %s", manufacturer, productID)
	}
	if len(specs) == 0 {
		// Degraded but not an error; the page layout may have drifted.
		logrus.WithField("url", productURL).Warn("no specifications extracted from product page")
	}

	record := domain.ProductRecord{
		Name:           title,
		Manufacturer:   strings.ToUpper(manufacturer),
		ProductID:      productID,
		Specifications: specs,
		DataSource:     domain.SourceLive,
		FetchedAt:      time.Now(),
		SourceURL:      productURL,
	}

	s.cache.Put(key, record)

	return &record, nil
}

// Search runs a case-insensitive substring match over registered product IDs.
// An empty manufacturer filter searches every manufacturer; an unknown one
// simply yields no results.
func (s *ProductService) Search(query, manufacturer string) []domain.CatalogMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	manufacturer = strings.ToLower(strings.TrimSpace(manufacturer))

	results := []domain.CatalogMatch{}
	if query == "" {
		return results
	}

	for name, mfr := range s.manufacturers {
		if manufacturer != "" && name != manufacturer {
			continue
		}

		for productID, path := range mfr.Products {
			if !strings.Contains(strings.ToLower(productID), query) {
				continue
			}
			results = append(results, domain.CatalogMatch{
				Manufacturer: strings.ToUpper(name),
				ProductID:    productID,
				Name:         productID,
				URL:          mfr.BaseURL + path,
			})
		}
	}

	return results
}

// ClearCache empties the product cache
func (s *ProductService) ClearCache() {
	s.cache.Clear()
}

// CacheStats returns a diagnostic snapshot of the product cache
func (s *ProductService) CacheStats() domain.CacheStats {
	return s.cache.Stats()
}
