package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/drivespec/backend/internal/domain"
)

// Category labels assigned when the page doesn't provide its own.
const (
	defaultCategory  = "Technical Specifications"
	fallbackCategory = "Technical Data"
)

// categoryMarker is the class that flags a table row or label cell as a
// category header rather than a spec entry.
const categoryMarker = "category"

// strategy is one extraction pass over a document. Strategies run in order
// and the first non-empty result wins.
type strategy func(doc *goquery.Document, selectors domain.SelectorSet) map[string]map[string]string

// Extractor pulls categorized specifications out of manufacturer pages.
// Manufacturer markup is heterogeneous and unstable, so extraction is
// best-effort: a selector-driven table walk first, then a definition-list
// and data-attribute sweep. A parseable document never produces an error,
// only a possibly empty mapping.
type Extractor struct {
	strategies []strategy
}

// NewExtractor creates a new spec extractor
func NewExtractor() *Extractor {
	e := &Extractor{}
	e.strategies = []strategy{e.extractTables, e.extractFallback}
	return e
}

// Extract parses the markup and returns the product title alongside the
// categorized spec mapping. Implements domain.SpecExtractor.
func (e *Extractor) Extract(html []byte, selectors domain.SelectorSet) (string, map[string]map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return e.Title(doc, selectors), e.Specifications(doc, selectors), nil
}

// Title returns the trimmed text of the first title match, or "" when the
// selector matches nothing.
func (e *Extractor) Title(doc *goquery.Document, selectors domain.SelectorSet) string {
	return strings.TrimSpace(doc.Find(selectors.Title).First().Text())
}

// Specifications runs the extraction strategies in order, returning the
// first non-empty mapping.
func (e *Extractor) Specifications(doc *goquery.Document, selectors domain.SelectorSet) map[string]map[string]string {
	for _, extract := range e.strategies {
		if specs := extract(doc, selectors); len(specs) > 0 {
			return specs
		}
	}
	return map[string]map[string]string{}
}

// extractTables walks every specs table, tracking the active category as it
// goes. All tables accumulate into one mapping.
func (e *Extractor) extractTables(doc *goquery.Document, selectors domain.SelectorSet) map[string]map[string]string {
	specs := make(map[string]map[string]string)

	doc.Find(selectors.SpecsTable).Each(func(_ int, table *goquery.Selection) {
		category := defaultCategory

		table.Find(selectors.SpecRow).Each(func(_ int, row *goquery.Selection) {
			label := row.Find(selectors.SpecLabel).First()
			value := row.Find(selectors.SpecValue).First()
			if label.Length() == 0 || value.Length() == 0 {
				return
			}

			labelText := strings.TrimSpace(label.Text())
			valueText := strings.TrimSpace(value.Text())

			if label.HasClass(categoryMarker) || row.HasClass(categoryMarker) {
				// Category header row: switch the active category and start
				// it fresh, discarding any earlier entries under the same name.
				if labelText != "" {
					category = labelText
					specs[category] = make(map[string]string)
				}
				return
			}

			if labelText != "" && valueText != "" {
				if specs[category] == nil {
					specs[category] = make(map[string]string)
				}
				specs[category][labelText] = valueText
			}
		})
	})

	// Category headers with no entries under them would violate the
	// no-empty-keys invariant.
	for category, entries := range specs {
		if len(entries) == 0 {
			delete(specs, category)
		}
	}

	return specs
}

// extractFallback sweeps definition lists and data attributes when the table
// walk found nothing. Everything lands under a single fixed category.
func (e *Extractor) extractFallback(doc *goquery.Document, _ domain.SelectorSet) map[string]map[string]string {
	specs := make(map[string]map[string]string)

	record := func(name, value string) {
		if name == "" || value == "" {
			return
		}
		if specs[fallbackCategory] == nil {
			specs[fallbackCategory] = make(map[string]string)
		}
		specs[fallbackCategory][name] = value
	}

	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		terms := dl.Find("dt")
		descs := dl.Find("dd")

		// Positional pairing; trailing unmatched terms or descriptions drop.
		n := terms.Length()
		if descs.Length() < n {
			n = descs.Length()
		}
		for i := 0; i < n; i++ {
			record(strings.TrimSpace(terms.Eq(i).Text()), strings.TrimSpace(descs.Eq(i).Text()))
		}
	})

	doc.Find("[data-spec-name]").Each(func(_ int, el *goquery.Selection) {
		name := el.AttrOr("data-spec-name", "")
		value := el.AttrOr("data-spec-value", "")
		if value == "" {
			value = strings.TrimSpace(el.Text())
		}
		record(name, value)
	})

	return specs
}
