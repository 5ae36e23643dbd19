package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drivespec/backend/internal/domain"
)

// absentValue is reported for a spec missing from one side of a comparison
const absentValue = "N/A"

// ComparisonService computes structured differences and relative advantages
// between two product records. Pure and stateless; safe for concurrent use.
type ComparisonService struct{}

// NewComparisonService creates a new comparison service
func NewComparisonService() *ComparisonService {
	return &ComparisonService{}
}

// Compare bundles the differences between two records with the advantages
// computed in both directions.
func (s *ComparisonService) Compare(product1, product2 *domain.ProductRecord) *domain.ComparisonResult {
	return &domain.ComparisonResult{
		Product1:    product1,
		Product2:    product2,
		Differences: s.Differences(product1, product2),
		Advantages: domain.AdvantageSet{
			Product1: s.Advantages(product1, product2),
			Product2: s.Advantages(product2, product1),
		},
	}
}

// Differences walks the union of categories and spec names across both
// records and emits one record per textually unequal value pair, with "N/A"
// standing in for an absent side. Emission order is unspecified.
func (s *ComparisonService) Differences(product1, product2 *domain.ProductRecord) []domain.Difference {
	differences := []domain.Difference{}

	for category := range unionKeys(product1.Specifications, product2.Specifications) {
		specs1 := product1.Specifications[category]
		specs2 := product2.Specifications[category]

		for name := range unionKeys(specs1, specs2) {
			value1 := valueOrAbsent(specs1, name)
			value2 := valueOrAbsent(specs2, name)

			if value1 != value2 {
				differences = append(differences, domain.Difference{
					Category:      category,
					Specification: name,
					Product1Value: value1,
					Product2Value: value2,
				})
			}
		}
	}

	return differences
}

// Advantages returns the specs where the subject's value is numerically
// greater than the competitor's. Values are compared by stripping everything
// but digits and the decimal point, so units are ignored: "3 kW" vs "4 HP"
// compares 3 against 4. Specs where either side fails to parse are skipped.
func (s *ComparisonService) Advantages(subject, competitor *domain.ProductRecord) []domain.Advantage {
	advantages := []domain.Advantage{}

	for category, specs := range subject.Specifications {
		competitorSpecs := competitor.Specifications[category]

		for name, value := range specs {
			competitorValue, ok := competitorSpecs[name]
			if !ok || value == competitorValue {
				continue
			}

			numValue, err1 := parseNumeric(value)
			numCompetitor, err2 := parseNumeric(competitorValue)
			if err1 != nil || err2 != nil {
				continue
			}

			if numValue > numCompetitor {
				advantages = append(advantages, domain.Advantage{
					Category:      category,
					Specification: name,
					Advantage:     fmt.Sprintf("%s vs %s", value, competitorValue),
				})
			}
		}
	}

	return advantages
}

// parseNumeric strips every rune that is not a digit or decimal point and
// parses the remainder as a float
func parseNumeric(s string) (float64, error) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return strconv.ParseFloat(b.String(), 64)
}

// valueOrAbsent returns the spec value or the "N/A" placeholder
func valueOrAbsent(specs map[string]string, name string) string {
	if v, ok := specs[name]; ok {
		return v
	}
	return absentValue
}

// unionKeys returns the set of keys present in either map
func unionKeys[V any](m1, m2 map[string]V) map[string]struct{} {
	keys := make(map[string]struct{}, len(m1)+len(m2))
	for k := range m1 {
		keys[k] = struct{}{}
	}
	for k := range m2 {
		keys[k] = struct{}{}
	}
	return keys
}
