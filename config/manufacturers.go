package config

import "github.com/drivespec/backend/internal/domain"

// DefaultManufacturers returns the built-in manufacturer registry: base URLs,
// known product pages, and the selectors matching each site's markup. New
// manufacturers are added here or via the "manufacturers" config section; the
// extraction code itself is layout-agnostic.
func DefaultManufacturers() map[string]domain.ManufacturerConfig {
	return map[string]domain.ManufacturerConfig{
		"danfoss": {
			BaseURL: "https://www.danfoss.com",
			Products: map[string]string{
				"FC301": "/en/products/dcs/drives/vlt-aqua-drive-fc-301/",
				"FC302": "/en/products/dcs/drives/vlt-hvac-drive-fc-302/",
			},
			Selectors: domain.SelectorSet{
				Title:      "h1.product-title, h1",
				SpecsTable: "table.specifications, .technical-data table",
				SpecRow:    "tr",
				SpecLabel:  "td:first-child, th",
				SpecValue:  "td:last-child",
			},
		},
		"abb": {
			BaseURL: "https://new.abb.com",
			Products: map[string]string{
				"ACS880": "/drives/low-voltage-ac-drives/industrial-drives/acs880-single-drives",
			},
			Selectors: domain.SelectorSet{
				Title:      "h1.product-name",
				SpecsTable: ".technical-specifications table",
				SpecRow:    "tr",
				SpecLabel:  "td.label",
				SpecValue:  "td.value",
			},
		},
		"siemens": {
			BaseURL: "https://mall.industry.siemens.com",
			Products: map[string]string{
				"SINAMICS_G120": "/en/us/c/drives/low-voltage-drives/sinamics-g120",
			},
			Selectors: domain.SelectorSet{
				Title:      "h1.product-title",
				SpecsTable: "table.product-details",
				SpecRow:    "tr",
				SpecLabel:  "td:first-child",
				SpecValue:  "td:nth-child(2)",
			},
		},
		"yaskawa": {
			BaseURL: "https://www.yaskawa.com",
			Products: map[string]string{
				"GA700": "/products/drives/ac-drives/ga700",
			},
			Selectors: domain.SelectorSet{
				Title:      "h1",
				SpecsTable: "table.specifications",
				SpecRow:    "tr",
				SpecLabel:  "td:first-child",
				SpecValue:  "td:last-child",
			},
		},
	}
}
