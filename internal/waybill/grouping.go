package waybill

import (
	"regexp"

	"carrier-booking-api-server/internal/models"
)

var (
	canonicalPattern = regexp.MustCompile(`^\d+$`)
	variantPattern   = regexp.MustCompile(`-(\d+)$`)
)

// Fold collapses customer-number variants into their canonical numeric
// customer number. A key whose trailing "-N" numeric suffix equals a
// canonical (purely numeric) key present in the set is a variant of that
// key, e.g. "TEST-12345" next to "12345". Its consignments move under the
// canonical key and have their customer number rewritten.
//
// Display-only: the fold never touches persisted record sets.
func Fold(consignments map[string]map[string]*models.Consignment) map[string]map[string]*models.Consignment {
	canonical := make(map[string]bool)
	for customerNumber := range consignments {
		if canonicalPattern.MatchString(customerNumber) {
			canonical[customerNumber] = true
		}
	}

	for customerNumber, group := range consignments {
		m := variantPattern.FindStringSubmatch(customerNumber)
		if m == nil {
			continue
		}
		target := m[1]
		if !canonical[target] {
			continue
		}

		delete(consignments, customerNumber)
		if consignments[target] == nil {
			consignments[target] = make(map[string]*models.Consignment)
		}
		for labelID, consignment := range group {
			consignment.CustomerNumber = target
			consignments[target][labelID] = consignment
		}
	}

	return consignments
}
