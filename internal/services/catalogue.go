package services

import "sort"

// Service is one entry of the carrier's service catalogue. The data is
// compiled in, copied from the carrier's service listing.
type Service struct {
	Key           string   `json:"key"`
	ProductName   string   `json:"productName"`
	DisplayName   string   `json:"displayName"`
	CustomerTypes []string `json:"customerTypes"`
}

var catalogue = map[string]Service{
	"SERVICEPAKKE": {
		Key:           "SERVICEPAKKE",
		ProductName:   "Klimanøytral Servicepakke",
		DisplayName:   "Climate Neutral Service Pack",
		CustomerTypes: []string{"business"},
	},
	"BPAKKE_DOR-DOR": {
		Key:           "BPAKKE_DOR-DOR",
		ProductName:   "Bedriftspakke",
		DisplayName:   "Business Parcel",
		CustomerTypes: []string{"business"},
	},
	"EKSPRESS09": {
		Key:           "EKSPRESS09",
		ProductName:   "Bedriftspakke Ekspress-Over natten 09",
		DisplayName:   "Express Overnight 09",
		CustomerTypes: []string{"business"},
	},
	"PA_DOREN": {
		Key:           "PA_DOREN",
		ProductName:   "På Døren",
		DisplayName:   "Home Delivery",
		CustomerTypes: []string{"consumer"},
	},
	"MAILBOX": {
		Key:           "MAILBOX",
		ProductName:   "Pakke i postkassen",
		DisplayName:   "Mailbox Parcel",
		CustomerTypes: []string{"consumer"},
	},
	"MINIPAKKE": {
		Key:           "MINIPAKKE",
		ProductName:   "Minipakke",
		DisplayName:   "Mini Parcel",
		CustomerTypes: []string{"consumer"},
	},
}

// All returns the full catalogue in key order.
func All() []Service {
	keys := make([]string, 0, len(catalogue))
	for key := range catalogue {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Service, 0, len(keys))
	for _, key := range keys {
		result = append(result, catalogue[key])
	}
	return result
}

// Selected returns the catalogue entries for the configured service keys,
// in key order. Unknown keys are skipped; an empty selection means all.
func Selected(keys []string) []Service {
	if len(keys) == 0 {
		return All()
	}
	sorted := append([]string{}, keys...)
	sort.Strings(sorted)

	result := make([]Service, 0, len(sorted))
	for _, key := range sorted {
		if service, ok := catalogue[key]; ok {
			result = append(result, service)
		}
	}
	return result
}

// Get looks up one service by key.
func Get(key string) (Service, bool) {
	service, ok := catalogue[key]
	return service, ok
}

// Name returns the requested display column of a service, defaulting to
// the product name.
func (s Service) Name(column string) string {
	if column == "DisplayName" {
		return s.DisplayName
	}
	return s.ProductName
}
