package service

import (
	"strings"

	"inventory-api/internal/models"
)

// RetailerFilter narrows a retailer listing. Zero values mean no constraint.
type RetailerFilter struct {
	Postcode  *int
	SodaCodes []string
}

// Matches reports whether r satisfies every constraint of f. A retailer must carry
// all of the soda codes, not just one of them.
func (f RetailerFilter) Matches(r models.Retailer) bool {
	if f.Postcode != nil && (r.Postcode == nil || *r.Postcode != *f.Postcode) {
		return false
	}
	if len(f.SodaCodes) == 0 {
		return true
	}

	carried := make(map[string]struct{}, len(r.Sodas))
	for _, s := range r.Sodas {
		carried[s.Abbreviation] = struct{}{}
	}
	for _, code := range f.SodaCodes {
		if _, ok := carried[code]; !ok {
			return false
		}
	}
	return true
}

// FilterRetailers returns the retailers matching filter, keeping their input order.
func FilterRetailers(retailers []models.Retailer, filter RetailerFilter) []models.Retailer {
	filtered := make([]models.Retailer, 0, len(retailers))
	for _, r := range retailers {
		if filter.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ParseSodaCodes splits the comma-separated wire form of the sodas filter.
// Codes keep their case; blank entries are dropped.
func ParseSodaCodes(raw string) []string {
	var codes []string
	for _, code := range strings.Split(raw, ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
