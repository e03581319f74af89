package service

import (
	"testing"

	"inventory-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func retailer(id int64, postcode *int, codes ...string) models.Retailer {
	r := models.Retailer{ID: id, Name: "retailer", Postcode: postcode}
	for i, code := range codes {
		r.Sodas = append(r.Sodas, models.Soda{ID: int64(i + 1), Abbreviation: code})
	}
	return r
}

func ids(retailers []models.Retailer) []int64 {
	out := make([]int64, 0, len(retailers))
	for _, r := range retailers {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterRetailers(t *testing.T) {
	retailers := []models.Retailer{
		retailer(1, intPtr(94107), "CZ", "CC"),
		retailer(2, intPtr(94107), "CZ"),
		retailer(3, intPtr(94103), "CZ", "CC", "DC"),
		retailer(4, nil, "A", "B"),
		retailer(5, intPtr(94107)),
		retailer(6, intPtr(94103), "A"),
	}

	tests := []struct {
		name     string
		filter   RetailerFilter
		expected []int64
	}{
		{
			name:     "no filter returns everything in order",
			filter:   RetailerFilter{},
			expected: []int64{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "postcode equality",
			filter:   RetailerFilter{Postcode: intPtr(94107)},
			expected: []int64{1, 2, 5},
		},
		{
			name:     "postcode without match",
			filter:   RetailerFilter{Postcode: intPtr(10001)},
			expected: []int64{},
		},
		{
			name:     "all codes required, not any",
			filter:   RetailerFilter{SodaCodes: []string{"A", "B"}},
			expected: []int64{4},
		},
		{
			name:     "single code",
			filter:   RetailerFilter{SodaCodes: []string{"CZ"}},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "postcode and soda intersect",
			filter:   RetailerFilter{Postcode: intPtr(94107), SodaCodes: []string{"CZ"}},
			expected: []int64{1, 2},
		},
		{
			name:     "postcode with two sodas keeps only the superset",
			filter:   RetailerFilter{Postcode: intPtr(94107), SodaCodes: []string{"CZ", "CC"}},
			expected: []int64{1},
		},
		{
			name:     "codes are case sensitive",
			filter:   RetailerFilter{SodaCodes: []string{"cz"}},
			expected: []int64{},
		},
		{
			name:     "duplicate codes behave like one",
			filter:   RetailerFilter{SodaCodes: []string{"CZ", "CZ"}},
			expected: []int64{1, 2, 3},
		},
		{
			name:     "unknown code matches nothing",
			filter:   RetailerFilter{SodaCodes: []string{"CZ", "ZZ"}},
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(FilterRetailers(retailers, tt.filter)))
		})
	}
}

func TestFilterRetailers_SupersetProperty(t *testing.T) {
	retailers := []models.Retailer{
		retailer(1, nil, "A"),
		retailer(2, nil, "B"),
		retailer(3, nil, "A", "B"),
		retailer(4, nil, "B", "C", "A"),
	}
	codes := []string{"A", "B"}

	for _, r := range FilterRetailers(retailers, RetailerFilter{SodaCodes: codes}) {
		assert.Subset(t, r.SodaCodes(), codes)
	}
	assert.Equal(t, []int64{3, 4}, ids(FilterRetailers(retailers, RetailerFilter{SodaCodes: codes})))
}

func TestParseSodaCodes(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{raw: "CZ", expected: []string{"CZ"}},
		{raw: "CZ,CC", expected: []string{"CZ", "CC"}},
		{raw: " CZ , cc ", expected: []string{"CZ", "cc"}},
		{raw: "CZ,,CC,", expected: []string{"CZ", "CC"}},
		{raw: "", expected: nil},
		{raw: ",", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSodaCodes(tt.raw))
		})
	}
}
