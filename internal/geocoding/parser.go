package geocoding

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const postalCodeType = "postal_code"

// Result is the resolved location of an address. Postcode is nil when the provider
// reported none or reported one that is not purely numeric (UK and Canadian codes
// are not supported by the retailer model).
type Result struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
	Postcode  *int
}

// ParseResponse extracts the first candidate of resp. address is only used for the
// NoResultsError message.
func ParseResponse(resp Response, address string) (Result, error) {
	if len(resp.Results) == 0 {
		return Result{}, &NoResultsError{Address: address}
	}

	candidate := resp.Results[0]

	lat, err := decimal.NewFromString(candidate.Geometry.Location.Lat.String())
	if err != nil {
		return Result{}, &ProviderError{Status: "INVALID_RESPONSE", Message: fmt.Sprintf("latitude %q: %v", candidate.Geometry.Location.Lat, err)}
	}
	lng, err := decimal.NewFromString(candidate.Geometry.Location.Lng.String())
	if err != nil {
		return Result{}, &ProviderError{Status: "INVALID_RESPONSE", Message: fmt.Sprintf("longitude %q: %v", candidate.Geometry.Location.Lng, err)}
	}

	return Result{
		Latitude:  lat,
		Longitude: lng,
		Postcode:  numericPostcode(candidate.AddressComponents),
	}, nil
}

// numericPostcode returns the first postal_code component as an integer, or nil.
func numericPostcode(components []AddressComponent) *int {
	for _, c := range components {
		if !slices.Contains(c.Types, postalCodeType) {
			continue
		}
		// The retailer column is a 32-bit INTEGER; anything wider counts as absent.
		parsed, err := strconv.ParseInt(strings.TrimSpace(c.ShortName), 10, 32)
		if err != nil || parsed < 0 {
			return nil
		}
		code := int(parsed)
		return &code
	}
	return nil
}
