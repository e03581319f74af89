package service

import (
	"inventory-api/internal/geocoding"
	"inventory-api/internal/models"

	"github.com/shopspring/decimal"
)

// CoordinatePlaces is the number of decimal places stored for latitude and longitude.
const CoordinatePlaces = 7

// Reconcile decides the location fields a new retailer receives. result is nil when
// geocoding failed or was skipped.
//
// Coordinates always come from a successful result and are unset otherwise. A postcode
// the client submitted is kept as is; without one the result's numeric postcode is adopted.
func Reconcile(submitted *int, result *geocoding.Result) models.Location {
	var loc models.Location

	if result != nil {
		loc.Latitude = decimal.NewNullDecimal(result.Latitude.Round(CoordinatePlaces))
		loc.Longitude = decimal.NewNullDecimal(result.Longitude.Round(CoordinatePlaces))
	}

	switch {
	case submitted != nil:
		loc.Postcode = copyInt(submitted)
	case result != nil && result.Postcode != nil:
		loc.Postcode = copyInt(result.Postcode)
	}

	return loc
}

func copyInt(v *int) *int {
	c := *v
	return &c
}
