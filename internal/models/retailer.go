package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Retailer is a shop that carries some set of sodas. Latitude, Longitude and
// Postcode may be filled in after creation by geocoding the street address.
type Retailer struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	StreetAddress string              `json:"street_address"`
	City          string              `json:"city"`
	Postcode      *int                `json:"postcode"`
	Country       string              `json:"country"`
	Latitude      decimal.NullDecimal `json:"latitude" swaggertype:"string"`
	Longitude     decimal.NullDecimal `json:"longitude" swaggertype:"string"`
	Sodas         []Soda              `json:"sodas"`
	CreatedAt     time.Time           `json:"timestamp_created"`
	UpdatedAt     time.Time           `json:"timestamp_last_updated"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (r Retailer) HasCoordinates() bool {
	return r.Latitude.Valid && r.Longitude.Valid
}

// SodaCodes returns the abbreviations of the sodas the retailer carries.
func (r Retailer) SodaCodes() []string {
	codes := make([]string, 0, len(r.Sodas))
	for _, s := range r.Sodas {
		codes = append(codes, s.Abbreviation)
	}
	return codes
}

// RetailerInput holds the user-editable fields of a retailer.
type RetailerInput struct {
	Name          string
	StreetAddress string
	City          string
	Postcode      *int
	Country       string
	SodaIDs       []int64
}

// Location is the geocoded part of a retailer written back after creation.
type Location struct {
	Latitude  decimal.NullDecimal
	Longitude decimal.NullDecimal
	Postcode  *int
}
