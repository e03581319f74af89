package models

// Soda is a drink a retailer can carry, identified by a one or two letter abbreviation.
type Soda struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LowCalorie   bool   `json:"low_calorie"`
}

// SodaInput holds the user-editable fields of a soda.
type SodaInput struct {
	Name         string
	Abbreviation string
	LowCalorie   bool
}
