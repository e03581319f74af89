package geocoding

// FormatAddress builds the free-text query sent to the provider:
// "<street>, <city>" with ", <postcode>" appended when a postcode is given.
// Blank street or city are passed through; rejecting them is the caller's job.
func FormatAddress(street, city, postcode string) string {
	address := street + ", " + city
	if postcode != "" {
		address += ", " + postcode
	}
	return address
}
