package geocoding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "1305 SW 11th Avenue, Portland"

func candidate(lat, lng string, components ...AddressComponent) Candidate {
	return Candidate{
		Geometry:          Geometry{Location: LatLng{Lat: json.Number(lat), Lng: json.Number(lng)}},
		AddressComponents: components,
	}
}

func postal(code string) AddressComponent {
	return AddressComponent{Types: []string{"postal_code"}, ShortName: code, LongName: code}
}

func TestParseResponse(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name         string
		resp         Response
		expectedLat  string
		expectedLng  string
		expectedCode *int
	}{
		{
			name: "numeric postcode",
			resp: Response{Status: StatusOK, Results: []Candidate{
				candidate("45.5162468", "-122.6857963",
					AddressComponent{Types: []string{"locality", "political"}, ShortName: "Portland"},
					postal("97201"),
				),
			}},
			expectedLat:  "45.5162468",
			expectedLng:  "-122.6857963",
			expectedCode: intPtr(97201),
		},
		{
			name: "alphanumeric postcode is dropped",
			resp: Response{Status: StatusOK, Results: []Candidate{
				candidate("51.5033635", "-0.1276248", postal("SW1A 2AA")),
			}},
			expectedLat: "51.5033635",
			expectedLng: "-0.1276248",
		},
		{
			name: "postcode wider than 32 bits is dropped",
			resp: Response{Status: StatusOK, Results: []Candidate{
				candidate("45.5162468", "-122.6857963", postal("3000000000")),
			}},
			expectedLat: "45.5162468",
			expectedLng: "-122.6857963",
		},
		{
			name: "largest 32-bit postcode is kept",
			resp: Response{Status: StatusOK, Results: []Candidate{
				candidate("45.5162468", "-122.6857963", postal("2147483647")),
			}},
			expectedLat:  "45.5162468",
			expectedLng:  "-122.6857963",
			expectedCode: intPtr(2147483647),
		},
		{
			name: "no postal code component",
			resp: Response{Status: StatusOK, Results: []Candidate{
				candidate("45.5162468", "-122.6857963"),
			}},
			expectedLat: "45.5162468",
			expectedLng: "-122.6857963",
		},
		{
			name: "first candidate wins",
			resp: Response{Status: StatusOK, Results: []Candidate{
				candidate("37.7749295", "-122.4194155", postal("94107")),
				candidate("40.7127753", "-74.0059728", postal("10007")),
			}},
			expectedLat:  "37.7749295",
			expectedLng:  "-122.4194155",
			expectedCode: intPtr(94107),
		},
		{
			name: "precision beyond float64 is preserved",
			resp: Response{Status: StatusOK, Results: []Candidate{
				candidate("37.77492950000000012345", "-122.41941550000000098765"),
			}},
			expectedLat: "37.77492950000000012345",
			expectedLng: "-122.41941550000000098765",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResponse(tt.resp, testAddress)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedLat, result.Latitude.String())
			assert.Equal(t, tt.expectedLng, result.Longitude.String())
			assert.Equal(t, tt.expectedCode, result.Postcode)
		})
	}
}

func TestParseResponse_NoResults(t *testing.T) {
	for _, status := range []string{StatusZeroResults, StatusOK} {
		t.Run(status, func(t *testing.T) {
			_, err := ParseResponse(Response{Status: status}, testAddress)

			var noResults *NoResultsError
			require.ErrorAs(t, err, &noResults)
			assert.Equal(t, testAddress, noResults.Address)
		})
	}
}

func TestParseResponse_MalformedCoordinates(t *testing.T) {
	resp := Response{Status: StatusOK, Results: []Candidate{candidate("", "-122.6857963")}}

	_, err := ParseResponse(resp, testAddress)

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "INVALID_RESPONSE", providerErr.Status)
}
