package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_KnownCity(t *testing.T) {
	loc := Location("Cape Town, South Africa")

	assert.Equal(t, "Western Cape", loc.Province)
	assert.Equal(t, "Cape Town", loc.City)
	assert.False(t, loc.IsRemote)
}

func TestLocation_CityAliasResolvesToCanonicalName(t *testing.T) {
	loc := Location("Port Elizabeth")

	assert.Equal(t, "Eastern Cape", loc.Province)
	assert.Equal(t, "Gqeberha", loc.City)
}

func TestLocation_ProvinceOnly(t *testing.T) {
	loc := Location("Eastern Cape")

	assert.Equal(t, "Eastern Cape", loc.Province)
	assert.Empty(t, loc.City)
}

func TestLocation_RemoteMarker(t *testing.T) {
	loc := Location("Remote")

	assert.True(t, loc.IsRemote)
	assert.Empty(t, loc.Province)
	assert.Empty(t, loc.City)
}

func TestLocation_RemoteWithCity(t *testing.T) {
	loc := Location("Durban (work from home)")

	assert.True(t, loc.IsRemote)
	assert.Equal(t, "KwaZulu-Natal", loc.Province)
	assert.Equal(t, "Durban", loc.City)
}

func TestLocation_Unresolvable(t *testing.T) {
	for _, raw := range []string{"", "  ", "Somewhere nice"} {
		loc := Location(raw)
		assert.Empty(t, loc.Province, "input %q", raw)
		assert.Empty(t, loc.City, "input %q", raw)
	}
}

func TestLocation_MultipleCitySubstrings(t *testing.T) {
	// The longest known city name wins, on every run.
	for i := 0; i < 100; i++ {
		loc := Location("Sandton, Johannesburg")
		assert.Equal(t, "Gauteng", loc.Province)
		assert.Equal(t, "Johannesburg", loc.City)
	}

	loc := Location("Umhlanga, Durban")
	assert.Equal(t, "KwaZulu-Natal", loc.Province)
	assert.Equal(t, "Umhlanga", loc.City)
}

func TestLocation_MessyWhitespace(t *testing.T) {
	loc := Location("  midrand ,   Gauteng  ")

	assert.Equal(t, "Gauteng", loc.Province)
	assert.Equal(t, "Midrand", loc.City)
}
