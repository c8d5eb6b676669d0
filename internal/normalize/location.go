// Package normalize converts raw scraped text into canonical job fields.
// Every function here is a pure heuristic over fixed lookup tables; on
// ambiguous input it falls back to zero values instead of failing, and
// downstream code tolerates the unset fields.
package normalize

import (
	"sort"
	"strings"

	"github.com/mzansijobs/careerhub/internal/types"
)

// cityProvinces maps known city substrings (lowercase) to their province and
// canonical city name. Read-only, process-wide.
var cityProvinces = map[string][2]string{
	"johannesburg":      {"Gauteng", "Johannesburg"},
	"joburg":            {"Gauteng", "Johannesburg"},
	"sandton":           {"Gauteng", "Sandton"},
	"midrand":           {"Gauteng", "Midrand"},
	"pretoria":          {"Gauteng", "Pretoria"},
	"centurion":         {"Gauteng", "Centurion"},
	"randburg":          {"Gauteng", "Randburg"},
	"soweto":            {"Gauteng", "Soweto"},
	"cape town":         {"Western Cape", "Cape Town"},
	"stellenbosch":      {"Western Cape", "Stellenbosch"},
	"paarl":             {"Western Cape", "Paarl"},
	"george":            {"Western Cape", "George"},
	"durban":            {"KwaZulu-Natal", "Durban"},
	"umhlanga":          {"KwaZulu-Natal", "Umhlanga"},
	"pietermaritzburg":  {"KwaZulu-Natal", "Pietermaritzburg"},
	"richards bay":      {"KwaZulu-Natal", "Richards Bay"},
	"gqeberha":          {"Eastern Cape", "Gqeberha"},
	"port elizabeth":    {"Eastern Cape", "Gqeberha"},
	"east london":       {"Eastern Cape", "East London"},
	"bloemfontein":      {"Free State", "Bloemfontein"},
	"welkom":            {"Free State", "Welkom"},
	"polokwane":         {"Limpopo", "Polokwane"},
	"nelspruit":         {"Mpumalanga", "Mbombela"},
	"mbombela":          {"Mpumalanga", "Mbombela"},
	"witbank":           {"Mpumalanga", "eMalahleni"},
	"emalahleni":        {"Mpumalanga", "eMalahleni"},
	"rustenburg":        {"North West", "Rustenburg"},
	"potchefstroom":     {"North West", "Potchefstroom"},
	"kimberley":         {"Northern Cape", "Kimberley"},
	"upington":          {"Northern Cape", "Upington"},
}

// cityKeys fixes the lookup order: longest substring first, then
// alphabetical. "Sandton, Johannesburg" must resolve to the same city on
// every run, and the longer name is the more specific match.
var cityKeys = func() []string {
	keys := make([]string, 0, len(cityProvinces))
	for k := range cityProvinces {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// countrySuffixes are stripped from the end of raw location strings.
var countrySuffixes = []string{"south africa", "za", "sa", "rsa"}

var remoteMarkers = []string{"remote", "work from home", "anywhere"}

// Location normalizes a raw location string. Resolution order: known city
// substring, then literal province-name substring, then unset.
func Location(raw string) types.Location {
	var loc types.Location

	cleaned := collapseWhitespace(raw)
	if cleaned == "" {
		return loc
	}

	lower := strings.ToLower(cleaned)
	for _, marker := range remoteMarkers {
		if strings.Contains(lower, marker) {
			loc.IsRemote = true
			break
		}
	}

	lower = stripCountry(lower)

	for _, substr := range cityKeys {
		if strings.Contains(lower, substr) {
			pc := cityProvinces[substr]
			loc.Province = pc[0]
			loc.City = pc[1]
			return loc
		}
	}

	for _, province := range types.Provinces {
		if strings.Contains(lower, strings.ToLower(province)) {
			loc.Province = province
			return loc
		}
	}

	return loc
}

func stripCountry(lower string) string {
	trimmed := strings.TrimRight(lower, " ,.")
	for _, suffix := range countrySuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			trimmed = strings.TrimRight(strings.TrimSuffix(trimmed, suffix), " ,.")
			break
		}
	}
	return trimmed
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
