package geocoding

import "strings"

// BuildVariants lists the queries tried for an address, most specific first:
// the address qualified with city and country, with country only, bare, and
// then every comma-separated suffix of it qualified with the country. A
// query is never listed twice. A blank address has no variants.
func BuildVariants(address, city, country string) []string {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}

	var (
		variants []string
		seen     = make(map[string]struct{})
	)
	add := func(q string) {
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		variants = append(variants, q)
	}

	add(address + ", " + city + ", " + country)
	add(address + ", " + country)
	add(address)

	segments := splitSegments(address)
	for i := range segments {
		add(strings.Join(segments[i:], ", ") + ", " + country)
	}

	return variants
}

// splitSegments splits an address on commas, dropping blank segments.
func splitSegments(address string) []string {
	var out []string
	for _, s := range strings.Split(address, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
