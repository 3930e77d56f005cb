package linkedin

import "strings"

// ExtractQueryParam returns the value of the first name=value pair in a raw
// query string whose key equals name. Pairs without '=' are skipped and the
// value is everything after the first '='. A present but empty value
// returns ("", true).
func ExtractQueryParam(query, name string) (string, bool) {
	for _, pair := range strings.Split(query, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if key == name {
			return value, true
		}
	}
	return "", false
}
