package linkedin

// ResolveAccessToken returns the LinkedIn access token from the component
// settings. Duplicate keys collapse with the last value winning.
func ResolveAccessToken(settings Dict) (string, error) {
	lookup := make(map[string]string, len(settings))
	for _, pair := range settings {
		lookup[pair[0]] = pair[1]
	}

	token, ok := lookup[AccessTokenSetting]
	if !ok {
		return "", ErrMissingCredential
	}
	return token, nil
}
