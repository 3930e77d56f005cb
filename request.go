package linkedin

import (
	"encoding/json"
	"fmt"

	"github.com/edgee-cloud/linkedin-capi-go/adapters"
)

// BuildRequest wraps a conversion event into the POST request the host
// dispatches. Empty endpoint or apiVersion select the defaults.
func BuildRequest(payload *ConversionEvent, accessToken, endpoint, apiVersion string) (*Request, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal conversion event: %w", err)
	}

	return &Request{
		Method: adapters.HTTPMethodPost,
		URL:    endpoint,
		Headers: Dict{
			{"content-type", "application/json"},
			{"X-Restli-Protocol-Version", RestliProtocolVersion},
			{"LinkedIn-Version", apiVersion},
			{"Authorization", "Bearer " + accessToken},
		},
		ForwardClientHeaders: true,
		Body:                 string(body),
	}, nil
}
