package linkedin

import (
	"github.com/edgee-cloud/linkedin-capi-go/adapters"
)

// Re-export adapter types for convenience
type (
	Dict          = adapters.Dict
	Event         = adapters.Event
	EventType     = adapters.EventType
	Consent       = adapters.Consent
	Data          = adapters.Data
	TrackData     = adapters.TrackData
	PageData      = adapters.PageData
	UserData      = adapters.UserData
	Context       = adapters.Context
	HTTPMethod    = adapters.HTTPMethod
	Request       = adapters.Request
	HTTPAdapter   = adapters.HTTPAdapter
	HTTPResponse  = adapters.HTTPResponse
	LoggerAdapter = adapters.LoggerAdapter
	LogLevel      = adapters.LogLevel
)

const (
	// DefaultEndpoint is the LinkedIn Conversions API endpoint.
	DefaultEndpoint = "https://api.linkedin.com/rest/conversionEvents"
	// DefaultAPIVersion is sent in the LinkedIn-Version header.
	DefaultAPIVersion = "202506"
	// RestliProtocolVersion is sent in the X-Restli-Protocol-Version header.
	RestliProtocolVersion = "2.0.0"

	// AccessTokenSetting is the settings key holding the API access token.
	AccessTokenSetting = "linkedin_access_token"
)

// ClickIDPolicy decides what happens to the li_fat_id identifier when the
// page URL does not carry one.
type ClickIDPolicy int

const (
	// ClickIDAlwaysEmit sends the click id entry with an empty value when absent.
	ClickIDAlwaysEmit ClickIDPolicy = iota
	// ClickIDOmitWhenAbsent leaves the entry out when absent.
	ClickIDOmitWhenAbsent
)

// ValidationRules tunes the checks applied while building a conversion event.
type ValidationRules struct {
	ClickID ClickIDPolicy
	// RequireUserProperties rejects events whose user carries no properties at all.
	RequireUserProperties bool
}

// ComponentConfig configures a Component. Zero values select the defaults.
type ComponentConfig struct {
	Endpoint   string
	APIVersion string
	Rules      ValidationRules
	// IDGenerator supplies an event id when the event has neither an
	// event_id property nor a UUID.
	IDGenerator   func() string
	LoggerAdapter LoggerAdapter
}
