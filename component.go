package linkedin

import (
	"strings"

	"github.com/edgee-cloud/linkedin-capi-go/adapters"
	"github.com/google/uuid"
)

// DataCollection is the contract a host runtime calls for every collected
// event. Each call returns one request to dispatch or an error whose
// message is reported back to the host.
type DataCollection interface {
	Page(event *Event, settings Dict) (*Request, error)
	Track(event *Event, settings Dict) (*Request, error)
	User(event *Event, settings Dict) (*Request, error)
}

// Component turns track events into LinkedIn Conversions API requests.
// It holds no per-call state and is safe for concurrent use.
type Component struct {
	config        ComponentConfig
	loggerAdapter LoggerAdapter
}

// Ensure Component implements DataCollection interface
var _ DataCollection = (*Component)(nil)

// NewComponent creates a component, filling unset config fields with defaults.
func NewComponent(config ComponentConfig) *Component {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}
	if config.IDGenerator == nil {
		config.IDGenerator = uuid.NewString
	}

	component := &Component{config: config}

	// Use provided logger or default
	if config.LoggerAdapter != nil {
		component.loggerAdapter = config.LoggerAdapter
	} else {
		component.loggerAdapter = adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
	}

	return component
}

func (c *Component) Page(event *Event, settings Dict) (*Request, error) {
	return nil, ErrPageNotImplemented
}

func (c *Component) User(event *Event, settings Dict) (*Request, error) {
	return nil, ErrUserNotImplemented
}

// Track builds the conversion request for a track event. The track name
// must be the URN of a conversion rule configured in LinkedIn.
func (c *Component) Track(event *Event, settings Dict) (*Request, error) {
	if event == nil || event.Data.Track == nil {
		c.loggerAdapter.Warn("Rejected track call: missing track data")
		return nil, ErrMissingTrackData
	}
	data := event.Data.Track

	if data.Name == "" {
		c.loggerAdapter.Warn("Rejected event %s: empty conversion name", event.UUID)
		return nil, ErrEmptyConversionName
	}

	accessToken, err := ResolveAccessToken(settings)
	if err != nil {
		c.loggerAdapter.Error("Rejected event %s: %v", event.UUID, err)
		return nil, err
	}

	eventID := c.resolveEventID(event)

	var clickID *string
	if value, ok := ExtractQueryParam(strings.TrimPrefix(event.Context.Page.Search, "?"), "li_fat_id"); ok {
		clickID = &value
	}

	payload, err := NewConversionEvent(event, data.Name, eventID, clickID, c.config.Rules)
	if err != nil {
		c.loggerAdapter.Warn("Rejected event %s: %v", event.UUID, err)
		return nil, err
	}

	req, err := BuildRequest(payload, accessToken, c.config.Endpoint, c.config.APIVersion)
	if err != nil {
		c.loggerAdapter.Error("Failed to build request for event %s: %v", event.UUID, err)
		return nil, err
	}

	c.loggerAdapter.Debug("Built conversion %s for event %s with %d user ids",
		payload.Conversion, payload.EventID, len(payload.User.UserIDs))
	return req, nil
}

// resolveEventID prefers the event_id track property, then the event UUID.
func (c *Component) resolveEventID(event *Event) string {
	for _, property := range event.Data.Track.Properties {
		if property[0] == "event_id" {
			return property[1]
		}
	}
	if event.UUID != "" {
		return event.UUID
	}
	return c.config.IDGenerator()
}
