package adapters

// Dict is an ordered list of key/value pairs. Keys are not guaranteed unique.
type Dict = [][2]string

// EventType identifies which kind of data an event carries.
type EventType string

const (
	EventTypePage  EventType = "page"
	EventTypeTrack EventType = "track"
	EventTypeUser  EventType = "user"
)

// Consent is the privacy signal attached to an event.
type Consent string

const (
	ConsentGranted Consent = "granted"
	ConsentDenied  Consent = "denied"
)

// Event represents one analytics occurrence handed over by the host runtime.
type Event struct {
	UUID            string    `json:"uuid"`
	Timestamp       int64     `json:"timestamp"`
	TimestampMillis int64     `json:"timestamp_millis"`
	TimestampMicros int64     `json:"timestamp_micros"`
	EventType       EventType `json:"type"`
	Data            Data      `json:"data"`
	Context         Context   `json:"context"`
	Consent         *Consent  `json:"consent,omitempty"`
}

// Data holds exactly one of the page, track or user payloads.
type Data struct {
	Page  *PageData  `json:"page,omitempty"`
	Track *TrackData `json:"track,omitempty"`
	User  *UserData  `json:"user,omitempty"`
}

// TrackData is the payload of a track event. Name is the conversion rule.
type TrackData struct {
	Name       string `json:"name"`
	Products   []Dict `json:"products,omitempty"`
	Properties Dict   `json:"properties,omitempty"`
}

// PageData describes the page the event was collected on.
type PageData struct {
	Name       string   `json:"name,omitempty"`
	Category   string   `json:"category,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	Title      string   `json:"title,omitempty"`
	URL        string   `json:"url,omitempty"`
	Path       string   `json:"path,omitempty"`
	Search     string   `json:"search,omitempty"`
	Referrer   string   `json:"referrer,omitempty"`
	Properties Dict     `json:"properties,omitempty"`
}

// UserData carries the user identifiers and traits (email, phone, ...).
type UserData struct {
	UserID      string `json:"user_id"`
	AnonymousID string `json:"anonymous_id,omitempty"`
	EdgeeID     string `json:"edgee_id,omitempty"`
	Properties  Dict   `json:"properties,omitempty"`
}

// Context is the collection context of an event.
type Context struct {
	Page     PageData `json:"page"`
	User     UserData `json:"user"`
	Client   Client   `json:"client"`
	Campaign Campaign `json:"campaign"`
	Session  Session  `json:"session"`
}

// Client describes the browser or device that emitted the event.
type Client struct {
	City          string  `json:"city,omitempty"`
	IP            string  `json:"ip,omitempty"`
	Locale        string  `json:"locale,omitempty"`
	Timezone      string  `json:"timezone,omitempty"`
	UserAgent     string  `json:"user_agent,omitempty"`
	OSName        string  `json:"os_name,omitempty"`
	OSVersion     string  `json:"os_version,omitempty"`
	ScreenWidth   int32   `json:"screen_width,omitempty"`
	ScreenHeight  int32   `json:"screen_height,omitempty"`
	ScreenDensity float32 `json:"screen_density,omitempty"`
	CountryCode   string  `json:"country_code,omitempty"`
	Region        string  `json:"region,omitempty"`
}

type Campaign struct {
	Name    string `json:"name,omitempty"`
	Source  string `json:"source,omitempty"`
	Medium  string `json:"medium,omitempty"`
	Term    string `json:"term,omitempty"`
	Content string `json:"content,omitempty"`
}

type Session struct {
	SessionID         string `json:"session_id,omitempty"`
	PreviousSessionID string `json:"previous_session_id,omitempty"`
	SessionCount      int32  `json:"session_count,omitempty"`
	SessionStart      bool   `json:"session_start,omitempty"`
	FirstSeen         int64  `json:"first_seen,omitempty"`
	LastSeen          int64  `json:"last_seen,omitempty"`
}

// HTTPMethod is the method of an outgoing request.
type HTTPMethod string

const (
	HTTPMethodGet  HTTPMethod = "GET"
	HTTPMethodPost HTTPMethod = "POST"
	HTTPMethodPut  HTTPMethod = "PUT"
)

// Request describes an HTTP request for the host to dispatch.
// ForwardClientHeaders asks the transport to also send the original caller's headers.
type Request struct {
	Method               HTTPMethod `json:"method"`
	URL                  string     `json:"url"`
	Headers              Dict       `json:"headers"`
	ForwardClientHeaders bool       `json:"forward_client_headers"`
	Body                 string     `json:"body"`
}
