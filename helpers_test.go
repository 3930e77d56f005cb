package linkedin

import (
	"github.com/edgee-cloud/linkedin-capi-go/adapters"
	"github.com/google/uuid"
)

func consentPtr(c Consent) *Consent {
	return &c
}

func stringPtr(s string) *string {
	return &s
}

func sampleUserData() UserData {
	return UserData{
		UserID:      "123",
		AnonymousID: "456",
		EdgeeID:     "abc",
		Properties: Dict{
			{"email", "test@test.com"},
			{"phone_number", "+39 1231231231"},
			{"first_name", "John"},
			{"last_name", "Doe"},
			{"city", "Las Vegas"},
			{"random_property", "abc"},
		},
	}
}

func samplePageData() PageData {
	return PageData{
		Name:     "page name",
		Title:    "page title",
		URL:      "https://example.com/full-url?test=1&li_fat_id=click-42",
		Path:     "/full-path",
		Search:   "?test=1&li_fat_id=click-42",
		Referrer: "https://example.com/another-page",
	}
}

func sampleTrackEvent(name string, consent *Consent) *Event {
	return &Event{
		UUID:            uuid.NewString(),
		Timestamp:       123,
		TimestampMillis: 123000,
		TimestampMicros: 123000000,
		EventType:       adapters.EventTypeTrack,
		Data: Data{Track: &TrackData{
			Name: name,
			Properties: Dict{
				{"prop1", "value1"},
				{"currency", "USD"},
			},
		}},
		Context: Context{
			Page: samplePageData(),
			User: sampleUserData(),
		},
		Consent: consent,
	}
}

func samplePageEvent(consent *Consent) *Event {
	page := samplePageData()
	return &Event{
		UUID:            uuid.NewString(),
		TimestampMillis: 123000,
		EventType:       adapters.EventTypePage,
		Data:            Data{Page: &page},
		Context:         Context{Page: page, User: sampleUserData()},
		Consent:         consent,
	}
}

func sampleUserEvent(consent *Consent) *Event {
	user := sampleUserData()
	return &Event{
		UUID:            uuid.NewString(),
		TimestampMillis: 123000,
		EventType:       adapters.EventTypeUser,
		Data:            Data{User: &user},
		Context:         Context{Page: samplePageData(), User: user},
		Consent:         consent,
	}
}

func sampleSettings() Dict {
	return Dict{
		{"linkedin_access_token", "abc"},
		{"pinterest_ad_account_id", "abc"},
	}
}

func quietComponent(rules ValidationRules) *Component {
	return NewComponent(ComponentConfig{
		Rules:         rules,
		LoggerAdapter: adapters.NewNoOpLoggerAdapter(),
	})
}
