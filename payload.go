package linkedin

import "github.com/edgee-cloud/linkedin-capi-go/adapters"

// Identifier types understood by the Conversions API.
const (
	IDTypeFirstPartyAdsTrackingUUID = "LINKEDIN_FIRST_PARTY_ADS_TRACKING_UUID"
	IDTypeSHA256Email               = "SHA256_EMAIL"
)

// ConversionEvent is the body sent to the LinkedIn Conversions API.
// See https://learn.microsoft.com/en-us/linkedin/marketing/integrations/ads-reporting/conversions-api
type ConversionEvent struct {
	Conversion string         `json:"conversion"`
	EventTime  int64          `json:"conversionHappenedAt"`
	User       ConversionUser `json:"user"`
	EventID    string         `json:"eventId"`
}

// ConversionUser holds the identifiers LinkedIn matches the conversion against.
type ConversionUser struct {
	UserIDs     []UserID `json:"userIds"`
	ExternalIDs []string `json:"externalIds"`
}

// UserID is a typed identifier, either hashed (email) or opaque (click id).
type UserID struct {
	IDType  string `json:"idType"`
	IDValue string `json:"idValue"`
}

// NewConversionEvent maps an event to a conversion event for the given
// conversion rule. clickID is the li_fat_id of the page, nil when absent.
//
// The conversion name is not checked here; callers reject empty names first.
func NewConversionEvent(event *Event, conversion, eventID string, clickID *string, rules ValidationRules) (*ConversionEvent, error) {
	user := event.Context.User

	data := ConversionUser{
		UserIDs:     []UserID{},
		ExternalIDs: []string{user.UserID},
	}

	if clickID != nil || rules.ClickID == ClickIDAlwaysEmit {
		value := ""
		if clickID != nil {
			value = *clickID
		}
		data.UserIDs = append(data.UserIDs, UserID{
			IDType:  IDTypeFirstPartyAdsTrackingUUID,
			IDValue: value,
		})
	}

	emails := 0
	for _, property := range user.Properties {
		if property[0] != "email" {
			continue
		}
		data.UserIDs = append(data.UserIDs, UserID{
			IDType:  IDTypeSHA256Email,
			IDValue: HashValue(property[1]),
		})
		emails++
	}

	if event.Consent != nil && *event.Consent != adapters.ConsentGranted {
		return nil, ErrConsentNotGranted
	}

	if rules.RequireUserProperties && len(user.Properties) == 0 {
		return nil, ErrEmptyUserProperties
	}

	// The click id entry alone does not identify the user.
	if emails == 0 {
		return nil, ErrMissingEmail
	}

	return &ConversionEvent{
		Conversion: conversion,
		EventTime:  event.TimestampMillis,
		User:       data,
		EventID:    eventID,
	}, nil
}
