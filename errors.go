package linkedin

// ErrorKind classifies the failures returned to the host runtime.
type ErrorKind string

const (
	KindMissingCredential          ErrorKind = "MissingCredential"
	KindEmptyConversionName        ErrorKind = "EmptyConversionName"
	KindConsentNotGranted          ErrorKind = "ConsentNotGranted"
	KindMissingIdentifyingProperty ErrorKind = "MissingIdentifyingProperty"
	KindUnimplementedEventKind     ErrorKind = "UnimplementedEventKind"
	KindMalformedEventData         ErrorKind = "MalformedEventData"
)

// ComponentError is returned by every entry point. Error() is the message
// surfaced to the host as is.
type ComponentError struct {
	Kind    ErrorKind
	Message string
}

func (e *ComponentError) Error() string {
	return e.Message
}

// Is reports whether target is a ComponentError of the same kind, so the
// sentinels below match errors carrying a different message.
func (e *ComponentError) Is(target error) bool {
	t, ok := target.(*ComponentError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, message string) *ComponentError {
	return &ComponentError{Kind: kind, Message: message}
}

var (
	ErrMissingCredential   = newError(KindMissingCredential, "Missing LinkedIn Access Token")
	ErrEmptyConversionName = newError(KindEmptyConversionName,
		"Track name should be set to your conversion rule. ex: urn:lla:llaPartnerConversion:123")
	ErrConsentNotGranted   = newError(KindConsentNotGranted, "Consent is not granted")
	ErrMissingEmail        = newError(KindMissingIdentifyingProperty, "User properties must contain email")
	ErrEmptyUserProperties = newError(KindMissingIdentifyingProperty, "User properties must not be empty")
	ErrPageNotImplemented  = newError(KindUnimplementedEventKind, "Page event not implemented for this component")
	ErrUserNotImplemented  = newError(KindUnimplementedEventKind, "User event not implemented for this component")
	ErrMissingTrackData    = newError(KindMalformedEventData, "Missing track data")
)
