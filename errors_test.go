package linkedin

import (
	"errors"
	"fmt"
	"testing"
)

func TestComponentError(t *testing.T) {
	t.Run("should expose the message as is", func(t *testing.T) {
		err := &ComponentError{Kind: KindConsentNotGranted, Message: "Consent is not granted"}
		if err.Error() != "Consent is not granted" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("should match sentinels by kind", func(t *testing.T) {
		err := fmt.Errorf("track failed: %w", &ComponentError{Kind: KindMissingIdentifyingProperty, Message: "custom"})
		if !errors.Is(err, ErrMissingEmail) {
			t.Error("expected wrapped error to match its kind")
		}
		if errors.Is(err, ErrConsentNotGranted) {
			t.Error("did not expect a match across kinds")
		}
	})

	t.Run("should not match foreign errors", func(t *testing.T) {
		if errors.Is(errors.New("Consent is not granted"), ErrConsentNotGranted) {
			t.Error("plain errors must not match by message")
		}
	})
}
