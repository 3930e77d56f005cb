package adapters

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileEventSource reads events stored as a JSON array in a file.
type FileEventSource struct {
	filepath string
}

// Ensure FileEventSource implements EventSource interface
var _ EventSource = (*FileEventSource)(nil)

// NewFileEventSource creates a new FileEventSource instance.
//
// Parameters:
//   - filepath: Path to the JSON file holding the events
func NewFileEventSource(filepath string) EventSource {
	return &FileEventSource{filepath: filepath}
}

// Load retrieves events from the JSON file. A single JSON object is
// accepted as a one-event file.
func (f *FileEventSource) Load() ([]Event, error) {
	data, err := os.ReadFile(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err == nil {
		return events, nil
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return []Event{event}, nil
}
