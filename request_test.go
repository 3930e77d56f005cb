package linkedin

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/edgee-cloud/linkedin-capi-go/adapters"
)

func samplePayload() *ConversionEvent {
	return &ConversionEvent{
		Conversion: "conv1",
		EventTime:  1718000000000,
		EventID:    "evt-1",
		User: ConversionUser{
			UserIDs:     []UserID{{IDType: IDTypeSHA256Email, IDValue: testEmailHash}},
			ExternalIDs: []string{"123"},
		},
	}
}

func TestBuildRequest(t *testing.T) {
	req, err := BuildRequest(samplePayload(), "secret", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Method != adapters.HTTPMethodPost {
		t.Errorf("expected POST, got %s", req.Method)
	}
	if req.URL != "https://api.linkedin.com/rest/conversionEvents" {
		t.Errorf("unexpected URL %s", req.URL)
	}
	if !req.ForwardClientHeaders {
		t.Error("expected client headers to be forwarded")
	}

	wantHeaders := Dict{
		{"content-type", "application/json"},
		{"X-Restli-Protocol-Version", "2.0.0"},
		{"LinkedIn-Version", "202506"},
		{"Authorization", "Bearer secret"},
	}
	if !reflect.DeepEqual(req.Headers, wantHeaders) {
		t.Errorf("unexpected headers %v", req.Headers)
	}

	wantBody := `{"conversion":"conv1","conversionHappenedAt":1718000000000,` +
		`"user":{"userIds":[{"idType":"SHA256_EMAIL","idValue":"` + testEmailHash + `"}],"externalIds":["123"]},` +
		`"eventId":"evt-1"}`
	if req.Body != wantBody {
		t.Errorf("unexpected body:\n got %s\nwant %s", req.Body, wantBody)
	}
}

func TestBuildRequest_Overrides(t *testing.T) {
	req, err := BuildRequest(samplePayload(), "secret", "http://localhost:8080/rest/conversionEvents", "202401")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.URL != "http://localhost:8080/rest/conversionEvents" {
		t.Errorf("unexpected URL %s", req.URL)
	}
	if req.Headers[2] != [2]string{"LinkedIn-Version", "202401"} {
		t.Errorf("unexpected version header %v", req.Headers[2])
	}
}

func TestBuildRequest_EmptyArraysStayArrays(t *testing.T) {
	payload := samplePayload()
	payload.User.UserIDs = []UserID{}

	req, err := BuildRequest(payload, "secret", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(req.Body), &decoded); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	user := decoded["user"].(map[string]any)
	if ids, ok := user["userIds"].([]any); !ok || len(ids) != 0 {
		t.Errorf("expected empty userIds array, got %v", user["userIds"])
	}
}
