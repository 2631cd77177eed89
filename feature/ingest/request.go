package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PushRequest is the envelope the ERP posts to /api/sync/push.
type PushRequest struct {
	Source   string `json:"Source"`
	Target   string `json:"Target"`
	DataType string `json:"DataType"`
	// Payload is either a JSON string holding the array, as the ERP sends
	// it, or the array itself.
	Payload json.RawMessage `json:"Payload"`
}

// Records returns the JSON array carried by the request. An empty DataType
// is not checked here: the engine rejects and audits it like any unknown kind.
func (r PushRequest) Records() ([]byte, error) {
	raw := bytes.TrimSpace(r.Payload)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("invalid Payload string: %w", err)
		}
		return []byte(s), nil
	}
	return raw, nil
}
