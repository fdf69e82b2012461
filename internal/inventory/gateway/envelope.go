package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

// The backend has been observed answering with several envelope shapes:
//
//	{"success": true, "data": {"medicines": [...]}}
//	{"success": true, "medicines": [...]}
//	{"success": true, "data": [...]}
//	[...]
//
// extractCollection tries them in exactly that priority order and fails
// loudly when none match rather than defaulting to an empty list.
func extractCollection(body []byte, key string) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		if err := envelopeFailure(obj); err != nil {
			return nil, err
		}

		data, hasData := obj["data"]
		if hasData {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(data, &nested); err == nil {
				if raw, ok := nested[key]; ok && isArray(raw) {
					return raw, nil
				}
			}
		}
		if raw, ok := obj[key]; ok && isArray(raw) {
			return raw, nil
		}
		if hasData && isArray(data) {
			return data, nil
		}
		return nil, fmt.Errorf("unrecognized response envelope for %q", key)
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(body, &arr); err == nil {
		return body, nil
	}
	return nil, fmt.Errorf("unrecognized response envelope for %q", key)
}

// extractRecord pulls a single object out of {"data": {...}} or a bare
// object body.
func extractRecord(body []byte) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, errors.New("unrecognized record envelope")
	}
	if err := envelopeFailure(obj); err != nil {
		return nil, err
	}
	if data, ok := obj["data"]; ok && !isArray(data) {
		return data, nil
	}
	return body, nil
}

// envelopeFailure surfaces {"success": false, ...} bodies as errors.
func envelopeFailure(obj map[string]json.RawMessage) error {
	raw, ok := obj["success"]
	if !ok {
		return nil
	}
	var success bool
	if err := json.Unmarshal(raw, &success); err != nil || success {
		return nil
	}
	msg := "request rejected"
	for _, k := range []string{"error", "message"} {
		if v, ok := obj[k]; ok {
			var s string
			if json.Unmarshal(v, &s) == nil && s != "" {
				msg = s
				break
			}
		}
	}
	return errors.New(msg)
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
