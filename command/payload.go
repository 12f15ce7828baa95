package command

import (
	jsoniter "github.com/json-iterator/go"
)

// decodePayload maps the loose payload map onto a typed command struct via a
// JSON round trip, so handlers work with fixed, typed fields instead of
// probing map keys.
func decodePayload[C any](payload map[string]any) (C, error) {
	var cmd C

	raw, err := jsoniter.ConfigFastest.Marshal(payload)
	if err != nil {
		return cmd, err
	}

	if err := jsoniter.ConfigFastest.Unmarshal(raw, &cmd); err != nil {
		return cmd, err
	}

	return cmd, nil
}
