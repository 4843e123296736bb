package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigFastest

// EncodeEvents marshals a materialized event sequence for boundary layers.
func EncodeEvents(events []Event) ([]byte, error) {
	return json.MarshalIndent(events, "", "  ")
}

// EncodeEvent marshals a single event.
func EncodeEvent(event Event) ([]byte, error) {
	return json.MarshalIndent(event, "", "  ")
}

// DecodeEvent unmarshals a single event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}
