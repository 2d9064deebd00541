package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// listKeys are the nested keys a list may hide under inside "data".
var listKeys = []string{"data", "tickets", "results", "users", "bookings"}

// DecodeList decodes a list response. The backend is not consistent about
// envelopes, so a bare array, {"data": [...]} and {"data": {"<key>": [...]}}
// for any of listKeys are all accepted. Anything else yields an empty list.
func DecodeList[T any](raw json.RawMessage) ([]T, error) {
	arr := findArray(raw)
	if arr == nil {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(arr, &out); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// DecodeItem decodes a single record, unwrapping a "data" envelope when
// present.
func DecodeItem[T any](raw json.RawMessage) (T, error) {
	var out T

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err == nil {
		if inner, ok := env["data"]; ok && isObject(inner) {
			raw = inner
		}
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode item: %w", err)
	}
	return out, nil
}

func findArray(raw json.RawMessage) json.RawMessage {
	if isArray(raw) {
		return raw
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}
	data, ok := env["data"]
	if !ok {
		return nil
	}
	if isArray(data) {
		return data
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil
	}
	for _, k := range listKeys {
		if v, ok := inner[k]; ok && isArray(v) {
			return v
		}
	}
	return nil
}

func isArray(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("["))
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}
