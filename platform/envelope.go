package platform

import (
	"bytes"
	"encoding/json"
	"log"
)

// ExtractCollection accepts a bare JSON array or an object whose first
// matching key holds an array. Anything else yields an empty collection and
// a warning; it never fails.
func ExtractCollection(raw []byte, keys ...string) []json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		log.Printf("[PLATFORM] warning: empty response, expected a collection under %v", keys)
		return []json.RawMessage{}
	}

	if raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			log.Printf("[PLATFORM] warning: malformed collection: %v", err)
			return []json.RawMessage{}
		}
		return items
	}

	var obj map[string]json.RawMessage
	if raw[0] != '{' || json.Unmarshal(raw, &obj) != nil {
		log.Printf("[PLATFORM] warning: unexpected collection shape, expected array or object with %v", keys)
		return []json.RawMessage{}
	}

	for _, key := range keys {
		value := bytes.TrimSpace(obj[key])
		if len(value) == 0 || value[0] != '[' {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil {
			log.Printf("[PLATFORM] warning: malformed %q collection: %v", key, err)
			return []json.RawMessage{}
		}
		return items
	}

	log.Printf("[PLATFORM] warning: no collection found under %v", keys)
	return []json.RawMessage{}
}

// ExtractObject returns the first matching key holding an object, or the
// payload itself when it is an object carrying an "id". Returns nil otherwise.
func ExtractObject(raw []byte, keys ...string) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	var obj map[string]json.RawMessage
	if len(raw) == 0 || raw[0] != '{' || json.Unmarshal(raw, &obj) != nil {
		log.Printf("[PLATFORM] warning: expected an object under %v", keys)
		return nil
	}

	for _, key := range keys {
		value := bytes.TrimSpace(obj[key])
		if len(value) > 0 && value[0] == '{' {
			return value
		}
	}
	if _, ok := obj["id"]; ok {
		return raw
	}

	log.Printf("[PLATFORM] warning: no object found under %v", keys)
	return nil
}

func decodeList[T any](raw []byte, keys ...string) []T {
	items := ExtractCollection(raw, keys...)
	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			log.Printf("[PLATFORM] warning: skipping malformed item %d under %v: %v", i, keys, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// decodeObject returns the zero value when the envelope holds no object.
func decodeObject[T any](raw []byte, keys ...string) T {
	var v T
	obj := ExtractObject(raw, keys...)
	if obj == nil {
		return v
	}
	if err := json.Unmarshal(obj, &v); err != nil {
		log.Printf("[PLATFORM] warning: malformed object under %v: %v", keys, err)
	}
	return v
}
