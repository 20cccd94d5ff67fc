// Package jsonx wraps json-iterator: Marshal for emitted objects and Value for tolerant,
// path-aware reads of node responses.
package jsonx

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Object is an emitted JSON object.
type Object = map[string]interface{}

func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent indents with two spaces, for output read by people.
func MarshalIndent(v interface{}) ([]byte, error) {
	return api.MarshalIndent(v, "", "  ")
}
