// Copyright © 2018 One Concern

package infoplist

import (
	"sort"
	"time"

	"github.com/oneconcern/versionchanger/pkg/status"
	"howett.net/plist"
)

// Kind of a property list value
type Kind uint8

// Property list value kinds
const (
	Invalid Kind = iota
	String
	Integer
	Real
	Boolean
	Date
	Data
	Array
	Dictionary
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	String:     "string",
	Integer:    "integer",
	Real:       "real",
	Boolean:    "boolean",
	Date:       "date",
	Data:       "data",
	Array:      "array",
	Dictionary: "dictionary",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Invalid]
}

// Value is a property list value tagged with its kind
type Value struct {
	raw interface{}
}

// ValueOf wraps a decoded value
func ValueOf(raw interface{}) Value {
	switch v := raw.(type) {
	case Value:
		return v
	case Dict:
		return Value{raw: v.m}
	default:
		return Value{raw: raw}
	}
}

// Kind of the value
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case string:
		return String
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, plist.UID:
		return Integer
	case float32, float64:
		return Real
	case bool:
		return Boolean
	case time.Time:
		return Date
	case []byte:
		return Data
	case []interface{}:
		return Array
	case map[string]interface{}:
		return Dictionary
	default:
		return Invalid
	}
}

// Interface returns the decoded value
func (v Value) Interface() interface{} {
	return v.raw
}

// AsString returns the value as a string, or fails if this is not a string
func (v Value) AsString() (string, error) {
	s, ok := v.raw.(string)
	if !ok {
		return "", v.mismatch(String)
	}
	return s, nil
}

// AsArray returns the elements of an array, or fails if this is not an array
func (v Value) AsArray() ([]Value, error) {
	a, ok := v.raw.([]interface{})
	if !ok {
		return nil, v.mismatch(Array)
	}
	values := make([]Value, 0, len(a))
	for _, elem := range a {
		values = append(values, ValueOf(elem))
	}
	return values, nil
}

// AsDict returns the value as a dictionary, or fails if this is not a dictionary.
//
// The returned Dict shares its entries with the value.
func (v Value) AsDict() (Dict, error) {
	m, ok := v.raw.(map[string]interface{})
	if !ok {
		return Dict{}, v.mismatch(Dictionary)
	}
	return Dict{m: m}, nil
}

func (v Value) mismatch(expected Kind) error {
	return status.ErrMalformedDocument.Withf("expected a %v value but found %v", expected, v.Kind())
}

// Dict is a property list dictionary
type Dict struct {
	m map[string]interface{}
}

// NewDict builds an empty dictionary
func NewDict() Dict {
	return Dict{m: make(map[string]interface{})}
}

// Get a value by key
func (d Dict) Get(key string) (Value, bool) {
	raw, ok := d.m[key]
	if !ok {
		return Value{}, false
	}
	return ValueOf(raw), true
}

// Set a value. Values wrapped in Value or Dict are stored unwrapped.
func (d Dict) Set(key string, value interface{}) {
	d.m[key] = ValueOf(value).raw
}

// Has tells if the dictionary holds some key
func (d Dict) Has(key string) bool {
	_, ok := d.m[key]
	return ok
}

// Keys in lexicographic order
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len is the number of entries
func (d Dict) Len() int {
	return len(d.m)
}
