// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import "sort"

const (
	severityFieldName = "severity"
	messageFieldName  = "message"

	// SeverityNegative is the severity used for every notification raised
	// by an Engine.
	SeverityNegative = "negative"
)

// Fields holds the options passed to a Notifier.  A Descriptor's Notify
// fields are merged over the standard severity and message fields.
type Fields map[string]interface{}

// NewFields constructs the minimal notification fields.
func NewFields(severity, message string) Fields {
	return Fields{
		severityFieldName: severity,
		messageFieldName:  message,
	}
}

// Severity returns the severity for this set of fields.
// This method returns the empty string if there is no severity
// or if the severity is not a string.
func (f Fields) Severity() string {
	s, _ := f[severityFieldName].(string)
	return s
}

// Message returns the message for this set of fields.
// This method returns the empty string if there is no message
// or if the message is not a string.
func (f Fields) Message() string {
	m, _ := f[messageFieldName].(string)
	return m
}

// Clone returns a distinct, shallow copy of this Fields instance.
// A nil Fields clones to nil.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}

	c := make(Fields, len(f))
	for k, v := range f {
		c[k] = v
	}

	return c
}

// Merge merges the fields from the given Fields into this instance.
// Existing names are overwritten.
func (f Fields) Merge(more Fields) {
	for k, v := range more {
		f[k] = v
	}
}

// Add adds a variadic set of names and values to this fields.
//
// Each even-numbered item in this method's variadic arguments must be a string, or
// this method will panic.  Each odd-numbered item is paired as the value of the preceding
// name.  If there are an odd number of items, the last item must be a string and it
// is interpreted as having an nil value.
func (f Fields) Add(namesAndValues ...interface{}) {
	for i, j := 0, 1; i < len(namesAndValues); i, j = i+2, j+2 {
		name := namesAndValues[i].(string)
		var value interface{}
		if j < len(namesAndValues) {
			value = namesAndValues[j]
		}

		f[name] = value
	}
}

// Append does the reverse of Add.  This method flattens a Fields into a
// sequence of {name1, value1, name2, value2, ...} values, which is the
// shape slog expects for its variadic arguments.  Names are appended in
// sorted order.
func (f Fields) Append(nav []interface{}) []interface{} {
	if cap(nav) < len(nav)+2*len(f) {
		grow := make([]interface{}, 0, len(nav)+2*len(f))
		grow = append(grow, nav...)
		nav = grow
	}

	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}

	sort.Strings(names)
	for _, k := range names {
		nav = append(nav, k, f[k])
	}

	return nav
}
