// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import "github.com/stretchr/testify/mock"

// mockNotifier is a testify mock whose Notify method can be used as a Notifier
type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(f Fields) {
	m.Called(f)
}

// ExpectNotify sets an expectation for a negative notification with the given
// message plus any extra names and values
func (m *mockNotifier) ExpectNotify(message string, namesAndValues ...interface{}) *mock.Call {
	expected := NewFields(SeverityNegative, message)
	expected.Add(namesAndValues...)
	return m.On("Notify", expected)
}

// namedError is a generic failure that reports its own name
type namedError struct {
	name string
}

func (ne namedError) Error() string {
	return "named error: " + ne.name
}

func (ne namedError) ErrorName() string {
	return ne.name
}
