// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dealwith

import (
	"fmt"
	"net/http"
)

// newTransportError builds a rejected-response failure like the one the client
// package produces
func newTransportError(status int, data Body, cfg RequestConfig) *TransportError {
	code := CodeBadResponse
	if status < 500 {
		code = CodeBadRequest
	}

	return &TransportError{
		Code:    code,
		Message: fmt.Sprintf("request failed with status code %d", status),
		Response: &Response{
			Status: status,
			Header: http.Header{},
			Data:   data,
		},
		Config: cfg,
	}
}

func (suite *EngineTestSuite) TestTransportRaw() {
	suite.store.Register("404", Message("not found"))
	te := newTransportError(http.StatusNotFound, Body{"message": "msg API"}, RequestConfig{Raw: true})

	suite.True(te == suite.engine.Dispatch(te))
	suite.assertNotNotified()
}

func (suite *EngineTestSuite) TestTransportRawDirect() {
	te := newTransportError(http.StatusNotFound, Body{"message": "msg API"}, RequestConfig{Raw: true})

	suite.notifier.ExpectNotify("msg API").Once()
	suite.requireError(suite.engine.DispatchDirect(te), "msg API")
}

func (suite *EngineTestSuite) TestTransportBodyMessageWins() {
	suite.store.
		Register("USER_MISSING", Message("registered code")).
		Register(CodeBadRequest, Message("registered failure code")).
		Register("404", Message("registered status"))

	te := newTransportError(http.StatusNotFound, Body{"message": "msg API", "code": "USER_MISSING"}, RequestConfig{})

	suite.notifier.ExpectNotify("msg API").Once()
	e := suite.requireError(suite.engine.Dispatch(te), "msg API")
	suite.Empty(e.Key)
	suite.Equal(http.StatusNotFound, e.StatusCode())
}

func (suite *EngineTestSuite) TestTransportBodyMessageNotString() {
	suite.store.Register("USER_MISSING", Message("registered"))

	for _, message := range []interface{}{false, 0.0, 12.5, true} {
		te := newTransportError(http.StatusNotFound, Body{"message": message, "code": "USER_MISSING"}, RequestConfig{})

		suite.notifier.ExpectNotify("registered").Once()
		e := suite.requireError(suite.engine.Dispatch(te), "registered")
		suite.Equal("USER_MISSING", e.Key)
	}
}

func (suite *EngineTestSuite) TestTransportBodyMessageSilent() {
	te := newTransportError(http.StatusNotFound, Body{"message": "msg API"}, RequestConfig{Silent: true})

	suite.requireError(suite.engine.Dispatch(te), "msg API")
	suite.assertNotNotified()
}

func (suite *EngineTestSuite) TestTransportKeyOrder() {
	testData := []struct {
		name        string
		registered  []string
		expectedKey string
	}{
		{
			name:        "BodyCode",
			registered:  []string{"USER_MISSING", CodeBadRequest, "Teapot", "418", "404"},
			expectedKey: "USER_MISSING",
		},
		{
			name:        "FailureCode",
			registered:  []string{CodeBadRequest, "Teapot", "418", "404"},
			expectedKey: CodeBadRequest,
		},
		{
			name:        "FailureName",
			registered:  []string{"Teapot", "418", "404"},
			expectedKey: "Teapot",
		},
		{
			name:        "BodyStatus",
			registered:  []string{"418", "404"},
			expectedKey: "418",
		},
		{
			name:        "ResponseStatus",
			registered:  []string{"404"},
			expectedKey: "404",
		},
	}

	for _, record := range testData {
		suite.Run(record.name, func() {
			store := NewStore(WithNotifier(suite.notifier.Notify))
			for _, key := range record.registered {
				store.Register(key, Message("handled by "+key))
			}

			te := newTransportError(http.StatusNotFound, Body{"code": "USER_MISSING", "status": 418}, RequestConfig{})
			te.Name = "Teapot"

			suite.notifier.ExpectNotify("handled by " + record.expectedKey).Once()
			e := suite.requireError(NewEngine(store).Dispatch(te), "handled by "+record.expectedKey)
			suite.Equal(record.expectedKey, e.Key)
			suite.True(te == e.Cause)
		})
	}
}

func (suite *EngineTestSuite) TestTransportRegisteredSilent() {
	suite.store.Register("404", &Descriptor{Message: "quiet", Silent: true})
	te := newTransportError(http.StatusNotFound, nil, RequestConfig{})

	suite.requireError(suite.engine.Dispatch(te), "quiet")
	suite.assertNotNotified()
}

func (suite *EngineTestSuite) TestTransportResolverDeclines() {
	suite.store.Register("404", Resolver(func(error) *Descriptor { return nil }))
	te := newTransportError(http.StatusNotFound, Body{"description": "described"}, RequestConfig{})

	suite.notifier.ExpectNotify("described").Once()
	suite.requireError(suite.engine.Dispatch(te), "described")
}

func (suite *EngineTestSuite) TestTransportFallbackMessage() {
	te := &TransportError{
		Code:    CodeNetwork,
		Message: "boom message",
		Config:  RequestConfig{Silent: true},
	}

	e := suite.requireError(suite.engine.Dispatch(te), "boom message")
	suite.Equal(http.StatusInternalServerError, e.StatusCode())
	suite.assertNotNotified()
}

func (suite *EngineTestSuite) TestTransportUnresolved() {
	te := &TransportError{Code: CodeNetwork}
	suite.True(te == suite.engine.Dispatch(te))
	suite.assertNotNotified()
}

func (suite *EngineTestSuite) TestTransportWrapped() {
	suite.store.Register("500", Message("server error"))
	te := newTransportError(http.StatusInternalServerError, Body{"unrelated": true}, RequestConfig{})
	wrapped := fmt.Errorf("calling upstream: %w", te)

	suite.notifier.ExpectNotify("server error").Once()
	e := suite.requireError(suite.engine.Dispatch(wrapped), "server error")
	suite.True(wrapped == e.Cause)
	suite.Equal(http.StatusInternalServerError, e.StatusCode())
}
