// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hallpass Contributors

package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallpass/hallpass/internal/web"
)

func TestRequest_IsSubmit(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		want   bool
	}{
		{name: "submit present", params: map[string]string{"submit": "1"}, want: true},
		{name: "submit present with empty value", params: map[string]string{"submit": ""}, want: true},
		{name: "submit absent", params: map[string]string{"username": "alice"}, want: false},
		{name: "nil params", params: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := web.NewRequest("/register", tt.params, nil)
			assert.Equal(t, tt.want, req.IsSubmit())
		})
	}
}

func TestRequest_SessionToken(t *testing.T) {
	req := web.NewRequest("/profile", nil, map[string]string{"session": "tok123"})
	assert.Equal(t, "tok123", req.SessionToken())

	bare := web.NewRequest("/profile", nil, nil)
	assert.Empty(t, bare.SessionToken())
}

func TestResponse_BodyIsAppendOnly(t *testing.T) {
	res := web.NewResponse()
	res.Write("<h1>Hi</h1>")
	res.Write("more")
	assert.Equal(t, "<h1>Hi</h1>more", res.Body())
}

func TestResponse_HeaderLastWriteWins(t *testing.T) {
	res := web.NewResponse()
	res.SetHeader("Set-Cookie", "session=a")
	res.SetHeader("Set-Cookie", "session=b")

	headers := res.Headers()
	assert.Equal(t, map[string]string{"Set-Cookie": "session=b"}, headers)

	// Headers() returns a copy; mutating it must not leak back.
	headers["Set-Cookie"] = "session=c"
	assert.Equal(t, "session=b", res.Headers()["Set-Cookie"])
}
