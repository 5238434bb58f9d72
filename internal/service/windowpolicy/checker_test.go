package windowpolicy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsync-notify/internal/errs"
)

func TestIsWindowOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantOpen   bool
		assertFunc assert.ErrorAssertionFunc
	}{
		{
			name: "窗口开放",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					PhoneNumber string `json:"phoneNumber"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "+10000000001", req.PhoneNumber)
				_, _ = fmt.Fprint(w, `{"inWindow":true}`)
			},
			wantOpen:   true,
			assertFunc: assert.NoError,
		},
		{
			name: "窗口关闭",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = fmt.Fprint(w, `{"inWindow":false}`)
			},
			wantOpen:   false,
			assertFunc: assert.NoError,
		},
		{
			name: "端点返回5xx",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			assertFunc: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrPolicyCheck)
			},
		},
		{
			name: "响应不可解析",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = fmt.Fprint(w, `oops`)
			},
			assertFunc: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrPolicyCheck)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			checker := NewChecker(server.URL, server.Client())
			open, err := checker.IsWindowOpen(context.Background(), "+10000000001")
			tt.assertFunc(t, err)
			assert.Equal(t, tt.wantOpen, open)
		})
	}
}
