package app

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/opendrivego/internal/road"
	"github.com/specialistvlad/opendrivego/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	a, _, _ := newTestApp(t, map[string]string{"net.xodr": testutil.JunctionXODR}, "net.xodr", OutputText)
	require.NoError(t, a.Run(context.Background()))

	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	testCases := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		check      func(t *testing.T, body *json.Decoder)
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{
			name:       "all roads",
			method:     http.MethodGet,
			path:       "/roads",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var got struct {
					Segments []struct {
						ID         int  `json:"id"`
						IsJunction bool `json:"is_junction"`
					} `json:"segments"`
				}
				require.NoError(t, body.Decode(&got))
				require.Len(t, got.Segments, 3)
				var ids []int
				for _, seg := range got.Segments {
					ids = append(ids, seg.ID)
				}
				assert.Equal(t, []int{1, 2, 3}, ids)
				assert.True(t, got.Segments[2].IsJunction)
			},
		},
		{
			name:       "single road",
			method:     http.MethodGet,
			path:       "/roads/1",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var got struct {
					ID         int              `json:"id"`
					IsJunction bool             `json:"is_junction"`
					Successors []road.LinkEntry `json:"successors"`
				}
				require.NoError(t, body.Decode(&got))
				assert.Equal(t, 1, got.ID)
				assert.False(t, got.IsJunction)
				assert.Equal(t, []road.LinkEntry{{RoadID: 2}, {RoadID: 3}}, got.Successors)
			},
		},
		{
			name:       "connections",
			method:     http.MethodGet,
			path:       "/roads/1/connections",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body *json.Decoder) {
				var got connections
				require.NoError(t, body.Decode(&got))
				assert.Equal(t, connections{ID: 1, Next: []int{2, 3}, Previous: []int{}, Reachable: []int{2, 3}}, got)
			},
		},
		{name: "connections of unknown road", method: http.MethodGet, path: "/roads/42/connections", wantStatus: http.StatusNotFound},
		{name: "unknown road", method: http.MethodGet, path: "/roads/42", wantStatus: http.StatusNotFound},
		{name: "non numeric id", method: http.MethodGet, path: "/roads/abc", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPost, path: "/roads", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.check != nil {
				assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
				tc.check(t, json.NewDecoder(resp.Body))
			}
		})
	}
}

func TestHandler_NotBuilt(t *testing.T) {
	a, _, _ := newTestApp(t, map[string]string{"net.hcl": testutil.TwoRoadHCL}, "net.hcl", OutputText)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roads", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApp_Run_ServesUntilCancelled(t *testing.T) {
	a, _, logs := newTestApp(t, map[string]string{"net.hcl": testutil.TwoRoadHCL}, "net.hcl", OutputText)
	a.config.ListenPort = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Inspection server starting.")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Contains(t, logs.String(), "Shutting down inspection server...")
}

// freePort asks the kernel for a port that is free at the time of the call.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}
