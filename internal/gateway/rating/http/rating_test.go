package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetAggregate(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    *float64
		wantErr bool
	}{
		{
			name: "rated movie",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"reviews": []any{}, "averageRating": 8.5})
			},
			want: func() *float64 { v := 8.5; return &v }(),
		},
		{
			name: "unrated movie omits the field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"reviews": []any{}})
			},
			want: nil,
		},
		{
			name:    "missing review document counts as unrated",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			want:    nil,
		},
		{
			name:    "server error propagates",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := New(srv.URL, srv.Client(), zap.NewNop())
			got, err := g.GetAggregate(context.Background(), "m1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestGetAggregateRequestsTheMovieEndpoint(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"reviews": []any{}})
	}))
	defer srv.Close()

	g := New(srv.URL+"/", srv.Client(), zap.NewNop())
	_, err := g.GetAggregate(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "/reviews/abc123", path)
}
