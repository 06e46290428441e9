package scraper

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
)

func testClient(serverURL string) *resty.Client {
	return resty.New().SetBaseURL(serverURL)
}

func TestParseSearchResults(t *testing.T) {
	data, err := os.ReadFile("testdata/search_results.html")
	require.NoError(t, err)

	campgrounds, err := parseSearchResults(bytes.NewReader(data))
	require.NoError(t, err)

	// entries missing an id or a name are skipped
	require.Equal(t, []campsite.Campground{
		{ID: "232447", Name: "Upper Pines Campground"},
		{ID: "232450", Name: "Lower Pines Campground"},
		{ID: "232452", Name: "North Pines Campground"},
	}, campgrounds)
}

func TestResolver_Resolve(t *testing.T) {
	fixture, err := os.ReadFile("testdata/search_results.html")
	require.NoError(t, err)

	var gotQuery, gotEntityType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotEntityType = r.URL.Query().Get("entity_type")
		w.Write(fixture) // nolint:errcheck
	}))
	defer server.Close()

	resolver := NewResolver(testClient(server.URL))
	campgrounds := resolver.Resolve(context.Background(), "Yosemite")

	require.Equal(t, "Yosemite campground", gotQuery)
	require.Equal(t, "campground", gotEntityType)
	require.Len(t, campgrounds, 3)
	require.Equal(t, "232447", campgrounds[0].ID)
}

func TestResolver_UpstreamFailureDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			resolver := NewResolver(testClient(server.URL))
			campgrounds := resolver.Resolve(context.Background(), "Yosemite")

			require.Empty(t, campgrounds)
		})
	}
}

func TestResolver_ConnectionFailureDegradesToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	resolver := NewResolver(testClient(server.URL))
	campgrounds := resolver.Resolve(context.Background(), "Yosemite")

	require.Empty(t, campgrounds)
}
