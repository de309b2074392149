package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2   string
		expected int
	}{
		{"v0.1.1", "v0.1.0", 1},
		{"v0.10.0", "v0.2.0", 1},
		{"0.2.0", "v0.2.0", 0},
		{"v1.0.0-rc1", "v1.0.0", -1},
		{"garbage", "v0.0.1", -1},
	}
	for _, tt := range tests {
		if got := compareVersions(tt.v1, tt.v2); got != tt.expected {
			t.Errorf("compareVersions(%q, %q): expected %d, got %d", tt.v1, tt.v2, tt.expected, got)
		}
	}
}

func TestCheckAgainst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v0.3.0","html_url":"https://example.com/v0.3.0"}`))
	}))
	defer srv.Close()

	tag, url, err := checkAgainst(context.Background(), srv.URL, "v0.2.9")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tag != "v0.3.0" || url != "https://example.com/v0.3.0" {
		t.Errorf("Expected update to v0.3.0, got %q %q", tag, url)
	}

	tag, _, err = checkAgainst(context.Background(), srv.URL, "v0.3.0")
	if err != nil || tag != "" {
		t.Errorf("Expected no update, got %q %v", tag, err)
	}
}

func TestCheckAgainstBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, _, err := checkAgainst(context.Background(), srv.URL, "v0.1.0"); err == nil {
		t.Error("Expected error for non-200 status")
	}
}
