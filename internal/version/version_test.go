package version

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestInfoString(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-08-29")

	s := info.String()
	if !strings.Contains(s, "breakdown 1.2.3") {
		t.Errorf("String() = %q", s)
	}
	full := info.FullString()
	for _, want := range []string{"1.2.3", "abc1234", "2026-08-29", info.GoVer} {
		if !strings.Contains(full, want) {
			t.Errorf("FullString() = %q, missing %q", full, want)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.0.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"v1.2.0", "1.2.0", 0},
		{"1.2.0-rc1", "1.2.0", 0},
		{"0.9", "0.9.0", 0},
	}

	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestChecker_CheckForUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Release{
			TagName: "v2.0.0",
			HTMLURL: "https://example.com/release",
		})
	}))
	defer srv.Close()

	c := NewChecker()
	c.HTTPClient = srv.Client()
	c.APIURL = srv.URL

	release, err := c.CheckForUpdate(context.Background(), "1.0.0")
	if err != nil {
		t.Fatalf("CheckForUpdate() error = %v", err)
	}
	if release == nil || release.TagName != "v2.0.0" {
		t.Errorf("release = %+v, want v2.0.0", release)
	}

	// Up to date: no release returned.
	release, err = c.CheckForUpdate(context.Background(), "2.0.0")
	if err != nil {
		t.Fatalf("CheckForUpdate() error = %v", err)
	}
	if release != nil {
		t.Errorf("release = %+v, want nil when current", release)
	}
}

func TestWorkspaceVersion_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	wv := &WorkspaceVersion{
		BreakdownVersion: "1.0.0",
		InitializedAt:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := SaveWorkspaceVersion(dir, wv); err != nil {
		t.Fatalf("SaveWorkspaceVersion() error = %v", err)
	}

	got, err := LoadWorkspaceVersion(dir)
	if err != nil {
		t.Fatalf("LoadWorkspaceVersion() error = %v", err)
	}
	if got.BreakdownVersion != "1.0.0" {
		t.Errorf("BreakdownVersion = %q", got.BreakdownVersion)
	}
	if !got.InitializedAt.Equal(wv.InitializedAt) {
		t.Errorf("InitializedAt = %v", got.InitializedAt)
	}
}

func TestStamp_PreservesInitializedAt(t *testing.T) {
	dir := t.TempDir()

	if err := Stamp(dir, "1.0.0"); err != nil {
		t.Fatalf("Stamp() error = %v", err)
	}
	first, err := LoadWorkspaceVersion(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := Stamp(dir, "1.1.0"); err != nil {
		t.Fatalf("second Stamp() error = %v", err)
	}
	second, err := LoadWorkspaceVersion(dir)
	if err != nil {
		t.Fatal(err)
	}

	if second.BreakdownVersion != "1.1.0" {
		t.Errorf("BreakdownVersion = %q, want updated", second.BreakdownVersion)
	}
	if !second.InitializedAt.Equal(first.InitializedAt) {
		t.Error("re-stamp changed InitializedAt")
	}
}

func TestTouchLastRun(t *testing.T) {
	dir := t.TempDir()

	// No stamp: silently a no-op.
	if err := TouchLastRun(dir); err != nil {
		t.Fatalf("TouchLastRun() on empty dir error = %v", err)
	}

	if err := Stamp(dir, "1.0.0"); err != nil {
		t.Fatal(err)
	}
	if err := TouchLastRun(dir); err != nil {
		t.Fatalf("TouchLastRun() error = %v", err)
	}

	wv, err := LoadWorkspaceVersion(dir)
	if err != nil {
		t.Fatal(err)
	}
	if wv.LastRunAt.IsZero() {
		t.Error("LastRunAt not set")
	}
}
