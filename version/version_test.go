package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	if GetFullVersion() != "dev" {
		t.Errorf("expected dev build to report dev, got %q", GetFullVersion())
	}

	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.0"
	GitCommit = "abc123"
	BuildDate = "2026-10-19"
	expected := "1.2.0 (commit abc123, built 2026-10-19)"
	if GetFullVersion() != expected {
		t.Errorf("expected %q, got %q", expected, GetFullVersion())
	}
	if GetVersion() != "1.2.0" {
		t.Errorf("expected 1.2.0, got %q", GetVersion())
	}
}
