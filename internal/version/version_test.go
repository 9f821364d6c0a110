package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withVersion(t *testing.T, v, c string) {
	t.Helper()
	oldV, oldC := Version, Commit
	Version, Commit = v, c
	t.Cleanup(func() { Version, Commit = oldV, oldC })
}

func TestFromBuildInfo_VCS(t *testing.T) {
	withVersion(t, "", "")

	fromBuildInfo(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "true"},
				{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
			},
		}, true
	})

	if Commit != "0123456-dirty" {
		t.Errorf("Commit = %q, want 0123456-dirty", Commit)
	}
	if Version != "dev-20260304" {
		t.Errorf("Version = %q, want dev-20260304", Version)
	}
}

func TestFromBuildInfo_ModuleVersion(t *testing.T) {
	withVersion(t, "", "")

	fromBuildInfo(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v1.4.0"}}, true
	})

	if Version != "v1.4.0" {
		t.Errorf("Version = %q, want v1.4.0", Version)
	}
}

func TestFromBuildInfo_LdflagsWin(t *testing.T) {
	withVersion(t, "v9.9.9", "cafe")

	fromBuildInfo(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Version: "v1.4.0"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "feedface"}},
		}, true
	})

	if Version != "v9.9.9" || Commit != "cafe" {
		t.Errorf("got %s/%s, want ldflags values untouched", Version, Commit)
	}
}

func TestUserAgent(t *testing.T) {
	withVersion(t, "v1.0.0", "abc")

	if got := UserAgent(); got != "pwcheck/v1.0.0" {
		t.Errorf("UserAgent() = %q", got)
	}
	if !strings.Contains(Full(), "commit: abc") {
		t.Errorf("Full() = %q", Full())
	}
}
