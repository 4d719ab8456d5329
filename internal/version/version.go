// Package version reports the axname build, from -ldflags values when set
// and from the embedded module build info otherwise.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string    `json:"version"              yaml:"version"`
	GitCommit string    `json:"git_commit"           yaml:"git_commit"`
	BuildTime time.Time `json:"build_time"           yaml:"build_time"`
	GoVersion string    `json:"go_version"           yaml:"go_version"`
	Platform  string    `json:"platform"             yaml:"platform"`
	Release   bool      `json:"is_release"           yaml:"is_release"`
	Dirty     bool      `json:"is_dirty"             yaml:"is_dirty"`
}

// Set at build time with -ldflags "-X github.com/conneroisu/axname/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetBuildInfo returns comprehensive build information
func GetBuildInfo() *BuildInfo {
	v := GetVersion()
	return &BuildInfo{
		Version:   v,
		GitCommit: GetGitCommit(),
		BuildTime: parseBuildTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Release:   isRelease(v),
		Dirty:     IsDirty(),
	}
}

func setting(key string) (string, bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// GetVersion returns the application version
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := readBuildInfo(); ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}
	if rev, ok := setting("vcs.revision"); ok && len(rev) >= 7 {
		return "dev-" + rev[:7]
	}

	return "dev"
}

// GetGitCommit returns the git commit hash
func GetGitCommit() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return GitCommit
	}
	if rev, ok := setting("vcs.revision"); ok {
		return rev
	}
	return "unknown"
}

// GetShortVersion returns the version with an abbreviated commit.
func GetShortVersion() string {
	v := GetVersion()
	commit := GetGitCommit()

	if commit == "unknown" || len(commit) < 7 {
		return v
	}
	if strings.HasPrefix(v, "dev") {
		return "dev-" + commit[:7]
	}
	return fmt.Sprintf("%s (%s)", v, commit[:7])
}

// String renders the build information one field per line.
func (b *BuildInfo) String() string {
	parts := []string{"Version: " + b.Version}
	if b.GitCommit != "unknown" {
		parts = append(parts, "Commit: "+b.GitCommit)
	}
	if !b.BuildTime.IsZero() {
		parts = append(parts, "Built: "+b.BuildTime.Format(time.RFC3339))
	}
	parts = append(parts, "Go: "+b.GoVersion, "Platform: "+b.Platform)
	if b.Dirty {
		parts = append(parts, "Working directory: dirty")
	}
	if b.Release {
		parts = append(parts, "Build type: release")
	} else {
		parts = append(parts, "Build type: development")
	}
	return strings.Join(parts, "\n")
}

func isRelease(v string) bool {
	return v != "dev" && !strings.HasPrefix(v, "dev-")
}

// IsDirty returns true if the working directory was dirty when built
func IsDirty() bool {
	modified, ok := setting("vcs.modified")
	return ok && modified == "true"
}

// parseBuildTime accepts RFC3339 and a few common variants; anything else
// is the zero time.
func parseBuildTime(s string) time.Time {
	if s == "" || s == "unknown" {
		return time.Time{}
	}

	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
