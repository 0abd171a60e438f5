// ============================================================================
// chime - expression language
// ============================================================================
//
// Package:     version
// Description: Version information for the chime binary
// Created:     2026-10-02
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

const (
	// Chime is the release version of the binary
	Chime = "0.3.0"

	// Language is the version of the chime grammar and evaluation rules
	Language = "0.3.0"
)

// Set at build time with -ldflags "-X github.com/RonaldDijks/chime/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Language  string `json:"language" yaml:"language"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Chime,
		Language:  Language,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("chime %s (language %s, commit %s, %s, %s)",
		i.Version, i.Language, i.Commit, i.GoVersion, i.Platform)
}
