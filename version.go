package main

import (
	"strings"
)

// Version stores the version tag - Should include leading 'v' - Update before tagging new versions.
//
var Version = "v0.1.0"

// BuildDate is optional and can be set using '-ldflags "-X 'main.BuildDate=..."'.
//
var BuildDate string

// GitSummary is optional and can be set using '-ldflags "-X 'main.GitSummary=..."'.
// Generally meant to contain the value of:
//
//	git describe --tags --dirty --always
var GitSummary string

// versionString generates a version string from available vars.
//
func versionString() string {
	version := strings.Builder{}
	version.WriteString(Version)
	if len(BuildDate) > 0 || len(GitSummary) > 0 {
		version.WriteString(" (")
		needsSpace := false
		if len(GitSummary) > 0 {
			version.WriteString("build=")
			version.WriteString(GitSummary)
			needsSpace = true
		}
		if len(BuildDate) > 0 {
			if needsSpace {
				version.WriteString(" ")
			}
			version.WriteString("date=")
			version.WriteString(BuildDate)
		}
		version.WriteString(")")
	}
	return version.String()
}
