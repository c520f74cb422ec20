// Package version holds the tool's own release version, surfaced by the
// CLI's --version flag.
package version

import "github.com/blang/semver"

// CurrentVersion is this build's semantic version.
var CurrentVersion = semver.MustParse("0.1.0")
