// Package portal is a viewport-bounded terminal text editor engine.
//
// The engine lives in the viewport package; line, input and sink define the
// pieces it is assembled from, and screen and editor attach it to tcell and
// Bubble Tea respectively.
package portal

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Name is the program name used in banners and the config directory.
const Name = "portal"

// Version returns the release version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version in git tag form.
func VersionTag() string {
	return "v" + Version()
}

// Banner is the one-line identification printed by `portal version`.
func Banner() string {
	return Name + " " + VersionTag()
}

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
