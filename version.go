package tagpad

import (
	_ "embed"
	"regexp"
	"strings"
)

// Name is the program name the CLI reports.
const Name = "tagpad"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version is the release recorded in VERSION, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

func VersionTag() string {
	return "v" + Version()
}

// Banner identifies the build in one line, e.g. "tagpad v0.1.0". Both
// `tagpad --version` and `tagpad version` start with it.
func Banner() string {
	return Name + " " + VersionTag()
}

// IsSemver reports whether v is a SemVer 2.0.0 string without a leading v.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

func VersionIsSemver() bool {
	return IsSemver(Version())
}
