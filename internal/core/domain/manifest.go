package domain

import (
	"regexp"
	"strings"
)

var (
	packageVersionPattern    = regexp.MustCompile(`(?m)^version = "(.*?)"`)
	dependencyVersionPattern = regexp.MustCompile(`(?m)^autd3(.*)version = "(.*?)"`)
)

// BumpVersion rewrites the package version and every autd3* dependency
// version in manifest to version. All other bytes are left untouched.
func BumpVersion(manifest, version string) string {
	// $ would otherwise be read as a group reference in the template.
	escaped := strings.ReplaceAll(version, "$", "$$")
	out := packageVersionPattern.ReplaceAllString(manifest, `version = "`+escaped+`"`)
	return dependencyVersionPattern.ReplaceAllString(out, `autd3${1}version = "`+escaped+`"`)
}
