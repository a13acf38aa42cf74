package render

import "strings"

// Navigation target paths.
const (
	HomePath    = "/"
	ArchivePath = "/archive"
	AboutPath   = "/about"
)

// chapterPathPrefix covers individual chapter detail pages, which live
// under their own prefix but belong to the archive tab.
const chapterPathPrefix = "/chapter"

// IsActiveRoute reports whether a navigation target should be
// highlighted for the current path. The root matches on exact equality
// only; every other target matches by path prefix. Chapter detail pages
// activate the archive tab as a literal special case, kept narrow so an
// unrelated future route sharing a prefix does not light the tab up.
func IsActiveRoute(currentPath, target string) bool {
	if target == HomePath {
		return currentPath == HomePath
	}
	if target == ArchivePath && strings.HasPrefix(currentPath, chapterPathPrefix) {
		return true
	}
	return strings.HasPrefix(currentPath, target)
}
