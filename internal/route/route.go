// Package route holds the navigation locations of the list views.
package route

import "strings"

const (
	Root     = "/"
	Explore  = "/explore"
	Archived = "/archived"

	// UserPrefix starts a per-user route, e.g. /u/alice.
	UserPrefix = "/u/"
)

var scrollToTop = map[string]bool{
	Root:     true,
	Explore:  true,
	Archived: true,
}

// IsScrollToTopVisible reports whether the floating scroll-to-top control
// belongs on the view at path.
func IsScrollToTopVisible(path string) bool {
	return scrollToTop[path] || strings.HasPrefix(path, UserPrefix)
}

// User returns the user name of a /u/<name> route.
func User(path string) (string, bool) {
	name, ok := strings.CutPrefix(path, UserPrefix)
	if !ok || name == "" {
		return "", false
	}
	name, _, _ = strings.Cut(name, "/")
	return name, true
}

// Filter returns the filter terms a route implies.
func Filter(path string) string {
	if path == Archived {
		return "archived"
	}
	if name, ok := User(path); ok {
		return "creator:" + name
	}
	return ""
}
