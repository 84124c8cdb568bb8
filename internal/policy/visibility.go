// Package policy decides whether the floating cart summary renders for the
// current route and overlay state, and drives the summary's mount/unmount
// timing.
package policy

import "regexp"

// OverlayFlags are the presentation flags that can suppress the summary
// regardless of route.
type OverlayFlags struct {
	DetailOpen  bool
	ForceHidden bool
}

// Routes on which the floating summary never renders.
var summaryDenylist = []string{
	"/cart",
	"/login",
	"/signup",
	"/profile",
	"/membership",
	"/about",
	"/admin",
}

// Per-item detail routes. The open detail view replaces the summary.
var detailRoutes = []*regexp.Regexp{
	regexp.MustCompile(`^/menu/\d+$`),
	regexp.MustCompile(`^/likes/\d+$`),
	regexp.MustCompile(`^/salad/[A-Za-z0-9]+$`),
}

// ShouldShowCartSummary applies the suppression rules in order: empty cart,
// denylisted route prefix, detail route, open detail overlay, forced hide.
func ShouldShowCartSummary(path string, itemCount int, flags OverlayFlags) bool {
	if itemCount == 0 {
		return false
	}
	for _, prefix := range summaryDenylist {
		if hasPathPrefix(path, prefix) {
			return false
		}
	}
	for _, re := range detailRoutes {
		if re.MatchString(path) {
			return false
		}
	}
	if flags.DetailOpen {
		return false
	}
	if flags.ForceHidden {
		return false
	}
	return true
}

// hasPathPrefix matches whole path segments, so "/cartoons" does not hit
// the "/cart" entry.
func hasPathPrefix(path, prefix string) bool {
	if len(path) < len(prefix) || path[:len(prefix)] != prefix {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
