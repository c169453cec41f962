package share

import "strings"

// PageURL joins the hosting base URL with a page path relative to the
// repository root. Backslash separators are normalized to forward
// slashes. No check is made that the URL is reachable: publication
// happens through a manual git push.
func PageURL(baseURL, relPath string) string {
	return baseURL + "/" + strings.ReplaceAll(relPath, "\\", "/")
}
