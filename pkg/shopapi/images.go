package shopapi

import "strings"

const PlaceholderImage = "/placeholder.jpg"

// ImageURL resolves an image reference returned by the shop API against base.
// Absolute URLs and site-absolute paths other than /uploads are returned unchanged,
// so resolving twice gives the same result.
func ImageURL(base, path string) string {
	switch {
	case path == "":
		return PlaceholderImage
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	case strings.HasPrefix(path, "/uploads"):
		return base + path
	case !strings.HasPrefix(path, "/"):
		return base + "/uploads/" + path
	default:
		return path
	}
}
