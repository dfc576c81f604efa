package backup

import "regexp"

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SanitizeTitle strips characters that are unsafe for file names. Titles
// differing only in stripped characters collide on one backup path; an
// accepted limitation.
func SanitizeTitle(title string) string {
	return illegalChars.ReplaceAllString(title, "")
}
