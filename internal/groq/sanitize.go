package groq

import "regexp"

// Models frequently wrap text in markdown emphasis (** __ \\) even when asked
// not to. Any run of two or more of these characters is noise; single
// occurrences are kept.
var markdownNoise = regexp.MustCompile(`[*\\_]{2,}`)

// Sanitize strips markdown formatting artefacts from a completion.
func Sanitize(s string) string {
	return markdownNoise.ReplaceAllString(s, "")
}
