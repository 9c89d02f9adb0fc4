// Package roster turns a pasted sign-up list into clean athlete names.
package roster

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMax is the number of names a draw can use.
const DefaultMax = 20

const minNameLength = 2

var (
	leadingNoise = regexp.MustCompile(`^[\d.\-:)(\[\]\s]+`)
	emoji        = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}\x{1F900}-\x{1F9FF}\x{FE0F}\x{200D}]`)
)

// Result holds the names kept from a pasted list.
type Result struct {
	Names []string `json:"names"`
	// Total is how many names were recognised before truncation.
	Total     int  `json:"total"`
	Truncated bool `json:"truncated"`
}

// Parse extracts up to max names from text. A non-positive max keeps every
// name.
func Parse(text string, max int) Result {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if name := CleanLine(line); name != "" {
			names = append(names, name)
		}
	}
	res := Result{Names: names, Total: len(names)}
	if max > 0 && len(names) > max {
		res.Names = names[:max]
		res.Truncated = true
	}
	if res.Names == nil {
		res.Names = []string{}
	}
	return res
}

// CleanLine strips list numbering and emoji. It returns "" for lines too short
// to be a name.
func CleanLine(line string) string {
	name := leadingNoise.ReplaceAllString(line, "")
	name = emoji.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), " ")
	if utf8.RuneCountInString(name) < minNameLength {
		return ""
	}
	return name
}
