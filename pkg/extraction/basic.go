package extraction

import (
	"strings"

	"golang.org/x/exp/slices"
)

var fillerWords = []string{"how", "do", "i", "get", "go", "wanna", "want", "travel", "the"}

const trimPunctuation = "?.,!"

// ExtractBasic pulls origin and destination out of "... from X to Y" and
// "X to Y" queries. Either value may be empty. Results are lowercased.
func ExtractBasic(query string) (origin string, destination string) {
	lower := strings.ToLower(query)

	switch {
	case strings.Contains(lower, " from ") && strings.Contains(lower, " to "):
		afterFrom := strings.Split(lower, " from ")[1]
		toParts := strings.Split(afterFrom, " to ")
		if len(toParts) >= 2 {
			origin = strings.TrimSpace(toParts[0])
			destination = strings.TrimSpace(toParts[1])
		}
	case strings.Contains(lower, " to "):
		parts := strings.Split(lower, " to ")
		origin = stripFillerWords(parts[0])
		destination = strings.TrimSpace(parts[1])
	}

	return strings.Trim(origin, trimPunctuation), strings.Trim(destination, trimPunctuation)
}

func stripFillerWords(phrase string) string {
	words := strings.Fields(phrase)
	words = slices.DeleteFunc(words, func(word string) bool {
		return slices.Contains(fillerWords, word)
	})

	return strings.Join(words, " ")
}
