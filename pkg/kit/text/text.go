package text

import (
	"fmt"
	"strings"
	"unicode"
)

// Words splits s into its identifier words: delimiters (anything neither
// letter nor digit) and camel-case boundaries both separate words, and
// acronym runs keep their trailing upper-case letter with the next word
// ("HTTPServer" -> "HTTP", "Server").
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				flush()
			} else if i > 0 && unicode.IsUpper(runes[i-1]) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	return words
}

// CamelCase converts s to camelCase: "hello-world" -> "helloWorld".
func CamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// PascalCase converts s to PascalCase: "hello-world" -> "HelloWorld".
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// KebabCase converts s to kebab-case: "helloWorld" -> "hello-world".
func KebabCase(s string) string {
	return joinLower(s, "-")
}

// SnakeCase converts s to snake_case: "helloWorld" -> "hello_world".
func SnakeCase(s string) string {
	return joinLower(s, "_")
}

func joinLower(s, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

func capitalize(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Truncate shortens s to at most max runes, ellipsis included. When the
// marker alone does not fit, as much of it as possible is kept.
func Truncate(s string, max int, ellipsis string) string {
	runes := []rune(s)
	if max <= 0 {
		return ""
	}
	if len(runes) <= max {
		return s
	}

	marker := []rune(ellipsis)
	if len(marker) >= max {
		return string(marker[:max])
	}
	return string(runes[:max-len(marker)]) + string(marker)
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Pluralize formats a counted phrase: Pluralize(2, "hour", "") is "2 hours".
// An empty plural falls back to singular+"s".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	if plural == "" {
		plural = singular + "s"
	}
	return fmt.Sprintf("%d %s", n, plural)
}
