package internal

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TitleCase canonicalizes a header name, e.g. "content-length" -> "Content-Length".
func TitleCase(content string) string {
	return titleCaser.String(content)
}
