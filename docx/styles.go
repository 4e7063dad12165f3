package docx

import "fmt"

// Built-in paragraph and table style ids. These match the style ids Word
// assigns to its stock styles, so template-provided definitions take over
// when a template is used and the minimal built-in stylesheet covers the
// rest.
const (
	StyleNormal    = ""
	StyleQuote     = "Quote"
	StyleTableGrid = "TableGrid"
)

// BulletStyles and NumberStyles map list nesting levels to paragraph
// styles. Levels beyond the deepest style reuse the last entry.
var (
	BulletStyles = []string{"ListBullet", "ListBullet2", "ListBullet3"}
	NumberStyles = []string{"ListNumber", "ListNumber2", "ListNumber3"}
)

// HeadingStyle returns the paragraph style id for a heading level.
// The level is clamped into [1, 6].
func HeadingStyle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("Heading%d", level)
}

// ListStyle returns the paragraph style id for a list item at the given
// nesting level.
func ListStyle(ordered bool, level int) string {
	styles := BulletStyles
	if ordered {
		styles = NumberStyles
	}
	if level < 0 {
		level = 0
	}
	if level >= len(styles) {
		level = len(styles) - 1
	}
	return styles[level]
}
