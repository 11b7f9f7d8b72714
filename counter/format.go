package counter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount groups thousands the way the page displays them: 1523 -> "1,523".
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}
