package htmltext

import "strings"

// ripReplacer decodes exactly the entities bot-facing page scrapes contain.
// Anything else stays as written.
var ripReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&quot;", `"`,
	"&lt;", "<",
	"&gt;", ">",
	"&ellip;", "...",
	"&apos;", "'",
)

// Strip removes every tag, decodes the fixed entity set above and drops
// literal newlines. Unlike Normalize it keeps no formatting codes.
func Strip(s string) string {
	s = tagRE.ReplaceAllString(s, "")
	s = ripReplacer.Replace(s)
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "")
}
