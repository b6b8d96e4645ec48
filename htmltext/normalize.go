// Package htmltext converts the restricted HTML subset found in web
// snippets and plugin output into plain text carrying IRC formatting codes.
package htmltext

import (
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/irctext/format"
)

// LinkPolicy selects how Normalize renders anchor elements.
type LinkPolicy string

const (
	// LinkStrip keeps the anchor text and drops the target. This is the
	// zero-value behavior.
	LinkStrip LinkPolicy = "strip"
	// LinkKeep applies no anchor-specific transform; the generic tag strip
	// removes the tags, so the visible result matches LinkStrip.
	LinkKeep LinkPolicy = "keep"
	// LinkBold, LinkUnderline and LinkReverse wrap the anchor text in the
	// corresponding formatting code.
	LinkBold      LinkPolicy = "bold"
	LinkUnderline LinkPolicy = "underline"
	LinkReverse   LinkPolicy = "reverse"
	// LinkInline renders each anchor as "text: url".
	LinkInline LinkPolicy = "inline"
)

// Options control Normalize. The zero value strips links.
type Options struct {
	Links LinkPolicy
}

var (
	scriptRE = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRE  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)

	boldTagRE      = regexp.MustCompile(`(?i)</?(?:b|strong)(?:\s[^>]*)?>`)
	underlineTagRE = regexp.MustCompile(`(?i)</?(?:i|em|u)(?:\s[^>]*)?>`)

	// anchorTagRE matches just the open/close tags; anchorElemRE matches a
	// whole element, capturing the href (double-quoted, single-quoted or
	// unquoted) and the inner text.
	anchorTagRE  = regexp.MustCompile(`(?i)</?a(?:\s[^>]*)?>`)
	anchorElemRE = regexp.MustCompile(`(?is)<a\s[^>]*?href\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))[^>]*>(.*?)</a>`)

	breakTagRE = regexp.MustCompile(`(?i)</?(?:p|br)(?:\s[^>]*?)?/?>`)

	supRE     = regexp.MustCompile(`(?is)<sup>(.*?)</sup>`)
	subRE     = regexp.MustCompile(`(?is)<sub>(.*?)</sub>`)
	oneCharRE = regexp.MustCompile(`([\^_])\{(.)\}`)

	tagRE     = regexp.MustCompile(`(?s)<[^>]*>`)
	newlineRE = regexp.MustCompile(`[\r\n]`)
	spaceRE   = regexp.MustCompile(`\s+`)
)

// markerFix collapses empty spans of one formatting code and absorbs the
// whitespace around it.
type markerFix struct {
	code  string
	dup   *regexp.Regexp
	inner *regexp.Regexp
	lead  *regexp.Regexp
	trail *regexp.Regexp
}

func newMarkerFix(code string) markerFix {
	return markerFix{
		code:  code,
		dup:   regexp.MustCompile(code + `(\s*)` + code),
		inner: regexp.MustCompile(`\s+` + code + `\s+`),
		lead:  regexp.MustCompile(`^\s+` + code),
		trail: regexp.MustCompile(code + `\s+$`),
	}
}

var markerFixes = []markerFix{
	newMarkerFix(format.Bold),
	newMarkerFix(format.Underline),
	newMarkerFix(format.Reverse),
}

// Normalize converts markup in s to plain text with IRC formatting codes.
// Stages run in order, each over the output of the previous one: script and
// style blocks go first, bold and underline tags become their codes, anchors
// render per opts.Links, paragraph and break tags become spaces, sup/sub
// become ^{}/_{} notation, remaining tags are stripped, entities decoded,
// and finally empty formatting spans and whitespace are tidied up.
func Normalize(s string, opts Options) string {
	s = scriptRE.ReplaceAllString(s, "")
	s = styleRE.ReplaceAllString(s, "")

	s = boldTagRE.ReplaceAllString(s, format.Bold)
	s = underlineTagRE.ReplaceAllString(s, format.Underline)

	s = applyLinkPolicy(s, opts.Links)

	s = breakTagRE.ReplaceAllString(s, " ")
	s = newlineRE.ReplaceAllString(s, " ")

	s = supRE.ReplaceAllString(s, "^{${1}}")
	s = subRE.ReplaceAllString(s, "_{${1}}")
	s = oneCharRE.ReplaceAllString(s, "$1$2")

	s = tagRE.ReplaceAllString(s, "")

	s = decodeEntities(s)

	for _, f := range markerFixes {
		s = f.dup.ReplaceAllString(s, "$1")
		s = f.inner.ReplaceAllString(s, " "+f.code)
		s = f.lead.ReplaceAllString(s, f.code)
		s = f.trail.ReplaceAllString(s, f.code)
	}

	s = spaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Apply runs Normalize and reports whether the value actually changed, for
// callers that need to tell a no-op transform from a real one.
func Apply(s string, opts Options) (string, bool) {
	out := Normalize(s, opts)
	return out, out != s
}

func applyLinkPolicy(s string, p LinkPolicy) string {
	switch p {
	case LinkBold:
		return anchorTagRE.ReplaceAllString(s, format.Bold)
	case LinkUnderline:
		return anchorTagRE.ReplaceAllString(s, format.Underline)
	case LinkReverse:
		return anchorTagRE.ReplaceAllString(s, format.Reverse)
	case LinkInline:
		return anchorElemRE.ReplaceAllString(s, "${4}: ${1}${2}${3}")
	case LinkStrip, LinkKeep, "":
		return s
	default:
		log.Warn("unknown link policy, anchors fall through to the tag strip", "policy", p)
		return s
	}
}

// decodeEntities expands character entities, including the nonstandard
// &ellip; some feeds emit. Non-breaking spaces become plain spaces so the
// whitespace squeeze sees them.
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&ellip;", "...")
	s = html.UnescapeString(s)
	return strings.ReplaceAll(s, " ", " ")
}
