// Package natlist recognizes natural-language enumerations ("a, b and c")
// in free text and parses channel lists out of plugin commands like
// "announce in #ops and #dev".
package natlist

import (
	"regexp"
	"strings"

	xstrings "github.com/charmbracelet/x/exp/strings"
)

// ChannelToken is one parsed element of a channel list: a literal channel
// name, or one of the symbolic markers below.
type ChannelToken string

const (
	// AnyTarget stands for the whole-network words "anywhere"/"everywhere".
	AnyTarget ChannelToken = "*"
	// UnknownTarget stands for a private or unresolvable conversation.
	UnknownTarget ChannelToken = "?"
)

// Resolver reports the channel name of the conversation a command arrived
// in. It returns "" when the conversation is not a named channel.
type Resolver func() string

// channelName matches channel names in the host IRC dialect.
const channelName = `[#&+!][^\s,]+`

// channelListRE picks channel-list elements out of free text: a boundary
// (start of string, comma, "and" or whitespace), an optional "in"/"on",
// then a channel name or one of the special words.
var channelListRE = regexp.MustCompile(
	`(?:^|,|and|\s)\s*(?:(?:in|on)\s+)?(` + channelName + `|here|private|pvt)`)

// ListPattern builds a pattern matching one or more repetitions of item,
// separated by an optional comma, an optional "and" and whitespace. A
// non-empty prefix may also appear before repetitions after the first, so a
// pattern built with prefix "in" covers "in #a, in #b and in #c".
func ListPattern(item, prefix string) *regexp.Regexp {
	sep := `,?(?:\s+and)?\s+`
	if prefix != "" {
		sep += `(?:` + regexp.QuoteMeta(prefix) + `\s+)?`
	}
	return regexp.MustCompile(`(?:` + item + `)(?:` + sep + `(?:` + item + `))*`)
}

// ParseChannelList extracts the channel targets enumerated in text.
//
// The exact words "anywhere" and "everywhere" yield just AnyTarget.
// Otherwise each matched element maps to a token: "private" and "pvt" to
// UnknownTarget, "here" through resolve (UnknownTarget when resolve is nil
// or reports no channel), and anything else to itself. Duplicates collapse
// to the first occurrence, preserving input order.
func ParseChannelList(text string, resolve Resolver) []ChannelToken {
	text = strings.TrimSpace(text)
	if text == "anywhere" || text == "everywhere" {
		return []ChannelToken{AnyTarget}
	}

	seen := make(map[ChannelToken]bool)
	var tokens []ChannelToken
	for _, m := range channelListRE.FindAllStringSubmatch(text, -1) {
		var tok ChannelToken
		switch m[1] {
		case "private", "pvt":
			tok = UnknownTarget
		case "here":
			tok = UnknownTarget
			if resolve != nil {
				if name := resolve(); name != "" {
					tok = ChannelToken(name)
				}
			}
		default:
			tok = ChannelToken(m[1])
		}
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Join renders tokens as the natural-language list ParseChannelList
// recognizes, mapping the symbolic markers back to words.
func Join(tokens []ChannelToken) string {
	names := make([]string, len(tokens))
	for i, tok := range tokens {
		switch tok {
		case AnyTarget:
			names[i] = "anywhere"
		case UnknownTarget:
			names[i] = "private"
		default:
			names[i] = string(tok)
		}
	}
	return xstrings.EnglishJoin(names, false)
}
