// Package markdown renders markdown-authored content as IRC-formatted
// text, for plugins relaying release notes, titles or generated replies
// into channels.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/sonnes/irctext/format"
	"github.com/sonnes/irctext/htmltext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Renderer converts markdown source into IRC-formatted plain text, one
// block per line. Strong text maps to Bold, emphasis to Underline, code to
// Monospace, links to "text: url". Inline HTML goes through htmltext.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// Render writes source as IRC-formatted text to w.
func (r *Renderer) Render(w io.Writer, source []byte) error {
	doc := r.md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	if err := renderBlocks(&b, source, doc, ""); err != nil {
		return err
	}
	_, err := io.WriteString(w, strings.TrimRight(b.String(), "\n"))
	return err
}

// ToIRC renders source and returns the result as a string.
func ToIRC(source string) (string, error) {
	var b strings.Builder
	if err := New().Render(&b, []byte(source)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderBlocks(b *strings.Builder, src []byte, parent ast.Node, indent string) error {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Heading:
			b.WriteString(indent + format.Bold)
			renderInline(b, src, v)
			b.WriteString(format.Bold + "\n")
		case *ast.Paragraph, *ast.TextBlock:
			b.WriteString(indent)
			renderInline(b, src, n)
			b.WriteString("\n")
		case *ast.Blockquote:
			if err := renderBlocks(b, src, v, indent+"> "); err != nil {
				return err
			}
		case *ast.List:
			if err := renderList(b, src, v, indent); err != nil {
				return err
			}
		case *ast.FencedCodeBlock:
			writeCodeLines(b, src, v.Lines(), indent)
		case *ast.CodeBlock:
			writeCodeLines(b, src, v.Lines(), indent)
		case *ast.ThematicBreak:
			b.WriteString(indent + "---\n")
		case *ast.HTMLBlock:
			if t := htmltext.Normalize(string(segmentsValue(src, v.Lines())), htmltext.Options{}); t != "" {
				b.WriteString(indent + t + "\n")
			}
		default:
			return fmt.Errorf("unsupported markdown block %s", n.Kind())
		}
	}
	return nil
}

func renderList(b *strings.Builder, src []byte, l *ast.List, indent string) error {
	num := l.Start
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "- "
		if l.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}

		var ib strings.Builder
		if err := renderBlocks(&ib, src, item, ""); err != nil {
			return err
		}
		content := strings.TrimRight(ib.String(), "\n")
		content = strings.ReplaceAll(content, "\n", "\n"+indent+"  ")
		b.WriteString(indent + marker + content + "\n")
	}
	return nil
}

func renderInline(b *strings.Builder, src []byte, parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() {
				b.WriteString(" ")
			} else if v.HardLineBreak() {
				b.WriteString("\n")
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.Emphasis:
			code := format.Underline
			if v.Level >= 2 {
				code = format.Bold
			}
			b.WriteString(code)
			renderInline(b, src, v)
			b.WriteString(code)
		case *ast.CodeSpan:
			b.WriteString(format.Monospace)
			renderInline(b, src, v)
			b.WriteString(format.Monospace)
		case *ast.Link:
			renderInline(b, src, v)
			b.WriteString(": " + string(v.Destination))
		case *ast.AutoLink:
			b.Write(v.URL(src))
		case *ast.Image:
			renderInline(b, src, v)
		case *ast.RawHTML:
			b.WriteString(htmltext.Normalize(string(segmentsValue(src, v.Segments)), htmltext.Options{}))
		default:
			renderInline(b, src, n)
		}
	}
}

func writeCodeLines(b *strings.Builder, src []byte, lines *text.Segments, indent string) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\n")
		b.WriteString(indent + format.Monospace + line + format.Monospace + "\n")
	}
}

func segmentsValue(src []byte, segs *text.Segments) []byte {
	var out []byte
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		out = append(out, seg.Value(src)...)
	}
	return out
}
