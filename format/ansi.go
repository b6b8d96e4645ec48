package format

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ircColors maps the mIRC 16-color palette to ANSI-16 palette indices.
var ircColors = [16]string{
	"15", // white
	"0",  // black
	"4",  // blue
	"2",  // green
	"9",  // red
	"1",  // brown
	"5",  // purple
	"3",  // orange
	"11", // yellow
	"10", // light green
	"6",  // teal
	"14", // cyan
	"12", // light blue
	"13", // pink
	"8",  // grey
	"7",  // light grey
}

type ansiState struct {
	bold      bool
	underline bool
	reverse   bool
	fg        string
	bg        string
}

func (st ansiState) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if st.bold {
		s = s.Bold(true)
	}
	if st.underline {
		s = s.Underline(true)
	}
	if st.reverse {
		s = s.Reverse(true)
	}
	if st.fg != "" {
		s = s.Foreground(lipgloss.Color(st.fg))
	}
	if st.bg != "" {
		s = s.Background(lipgloss.Color(st.bg))
	}
	return s
}

// ANSI translates IRC formatting codes in s into ANSI escape sequences for
// previewing bot output in a terminal. Monospace has no terminal
// counterpart and is dropped.
func ANSI(s string) string {
	var out strings.Builder
	var seg strings.Builder
	var st ansiState

	flush := func() {
		if seg.Len() == 0 {
			return
		}
		out.WriteString(st.style().Render(seg.String()))
		seg.Reset()
	}

	i := 0
	for i < len(s) {
		switch s[i] {
		case 0x02:
			flush()
			st.bold = !st.bold
			i++
		case 0x1f:
			flush()
			st.underline = !st.underline
			i++
		case 0x16:
			flush()
			st.reverse = !st.reverse
			i++
		case 0x0f:
			flush()
			st = ansiState{}
			i++
		case 0x11:
			flush()
			i++
		case 0x03:
			flush()
			fg, bg, next := parseColor(s, i+1)
			if fg == "" {
				st.fg, st.bg = "", ""
			} else {
				st.fg = fg
				if bg != "" {
					st.bg = bg
				}
			}
			i = next
		default:
			seg.WriteByte(s[i])
			i++
		}
	}
	flush()
	return out.String()
}

// parseColor reads the optional NN or NN,NN argument after a color code. A
// bare color code carries no argument and clears both colors.
func parseColor(s string, i int) (fg, bg string, next int) {
	digits := func(j int) (string, int) {
		k := j
		for k < len(s) && k-j < 2 && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		return s[j:k], k
	}

	d, j := digits(i)
	if d == "" {
		return "", "", i
	}
	fg = ircColor(d)
	if j < len(s) && s[j] == ',' {
		if d2, k := digits(j + 1); d2 != "" {
			bg = ircColor(d2)
			j = k
		}
	}
	return fg, bg, j
}

func ircColor(d string) string {
	n, _ := strconv.Atoi(d)
	return ircColors[n%16]
}
