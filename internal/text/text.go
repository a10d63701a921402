// Package text handles outbound line presentation: ANSI styling,
// punctuation normalization for terminal compatibility, and hard wrapping.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// WrapWidth is the column width outbound lines are hard-wrapped to.
const WrapWidth = 78

const ansiReset = "\033[0m"

// Style names for Colorize.
const (
	StyleRoomName   = "room_name"
	StyleNPCName    = "npc_name"
	StylePlayerName = "player_name"
	StyleSystem     = "system"
	StyleError      = "error"
	StyleBanner     = "banner"
)

var styles = map[string]string{
	StyleRoomName:   "\033[1;36m", // bright cyan
	StyleNPCName:    "\033[1;33m", // bright yellow
	StylePlayerName: "\033[1;32m", // bright green
	StyleSystem:     "\033[0;32m", // green
	StyleError:      "\033[0;31m", // red
	StyleBanner:     "\033[1;35m", // bright magenta
}

// Colorize wraps text in the ANSI escape pair for the named style.
// Unknown styles and disabled color return the text unchanged.
func Colorize(text, style string, enabled bool) string {
	if !enabled {
		return text
	}

	code, ok := styles[style]
	if !ok {
		return text
	}
	return code + text + ansiReset
}

// fancyPunct maps typographic punctuation to its ASCII equivalent.
var fancyPunct = strings.NewReplacer(
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "--", // em dash
	"…", "...", // ellipsis
	" ", " ", // non-breaking space
)

// stripMarks removes combining marks after NFD decomposition, so accented
// letters degrade to their base ASCII letter.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize converts fancy punctuation and accented letters to plain
// ASCII equivalents. Undecodable input comes back best-effort, never as
// an error.
func Normalize(s string) string {
	s = fancyPunct.Replace(s)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Wrap hard-wraps text to the given width, preserving explicit line
// breaks as separate output lines. Words longer than the width are left
// intact on their own line.
func Wrap(s string, width int) []string {
	if width <= 0 {
		width = WrapWidth
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) <= width {
			out = append(out, line)
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, line)
			continue
		}

		// Leading whitespace survives wrapping on the first line only.
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		current := indent + words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				out = append(out, current)
				current = word
				continue
			}
			current += " " + word
		}
		out = append(out, current)
	}
	return out
}
