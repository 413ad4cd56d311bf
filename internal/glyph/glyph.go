// Package glyph renders time strings as large ASCII-art digit blocks.
package glyph

// Rows is the fixed height of every glyph.
const Rows = 4

// normal holds the regular box-drawing segments for each supported character.
var normal = map[rune][Rows]string{
	'0': {"┌───┐", "│   │", "│   │", "└───┘"},
	'1': {"    ┐", "    │", "    │", "    ┴"},
	'2': {"┌───┐", "    │", "┌───┘", "└───┘"},
	'3': {"┌───┐", "    │", "  ──┤", "└───┘"},
	'4': {"┐   ┐", "└───┤", "    │", "    ┘"},
	'5': {"┌───┐", "└───┐", "┌   │", "└───┘"},
	'6': {"┌───┐", "├───┐", "│   │", "└───┘"},
	'7': {"┌───┐", "    │", "    │", "    ┘"},
	'8': {"┌───┐", "├───┤", "│   │", "└───┘"},
	'9': {"┌───┐", "└───┤", "    │", "    ┘"},
	':': {" ", "●", "●", " "},
	' ': {"     ", "     ", "     ", "     "},
}

// bold holds the thick double-line segments.
var bold = map[rune][Rows]string{
	'0': {"╔═════╗", "║     ║", "║     ║", "╚═════╝"},
	'1': {"      ║", "      ║", "      ║", "      ║"},
	'2': {"╔═════╗", "      ║", "╔═════╝", "╚═════╝"},
	'3': {"╔═════╗", "      ║", " ═════╣", "╚═════╝"},
	'4': {"╗     ║", "║     ║", "╚═════╣", "      ║"},
	'5': {"╔═════╗", "║      ", "╚═════╗", "╚═════╝"},
	'6': {"╔═════╗", "║      ", "╠═════╗", "╚═════╝"},
	'7': {"╔═════╗", "      ║", "      ║", "      ║"},
	'8': {"╔═════╗", "║     ║", "╠═════╣", "╚═════╝"},
	'9': {"╔═════╗", "║     ║", "╚═════╣", "╚═════╝"},
	':': {" ", "●", "●", " "},
	' ': {"       ", "       ", "       ", "       "},
}

// Render maps text to Rows lines of ASCII art, concatenating the glyph rows
// for each character left to right with one column of separation. Characters
// without a glyph are skipped entirely and contribute nothing to any row.
// Output rows all have equal display width; centering is the caller's job.
func Render(text string, thick bool) [Rows]string {
	table := normal
	if thick {
		table = bold
	}

	var lines [Rows]string
	for _, ch := range text {
		seg, ok := table[ch]
		if !ok {
			continue
		}
		for i := 0; i < Rows; i++ {
			lines[i] += seg[i] + " "
		}
	}
	return lines
}
