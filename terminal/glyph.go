package terminal

// cp437Shades maps the CP437 block/shade bytes to their Unicode glyphs
// Cells are single bytes; anything else above 0x7f renders as '?'
var cp437Shades = map[byte]rune{
	176: '░',
	177: '▒',
	178: '▓',
	219: '█',
	220: '▄',
	223: '▀',
	254: '■',
}

// GlyphRune returns the rune displayed for cell byte b
func GlyphRune(b byte) rune {
	if b < 0x80 {
		if b < 0x20 || b == 0x7f {
			return ' '
		}
		return rune(b)
	}
	if r, ok := cp437Shades[b]; ok {
		return r
	}
	return '?'
}
