// @focus: #sys { io } #input { keys }
package terminal

import "github.com/lixenwraith/cellsnake/input"

// maxCSILen bounds the scan for a CSI terminator before giving up
const maxCSILen = 16

// DecodeKeys parses raw tty bytes, calling emit for each recognised key
// Returns the number of bytes consumed; an incomplete escape sequence at the
// end of data is left unconsumed for the next call
func DecodeKeys(data []byte, emit func(input.Code)) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			if c, ok := input.CodeFromRune(rune(b)); ok {
				emit(c)
			}
			i++

		case b == 0x03:
			emit(input.KeyInterrupt)
			i++

		case b == 0x1b:
			consumed := decodeEscape(data[i:], emit)
			if consumed == 0 {
				return i // Wait for more data
			}
			i += consumed

		default:
			// Other control bytes and UTF-8 continuation bytes carry no direction
			i++
		}
	}
	return i
}

// decodeEscape handles data starting with ESC, returns 0 when incomplete
func decodeEscape(data []byte, emit func(input.Code)) int {
	if len(data) < 2 {
		return 0
	}

	if data[1] != '[' && data[1] != 'O' {
		// Standalone ESC followed by an unrelated byte
		emit(input.KeyEscape)
		return 1
	}

	// CSI (ESC [) or SS3 (ESC O): scan for the final byte
	end := 2
	limit := min(len(data), maxCSILen)
	for end < limit {
		f := data[end]
		if end == 2 && !isShortFinal(f) && !isParam(f) {
			// ESC [ or ESC O followed by an ordinary key: drop the introducer, keep the key
			return 2
		}
		if (f >= 'A' && f <= 'Z') || (f >= 'a' && f <= 'z') || f == '~' {
			emitArrow(f, emit)
			return end + 1
		}
		if f < 0x20 || f > 0x7e {
			// Malformed, drop the introducer
			return 2
		}
		end++
	}

	if len(data) >= maxCSILen {
		// Unterminated garbage, drop the introducer
		return 2
	}
	return 0
}

// isShortFinal reports whether f can end a sequence with no parameters
// Parameterless CSI and SS3 finals are all upper case
func isShortFinal(f byte) bool {
	return f >= 'A' && f <= 'Z'
}

// isParam reports CSI parameter and intermediate bytes
func isParam(f byte) bool {
	return f >= 0x20 && f <= 0x3f
}

func emitArrow(final byte, emit func(input.Code)) {
	switch final {
	case 'A':
		emit(input.KeyUp)
	case 'B':
		emit(input.KeyDown)
	case 'C':
		emit(input.KeyRight)
	case 'D':
		emit(input.KeyLeft)
	}
}
