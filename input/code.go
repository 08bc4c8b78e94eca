package input

// Code is a platform-neutral key code
// Letters use their upper-case ASCII value and navigation keys use the classic
// virtual-key numbers, so codes read from any hook compare equal
type Code uint32

const (
	KeyNone      Code = 0
	KeyInterrupt Code = 3 // Ctrl-C
	KeyEscape    Code = 27
	KeyLeft      Code = 37
	KeyUp        Code = 38
	KeyRight     Code = 39
	KeyDown      Code = 40

	KeyA Code = 'A'
	KeyD Code = 'D'
	KeyQ Code = 'Q'
	KeyS Code = 'S'
	KeyW Code = 'W'
)

// CodeFromRune maps a printable rune to its code
// Lower-case letters fold to upper case; non-letters are rejected
func CodeFromRune(r rune) (Code, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Code(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z':
		return Code(r), true
	}
	return KeyNone, false
}

// String returns a short human name for logs
func (c Code) String() string {
	switch c {
	case KeyNone:
		return "none"
	case KeyInterrupt:
		return "ctrl-c"
	case KeyEscape:
		return "esc"
	case KeyLeft:
		return "left"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	}
	if c >= 'A' && c <= 'Z' {
		return string(rune(c))
	}
	return "?"
}
