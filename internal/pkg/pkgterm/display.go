package pkgterm

import (
	"io"
	"os"

	"golang.org/x/term"
)

// clearSequence moves the cursor home and erases the screen (ANSI/VT100).
const clearSequence = "\x1b[H\x1b[2J"

// Display controls the user's screen.
type Display interface {
	Clear()
}

// Screen clears an ANSI terminal. Output that is not a terminal (pipes,
// files, tests) is left untouched.
type Screen struct {
	out         io.Writer
	interactive bool
}

// NewScreen returns a Screen for f, enabled only when f is a terminal.
func NewScreen(f *os.File) *Screen {
	return &Screen{out: f, interactive: term.IsTerminal(int(f.Fd()))}
}

// NewScreenWriter returns a Screen that always writes the clear sequence to w.
func NewScreenWriter(w io.Writer) *Screen {
	return &Screen{out: w, interactive: true}
}

// Clear erases the screen.
func (s *Screen) Clear() {
	if !s.interactive {
		return
	}
	//nolint:errcheck // nothing useful to do if the terminal is gone
	io.WriteString(s.out, clearSequence)
}

// Nop is a Display that does nothing.
type Nop struct{}

// Clear implements Display.
func (Nop) Clear() {}
