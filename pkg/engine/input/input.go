package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// CodeForByte names a single raw terminal byte the way bindings expect
func CodeForByte(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == '\r' || b == '\n':
		return "enter"
	case b == ' ':
		return "space"
	case b == 0x1b:
		return "escape"
	case b >= 32 && b < 127:
		return string(rune(b))
	default:
		return ""
	}
}

// ReadKey puts the terminal into raw mode, reads one key press and restores it.
// Escape sequences (arrow keys etc.) are reported as "escape".
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return RawInput{}, fmt.Errorf("cannot read stdin: %w", err)
	}

	return RawInput{Device: DeviceTerminal, Code: CodeForByte(b)}, nil
}
