package internal

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// DiffError reports the difference between a snapshot and the received
// value.
type DiffError struct {
	diff  string
	color bool
}

func (d *DiffError) Error() string {
	if d.color {
		return d.Ansi()
	}

	return d.Text()
}

// Ansi returns the diff with removed lines in red and added lines in green.
func (d *DiffError) Ansi() string {
	lines := strings.Split(d.diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "-"):
			lines[i] = red(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = green(line)
		}
	}

	return header(red("  Snapshot(-)"), green("  Received(+)")) + strings.Join(lines, "\n")
}

func (d *DiffError) Text() string {
	return header("  Snapshot(-)", "  Received(+)") + d.diff
}

func (d *DiffError) SetColor(color bool) {
	d.color = color
}

// ANSIDiff returns a *DiffError when x and y differ.
func ANSIDiff(x, y any, opts ...cmp.Option) error {
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return nil
	}

	return &DiffError{diff: diff, color: true}
}

func header(snapshot, received string) string {
	return fmt.Sprintf("\n\n%s\n%s\n\n\n", snapshot, received)
}

func color(code int, s string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}

func red(s string) string {
	return color(31, s)
}

func green(s string) string {
	return color(32, s)
}
