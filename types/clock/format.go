package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Layouts matching the ISO-8601 local date and time forms. Fractional
// seconds are printed only when non-zero.
const (
	ISODate     = "2006-01-02"
	ISOTime     = "15:04:05.999999999"
	ISODateTime = "2006-01-02T15:04:05.999999999"
)

// ErrInvalidPattern is returned for patterns that cannot be expressed as a
// Go layout.
var ErrInvalidPattern = errors.New("clock: invalid pattern")

// Layout converts a letter pattern such as "yyyy-MM-dd HH:mm:ss" into a Go
// reference layout.
//
// Supported letters: y, M, d, D, H, h, m, s, S, a, E, Z, X and z. Text in
// single quotes is literal and '' is a quote. Literals that Go would read as
// layout elements, such as digits, Mon, PM or _2, are rejected.
func Layout(pattern string) (string, error) {
	var sb strings.Builder
	var chunks []chunk

	rs := []rune(pattern)
	for i := 0; i < len(rs); {
		r := rs[i]

		if r == '\'' {
			lit, n, err := quoted(rs[i:])
			if err != nil {
				return "", fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
			}
			sb.WriteString(lit)
			chunks = append(chunks, chunk{text: lit})
			i += n
			continue
		}

		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			if unicode.IsDigit(r) {
				return "", fmt.Errorf("%w: %q: digit literal %q", ErrInvalidPattern, pattern, r)
			}
			sb.WriteRune(r)
			chunks = append(chunks, chunk{text: string(r)})
			i++
			continue
		}

		n := 1
		for i+n < len(rs) && rs[i+n] == r {
			n++
		}

		prev := sb.String()
		elem, err := element(r, n, prev)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
		}
		sb.WriteString(elem)
		chunks = append(chunks, chunk{text: elem, letter: r})
		i += n
	}

	layout := sb.String()
	for _, t := range probes {
		if t.Format(layout) != render(chunks, t) {
			return "", fmt.Errorf("%w: %q: literal text reads as a date field", ErrInvalidPattern, pattern)
		}
	}

	return layout, nil
}

// probes differ in every field, including AM/PM and zone name.
var probes = []time.Time{
	time.Date(2009, time.November, 17, 20, 34, 58, 651387237, time.FixedZone("UTC+8", 8*60*60)),
	time.Date(2010, time.February, 3, 4, 5, 6, 7, time.FixedZone("UTC-3", -3*60*60)),
}

// chunk is a piece of a layout: a field converted from a pattern letter, or
// literal text when letter is zero.
type chunk struct {
	text   string
	letter rune
}

// render formats each chunk on its own, so literals stay literal.
func render(chunks []chunk, t time.Time) string {
	var sb strings.Builder
	for _, c := range chunks {
		switch c.letter {
		case 0:
			sb.WriteString(c.text)
		case 'S':
			// Fractions are only recognised after a separator.
			sb.WriteString(t.Format("." + c.text)[1:])
		default:
			sb.WriteString(t.Format(c.text))
		}
	}

	return sb.String()
}

// MustLayout is like Layout but panics on error. Use it for constant patterns.
func MustLayout(pattern string) string {
	layout, err := Layout(pattern)
	if err != nil {
		panic(err)
	}

	return layout
}

// Format formats t with the letter pattern.
func Format(t time.Time, pattern string) (string, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}

	return t.Format(layout), nil
}

// Parse parses s with the letter pattern. Values without a zone are UTC.
func Parse(pattern, s string) (time.Time, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(layout, s)
}

func quoted(rs []rune) (string, int, error) {
	// '' is an escaped quote.
	if len(rs) > 1 && rs[1] == '\'' {
		return "'", 2, nil
	}

	var sb strings.Builder
	for i := 1; i < len(rs); i++ {
		switch {
		case rs[i] == '\'' && i+1 < len(rs) && rs[i+1] == '\'':
			sb.WriteRune('\'')
			i++
		case rs[i] == '\'':
			return sb.String(), i + 1, nil
		case unicode.IsDigit(rs[i]):
			return "", 0, fmt.Errorf("digit literal %q", rs[i])
		default:
			sb.WriteRune(rs[i])
		}
	}

	return "", 0, errors.New("unterminated quote")
}

func element(letter rune, n int, prev string) (string, error) {
	switch letter {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		switch n {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		default:
			return "January", nil
		}
	case 'd':
		switch n {
		case 1:
			return "2", nil
		case 2:
			return "02", nil
		}
	case 'D':
		if n <= 3 {
			return "002", nil
		}
	case 'H':
		if n <= 2 {
			return "15", nil
		}
	case 'h':
		switch n {
		case 1:
			return "3", nil
		case 2:
			return "03", nil
		}
	case 'm':
		switch n {
		case 1:
			return "4", nil
		case 2:
			return "04", nil
		}
	case 's':
		switch n {
		case 1:
			return "5", nil
		case 2:
			return "05", nil
		}
	case 'S':
		// Go only recognises fractions right after a separator.
		if strings.HasSuffix(prev, ".") || strings.HasSuffix(prev, ",") {
			return strings.Repeat("0", min(n, 9)), nil
		}
		return "", errors.New("fraction must follow '.' or ','")
	case 'a':
		return "PM", nil
	case 'E':
		if n <= 3 {
			return "Mon", nil
		}
		return "Monday", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		switch n {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		default:
			return "Z07:00", nil
		}
	case 'z':
		return "MST", nil
	}

	return "", fmt.Errorf("unsupported field %s", strings.Repeat(string(letter), n))
}
