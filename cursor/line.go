package cursor

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is a cursor over one row of runes.
// The zero value is an empty, exhausted line.
type Line struct {
	runes []rune
	pos   int
}

// NewLine builds a Line from s with surrounding whitespace trimmed.
func NewLine(s string) *Line {
	return &Line{runes: []rune(strings.TrimSpace(s))}
}

// NewFilledLine builds a Line of n copies of r.
func NewFilledLine(r rune, n int) *Line {
	if n < 0 {
		n = 0
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return &Line{runes: runes}
}

// Len returns the number of runes in the line.
func (l *Line) Len() int { return len(l.runes) }

// Position returns the cursor position in [0, Len].
func (l *Line) Position() int { return l.pos }

// Done reports whether the cursor is exhausted.
func (l *Line) Done() bool { return l.pos == len(l.runes) }

// Reset moves the cursor back to 0.
func (l *Line) Reset() { l.pos = 0 }

// String returns the line's content, ignoring the cursor.
func (l *Line) String() string { return string(l.runes) }

// Runes returns a copy of the line's content.
func (l *Line) Runes() []rune {
	out := make([]rune, len(l.runes))
	copy(out, l.runes)
	return out
}

// At returns the rune at absolute index i.
func (l *Line) At(i int) (rune, bool) {
	if i < 0 || i >= len(l.runes) {
		return 0, false
	}
	return l.runes[i], true
}

// SetAt overwrites the rune at absolute index i; out-of-range is a no-op.
func (l *Line) SetAt(i int, r rune) {
	if i >= 0 && i < len(l.runes) {
		l.runes[i] = r
	}
}

// Peek returns the rune under the cursor.
func (l *Line) Peek() (rune, bool) { return l.At(l.pos) }

// PeekAt returns the rune at position+offset without moving.
func (l *Line) PeekAt(offset int) (rune, bool) { return l.At(l.pos + offset) }

// Pop returns the rune under the cursor and advances by one.
// An exhausted line returns ok == false and does not move.
func (l *Line) Pop() (rune, bool) {
	r, ok := l.Peek()
	if ok {
		l.pos++
	}
	return r, ok
}

// Advance moves forward by n, clamped to Len, and returns the part of n
// that did not fit (0 if the whole step was absorbed). A negative n moves
// backwards through GoBack.
func (l *Line) Advance(n int) int {
	if n < 0 {
		return -l.GoBack(-n)
	}
	if l.pos+n > len(l.runes) {
		rest := n - (len(l.runes) - l.pos)
		l.pos = len(l.runes)
		return rest
	}
	l.pos += n
	return 0
}

// GoBack moves backwards by n, clamped at 0, and returns the part of n that
// did not fit. A negative n moves forwards through Advance.
func (l *Line) GoBack(n int) int {
	if n < 0 {
		return -l.Advance(-n)
	}
	if l.pos < n {
		rest := n - l.pos
		l.pos = 0
		return rest
	}
	l.pos -= n
	return 0
}

// GoTo sets the position, clamped to [0, Len].
func (l *Line) GoTo(pos int) {
	switch {
	case pos < 0:
		l.pos = 0
	case pos > len(l.runes):
		l.pos = len(l.runes)
	default:
		l.pos = pos
	}
}

// GoToWrapped sets the position modulo Len; negative values wrap to the end.
// On an empty line the cursor stays at 0.
func (l *Line) GoToWrapped(pos int) {
	n := len(l.runes)
	if n == 0 {
		l.pos = 0
		return
	}
	pos %= n
	if pos < 0 {
		pos += n
	}
	l.pos = pos
}

// AdvanceTo scans forward from the cursor (inclusive) for target. On success
// the cursor rests on target's last rune and true is returned; otherwise the
// line is consumed and false is returned. An empty target matches in place.
func (l *Line) AdvanceTo(target string) bool {
	t := []rune(target)
	if len(t) == 0 {
		return true
	}
	for start := l.pos; start+len(t) <= len(l.runes); start++ {
		if l.matchesAt(start, t) {
			l.pos = start + len(t) - 1
			return true
		}
	}
	l.pos = len(l.runes)
	return false
}

func (l *Line) matchesAt(start int, t []rune) bool {
	for i, r := range t {
		if l.runes[start+i] != r {
			return false
		}
	}
	return true
}

// Set overwrites the rune under the cursor; an exhausted line ignores it.
func (l *Line) Set(r rune) { l.SetAt(l.pos, r) }

// Fill overwrites the inclusive range [min(from,to), max(from,to)], clamped
// to the line, with r. The cursor does not move.
func (l *Line) Fill(r rune, from, to int) {
	lo, hi := min(from, to), max(from, to)
	lo = max(lo, 0)
	hi = min(hi, len(l.runes)-1)
	for i := lo; i <= hi; i++ {
		l.runes[i] = r
	}
}

// MatchInt greedily consumes a run of decimal digits at the cursor and
// parses it. With no digit under the cursor it returns ok == false and does
// not move.
func (l *Line) MatchInt() (int, bool) {
	start := l.pos
	for l.pos < len(l.runes) && isDigit(l.runes[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(string(l.runes[start:l.pos]))
	if err != nil { // overflow
		l.pos = start
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// MatchSignedInt is MatchInt with an optional leading '-'.
func (l *Line) MatchSignedInt() (int, bool) {
	start := l.pos
	neg := false
	if r, ok := l.Peek(); ok && r == '-' {
		neg = true
		l.pos++
	}
	n, ok := l.MatchInt()
	if !ok {
		l.pos = start
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// MatchIntUpTo matches an integer that must be followed by delim. On success
// the cursor moves past delim. On failure the cursor is left where it was.
func (l *Line) MatchIntUpTo(delim rune) (int, bool) {
	start := l.pos
	n, ok := l.MatchInt()
	if !ok {
		return 0, false
	}
	if r, ok := l.Peek(); ok && r == delim {
		l.pos++
		return n, true
	}
	l.pos = start
	return 0, false
}

// Remaining returns the unconsumed tail as a string.
func (l *Line) Remaining() string {
	return string(l.runes[l.pos:])
}

// SplitStrings splits the unconsumed tail on delim. The cursor does not move.
func (l *Line) SplitStrings(delim string) []string {
	return strings.Split(l.Remaining(), delim)
}

// SplitInts splits the unconsumed tail on delim and parses every token,
// trimming surrounding whitespace. The first bad token fails the call with
// ErrParseInteger.
func (l *Line) SplitInts(delim string) ([]int, error) {
	tokens := l.SplitStrings(delim)
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParseInteger, tok)
		}
		out = append(out, n)
	}
	return out, nil
}

// DeleteBetween returns the unconsumed text with every span that starts
// with from and ends with to removed (both markers included), consuming the
// line.
func (l *Line) DeleteBetween(from, to string) string {
	var b strings.Builder
	for !l.Done() {
		start := l.pos
		found := l.AdvanceTo(from)
		end := l.pos
		if found {
			end = l.pos - len([]rune(from)) + 1
		}
		b.WriteString(string(l.runes[start:end]))
		if !found {
			break
		}
		l.Advance(1)
		l.AdvanceTo(to)
		l.Advance(1)
	}
	return b.String()
}
