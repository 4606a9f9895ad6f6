package deskcalc

import (
	"strings"
	"unicode/utf8"
)

// scanner reads the pieces of a trimmed expression. Unlike a general lexer,
// it has no notion of token boundaries: each parse function asks for exactly
// the piece it expects next, and the scanner reports whether it was there.
type scanner struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// col is the 1-based rune position of the next rune.
	col int
}

func scan(src string) *scanner {
	return &scanner{src: src, col: 1}
}

// peek returns the next rune without consuming it, or utf8.RuneError with
// size 0 at the end of input.
func (s *scanner) peek() (rune, int) {
	if s.off >= len(s.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.src[s.off:])
}

// peekAt returns the rune k bytes after the next one. Only used for ASCII
// lookahead, so k is a byte count.
func (s *scanner) peekAt(k int) byte {
	if s.off+k >= len(s.src) {
		return 0
	}
	return s.src[s.off+k]
}

func (s *scanner) advance(sz int) {
	s.off += sz
	s.col++
}

// done returns whether the whole input has been consumed.
func (s *scanner) done() bool {
	return s.off >= len(s.src)
}

// scanName consumes a run of lower-case ASCII letters.
func (s *scanner) scanName() string {
	start := s.off
	for {
		r, sz := s.peek()
		if r < 'a' || r > 'z' {
			break
		}
		s.advance(sz)
	}
	return s.src[start:s.off]
}

// scanNum consumes a numeral: an optional minus sign, one or more digits, and
// optionally a point followed by one or more digits. A point that is not
// followed by a digit is left unconsumed. If no numeral starts at the current
// position, nothing is consumed and the result is false.
func (s *scanner) scanNum() (string, bool) {
	start, col := s.off, s.col
	if r, sz := s.peek(); r == '-' {
		s.advance(sz)
	}
	if s.digits() == 0 {
		s.off, s.col = start, col
		return "", false
	}
	if r, _ := s.peek(); r == '.' && isdigit(s.peekAt(1)) {
		s.advance(1)
		s.digits()
	}
	return s.src[start:s.off], true
}

// scanOp consumes one binary operator rune.
func (s *scanner) scanOp() (string, bool) {
	r, sz := s.peek()
	if sz == 0 || !strings.ContainsRune(Operators, r) {
		return "", false
	}
	s.advance(sz)
	return string(r), true
}

func (s *scanner) digits() int {
	n := 0
	for s.off < len(s.src) && isdigit(s.src[s.off]) {
		s.advance(1)
		n++
	}
	return n
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}
