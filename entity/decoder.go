package entity

import (
	"io"
	"strings"
)

// Scanner is a rune stream with single-rune lookahead and pushback,
// which is what [Decoder.Consume] needs to undo a failed match.
type Scanner struct {
	r io.RuneReader

	// pending holds pushed-back runes, most recently pushed last.
	pending []rune
	err     error
}

func NewScanner(r io.RuneReader) *Scanner {
	return &Scanner{r: r}
}

// Peek returns the next rune without consuming it.
func (s *Scanner) Peek() (rune, bool) {
	if n := len(s.pending); n > 0 {
		return s.pending[n-1], true
	}

	r, ok := s.read()
	if !ok {
		return 0, false
	}

	s.pending = append(s.pending, r)
	return r, true
}

// Next consumes and returns the next rune.
func (s *Scanner) Next() (rune, bool) {
	if n := len(s.pending); n > 0 {
		r := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return r, true
	}

	return s.read()
}

// Unread pushes runes back onto the stream. They are handed out again
// in the order given, before anything still unread.
func (s *Scanner) Unread(runes []rune) {
	for idx := len(runes) - 1; idx >= 0; idx-- {
		s.pending = append(s.pending, runes[idx])
	}
}

func (s *Scanner) read() (rune, bool) {
	if s.err != nil {
		return 0, false
	}

	r, _, err := s.r.ReadRune()
	if err != nil {
		s.err = err
		return 0, false
	}
	return r, true
}

// Err returns the first non-EOF error the underlying reader produced.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Decoder matches entity names from a shared read-only table.
type Decoder struct{ table *Table }

func NewDecoder(table *Table) *Decoder {
	return &Decoder{table: table}
}

// Consume greedily matches the longest entity name starting at the
// scanner's position.
//
// It extends a working prefix one rune at a time, narrowing the set of
// table entries that still start with it, and remembers the longest
// prefix that was itself an exact entry. When the candidate set
// empties (or input ends), the best exact match wins: its decoded text
// is returned and any runes consumed past it are pushed back. With no
// exact match at any length, nothing is consumed and ok is false.
// A miss is not an error; the caller decides what to emit.
func (d *Decoder) Consume(s *Scanner) (decoded string, ok bool) {
	candidates := make([]int, len(d.table.entries))
	for idx := range candidates {
		candidates[idx] = idx
	}

	var acc []rune
	best := -1   // index of the longest exact match
	bestLen := 0 // its length in runes

	for {
		next, ok := s.Peek()
		if !ok {
			break
		}

		local := string(append(acc, next))

		narrowed := candidates[:0:len(candidates)]
		for _, idx := range candidates {
			if strings.HasPrefix(d.table.entries[idx].name, local) {
				narrowed = append(narrowed, idx)
			}
		}

		if len(narrowed) == 0 {
			// Do not consume the rune that killed the match.
			break
		}

		candidates = narrowed
		s.Next()
		acc = append(acc, next)

		for _, idx := range candidates {
			if d.table.entries[idx].name == string(acc) {
				best, bestLen = idx, len(acc)
				break
			}
		}
	}

	if best < 0 {
		s.Unread(acc)
		return "", false
	}

	s.Unread(acc[bestLen:])
	return d.table.entries[best].decoded, true
}
