// Package entity decodes named character references (HTML entities)
// against a table loaded once at startup and shared read-only.
package entity

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//go:embed entities.in
var builtinSource []byte

type entry struct {
	name    string
	decoded string
}

// Table is an ordered, immutable set of entity definitions. It is safe
// to share across decoders without locking: nothing writes after Load.
type Table struct{ entries []entry }

// Load reads entity definitions, one per line: the entity name followed
// by whitespace-separated decimal code points. Code points that fail to
// parse are skipped without failing the entry; lines without a name are
// skipped entirely.
func Load(r io.Reader) (*Table, error) {
	table := &Table{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		b := new(strings.Builder)
		for _, field := range fields[1:] {
			code, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				continue
			}
			if r := rune(code); isScalarValue(r) {
				b.WriteRune(r)
			}
		}

		table.entries = append(table.entries, entry{
			name:    fields[0],
			decoded: b.String(),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading entity source")
	}

	return table, nil
}

// Builtin loads the table embedded in the binary.
func Builtin() (*Table, error) {
	return Load(bytes.NewReader(builtinSource))
}

func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the decoded text for an exact entity name.
func (t *Table) Lookup(name string) (string, bool) {
	for _, e := range t.entries {
		if e.name == name {
			return e.decoded, true
		}
	}
	return "", false
}

// isScalarValue reports whether r is a valid Unicode scalar value.
// Code points outside the range are dropped from the decoded text.
func isScalarValue(r rune) bool {
	return r >= 0 && r <= '\U0010FFFF' && !(r >= 0xD800 && r <= 0xDFFF)
}
