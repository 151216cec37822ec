// Package render turns an HTML-ish body into printable text by
// dropping everything between tag boundaries, optionally decoding
// named character references on the way through.
//
// This is a crude lexer on purpose: '<' and '>' inside attribute
// values or comments will confuse it.
package render

import (
	"bufio"
	"io"
	"strings"

	"docfetch/entity"

	"github.com/pkg/errors"
)

type state int

const (
	outside state = iota
	insideTag
)

// Renderer streams body text through tag-boundary tracking. A nil
// entity table leaves character references untouched.
type Renderer struct {
	decoder *entity.Decoder
}

func New(table *entity.Table) *Renderer {
	r := &Renderer{}
	if table != nil {
		r.decoder = entity.NewDecoder(table)
	}
	return r
}

// Render streams body into w, emitting only text outside of tags.
// Entity references that resolve are substituted; ones that don't are
// passed through verbatim.
func (rd *Renderer) Render(w io.Writer, body io.Reader) error {
	bw := bufio.NewWriter(w)
	s := entity.NewScanner(bufio.NewReader(body))

	st := outside
	for {
		if st == outside && rd.decoder != nil {
			if r, ok := s.Peek(); ok && r == '&' {
				if decoded, ok := rd.decoder.Consume(s); ok {
					if _, err := bw.WriteString(decoded); err != nil {
						return errors.Wrap(err, "writing decoded entity")
					}
					continue
				}
				// Unresolved reference: fall through and emit the
				// '&' literally.
			}
		}

		r, ok := s.Next()
		if !ok {
			break
		}

		switch st {
		case outside:
			if r == '<' {
				st = insideTag
				continue
			}
			if _, err := bw.WriteRune(r); err != nil {
				return errors.Wrap(err, "writing rune")
			}
		case insideTag:
			if r == '>' {
				st = outside
			}
		}
	}

	if err := s.Err(); err != nil {
		return errors.Wrap(err, "reading body")
	}

	return errors.Wrap(bw.Flush(), "flushing output")
}

// RenderString is [Renderer.Render] for in-memory bodies.
func (rd *Renderer) RenderString(body string) (string, error) {
	b := new(strings.Builder)
	if err := rd.Render(b, strings.NewReader(body)); err != nil {
		return "", err
	}
	return b.String(), nil
}
