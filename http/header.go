package http

import "strings"

// Headers is a case-insensitive header collection. Names are lowercased
// on the way in and duplicate names overwrite earlier values, so a
// lookup always sees the last occurrence on the wire.
type Headers struct{ underlying map[string]string }

func NewHeaders() Headers {
	return Headers{underlying: make(map[string]string)}
}

func (h Headers) Get(key string) (value string, ok bool) {
	value, ok = h.underlying[strings.ToLower(key)]
	return
}

func (h Headers) Set(key, value string) {
	h.underlying[strings.ToLower(key)] = value
}

func (h Headers) Del(key string) {
	delete(h.underlying, strings.ToLower(key))
}

func (h Headers) Len() int { return len(h.underlying) }

// Fields returns a copy of all header key-values.
func (h Headers) Fields() map[string]string {
	clone := make(map[string]string, len(h.underlying))
	for k, v := range h.underlying {
		clone[k] = v
	}
	return clone
}
