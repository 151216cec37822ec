package fetch

import "fmt"

// Kind classifies a fetch failure. None of these are retried or
// silently swallowed; the pipeline stops at the first one.
type Kind int

const (
	// KindConfig marks caller mistakes: malformed ports, unusable URLs.
	KindConfig Kind = iota
	// KindTransport marks resolution, connect, TLS and IO failures.
	KindTransport
	// KindProtocol marks responses this client refuses to understand.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	}
	return "unknown"
}

// Error tags an underlying failure with its [Kind].
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func configErr(err error) error    { return &Error{Kind: KindConfig, Err: err} }
func transportErr(err error) error { return &Error{Kind: KindTransport, Err: err} }
func protocolErr(err error) error  { return &Error{Kind: KindProtocol, Err: err} }
