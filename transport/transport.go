// Package transport opens the byte-level connection a fetch rides on:
// plain TCP, or TCP upgraded to TLS, selected by the caller. The
// exchange model is a single blocking request/response: write
// everything, then read until the peer closes.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net"

	"github.com/pkg/errors"
)

// Dialer opens a connection to addr ("host:port").
type Dialer interface {
	Dial(ctx context.Context, addr string) (net.Conn, error)
}

type TCPDialer struct{ d net.Dialer }

var _ Dialer = (*TCPDialer)(nil)

func NewTCPDialer() *TCPDialer { return &TCPDialer{} }

func (t *TCPDialer) Dial(ctx context.Context, addr string) (net.Conn, error) {
	conn, err := t.d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing %s", addr)
	}
	return conn, nil
}

// TLSDialer dials through Inner and upgrades the stream with a TLS
// handshake. The certificate is validated against the hostname part of
// addr (or Config.ServerName when set), never the host:port composite.
type TLSDialer struct {
	Inner  Dialer
	Config *tls.Config
}

var _ Dialer = (*TLSDialer)(nil)

func NewTLSDialer(inner Dialer, config *tls.Config) *TLSDialer {
	return &TLSDialer{Inner: inner, Config: config}
}

func (t *TLSDialer) Dial(ctx context.Context, addr string) (net.Conn, error) {
	conn, err := t.Inner.Dial(ctx, addr)
	if err != nil {
		return nil, err
	}

	config := t.Config.Clone()
	if config == nil {
		config = &tls.Config{}
	}
	if config.ServerName == "" {
		hostname, _, err := net.SplitHostPort(addr)
		if err != nil {
			conn.Close()
			return nil, errors.Wrapf(err, "splitting %s", addr)
		}
		config.ServerName = hostname
	}

	tconn := tls.Client(conn, config)
	if err := tconn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "tls handshake")
	}

	return tconn, nil
}

// Exchange writes the whole request, then accumulates response bytes
// until the peer closes the connection. There is no length- or
// chunk-aware early exit, and no read timeout. The connection is
// closed on every return path.
func Exchange(conn net.Conn, request []byte) ([]byte, error) {
	defer conn.Close()

	if _, err := conn.Write(request); err != nil {
		return nil, errors.Wrap(err, "writing request")
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, conn); err != nil {
		return nil, errors.Wrap(err, "reading response")
	}

	return buf.Bytes(), nil
}
