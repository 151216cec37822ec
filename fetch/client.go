// Package fetch ties the pipeline together: resolve the URL, dial the
// right transport, exchange request for response bytes, parse, and
// render. One URL, one connection, one request.
package fetch

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"strings"

	"docfetch/entity"
	"docfetch/http"
	"docfetch/render"
	"docfetch/transport"
	"docfetch/url"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

type Options struct {
	// UserAgent overrides the default request user agent.
	UserAgent string

	// TLSConfig is used by the https dialer. ServerName is filled per
	// request from the URL's hostname when empty.
	TLSConfig *tls.Config

	// Entities enables entity decoding during rendering. Nil leaves
	// character references untouched.
	Entities *entity.Table
}

type Client struct {
	dialer    transport.Dialer
	tlsDialer transport.Dialer

	opts Options

	logger *slog.Logger
	clock  clock.Clock

	renderer *render.Renderer
}

// New builds a client around d. Plain http dials d directly; https
// wraps it with a TLS upgrade.
func New(d transport.Dialer, logger *slog.Logger, clk clock.Clock, opts Options) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clk == nil {
		clk = clock.New()
	}

	return &Client{
		dialer:    d,
		tlsDialer: transport.NewTLSDialer(d, opts.TLSConfig),
		opts:      opts,
		logger:    logger,
		clock:     clk,
		renderer:  render.New(opts.Entities),
	}
}

// Fetch resolves raw, performs a single GET exchange (or a local
// short-circuit for file:/data:) and returns the parsed response.
func (c *Client) Fetch(ctx context.Context, raw string) (*http.Response, error) {
	u, err := url.Resolve(raw)
	if err != nil {
		return nil, configErr(errors.Wrap(err, "resolving url"))
	}

	switch u.Scheme {
	case url.SchemeFile:
		return fetchFile(u)
	case url.SchemeData:
		return fetchData(u)
	}

	request := http.NewRequest("GET", u)
	if c.opts.UserAgent != "" {
		request.UserAgent = c.opts.UserAgent
	}

	dialer := c.dialer
	if u.Scheme == url.SchemeHTTPS {
		dialer = c.tlsDialer
	}

	c.logger.DebugContext(ctx, "dialing", "host", u.Host(), "scheme", string(u.Scheme))

	conn, err := dialer.Dial(ctx, u.Host())
	if err != nil {
		return nil, transportErr(errors.Wrap(err, "dialing"))
	}

	start := c.clock.Now()
	rawResponse, err := transport.Exchange(conn, request.Bytes())
	if err != nil {
		return nil, transportErr(errors.Wrap(err, "exchanging"))
	}

	c.logger.DebugContext(ctx, "exchange done",
		"host", u.Host(),
		"bytes", len(rawResponse),
		"took", c.clock.Since(start),
	)

	response, err := http.ParseResponse(rawResponse)
	if err != nil {
		return nil, protocolErr(errors.Wrap(err, "parsing response"))
	}

	return response, nil
}

// Load fetches raw and writes its rendered body to w.
func (c *Client) Load(ctx context.Context, raw string, w io.Writer) error {
	response, err := c.Fetch(ctx, raw)
	if err != nil {
		return err
	}

	return errors.Wrap(c.Render(w, response), "rendering body")
}

// Render writes the response body as printable text.
func (c *Client) Render(w io.Writer, response *http.Response) error {
	return c.renderer.Render(w, strings.NewReader(response.Body))
}
