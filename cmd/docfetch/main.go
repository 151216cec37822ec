// Command docfetch fetches a single URL and prints its body as
// readable text.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"docfetch/entity"
	"docfetch/fetch"
	"docfetch/transport"

	"github.com/benbjohnson/clock"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	userAgent := flag.String("user-agent", "", "override the request user agent")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <url>\n", os.Args[0])
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flag.Arg(0), logger, *userAgent); err != nil {
		logger.Error("fetch failed", "err", err)
		os.Exit(1)
	}
}

func run(raw string, logger *slog.Logger, userAgent string) error {
	table, err := entity.Builtin()
	if err != nil {
		return err
	}

	client := fetch.New(transport.NewTCPDialer(), logger, clock.New(), fetch.Options{
		UserAgent: userAgent,
		Entities:  table,
	})

	return client.Load(context.Background(), raw, os.Stdout)
}
