package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-staffing/internal/adapter"
	"github.com/MKhiriev/go-staffing/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, rest, err := parseClientConfig(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if len(rest) == 1 && rest[0] == "build-info" {
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
		return 0
	}

	log := logger.Nop()
	if cfg.Verbose {
		log = logger.New(os.Stderr, "staffing-client")
	}

	client, err := adapter.NewHTTPStaffingClient(cfg.Address, cfg.Timeout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if cfg.Name != "" {
		client = client.WithCredentials(cfg.Name, cfg.Password)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = execute(ctx, client, rest, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errWrongArguments) || errors.Is(err, errUnknownCommand) {
			fmt.Fprintln(os.Stderr, usage)
			return 2
		}
		return 1
	}

	return 0
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
