package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
)

// clientConfig is read from STAFFING_* variables first; flags override it.
type clientConfig struct {
	Address  string        `env:"ADDRESS" envDefault:"localhost:8080"`
	Name     string        `env:"USER"`
	Password string        `env:"PASSWORD"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"15s"`
	Verbose  bool          `env:"VERBOSE"`
}

// parseClientConfig returns the config and the remaining positional args
// (the command and its operands).
func parseClientConfig(args []string, output io.Writer) (clientConfig, []string, error) {
	var cfg clientConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "STAFFING_"}); err != nil {
		return clientConfig{}, nil, fmt.Errorf("error parsing env: %w", err)
	}

	fs := flag.NewFlagSet("staffing", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "server address (host:port or URL)")
	fs.StringVar(&cfg.Name, "u", cfg.Name, "basic auth user name")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "basic auth password")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "request timeout")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log failed requests")
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: staffing [flags] <command> [args]")
		fmt.Fprintln(output, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return clientConfig{}, nil, err
	}

	return cfg, fs.Args(), nil
}

const usage = `commands:
  users                                     list users
  user <id>                                 show a user
  create-user <name> [password]             create a user
  projects                                  list projects
  project <id>                              show a project
  create-project <name>                     create a project
  assignments                               list assignments
  assign <user_id> <project_id> [begins] [ends]
                                            create or update an assignment
  whoami                                    echo the request as the server sees it
  health                                    check the server and its store
  version                                   print the server version
flags:`
