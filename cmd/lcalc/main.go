package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"

	"github.com/vic/lcalc/pkg/config"
	"github.com/vic/lcalc/pkg/env"
	"github.com/vic/lcalc/pkg/reduce"
	"github.com/vic/lcalc/pkg/server"
	"github.com/vic/lcalc/pkg/session"
)

const prompt = "λ> "

func usage() {
	fmt.Fprint(os.Stderr, "usage: lcalc [flags] [file | serve]\n\n")
	fmt.Fprint(os.Stderr, "lcalc evaluates untyped lambda calculus terms to normal form.\n")
	fmt.Fprint(os.Stderr, "Lines of the form NAME := expr define a name; any other line is reduced.\n\n")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	noPrelude := flag.Bool("no-prelude", false, "start without the built-in definitions")
	maxSteps := flag.Uint64("max-steps", 0, "beta-reduction budget per line (0 means unbounded)")
	output := flag.String("output", "", "output format: text or json")
	logLevel := flag.String("log-level", "", "log level")
	flag.Usage = usage
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-prelude":
			cfg.Prelude = !*noPrelude
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		case "output":
			cfg.Output = *output
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.Logger()
	s, err := newSession(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to start session")
		os.Exit(1)
	}

	args := flag.Args()
	switch {
	case len(args) == 1 && args[0] == "serve":
		if err := server.New(s, logger).Listen(cfg.Server.Address); err != nil {
			logger.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		failed := run(s, cfg.Output, f, os.Stdout, "")
		f.Close()
		if failed > 0 {
			logger.Warn().Int("failed", failed).Str("file", args[0]).Msg("some lines failed")
			os.Exit(1)
		}
	case len(args) == 0:
		run(s, cfg.Output, os.Stdin, os.Stdout, prompt)
	default:
		usage()
		os.Exit(2)
	}
}

func newSession(cfg *config.Config, logger *log.Logger) (*session.Session, error) {
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithReducer(reduce.New(reduce.WithMaxSteps(cfg.MaxSteps))),
	}
	if cfg.Prelude {
		opts = append(opts, session.WithPrelude())
	}
	if cfg.Cache.Enabled {
		cache, err := session.NewCache(cfg.Cache.MaxCost)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache: %w", err)
		}
		opts = append(opts, session.WithCache(cache))
	}

	s, err := session.New(opts...)
	if err != nil {
		return nil, err
	}
	for _, path := range cfg.Definitions {
		if err := loadDefinitions(s.Environment(), path); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func loadDefinitions(e *env.Environment, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open definitions: %w", err)
	}
	defer f.Close()
	if err := env.LoadDefinitions(e, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// run evaluates every line of in and reports the number of failed lines.
// A non-empty prompt is written before each line is read.
func run(s *session.Session, format string, in io.Reader, out io.Writer, prompt string) int {
	scanner := bufio.NewScanner(in)
	failed := 0
	for {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			if prompt != "" {
				fmt.Fprintln(out)
			}
			return failed
		}

		line := scanner.Text()
		res, err := s.Eval(line)
		if errors.Is(err, session.ErrEmptyLine) {
			continue
		}
		if err != nil {
			failed++
		}
		if format == config.OutputJSON {
			writeJSON(s, out, line, res, err)
			continue
		}
		if err != nil {
			fmt.Fprintln(out, session.Diagnostic(line, err))
			continue
		}
		fmt.Fprintln(out, res.Format())
	}
}

func writeJSON(s *session.Session, out io.Writer, line string, res *session.Result, err error) {
	resp := server.EvalResponse{Session: s.ID(), Result: res}
	if err != nil {
		resp.Error = &server.ErrorResponse{
			Message:    err.Error(),
			Column:     session.Column(err),
			Diagnostic: session.Diagnostic(line, err),
		}
	} else {
		resp.Output = res.Format()
	}
	data, mErr := json.Marshal(resp)
	if mErr != nil {
		fmt.Fprintf(out, "{\"error\":{\"message\":%q}}\n", mErr.Error())
		return
	}
	fmt.Fprintln(out, string(data))
}
