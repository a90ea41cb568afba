// Command uuidv9 generates and validates UUIDv9 identifiers.
//
//	uuidv9 generate [--prefix P] [--timestamp=false] [--time T] [--checksum] [--version] [--legacy] [-n N]
//	uuidv9 validate [--checksum] [--version] ID...
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/Lzww0608/uuidv9"
	"github.com/Lzww0608/uuidv9/internal/config"
	pkglog "github.com/Lzww0608/uuidv9/internal/log"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

const usage = `usage: uuidv9 <command> [flags]

commands:
  generate   print new identifiers
  validate   check identifiers given as arguments
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	var register func(*pflag.FlagSet)
	switch args[0] {
	case "generate":
		register = config.GenerateFlags
	case "validate":
		register = config.ValidateFlags
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return exitUsage
	}

	command := args[0]
	fs := pflag.NewFlagSet(command, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	register(fs)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(command, fs)
	if err != nil {
		l := pkglog.New(pkglog.Config{}, stderr)
		l.Error().Err(err).Msg("failed to load config")
		return exitUsage
	}
	logger := pkglog.New(cfg.Log, stderr)

	if command == "generate" {
		return generate(cfg.Generate, stdout, logger)
	}
	return validate(cfg.Validate, fs.Args(), stdout, logger)
}

func generate(cfg config.GenerateConfig, stdout io.Writer, logger zerolog.Logger) int {
	opts := cfg.Options()
	gen := uuidv9.NewGenerator()

	logger.Debug().
		Str("prefix", opts.Prefix).
		Bool("timestamp", opts.Timestamp.Enabled()).
		Bool("checksum", opts.Checksum).
		Bool("version", opts.Version).
		Bool("legacy", opts.Legacy).
		Int("count", cfg.Count).
		Msg("generating ids")

	for i := 0; i < cfg.Count; i++ {
		id, err := gen.Generate(opts)
		if err != nil {
			logger.Error().Err(err).Msg("failed to generate id")
			if errors.Is(err, uuidv9.ErrInvalidPrefix) || errors.Is(err, uuidv9.ErrInvalidTimestamp) {
				return exitUsage
			}
			return exitInvalid
		}
		fmt.Fprintln(stdout, id)
	}
	return exitOK
}

func validate(cfg config.ValidateConfig, ids []string, stdout io.Writer, logger zerolog.Logger) int {
	if len(ids) == 0 {
		logger.Error().Msg("validate needs at least one id")
		return exitUsage
	}

	opts := cfg.Options()
	code := exitOK
	for _, id := range ids {
		status := "valid"
		if !uuidv9.IsValid(id, opts) {
			status = "invalid"
			code = exitInvalid
			logger.Debug().Str("id", id).Bool("checksum", opts.Checksum).Bool("version", opts.Version).Msg("id rejected")
		}
		fmt.Fprintf(stdout, "%s\t%s\n", id, status)
	}
	return code
}
