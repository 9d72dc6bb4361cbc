package cli

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"hexdump/dump"
	"hexdump/ui"
)

const (
	Program = "hexdump"
	Version = "0.3.0"
)

type (
	Args struct {
		Offset      int64  `arg:"-o" help:"byte offset at which to begin reading" placeholder:"INT"`
		Limit       int64  `arg:"-n" help:"number of bytes to read, -1 for all" placeholder:"INT"`
		Width       int    `arg:"-l" help:"bytes per line in output" placeholder:"INT"`
		Interactive bool   `arg:"-i" help:"browse the output in a pager"`
		File        string `arg:"positional" help:"file to dump (default: stdin)" placeholder:"FILE"`
	}
)

func DefaultArgs() Args {
	cfg := dump.DefaultConfig()
	return Args{
		Offset: cfg.Offset,
		Limit:  cfg.Limit,
		Width:  cfg.Width,
	}
}

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Dump bytes from a file or standard input as an offset column,",
			"a grid of hex bytes and their printable ASCII characters.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (Args) Version() string {
	return Program + " " + Version
}

func (r Args) Config() dump.Config {
	return dump.Config{
		Offset: r.Offset,
		Limit:  r.Limit,
		Width:  r.Width,
		Path:   r.File,
	}
}

func NewParser(args *Args) (*arg.Parser, error) {
	return arg.NewParser(arg.Config{Program: Program}, args)
}

func isShortCircuitFlag(s string) bool {
	return lo.Contains([]string{"--help", "-h", "--version"}, s)
}

func readsStdin(path string) bool {
	return path == "" || path == "-"
}

// Parse turns argv into a validated configuration. Help and version requests
// anywhere in argv take precedence over everything else and are returned as
// arg.ErrHelp and arg.ErrVersion.
func Parse(parser *arg.Parser, args *Args, argv []string) (dump.Config, bool, error) {
	if flag, ok := lo.Find(argv, isShortCircuitFlag); ok {
		return dump.Config{}, false, lo.Ternary(flag == "--version", arg.ErrVersion, arg.ErrHelp)
	}
	if err := parser.Parse(argv); err != nil {
		return dump.Config{}, false, dump.NewError(dump.KindInvalidArgument, err)
	}
	cfg := args.Config()
	if err := cfg.Validate(); err != nil {
		return dump.Config{}, false, err
	}
	return cfg, args.Interactive, nil
}

func StartInteractive(cfg dump.Config, stdin io.Reader) error {
	buf := bytes.Buffer{}
	if err := dump.Run(cfg, stdin, &buf); err != nil {
		return err
	}
	lines := make([]string, 0)
	if buf.Len() > 0 {
		lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	}
	title := lo.Ternary(readsStdin(cfg.Path), "stdin", cfg.Path)
	return ui.Start(title, lines, readsStdin(cfg.Path))
}

// Run is the whole program behind main. It returns the process exit status:
// 0 on success or after printing help or version, 1 on any error.
func Run(argv []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, Program+": ", 0)

	args := DefaultArgs()
	parser, err := NewParser(&args)
	if err != nil {
		logger.Println(err)
		return 1
	}

	cfg, interactive, err := Parse(parser, &args, argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		return 0
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, Version)
		return 0
	case err != nil:
		logger.Println(err)
		parser.WriteUsage(stderr)
		return 1
	}

	if interactive {
		err = StartInteractive(cfg, stdin)
	} else {
		err = dump.Run(cfg, stdin, stdout)
	}
	if err != nil {
		logger.Println(err)
		return 1
	}
	return 0
}

func Start() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
