package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"utilcode/internal/convert"
	"utilcode/internal/reflectutil"
	"utilcode/internal/shell"
	"utilcode/internal/types"
)

const version = "0.1.0"

// stdin is read when a command gets no input argument and stdin is not a terminal.
var stdin io.Reader = os.Stdin

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "hex":
		return cmdHex(rest, out)
	case "unhex":
		return cmdUnhex(rest, out)
	case "bits":
		return cmdBits(rest, out)
	case "unbits":
		return cmdUnbits(rest, out)
	case "memsize":
		return cmdMemsize(rest, out)
	case "timespan":
		return cmdTimespan(rest, out)
	case "date":
		return cmdDate(rest, out)
	case "call":
		return cmdCall(rest, out)
	case "sh":
		return cmdShell(ctx, rest, out)
	case "types":
		return cmdTypes(out)
	case "help", "-h", "--help":
		usage(out)
		return nil
	case "version", "-v", "--version":
		fmt.Fprintln(out, "utilcode", version)
		return nil
	default:
		usage(out)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `utilcode conversion and reflection toolkit

Usage:
  utilcode hex [text]                 Print the bytes of text as hex
  utilcode unhex [hex]                Decode hex and print the bytes as text
  utilcode bits [text]                Print the bytes of text as binary digits
  utilcode unbits [bits]              Decode binary digits and print the bytes as text
  utilcode memsize <bytes|size>       Print a size in fitted and IEC units
  utilcode timespan [-p n] <millis>   Print a duration in days..milliseconds
  utilcode date [-f fmt] <millis>     Format Unix milliseconds with a strftime pattern
  utilcode date -parse [-f fmt] <s>   Parse a date into Unix milliseconds
  utilcode call <type> <method> [args...]
                                      Call a static method of a registered type
  utilcode sh [-root] [-quiet] <command>...
                                      Run commands through sh (or su)
  utilcode types                      List registered types

Commands read their input from stdin when no argument is given and stdin is
not a terminal.`)
}

// input returns the joined arguments, or stdin when there are none.
func input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "", fmt.Errorf("missing input")
	}
	b, err := convert.InputStream2Bytes(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

func cmdHex(args []string, out io.Writer) error {
	s, err := input(args)
	if err != nil {
		return fmt.Errorf("hex: %w", err)
	}
	fmt.Fprintln(out, convert.Bytes2HexString([]byte(s)))
	return nil
}

func cmdUnhex(args []string, out io.Writer) error {
	s, err := input(args)
	if err != nil {
		return fmt.Errorf("unhex: %w", err)
	}
	b, err := convert.HexString2Bytes(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(b))
	return nil
}

func cmdBits(args []string, out io.Writer) error {
	s, err := input(args)
	if err != nil {
		return fmt.Errorf("bits: %w", err)
	}
	fmt.Fprintln(out, convert.Bytes2Bits([]byte(s)))
	return nil
}

func cmdUnbits(args []string, out io.Writer) error {
	s, err := input(args)
	if err != nil {
		return fmt.Errorf("unbits: %w", err)
	}
	b, err := convert.Bits2Bytes(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(b))
	return nil
}

func cmdMemsize(args []string, out io.Writer) error {
	s, err := input(args)
	if err != nil {
		return fmt.Errorf("memsize: %w", err)
	}
	n, err := convert.ParseMemorySize(s)
	if err != nil {
		return fmt.Errorf("memsize: %w", err)
	}
	fmt.Fprintf(out, "%d bytes\t%s\t%s\n", n, convert.Byte2FitMemorySize(int64(n)), convert.Byte2IECSize(n))
	return nil
}

func cmdTimespan(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("timespan", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	precision := fs.Int("p", 5, "number of units, largest first (1-5)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := input(fs.Args())
	if err != nil {
		return fmt.Errorf("timespan: %w", err)
	}
	millis, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("timespan: invalid milliseconds %q", s)
	}
	fmt.Fprintln(out, convert.Millis2FitTimeSpan(millis, *precision))
	return nil
}

func cmdDate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("date", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	pattern := fs.String("f", convert.DefaultTimePattern, "strftime pattern")
	parse := fs.Bool("parse", false, "parse a date instead of formatting milliseconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := input(fs.Args())
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if *parse {
		millis, err := convert.String2Millis(s, *pattern)
		if err != nil {
			return fmt.Errorf("date: %w", err)
		}
		fmt.Fprintln(out, millis)
		return nil
	}
	millis, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("date: invalid milliseconds %q", s)
	}
	fmt.Fprintln(out, convert.Millis2String(millis, *pattern))
	return nil
}

// cmdCall invokes a static method. Arguments that parse as integers are
// passed as int, "true"/"false" as bool, "null" as no value and
// everything else as a string.
func cmdCall(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("call: usage: call <type> <method> [args...]")
	}
	h, err := reflectutil.ReflectByName(args[0])
	if err != nil {
		return fmt.Errorf("call: %w", err)
	}
	callArgs := make([]any, 0, len(args)-2)
	for _, a := range args[2:] {
		callArgs = append(callArgs, parseArg(a))
	}
	res, err := h.Method(args[1], callArgs...)
	if err != nil {
		return fmt.Errorf("call: %w", err)
	}
	fmt.Fprintln(out, res.String())
	return nil
}

func parseArg(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	return s
}

func cmdShell(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sh", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	root := fs.Bool("root", false, "run through su")
	quiet := fs.Bool("quiet", false, "do not collect output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("sh: missing command")
	}

	res, err := shell.ExecCmd(ctx, fs.Args(), *root, !*quiet)
	if err != nil {
		return err
	}
	if res.SuccessMsg != "" {
		fmt.Fprintln(out, res.SuccessMsg)
	}
	if res.ErrorMsg != "" {
		fmt.Fprintln(os.Stderr, res.ErrorMsg)
	}
	if res.Result != 0 {
		return fmt.Errorf("sh: exit status %d", res.Result)
	}
	return nil
}

func cmdTypes(out io.Writer) error {
	for _, t := range types.All() {
		kind := "class"
		switch {
		case t.Primitive:
			kind = "primitive"
		case t.Super != nil:
			kind = "extends " + t.Super.Name
		}
		fmt.Fprintf(out, "%-16s %-24s %d constructors, %d methods, %d fields\n",
			t.Name, kind, len(t.Constructors), len(t.Methods), len(t.Fields))
	}
	return nil
}
