// Package shell runs command lines through sh or su.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// CommandResult is the outcome of ExecCmd.
type CommandResult struct {
	// Result is the exit code of the shell, or -1 if it did not run to completion.
	Result     int
	SuccessMsg string
	ErrorMsg   string
}

// Exec runs a single command line and collects its output.
func Exec(ctx context.Context, command string, isRoot bool) (CommandResult, error) {
	return ExecCmd(ctx, []string{command}, isRoot, true)
}

// ExecCmd starts sh, or su when isRoot is set, writes each command on its
// own line followed by "exit" and waits for the shell to finish. With
// needResultMsg the lines printed on stdout and stderr are returned joined
// by newlines.
//
// A non-zero exit code is reported through Result, not as an error.
func ExecCmd(ctx context.Context, commands []string, isRoot, needResultMsg bool) (CommandResult, error) {
	res := CommandResult{Result: -1}
	if len(commands) == 0 {
		return res, nil
	}

	name := "sh"
	if isRoot {
		name = "su"
	}
	cmd := exec.CommandContext(ctx, name)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return res, fmt.Errorf("shell: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return res, fmt.Errorf("shell: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return res, fmt.Errorf("shell: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return res, fmt.Errorf("shell: start %s: %w", name, err)
	}

	var outLines, errLines []string
	var g errgroup.Group
	g.Go(func() error {
		defer stdin.Close()
		return writeScript(stdin, commands)
	})
	g.Go(func() (err error) {
		outLines, err = drain(stdout, needResultMsg)
		return err
	})
	g.Go(func() (err error) {
		errLines, err = drain(stderr, needResultMsg)
		return err
	})
	ioErr := g.Wait()
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return res, fmt.Errorf("shell: %w", ctx.Err())
	}
	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		res.Result = 0
	case errors.As(waitErr, &exitErr):
		res.Result = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("shell: wait %s: %w", name, waitErr)
	}
	if ioErr != nil {
		return res, fmt.Errorf("shell: %w", ioErr)
	}

	if needResultMsg {
		res.SuccessMsg = strings.Join(outLines, "\n")
		res.ErrorMsg = strings.Join(errLines, "\n")
	}
	return res, nil
}

func writeScript(w io.Writer, commands []string) error {
	bw := bufio.NewWriter(w)
	for _, c := range commands {
		bw.WriteString(c)
		bw.WriteByte('\n')
	}
	bw.WriteString("exit\n")
	err := bw.Flush()
	// The shell may exit before reading everything.
	if errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}

func drain(r io.Reader, keep bool) ([]string, error) {
	if !keep {
		_, err := io.Copy(io.Discard, r)
		return nil, err
	}
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
