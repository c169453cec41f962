// Package gitcmd invokes the command-line git executable. Using the
// git binary rather than a Go Git library keeps the tool compatible
// with whatever repository configuration (LFS filters, hooks, custom
// remotes) the share repository already carries.
package gitcmd

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Executor runs an external command in a working directory and returns
// its captured standard output and standard error.
type Executor interface {
	Run(dir, name string, args ...string) (stdout, stderr string, err error)
}

// OSExecutor runs commands with os/exec.
type OSExecutor struct{}

func (OSExecutor) Run(dir, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Runner performs git operations against a repository working tree.
type Runner struct {
	dir    string
	binary string
	exec   Executor
}

// NewRunner creates a Runner for the repository at dir using the given
// git binary (empty means "git" from PATH).
func NewRunner(dir, binary string) *Runner {
	return NewRunnerWithExecutor(dir, binary, OSExecutor{})
}

// NewRunnerWithExecutor creates a Runner with a custom Executor.
// Tests use this to avoid requiring a git installation.
func NewRunnerWithExecutor(dir, binary string, exec Executor) *Runner {
	if binary == "" {
		binary = "git"
	}
	return &Runner{dir: dir, binary: binary, exec: exec}
}

// Add stages a file.
func (r *Runner) Add(path string) (string, error) {
	return r.run("add", path)
}

// Commit records a commit with the given message.
func (r *Runner) Commit(message string) (string, error) {
	return r.run("commit", "-m", message)
}

// run executes one git invocation. On a non-zero exit status it
// returns an empty output and an error carrying the captured stderr.
func (r *Runner) run(args ...string) (string, error) {
	stdout, stderr, err := r.exec.Run(r.dir, r.binary, args...)
	if err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = strings.TrimSpace(stdout)
		}
		if detail != "" {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, detail)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(stdout), nil
}
