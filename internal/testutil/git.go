package testutil

import (
	"fmt"

	"vshare/internal/share"
)

// GitCall records one invocation of the stub git runner.
type GitCall struct {
	Op  string // "add" or "commit"
	Arg string // path for add, message for commit
}

// StubGit is an in-memory share.Git that records calls and can be told
// to fail specific operations.
type StubGit struct {
	Calls []GitCall

	// FailAdd / FailCommit make the corresponding operation return an
	// error (the call is still recorded).
	FailAdd    bool
	FailCommit bool
}

func NewStubGit() *StubGit {
	return &StubGit{}
}

func (g *StubGit) Add(path string) (string, error) {
	g.Calls = append(g.Calls, GitCall{Op: "add", Arg: path})
	if g.FailAdd {
		return "", fmt.Errorf("git add: exit status 128: not a git repository")
	}
	return "", nil
}

func (g *StubGit) Commit(message string) (string, error) {
	g.Calls = append(g.Calls, GitCall{Op: "commit", Arg: message})
	if g.FailCommit {
		return "", fmt.Errorf("git commit: exit status 1: nothing to commit")
	}
	return "[main abc1234] " + message, nil
}

// Compile-time check
var _ share.Git = (*StubGit)(nil)
