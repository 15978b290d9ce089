package main

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type runResult struct {
	out string
	err error
}

// fakeRunner answers commands from a table keyed by the full command line.
// Unknown commands fail like a missing executable.
type fakeRunner struct {
	results map[string]runResult
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	r, ok := f.results[cmdline]
	if !ok {
		return "", errors.Errorf("%s: executable file not found", name)
	}
	return r.out, r.err
}

// scriptReader replays lines and then reports end of input.
type scriptReader struct {
	lines []string
}

func (s *scriptReader) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

const (
	networksCmd = "netsh wlan show networks mode=BSSID"
	ipconfigCmd = "ipconfig"
)

func profileCmd(ssid string) string {
	return "netsh wlan show profile name=" + ssid + " key=clear"
}
