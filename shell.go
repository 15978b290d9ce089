package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
)

// LineReader supplies one line of user input per call.
type LineReader interface {
	Readline() (string, error)
}

// Shell is the interactive scan/password/exit loop.
type Shell struct {
	in        LineReader
	console   *console
	scanner   *Scanner
	passwords *PasswordRetriever
	resolver  *IPResolver
	recorder  Recorder
	now       func() time.Time
}

func NewShell(in LineReader, c *console, scanner *Scanner, passwords *PasswordRetriever, resolver *IPResolver, recorder Recorder) *Shell {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Shell{
		in:        in,
		console:   c,
		scanner:   scanner,
		passwords: passwords,
		resolver:  resolver,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Run reads commands until exit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	for {
		line, err := s.in.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			s.Execute(ctx, "exit")
			return nil
		}
		if err != nil {
			return err
		}

		if !s.Execute(ctx, line) {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the shell keeps
// running afterwards. The whole line is case-folded before dispatch.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch {
	case cmd == "scan":
		s.scan(ctx)
	case strings.HasPrefix(cmd, "password"):
		fields := strings.Fields(cmd)
		if len(fields) < 2 {
			s.console.Infof("Please provide an SSID after 'password'.")
			break
		}
		ssid := strings.Join(fields[1:], " ")
		s.console.Infof("\nPassword for '%s': %s", ssid, s.passwords.Password(ctx, ssid))
	case cmd == "exit":
		s.console.Infof("Exiting...")
		return false
	default:
		s.console.Infof("Invalid command. Use 'scan', 'password', or 'exit'.")
	}
	return true
}

func (s *Shell) scan(ctx context.Context) {
	networks, err := s.scanner.Scan(ctx)
	if err != nil {
		s.console.Errorf("Error scanning WiFi: %v", err)
	}
	ip := s.resolver.Address(ctx)

	s.console.Report(networks, ip)
	s.console.Debugf("scan found %d networks", len(networks))

	id, err := newScanID()
	if err != nil {
		s.console.Warnf("history: %v", err)
		return
	}
	scan := Scan{ID: id, Time: s.now(), Networks: networks, IP: ip}
	if err := s.recorder.Record(ctx, scan); err != nil {
		s.console.Warnf("history: %v", err)
	}
}
