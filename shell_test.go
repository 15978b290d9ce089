package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecorder struct {
	scans []Scan
	err   error
}

func (m *memRecorder) Record(_ context.Context, scan Scan) error {
	m.scans = append(m.scans, scan)
	return m.err
}

func newTestShell(t *testing.T, runner *fakeRunner, rec Recorder, lines ...string) (*Shell, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	c, err := newConsole(&out, "off", false)
	require.NoError(t, err)

	sh := NewShell(&scriptReader{lines: lines}, c,
		NewScanner(runner, NewVendorTable(nil, false)),
		NewPasswordRetriever(runner),
		NewIPResolver(runner),
		rec,
	)
	sh.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return sh, &out
}

func TestExecute(t *testing.T) {
	runner := &fakeRunner{results: map[string]runResult{
		profileCmd("homenet"):     {out: "    Key Content            : hunter2\n"},
		profileCmd("my home net"): {out: "    Key Content            : swordfish\n"},
		profileCmd("foo"):         {out: "    Key Content            : bar\n"},
	}}

	tests := []struct {
		line    string
		running bool
		want    string
	}{
		{"password", true, "Please provide an SSID after 'password'."},
		{"  PASSWORD  ", true, "Please provide an SSID after 'password'."},
		// the name is folded along with the rest of the line
		{"password HomeNet", true, "Password for 'homenet': hunter2"},
		{"PASSWORD   My  Home Net ", true, "Password for 'my home net': swordfish"},
		{"password Missing", true, "Password for 'missing': Profile not found"},
		// anything starting with "password" counts
		{"passwordx foo", true, "Password for 'foo': bar"},
		{"passwordx", true, "Please provide an SSID after 'password'."},
		{"hello", true, "Invalid command. Use 'scan', 'password', or 'exit'."},
		{"", true, "Invalid command."},
		{"scan now", true, "Invalid command."},
		{"exit", false, "Exiting..."},
		{"EXIT", false, "Exiting..."},
		{"  Exit ", false, "Exiting..."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			sh, out := newTestShell(t, runner, nil)
			assert.Equal(t, tt.running, sh.Execute(context.Background(), tt.line))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunStopsOnExit(t *testing.T) {
	runner := &fakeRunner{}
	sh, out := newTestShell(t, runner, nil, "password", "bogus", "EXIT", "scan")

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Please provide an SSID")
	assert.Contains(t, out.String(), "Invalid command")
	assert.Contains(t, out.String(), "Exiting...")
	// scan after exit never runs
	assert.Empty(t, runner.calls)
}

func TestRunStopsOnEOF(t *testing.T) {
	sh, out := newTestShell(t, &fakeRunner{}, nil)

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Exiting...")
}

type interruptReader struct {
	scriptReader
	interrupted bool
}

func (r *interruptReader) Readline() (string, error) {
	if !r.interrupted {
		r.interrupted = true
		return "", readline.ErrInterrupt
	}
	return r.scriptReader.Readline()
}

func TestRunSurvivesInterrupt(t *testing.T) {
	sh, out := newTestShell(t, &fakeRunner{}, nil)
	sh.in = &interruptReader{scriptReader: scriptReader{lines: []string{"exit"}}}

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Exiting...")
}

func TestRunReturnsReadError(t *testing.T) {
	sh, _ := newTestShell(t, &fakeRunner{}, nil)
	sh.in = errReader{}

	assert.EqualError(t, sh.Run(context.Background()), "terminal gone")
}

type errReader struct{}

func (errReader) Readline() (string, error) { return "", errors.New("terminal gone") }

func TestScanCommand(t *testing.T) {
	runner := &fakeRunner{results: map[string]runResult{
		networksCmd: {out: "SSID 1 : HomeNet\n" +
			"    BSSID 1 : 00:19:5B:aa:bb:cc\n" +
			"    Authentication : WPA2-Personal\n" +
			"SSID 2 : Guest\n"},
		ipconfigCmd: {out: "   IPv4 Address. . . . . . . . . . . : 192.168.1.42\n"},
	}}
	rec := &memRecorder{}
	sh, out := newTestShell(t, runner, rec)

	assert.True(t, sh.Execute(context.Background(), "Scan"))

	text := out.String()
	assert.Contains(t, text, "WiFi Scanner Results:")
	assert.Contains(t, text, "HomeNet")
	assert.Contains(t, text, "00:19:5B:aa:bb:cc")
	assert.Contains(t, text, "Apple")
	assert.Contains(t, text, "Guest")
	assert.Contains(t, text, "Current Device IP Address: 192.168.1.42")

	require.Len(t, rec.scans, 1)
	scan := rec.scans[0]
	assert.NotEmpty(t, scan.ID)
	assert.Equal(t, "192.168.1.42", scan.IP)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), scan.Time)
	assert.Len(t, scan.Networks, 2)
}

func TestScanCommandFailure(t *testing.T) {
	runner := &fakeRunner{results: map[string]runResult{
		networksCmd: {err: errors.New("netsh wlan show networks mode=BSSID: exit status 1")},
	}}
	rec := &memRecorder{err: errors.New("connection refused")}
	sh, out := newTestShell(t, runner, rec)

	assert.True(t, sh.Execute(context.Background(), "scan"))

	text := out.String()
	assert.Contains(t, text, "Error scanning WiFi: netsh wlan show networks mode=BSSID: exit status 1")
	assert.Contains(t, text, "Current Device IP Address: N/A")
	assert.Contains(t, text, "history: connection refused")
}
