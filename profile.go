package main

import (
	"context"
	"regexp"
	"strings"
)

const profileNotFound = "Profile not found"

var (
	keyContentRe  = regexp.MustCompile(`Key Content\s+:\s+(.+)`)
	ipv4AddressRe = regexp.MustCompile(`IPv4 Address[\. ]+: (\d+\.\d+\.\d+\.\d+)`)
)

// PasswordRetriever reads stored Wi-Fi keys from saved WLAN profiles.
type PasswordRetriever struct {
	runner Runner
}

func NewPasswordRetriever(runner Runner) *PasswordRetriever {
	return &PasswordRetriever{runner: runner}
}

// Password returns the clear-text key of the named profile, "N/A" when the
// profile holds no key and "Profile not found" when netsh rejects the name.
func (p *PasswordRetriever) Password(ctx context.Context, ssid string) string {
	out, err := p.runner.Run(ctx, "netsh", "wlan", "show", "profile", "name="+ssid, "key=clear")
	if err != nil {
		return profileNotFound
	}
	return firstMatch(keyContentRe, out)
}

// IPResolver finds the host's IPv4 address in ipconfig output.
type IPResolver struct {
	runner Runner
}

func NewIPResolver(runner Runner) *IPResolver {
	return &IPResolver{runner: runner}
}

func (r *IPResolver) Address(ctx context.Context) string {
	out, err := r.runner.Run(ctx, "ipconfig")
	if err != nil {
		return notAvailable
	}
	return firstMatch(ipv4AddressRe, out)
}

func firstMatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return notAvailable
	}
	return strings.TrimRight(m[1], "\r")
}
