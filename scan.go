package main

import (
	"bufio"
	"context"
	"strings"
)

// Labels of `netsh wlan show networks mode=BSSID`. Detail labels are matched
// on the raw line so their indentation keeps them apart from the SSID header.
const (
	ssidLabel   = "SSID "
	bssidLabel  = "    BSSID "
	signalLabel = "    Signal : "
	authLabel   = "    Authentication : "
)

// Scanner lists the wireless networks visible to the host.
type Scanner struct {
	runner  Runner
	vendors *VendorTable
}

func NewScanner(runner Runner, vendors *VendorTable) *Scanner {
	return &Scanner{runner: runner, vendors: vendors}
}

// Scan returns the visible networks in the order netsh lists them.
// On failure it returns an empty slice together with the error.
func (s *Scanner) Scan(ctx context.Context) ([]Network, error) {
	out, err := s.runner.Run(ctx, "netsh", "wlan", "show", "networks", "mode=BSSID")
	if err != nil {
		return []Network{}, err
	}
	return parseNetworks(out, s.vendors), nil
}

// parseNetworks groups detail lines under the preceding SSID header. Several
// BSSID blocks under one SSID overwrite each other, so each SSID yields one
// record carrying the details of its last access point.
func parseNetworks(output string, vendors *VendorTable) []Network {
	networks := []Network{}
	var current *Network

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		raw := strings.TrimRight(scanner.Text(), "\r")
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, ssidLabel):
			if current != nil {
				networks = append(networks, *current)
			}
			n := newNetwork(fieldAfter(line, 1))
			current = &n
		case current == nil:
			// details before the first header
		case strings.HasPrefix(raw, bssidLabel):
			current.BSSID = fieldAfter(raw, 1)
			current.Vendor = vendors.Lookup(current.BSSID)
		case strings.HasPrefix(raw, signalLabel):
			current.Signal = fieldAfter(raw, 2)
		case strings.HasPrefix(raw, authLabel):
			current.Security = fieldAfter(raw, 1)
		}
	}
	if current != nil {
		networks = append(networks, *current)
	}

	return networks
}
