package main

import "time"

// notAvailable marks a field whose source line was missing or malformed.
const notAvailable = "N/A"

// Network is one wireless network as reported by netsh.
type Network struct {
	SSID     string
	Signal   string
	Security string
	BSSID    string
	Vendor   string
}

func newNetwork(ssid string) Network {
	return Network{
		SSID:     ssid,
		Signal:   notAvailable,
		Security: notAvailable,
		BSSID:    notAvailable,
		Vendor:   notAvailable,
	}
}

// Scan is the result of a single scan command.
type Scan struct {
	ID       string
	Time     time.Time
	Networks []Network
	IP       string
}

type VendorRecord struct {
	MACPrefix string
	Vendor    string
}
