package main

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/google/gopacket/macs"
	"github.com/pkg/errors"
)

const unknownVendor = "Unknown"

var defaultVendors = map[string]string{
	"00:14:22": "Microsoft",
	"00:19:5B": "Apple",
	"00:0D:B9": "Intel",
	"00:1B:44": "Cisco",
	"00:0F:44": "Dell",
	"00:14:6F": "HP",
	"00:24:1D": "Lenovo",
	"00:17:31": "Netgear",
	"00:01:6C": "Linksys",
	"00:0E:84": "Samsung",
}

// VendorTable maps an OUI ("AA:BB:CC") to a manufacturer name.
// It is filled once at startup and only read afterwards.
type VendorTable struct {
	prefixes map[string]string
	ieee     bool
}

// NewVendorTable returns a table holding the built-in prefixes plus records.
// Records override built-in entries with the same prefix. With ieee set,
// prefixes missing from the table are resolved against the IEEE registry.
func NewVendorTable(records []VendorRecord, ieee bool) *VendorTable {
	t := &VendorTable{
		prefixes: make(map[string]string, len(defaultVendors)+len(records)),
		ieee:     ieee,
	}
	for prefix, vendor := range defaultVendors {
		t.prefixes[prefix] = vendor
	}
	for _, r := range records {
		t.prefixes[r.MACPrefix] = r.Vendor
	}
	return t
}

// Lookup returns the vendor for a BSSID, "N/A" for the N/A sentinel and
// "Unknown" when the prefix is not known.
func (t *VendorTable) Lookup(bssid string) string {
	if bssid == notAvailable {
		return notAvailable
	}

	groups := strings.Split(bssid, ":")
	if len(groups) > 3 {
		groups = groups[:3]
	}
	key := strings.ToUpper(strings.Join(groups, ":"))

	if vendor, ok := t.prefixes[key]; ok {
		return vendor
	}
	if t.ieee && len(groups) == 3 {
		if vendor, ok := ieeeVendor(key); ok {
			return vendor
		}
	}
	return unknownVendor
}

func (t *VendorTable) Len() int {
	return len(t.prefixes)
}

func ieeeVendor(key string) (string, bool) {
	raw, err := hex.DecodeString(strings.ReplaceAll(key, ":", ""))
	if err != nil || len(raw) != 3 {
		return "", false
	}
	var oui [3]byte
	copy(oui[:], raw)
	vendor, ok := macs.ValidMACPrefixMap[oui]
	return vendor, ok
}

// readVendors reads a vendor list in nmap format (MACPREFIX <space|tab> VENDOR).
func readVendors(file string) ([]VendorRecord, error) {
	fh, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "open vendor file %s", file)
	}
	defer fh.Close()

	return parseVendors(fh)
}

func parseVendors(r io.Reader) ([]VendorRecord, error) {
	vendors := []VendorRecord{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		prefix, ok := formatPrefix(fields[0])
		if !ok {
			continue
		}

		vendors = append(vendors, VendorRecord{
			MACPrefix: prefix,
			Vendor:    strings.Join(fields[1:], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read vendor list")
	}

	return vendors, nil
}

// formatPrefix turns "0019e3", "00:19:E3" or "00-19-e3" into "00:19:E3".
func formatPrefix(s string) (string, bool) {
	s = strings.NewReplacer(":", "", "-", "").Replace(s)
	if len(s) != 6 {
		return "", false
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", false
	}
	s = strings.ToUpper(s)
	return s[0:2] + ":" + s[2:4] + ":" + s[4:6], true
}
