package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

const banner = `
██╗    ██╗██╗███████╗██╗    ███████╗ ██████╗ █████╗ ███╗   ██╗
██║    ██║██║██╔════╝██║    ██╔════╝██╔════╝██╔══██╗████╗  ██║
██║ █╗ ██║██║█████╗  ██║    ███████╗██║     ███████║██╔██╗ ██║
██║███╗██║██║██╔══╝  ██║    ╚════██║██║     ██╔══██║██║╚██╗██║
╚███╔███╔╝██║██║     ██║    ███████║╚██████╗██║  ██║██║ ╚████║
 ╚══╝╚══╝ ╚═╝╚═╝     ╚═╝    ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝
`

// console owns every write to the terminal. Colors are decided once when
// it is built.
type console struct {
	out     io.Writer
	colored bool
	debug   bool

	info  *color.Color
	warn  *color.Color
	fail  *color.Color
	trace *color.Color
}

// newConsole builds a console for mode "auto", "on" or "off".
func newConsole(out io.Writer, mode string, debug bool) (*console, error) {
	c := &console{
		out:   out,
		debug: debug,
		info:  color.New(color.FgBlue),
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed),
		trace: color.New(color.FgGreen),
	}

	switch strings.ToLower(mode) {
	case "auto", "":
		c.colored = !color.NoColor
	case "on":
		c.colored = true
	case "off":
		c.colored = false
	default:
		return nil, errors.Errorf("invalid color mode %q, use auto, on or off", mode)
	}

	for _, col := range []*color.Color{c.info, c.warn, c.fail, c.trace} {
		if c.colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c, nil
}

func (c *console) Infof(format string, a ...interface{}) {
	c.info.Fprintf(c.out, format+"\n", a...)
}

func (c *console) Warnf(format string, a ...interface{}) {
	c.warn.Fprintf(c.out, format+"\n", a...)
}

func (c *console) Errorf(format string, a ...interface{}) {
	c.fail.Fprintf(c.out, format+"\n", a...)
}

func (c *console) Debugf(format string, a ...interface{}) {
	if c.debug {
		c.trace.Fprintf(c.out, format+"\n", a...)
	}
}

func (c *console) Banner() {
	c.info.Fprint(c.out, banner)
	c.info.Fprintln(c.out, "Created by DR4C0")
	fmt.Fprintln(c.out)
}

// Prompt is the shell prompt, colored like the rest of the output.
func (c *console) Prompt() string {
	return c.info.Sprint("Enter command (scan/password/exit): ")
}

// Report prints the scan table followed by the host address.
func (c *console) Report(networks []Network, ip string) {
	c.Infof("\nWiFi Scanner Results:")

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"SSID", "Signal", "Security", "BSSID", "Manufacturer"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	if c.colored {
		blue := tablewriter.Colors{tablewriter.FgBlueColor}
		bold := tablewriter.Colors{tablewriter.Bold, tablewriter.FgBlueColor}
		table.SetHeaderColor(bold, bold, bold, bold, bold)
		table.SetColumnColor(blue, blue, blue, blue, blue)
	}
	for _, n := range networks {
		table.Append([]string{n.SSID, n.Signal, n.Security, n.BSSID, n.Vendor})
	}
	table.Render()

	fmt.Fprintln(c.out)
	c.Infof("Current Device IP Address: %s", ip)
}
