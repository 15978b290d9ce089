package main

import (
	"context"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type config struct {
	vendorFile string
	ieee       bool
	colorMode  string
	dsn        string
	timeout    time.Duration
	debug      bool
}

var cfg config

var rootCmd = &cobra.Command{
	Use:          "wifi-beamerr",
	Short:        "Interactive Wi-Fi scanner for Windows hosts",
	Long:         "Lists visible Wi-Fi networks, reveals saved profile keys and shows the host IPv4 address using netsh and ipconfig.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cfg)
	},
}

func init() {
	// .env is optional; DB may still come from the real environment.
	_ = godotenv.Load()

	rootCmd.Flags().StringVar(&cfg.vendorFile, "vendors", "", "extra vendors in nmap file format (MACPREFIX <TAB> VENDOR)")
	rootCmd.Flags().BoolVar(&cfg.ieee, "ieee", false, "fall back to the IEEE OUI registry for unknown prefixes")
	rootCmd.Flags().StringVar(&cfg.colorMode, "color", "auto", "colored output: auto, on or off")
	rootCmd.Flags().StringVar(&cfg.dsn, "db", os.Getenv("DB"), "postgres connection string for scan history (disabled when empty)")
	rootCmd.Flags().DurationVar(&cfg.timeout, "timeout", 0, "limit for each netsh/ipconfig call (0 waits forever)")
	rootCmd.Flags().BoolVar(&cfg.debug, "debug", false, "print debug log")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	console, err := newConsole(color.Output, cfg.colorMode, cfg.debug)
	if err != nil {
		return err
	}

	records := []VendorRecord{}
	if cfg.vendorFile != "" {
		records, err = readVendors(cfg.vendorFile)
		if err != nil {
			return err
		}
	}
	vendors := NewVendorTable(records, cfg.ieee)
	console.Debugf("loaded %d vendor prefixes (ieee fallback: %v)", vendors.Len(), cfg.ieee)

	var recorder Recorder = nopRecorder{}
	if cfg.dsn != "" {
		var conn *pgx.Conn
		conn, recorder, err = connectHistory(ctx, cfg.dsn)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)
		console.Debugf("recording scan history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          console.Prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	runner := execRunner{timeout: cfg.timeout}
	shell := NewShell(rl, console,
		NewScanner(runner, vendors),
		NewPasswordRetriever(runner),
		NewIPResolver(runner),
		recorder,
	)

	console.Banner()
	return shell.Run(ctx)
}
