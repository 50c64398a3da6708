package commands

import (
	"context"
	"fmt"
	"kinnosuke/cmd/kinnosuke-cli/globals"
	"kinnosuke/lib/configutil"
	"kinnosuke/lib/restyutil"
	"kinnosuke/lib/scrapers/kinnosuke"
	"kinnosuke/lib/serviceutil"
	"kinnosuke/lib/telemetry"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type Config struct {
	CompanyId        string `json:"company_id"`
	LoginId          string `json:"login_id"`
	Password         string `json:"password"`
	BaseUrl          string `json:"base_url"`
	TimeoutMs        int    `json:"timeout_ms"`
	CloudflareBypass bool   `json:"cloudflare_bypass"`
	DumpHttp         string `json:"dump_http"`
}

var (
	configPath string
	debug      bool
	flags      Config
	tel        telemetry.Telemetry
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "kinnosuke.json5", "The json5 config file holding credentials.")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging.")
	pf.StringVar(&flags.BaseUrl, "base-url", "", "Override the portal base url.")
	pf.IntVar(&flags.TimeoutMs, "timeout", 0, "Override the request timeout in milliseconds.")
	pf.StringVar(&flags.DumpHttp, "dump-http", "", "Write every request/response pair into this directory (requires --debug).")
}

var rootCmd = &cobra.Command{
	Use:   "kinnosuke-cli",
	Short: "kinnosuke-cli clocks in and out of the kinnosuke attendance portal.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(debug)

		var err error
		tel, err = telemetry.SetupFromEnv(cmd.Context(), "kinnosuke-cli")
		if err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to setup telemetry", "err", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			fatal("failed to read config", err)
		}
		client, err := newClient(cfg)
		if err != nil {
			fatal("failed to initialize client", err)
		}
		cmd.SetContext(globals.Set(cmd.Context(), &globals.Value{Client: client}))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shutdownTelemetry()
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func shutdownTelemetry() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	err := tel.Shutdown(ctx)
	if err != nil {
		slog.Warn("failed to shutdown telemetry", "err", err)
	}
}

// fatal flushes telemetry before exiting, the deferred post run hook is
// skipped by os.Exit.
func fatal(message string, err error) {
	shutdownTelemetry()
	serviceutil.Fatal(message, err)
}

// loadConfig merges, in increasing priority, the config file, the
// KINNOSUKE_PASSWORD environment variable and command line flags.
func loadConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config](configPath)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	if password, ok := os.LookupEnv("KINNOSUKE_PASSWORD"); ok {
		cfg.Password = password
	}
	return configutil.Merge(cfg, flags)
}

func newClient(cfg Config) (*kinnosuke.Client, error) {
	var output restyutil.InstrumentOutput
	if cfg.DumpHttp != "" {
		fsOutput, err := restyutil.NewFilesystemOutput(cfg.DumpHttp)
		if err != nil {
			return nil, err
		}
		output = fsOutput
	}

	return kinnosuke.NewClient(kinnosuke.ClientOptions{
		CompanyId:        cfg.CompanyId,
		LoginId:          cfg.LoginId,
		Password:         cfg.Password,
		BaseUrl:          cfg.BaseUrl,
		Timeout:          time.Duration(cfg.TimeoutMs) * time.Millisecond,
		CloudflareBypass: cfg.CloudflareBypass,
		InstrumentOutput: output,
	})
}
