package commands

import (
	"kinnosuke/cmd/kinnosuke-cli/globals"
	"kinnosuke/cmd/kinnosuke-cli/utils"
	"kinnosuke/lib/scrapers/kinnosuke"
	"kinnosuke/lib/timezone"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd, loginCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's stamps.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := globals.Get(cmd.Context()).Client

		recorder, err := client.TimeRecorder(cmd.Context())
		if err != nil {
			fatal("failed to fetch time recorder", err)
		}

		now := timezone.Now()
		if in, ok := recorder.At(kinnosuke.ClockIn, now); ok {
			out, ok := recorder.At(kinnosuke.ClockOut, now)
			if !ok {
				out = now
			}
			slog.Info("worked", "duration", out.Sub(in).String())
		}
		utils.RenderTimeRecorder(os.Stdout, recorder)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check that the configured credentials are accepted.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := globals.Get(cmd.Context()).Client

		_, err := client.Login(cmd.Context())
		if err != nil {
			fatal("failed to login", err)
		}
		slog.Info("login succeeded", "base_url", client.BaseUrl.String())
	},
}
