package commands

import (
	"kinnosuke/cmd/kinnosuke-cli/globals"
	"kinnosuke/cmd/kinnosuke-cli/utils"
	"kinnosuke/lib/scrapers/kinnosuke"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		newClockCmd("clock-in", "Record arrival.", kinnosuke.ClockIn),
		newClockCmd("clock-out", "Record departure.", kinnosuke.ClockOut),
		newClockCmd("go-out", "Record stepping out.", kinnosuke.GoOut),
		newClockCmd("go-back", "Record coming back.", kinnosuke.GoBack),
	)
}

func newClockCmd(use, short string, kind kinnosuke.ClockKind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			client := globals.Get(cmd.Context()).Client

			recorder, err := client.Clock(cmd.Context(), kind)
			if err != nil {
				fatal("failed to clock", err)
			}

			slog.Info("clocked", "kind", kind.String(), "at", kind.Stamp(recorder))
			utils.RenderTimeRecorder(os.Stdout, recorder)
		},
	}
}
