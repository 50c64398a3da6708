package commands

import (
	"kinnosuke/cmd/kinnosuke-cli/globals"
	"kinnosuke/cmd/kinnosuke-cli/utils"
	"os"

	"github.com/spf13/cobra"
)

var timesheetHtml bool

func init() {
	timesheetCmd.Flags().BoolVar(&timesheetHtml, "html", false, "Print the raw html fragments instead of tables.")
	rootCmd.AddCommand(timesheetCmd)
}

var timesheetCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Show this month's timesheet.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := globals.Get(cmd.Context()).Client

		sheet, err := client.TimeSheet(cmd.Context())
		if err != nil {
			fatal("failed to fetch timesheet", err)
		}

		if timesheetHtml {
			for _, fragment := range []string{sheet.DailyHtml(), sheet.TotalHtml()} {
				os.Stdout.WriteString(fragment)
				os.Stdout.WriteString("\n")
			}
			return
		}

		utils.RenderRows(os.Stdout, "daily", sheet.DailyRows())
		utils.RenderRows(os.Stdout, "total", sheet.TotalRows())
	},
}
