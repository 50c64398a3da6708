package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	for _, name := range []string{"status", "login", "clock-in", "clock-out", "go-out", "go-back", "timesheet"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		require.Equal(t, name, cmd.Use, name)
	}

	cmd, _, err := rootCmd.Find([]string{"timesheet"})
	require.NoError(t, err)
	require.NotNil(t, cmd.Flags().Lookup("html"))
}
