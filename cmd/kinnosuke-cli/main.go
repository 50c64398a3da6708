package main

import (
	"kinnosuke/cmd/kinnosuke-cli/commands"
	"kinnosuke/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
