// mc-playtime - Minecraft playtime calculator
//
// mc-playtime sums the session durations recorded in Minecraft log
// files: point it at a log file, a logs directory, or a whole .minecraft
// installation and it reports the total playtime.
package main

import (
	"os"

	"github.com/happyarno/mc-playtime/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
