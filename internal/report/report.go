// Package report prints user-facing status lines
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/studyfocus/internal/osutil"
)

func SettingsSaved() {
	pterm.Success.Println("timer settings saved")
}

func NoSessions() {
	pterm.Info.Println("No sessions recorded yet")
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
