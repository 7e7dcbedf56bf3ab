package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// section renders a yellow heading followed by body.
func section(title, body string) string {
	return fmt.Sprintf("%s\n%s\n\n", pterm.Yellow(title), body)
}

func helpText() string {
	var b strings.Builder

	b.WriteString(section("DESCRIPTION", "\t\t{{.Usage}}"))

	b.WriteString(section(
		"USAGE",
		"\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}",
	))

	b.WriteString(section(
		"COMMANDS",
		fmt.Sprintf(
			"{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
			pterm.Green("{{join .Names `, `}}"),
		),
	))

	b.WriteString(section("EXAMPLES", examplesHelp()))

	b.WriteString(section(
		"OPTIONS",
		fmt.Sprintf(
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
			pterm.Green("-{{$element}}"),
			pterm.Green("--{{.Name}} {{.DefaultText}}"),
		),
	))

	b.WriteString(section("ENVIRONMENTAL VARIABLES", envHelp()))

	b.WriteString(fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n",
		pterm.Yellow("VERSION"),
	))

	return b.String()
}

func examplesHelp() string {
	examples := [][2]string{
		{"studyfocus", "start the timer with the saved settings"},
		{"studyfocus --work 50 --short-break 10", "save new durations, then start"},
		{"studyfocus --headless", "count down one phase without the interactive screen"},
		{"studyfocus stats --date yesterday", "sessions, focus time and streak as of yesterday"},
		{"studyfocus history --limit 20", "the 20 most recent sessions, newest first"},
		{"studyfocus settings --interactive", "pick durations and the long break interval from a menu"},
	}

	var b strings.Builder

	for i, e := range examples {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "\t\t%s\n\t\t\t\t%s\n", pterm.Green(e[0]), e[1])
	}

	return b.String()
}

func envHelp() string {
	return `
		FOCUS_NO_COLOR, NO_COLOR: set to any value to disable coloured output.

		FOCUS_ENV: use a separate config file, database and log (e.g. FOCUS_ENV=dev).`
}
