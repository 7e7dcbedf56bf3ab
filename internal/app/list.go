package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/report"
	"github.com/ayoisaiah/studyfocus/internal/session"
	"github.com/ayoisaiah/studyfocus/internal/stats"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
	"github.com/ayoisaiah/studyfocus/internal/ui"
)

func dateTimeFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []session.Session, layout string) error {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := &sessions[i]

		row := []string{
			fmt.Sprintf("%d", i+1),
			sess.CompletedAt.Local().Format(layout),
			ui.Mode(sess.Mode, sess.Mode.Label()),
			timeutil.FormatCountdown(sess.Duration),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "COMPLETED", "SESSION", "LENGTH"},
	}, tableBody...)

	return ui.PrintTable(tableBody, w)
}

// listSessions prints out a table of sessions.
func listSessions(w io.Writer, sessions []session.Session, layout string) error {
	if len(sessions) == 0 {
		report.NoSessions()
		return nil
	}

	return printSessionsTable(w, sessions, layout)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// printStats prints the derived statistics for one day.
func printStats(w io.Writer, s stats.DerivedStats, interval int) error {
	date, err := time.Parse(timeutil.DateLayout, s.Date)
	if err != nil {
		return err
	}

	rows := [][]string{
		{pterm.Bold.Sprint("Date"), date.Format("Monday, Jan 02, 2006")},
		{
			pterm.Bold.Sprint("Work sessions"),
			ui.Mode(config.Work, s.CompletedWorkSessionsToday),
		},
		{
			pterm.Bold.Sprint("Focus time"),
			ui.Highlight(timeutil.MinsToHoursAndMins(s.TotalFocusMinutesToday)),
		},
		{
			pterm.Bold.Sprint("Streak"),
			ui.Highlight(plural(s.CurrentStreakDays, "day")),
		},
		{
			pterm.Bold.Sprint("Long break every"),
			plural(interval, "session"),
		},
	}

	return ui.PrintKeyValues(rows, w)
}

// printSettings prints the timer settings.
func printSettings(w io.Writer, s config.Settings) error {
	rows := [][]string{
		{pterm.Bold.Sprint("Work"), ui.Mode(config.Work, plural(s.WorkMinutes, "minute"))},
		{pterm.Bold.Sprint("Short break"), ui.Mode(config.Break, plural(s.BreakMinutes, "minute"))},
		{
			pterm.Bold.Sprint("Long break"),
			ui.Mode(config.LongBreak, plural(s.LongBreakMinutes, "minute")),
		},
		{pterm.Bold.Sprint("Long break every"), plural(s.SessionsBeforeLongBreak, "session")},
	}

	return ui.PrintKeyValues(rows, w)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
