package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/osutil"
	"github.com/ayoisaiah/studyfocus/internal/report"
	"github.com/ayoisaiah/studyfocus/internal/timer"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
	"github.com/ayoisaiah/studyfocus/internal/tui"
)

const (
	envNoColor      = "NO_COLOR"
	envFocusNoColor = "FOCUS_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// applyTimerFlags persists any timer settings given on the command line.
func applyTimerFlags(ctx *cli.Context, e *env) error {
	p := config.PartialFromCLI(ctx)
	if p.IsEmpty() {
		return nil
	}

	_, err := e.settings.Update(p)

	return err
}

// defaultAction starts the timer, either in the terminal UI or headless.
func defaultAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	err = applyTimerFlags(ctx, e)
	if err != nil {
		return err
	}

	hooks := newCompletionHooks(e.cfg)
	defer hooks.wait()

	if ctx.Bool("headless") {
		ctrl := timer.New(e.settings, e.logger, timer.TickerScheduler{})
		ctrl.OnSessionComplete(hooks.listener())

		sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
		defer stop()

		return runHeadless(sigCtx, os.Stdout, ctrl)
	}

	sched := timer.NewManualScheduler()

	ctrl := timer.New(e.settings, e.logger, sched)
	ctrl.OnSessionComplete(hooks.listener())

	model := tui.New(ctrl, sched, e.reader, e.clock, tui.Options{
		Messages:       e.cfg.Messages,
		DarkTheme:      e.cfg.Display.DarkTheme,
		TwentyFourHour: e.cfg.Display.TwentyFourHour,
	})

	_, err = tea.NewProgram(model).Run()

	return err
}

// statsAction prints the derived statistics for today or the day given by
// --date.
func statsAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	asOf, err := timeutil.FromStr(ctx.String("date"), e.clock.Now())
	if err != nil {
		return err
	}

	s := e.reader.Stats(asOf)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	return printStats(os.Stdout, s, e.settings.Get().SessionsBeforeLongBreak)
}

// historyAction prints the most recent sessions, newest first.
func historyAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	limit := e.cfg.Settings.HistoryLimit
	if limit < 0 {
		return errInvalidLimit.Fmt(limit)
	}

	sessions := e.reader.RecentSessions(limit)

	if ctx.Bool("json") {
		return printJSON(os.Stdout, sessions)
	}

	return listSessions(
		os.Stdout,
		sessions,
		dateTimeFormat(e.cfg.Display.TwentyFourHour),
	)
}

// settingsAction shows the timer settings, updating them first from flags
// or an interactive prompt.
func settingsAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	p := config.PartialFromCLI(ctx)

	if ctx.Bool("interactive") {
		p, err = config.PromptSettings(e.settings.Get())
		if err != nil {
			return err
		}
	}

	if !p.IsEmpty() {
		if _, err = e.settings.Update(p); err != nil {
			return err
		}

		report.SettingsSaved()
	}

	if ctx.Bool("json") {
		return printJSON(os.Stdout, e.settings.Get())
	}

	return printSettings(os.Stdout, e.settings.Get())
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	paths, err := config.ResolvePaths()
	if err != nil {
		return err
	}

	// make sure the file exists before opening it
	_, err = config.New(config.WithViperConfig(paths.ConfigFile))
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, paths.ConfigFile)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FOCUS_NO_COLOR is set
	if _, exists := os.LookupEnv(envFocusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting studyfocus")

	return nil
}
