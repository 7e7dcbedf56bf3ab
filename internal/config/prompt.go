package config

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm/putils"
)

// minuteOptions builds select options from choices, making sure the current
// value is always one of them.
func minuteOptions(current int, unit string, choices ...int) []huh.Option[int] {
	if !slices.Contains(choices, current) {
		choices = append(choices, current)
		slices.Sort(choices)
	}

	opts := make([]huh.Option[int], 0, len(choices))

	for _, v := range choices {
		opts = append(
			opts,
			huh.NewOption(fmt.Sprintf("%d %s", v, unit), v).Selected(v == current),
		)
	}

	return opts
}

// PromptSettings asks the user for new timer settings, starting from
// current, and returns the answers as an update.
func PromptSettings(current Settings) (Partial, error) {
	answers := current

	_ = putils.BulletListFromString(`Select your preferred value, or press ENTER to keep the current one.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work session length").
				Options(minuteOptions(current.WorkMinutes, "minutes", 25, 35, 50, 60, 90)...).
				Value(&answers.WorkMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Short break length").
				Options(minuteOptions(current.BreakMinutes, "minutes", 5, 10, 15, 20)...).
				Value(&answers.BreakMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Long break length").
				Options(minuteOptions(current.LongBreakMinutes, "minutes", 15, 20, 30, 45)...).
				Value(&answers.LongBreakMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Work sessions before long break").
				Options(minuteOptions(current.SessionsBeforeLongBreak, "sessions", 2, 4, 6, 8)...).
				Value(&answers.SessionsBeforeLongBreak),
		),
	)

	if err := form.Run(); err != nil {
		return Partial{}, errPrompt.Wrap(err)
	}

	return Partial{
		WorkMinutes:             Int(answers.WorkMinutes),
		BreakMinutes:            Int(answers.BreakMinutes),
		LongBreakMinutes:        Int(answers.LongBreakMinutes),
		SessionsBeforeLongBreak: Int(answers.SessionsBeforeLongBreak),
	}, nil
}
