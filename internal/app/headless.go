package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/timer"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
	"github.com/ayoisaiah/studyfocus/internal/ui"
)

// runHeadless counts down the current phase on w until it completes or ctx
// is cancelled. The controller must be driven by a scheduler that fires on
// its own.
func runHeadless(ctx context.Context, w io.Writer, ctrl *timer.Controller) error {
	done := make(chan struct{})

	ctrl.OnTick(func(s timer.State) {
		fmt.Fprintf(
			w,
			"\r%s %s ",
			ui.Mode(s.Mode, s.Mode.Label()),
			timeutil.FormatCountdown(s.RemainingSeconds),
		)
	})

	// mode change is the last event of a completed phase
	ctrl.OnModeChange(func(next config.Mode) {
		fmt.Fprintf(w, "\nUp next: %s\n", ui.Mode(next, next.Label()))
		close(done)
	})

	s := ctrl.State()

	fmt.Fprintf(
		w,
		"%s %s ",
		ui.Mode(s.Mode, s.Mode.Label()),
		timeutil.FormatCountdown(s.RemainingSeconds),
	)

	ctrl.Start()
	defer ctrl.Close()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		fmt.Fprintln(w)
		return nil
	}
}
