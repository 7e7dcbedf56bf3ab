package app

import (
	"log/slog"
	"os/exec"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
)

// notifyFunc matches beeep.Notify.
type notifyFunc func(title, message, appIcon string) error

// completionHooks run after every completed session.
type completionHooks struct {
	notify     notifyFunc
	run        func(name string, args ...string) error
	messages   config.MessageConfig
	sessionCmd string
	pending    sync.WaitGroup
	notifyOn   bool
}

func newCompletionHooks(cfg *config.Config) *completionHooks {
	return &completionHooks{
		notify:     beeep.Notify,
		run:        runCommand,
		messages:   cfg.Messages,
		sessionCmd: cfg.Settings.Cmd,
		notifyOn:   cfg.Notifications.Enabled,
	}
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// parseSessionCmd splits a shell-style command line into its name and
// arguments.
func parseSessionCmd(sessionCmd string) ([]string, error) {
	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return nil, errSessionCmd.Wrap(err)
	}

	return cmdSlice, nil
}

// runSessionCmd executes the configured command, if any.
func (h *completionHooks) runSessionCmd() error {
	if h.sessionCmd == "" {
		return nil
	}

	cmdSlice, err := parseSessionCmd(h.sessionCmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return h.run(cmdSlice[0], cmdSlice[1:]...)
}

// sendNotification shows a desktop notification for sess.
func (h *completionHooks) sendNotification(sess session.Session) error {
	if !h.notifyOn {
		return nil
	}

	title := sess.Mode.Label() + " is finished"

	return h.notify(title, h.messages.Message(sess.Mode), "")
}

// handle runs both hooks. Failures are logged because they must not stop
// the timer.
func (h *completionHooks) handle(sess session.Session) {
	if err := h.sendNotification(sess); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}

	if err := h.runSessionCmd(); err != nil {
		slog.Warn(
			"session command failed",
			slog.String("cmd", h.sessionCmd),
			slog.Any("error", err),
		)
	}
}

// listener returns a session listener that runs the hooks in the
// background so the countdown is never blocked. Call wait before exiting.
func (h *completionHooks) listener() func(session.Session) {
	return func(sess session.Session) {
		h.pending.Add(1)

		go func() {
			defer h.pending.Done()

			h.handle(sess)
		}()
	}
}

// wait blocks until every hook started by listener has finished.
func (h *completionHooks) wait() {
	h.pending.Wait()
}
