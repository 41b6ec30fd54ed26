package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"svfacts/internal/check"
	"svfacts/internal/ui"
)

type checkOutcome struct {
	result *check.Result
	err    error
}

// runCheckWithUI runs check.Run in the background while a progress view
// follows its events on stdout.
func runCheckWithUI(ctx context.Context, title string, files []string, opts check.Options) (*check.Result, error) {
	events := make(chan check.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		opts.Sink = check.ChannelSink{Ch: events}
		res, err := check.Run(ctx, files, opts)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the view only returns early when interrupted; stop the checker and
	// drain what it still sends
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
