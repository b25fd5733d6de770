package controllers

import (
	"HealthHubTerminal/prompt"
	"HealthHubTerminal/store"
	"HealthHubTerminal/util"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrExit is returned by the Exit handler to stop Run.
var ErrExit = errors.New("exit requested")

// App is the state shared by every sub-flow of one run.
type App struct {
	Prompt   *prompt.Prompter
	Registry *store.Registry
	Now      func() time.Time
}

func NewApp(in io.Reader, out io.Writer, now func() time.Time) *App {
	return &App{
		Prompt:   prompt.New(in, out, prompt.WithClock(now)),
		Registry: store.NewRegistry(),
		Now:      now,
	}
}

type Handler func(ctx context.Context, app *App) error

// Menu maps choice N to Handlers[N-1].
type Menu struct {
	Title    string
	Options  []string
	Handlers []Handler
}

func (m Menu) Show(ctx context.Context, app *App) error {
	items := make([]string, len(m.Options))
	for i, opt := range m.Options {
		items[i] = fmt.Sprintf("\n%d.%s", i+1, opt)
	}
	bar := strings.Repeat("=", 10)
	app.Prompt.Println(strings.Join(items, " "))
	app.Prompt.Println(fmt.Sprintf("\n%s %s %s", bar, m.Title, bar))

	choice, err := app.Prompt.Choice(len(m.Handlers))
	if err != nil {
		return err
	}
	return m.Handlers[choice-1](ctx, app)
}

// Run shows main until its Exit handler fires or input fails.
func Run(ctx context.Context, app *App, main Menu) error {
	for {
		err := main.Show(ctx, app)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func Exit(_ context.Context, app *App) error {
	app.Prompt.Println(util.PROGRAM_TERMINATED)
	return ErrExit
}
