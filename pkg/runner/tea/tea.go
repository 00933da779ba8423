package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/termenv"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/runner/tea/internal/theme"
)

// Run launches the dashboard and blocks until the user quits.
func Run(svc *app.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(svc, theme.New(termenv.HasDarkBackground()))
	m.ctx = ctx
	if svc != nil && svc.Persistence != nil {
		events, err := svc.Persistence.Watch(ctx)
		if err != nil {
			m.footer.SetStatus("live reload off: " + err.Error())
		} else {
			m.events = events
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
