package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hrutik5321/dhumal/internal/config"
	"github.com/hrutik5321/dhumal/internal/db"
)

// Options seed the browser. A Conn with a DSN (or a SQLite database path)
// connects immediately instead of showing the credentials form.
type Options struct {
	Conn     db.ConnConfig
	Style    config.RenderConfig
	PageSize int
	Logger   zerolog.Logger
}

func New(dbClient db.DB, opts Options) tea.Model {
	return initialModel(dbClient, opts)
}

func NewProgram(dbClient db.DB, opts Options, progOpts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(New(dbClient, opts), progOpts...)
}
