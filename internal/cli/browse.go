package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hrutik5321/dhumal/internal/app"
)

type browseOptions struct {
	conn     connOptions
	pageSize int
}

func newBrowseCommand(g *globalOptions) *cobra.Command {
	o := &browseOptions{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse database tables interactively",
		Long: `Browse opens a terminal UI listing the tables of a database and paging
through their rows. Without a DSN (or a SQLite database file) it starts with a
credentials form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, g)
		},
	}
	o.conn.addFlags(cmd.Flags())
	cmd.Flags().IntVar(&o.pageSize, "page-size", 10, "rows per page")
	return cmd
}

func (o *browseOptions) run(cmd *cobra.Command, g *globalOptions) error {
	conn := o.conn.resolve(cmd, g.cfg.Database)
	client, err := openDB(conn.Driver)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			g.log.Warn().Err(err).Msg("closing database")
		}
	}()

	program := app.NewProgram(client, app.Options{
		Conn:     conn,
		Style:    g.cfg.Render,
		PageSize: o.pageSize,
		Logger:   g.log,
	},
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	)
	_, err = program.Run()
	return err
}
