package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hrutik5321/dhumal/internal/db"
	"github.com/hrutik5321/dhumal/internal/db/postgres"
	"github.com/hrutik5321/dhumal/internal/db/sqldb"
)

// connOptions are the connection flags of query and browse. Unset flags fall
// back to the database section of the config file.
type connOptions struct {
	driver   string
	dsn      string
	host     string
	port     string
	user     string
	password string
	database string
}

func (o *connOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.driver, "driver", "", "database driver: postgres, mysql, sqlite")
	fs.StringVar(&o.dsn, "dsn", "", "connection string; overrides the individual settings")
	fs.StringVar(&o.host, "host", "", "database host")
	fs.StringVar(&o.port, "port", "", "database port")
	fs.StringVar(&o.user, "user", "", "database user")
	fs.StringVar(&o.password, "password", "", "database password")
	fs.StringVar(&o.database, "database", "", "database name, or file for sqlite")
}

func (o *connOptions) resolve(cmd *cobra.Command, base db.ConnConfig) db.ConnConfig {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("driver", &base.Driver, o.driver)
	set("dsn", &base.DSN, o.dsn)
	set("host", &base.Host, o.host)
	set("port", &base.Port, o.port)
	set("user", &base.User, o.user)
	set("password", &base.Password, o.password)
	set("database", &base.Database, o.database)
	return base
}

// openDB returns an unconnected client for driver.
func openDB(driver string) (db.DB, error) {
	switch driver {
	case "postgres", "postgresql", "pgx", "":
		return postgres.New(), nil
	default:
		c, err := sqldb.New(driver)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

type queryOptions struct {
	conn  connOptions
	style styleOptions
}

func newQueryCommand(g *globalOptions) *cobra.Command {
	o := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "query [flags] SQL",
		Short: "Run a query and render its result",
		Example: `  dhumal query --driver sqlite --database app.db "SELECT * FROM users"
  dhumal query --dsn postgres://localhost/shop --title Orders "SELECT id, total FROM orders"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, g, args[0])
		},
	}
	o.conn.addFlags(cmd.Flags())
	o.style.addFlags(cmd.Flags())
	return cmd
}

func (o *queryOptions) run(cmd *cobra.Command, g *globalOptions, query string) error {
	conn := o.conn.resolve(cmd, g.cfg.Database)
	client, err := openDB(conn.Driver)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := client.Connect(ctx, conn); err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			g.log.Warn().Err(err).Msg("closing database")
		}
	}()

	g.log.Debug().Str("driver", conn.Driver).Str("query", query).Msg("running query")
	page, err := client.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	t := page.Table("")
	if err := o.style.apply(cmd, g.cfg.Render, t); err != nil {
		return err
	}
	return o.style.write(cmd, t)
}
