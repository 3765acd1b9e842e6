package db

import (
	"context"
	"errors"

	"github.com/hrutik5321/dhumal/internal/ui/table"
)

var ErrNotConnected = errors.New("database not connected")

// Connection parameters for any SQL DB. DSN, when set, wins over the discrete fields.
type ConnConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// Options for fetching rows (pagination + filter).
type QueryOptions struct {
	Limit  int
	Offset int
	Filter string // raw WHERE fragment, without "WHERE"
}

// Page of rows.
type RowPage struct {
	Columns   []string
	Rows      []table.Row
	TotalRows int
	Offset    int
}

// Table builds a renderable table with the page columns as heading.
func (p RowPage) Table(title string, opts ...table.Option) *table.Table {
	t := table.New(title, opts...)
	if len(p.Columns) > 0 {
		t.SetHeading(table.Strings(p.Columns...))
	}
	return t.AddRows(p.Rows)
}

type DB interface {
	Connect(ctx context.Context, cfg ConnConfig) error
	Close() error

	ListTables(ctx context.Context) ([]string, error)
	FetchRows(ctx context.Context, table string, opts QueryOptions) (RowPage, error)
	Query(ctx context.Context, query string, args ...any) (RowPage, error)
}
