// Package sqldb implements db.DB on database/sql for MySQL and SQLite.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/hrutik5321/dhumal/internal/db"
	"github.com/hrutik5321/dhumal/internal/ui/table"
)

const (
	MySQL  = "mysql"
	SQLite = "sqlite"
)

type SQLDB struct {
	driver string
	db     *sql.DB
}

// New returns an unconnected client for driver (MySQL or SQLite).
func New(driver string) (*SQLDB, error) {
	switch driver {
	case MySQL, SQLite:
		return &SQLDB{driver: driver}, nil
	case "sqlite3":
		return &SQLDB{driver: SQLite}, nil
	}
	return nil, fmt.Errorf("unsupported driver %q", driver)
}

func (s *SQLDB) Driver() string { return s.driver }

func (s *SQLDB) buildDSN(cfg db.ConnConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	switch s.driver {
	case MySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mc.DBName = cfg.Database
		return mc.FormatDSN()
	default:
		if cfg.Database == "" {
			return ":memory:"
		}
		return cfg.Database
	}
}

func (s *SQLDB) Connect(ctx context.Context, cfg db.ConnConfig) error {
	conn, err := sql.Open(s.driver, s.buildDSN(cfg))
	if err != nil {
		return fmt.Errorf("%s: %w", s.driver, err)
	}
	if s.driver == SQLite {
		// every sqlite connection to ":memory:" is a separate database
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("%s: ping: %w", s.driver, err)
	}
	s.db = conn
	return nil
}

func (s *SQLDB) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Exec runs a statement that returns no rows.
func (s *SQLDB) Exec(ctx context.Context, query string, args ...any) error {
	if s.db == nil {
		return db.ErrNotConnected
	}
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *SQLDB) ListTables(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, db.ErrNotConnected
	}

	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`
	if s.driver == MySQL {
		query = `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (s *SQLDB) FetchRows(ctx context.Context, name string, opts db.QueryOptions) (db.RowPage, error) {
	if s.db == nil {
		return db.RowPage{}, db.ErrNotConnected
	}

	ident := s.quoteIdent(name)
	whereClause := ""
	if opts.Filter != "" {
		whereClause = " WHERE " + opts.Filter
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, ident, whereClause)
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return db.RowPage{}, err
	}

	query := fmt.Sprintf(`SELECT * FROM %s%s LIMIT ? OFFSET ?`, ident, whereClause)
	page, err := s.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return db.RowPage{}, err
	}
	page.TotalRows = total
	page.Offset = opts.Offset
	return page, nil
}

func (s *SQLDB) Query(ctx context.Context, query string, args ...any) (db.RowPage, error) {
	if s.db == nil {
		return db.RowPage{}, db.ErrNotConnected
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return db.RowPage{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return db.RowPage{}, err
	}
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return db.RowPage{}, err
	}
	types := make([]string, len(colTypes))
	for i, ct := range colTypes {
		types[i] = ct.DatabaseTypeName()
	}

	var data []table.Row
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return db.RowPage{}, err
		}
		r := make(table.Row, len(values))
		for i, v := range values {
			r[i] = db.CellOf(v, types[i])
		}
		data = append(data, r)
	}
	if err := rows.Err(); err != nil {
		return db.RowPage{}, err
	}

	return db.RowPage{Columns: cols, Rows: data, TotalRows: len(data)}, nil
}

func (s *SQLDB) quoteIdent(name string) string {
	if s.driver == MySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
