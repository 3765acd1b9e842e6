package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrutik5321/dhumal/internal/db"
	"github.com/hrutik5321/dhumal/internal/ui/table"
)

type PostgresDB struct {
	pool *pgxpool.Pool
}

func New() *PostgresDB {
	return &PostgresDB{}
}

func (p *PostgresDB) buildDSN(cfg db.ConnConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
	)
}

// Connect implements db.DB.
func (p *PostgresDB) Connect(ctx context.Context, cfg db.ConnConfig) error {
	dsn := p.buildDSN(cfg)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("postgres: ping: %w", err)
	}

	p.pool = pool
	return nil
}

// Close db
func (p *PostgresDB) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// ListTables
func (p *PostgresDB) ListTables(ctx context.Context) ([]string, error) {
	if p.pool == nil {
		return nil, db.ErrNotConnected
	}

	rows, err := p.pool.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name;
	`)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// FetchRows
func (p *PostgresDB) FetchRows(
	ctx context.Context,
	name string,
	opts db.QueryOptions,
) (db.RowPage, error) {
	if p.pool == nil {
		return db.RowPage{}, db.ErrNotConnected
	}

	ident := pgx.Identifier{name}.Sanitize()

	// Build optional WHERE clause from filter
	whereClause := ""
	if opts.Filter != "" {
		whereClause = " WHERE " + opts.Filter
	}

	// 1) Get total row count for pagination
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, ident, whereClause)
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return db.RowPage{}, err
	}

	// 2) Fetch current page
	query := fmt.Sprintf(`SELECT * FROM %s%s LIMIT $1 OFFSET $2`, ident, whereClause)

	page, err := p.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return db.RowPage{}, err
	}
	page.TotalRows = total
	page.Offset = opts.Offset
	return page, nil
}

// Query runs an arbitrary statement and returns every row it produces.
func (p *PostgresDB) Query(ctx context.Context, query string, args ...any) (db.RowPage, error) {
	if p.pool == nil {
		return db.RowPage{}, db.ErrNotConnected
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return db.RowPage{}, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	types := make([]string, len(fds))
	tm := rows.Conn().TypeMap()
	for i, fd := range fds {
		cols[i] = fd.Name
		if dt, ok := tm.TypeForOID(fd.DataTypeOID); ok {
			types[i] = dt.Name
		}
	}

	var data []table.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return db.RowPage{}, err
		}
		r := make(table.Row, len(values))
		for i, v := range values {
			r[i] = cellOf(v, types[i])
		}
		data = append(data, r)
	}
	if rows.Err() != nil {
		return db.RowPage{}, rows.Err()
	}

	return db.RowPage{
		Columns:   cols,
		Rows:      data,
		TotalRows: len(data),
	}, nil
}

// cellOf handles the pgtype values pgx returns before falling back to db.CellOf.
func cellOf(v any, typeName string) table.Cell {
	switch val := v.(type) {

	// pgx UUID type
	case pgtype.UUID:
		if val.Valid {
			return table.Text(val.String())
		}
		return table.Text(db.NullText)

	case pgtype.Numeric:
		if !val.Valid {
			return table.Text(db.NullText)
		}
		if dv, err := val.Value(); err == nil {
			if s, ok := dv.(string); ok {
				return table.Number(s)
			}
		}
		if f, err := val.Float64Value(); err == nil && f.Valid {
			return table.Float(f.Float64)
		}
		return table.Text(fmt.Sprint(val))
	}

	return db.CellOf(v, typeName)
}
