package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hrutik5321/dhumal/internal/ui/table"
)

// NullText is how SQL NULL shows up in a rendered grid.
const NullText = "NULL"

// CellOf maps a scanned column value into a table cell. typeName is the
// database type of the column when known; it lets textual drivers report
// numeric columns as numbers.
func CellOf(v any, typeName string) table.Cell {
	switch val := v.(type) {

	case nil:
		return table.Text(NullText)

	// UUID as [16]byte
	case [16]byte:
		if uid, err := uuid.FromBytes(val[:]); err == nil {
			return table.Text(uid.String())
		}
		return table.Text(fmt.Sprint(val))

	// UUID / binary / textual protocol as []byte
	case []byte:
		if isNumericType(typeName) {
			return table.Number(string(val))
		}
		if isUUIDType(typeName) || (typeName == "" && len(val) == 16) {
			if uid, err := uuid.FromBytes(val); err == nil {
				return table.Text(uid.String())
			}
		}
		return table.Text(string(val))

	case string:
		if isNumericType(typeName) {
			return table.Number(val)
		}
		return table.Text(val)

	case time.Time:
		return table.Text(val.Format(time.RFC3339))

	case fmt.Stringer:
		return table.Text(val.String())

	default:
		return table.ValueOf(v)
	}
}

func isNumericType(name string) bool {
	switch strings.ToUpper(name) {
	case "INT", "INTEGER", "TINYINT", "SMALLINT", "MEDIUMINT", "BIGINT",
		"UNSIGNED INT", "UNSIGNED TINYINT", "UNSIGNED SMALLINT", "UNSIGNED MEDIUMINT", "UNSIGNED BIGINT",
		"INT2", "INT4", "INT8", "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "REAL",
		"DECIMAL", "NUMERIC":
		return true
	}
	return false
}

func isUUIDType(name string) bool {
	return strings.EqualFold(name, "UUID") || strings.EqualFold(name, "BINARY")
}
