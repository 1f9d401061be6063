package db

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the SQL flavour spoken by a *sql.DB.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case SQLite, Postgres:
		return d, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", s)
}

// Rebind rewrites '?' placeholders into $1..$n for Postgres.
// Queries must not contain literal question marks.
func Rebind(d Dialect, q string) string {
	if d != Postgres {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Placeholders returns n comma separated '?' markers for an IN (...) list.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
