package repo

import (
	"context"
	"fmt"
	"regexp"

	perr "bankocr/internal/platform/errors"
	"bankocr/internal/platform/store"
	"bankocr/internal/services/results/domain"
)

// DefaultCHTable is the analytics table results are appended to
const DefaultCHTable = "ocr_results"

// the table name is spliced into DDL and INSERT text
var chTableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

var chColumns = []string{
	"image_id", "batch_id", "position", "decoded", "account",
	"disposition", "candidates", "line", "created_at",
}

// CH appends results to a ClickHouse MergeTree table
type CH struct {
	conn  store.Clickhouse
	table string
}

// NewCH binds conn and table; an empty table means DefaultCHTable.
// Names other than a plain or db-qualified identifier are rejected.
func NewCH(conn store.Clickhouse, table string) (*CH, error) {
	if table == "" {
		table = DefaultCHTable
	}
	if !chTableName.MatchString(table) {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "invalid clickhouse table name %q", table)
	}
	return &CH{conn: conn, table: table}, nil
}

// Table returns the target table name
func (c *CH) Table() string { return c.table }

// EnsureSchema creates the table when missing
func (c *CH) EnsureSchema(ctx context.Context) error {
	return c.conn.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		image_id    UUID,
		batch_id    UUID,
		position    UInt32,
		decoded     FixedString(9),
		account     FixedString(9),
		disposition LowCardinality(String),
		candidates  Array(String),
		line        String,
		created_at  DateTime64(3, 'UTC')
	) ENGINE = ReplacingMergeTree
	ORDER BY (batch_id, position)`, c.table))
}

// WriteBatch appends xs in one batch
func (c *CH) WriteBatch(ctx context.Context, xs []domain.ResultWrite) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, r := range xs {
		cands := r.Candidates
		if cands == nil {
			cands = []string{}
		}
		rows = append(rows, []any{
			r.ImageID, r.BatchID, uint32(r.Position), r.Decoded, r.Account,
			r.Disposition, cands, r.Line, r.CreatedAt.UTC(),
		})
	}
	return c.conn.Insert(ctx, c.table, chColumns, rows)
}
