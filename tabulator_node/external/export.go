package external

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mailru/go-clickhouse" // драйвер clickhouse для database/sql
	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/tabulator"
)

// ExportedCell строка таблицы результатов в clickhouse.
type ExportedCell struct {
	Mode       string `db:"mode"`
	Expression string `db:"expression"`
	X          int64  `db:"x"`
	Y          int64  `db:"y"`
	Z          int64  `db:"z"`
	Value      string `db:"value"`
	Failed     uint8  `db:"failed"`
}

// ResultSink выгружает результаты табулирования в clickhouse.
// Нулевой *ResultSink означает выключенную выгрузку.
type ResultSink struct {
	db        *sqlx.DB
	table     string
	batchSize int
}

// OpenResultSink подключается к clickhouse по dsn.
func OpenResultSink(dsn, table string, batchSize int) (*ResultSink, error) {
	db, err := sqlx.Connect("clickhouse", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "can not connect to clickhouse")
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ResultSink{db: db, table: table, batchSize: batchSize}, nil
}

// Enabled признак включенной выгрузки.
func (s *ResultSink) Enabled() bool {
	return s != nil
}

// Export записывает все ячейки grid.
func (s *ResultSink) Export(ctx context.Context, grid *tabulator.EncodedGrid) error {
	if s == nil {
		return nil
	}

	query := fmt.Sprintf("INSERT INTO %s (mode, expression, x, y, z, value, failed) "+
		"VALUES (:mode, :expression, :x, :y, :z, :value, :failed)", s.table)

	batch := make([]*ExportedCell, 0, s.batchSize)
	for _, cell := range ExportedCells(grid) {
		batch = append(batch, cell)
		if len(batch) < s.batchSize {
			continue
		}
		if err := s.insert(ctx, query, batch); err != nil {
			return err
		}
		batch = batch[:0]
	}
	if len(batch) != 0 {
		return s.insert(ctx, query, batch)
	}
	return nil
}

func (s *ResultSink) insert(ctx context.Context, query string, batch []*ExportedCell) error {
	// clickhouse принимает пакетную вставку только внутри транзакции.
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "can not begin export transaction")
	}
	for _, cell := range batch {
		if _, err := tx.NamedExecContext(ctx, query, cell); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "can not insert cell")
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "can not commit export transaction")
	}
	return nil
}

// Close закрывает подключение к clickhouse.
func (s *ResultSink) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// ExportedCells разворачивает таблицу в строки в порядке x, y, z.
func ExportedCells(grid *tabulator.EncodedGrid) []*ExportedCell {
	b := grid.Bounds
	cells := make([]*ExportedCell, 0, b.Size())
	for i, plane := range grid.Cells {
		for j, row := range plane {
			for k, text := range row {
				cell := &ExportedCell{
					Mode:       grid.Mode,
					Expression: grid.Expression,
					X:          int64(b.X1 + i),
					Y:          int64(b.Y1 + j),
					Z:          int64(b.Z1 + k),
				}
				if text == nil {
					cell.Failed = 1
				} else {
					cell.Value = *text
				}
				cells = append(cells, cell)
			}
		}
	}
	return cells
}
