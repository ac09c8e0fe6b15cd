package external

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/DataDog/zstd"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/GDVFox/gotabulator/tabulator"
)

// ResultCache кеш результатов табулирования в leveldb.
// Значения хранятся в виде JSON, сжатого zstd.
// Нулевой *ResultCache означает выключенный кеш.
type ResultCache struct {
	db    *leveldb.DB
	level int
}

// OpenResultCache открывает кеш в директории path.
func OpenResultCache(path string, level int) (*ResultCache, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "can not open cache db")
	}
	return &ResultCache{db: db, level: level}, nil
}

// Load получает закодированную таблицу по ключу запроса.
// ok = false, если значения в кеше нет.
func (c *ResultCache) Load(mode, expression string, b tabulator.Bounds) (*tabulator.EncodedGrid, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	compressed, err := c.db.Get(cacheKey(mode, expression, b), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "can not read cache")
	}

	data, err := zstd.Decompress(nil, compressed)
	if err != nil {
		return nil, false, errors.Wrap(err, "can not decompress cached grid")
	}

	grid := &tabulator.EncodedGrid{}
	if err := json.Unmarshal(data, grid); err != nil {
		return nil, false, errors.Wrap(err, "can not unmarshal cached grid")
	}
	return grid, true, nil
}

// Store сохраняет закодированную таблицу.
func (c *ResultCache) Store(grid *tabulator.EncodedGrid) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(grid)
	if err != nil {
		return errors.Wrap(err, "can not marshal grid")
	}

	compressed, err := zstd.CompressLevel(nil, data, c.level)
	if err != nil {
		return errors.Wrap(err, "can not compress grid in zstd")
	}

	if err := c.db.Put(cacheKey(grid.Mode, grid.Expression, grid.Bounds), compressed, nil); err != nil {
		return errors.Wrap(err, "can not write cache")
	}
	return nil
}

// Close закрывает leveldb.
func (c *ResultCache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

func cacheKey(mode, expression string, b tabulator.Bounds) []byte {
	key := &strings.Builder{}
	key.WriteString(mode)
	key.WriteByte(0)
	for _, v := range []int{b.X1, b.X2, b.Y1, b.Y2, b.Z1, b.Z2} {
		key.WriteString(strconv.Itoa(v))
		key.WriteByte(0)
	}
	key.WriteString(expression)
	return []byte(key.String())
}
