package tabulate

import (
	"context"

	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/message"
)

// Execute выполняет табулирование с учетом кеша и выгрузки.
// Ошибки кеша и выгрузки не прерывают запрос и только логируются.
func Execute(ctx context.Context, l *util.Logger, req *message.TabulateRequest) (*message.TabulateResponse, error) {
	cached, ok, err := external.Cache.Load(req.Mode, req.Expression, req.Bounds)
	if err != nil {
		l.Warnf("can not load result from cache: %v", err)
	}
	if ok {
		l.Debugf("cache hit for %q in mode %s", req.Expression, req.Mode)
		export(ctx, l, req, cached)
		return &message.TabulateResponse{EncodedGrid: cached, Cached: true}, nil
	}

	grid, err := external.Tabulator.Tabulate(req.Mode, req.Expression, req.Bounds)
	if err != nil {
		return nil, err
	}

	encoded := grid.Encode()
	if err := external.Cache.Store(encoded); err != nil {
		l.Warnf("can not store result in cache: %v", err)
	}
	export(ctx, l, req, encoded)
	return &message.TabulateResponse{EncodedGrid: encoded}, nil
}

func export(ctx context.Context, l *util.Logger, req *message.TabulateRequest, grid *tabulator.EncodedGrid) {
	if !req.Export {
		return
	}
	if !external.Export.Enabled() {
		l.Warnf("export requested, but export is not configured")
		return
	}
	if err := external.Export.Export(ctx, grid); err != nil {
		l.Errorf("can not export result: %v", err)
	}
}
