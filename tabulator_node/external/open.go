package external

import (
	"github.com/GDVFox/gotabulator/expression/recognizer"
	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/tabulator_node/config"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/storage"
)

// Tabulator объект синглтон табулятора.
var Tabulator *tabulator.Tabulator

// ETCD объект синглтон реестра выражений.
var ETCD *ExpressionStore

// Cache объект синглтон кеша результатов, nil если кеш выключен.
var Cache *ResultCache

// Export объект синглтон выгрузки результатов, nil если выгрузка выключена.
var Export *ResultSink

// InitExternal инициализирует табулятор и подключения к внешним ресурсам.
func InitExternal(cfg *config.Config, logger *util.Logger) error {
	Tabulator = tabulator.NewTabulator(tabulator.NewRegistry(), recognizer.DefaultIdentifiers(),
		cfg.Tabulator, logger.WithName("tabulator"))

	etcdClient, err := storage.NewETCDClient(cfg.ETCD)
	if err != nil {
		return err
	}
	ETCD = NewExpressionStore(etcdClient)

	if cfg.Cache.Path != "" {
		Cache, err = OpenResultCache(cfg.Cache.Path, cfg.Cache.CompressionLevel)
		if err != nil {
			return err
		}
	}

	if cfg.Export.DSN != "" {
		Export, err = OpenResultSink(cfg.Export.DSN, cfg.Export.Table, cfg.Export.BatchSize)
		if err != nil {
			return err
		}
	}
	return nil
}

// CloseExternal закрывает подключения к внешним ресурсам.
func CloseExternal(logger *util.Logger) {
	if ETCD != nil {
		if err := ETCD.Close(); err != nil {
			logger.Warnf("can not close etcd client: %v", err)
		}
	}
	if err := Cache.Close(); err != nil {
		logger.Warnf("can not close cache: %v", err)
	}
	if err := Export.Close(); err != nil {
		logger.Warnf("can not close export: %v", err)
	}
}
