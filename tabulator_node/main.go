package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/GDVFox/gotabulator/tabulator_node/api/expressions"
	"github.com/GDVFox/gotabulator/tabulator_node/api/tabulate"
	"github.com/GDVFox/gotabulator/tabulator_node/config"
	"github.com/GDVFox/gotabulator/tabulator_node/external"
	"github.com/GDVFox/gotabulator/util"
	"github.com/GDVFox/gotabulator/util/httplib"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "", "Name of config file (yaml or toml)")
}

func newRouter(logger *util.Logger) *mux.Router {
	r := mux.NewRouter().PathPrefix("/v1").Subrouter()

	r.HandleFunc("/modes", httplib.CreateHandler(tabulate.ListModes, logger)).Methods(http.MethodGet)
	r.HandleFunc("/parse", httplib.CreateHandler(tabulate.Parse, logger)).Methods(http.MethodPost)
	r.HandleFunc("/tabulate", httplib.CreateHandler(tabulate.Tabulate, logger)).Methods(http.MethodPost)
	r.HandleFunc("/tabulate/stream", httplib.CreateWSHandler(tabulate.Stream, logger)).Methods(http.MethodGet)

	name := "/expressions/{expression_name:" + expressions.NamePattern + "}"
	r.HandleFunc("/expressions", httplib.CreateHandler(expressions.ListExpressions, logger)).Methods(http.MethodGet)
	r.HandleFunc("/expressions", httplib.CreateHandler(expressions.CreateExpression, logger)).Methods(http.MethodPost)
	r.HandleFunc(name, httplib.CreateHandler(expressions.GetExpression, logger)).Methods(http.MethodGet)
	r.HandleFunc(name, httplib.CreateHandler(expressions.DeleteExpression, logger)).Methods(http.MethodDelete)
	r.HandleFunc(name+"/tabulate", httplib.CreateHandler(expressions.TabulateExpression, logger)).Methods(http.MethodPost)
	r.HandleFunc(name+"/graph", httplib.CreateHandler(expressions.GetGraph, logger)).Methods(http.MethodGet)
	return r
}

func main() {
	flag.Parse()
	if err := util.LoadConfig(configFile, config.Conf); err != nil {
		fmt.Printf("can not read config file: %v\n", err)
		os.Exit(1)
	}
	if err := util.LoadEnv(config.EnvPrefix, config.Conf); err != nil {
		fmt.Printf("can not read env: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(config.Conf.Logging)
	if err != nil {
		fmt.Printf("can not init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := external.InitExternal(config.Conf, logger); err != nil {
		logger.Fatalf("can not init external resources: %v", err)
	}
	defer external.CloseExternal(logger)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		signalChannel := make(chan os.Signal, 1)
		signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(signalChannel)

		select {
		case sig := <-signalChannel:
			logger.Info("got signal: ", sig)
			return context.Canceled
		case <-ctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		return httplib.StartServer(ctx, newRouter(logger), config.Conf.HTTP, logger)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Errorf("service stopped with error: %v", err)
	}
}
