package storage

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/GDVFox/gotabulator/util"
)

var (
	// ErrNotFound значение не найдено в etcd.
	ErrNotFound = errors.New("key not found")
	// ErrAlreadyExists значение уже записано etcd.
	ErrAlreadyExists = errors.New("key already exists")
)

// ETCDConfig конфигурация подключения к etcd.
type ETCDConfig struct {
	Endpoints []string          `yaml:"endpoints" toml:"endpoints"`
	Prefix    string            `yaml:"prefix" toml:"prefix"`
	Timeout   util.Duration     `yaml:"timeout" toml:"timeout"`
	Retry     *util.RetryConfig `yaml:"retry" toml:"retry"`
}

// NewETCDConfig создает новый конфиг etcd с параметрами по-умолчанию.
func NewETCDConfig() *ETCDConfig {
	return &ETCDConfig{
		Endpoints: []string{},
		Prefix:    "/gotabulator",
		Timeout:   util.Duration(5 * time.Second),
		Retry:     util.NewRetryConfig(),
	}
}

// ETCDClient клиент для работы с etcd.
// Все ключи хранятся под префиксом из конфигурации.
type ETCDClient struct {
	cli *clientv3.Client
	kv  clientv3.KV

	cfg *ETCDConfig
}

// NewETCDClient создает новый etcd клиент.
func NewETCDClient(cfg *ETCDConfig) (*ETCDClient, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: time.Duration(cfg.Timeout),
	})
	if err != nil {
		return nil, errors.Wrap(err, "can not create etcd client")
	}

	return &ETCDClient{
		cli: cli,
		kv:  clientv3.NewKV(cli),
		cfg: cfg,
	}, nil
}

// Close закрывает соединение с etcd.
func (c *ETCDClient) Close() error {
	return c.cli.Close()
}

// Key возвращает полный ключ в etcd для пары bucket/name.
func (c *ETCDClient) Key(bucket, name string) string {
	return path.Join("/", c.cfg.Prefix, bucket, name)
}

// List получает список имен в bucket.
func (c *ETCDClient) List(ctx context.Context, bucket string) ([]string, error) {
	prefix := c.Key(bucket, "") + "/"

	var resp *clientv3.GetResponse
	err := c.retry(ctx, func(requestCtx context.Context) error {
		var err error
		resp, err = c.kv.Get(requestCtx, prefix, clientv3.WithPrefix(), clientv3.WithKeysOnly(),
			clientv3.WithSort(clientv3.SortByKey, clientv3.SortAscend))
		return err
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		names = append(names, strings.TrimPrefix(string(kv.Key), prefix))
	}
	return names, nil
}

// Get получает данные по имени name из bucket.
func (c *ETCDClient) Get(ctx context.Context, bucket, name string) ([]byte, error) {
	key := c.Key(bucket, name)

	var resp *clientv3.GetResponse
	err := c.retry(ctx, func(requestCtx context.Context) error {
		var err error
		resp, err = c.kv.Get(requestCtx, key)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Kvs) == 0 {
		return nil, ErrNotFound
	}
	return resp.Kvs[0].Value, nil
}

// Create записывает value, если имя name в bucket еще не занято.
func (c *ETCDClient) Create(ctx context.Context, bucket, name string, value []byte) error {
	key := c.Key(bucket, name)

	var resp *clientv3.TxnResponse
	err := c.retry(ctx, func(requestCtx context.Context) error {
		var err error
		resp, err = c.kv.Txn(requestCtx).If(
			clientv3.Compare(clientv3.CreateRevision(key), "=", 0),
		).Then(
			clientv3.OpPut(key, string(value)),
		).Commit()
		return err
	})
	if err != nil {
		return err
	}

	if !resp.Succeeded {
		return ErrAlreadyExists
	}
	return nil
}

// Delete удаляет данные по имени name из bucket.
func (c *ETCDClient) Delete(ctx context.Context, bucket, name string) error {
	key := c.Key(bucket, name)

	var resp *clientv3.TxnResponse
	err := c.retry(ctx, func(requestCtx context.Context) error {
		var err error
		resp, err = c.kv.Txn(requestCtx).If(
			clientv3.Compare(clientv3.CreateRevision(key), "!=", 0),
		).Then(
			clientv3.OpDelete(key),
		).Commit()
		return err
	})
	if err != nil {
		return err
	}

	if !resp.Succeeded {
		return ErrNotFound
	}
	return nil
}

func (c *ETCDClient) retry(ctx context.Context, f func(requestCtx context.Context) error) error {
	return util.Retry(ctx, c.cfg.Retry, func() error {
		requestCtx, requestCancel := context.WithTimeout(ctx, time.Duration(c.cfg.Timeout))
		defer requestCancel()
		return f(requestCtx)
	})
}
