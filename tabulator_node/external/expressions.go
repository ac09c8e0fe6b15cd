package external

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/util/message"
	"github.com/GDVFox/gotabulator/util/storage"
)

const expressionsBucket = "expressions"

// ExpressionStore реестр именованных выражений в etcd.
type ExpressionStore struct {
	cli *storage.ETCDClient
}

// NewExpressionStore создает ExpressionStore поверх клиента etcd.
func NewExpressionStore(cli *storage.ETCDClient) *ExpressionStore {
	return &ExpressionStore{cli: cli}
}

// LoadExpressionNames получает список имен выражений.
func (s *ExpressionStore) LoadExpressionNames(ctx context.Context) ([]string, error) {
	names, err := s.cli.List(ctx, expressionsBucket)
	if err != nil {
		return nil, errors.Wrap(err, "can not list expressions from etcd")
	}
	return names, nil
}

// LoadExpression получает выражение по имени.
func (s *ExpressionStore) LoadExpression(ctx context.Context, name string) (*message.Expression, error) {
	data, err := s.cli.Get(ctx, expressionsBucket, name)
	if err != nil {
		return nil, errors.Wrap(err, "can not load expression from etcd")
	}

	expr := &message.Expression{}
	if err := json.Unmarshal(data, expr); err != nil {
		return nil, errors.Wrap(err, "can not unmarshal expression")
	}
	return expr, nil
}

// RegisterExpression сохраняет выражение, если имя еще не занято.
func (s *ExpressionStore) RegisterExpression(ctx context.Context, expr *message.Expression) error {
	data, err := json.Marshal(expr)
	if err != nil {
		return errors.Wrap(err, "can not marshal expression")
	}

	if err := s.cli.Create(ctx, expressionsBucket, expr.Name, data); err != nil {
		return errors.Wrap(err, "can not register expression in etcd")
	}
	return nil
}

// DeleteExpression удаляет выражение по имени.
func (s *ExpressionStore) DeleteExpression(ctx context.Context, name string) error {
	if err := s.cli.Delete(ctx, expressionsBucket, name); err != nil {
		return errors.Wrap(err, "can not delete expression from etcd")
	}
	return nil
}

// Close закрывает соединение с etcd.
func (s *ExpressionStore) Close() error {
	return s.cli.Close()
}
