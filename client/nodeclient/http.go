package nodeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/GDVFox/gotabulator/tabulator"
	"github.com/GDVFox/gotabulator/util/httplib"
	"github.com/GDVFox/gotabulator/util/message"
)

var (
	nodeScheme             = "http"
	modesPath              = "/v1/modes"
	parsePath              = "/v1/parse"
	tabulatePath           = "/v1/tabulate"
	streamPath             = "/v1/tabulate/stream"
	expressionsPath        = "/v1/expressions"
	expressionPath         = "/v1/expressions/"
	tabulateExpressionPath = "/v1/expressions/%s/tabulate"
	graphPath              = "/v1/expressions/%s/graph"
)

// TabulatorNodeClientConfig набор настроек для TabulatorNodeClient.
type TabulatorNodeClientConfig struct {
	Address string
	Timeout time.Duration
}

// TabulatorNodeClient клиент для подключения к tabulator_node.
type TabulatorNodeClient struct {
	client *http.Client
	cfg    *TabulatorNodeClientConfig
}

// NewTabulatorNodeClient возвращает новый TabulatorNodeClient.
func NewTabulatorNodeClient(cfg *TabulatorNodeClientConfig) *TabulatorNodeClient {
	return &TabulatorNodeClient{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

func (c *TabulatorNodeClient) url(scheme, path string) string {
	u := url.URL{
		Scheme: scheme,
		Host:   c.cfg.Address,
		Path:   path,
	}
	return u.String()
}

// GetModes возвращает поддерживаемые домены.
func (c *TabulatorNodeClient) GetModes(ctx context.Context) ([]string, error) {
	modes := map[string][]string{}
	if err := c.do(ctx, http.MethodGet, c.url(nodeScheme, modesPath), nil, &modes); err != nil {
		return nil, err
	}
	return modes["modes"], nil
}

// Parse разбирает выражение на стороне tabulator_node.
func (c *TabulatorNodeClient) Parse(ctx context.Context, req *message.ParseRequest) (*message.ParseResponse, error) {
	resp := &message.ParseResponse{}
	if err := c.do(ctx, http.MethodPost, c.url(nodeScheme, parsePath), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Tabulate табулирует выражение на стороне tabulator_node.
func (c *TabulatorNodeClient) Tabulate(ctx context.Context, req *message.TabulateRequest) (*message.TabulateResponse, error) {
	resp := &message.TabulateResponse{}
	if err := c.do(ctx, http.MethodPost, c.url(nodeScheme, tabulatePath), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetExpressionsList возвращает список имен выражений.
func (c *TabulatorNodeClient) GetExpressionsList(ctx context.Context) (*message.ExpressionList, error) {
	list := &message.ExpressionList{}
	if err := c.do(ctx, http.MethodGet, c.url(nodeScheme, expressionsPath), nil, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetExpression возвращает выражение по имени.
func (c *TabulatorNodeClient) GetExpression(ctx context.Context, name string) (*message.Expression, error) {
	expr := &message.Expression{}
	if err := c.do(ctx, http.MethodGet, c.url(nodeScheme, expressionPath+name), nil, expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// CreateExpression сохраняет выражение в реестре.
func (c *TabulatorNodeClient) CreateExpression(ctx context.Context, expr *message.Expression) error {
	return c.do(ctx, http.MethodPost, c.url(nodeScheme, expressionsPath), expr, nil)
}

// DeleteExpression удаляет выражение из реестра.
func (c *TabulatorNodeClient) DeleteExpression(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, c.url(nodeScheme, expressionPath+name), nil, nil)
}

// TabulateExpression табулирует выражение из реестра.
func (c *TabulatorNodeClient) TabulateExpression(ctx context.Context, name string, b tabulator.Bounds) (*message.TabulateResponse, error) {
	resp := &message.TabulateResponse{}
	if err := c.do(ctx, http.MethodPost, c.url(nodeScheme, fmt.Sprintf(tabulateExpressionPath, name)), b, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetGraph возвращает SVG с деревом выражения.
func (c *TabulatorNodeClient) GetGraph(ctx context.Context, name string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, c.url(nodeScheme, fmt.Sprintf(graphPath, name)), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (c *TabulatorNodeClient) do(ctx context.Context, method, url string, body, respData interface{}) error {
	resp, err := c.send(ctx, method, url, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if respData == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respData); err != nil {
		return errors.Wrap(err, "can not decode response")
	}
	return nil
}

func (c *TabulatorNodeClient) send(ctx context.Context, method, url string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "can not marshal request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", string(httplib.ContentTypeJSON))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		defer resp.Body.Close()
		return nil, c.handleError(resp.Body)
	}
	return resp, nil
}

func (c *TabulatorNodeClient) handleError(r io.Reader) error {
	nodeError := &httplib.ErrorBody{}
	if err := json.NewDecoder(r).Decode(nodeError); err != nil {
		return errors.Wrap(err, "can not decode error response")
	}
	return nodeError
}

// AsErrorBody извлекает ErrorBody из ошибки клиента.
func AsErrorBody(err error) (*httplib.ErrorBody, bool) {
	var body *httplib.ErrorBody
	if errors.As(err, &body) {
		return body, true
	}
	return nil, false
}
