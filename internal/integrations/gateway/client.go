package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result ответ шлюза в нормализованном виде
type Result struct {
	StatusCode int
	StatusText string
	Data       json.RawMessage
}

// OK сообщает, что шлюз ответил 2xx
func (r *Result) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Client клиент внешнего API Gateway со списком документов
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient создает клиента; пустой url допустим, Fetch вернет ErrNotConfigured
func NewClient(url string, timeout time.Duration, transport http.RoundTripper) *Client {
	httpClient := &http.Client{Timeout: timeout}
	if transport != nil {
		httpClient.Transport = transport
	}
	return &Client{
		url:        strings.TrimSpace(url),
		httpClient: httpClient,
	}
}

// Configured сообщает, задан ли URL шлюза
func (c *Client) Configured() bool {
	return c.url != ""
}

// URL адрес шлюза
func (c *Client) URL() string {
	return c.url
}

// Fetch выполняет GET к шлюзу.
// Не-2xx ответ не считается ошибкой: статус возвращается в Result.
func (c *Client) Fetch(ctx context.Context) (*Result, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Data:       unwrapData(body),
	}, nil
}

// unwrapData снимает обертку {"success":..., "data": ...}.
// Не-JSON тело возвращается как JSON-строка.
func unwrapData(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	if !json.Valid(trimmed) {
		text, _ := json.Marshal(string(trimmed))
		return text
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err == nil {
		_, hasSuccess := envelope["success"]
		data, hasData := envelope["data"]
		if hasSuccess && hasData {
			return data
		}
	}
	return json.RawMessage(trimmed)
}
