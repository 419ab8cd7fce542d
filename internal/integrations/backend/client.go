package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxResponseSize ограничение на размер тела ответа backend
const maxResponseSize = 10 << 20

// Client клиент REST API барбершопов
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	metrics    MetricsRecorder
	log        Logger
}

// Option дополнительная настройка клиента
type Option func(*Client)

// WithTransport задает RoundTripper (например, с трассировкой)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.httpClient.Transport = rt
		}
	}
}

// WithLocation задает часовой пояс для дат без смещения
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithMetrics подключает учет запросов
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// NewClient создает новый экземпляр клиента backend API
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		loc:     time.Local,
		metrics: nopMetrics{},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location возвращает часовой пояс клиента
func (c *Client) Location() *time.Location {
	return c.loc
}

// Shops ресурс барбершопов
func (c *Client) Shops() *ShopsAPI {
	return &ShopsAPI{c: c}
}

// Customers ресурс клиентов
func (c *Client) Customers() *CustomersAPI {
	return &CustomersAPI{c: c}
}

// Services ресурс услуг
func (c *Client) Services() *ServicesAPI {
	return &ServicesAPI{c: c}
}

// Appointments ресурс записей
func (c *Client) Appointments() *AppointmentsAPI {
	return &AppointmentsAPI{c: c}
}

// do выполняет запрос и возвращает тело успешного ответа.
// Любой не-2xx ответ и любая сетевая ошибка возвращаются как *Error.
func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Op: op, Message: "failed to encode request", Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Op: op, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncBackendRequest(method, "error")
		c.log.Error("Backend %s %s failed: %v", method, path, err)
		return nil, &Error{Op: op, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	c.metrics.IncBackendRequest(method, strconv.Itoa(resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &Error{Op: op, StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := errorMessage(resp.StatusCode, data)
		c.log.Warn("Backend %s %s returned %d: %s", method, path, resp.StatusCode, msg)
		return nil, &Error{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	return data, nil
}

// errorMessage извлекает сообщение об ошибке: поле message, затем error,
// затем текст тела как есть, иначе "Erro <status>: <statusText>"
func errorMessage(status int, body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}

		var text string
		if err := json.Unmarshal(trimmed, &text); err == nil && text != "" {
			return text
		}

		if trimmed[0] != '{' && trimmed[0] != '[' {
			return string(trimmed)
		}
	}
	return fmt.Sprintf("Erro %d: %s", status, http.StatusText(status))
}

// decodeOne разбирает одиночный объект ответа
func decodeOne[T any](op string, status int, body []byte) (*T, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &Error{Op: op, StatusCode: status, Message: "empty response body", Err: ErrInvalidResponse}
	}
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &Error{Op: op, StatusCode: status, Message: "failed to decode response",
			Err: fmt.Errorf("%w: %v", ErrInvalidResponse, err)}
	}
	return &v, nil
}

// decodeList нормализует ответ со списком и разбирает элементы.
// Нераспознанная форма логируется и дает пустой список.
func decodeList[T any](c *Client, op string, body []byte) ([]*T, error) {
	env := normalizeList(body)
	if env.shape == shapeUnrecognized {
		c.log.Warn("Backend %s: unrecognized list response, treating as empty: %.200s", op, string(body))
		return []*T{}, nil
	}

	out := make([]*T, 0, len(env.items))
	for i, raw := range env.items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: fmt.Sprintf("failed to decode item %d", i),
				Err: fmt.Errorf("%w: %v", ErrInvalidResponse, err)}
		}
		out = append(out, &v)
	}
	return out, nil
}
