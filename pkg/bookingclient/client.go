package bookingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент REST API записи в барбершоп
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger

	mu    sync.RWMutex
	token string
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetToken задает токен сессии администратора
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token текущий токен сессии
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ListServices получает каталог услуг
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var list serviceList
	if err := c.do(ctx, http.MethodGet, "/api/v1/services", nil, &list); err != nil {
		return nil, err
	}
	return list.Services, nil
}

// AvailableSlots получает свободные слоты. date в формате YYYY-MM-DD
func (c *Client) AvailableSlots(ctx context.Context, serviceID, date, period string) (*Slots, error) {
	query := url.Values{}
	query.Set("serviceId", serviceID)
	query.Set("date", date)
	query.Set("period", period)

	var slots Slots
	if err := c.do(ctx, http.MethodGet, "/api/v1/available-slots?"+query.Encode(), nil, &slots); err != nil {
		return nil, err
	}
	return &slots, nil
}

// CreateAppointment создает запись. Занятый слот возвращается как ErrSlotNotAvailable
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*CreatedAppointment, error) {
	var created CreatedAppointment
	if err := c.do(ctx, http.MethodPost, "/api/v1/appointments", req, &created); err != nil {
		return nil, err
	}
	c.log.Info("Appointment created: id=%s", created.ID)
	return &created, nil
}

// SignIn входит как администратор и запоминает токен
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp signInResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/sign-in", signInRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp.Session, nil
}

// SignOut завершает сессию и забывает токен
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/sign-out", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// Session возвращает текущую сессию
func (c *Client) Session(ctx context.Context) (*Session, error) {
	var sess Session
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/session", nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// ListAppointments получает записи по фильтру all, today или upcoming
func (c *Client) ListAppointments(ctx context.Context, filter string) (*AppointmentList, error) {
	path := "/api/v1/admin/appointments"
	if filter != "" {
		path += "?filter=" + url.QueryEscape(filter)
	}

	var list AppointmentList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateAppointmentStatus меняет статус записи
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	path := fmt.Sprintf("/api/v1/admin/appointments/%s/status", url.PathEscape(id))
	return c.do(ctx, http.MethodPatch, path, updateStatusRequest{Status: status}, nil)
}

// DeleteAppointment удаляет запись. Подтверждение должен получить вызывающий
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/admin/appointments/%s?confirm=true", url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeError(resp)
		c.log.Warn("%s %s: %v", method, path, apiErr)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		apiErr.kind = ErrInvalidRequest
	case http.StatusUnauthorized:
		apiErr.kind = ErrUnauthorized
	case http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case http.StatusConflict:
		apiErr.kind = ErrSlotNotAvailable
	case http.StatusPreconditionRequired:
		apiErr.kind = ErrConfirmationRequired
	case http.StatusTooManyRequests:
		apiErr.kind = ErrRateLimited
	default:
		apiErr.kind = ErrInvalidResponse
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}
