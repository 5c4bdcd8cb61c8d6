package receptionistapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReceptionistDashboard/internal/domain"
)

// Observer принимает метрики вызовов API (реализуется pkg/metrics)
type Observer interface {
	ObserveUpstream(method, endpoint string, status int, elapsed time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с API записи (receptionist backend)
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
	log        Logger
}

// NewClient создает новый экземпляр клиента API
// observer может быть nil, если метрики отключены
func NewClient(baseURL string, timeout time.Duration, observer Observer, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		observer: observer,
		log:      log,
	}
}

// --- Auth ---

// Login POST /auth/login
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login response without token", ErrInvalidResponse)
	}
	return &resp, nil
}

// Register POST /auth/register
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: register response without token", ErrInvalidResponse)
	}
	return &resp, nil
}

// --- Bookings ---

// ListBookings GET /bookings, все бронирования бизнеса оператора
// Отсутствующий в ответе список превращается в пустой
func (c *Client) ListBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var resp bookingsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/bookings", "/bookings", token, nil, &resp); err != nil {
		return nil, err
	}
	return c.checkStatuses("/bookings", resp.Bookings), nil
}

// ListUpcomingBookings GET /bookings/filter/upcoming
func (c *Client) ListUpcomingBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var resp bookingsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/bookings/filter/upcoming", "/bookings/filter/upcoming", token, nil, &resp); err != nil {
		return nil, err
	}
	return c.checkStatuses("/bookings/filter/upcoming", resp.Bookings), nil
}

// checkStatuses подменяет nil пустым списком и предупреждает о неизвестных статусах
// Такие бронирования остаются в списке: они видны в "all" без доступных действий
func (c *Client) checkStatuses(endpoint string, bookings []domain.Booking) []domain.Booking {
	if bookings == nil {
		return []domain.Booking{}
	}
	for _, b := range bookings {
		if _, err := domain.ParseBookingStatus(string(b.Status)); err != nil {
			c.log.Warn("GET %s - Booking id=%s: %v", endpoint, b.ID, err)
		}
	}
	return bookings
}

// UpdateBookingStatus PATCH /bookings/{id} с телом {"status": ...}
// Тело ответа не используется: после успешного запроса вызывающий перечитывает список
func (c *Client) UpdateBookingStatus(ctx context.Context, token, bookingID string, status domain.BookingStatus) error {
	path := "/bookings/" + url.PathEscape(bookingID)
	return c.doJSON(ctx, http.MethodPatch, path, "/bookings/{id}", token, updateStatusRequest{Status: status}, nil)
}

// --- Business ---

// GetBusiness GET /business
func (c *Client) GetBusiness(ctx context.Context, token string) (*domain.Business, error) {
	var resp businessResponse
	if err := c.doJSON(ctx, http.MethodGet, "/business", "/business", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Business == nil {
		return nil, fmt.Errorf("%w: business is missing in response", ErrInvalidResponse)
	}
	return resp.Business, nil
}

// ListServices GET /business/services
func (c *Client) ListServices(ctx context.Context, token string) ([]domain.Service, error) {
	var resp servicesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/business/services", "/business/services", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Services == nil {
		return []domain.Service{}, nil
	}
	return resp.Services, nil
}

// CreateService POST /business/services
func (c *Client) CreateService(ctx context.Context, token string, in ServiceInput) error {
	return c.doJSON(ctx, http.MethodPost, "/business/services", "/business/services", token, in, nil)
}

// UpdateService PATCH /business/services/{id}
func (c *Client) UpdateService(ctx context.Context, token, id string, in ServiceInput) error {
	path := "/business/services/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodPatch, path, "/business/services/{id}", token, in, nil)
}

// DeleteService DELETE /business/services/{id}
func (c *Client) DeleteService(ctx context.Context, token, id string) error {
	path := "/business/services/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodDelete, path, "/business/services/{id}", token, nil, nil)
}

// ListStaff GET /business/staff
func (c *Client) ListStaff(ctx context.Context, token string) ([]domain.Staff, error) {
	var resp staffResponse
	if err := c.doJSON(ctx, http.MethodGet, "/business/staff", "/business/staff", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Staff == nil {
		return []domain.Staff{}, nil
	}
	return resp.Staff, nil
}

// CreateStaff POST /business/staff
func (c *Client) CreateStaff(ctx context.Context, token string, in StaffInput) error {
	return c.doJSON(ctx, http.MethodPost, "/business/staff", "/business/staff", token, in, nil)
}

// UpdateStaff PATCH /business/staff/{id}
func (c *Client) UpdateStaff(ctx context.Context, token, id string, in StaffInput) error {
	path := "/business/staff/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodPatch, path, "/business/staff/{id}", token, in, nil)
}

// DeleteStaff DELETE /business/staff/{id}
func (c *Client) DeleteStaff(ctx context.Context, token, id string) error {
	path := "/business/staff/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodDelete, path, "/business/staff/{id}", token, nil, nil)
}

// doJSON выполняет запрос к API
// endpoint шаблон пути для метрик (без идентификаторов)
func (c *Client) doJSON(ctx context.Context, method, path, endpoint, token string, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, endpoint, 0, started)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()
	c.observe(method, endpoint, resp.StatusCode, started)
	c.log.Debug("%s %s - status=%d, elapsed=%s", method, endpoint, resp.StatusCode, time.Since(started))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			apiErr.kind = ErrUnauthorized
		case http.StatusNotFound:
			apiErr.kind = ErrNotFound
		default:
			apiErr.kind = ErrInvalidResponse
		}
		c.log.Warn("%s %s - API responded with status=%d", method, endpoint, resp.StatusCode)
		return apiErr
	}

	if respBody == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, respBody); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) observe(method, endpoint string, status int, started time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(method, endpoint, status, time.Since(started))
}

// errorMessage достает поле "error" из тела ответа с ошибкой
func errorMessage(raw []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		return ""
	}
	return errResp.Error
}
