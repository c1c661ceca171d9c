package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с StaffService (сотрудники и автомобили клиентов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEmployee получает сотрудника по ID
func (c *Client) GetEmployee(ctx context.Context, employeeID int64) (*Employee, error) {
	url := fmt.Sprintf("%s/internal/employees/%d", c.baseURL, employeeID)

	var employee Employee
	if err := c.getJSON(ctx, url, &employee, ErrEmployeeNotFound); err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetEmployees получает список сотрудников сети
func (c *Client) GetEmployees(ctx context.Context) ([]Employee, error) {
	url := fmt.Sprintf("%s/internal/employees", c.baseURL)

	employees := make([]Employee, 0)
	if err := c.getJSON(ctx, url, &employees, nil); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployeesWithGracefulDegradation получает список сотрудников с graceful
// degradation: при недоступности StaffService возвращает ErrServiceDegraded,
// чтобы консоль могла показать пустой список вместо ошибки
func (c *Client) GetEmployeesWithGracefulDegradation(ctx context.Context) ([]Employee, error) {
	employees, err := c.GetEmployees(ctx)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("StaffService unavailable, applying graceful degradation for employee list: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	return employees, nil
}

// GetUserVehicles получает автомобили клиента
func (c *Client) GetUserVehicles(ctx context.Context, userID int64) ([]Vehicle, error) {
	url := fmt.Sprintf("%s/internal/users/%d/vehicles", c.baseURL, userID)

	vehicles := make([]Vehicle, 0)
	if err := c.getJSON(ctx, url, &vehicles, nil); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetUserVehicle получает конкретный автомобиль клиента.
// Возвращает ErrVehicleNotFound, если автомобиль не принадлежит клиенту.
func (c *Client) GetUserVehicle(ctx context.Context, userID, vehicleID int64) (*Vehicle, error) {
	vehicles, err := c.GetUserVehicles(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range vehicles {
		if vehicles[i].ID == vehicleID {
			return &vehicles[i], nil
		}
	}

	return nil, ErrVehicleNotFound
}

// getJSON выполняет GET запрос и декодирует JSON ответ.
// notFoundErr подставляется для статуса 404, если задан.
func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
