package branchservice

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

// Client клиент для работы с BranchService (филиалы и каталог услуг)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BranchService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBranch получает филиал по ID
func (c *Client) GetBranch(ctx context.Context, branchID int64) (*Branch, error) {
	url := fmt.Sprintf("%s/internal/branches/%d", c.baseURL, branchID)

	var branch Branch
	if err := c.getJSON(ctx, url, &branch, ErrBranchNotFound); err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetAllBranches получает список всех филиалов сети
func (c *Client) GetAllBranches(ctx context.Context) ([]Branch, error) {
	url := fmt.Sprintf("%s/internal/branches", c.baseURL)

	branches := make([]Branch, 0)
	if err := c.getJSON(ctx, url, &branches, nil); err != nil {
		return nil, err
	}
	return branches, nil
}

// GetService получает услугу каталога по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}
	return &service, nil
}

// GetAllServices получает каталог услуг целиком
func (c *Client) GetAllServices(ctx context.Context) ([]Service, error) {
	url := fmt.Sprintf("%s/internal/services", c.baseURL)

	services := make([]Service, 0)
	if err := c.getJSON(ctx, url, &services, nil); err != nil {
		return nil, err
	}
	return services, nil
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
