package models

import (
	"time"

	"github.com/axlexpert/AX-BookingService/internal/domain"
)

// Request модели

// UpsertConfigRequest запрос на создание или обновление конфигурации слотов.
// Неуказанные параметры заполняются каноническими значениями по умолчанию.
type UpsertConfigRequest struct {
	UserID                  int64  `json:"userId"`
	BranchID                int64  `json:"branchId"`
	ServiceID               *int64 `json:"serviceId,omitempty"` // NULL = для всех услуг филиала
	SlotDurationMinutes     *int   `json:"slotDurationMinutes,omitempty"`
	MaxConcurrentBookings   *int   `json:"maxConcurrentBookings,omitempty"`
	AdvanceBookingDays      *int   `json:"advanceBookingDays,omitempty"` // 0 = без ограничений
	MinBookingNoticeMinutes *int   `json:"minBookingNoticeMinutes,omitempty"`
}

// ToDomainConfig конвертирует request в domain модель, подставляя
// значения по умолчанию вместо неуказанных полей
func (r *UpsertConfigRequest) ToDomainConfig() *domain.BranchSlotsConfig {
	cfg := domain.DefaultBranchSlotsConfig()
	cfg.BranchID = r.BranchID
	cfg.ServiceID = r.ServiceID

	if r.SlotDurationMinutes != nil {
		cfg.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.MaxConcurrentBookings != nil {
		cfg.MaxConcurrentBookings = *r.MaxConcurrentBookings
	}
	if r.AdvanceBookingDays != nil {
		cfg.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		cfg.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}

	return cfg
}

// Response модели

// ConfigResponse ответ с данными конфигурации слотов
type ConfigResponse struct {
	ID                      int64     `json:"id"`
	BranchID                int64     `json:"branchId"`
	ServiceID               *int64    `json:"serviceId,omitempty"`
	SlotDurationMinutes     int       `json:"slotDurationMinutes"`
	MaxConcurrentBookings   int       `json:"maxConcurrentBookings"`
	AdvanceBookingDays      int       `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// ConfigListResponse ответ со списком конфигураций
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.BranchSlotsConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                      c.ID,
		BranchID:                c.BranchID,
		ServiceID:               c.ServiceID,
		SlotDurationMinutes:     c.SlotDurationMinutes,
		MaxConcurrentBookings:   c.MaxConcurrentBookings,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.BranchSlotsConfig) *ConfigListResponse {
	if configs == nil {
		return &ConfigListResponse{
			Configs: []ConfigResponse{},
		}
	}

	resp := &ConfigListResponse{
		Configs: make([]ConfigResponse, len(configs)),
	}

	for i, config := range configs {
		if configResp := FromDomainConfig(config); configResp != nil {
			resp.Configs[i] = *configResp
		}
	}

	return resp
}
