package models

import (
	"github.com/axlexpert/AX-BookingService/internal/integrations/branchservice"
	"github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
)

// BranchResponse ответ с данными филиала
type BranchResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	OpenHours  string `json:"openHours"`  // "09:00"
	CloseHours string `json:"closeHours"` // "17:00"
}

// BranchListResponse ответ со списком филиалов
type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
}

// ServiceResponse ответ с данными услуги каталога
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Description     string   `json:"description,omitempty"`
}

// ServiceListResponse ответ с каталогом услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Available bool   `json:"available"`
}

// EmployeeListResponse ответ со списком сотрудников.
// Degraded выставляется, когда StaffService недоступен и список пуст
// не потому, что сотрудников нет.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Degraded  bool               `json:"degraded,omitempty"`
}

// Методы конвертации

// FromBranches конвертирует ответ BranchService в DTO
func FromBranches(branches []branchservice.Branch) *BranchListResponse {
	resp := &BranchListResponse{
		Branches: make([]BranchResponse, len(branches)),
	}

	for i, b := range branches {
		resp.Branches[i] = BranchResponse{
			ID:         b.ID,
			Name:       b.Name,
			Address:    b.Address,
			Phone:      b.Phone,
			OpenHours:  b.OpenHours,
			CloseHours: b.CloseHours,
		}
	}

	return resp
}

// FromServices конвертирует каталог BranchService в DTO
func FromServices(services []branchservice.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, len(services)),
	}

	for i, s := range services {
		description := ""
		if s.Description != nil {
			description = *s.Description
		}

		resp.Services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Description:     description,
		}
	}

	return resp
}

// FromEmployees конвертирует список сотрудников StaffService в DTO
func FromEmployees(employees []staffservice.Employee, degraded bool) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, len(employees)),
		Degraded:  degraded,
	}

	for i, e := range employees {
		resp.Employees[i] = EmployeeResponse{
			ID:        e.ID,
			Name:      e.Name,
			Role:      e.Role,
			Available: e.Available,
		}
	}

	return resp
}
