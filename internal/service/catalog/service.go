package catalog

import (
	"context"
	"errors"
	"fmt"

	staffClient "github.com/axlexpert/AX-BookingService/internal/integrations/staffservice"
	"github.com/axlexpert/AX-BookingService/internal/service/catalog/models"
)

// Ключи кеша справочных данных
const (
	cacheKeyBranches = "catalog:branches"
	cacheKeyServices = "catalog:services"
)

// Service сервис справочных данных: филиалы, каталог услуг, сотрудники.
// Филиалы и каталог кешируются в Redis; кеш опционален (nil = без кеша).
type Service struct {
	branchClient BranchServiceClient
	staffClient  StaffServiceClient
	cache        ReferenceCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочных данных
func NewService(
	branchClient BranchServiceClient,
	staffClient StaffServiceClient,
	cache ReferenceCache,
	logger Logger,
) *Service {
	return &Service{
		branchClient: branchClient,
		staffClient:  staffClient,
		cache:        cache,
		logger:       logger,
	}
}

// GetBranches получает список филиалов сети (с кешированием)
func (s *Service) GetBranches(ctx context.Context) (*models.BranchListResponse, error) {
	if s.cache != nil {
		var cached models.BranchListResponse
		if s.cache.GetJSON(ctx, cacheKeyBranches, &cached) {
			s.logger.Info("GetBranches: cache hit, %d branches", len(cached.Branches))
			return &cached, nil
		}
	}

	branches, err := s.branchClient.GetAllBranches(ctx)
	if err != nil {
		s.logger.Error("GetBranches: failed to fetch branches: %v", err)
		return nil, fmt.Errorf("%w: GetBranches - integration error: %v", ErrInternal, err)
	}

	resp := models.FromBranches(branches)

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKeyBranches, resp)
	}

	s.logger.Info("GetBranches: successfully fetched %d branches", len(resp.Branches))
	return resp, nil
}

// GetServices получает каталог услуг (с кешированием)
func (s *Service) GetServices(ctx context.Context) (*models.ServiceListResponse, error) {
	if s.cache != nil {
		var cached models.ServiceListResponse
		if s.cache.GetJSON(ctx, cacheKeyServices, &cached) {
			s.logger.Info("GetServices: cache hit, %d services", len(cached.Services))
			return &cached, nil
		}
	}

	services, err := s.branchClient.GetAllServices(ctx)
	if err != nil {
		s.logger.Error("GetServices: failed to fetch services: %v", err)
		return nil, fmt.Errorf("%w: GetServices - integration error: %v", ErrInternal, err)
	}

	resp := models.FromServices(services)

	if s.cache != nil {
		s.cache.SetJSON(ctx, cacheKeyServices, resp)
	}

	s.logger.Info("GetServices: successfully fetched %d services", len(resp.Services))
	return resp, nil
}

// GetEmployees получает список сотрудников.
// При недоступности StaffService возвращает пустой список с признаком
// degraded вместо ошибки - консоль продолжает работать без назначения
// сотрудников. Сотрудники не кешируются: признак available меняется часто.
func (s *Service) GetEmployees(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.staffClient.GetEmployeesWithGracefulDegradation(ctx)
	if err != nil {
		if errors.Is(err, staffClient.ErrServiceDegraded) {
			s.logger.Warn("GetEmployees: staff service degraded, returning empty list")
			return models.FromEmployees([]staffClient.Employee{}, true), nil
		}
		s.logger.Error("GetEmployees: failed to fetch employees: %v", err)
		return nil, fmt.Errorf("%w: GetEmployees - integration error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEmployees: successfully fetched %d employees", len(employees))
	return models.FromEmployees(employees, false), nil
}

// FindService ищет услугу в каталоге по ID (через кешируемый список)
func (s *Service) FindService(ctx context.Context, serviceID int64) (*models.ServiceResponse, bool, error) {
	services, err := s.GetServices(ctx)
	if err != nil {
		return nil, false, err
	}

	for i := range services.Services {
		if services.Services[i].ID == serviceID {
			return &services.Services[i], true, nil
		}
	}

	return nil, false, nil
}
