// Package bookings — read-сторона сервиса: публичная витрина доступных
// слотов и админский листинг с фильтрацией и сортировкой.
package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// QueryConfig конфигурация движка выборки.
// Инжектируется явно (а не глобальной константой), чтобы тесты
// и окружения могли варьировать allow-list сортировки.
type QueryConfig struct {
	SortFields  []string
	DefaultSort string
}

// DefaultQueryConfig возвращает конфигурацию выборки по умолчанию
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		SortFields:  domain.DefaultSortFields,
		DefaultSort: domain.DefaultSortField,
	}
}

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	queryCfg    QueryConfig
	logger      Logger
}

// NewService создает новый экземпляр сервиса чтения
func NewService(bookingRepo BookingRepository, queryCfg QueryConfig, logger Logger) *Service {
	if len(queryCfg.SortFields) == 0 {
		queryCfg = DefaultQueryConfig()
	}

	return &Service{
		bookingRepo: bookingRepo,
		queryCfg:    queryCfg,
		logger:      logger,
	}
}

// GetPublicBookings возвращает публичную витрину: не удалённые доступные
// слоты со start_time строго в будущем, по возрастанию start_time.
// Параметров нет — публичный маршрут ничего не принимает.
func (s *Service) GetPublicBookings(ctx context.Context) (*models.BookingListResponse, error) {
	filter := domain.BookingListFilter{
		Status:     ptr.Ptr(domain.StatusAvailable),
		Deleted:    false,
		FutureOnly: true,
		SortField:  "startTime",
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetPublicBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPublicBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPublicBookings: fetched %d available slots", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetAdminBookings возвращает админский листинг с фильтрацией.
// Поле сортировки вне allow-list откатывается на дефолтное. Пока
// showPast=false, выборка ограничена будущими бронированиями и
// сортируется по start_time независимо от параметра sort — это
// осознанный продуктовый компромисс, оформленный явной веткой.
func (s *Service) GetAdminBookings(ctx context.Context, req *models.AdminListRequest) (*models.BookingListResponse, error) {
	filter, err := s.buildAdminFilter(req)
	if err != nil {
		s.logger.Warn("GetAdminBookings: invalid request: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetAdminBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAdminBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAdminBookings: fetched %d bookings (sort=%s, showDeleted=%t, showPast=%t)",
		len(bookings), filter.SortField, req.ShowDeleted, req.ShowPast)
	return models.FromDomainBookingList(bookings), nil
}

// buildAdminFilter нормализует параметры запроса в единый объект фильтра
func (s *Service) buildAdminFilter(req *models.AdminListRequest) (domain.BookingListFilter, error) {
	sort := req.Sort
	if !s.isAllowedSortField(sort) {
		sort = s.queryCfg.DefaultSort
	}

	filter := domain.BookingListFilter{
		Deleted:   req.ShowDeleted,
		SortField: sort,
	}

	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			return filter, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	if !req.ShowPast {
		filter.FutureOnly = true
		filter.SortField = "startTime"
	}

	return filter, nil
}

func (s *Service) isAllowedSortField(sort string) bool {
	for _, field := range s.queryCfg.SortFields {
		if sort == field {
			return true
		}
	}
	return false
}
