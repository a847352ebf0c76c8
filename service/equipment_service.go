// api/service/equipment_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/lotr/api/auth"
	"github.com/dev-mohitbeniwal/lotr/api/config"
	lotr_errors "github.com/dev-mohitbeniwal/lotr/api/errors"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
	"github.com/dev-mohitbeniwal/lotr/api/model"
	"github.com/dev-mohitbeniwal/lotr/api/util"
	helper_util "github.com/dev-mohitbeniwal/lotr/api/util/helper"
)

type IEquipmentService interface {
	GetAllEquipment(ctx context.Context, token string, page, perPage int, searchTerm string) (*model.EquipmentList, error)
	GetEquipmentByID(ctx context.Context, token string, id int) (*model.EquipmentDetail, error)
	CreateEquipment(ctx context.Context, token string, equipment model.Equipment) (*model.Equipment, error)
	UpdateEquipment(ctx context.Context, token string, id int, equipment model.Equipment) (*model.Equipment, error)
	DeleteEquipment(ctx context.Context, token string, id int) error
}

type IEquipmentDAO interface {
	GetAllEquipment(ctx context.Context, page, perPage int, searchTerm string) ([]model.Equipment, int64, error)
	GetEquipmentByID(ctx context.Context, id int) (*model.Equipment, error)
	CreateEquipment(ctx context.Context, equipment model.Equipment, userID int) (*model.Equipment, error)
	UpdateEquipment(ctx context.Context, id int, equipment model.Equipment, userID int) (*model.Equipment, error)
	DeleteEquipment(ctx context.Context, id, userID int) error
}

// EquipmentService handles business logic for equipment operations
type EquipmentService struct {
	equipmentDAO    IEquipmentDAO
	auth            Authorizer
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	cacheFlags      config.EntityCacheFlags
}

func NewEquipmentService(
	equipmentDAO IEquipmentDAO,
	authorizer Authorizer,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	cacheFlags config.EntityCacheFlags,
) *EquipmentService {
	service := &EquipmentService{
		equipmentDAO:    equipmentDAO,
		auth:            authorizer,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		cacheFlags:      cacheFlags,
	}

	eventBus.Subscribe("equipment.created", service.handleEquipmentChanged)
	eventBus.Subscribe("equipment.updated", service.handleEquipmentChanged)
	eventBus.Subscribe("equipment.deleted", service.handleEquipmentChanged)

	return service
}

func (s *EquipmentService) handleEquipmentChanged(ctx context.Context, event util.Event) error {
	id, ok := event.Payload.(int)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	changeType := event.Type[len("equipment."):]
	return s.notificationSvc.NotifyEntityChange(ctx, changeType, "equipment", id)
}

func (s *EquipmentService) authorize(ctx context.Context, token, permission string) (*auth.Claims, error) {
	allowed, err := s.auth.HasPermission(ctx, token, permission)
	if err != nil {
		logger.Error("Permission check failed", zap.Error(err), zap.String("permission", permission))
		return nil, lotr_errors.ErrDatabaseOperation
	}
	if !allowed {
		return nil, lotr_errors.ErrForbidden
	}
	claims, status := s.auth.ValidateToken(token)
	if status != auth.StatusValid {
		return nil, lotr_errors.ErrForbidden
	}
	return claims, nil
}

func (s *EquipmentService) GetAllEquipment(ctx context.Context, token string, page, perPage int, searchTerm string) (*model.EquipmentList, error) {
	if _, err := s.authorize(ctx, token, "read"); err != nil {
		return nil, err
	}

	if s.cacheFlags.List {
		if cached, err := s.cacheService.GetEquipmentList(ctx, page, perPage, searchTerm); err == nil && cached != nil {
			logger.Info("Returning cached equipment list", zap.Int("page", page))
			cached.Meta.CacheUsed = true
			return cached, nil
		}
	}

	equipment, total, err := s.equipmentDAO.GetAllEquipment(ctx, page, perPage, searchTerm)
	if err != nil {
		return nil, err
	}

	list := model.EquipmentList{
		Data: equipment,
		Meta: model.ListMeta{
			CurrentPage: page,
			PerPage:     perPage,
			TotalCount:  total,
			TotalPages:  helper_util.TotalPages(total, perPage),
		},
	}

	if s.cacheFlags.List {
		_ = s.cacheService.SetEquipmentList(ctx, page, perPage, searchTerm, list)
	}

	return &list, nil
}

func (s *EquipmentService) GetEquipmentByID(ctx context.Context, token string, id int) (*model.EquipmentDetail, error) {
	if _, err := s.authorize(ctx, token, "read"); err != nil {
		return nil, err
	}

	if s.cacheFlags.ByID {
		if cached, err := s.cacheService.GetEquipment(ctx, id); err == nil && cached != nil {
			logger.Info("Returning cached equipment", zap.Int("equipmentID", id))
			return &model.EquipmentDetail{
				Data: *cached,
				Meta: model.DetailMeta{CacheUsed: true},
			}, nil
		}
	}

	equipment, err := s.equipmentDAO.GetEquipmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheFlags.ByID {
		_ = s.cacheService.SetEquipment(ctx, *equipment)
	}

	return &model.EquipmentDetail{Data: *equipment}, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, token string, equipment model.Equipment) (*model.Equipment, error) {
	claims, err := s.authorize(ctx, token, "create")
	if err != nil {
		return nil, err
	}

	if err := s.validationUtil.ValidateEquipment(equipment); err != nil {
		return nil, fmt.Errorf("%w: %s", lotr_errors.ErrInvalidEquipmentData, err)
	}

	created, err := s.equipmentDAO.CreateEquipment(ctx, equipment, claims.UserID)
	if err != nil {
		return nil, err
	}

	logger.Info("Created equipment", zap.Int("equipmentID", created.ID))
	s.eventBus.Publish(ctx, "equipment.created", created.ID)
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, token string, id int, equipment model.Equipment) (*model.Equipment, error) {
	claims, err := s.authorize(ctx, token, "update")
	if err != nil {
		return nil, err
	}

	if err := s.validationUtil.ValidateEquipment(equipment); err != nil {
		return nil, fmt.Errorf("%w: %s", lotr_errors.ErrInvalidEquipmentData, err)
	}

	updated, err := s.equipmentDAO.UpdateEquipment(ctx, id, equipment, claims.UserID)
	if err != nil {
		return nil, err
	}

	s.cacheService.DeleteEquipment(ctx, id)
	logger.Info("Updated equipment", zap.Int("equipmentID", id))
	s.eventBus.Publish(ctx, "equipment.updated", id)
	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, token string, id int) error {
	claims, err := s.authorize(ctx, token, "delete")
	if err != nil {
		return err
	}

	if err := s.equipmentDAO.DeleteEquipment(ctx, id, claims.UserID); err != nil {
		return err
	}

	s.cacheService.DeleteEquipment(ctx, id)
	logger.Info("Deleted equipment", zap.Int("equipmentID", id))
	s.eventBus.Publish(ctx, "equipment.deleted", id)
	return nil
}
