// api/service/faction_service.go
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

type IFactionService interface {
	GetAllFactions(ctx context.Context, token string, page, perPage int, searchTerm string) (*model.FactionList, error)
	GetFactionByID(ctx context.Context, token string, id int) (*model.FactionDetail, error)
	CreateFaction(ctx context.Context, token string, faction model.Faction) (*model.Faction, error)
	UpdateFaction(ctx context.Context, token string, id int, faction model.Faction) (*model.Faction, error)
	DeleteFaction(ctx context.Context, token string, id int) error
}

type IFactionDAO interface {
	GetAllFactions(ctx context.Context, page, perPage int, searchTerm string) ([]model.Faction, int64, error)
	GetFactionByID(ctx context.Context, id int) (*model.Faction, error)
	CreateFaction(ctx context.Context, faction model.Faction, userID int) (*model.Faction, error)
	UpdateFaction(ctx context.Context, id int, faction model.Faction, userID int) (*model.Faction, error)
	DeleteFaction(ctx context.Context, id, userID int) error
}

// FactionService handles business logic for faction operations
type FactionService struct {
	factionDAO      IFactionDAO
	auth            Authorizer
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	cacheFlags      config.EntityCacheFlags
}

func NewFactionService(
	factionDAO IFactionDAO,
	authorizer Authorizer,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	cacheFlags config.EntityCacheFlags,
) *FactionService {
	service := &FactionService{
		factionDAO:      factionDAO,
		auth:            authorizer,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		cacheFlags:      cacheFlags,
	}

	eventBus.Subscribe("faction.created", service.handleFactionChanged)
	eventBus.Subscribe("faction.updated", service.handleFactionChanged)
	eventBus.Subscribe("faction.deleted", service.handleFactionChanged)

	return service
}

func (s *FactionService) handleFactionChanged(ctx context.Context, event util.Event) error {
	id, ok := event.Payload.(int)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	changeType := event.Type[len("faction."):]
	return s.notificationSvc.NotifyEntityChange(ctx, changeType, "faction", id)
}

func (s *FactionService) authorize(ctx context.Context, token, permission string) (*auth.Claims, error) {
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

func (s *FactionService) GetAllFactions(ctx context.Context, token string, page, perPage int, searchTerm string) (*model.FactionList, error) {
	if _, err := s.authorize(ctx, token, "read"); err != nil {
		return nil, err
	}

	if s.cacheFlags.List {
		if cached, err := s.cacheService.GetFactionList(ctx, page, perPage, searchTerm); err == nil && cached != nil {
			logger.Info("Returning cached faction list", zap.Int("page", page))
			cached.Meta.CacheUsed = true
			return cached, nil
		}
	}

	factions, total, err := s.factionDAO.GetAllFactions(ctx, page, perPage, searchTerm)
	if err != nil {
		return nil, err
	}

	list := model.FactionList{
		Data: factions,
		Meta: model.ListMeta{
			CurrentPage: page,
			PerPage:     perPage,
			TotalCount:  total,
			TotalPages:  helper_util.TotalPages(total, perPage),
		},
	}

	if s.cacheFlags.List {
		_ = s.cacheService.SetFactionList(ctx, page, perPage, searchTerm, list)
	}

	return &list, nil
}

func (s *FactionService) GetFactionByID(ctx context.Context, token string, id int) (*model.FactionDetail, error) {
	if _, err := s.authorize(ctx, token, "read"); err != nil {
		return nil, err
	}

	if s.cacheFlags.ByID {
		if cached, err := s.cacheService.GetFaction(ctx, id); err == nil && cached != nil {
			logger.Info("Returning cached faction", zap.Int("factionID", id))
			return &model.FactionDetail{
				Data: *cached,
				Meta: model.DetailMeta{CacheUsed: true},
			}, nil
		}
	}

	faction, err := s.factionDAO.GetFactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheFlags.ByID {
		_ = s.cacheService.SetFaction(ctx, *faction)
	}

	return &model.FactionDetail{Data: *faction}, nil
}

func (s *FactionService) CreateFaction(ctx context.Context, token string, faction model.Faction) (*model.Faction, error) {
	claims, err := s.authorize(ctx, token, "create")
	if err != nil {
		return nil, err
	}

	if err := s.validationUtil.ValidateFaction(faction); err != nil {
		return nil, fmt.Errorf("%w: %s", lotr_errors.ErrInvalidFactionData, err)
	}

	created, err := s.factionDAO.CreateFaction(ctx, faction, claims.UserID)
	if err != nil {
		return nil, err
	}

	logger.Info("Created faction", zap.Int("factionID", created.ID))
	s.eventBus.Publish(ctx, "faction.created", created.ID)
	return created, nil
}

func (s *FactionService) UpdateFaction(ctx context.Context, token string, id int, faction model.Faction) (*model.Faction, error) {
	claims, err := s.authorize(ctx, token, "update")
	if err != nil {
		return nil, err
	}

	if err := s.validationUtil.ValidateFaction(faction); err != nil {
		return nil, fmt.Errorf("%w: %s", lotr_errors.ErrInvalidFactionData, err)
	}

	updated, err := s.factionDAO.UpdateFaction(ctx, id, faction, claims.UserID)
	if err != nil {
		return nil, err
	}

	s.cacheService.DeleteFaction(ctx, id)
	logger.Info("Updated faction", zap.Int("factionID", id))
	s.eventBus.Publish(ctx, "faction.updated", id)
	return updated, nil
}

func (s *FactionService) DeleteFaction(ctx context.Context, token string, id int) error {
	claims, err := s.authorize(ctx, token, "delete")
	if err != nil {
		return err
	}

	if err := s.factionDAO.DeleteFaction(ctx, id, claims.UserID); err != nil {
		return err
	}

	s.cacheService.DeleteFaction(ctx, id)
	logger.Info("Deleted faction", zap.Int("factionID", id))
	s.eventBus.Publish(ctx, "faction.deleted", id)
	return nil
}
