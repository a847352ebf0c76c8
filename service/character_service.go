// api/service/character_service.go
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

// Authorizer is the auth facade surface services consume.
type Authorizer interface {
	ValidateToken(token string) (*auth.Claims, auth.Status)
	HasPermission(ctx context.Context, token, permission string) (bool, error)
}

type ICharacterService interface {
	GetAllCharacters(ctx context.Context, token string, page, perPage int, searchTerm string) (*model.CharacterList, error)
	GetCharacterByID(ctx context.Context, token string, id int) (*model.CharacterDetail, error)
	CreateCharacter(ctx context.Context, token string, character model.Character) (*model.Character, error)
	UpdateCharacter(ctx context.Context, token string, id int, character model.Character) (*model.Character, error)
	DeleteCharacter(ctx context.Context, token string, id int) error
}

type ICharacterDAO interface {
	GetAllCharacters(ctx context.Context, page, perPage int, searchTerm string) ([]model.Character, int64, error)
	GetCharacterByID(ctx context.Context, id int) (*model.Character, error)
	CreateCharacter(ctx context.Context, character model.Character, userID int) (*model.Character, error)
	UpdateCharacter(ctx context.Context, id int, character model.Character, userID int) (*model.Character, error)
	DeleteCharacter(ctx context.Context, id, userID int) error
}

// CharacterService handles business logic for character operations
type CharacterService struct {
	characterDAO    ICharacterDAO
	auth            Authorizer
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	cacheFlags      config.EntityCacheFlags
}

// NewCharacterService creates a new instance of CharacterService
func NewCharacterService(
	characterDAO ICharacterDAO,
	authorizer Authorizer,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	cacheFlags config.EntityCacheFlags,
) *CharacterService {
	service := &CharacterService{
		characterDAO:    characterDAO,
		auth:            authorizer,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		cacheFlags:      cacheFlags,
	}

	// Set up event subscriptions
	eventBus.Subscribe("character.created", service.handleCharacterChanged)
	eventBus.Subscribe("character.updated", service.handleCharacterChanged)
	eventBus.Subscribe("character.deleted", service.handleCharacterChanged)

	return service
}

func (s *CharacterService) handleCharacterChanged(ctx context.Context, event util.Event) error {
	id, ok := event.Payload.(int)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	changeType := event.Type[len("character."):]
	return s.notificationSvc.NotifyEntityChange(ctx, changeType, "character", id)
}

// authorize checks the token's role for the named permission, returning
// the decoded claims for audit attribution.
func (s *CharacterService) authorize(ctx context.Context, token, permission string) (*auth.Claims, error) {
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

func (s *CharacterService) GetAllCharacters(ctx context.Context, token string, page, perPage int, searchTerm string) (*model.CharacterList, error) {
	if _, err := s.authorize(ctx, token, "read"); err != nil {
		return nil, err
	}

	if s.cacheFlags.List {
		if cached, err := s.cacheService.GetCharacterList(ctx, page, perPage, searchTerm); err == nil && cached != nil {
			logger.Info("Returning cached character list", zap.Int("page", page))
			cached.Meta.CacheUsed = true
			return cached, nil
		}
	}

	characters, total, err := s.characterDAO.GetAllCharacters(ctx, page, perPage, searchTerm)
	if err != nil {
		return nil, err
	}

	list := model.CharacterList{
		Data: characters,
		Meta: model.ListMeta{
			CurrentPage: page,
			PerPage:     perPage,
			TotalCount:  total,
			TotalPages:  helper_util.TotalPages(total, perPage),
		},
	}

	if s.cacheFlags.List {
		if err := s.cacheService.SetCharacterList(ctx, page, perPage, searchTerm, list); err == nil {
			logger.Debug("Cached character list", zap.Int("page", page))
		}
	}

	return &list, nil
}

func (s *CharacterService) GetCharacterByID(ctx context.Context, token string, id int) (*model.CharacterDetail, error) {
	if _, err := s.authorize(ctx, token, "read"); err != nil {
		return nil, err
	}

	if s.cacheFlags.ByID {
		if cached, err := s.cacheService.GetCharacter(ctx, id); err == nil && cached != nil {
			logger.Info("Returning cached character", zap.Int("characterID", id))
			return &model.CharacterDetail{
				Data: *cached,
				Meta: model.DetailMeta{CacheUsed: true},
			}, nil
		}
	}

	character, err := s.characterDAO.GetCharacterByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheFlags.ByID {
		_ = s.cacheService.SetCharacter(ctx, *character)
	}

	return &model.CharacterDetail{Data: *character}, nil
}

func (s *CharacterService) CreateCharacter(ctx context.Context, token string, character model.Character) (*model.Character, error) {
	claims, err := s.authorize(ctx, token, "create")
	if err != nil {
		return nil, err
	}

	if err := s.validationUtil.ValidateCharacter(character); err != nil {
		return nil, fmt.Errorf("%w: %s", lotr_errors.ErrInvalidCharacterData, err)
	}

	created, err := s.characterDAO.CreateCharacter(ctx, character, claims.UserID)
	if err != nil {
		return nil, err
	}

	logger.Info("Created character", zap.Int("characterID", created.ID))
	s.eventBus.Publish(ctx, "character.created", created.ID)
	return created, nil
}

func (s *CharacterService) UpdateCharacter(ctx context.Context, token string, id int, character model.Character) (*model.Character, error) {
	claims, err := s.authorize(ctx, token, "update")
	if err != nil {
		return nil, err
	}

	if err := s.validationUtil.ValidateCharacter(character); err != nil {
		return nil, fmt.Errorf("%w: %s", lotr_errors.ErrInvalidCharacterData, err)
	}

	updated, err := s.characterDAO.UpdateCharacter(ctx, id, character, claims.UserID)
	if err != nil {
		return nil, err
	}

	s.cacheService.DeleteCharacter(ctx, id)
	logger.Info("Updated character", zap.Int("characterID", id))
	s.eventBus.Publish(ctx, "character.updated", id)
	return updated, nil
}

func (s *CharacterService) DeleteCharacter(ctx context.Context, token string, id int) error {
	claims, err := s.authorize(ctx, token, "delete")
	if err != nil {
		return err
	}

	if err := s.characterDAO.DeleteCharacter(ctx, id, claims.UserID); err != nil {
		return err
	}

	s.cacheService.DeleteCharacter(ctx, id)
	logger.Info("Deleted character", zap.Int("characterID", id))
	s.eventBus.Publish(ctx, "character.deleted", id)
	return nil
}
