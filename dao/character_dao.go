// api/dao/character_dao.go
package dao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dev-mohitbeniwal/lotr/api/audit"
	lotr_errors "github.com/dev-mohitbeniwal/lotr/api/errors"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
	"github.com/dev-mohitbeniwal/lotr/api/model"
)

type CharacterDAO struct {
	DB           *gorm.DB
	AuditService audit.Service
}

func NewCharacterDAO(db *gorm.DB, auditService audit.Service) *CharacterDAO {
	return &CharacterDAO{DB: db, AuditService: auditService}
}

// GetAllCharacters returns one page of characters plus the total count.
// A non-empty searchTerm filters by name substring.
func (dao *CharacterDAO) GetAllCharacters(ctx context.Context, page, perPage int, searchTerm string) ([]model.Character, int64, error) {
	query := dao.DB.WithContext(ctx).Model(&model.Character{})
	if searchTerm != "" {
		query = query.Where("name LIKE ?", "%"+searchTerm+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count characters", zap.Error(err))
		return nil, 0, lotr_errors.ErrDatabaseOperation
	}

	var characters []model.Character
	if err := query.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&characters).Error; err != nil {
		logger.Error("Failed to fetch characters", zap.Error(err), zap.Int("page", page))
		return nil, 0, lotr_errors.ErrDatabaseOperation
	}

	return characters, total, nil
}

func (dao *CharacterDAO) GetCharacterByID(ctx context.Context, id int) (*model.Character, error) {
	var character model.Character
	err := dao.DB.WithContext(ctx).First(&character, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lotr_errors.ErrCharacterNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch character", zap.Error(err), zap.Int("characterID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}
	return &character, nil
}

func (dao *CharacterDAO) CreateCharacter(ctx context.Context, character model.Character, userID int) (*model.Character, error) {
	logger.Info("Creating new character", zap.String("name", character.Name))

	if err := dao.DB.WithContext(ctx).Create(&character).Error; err != nil {
		logger.Error("Failed to create character", zap.Error(err), zap.String("name", character.Name))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	dao.recordChange(ctx, "created", character.ID, userID, character)
	return &character, nil
}

func (dao *CharacterDAO) UpdateCharacter(ctx context.Context, id int, character model.Character, userID int) (*model.Character, error) {
	var existing model.Character
	err := dao.DB.WithContext(ctx).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lotr_errors.ErrCharacterNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch character for update", zap.Error(err), zap.Int("characterID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	character.ID = id
	if err := dao.DB.WithContext(ctx).Save(&character).Error; err != nil {
		logger.Error("Failed to update character", zap.Error(err), zap.Int("characterID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	dao.recordChange(ctx, "updated", id, userID, character)
	return &character, nil
}

func (dao *CharacterDAO) DeleteCharacter(ctx context.Context, id int, userID int) error {
	result := dao.DB.WithContext(ctx).Delete(&model.Character{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete character", zap.Error(result.Error), zap.Int("characterID", id))
		return lotr_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return lotr_errors.ErrCharacterNotFound
	}

	dao.recordChange(ctx, "deleted", id, userID, nil)
	return nil
}

// recordChange writes an audit entry, best effort. Audit failures never
// fail the request.
func (dao *CharacterDAO) recordChange(ctx context.Context, action string, id, userID int, details interface{}) {
	var changeDetails json.RawMessage
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			changeDetails = data
		}
	}

	entry := audit.AuditLog{
		Timestamp:     time.Now(),
		UserID:        userID,
		Action:        action,
		EntityType:    "character",
		EntityID:      id,
		ChangeDetails: changeDetails,
	}
	if err := dao.AuditService.LogChange(ctx, entry); err != nil {
		logger.Warn("Failed to record character audit entry",
			zap.Error(err),
			zap.String("action", action),
			zap.Int("characterID", id))
	}
}
