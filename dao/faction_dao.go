// api/dao/faction_dao.go
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

type FactionDAO struct {
	DB           *gorm.DB
	AuditService audit.Service
}

func NewFactionDAO(db *gorm.DB, auditService audit.Service) *FactionDAO {
	return &FactionDAO{DB: db, AuditService: auditService}
}

func (dao *FactionDAO) GetAllFactions(ctx context.Context, page, perPage int, searchTerm string) ([]model.Faction, int64, error) {
	query := dao.DB.WithContext(ctx).Model(&model.Faction{})
	if searchTerm != "" {
		query = query.Where("faction_name LIKE ?", "%"+searchTerm+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count factions", zap.Error(err))
		return nil, 0, lotr_errors.ErrDatabaseOperation
	}

	var factions []model.Faction
	if err := query.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&factions).Error; err != nil {
		logger.Error("Failed to fetch factions", zap.Error(err), zap.Int("page", page))
		return nil, 0, lotr_errors.ErrDatabaseOperation
	}

	return factions, total, nil
}

func (dao *FactionDAO) GetFactionByID(ctx context.Context, id int) (*model.Faction, error) {
	var faction model.Faction
	err := dao.DB.WithContext(ctx).First(&faction, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lotr_errors.ErrFactionNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch faction", zap.Error(err), zap.Int("factionID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}
	return &faction, nil
}

func (dao *FactionDAO) CreateFaction(ctx context.Context, faction model.Faction, userID int) (*model.Faction, error) {
	logger.Info("Creating new faction", zap.String("name", faction.FactionName))

	if err := dao.DB.WithContext(ctx).Create(&faction).Error; err != nil {
		logger.Error("Failed to create faction", zap.Error(err), zap.String("name", faction.FactionName))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	dao.recordChange(ctx, "created", faction.ID, userID, faction)
	return &faction, nil
}

func (dao *FactionDAO) UpdateFaction(ctx context.Context, id int, faction model.Faction, userID int) (*model.Faction, error) {
	var existing model.Faction
	err := dao.DB.WithContext(ctx).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lotr_errors.ErrFactionNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch faction for update", zap.Error(err), zap.Int("factionID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	faction.ID = id
	if err := dao.DB.WithContext(ctx).Save(&faction).Error; err != nil {
		logger.Error("Failed to update faction", zap.Error(err), zap.Int("factionID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	dao.recordChange(ctx, "updated", id, userID, faction)
	return &faction, nil
}

func (dao *FactionDAO) DeleteFaction(ctx context.Context, id int, userID int) error {
	result := dao.DB.WithContext(ctx).Delete(&model.Faction{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete faction", zap.Error(result.Error), zap.Int("factionID", id))
		return lotr_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return lotr_errors.ErrFactionNotFound
	}

	dao.recordChange(ctx, "deleted", id, userID, nil)
	return nil
}

func (dao *FactionDAO) recordChange(ctx context.Context, action string, id, userID int, details interface{}) {
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
		EntityType:    "faction",
		EntityID:      id,
		ChangeDetails: changeDetails,
	}
	if err := dao.AuditService.LogChange(ctx, entry); err != nil {
		logger.Warn("Failed to record faction audit entry",
			zap.Error(err),
			zap.String("action", action),
			zap.Int("factionID", id))
	}
}
