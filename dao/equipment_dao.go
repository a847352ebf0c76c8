// api/dao/equipment_dao.go
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

type EquipmentDAO struct {
	DB           *gorm.DB
	AuditService audit.Service
}

func NewEquipmentDAO(db *gorm.DB, auditService audit.Service) *EquipmentDAO {
	return &EquipmentDAO{DB: db, AuditService: auditService}
}

func (dao *EquipmentDAO) GetAllEquipment(ctx context.Context, page, perPage int, searchTerm string) ([]model.Equipment, int64, error) {
	query := dao.DB.WithContext(ctx).Model(&model.Equipment{})
	if searchTerm != "" {
		query = query.Where("name LIKE ?", "%"+searchTerm+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count equipment", zap.Error(err))
		return nil, 0, lotr_errors.ErrDatabaseOperation
	}

	var equipment []model.Equipment
	if err := query.Order("id").Offset((page - 1) * perPage).Limit(perPage).Find(&equipment).Error; err != nil {
		logger.Error("Failed to fetch equipment", zap.Error(err), zap.Int("page", page))
		return nil, 0, lotr_errors.ErrDatabaseOperation
	}

	return equipment, total, nil
}

func (dao *EquipmentDAO) GetEquipmentByID(ctx context.Context, id int) (*model.Equipment, error) {
	var equipment model.Equipment
	err := dao.DB.WithContext(ctx).First(&equipment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lotr_errors.ErrEquipmentNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch equipment", zap.Error(err), zap.Int("equipmentID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}
	return &equipment, nil
}

func (dao *EquipmentDAO) CreateEquipment(ctx context.Context, equipment model.Equipment, userID int) (*model.Equipment, error) {
	logger.Info("Creating new equipment", zap.String("name", equipment.Name))

	if err := dao.DB.WithContext(ctx).Create(&equipment).Error; err != nil {
		logger.Error("Failed to create equipment", zap.Error(err), zap.String("name", equipment.Name))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	dao.recordChange(ctx, "created", equipment.ID, userID, equipment)
	return &equipment, nil
}

func (dao *EquipmentDAO) UpdateEquipment(ctx context.Context, id int, equipment model.Equipment, userID int) (*model.Equipment, error) {
	var existing model.Equipment
	err := dao.DB.WithContext(ctx).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lotr_errors.ErrEquipmentNotFound
	}
	if err != nil {
		logger.Error("Failed to fetch equipment for update", zap.Error(err), zap.Int("equipmentID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	equipment.ID = id
	if err := dao.DB.WithContext(ctx).Save(&equipment).Error; err != nil {
		logger.Error("Failed to update equipment", zap.Error(err), zap.Int("equipmentID", id))
		return nil, lotr_errors.ErrDatabaseOperation
	}

	dao.recordChange(ctx, "updated", id, userID, equipment)
	return &equipment, nil
}

func (dao *EquipmentDAO) DeleteEquipment(ctx context.Context, id int, userID int) error {
	result := dao.DB.WithContext(ctx).Delete(&model.Equipment{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete equipment", zap.Error(result.Error), zap.Int("equipmentID", id))
		return lotr_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return lotr_errors.ErrEquipmentNotFound
	}

	dao.recordChange(ctx, "deleted", id, userID, nil)
	return nil
}

func (dao *EquipmentDAO) recordChange(ctx context.Context, action string, id, userID int, details interface{}) {
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
		EntityType:    "equipment",
		EntityID:      id,
		ChangeDetails: changeDetails,
	}
	if err := dao.AuditService.LogChange(ctx, entry); err != nil {
		logger.Warn("Failed to record equipment audit entry",
			zap.Error(err),
			zap.String("action", action),
			zap.Int("equipmentID", id))
	}
}
