// api/dao/permission_dao.go
package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dev-mohitbeniwal/lotr/api/model"
)

// PermissionDAO is the backing permissions store: the source of truth the
// permission cache is populated from. Read-only here.
type PermissionDAO struct {
	DB *gorm.DB
}

func NewPermissionDAO(db *gorm.DB) *PermissionDAO {
	return &PermissionDAO{DB: db}
}

// GetPermissionsForRole returns the names of every permission granted to
// the role. A role without grants returns an empty slice, not an error.
func (dao *PermissionDAO) GetPermissionsForRole(ctx context.Context, roleID int) ([]string, error) {
	var names []string
	err := dao.DB.WithContext(ctx).
		Model(&model.Permission{}).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Pluck("permissions.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions for role %d: %w", roleID, err)
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}
