// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
)

// NotificationService fans entity-change notifications out to interested
// systems. Currently log-only; a message queue client would slot in here.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyEntityChange(ctx context.Context, changeType, entityType string, entityID int) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Entity change",
			zap.String("changeType", changeType),
			zap.String("entityType", entityType),
			zap.Int("entityID", entityID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}
