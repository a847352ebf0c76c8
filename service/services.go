// api/service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/dev-mohitbeniwal/lotr/api/audit"
	"github.com/dev-mohitbeniwal/lotr/api/config"
	"github.com/dev-mohitbeniwal/lotr/api/dao"
	"github.com/dev-mohitbeniwal/lotr/api/util"
)

type Services struct {
	Character ICharacterService
	Equipment IEquipmentService
	Faction   IFactionService
}

func InitializeServices(
	db *gorm.DB,
	authorizer Authorizer,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	cacheConfig config.CacheConfiguration,
) (*Services, error) {
	characterDAO := dao.NewCharacterDAO(db, auditService)
	equipmentDAO := dao.NewEquipmentDAO(db, auditService)
	factionDAO := dao.NewFactionDAO(db, auditService)

	services := &Services{
		Character: NewCharacterService(characterDAO, authorizer, validationUtil, cacheService, notificationSvc, eventBus, cacheConfig.Characters),
		Equipment: NewEquipmentService(equipmentDAO, authorizer, validationUtil, cacheService, notificationSvc, eventBus, cacheConfig.Equipment),
		Faction:   NewFactionService(factionDAO, authorizer, validationUtil, cacheService, notificationSvc, eventBus, cacheConfig.Factions),
	}

	return services, nil
}
