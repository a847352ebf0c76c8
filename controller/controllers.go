// api/controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/lotr/api/service"

type Controllers struct {
	Character *CharacterController
	Equipment *EquipmentController
	Faction   *FactionController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Character: NewCharacterController(services.Character),
		Equipment: NewEquipmentController(services.Equipment),
		Faction:   NewFactionController(services.Faction),
	}
}
