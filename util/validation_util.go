// api/util/validation_util.go

package util

import (
	"fmt"
	"time"

	"github.com/dev-mohitbeniwal/lotr/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateCharacter(character model.Character) error {
	if character.Name == "" {
		return fmt.Errorf("character name cannot be empty")
	}
	if len(character.Name) > 50 {
		return fmt.Errorf("character name must not exceed 50 characters")
	}
	if character.BirthDate == "" {
		return fmt.Errorf("character birth_date cannot be empty")
	}
	if _, err := time.Parse("2006-01-02", character.BirthDate); err != nil {
		return fmt.Errorf("character birth_date must be a valid date in the format YYYY-MM-DD")
	}
	if character.Kingdom == "" {
		return fmt.Errorf("character kingdom cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateEquipment(equipment model.Equipment) error {
	if equipment.Name == "" {
		return fmt.Errorf("equipment name cannot be empty")
	}
	if equipment.Type == "" {
		return fmt.Errorf("equipment type cannot be empty")
	}
	if equipment.MadeBy == "" {
		return fmt.Errorf("equipment made_by cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}

func (v *ValidationUtil) ValidateFaction(faction model.Faction) error {
	if faction.FactionName == "" {
		return fmt.Errorf("faction name cannot be empty")
	}
	if len(faction.FactionName) > 100 {
		return fmt.Errorf("faction name must not exceed 100 characters")
	}
	if faction.Description == "" {
		return fmt.Errorf("faction description cannot be empty")
	}
	// Add more validation rules as needed
	return nil
}
