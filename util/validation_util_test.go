// api/util/validation_util_test.go
package util_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/lotr/api/model"
	"github.com/dev-mohitbeniwal/lotr/api/util"
)

func TestValidationUtil(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("ValidateCharacter", func(t *testing.T) {
		valid := model.Character{Name: "Frodo", BirthDate: "2968-09-22", Kingdom: "The Shire"}
		assert.NoError(t, v.ValidateCharacter(valid))

		cases := []struct {
			name      string
			character model.Character
		}{
			{"EmptyName", model.Character{BirthDate: "2968-09-22", Kingdom: "The Shire"}},
			{"NameTooLong", model.Character{Name: strings.Repeat("a", 51), BirthDate: "2968-09-22", Kingdom: "The Shire"}},
			{"EmptyBirthDate", model.Character{Name: "Frodo", Kingdom: "The Shire"}},
			{"BadBirthDate", model.Character{Name: "Frodo", BirthDate: "22-09-2968", Kingdom: "The Shire"}},
			{"EmptyKingdom", model.Character{Name: "Frodo", BirthDate: "2968-09-22"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Error(t, v.ValidateCharacter(tc.character))
			})
		}
	})

	t.Run("ValidateEquipment", func(t *testing.T) {
		valid := model.Equipment{Name: "Sting", Type: "Sword", MadeBy: "Elves"}
		assert.NoError(t, v.ValidateEquipment(valid))

		assert.Error(t, v.ValidateEquipment(model.Equipment{Type: "Sword", MadeBy: "Elves"}))
		assert.Error(t, v.ValidateEquipment(model.Equipment{Name: "Sting", MadeBy: "Elves"}))
		assert.Error(t, v.ValidateEquipment(model.Equipment{Name: "Sting", Type: "Sword"}))
	})

	t.Run("ValidateFaction", func(t *testing.T) {
		valid := model.Faction{FactionName: "The Fellowship", Description: "Nine walkers"}
		assert.NoError(t, v.ValidateFaction(valid))

		assert.Error(t, v.ValidateFaction(model.Faction{Description: "Nine walkers"}))
		assert.Error(t, v.ValidateFaction(model.Faction{FactionName: strings.Repeat("a", 101), Description: "x"}))
		assert.Error(t, v.ValidateFaction(model.Faction{FactionName: "The Fellowship"}))
	})
}
