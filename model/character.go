package model

// Character is a single character row. EquipmentID and FactionID are
// optional relations.
type Character struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Kingdom     string `json:"kingdom"`
	EquipmentID *int   `json:"equipment_id,omitempty"`
	FactionID   *int   `json:"faction_id,omitempty"`
}

func (Character) TableName() string {
	return "characters"
}

// CharacterList is the paginated list response shape
type CharacterList struct {
	Data []Character `json:"data"`
	Meta ListMeta    `json:"meta"`
}

// CharacterDetail is the single-item response shape
type CharacterDetail struct {
	Data Character  `json:"data"`
	Meta DetailMeta `json:"meta"`
}
