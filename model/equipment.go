package model

type Equipment struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	MadeBy string `json:"made_by" gorm:"column:made_by"`
}

// The legacy schema pluralizes this table irregularly.
func (Equipment) TableName() string {
	return "equipments"
}

type EquipmentList struct {
	Data []Equipment `json:"data"`
	Meta ListMeta    `json:"meta"`
}

type EquipmentDetail struct {
	Data Equipment  `json:"data"`
	Meta DetailMeta `json:"meta"`
}
