package model

type Faction struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	FactionName string `json:"faction_name" gorm:"column:faction_name"`
	Description string `json:"description"`
}

func (Faction) TableName() string {
	return "factions"
}

type FactionList struct {
	Data []Faction `json:"data"`
	Meta ListMeta  `json:"meta"`
}

type FactionDetail struct {
	Data Faction    `json:"data"`
	Meta DetailMeta `json:"meta"`
}
