package model

// Permission mirrors the permissions table. This service only reads it
// (joined against role_permissions); administration happens out of band.
type Permission struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

func (Permission) TableName() string {
	return "permissions"
}
