package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID       uuid.UUID `json:"admin_id" gorm:"column:admin_id;type:uuid;primaryKey"`
	AdminUsername string    `json:"admin_username" gorm:"column:admin_username;unique;not null"`
	AdminPassword string    `json:"-" gorm:"column:admin_password;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
