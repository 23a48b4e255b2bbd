package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateModel is the unit of truth for one issued training
// certificate. certificate_no is the public verification key (embedded
// in the QR code), reference_no is the holder's self-service lookup key.
type CertificateModel struct {
	CertificateID uuid.UUID `json:"certificate_id" gorm:"column:certificate_id;type:uuid;primaryKey"`

	CertificateNo string `json:"certificate_no" gorm:"column:certificate_no;unique;not null"`
	ReferenceNo   string `json:"reference_no" gorm:"column:reference_no;unique;not null"`

	Name       string    `json:"name" gorm:"column:name;not null"`
	IDNo       string    `json:"id_no" gorm:"column:id_no;not null"`
	Company    string    `json:"company" gorm:"column:company;not null"`
	IssuanceNo string    `json:"issuance_no" gorm:"column:issuance_no;not null"`
	IssuedDate time.Time `json:"issued_date" gorm:"column:issued_date;not null"`
	ValidUntil time.Time `json:"valid_until" gorm:"column:valid_until;not null"`
	Type       string    `json:"type" gorm:"column:type;not null"`

	// optional equipment/training details; nil means the line is
	// omitted on every rendered surface
	Model    *string `json:"model,omitempty" gorm:"column:model"`
	Trainer  *string `json:"trainer,omitempty" gorm:"column:trainer"`
	Location *string `json:"location,omitempty" gorm:"column:location"`

	ImageURL string `json:"image_url" gorm:"column:image_url;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (m *CertificateModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificateID == uuid.Nil {
		m.CertificateID = uuid.New()
	}
	return nil
}
