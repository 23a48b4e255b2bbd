package dto

import (
	"strings"
	"time"

	"everify_backend/internals/features/certificates/model"
)

const dateLayout = "2006-01-02"

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON). Dates come in as YYYY-MM-DD like the admin form posts
// them. issued_date <= valid_until is NOT enforced here; data entry is
// responsible for sane ranges.
type CreateCertificateRequest struct {
	CertificateNo string `json:"certificate_no" validate:"required,max=64"`
	ReferenceNo   string `json:"reference_no" validate:"required,max=64"`

	Name       string `json:"name" validate:"required,max=120"`
	IDNo       string `json:"id_no" validate:"required,max=64"`
	Company    string `json:"company" validate:"required,max=120"`
	IssuanceNo string `json:"issuance_no" validate:"required,max=32"`
	IssuedDate string `json:"issued_date" validate:"required,datetime=2006-01-02"`
	ValidUntil string `json:"valid_until" validate:"required,datetime=2006-01-02"`
	Type       string `json:"type" validate:"required,max=120"`

	Model    *string `json:"model" validate:"omitempty,max=120"`
	Trainer  *string `json:"trainer" validate:"omitempty,max=120"`
	Location *string `json:"location" validate:"omitempty,max=120"`

	ImageURL string `json:"image_url" validate:"required,url"`
}

// Update (full-field replace, same shape as create)
type UpdateCertificateRequest CreateCertificateRequest

/* =========================================================
 * RESPONSES
 * ========================================================= */

// VerificationResponse is the public lookup shape. Dates are already
// rendered DD/MM/YYYY; absent optional fields are omitted, never "N/A".
type VerificationResponse struct {
	CertificateNo string `json:"certificate_no"`
	ReferenceNo   string `json:"reference_no"`

	Name       string `json:"name"`
	IDNo       string `json:"id_no"`
	Company    string `json:"company"`
	IssuanceNo string `json:"issuance_no"`
	IssuedDate string `json:"issued_date"`
	ValidUntil string `json:"valid_until"`
	Type       string `json:"type"`

	Model    *string `json:"model,omitempty"`
	Trainer  *string `json:"trainer,omitempty"`
	Location *string `json:"location,omitempty"`

	ImageURL string `json:"image_url"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r *CreateCertificateRequest) ToModel() (*model.CertificateModel, error) {
	issued, err := time.Parse(dateLayout, r.IssuedDate)
	if err != nil {
		return nil, err
	}
	valid, err := time.Parse(dateLayout, r.ValidUntil)
	if err != nil {
		return nil, err
	}

	return &model.CertificateModel{
		CertificateNo: strings.TrimSpace(r.CertificateNo),
		ReferenceNo:   strings.TrimSpace(r.ReferenceNo),
		Name:          strings.TrimSpace(r.Name),
		IDNo:          strings.TrimSpace(r.IDNo),
		Company:       strings.TrimSpace(r.Company),
		IssuanceNo:    strings.TrimSpace(r.IssuanceNo),
		IssuedDate:    issued,
		ValidUntil:    valid,
		Type:          strings.TrimSpace(r.Type),
		Model:         trimOptional(r.Model),
		Trainer:       trimOptional(r.Trainer),
		Location:      trimOptional(r.Location),
		ImageURL:      strings.TrimSpace(r.ImageURL),
	}, nil
}

func (r *UpdateCertificateRequest) ToModel() (*model.CertificateModel, error) {
	return (*CreateCertificateRequest)(r).ToModel()
}

func ToVerificationResponse(m *model.CertificateModel) VerificationResponse {
	return VerificationResponse{
		CertificateNo: m.CertificateNo,
		ReferenceNo:   m.ReferenceNo,
		Name:          m.Name,
		IDNo:          m.IDNo,
		Company:       m.Company,
		IssuanceNo:    m.IssuanceNo,
		IssuedDate:    m.IssuedDate.Format("02/01/2006"),
		ValidUntil:    m.ValidUntil.Format("02/01/2006"),
		Type:          m.Type,
		Model:         m.Model,
		Trainer:       m.Trainer,
		Location:      m.Location,
		ImageURL:      m.ImageURL,
	}
}

// empty strings collapse to nil so "" and absent behave the same
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
