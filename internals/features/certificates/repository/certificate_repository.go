package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"everify_backend/internals/features/certificates/model"
)

var (
	// ErrNotFound is the distinguishable miss both lookup paths return;
	// callers must never see an empty record instead.
	ErrNotFound = errors.New("certificate not found")

	// ErrConflict means certificate_no or reference_no collided with an
	// existing row.
	ErrConflict = errors.New("certificate or reference number already exists")
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CertificateModel, error) {
	var m model.CertificateModel
	err := r.DB.WithContext(ctx).
		Where("certificate_id = ?", id).
		First(&m).Error
	return wrapFind(&m, err)
}

// FindByReference is the self-service lookup path.
func (r *CertificateRepository) FindByReference(ctx context.Context, referenceNo string) (*model.CertificateModel, error) {
	var m model.CertificateModel
	err := r.DB.WithContext(ctx).
		Where("reference_no = ?", referenceNo).
		First(&m).Error
	return wrapFind(&m, err)
}

// FindByCertificateNo is the QR-scan verification path.
func (r *CertificateRepository) FindByCertificateNo(ctx context.Context, certificateNo string) (*model.CertificateModel, error) {
	var m model.CertificateModel
	err := r.DB.WithContext(ctx).
		Where("certificate_no = ?", certificateNo).
		First(&m).Error
	return wrapFind(&m, err)
}

// List returns one page ordered by creation time, newest first.
func (r *CertificateRepository) List(ctx context.Context, offset, limit int) ([]model.CertificateModel, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.CertificateModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.CertificateModel
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

// Create inserts one row. Both unique keys are pre-checked so the
// common duplicate case gets a clean ErrConflict; the DB constraint
// (surfaced as gorm.ErrDuplicatedKey) stays as the race backstop.
func (r *CertificateRepository) Create(ctx context.Context, m *model.CertificateModel) error {
	var existing model.CertificateModel
	err := r.DB.WithContext(ctx).
		Where("certificate_no = ? OR reference_no = ?", m.CertificateNo, m.ReferenceNo).
		First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// Update replaces every data field of the row with the given id.
func (r *CertificateRepository) Update(ctx context.Context, id uuid.UUID, m *model.CertificateModel) (*model.CertificateModel, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// unique keys may collide with a different row
	var clash model.CertificateModel
	err = r.DB.WithContext(ctx).
		Where("(certificate_no = ? OR reference_no = ?) AND certificate_id <> ?",
			m.CertificateNo, m.ReferenceNo, id).
		First(&clash).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m.CertificateID = existing.CertificateID
	m.CreatedAt = existing.CreatedAt
	if err := r.DB.WithContext(ctx).Save(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return m, nil
}

// Delete removes the row for good. No soft delete, no audit trail.
func (r *CertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("certificate_id = ?", id).
		Delete(&model.CertificateModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func wrapFind(m *model.CertificateModel, err error) (*model.CertificateModel, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
