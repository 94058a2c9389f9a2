package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mvickers/diarisk-backend/internal/logger"
	"github.com/mvickers/diarisk-backend/internal/types"
)

type MedicalDataRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, record *types.MedicalData) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.MedicalData, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type medicalDataRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMedicalDataRepo(db *gorm.DB, baseLog *logger.Logger) MedicalDataRepo {
	repoLog := baseLog.With("repo", "MedicalDataRepo")
	return &medicalDataRepo{db: db, log: repoLog}
}

// Upsert writes the record in a single conditional statement keyed on
// user_id, so concurrent submissions from the same user cannot race into
// a duplicate row or a lost update.
func (mr *medicalDataRepo) Upsert(ctx context.Context, tx *gorm.DB, record *types.MedicalData) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"pregnancies",
				"glucose",
				"blood_pressure",
				"skin_thickness",
				"insulin",
				"bmi",
				"diabetes_pedigree_function",
				"age",
				"updated_at",
			}),
		}).
		Create(record).Error
}

func (mr *medicalDataRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.MedicalData, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var result types.MedicalData
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (mr *medicalDataRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.MedicalData{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
