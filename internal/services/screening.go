package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvickers/diarisk-backend/internal/logger"
	"github.com/mvickers/diarisk-backend/internal/predict"
	"github.com/mvickers/diarisk-backend/internal/repos"
	"github.com/mvickers/diarisk-backend/internal/types"
)

type ScreeningService interface {
	Evaluate(ctx context.Context, userID uuid.UUID, features predict.Features) (predict.Outcome, error)
	LastSubmission(ctx context.Context, userID uuid.UUID) (*types.MedicalData, error)
}

type screeningService struct {
	db        *gorm.DB
	log       *logger.Logger
	predictor *predict.Predictor
	// nil when the deployment does not persist submissions.
	medicalDataRepo repos.MedicalDataRepo
}

func NewScreeningService(
	db *gorm.DB,
	log *logger.Logger,
	predictor *predict.Predictor,
	medicalDataRepo repos.MedicalDataRepo,
) ScreeningService {
	serviceLog := log.With("service", "ScreeningService")
	return &screeningService{
		db:              db,
		log:             serviceLog,
		predictor:       predictor,
		medicalDataRepo: medicalDataRepo,
	}
}

// Evaluate runs the classifier and, where a record store is wired, keeps
// the submitter's latest features as their single medical_data row.
func (ss *screeningService) Evaluate(ctx context.Context, userID uuid.UUID, features predict.Features) (predict.Outcome, error) {
	outcome := ss.predictor.Predict(features)

	if ss.medicalDataRepo != nil {
		record := &types.MedicalData{
			ID:                       uuid.New(),
			UserID:                   userID,
			Pregnancies:              int(features.Pregnancies),
			Glucose:                  int(features.Glucose),
			BloodPressure:            int(features.BloodPressure),
			SkinThickness:            int(features.SkinThickness),
			Insulin:                  int(features.Insulin),
			BMI:                      features.BMI,
			DiabetesPedigreeFunction: features.DiabetesPedigreeFunction,
			Age:                      int(features.Age),
		}
		err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return ss.medicalDataRepo.Upsert(ctx, tx, record)
		})
		if err != nil {
			return predict.Outcome{}, fmt.Errorf("persist medical record: %w", err)
		}
	}

	ss.log.Info("Screening evaluated", "user_id", userID, "diabetic", outcome.Diabetic)
	return outcome, nil
}

// LastSubmission returns the user's stored medical record, or nil when
// nothing has been submitted or the deployment does not persist records.
func (ss *screeningService) LastSubmission(ctx context.Context, userID uuid.UUID) (*types.MedicalData, error) {
	if ss.medicalDataRepo == nil {
		return nil, nil
	}
	record, err := ss.medicalDataRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load medical record: %w", err)
	}
	return record, nil
}
