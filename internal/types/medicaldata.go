package types

import (
	"time"

	"github.com/google/uuid"
)

// MedicalData holds the most recent screening submission for a user.
// The unique index on UserID keeps it to one row per user; submissions
// go through an atomic upsert, never insert-then-update.
type MedicalData struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                   uuid.UUID `gorm:"uniqueIndex;not null" json:"user_id"`
	User                     *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Pregnancies              int       `gorm:"not null;column:pregnancies" json:"pregnancies"`
	Glucose                  int       `gorm:"not null;column:glucose" json:"glucose"`
	BloodPressure            int       `gorm:"not null;column:blood_pressure" json:"blood_pressure"`
	SkinThickness            int       `gorm:"not null;column:skin_thickness" json:"skin_thickness"`
	Insulin                  int       `gorm:"not null;column:insulin" json:"insulin"`
	BMI                      float64   `gorm:"not null;column:bmi" json:"bmi"`
	DiabetesPedigreeFunction float64   `gorm:"not null;column:diabetes_pedigree_function" json:"diabetes_pedigree_function"`
	Age                      int       `gorm:"not null;column:age" json:"age"`
	CreatedAt                time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt                time.Time `gorm:"not null" json:"updated_at"`
}

func (MedicalData) TableName() string {
	return "medical_data"
}
