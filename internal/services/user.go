package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvickers/diarisk-backend/internal/logger"
	"github.com/mvickers/diarisk-backend/internal/repos"
	"github.com/mvickers/diarisk-backend/internal/types"
)

type AdminSummary struct {
	UserCount          int64 `json:"user_count"`
	MedicalRecordCount int64 `json:"medical_record_count"`
}

type UserService interface {
	List(ctx context.Context) ([]*types.User, error)
	Summary(ctx context.Context) (AdminSummary, error)
}

type userService struct {
	db              *gorm.DB
	log             *logger.Logger
	userRepo        repos.UserRepo
	medicalDataRepo repos.MedicalDataRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, medicalDataRepo repos.MedicalDataRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:              db,
		log:             serviceLog,
		userRepo:        userRepo,
		medicalDataRepo: medicalDataRepo,
	}
}

func (us *userService) List(ctx context.Context) ([]*types.User, error) {
	users, err := us.userRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (us *userService) Summary(ctx context.Context) (AdminSummary, error) {
	userCount, err := us.userRepo.Count(ctx, nil)
	if err != nil {
		return AdminSummary{}, fmt.Errorf("count users: %w", err)
	}
	recordCount, err := us.medicalDataRepo.Count(ctx, nil)
	if err != nil {
		return AdminSummary{}, fmt.Errorf("count medical records: %w", err)
	}
	return AdminSummary{UserCount: userCount, MedicalRecordCount: recordCount}, nil
}
