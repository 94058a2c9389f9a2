package repos

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mvickers/diarisk-backend/internal/logger"
	"github.com/mvickers/diarisk-backend/internal/types"
)

type SessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, session *types.Session) error
	GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.Session, error)
	DeleteByToken(ctx context.Context, tx *gorm.DB, token string) error
	DeleteExpired(ctx context.Context, tx *gorm.DB, before time.Time) (int64, error)
}

type sessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionRepo(db *gorm.DB, baseLog *logger.Logger) SessionRepo {
	repoLog := baseLog.With("repo", "SessionRepo")
	return &sessionRepo{db: db, log: repoLog}
}

func (sr *sessionRepo) Create(ctx context.Context, tx *gorm.DB, session *types.Session) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Create(session).Error
}

func (sr *sessionRepo) GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.Session, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.Session
	err := transaction.WithContext(ctx).
		Where("token = ?", token).
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (sr *sessionRepo) DeleteByToken(ctx context.Context, tx *gorm.DB, token string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Where("token = ?", token).
		Delete(&types.Session{}).Error
}

func (sr *sessionRepo) DeleteExpired(ctx context.Context, tx *gorm.DB, before time.Time) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	res := transaction.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&types.Session{})
	return res.RowsAffected, res.Error
}
