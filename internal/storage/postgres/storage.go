package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mcoot/bingo-server/internal/model"
	"github.com/mcoot/bingo-server/internal/storage"
)

// userRecord is the gorm mapping for the users table
type userRecord struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

func (userRecord) TableName() string { return "users" }

// scoreRecord is the gorm mapping for the scores table
type scoreRecord struct {
	ID     int64      `gorm:"primaryKey"`
	Score  int64      `gorm:"not null"`
	UserID int64      `gorm:"not null;index"`
	User   userRecord `gorm:"foreignKey:UserID"`
}

func (scoreRecord) TableName() string { return "scores" }

// Storage is a Postgres-backed implementation of the storage interface
type Storage struct {
	db *gorm.DB
}

// New connects to Postgres and migrates the schema
func New(dsn string) (*Storage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithDB creates a Postgres storage with an existing connection (for testing)
func NewWithDB(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// Migrate creates or updates the users and scores tables
func (s *Storage) Migrate() error {
	if err := s.db.AutoMigrate(&userRecord{}, &scoreRecord{}); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}

// Close closes the underlying database connection
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	record := userRecord{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}

	err := s.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	user.ID = record.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var record userRecord
	err := s.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return userFromRecord(&record), nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var record userRecord
	err := s.db.WithContext(ctx).First(&record, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return userFromRecord(&record), nil
}

// Score operations

func (s *Storage) CreateScore(ctx context.Context, score *model.Score) error {
	record := scoreRecord{
		Score:  score.Score,
		UserID: score.UserID,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create score: %w", err)
	}

	score.ID = record.ID
	return nil
}

func (s *Storage) TopScores(ctx context.Context, limit int) ([]*model.Score, error) {
	var records []scoreRecord
	// Ascending id is insertion order, which keeps ties stable
	err := s.db.WithContext(ctx).
		Order("score DESC, id ASC").
		Limit(limit).
		Find(&records).
		Error
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}

	scores := make([]*model.Score, len(records))
	for i, r := range records {
		scores[i] = &model.Score{
			ID:     r.ID,
			Score:  r.Score,
			UserID: r.UserID,
		}
	}
	return scores, nil
}

func userFromRecord(r *userRecord) *model.User {
	return &model.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
	}
}
