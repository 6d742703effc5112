// Package migration owns the database schema. Each migration carries its own
// snapshot of the tables it touches so later model changes never rewrite
// history.
package migration

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type userV1 struct {
	ID        uint   `gorm:"primarykey"`
	Username  string `gorm:"size:64;not null;uniqueIndex"`
	Email     string `gorm:"not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
}

func (userV1) TableName() string { return "users" }

type questionV1 struct {
	ID            uint   `gorm:"primarykey"`
	Question      string `gorm:"type:text;not null"`
	Option1       string `gorm:"not null"`
	Option2       string `gorm:"not null"`
	Option3       string `gorm:"not null"`
	Option4       string `gorm:"not null"`
	CorrectAnswer int    `gorm:"not null"`
	Difficulty    string `gorm:"not null;default:'medium'"`
	CreatedAt     time.Time
}

func (questionV1) TableName() string { return "questions" }

type quizResultV1 struct {
	ID             uint      `gorm:"primarykey"`
	UserID         uint      `gorm:"not null;index"`
	User           userV1    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Score          int       `gorm:"not null"`
	TotalQuestions int       `gorm:"not null"`
	Percentage     float64   `gorm:"not null"`
	TimeTaken      int       `gorm:"not null"`
	Timestamp      time.Time `gorm:"autoCreateTime;index"`
}

func (quizResultV1) TableName() string { return "quiz_results" }

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202501010001_initial_schema",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&userV1{}, &questionV1{}, &quizResultV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("quiz_results", "questions", "users")
			},
		},
	}
}

// Run applies every pending migration. Already-applied ones are skipped by id.
func Run(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())
	if err := m.Migrate(); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// RollbackLast undoes the most recently applied migration.
func RollbackLast(db *gorm.DB) error {
	log.Warn().Msg("Rolling back the last database migration...")
	if err := gormigrate.New(db, gormigrate.DefaultOptions, migrations()).RollbackLast(); err != nil {
		log.Error().Err(err).Msg("Database rollback failed")
		return err
	}
	log.Info().Msg("Database rollback completed.")
	return nil
}
