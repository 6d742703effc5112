package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/database"
	"github.com/lshigami/apquiz/internal/migration"
	"github.com/lshigami/apquiz/internal/model"
	"github.com/lshigami/apquiz/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func TestSampleQuestionsAreWellFormed(t *testing.T) {
	sample := SampleQuestions()
	if len(sample) != 15 {
		t.Fatalf("len = %d, want 15", len(sample))
	}
	for i, q := range sample {
		if q.CorrectAnswer < 1 || q.CorrectAnswer > 4 {
			t.Fatalf("question %d: correct answer %d out of range", i, q.CorrectAnswer)
		}
		if !model.ValidDifficulty(q.Difficulty) {
			t.Fatalf("question %d: bad difficulty %q", i, q.Difficulty)
		}
		for j, opt := range q.Options() {
			if opt == "" {
				t.Fatalf("question %d: option %d empty", i, j+1)
			}
		}
	}
}

func TestRunSeedsOnceAndIsIdempotent(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := migration.Run(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	questions := repository.NewQuestionRepository(db)
	admin := config.Admin{Username: "admin", Password: "admin123", Email: "admin@apquiz.com"}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Run(ctx, users, questions, admin); err != nil {
			t.Fatalf("Run #%d failed: %v", i+1, err)
		}
	}

	if n, _ := questions.Count(ctx); n != 15 {
		t.Fatalf("question count = %d, want 15", n)
	}

	u, err := users.FindByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if u.Password == "admin123" {
		t.Fatalf("admin password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("admin123")); err != nil {
		t.Fatalf("admin hash does not verify: %v", err)
	}
}
