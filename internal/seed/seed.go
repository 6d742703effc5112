// Package seed fills an empty store with the admin account and the starter
// question bank.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/internal/model"
	"github.com/lshigami/apquiz/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func q(prompt, o1, o2, o3, o4 string, correct int, difficulty string) model.Question {
	return model.Question{
		Prompt: prompt, Option1: o1, Option2: o2, Option3: o3, Option4: o4,
		CorrectAnswer: correct, Difficulty: difficulty,
	}
}

// SampleQuestions is the starter bank inserted into an empty questions table.
func SampleQuestions() []model.Question {
	return []model.Question{
		q("What is the 10th term of the AP: 3, 8, 13, 18...?", "48", "53", "58", "63", 2, model.DifficultyEasy),
		q("Find the sum of first 10 terms of AP: 2, 5, 8, 11...", "155", "165", "175", "185", 2, model.DifficultyMedium),
		q("Which of the following is NOT an arithmetic progression?", "2, 4, 6, 8", "1, 4, 9, 16", "5, 10, 15, 20", "3, 7, 11, 15", 2, model.DifficultyEasy),
		q("In AP: 7, _, 19, _, 31 - find the first missing term", "13", "15", "11", "12", 1, model.DifficultyMedium),
		q("The common difference of AP: -5, -1, 3, 7... is", "4", "-4", "6", "-6", 1, model.DifficultyEasy),
		q("Sum of first n natural numbers is given by", "n(n+1)", "n(n+1)/2", "n(n-1)/2", "2n+1", 2, model.DifficultyMedium),
		q("If 5th term of AP is 18 and 10th term is 38, find common difference", "4", "5", "6", "3", 1, model.DifficultyHard),
		q("The 20th term of sequence 100, 95, 90, 85... is", "0", "5", "10", "15", 2, model.DifficultyMedium),
		q("How many terms of AP: 3, 7, 11... make sum 300?", "10", "12", "15", "18", 2, model.DifficultyHard),
		q("If first term is 'a' and common difference is 'd', nth term is", "a + nd", "a + (n-1)d", "a + (n+1)d", "nd - a", 2, model.DifficultyEasy),
		q("Find the sum of first 15 terms of AP: 4, 9, 14, 19...", "525", "545", "565", "585", 3, model.DifficultyMedium),
		q("Which term of AP: 21, 18, 15, 12... is the first negative term?", "7th", "8th", "9th", "10th", 2, model.DifficultyHard),
		q("The arithmetic mean of first n odd numbers is", "n", "(n+1)/2", "n/2", "2n-1", 1, model.DifficultyMedium),
		q("In an AP, if a = 5, d = 3, then S₁₀ = ?", "185", "195", "175", "165", 1, model.DifficultyEasy),
		q("The middle term of AP: 1, 4, 7, ..., 97 is", "49", "51", "47", "53", 1, model.DifficultyMedium),
	}
}

// Run creates the admin user if it does not exist and inserts the sample
// questions if the bank is empty. It is safe to run on every start.
func Run(ctx context.Context, users repository.UserRepository, questions repository.QuestionRepository, admin config.Admin) error {
	if err := ensureAdmin(ctx, users, admin); err != nil {
		return err
	}

	n, err := questions.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if n > 0 {
		return nil
	}

	sample := SampleQuestions()
	if err := questions.CreateBatch(ctx, sample); err != nil {
		return fmt.Errorf("failed to insert sample questions: %w", err)
	}
	log.Info().Int("count", len(sample)).Msg("Inserted sample questions")
	return nil
}

func ensureAdmin(ctx context.Context, users repository.UserRepository, admin config.Admin) error {
	_, err := users.FindByUsername(ctx, admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	err = users.Create(ctx, &model.User{Username: admin.Username, Email: admin.Email, Password: string(hash)})
	if err != nil && !errors.Is(err, repository.ErrDuplicateUsername) {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Info().Str("username", admin.Username).Msg("Admin user created")
	return nil
}
