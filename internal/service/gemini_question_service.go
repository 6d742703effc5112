package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/internal/dto"
	"github.com/lshigami/apquiz/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var (
	ErrGeneratorUnavailable = errors.New("question generator is not configured")
	ErrMalformedGeneration  = errors.New("generated question could not be parsed")
)

// QuestionGenerator drafts a new bank question. Drafts are never saved by
// the generator itself.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, topic, difficulty string) (*dto.QuestionCreateDTO, error)
}

type geminiQuestionGenerator struct {
	model *genai.GenerativeModel
}

func NewGeminiQuestionGenerator(cfg *config.Config) (QuestionGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation will be non-functional.")
		return &geminiQuestionGenerator{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiQuestionGenerator{model: client.GenerativeModel(cfg.GeminiModel)}, nil
}

func (g *geminiQuestionGenerator) GenerateQuestion(ctx context.Context, topic, difficulty string) (*dto.QuestionCreateDTO, error) {
	if g.model == nil {
		return nil, ErrGeneratorUnavailable
	}
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(generationPrompt(topic, difficulty)))
	if err != nil {
		log.Error().Err(err).Msg("Error generating content from Gemini")
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Interface("geminiResponse", resp).Msg("Gemini response was empty or malformed")
		return nil, ErrMalformedGeneration
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}
	draft, err := parseGeneratedQuestion(raw.String(), difficulty)
	if err != nil {
		log.Warn().Err(err).Str("raw", raw.String()).Msg("Unparseable Gemini question")
		return nil, err
	}
	return draft, nil
}

func generationPrompt(topic, difficulty string) string {
	if strings.TrimSpace(topic) == "" {
		topic = "arithmetic progressions"
	}
	return fmt.Sprintf(`Write one %s multiple-choice question about %s for high-school students.
Give exactly four options, one of them correct.
Respond in exactly this format and nothing else:
Question: <question text>
Option1: <text>
Option2: <text>
Option3: <text>
Option4: <text>
Answer: <number of the correct option, 1-4>
Difficulty: <easy|medium|hard>`, difficulty, topic)
}

// parseGeneratedQuestion reads the "Key: value" lines requested by
// generationPrompt. Markdown bold markers and bullet dashes are tolerated.
func parseGeneratedQuestion(raw, fallbackDifficulty string) (*dto.QuestionCreateDTO, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*"))
		line = strings.ReplaceAll(line, "**", "")
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), " ", ""))
		if _, seen := fields[key]; !seen {
			fields[key] = strings.TrimSpace(value)
		}
	}

	draft := &dto.QuestionCreateDTO{
		Question:   fields["question"],
		Option1:    fields["option1"],
		Option2:    fields["option2"],
		Option3:    fields["option3"],
		Option4:    fields["option4"],
		Difficulty: strings.ToLower(fields["difficulty"]),
	}
	for _, v := range []string{draft.Question, draft.Option1, draft.Option2, draft.Option3, draft.Option4} {
		if v == "" {
			return nil, fmt.Errorf("%w: missing question or option", ErrMalformedGeneration)
		}
	}

	answer := strings.TrimSpace(strings.TrimPrefix(strings.ToLower(fields["answer"]), "option"))
	if answer != "" {
		answer = answer[:1]
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > 4 {
		return nil, fmt.Errorf("%w: answer %q is not 1-4", ErrMalformedGeneration, fields["answer"])
	}
	draft.CorrectAnswer = n

	if !model.ValidDifficulty(draft.Difficulty) {
		draft.Difficulty = fallbackDifficulty
	}
	if !model.ValidDifficulty(draft.Difficulty) {
		draft.Difficulty = model.DifficultyMedium
	}
	return draft, nil
}
