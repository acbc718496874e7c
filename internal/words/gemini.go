package words

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/alt25-ops/ESL-Pictionary/internal/shared/logger"
)

const geminiModel = "gemini-2.0-flash"

// Gemini asks the generative model for a word/hint pair matching the level
// and category. It fails open: any transport or parse failure yields the
// static fallback so the caller never sees an error.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, model: geminiModel}, nil
}

func (g *Gemini) Generate(ctx context.Context, level Difficulty, category string) GameWord {
	prompt := fmt.Sprintf(`Generate a Pictionary word for a junior high school ESL student.
Difficulty: %s.
Category: %s.
Provide the word and a short, simple English hint (no complex grammar).`, level, category)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"word":     {Type: genai.TypeString},
				"hint":     {Type: genai.TypeString},
				"category": {Type: genai.TypeString},
			},
			Required: []string{"word", "hint", "category"},
		},
	})
	if err != nil {
		logger.Warningf("Word generation failed, using fallback: %v", err)
		return Fallback(level, category)
	}

	var parsed struct {
		Word string `json:"word"`
		Hint string `json:"hint"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &parsed); err != nil {
		logger.Warningf("Word generation returned malformed JSON, using fallback: %v", err)
		return Fallback(level, category)
	}

	word := GameWord{Word: parsed.Word, Hint: parsed.Hint, Level: level, Category: category}
	if word.Word == "" {
		word.Word = "Apple"
		word.Hint = "A red fruit."
	}
	return word
}
