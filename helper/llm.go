package helper

import (
	"context"

	"eldercare_booking/config"
	"eldercare_booking/model"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiCompleter proxy chat sang Gemini
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter trả về nil khi thiếu GEMINI_API_KEY
func NewGeminiCompleter(ctx context.Context) (*GeminiCompleter, error) {
	apiKey := config.Config("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return &GeminiCompleter{
		client: client,
		model:  config.ConfigDefault("GEMINI_MODEL", defaultGeminiModel),
	}, nil
}

// ToGenaiContents vai trò assistant của client tương ứng với model của Gemini
func ToGenaiContents(messages []model.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return contents
}

func (g *GeminiCompleter) generateConfig(system string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		Temperature:       genai.Ptr(float32(0.7)),
		MaxOutputTokens:   500,
	}
}

func (g *GeminiCompleter) Complete(ctx context.Context, system string, messages []model.ChatMessage) (*model.ChatReply, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, ToGenaiContents(messages), g.generateConfig(system))
	if err != nil {
		return nil, errors.Wrap(err, "gemini generate content")
	}
	text := result.Text()
	if text == "" {
		return nil, errors.New("empty response from gemini")
	}

	reply := &model.ChatReply{Message: model.ChatMessage{Role: "assistant", Content: text}}
	if u := result.UsageMetadata; u != nil {
		reply.Usage = model.ChatUsage{
			PromptTokens:     u.PromptTokenCount,
			CompletionTokens: u.CandidatesTokenCount,
			TotalTokens:      u.TotalTokenCount,
		}
	}
	return reply, nil
}

func (g *GeminiCompleter) Stream(ctx context.Context, system string, messages []model.ChatMessage, onDelta func(string) error) error {
	for result, err := range g.client.Models.GenerateContentStream(ctx, g.model, ToGenaiContents(messages), g.generateConfig(system)) {
		if err != nil {
			return errors.Wrap(err, "gemini stream")
		}
		if text := result.Text(); text != "" {
			if err := onDelta(text); err != nil {
				return err
			}
		}
	}
	return nil
}
