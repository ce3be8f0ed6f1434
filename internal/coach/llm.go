package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// llmClient wraps the OpenAI chat completion API. The rest of the package
// treats the completion call as opaque: prompt in, text out, either whole or
// as a stream of chunks.
type llmClient struct {
	client openai.Client
	model  openai.ChatModel
	logger *slog.Logger
}

func newLLMClient(apiKey, model string, logger *slog.Logger) *llmClient {
	return &llmClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModel(model),
		logger: logger,
	}
}

func (c *llmClient) buildMessages(systemPrompt string, history []ChatMessage, userMessage string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, m := range history {
		if m.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(userMessage))
	return messages
}

// Stream performs a streaming completion, invoking onDelta for every text
// chunk, and returns the accumulated full text.
func (c *llmClient) Stream(ctx context.Context, systemPrompt string, history []ChatMessage, userMessage string, onDelta func(string)) (string, error) {
	stream := c.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: c.buildMessages(systemPrompt, history, userMessage),
	})

	acc := openai.ChatCompletionAccumulator{}
	for stream.Next() {
		chunk := stream.Current()
		acc.AddChunk(chunk)
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			onDelta(chunk.Choices[0].Delta.Content)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("chat completion stream: %w", err)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "completion stream finished",
		slog.Int64("completionTokens", acc.Usage.CompletionTokens),
		slog.Int64("promptTokens", acc.Usage.PromptTokens))

	if len(acc.Choices) == 0 {
		return "", errors.New("chat completion stream returned no choices")
	}
	return acc.Choices[0].Message.Content, nil
}
