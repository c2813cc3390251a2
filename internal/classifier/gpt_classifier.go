package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/xaenox/tweetfiler/internal/models"
)

// ErrPromptTooLong is returned when the constructed prompt exceeds the
// configured length limit. The remote call is skipped entirely in that
// case to bound latency and token cost.
var ErrPromptTooLong = errors.New("prompt exceeds configured length limit")

// ErrEmptyResponse is returned when the provider answers with no choices.
var ErrEmptyResponse = errors.New("provider returned an empty response")

const contextSnippetLimit = 120

const systemPrompt = `You analyze saved social-media posts and return structured metadata.

Categories (pick exactly one, never leave it empty):
- GitHub: repositories, libraries, frameworks, developer tools, MCP servers
- Article: blog posts, tutorials, guides, essays, newsletters, threads worth reading
- Video: YouTube or other video content
- Podcast: podcast episodes or audio shows
- Tool: products, apps and services that are not code repositories
- General: anything that fits none of the above

Disambiguation: a post linking to a repository is GitHub even if it reads
like an article; a post about a video is Video only when a video link is
present, otherwise Article.

Respond with strictly a JSON object with keys "title", "summary", "tags"
and "category". No prose, no code fences.`

// GPTClassifier analyzes bookmarks through the OpenAI chat completion
// API and parses the structured response.
type GPTClassifier struct {
	client         *openai.Client
	model          string
	maxTokens      int
	temperature    float64
	maxPromptChars int
	timeout        time.Duration
	logger         *zap.Logger
}

func NewGPTClassifier(apiKey string, model string, maxTokens int, temperature float64, maxPromptChars int, timeout time.Duration, logger *zap.Logger) *GPTClassifier {
	return &GPTClassifier{
		client:         openai.NewClient(apiKey),
		model:          model,
		maxTokens:      maxTokens,
		temperature:    temperature,
		maxPromptChars: maxPromptChars,
		timeout:        timeout,
		logger:         logger,
	}
}

func (c *GPTClassifier) Classify(ctx context.Context, bookmark models.Bookmark) (models.ReasoningResult, error) {
	prompt := BuildPrompt(bookmark)
	if len(prompt) > c.maxPromptChars {
		c.logger.Debug("Skipping remote call for oversized prompt",
			zap.String("bookmark_id", bookmark.ID),
			zap.Int("prompt_chars", len(prompt)))
		return models.ReasoningResult{}, ErrPromptTooLong
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
		},
	)
	if err != nil {
		return models.ReasoningResult{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.ReasoningResult{}, ErrEmptyResponse
	}

	return ParseResponse(resp.Choices[0].Message.Content)
}

// BuildPrompt renders the per-bookmark user prompt: author, raw text,
// expanded link URLs and a capped snippet of any conversation context.
func BuildPrompt(bookmark models.Bookmark) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Author: @%s\n", bookmark.Author)
	fmt.Fprintf(&sb, "Post: %s\n", bookmark.Text)

	for _, link := range bookmark.Links {
		fmt.Fprintf(&sb, "Link: %s\n", link.Expanded)
	}

	if ctx := bookmark.ReplyContext; ctx != nil {
		fmt.Fprintf(&sb, "In reply to @%s: %s\n", ctx.Author, snippet(ctx.Text))
	}
	if ctx := bookmark.QuoteContext; ctx != nil {
		fmt.Fprintf(&sb, "Quoting @%s: %s\n", ctx.Author, snippet(ctx.Text))
	}

	return sb.String()
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= contextSnippetLimit {
		return text
	}
	return string(runes[:contextSnippetLimit])
}
