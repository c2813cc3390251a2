package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xaenox/tweetfiler/internal/models"
)

// ParseError indicates the provider response contained no syntactically
// valid JSON object.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "parse error: response contains no JSON object"
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError indicates the parsed object is missing a required field
// or has one of the wrong type.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: missing or invalid field %q", e.Field)
}

// ParseResponse turns raw reasoning-provider text into a validated
// ReasoningResult. It tolerates a surrounding fenced code block and
// leading/trailing prose around the JSON object. Pure function of its
// input.
func ParseResponse(raw string) (models.ReasoningResult, error) {
	text := strings.TrimSpace(raw)
	text = stripFence(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return models.ReasoningResult{}, &ParseError{}
	}
	text = text[start : end+1]

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return models.ReasoningResult{}, &ParseError{Err: err}
	}

	title, err := requiredString(fields, "title")
	if err != nil {
		return models.ReasoningResult{}, err
	}
	summary, err := requiredString(fields, "summary")
	if err != nil {
		return models.ReasoningResult{}, err
	}
	category, err := requiredString(fields, "category")
	if err != nil {
		return models.ReasoningResult{}, err
	}
	tags, err := tagList(fields)
	if err != nil {
		return models.ReasoningResult{}, err
	}

	return models.ReasoningResult{
		Title:    title,
		Summary:  summary,
		Tags:     tags,
		Category: category,
	}, nil
}

// stripFence removes a single surrounding fenced code block, with or
// without a language tag.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	rest := text[3:]
	if nl := strings.Index(rest, "\n"); nl != -1 {
		rest = rest[nl+1:]
	}
	if end := strings.LastIndex(rest, "```"); end != -1 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func requiredString(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", &ValidationError{Field: name}
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", &ValidationError{Field: name}
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Field: name}
	}
	return value, nil
}

func tagList(fields map[string]json.RawMessage) ([]string, error) {
	raw, ok := fields["tags"]
	if !ok || string(raw) == "null" {
		return nil, &ValidationError{Field: "tags"}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, &ValidationError{Field: "tags"}
	}
	tags := make([]string, 0, len(values))
	for _, t := range values {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags, nil
}
