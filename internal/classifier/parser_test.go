package classifier

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/xaenox/tweetfiler/internal/models"
)

func TestParseResponseValid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.ReasoningResult
	}{
		{
			name: "bare object",
			raw:  `{"title":"T","summary":"S","tags":["a","b"],"category":"GitHub"}`,
			want: models.ReasoningResult{Title: "T", Summary: "S", Tags: []string{"a", "b"}, Category: "GitHub"},
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"title\":\"T\",\"summary\":\"S\",\"tags\":[],\"category\":\"C\"}\n```",
			want: models.ReasoningResult{Title: "T", Summary: "S", Tags: []string{}, Category: "C"},
		},
		{
			name: "fenced without language tag",
			raw:  "```\n{\"title\":\"T\",\"summary\":\"S\",\"tags\":[],\"category\":\"C\"}\n```",
			want: models.ReasoningResult{Title: "T", Summary: "S", Tags: []string{}, Category: "C"},
		},
		{
			name: "surrounding prose",
			raw:  "Here is the analysis you asked for:\n{\"title\":\"T\",\"summary\":\"S\",\"tags\":[],\"category\":\"C\"}\nHope that helps!",
			want: models.ReasoningResult{Title: "T", Summary: "S", Tags: []string{}, Category: "C"},
		},
		{
			name: "whitespace normalized and empty tags dropped",
			raw:  `{"title":"  T  ","summary":" S ","tags":[" a ","","  "],"category":" C "}`,
			want: models.ReasoningResult{Title: "T", Summary: "S", Tags: []string{"a"}, Category: "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.raw)
			assert.NilError(t, err)
			assert.DeepEqual(t, got, tt.want)
		})
	}
}

func TestParseResponseValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"missing title", `{"summary":"S","tags":[],"category":"C"}`, "title"},
		{"blank title", `{"title":"   ","summary":"S","tags":[],"category":"C"}`, "title"},
		{"title wrong type", `{"title":7,"summary":"S","tags":[],"category":"C"}`, "title"},
		{"missing summary", `{"title":"T","tags":[],"category":"C"}`, "summary"},
		{"missing category", `{"title":"T","summary":"S","tags":[]}`, "category"},
		{"missing tags", `{"title":"T","summary":"S","category":"C"}`, "tags"},
		{"tags not a sequence", `{"title":"T","summary":"S","tags":"a","category":"C"}`, "tags"},
		{"tags null", `{"title":"T","summary":"S","tags":null,"category":"C"}`, "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			var verr *ValidationError
			assert.Assert(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Equal(t, verr.Field, tt.field)
		})
	}
}

func TestParseResponseParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"no braces", "no json here"},
		{"broken json", `{"title": "T", "summary":}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			var perr *ParseError
			assert.Assert(t, errors.As(err, &perr), "expected parse error, got %v", err)
		})
	}
}
