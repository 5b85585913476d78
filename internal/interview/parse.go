package interview

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const questionCount = 5

var (
	ErrQuestionCount = errors.New("model did not return the expected number of questions")
	ErrFeedbackParse = errors.New("failed to parse feedback")
)

// questionLine accepts "1. ..." through "99. ..." at the start of a line.
// Other ordinal styles ("1)", "1 -") are rejected so a model drifting from
// the requested format surfaces as a count error instead of a partial parse.
var questionLine = regexp.MustCompile(`^\d{1,2}\. `)

// ExtractQuestions filters the raw completion down to its numbered question
// lines and enforces that exactly five remain.
func ExtractQuestions(raw string) ([]string, error) {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if questionLine.MatchString(line) {
			questions = append(questions, line)
		}
	}

	if len(questions) != questionCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrQuestionCount, len(questions), questionCount)
	}
	return questions, nil
}

// stripFences removes a Markdown code-fence wrapper by dropping the first and
// last lines when the text begins with a fence marker.
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 3 {
		return trimmed
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}

type rawFeedback struct {
	TechnicalScore     *int            `json:"technical_score"`
	CommunicationScore *int            `json:"communication_score"`
	OverallScore       *int            `json:"overall_score"`
	Strengths          json.RawMessage `json:"strengths"`
	Improvements       json.RawMessage `json:"improvements"`
	Recommendations    json.RawMessage `json:"recommendations"`
}

// ParseFeedback decodes the model's free-text analysis into a FeedbackReport.
// A bare string in a list-valued field is coerced to a one-element slice;
// everything else out of shape is an error. Unknown fields are dropped.
func ParseFeedback(raw string) (*FeedbackReport, error) {
	clean := stripFences(raw)

	var rf rawFeedback
	if err := json.Unmarshal([]byte(clean), &rf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedbackParse, err)
	}

	report := &FeedbackReport{}
	for _, score := range []struct {
		name  string
		value *int
		dst   *int
	}{
		{"technical_score", rf.TechnicalScore, &report.TechnicalScore},
		{"communication_score", rf.CommunicationScore, &report.CommunicationScore},
		{"overall_score", rf.OverallScore, &report.OverallScore},
	} {
		if score.value == nil {
			return nil, fmt.Errorf("%w: missing field %q", ErrFeedbackParse, score.name)
		}
		if *score.value < 0 || *score.value > 10 {
			return nil, fmt.Errorf("%w: field %q out of range: %d", ErrFeedbackParse, score.name, *score.value)
		}
		*score.dst = *score.value
	}

	for _, list := range []struct {
		name string
		raw  json.RawMessage
		dst  *[]string
	}{
		{"strengths", rf.Strengths, &report.Strengths},
		{"improvements", rf.Improvements, &report.Improvements},
		{"recommendations", rf.Recommendations, &report.Recommendations},
	} {
		values, err := coerceStringList(list.name, list.raw)
		if err != nil {
			return nil, err
		}
		*list.dst = values
	}

	return report, nil
}

func coerceStringList(name string, raw json.RawMessage) ([]string, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrFeedbackParse, name)
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err == nil {
		return values, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	return nil, fmt.Errorf("%w: field %q is neither a string list nor a string", ErrFeedbackParse, name)
}
