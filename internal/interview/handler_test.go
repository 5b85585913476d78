package interview_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/deerk/mock-interviewer/internal/interview"
)

type fakeService struct {
	questions []string
	report    *interview.FeedbackReport
	err       error
}

func (s *fakeService) GenerateQuestions(_ context.Context, _ interview.GenerateQuestionsRequest) ([]string, error) {
	return s.questions, s.err
}

func (s *fakeService) AnalyzeResponses(_ context.Context, _ interview.AnalyzeResponsesRequest) (*interview.FeedbackReport, error) {
	return s.report, s.err
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	return body["detail"]
}

const genBody = `{"job_desc": {"title": "Backend Engineer", "description": "Build APIs in a distributed system."}}`

func TestGenerateQuestionsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := interview.NewHandler(&fakeService{questions: []string{"1. A", "2. B", "3. C", "4. D", "5. E"}})
		rec := postJSON(t, h.GenerateQuestions, "/generate-questions", genBody)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp interview.GenerateQuestionsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if len(resp.Questions) != 5 {
			t.Fatalf("expected 5 questions, got %d", len(resp.Questions))
		}

		pattern := regexp.MustCompile(`^\d\. .+`)
		for _, q := range resp.Questions {
			if !pattern.MatchString(q) {
				t.Errorf("question does not match the numbered pattern: %q", q)
			}
		}
	})

	t.Run("InvalidBody", func(t *testing.T) {
		h := interview.NewHandler(&fakeService{})
		rec := postJSON(t, h.GenerateQuestions, "/generate-questions", "{not json")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("MissingTitle", func(t *testing.T) {
		h := interview.NewHandler(&fakeService{})
		rec := postJSON(t, h.GenerateQuestions, "/generate-questions",
			`{"job_desc": {"title": " ", "description": "x"}}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("ServiceError", func(t *testing.T) {
		h := interview.NewHandler(&fakeService{err: errors.New("model did not return the expected number of questions: got 4, want 5")})
		rec := postJSON(t, h.GenerateQuestions, "/generate-questions", genBody)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if detail := decodeDetail(t, rec); !strings.Contains(detail, "got 4, want 5") {
			t.Errorf("detail does not carry the original message: %q", detail)
		}
	})
}

func TestAnalyzeResponsesHandler(t *testing.T) {
	report := &interview.FeedbackReport{
		TechnicalScore:     6,
		CommunicationScore: 7,
		OverallScore:       6,
		Strengths:          []string{"a"},
		Improvements:       []string{"b"},
		Recommendations:    []string{"c"},
	}
	body := `{"answers": [{"question": "1. Q", "answer": "A"}]}`

	t.Run("Success", func(t *testing.T) {
		h := interview.NewHandler(&fakeService{report: report})
		rec := postJSON(t, h.AnalyzeResponses, "/analyze-responses", body)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp interview.AnalyzeResponsesResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}

		// The feedback field is itself a JSON document.
		var decoded interview.FeedbackReport
		if err := json.Unmarshal([]byte(resp.Feedback), &decoded); err != nil {
			t.Fatalf("feedback string is not JSON: %v", err)
		}
		if decoded.CommunicationScore != 7 || len(decoded.Strengths) != 1 {
			t.Errorf("unexpected decoded report: %+v", decoded)
		}
	})

	t.Run("EmptyAnswers", func(t *testing.T) {
		h := interview.NewHandler(&fakeService{report: report})
		rec := postJSON(t, h.AnalyzeResponses, "/analyze-responses", `{"answers": []}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("ServiceError", func(t *testing.T) {
		h := interview.NewHandler(&fakeService{err: interview.ErrFeedbackParse})
		rec := postJSON(t, h.AnalyzeResponses, "/analyze-responses", body)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if detail := decodeDetail(t, rec); detail == "" {
			t.Error("expected a detail message in the error body")
		}
	})
}
