package interview

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/deerk/mock-interviewer/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for question generation")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.JobDesc.Title) == "" || strings.TrimSpace(req.JobDesc.Description) == "" {
		config.Error(w, http.StatusBadRequest, "job title and description are required")
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, GenerateQuestionsResponse{Questions: questions})
}

func (h *Handler) AnalyzeResponses(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req AnalyzeResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for response analysis")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Answers) == 0 {
		config.Error(w, http.StatusBadRequest, "answers are required")
		return
	}

	report, err := h.service.AnalyzeResponses(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to analyze responses")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	encoded, err := json.Marshal(report)
	if err != nil {
		log.WithError(err).Error("Failed to encode feedback report")
		config.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusOK, AnalyzeResponsesResponse{Feedback: string(encoded)})
}
