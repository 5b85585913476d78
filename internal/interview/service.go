package interview

import (
	"context"
	"fmt"

	"github.com/deerk/mock-interviewer/internal/config"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) ([]string, error)
	AnalyzeResponses(ctx context.Context, req AnalyzeResponsesRequest) (*FeedbackReport, error)
}

type service struct {
	provider Provider
	cache    QuestionCache
}

func NewService(provider Provider, cache QuestionCache) Service {
	return &service{
		provider: provider,
		cache:    cache,
	}
}

func (s *service) GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) ([]string, error) {
	log := config.WithContext(ctx)
	jd := req.JobDesc
	log.Infof("Generating questions for job title: %s", jd.Title)

	key := CacheKey(jd)
	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cache read failed: %w", err)
	}
	if found {
		if len(cached) == questionCount {
			log.Info("Returning cached questions")
			return cached, nil
		}
		log.Warnf("Cached entry %s holds %d questions, regenerating", key, len(cached))
	}

	raw, err := s.provider.Complete(ctx, systemPrompt, BuildQuestionsPrompt(jd))
	if err != nil {
		return nil, err
	}

	questions, err := ExtractQuestions(raw)
	if err != nil {
		log.WithError(err).Error("Model output did not yield exactly 5 questions")
		return nil, err
	}

	if err := s.cache.Set(ctx, key, questions, questionTTL); err != nil {
		log.WithError(err).Warn("Failed to cache generated questions")
	}

	log.Infof("Generated %d questions", len(questions))
	return questions, nil
}

func (s *service) AnalyzeResponses(ctx context.Context, req AnalyzeResponsesRequest) (*FeedbackReport, error) {
	log := config.WithContext(ctx)
	log.Info("Analyzing interview responses")

	raw, err := s.provider.Complete(ctx, systemPrompt, BuildAnalysisPrompt(req.Answers))
	if err != nil {
		return nil, err
	}

	report, err := ParseFeedback(raw)
	if err != nil {
		log.WithError(err).Error("Failed to parse feedback from model output")
		return nil, err
	}

	log.Info("Successfully generated feedback")
	return report, nil
}
