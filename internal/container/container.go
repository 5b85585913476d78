package container

import (
	"context"
	"fmt"

	"github.com/deerk/mock-interviewer/internal/config"
	"github.com/deerk/mock-interviewer/internal/interview"
)

type Container struct {
	Config             *config.Config
	InterviewContainer *interview.InterviewContainer
}

func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.Init()
	log := config.Logger()

	if err := config.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infof("Connected to redis at %s", cfg.RedisAddr)

	provider, err := interview.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		return nil, err
	}

	log.Info("Testing OpenAI API connection...")
	if err := provider.Ping(ctx); err != nil {
		return nil, err
	}
	log.Info("OpenAI API connection successful")

	cache := interview.NewRedisCache(config.Redis)
	interviewContainer := interview.NewInterviewContainer(provider, cache)

	return &Container{
		Config:             cfg,
		InterviewContainer: interviewContainer,
	}, nil
}
