package interview

type InterviewContainer struct {
	Handler *Handler
}

func NewInterviewContainer(provider Provider, cache QuestionCache) *InterviewContainer {
	service := NewService(provider, cache)
	handler := NewHandler(service)

	return &InterviewContainer{
		Handler: handler,
	}
}
