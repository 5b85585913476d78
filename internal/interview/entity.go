package interview

type JobDescription struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type GenerateQuestionsRequest struct {
	JobDesc JobDescription `json:"job_desc"`
}

type GenerateQuestionsResponse struct {
	Questions []string `json:"questions"`
}

type InterviewAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AnalyzeResponsesRequest struct {
	Answers []InterviewAnswer `json:"answers"`
}

// AnalyzeResponsesResponse carries the feedback report as a JSON-encoded
// string, which is what the frontend consumes.
type AnalyzeResponsesResponse struct {
	Feedback string `json:"feedback"`
}

type FeedbackReport struct {
	TechnicalScore     int      `json:"technical_score"`
	CommunicationScore int      `json:"communication_score"`
	OverallScore       int      `json:"overall_score"`
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
	Recommendations    []string `json:"recommendations"`
}
