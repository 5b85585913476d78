package interview

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced technical interviewer conducting interviews for various tech positions.
Your goal is to assess candidates' technical knowledge, problem-solving abilities, and communication skills.
Ask relevant technical questions based on the job title and description provided. Focus on both technical depth and soft skills.
Provide constructive feedback that helps candidates improve.`

func BuildQuestionsPrompt(jd JobDescription) string {
	return fmt.Sprintf(`Generate exactly 5 relevant interview questions for:
Job Title: %s
Job Description: %s

Focus on both technical skills and soft skills. Make the questions specific to the role.

Format each question on a new line, numbered from 1-5.`, jd.Title, jd.Description)
}

// BuildAnalysisPrompt renders the transcript in interview order and asks for
// the six-field JSON feedback object.
func BuildAnalysisPrompt(answers []InterviewAnswer) string {
	var transcript strings.Builder
	for _, ans := range answers {
		fmt.Fprintf(&transcript, "Q: %s\nA: %s\n\n", ans.Question, ans.Answer)
	}

	return fmt.Sprintf(`Analyze these interview responses:

%sProvide comprehensive feedback including:
1. Technical Depth (Score out of 10)
2. Communication Clarity (Score out of 10)
3. Overall Performance (Score out of 10)
4. Strengths
5. Areas for Improvement
6. Specific Recommendations

Format the response as JSON with these keys:
technical_score, communication_score, overall_score, strengths, improvements, recommendations`, transcript.String())
}
