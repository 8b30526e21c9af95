package groq

import (
	"strings"
	"testing"

	"github.com/bhagatankit05/NextHire/pkg/model"
)

func TestBuildQuestionsPrompt(t *testing.T) {
	spec := model.JobSpec{
		JobPosition:    "Backend Engineer",
		JobDescription: "Design and operate Go microservices.",
		Duration:       30,
		InterviewType:  "Technical",
	}

	prompt := BuildQuestionsPrompt(spec)

	for _, want := range []string{
		"Backend Engineer",
		"Design and operate Go microservices.",
		"30 minutes",
		"Technical",
		"interviewQuestions=[",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(prompt, "{{") {
		t.Errorf("prompt has unsubstituted placeholders:\n%s", prompt)
	}
}

func TestBuildQuestionsPromptIsPure(t *testing.T) {
	spec := model.JobSpec{
		JobPosition:    "Data Engineer",
		JobDescription: "ETL pipelines",
		Duration:       45,
		InterviewType:  "Case Study",
	}
	if BuildQuestionsPrompt(spec) != BuildQuestionsPrompt(spec) {
		t.Error("same spec should produce the same prompt")
	}
}
