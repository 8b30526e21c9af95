package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseQuestionsRoundTrip(t *testing.T) {
	raw := `Sure! Here is your interview plan.

interviewQuestions = [
  {"question": "Explain REST", "type": "Technical"},
  {"question": "Tell me about a conflict you resolved", "type": "Behavioral"}
]

Good luck with the interview!`

	res, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("ParseQuestions failed: %v", err)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(res.Questions))
	}
	if res.Questions[0].Question != "Explain REST" || res.Questions[0].Type != "Technical" {
		t.Errorf("first question mismatch: %+v", res.Questions[0])
	}
	if res.Questions[1].Question != "Tell me about a conflict you resolved" || res.Questions[1].Type != "Behavioral" {
		t.Errorf("second question mismatch: %+v", res.Questions[1])
	}
	if res.Dropped != 0 {
		t.Errorf("expected no dropped items, got %d", res.Dropped)
	}
}

func TestParseQuestionsRelaxedSyntax(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "single quotes and unquoted keys",
			raw:  "interviewQuestions=[{question:'Explain REST', type:'Technical'}]",
			want: "Explain REST",
		},
		{
			name: "trailing comma",
			raw:  `qs = [{"question": "What is a goroutine?", "type": "Technical"},]`,
			want: "What is a goroutine?",
		},
		{
			name: "apostrophe inside double quotes",
			raw:  `interviewQuestions = [{"question": "What's your biggest weakness?", "type": "Behavioral"}]`,
			want: "What's your biggest weakness?",
		},
		{
			name: "escaped quote inside single quotes",
			raw:  `interviewQuestions = [{question: 'Describe a \'hard\' bug', type: 'Experience'}]`,
			want: "Describe a 'hard' bug",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ParseQuestions(tc.raw)
			if err != nil {
				t.Fatalf("ParseQuestions failed: %v", err)
			}
			if len(res.Questions) != 1 {
				t.Fatalf("expected 1 question, got %d", len(res.Questions))
			}
			if res.Questions[0].Question != tc.want {
				t.Errorf("got question %q, want %q", res.Questions[0].Question, tc.want)
			}
		})
	}
}

func TestParseQuestionsNestedBrackets(t *testing.T) {
	// a lazy match up to the first ] would truncate this payload
	raw := `interviewQuestions = [
  {"question": "Given [1, 2, 3], reverse the array in place", "type": "Technical"},
  {"question": "Design a cache with {key: value} semantics", "type": "Problem Solving"}
]`

	res, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("ParseQuestions failed: %v", err)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(res.Questions))
	}
	if !strings.Contains(res.Questions[0].Question, "[1, 2, 3]") {
		t.Errorf("nested brackets were truncated: %q", res.Questions[0].Question)
	}
}

func TestParseQuestionsDropsInvalidKeepsValid(t *testing.T) {
	raw := `interviewQuestions = [
  {"question": "First", "type": "Technical"},
  {"type": "Behavioral"},
  {"question": "", "type": "Technical"},
  {"question": "Last", "type": "Leadership"}
]`

	res, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("ParseQuestions failed: %v", err)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(res.Questions))
	}
	if res.Questions[0].Question != "First" || res.Questions[1].Question != "Last" {
		t.Errorf("relative order not preserved: %+v", res.Questions)
	}
	if res.Dropped != 2 {
		t.Errorf("expected 2 dropped items, got %d", res.Dropped)
	}
}

func TestParseQuestionsAllInvalid(t *testing.T) {
	raw := `interviewQuestions = [{"type": "Technical"}, {"type": "Behavioral"}]`

	_, err := ParseQuestions(raw)
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}
}

func TestParseQuestionsEmptyArray(t *testing.T) {
	_, err := ParseQuestions("interviewQuestions = []")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("expected ErrNoValidQuestions, got %v", err)
	}
}

func TestParseQuestionsNoPayload(t *testing.T) {
	for _, raw := range []string{
		"I could not generate any questions, sorry.",
		"",
		"here is a list [1, 2, 3] but no assignment",
	} {
		_, err := ParseQuestions(raw)
		if !errors.Is(err, ErrNoPayloadFound) {
			t.Errorf("raw %q: expected ErrNoPayloadFound, got %v", raw, err)
		}
	}
}

func TestParseQuestionsMalformedPayload(t *testing.T) {
	raw := `interviewQuestions = [{"question": "ok", "type": }]`

	_, err := ParseQuestions(raw)
	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
	if malformed.Payload == "" {
		t.Error("expected offending payload to be carried for diagnostics")
	}
}

func TestParseQuestionsUnterminatedArray(t *testing.T) {
	raw := `interviewQuestions = [{"question": "never closed"`

	_, err := ParseQuestions(raw)
	var malformed *MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
}

func TestParseQuestionsFirstMatchWins(t *testing.T) {
	raw := `first = [{"question": "From the first payload", "type": "Technical"}]
second = [{"question": "From the second payload", "type": "Technical"}]`

	res, err := ParseQuestions(raw)
	if err != nil {
		t.Fatalf("ParseQuestions failed: %v", err)
	}
	if len(res.Questions) != 1 || res.Questions[0].Question != "From the first payload" {
		t.Errorf("expected the first payload to win, got %+v", res.Questions)
	}
}
