package model

// CandidateInfo is captured once per candidate session and never persisted.
type CandidateInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Answer pairs a free-text response with the index of the question it answers.
type Answer struct {
	QuestionIndex int    `json:"question_index"`
	Text          string `json:"text"`
}

type StartSessionReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SubmitSessionReq struct {
	Answers []string `json:"answers"`
}
