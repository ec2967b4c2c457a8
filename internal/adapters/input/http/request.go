package http

import "mock-interview-api/internal/domain"

type (
	// GenerateQuestionsRequest struct - HTTP request DTO
	GenerateQuestionsRequest struct {
		Resume string `json:"resume" validate:"required,notblank"`
		Job    string `json:"job" validate:"omitempty"`
	}

	// AnswerRequest struct - HTTP request DTO for one interview turn
	AnswerRequest struct {
		ID            string `json:"id" validate:"required,notblank"`
		Job           string `json:"job" validate:"omitempty"`
		Question      string `json:"question" validate:"required,notblank"`
		Answer        string `json:"answer" validate:"required,notblank"`
		FollowupCount int    `json:"followupCount" validate:"gte=0"`
	}

	// QnARequest struct - one question and its answer
	QnARequest struct {
		Q string `json:"q" validate:"required"`
		A string `json:"a"`
	}

	// GenerateReportRequest struct - HTTP request DTO
	GenerateReportRequest struct {
		ID     string       `json:"id" validate:"omitempty"`
		QnA    []QnARequest `json:"qna" validate:"required,min=1,dive"`
		Job    string       `json:"job" validate:"omitempty"`
		Resume string       `json:"resume" validate:"omitempty"`
	}

	// TTSQuery struct - HTTP query DTO
	TTSQuery struct {
		Text string `json:"text" query:"text" validate:"required,notblank"`
	}
)

func (r GenerateQuestionsRequest) toDomain() domain.QuestionRequest {
	return domain.QuestionRequest{Resume: r.Resume, Job: r.Job}
}

func (r AnswerRequest) toDomain() domain.TurnRequest {
	return domain.TurnRequest{
		SessionID:     r.ID,
		Job:           r.Job,
		Question:      r.Question,
		Answer:        r.Answer,
		FollowupCount: r.FollowupCount,
	}
}

func (r GenerateReportRequest) toDomain() domain.ReportRequest {
	qna := make([]domain.QnA, 0, len(r.QnA))
	for _, item := range r.QnA {
		qna = append(qna, domain.QnA{Question: item.Q, Answer: item.A})
	}
	return domain.ReportRequest{
		SessionID: r.ID,
		QnA:       qna,
		Job:       r.Job,
		Resume:    r.Resume,
	}
}
