package application

import (
	"context"
	"fmt"
	"strings"

	"mock-interview-api/internal/domain"
	"mock-interview-api/internal/ports/input"
	"mock-interview-api/internal/ports/output"

	"github.com/sirupsen/logrus"
)

var _ input.InterviewService = (*InterviewService)(nil)

// Interview defaults, applied when a setting is zero
const (
	defaultSummaryWindow       = 6
	defaultMaxQuestions        = 5
	defaultResumeMaxChars      = 6000
	defaultJobMaxChars         = 3000
	defaultJob                 = "Software Engineer"
	defaultQuestionTemperature = 0.6
	defaultTurnTemperature     = 0.4
	defaultReportTemperature   = 0.5
)

// InterviewSettings configures the orchestrator
type InterviewSettings struct {
	FollowupCap         int
	SummaryWindow       int
	MaxQuestions        int
	ResumeMaxChars      int
	JobMaxChars         int
	DefaultJob          string
	RequireQuestionMark bool
	QuestionTemperature float64
	TurnTemperature     float64
	ReportTemperature   float64
}

func (s InterviewSettings) withDefaults() InterviewSettings {
	if s.FollowupCap <= 0 {
		s.FollowupCap = domain.DefaultFollowupCap
	}
	if s.SummaryWindow <= 0 {
		s.SummaryWindow = defaultSummaryWindow
	}
	if s.MaxQuestions <= 0 {
		s.MaxQuestions = defaultMaxQuestions
	}
	if s.ResumeMaxChars <= 0 {
		s.ResumeMaxChars = defaultResumeMaxChars
	}
	if s.JobMaxChars <= 0 {
		s.JobMaxChars = defaultJobMaxChars
	}
	if s.DefaultJob == "" {
		s.DefaultJob = defaultJob
	}
	if s.QuestionTemperature <= 0 {
		s.QuestionTemperature = defaultQuestionTemperature
	}
	if s.TurnTemperature <= 0 {
		s.TurnTemperature = defaultTurnTemperature
	}
	if s.ReportTemperature <= 0 {
		s.ReportTemperature = defaultReportTemperature
	}
	return s
}

// InterviewService struct - Application service orchestrating one mock interview
type InterviewService struct {
	gateway  *CompletionGateway
	store    output.SummaryStore
	prompts  PromptBuilder
	policy   domain.DialoguePolicy
	locks    *sessionLocks
	settings InterviewSettings
}

// NewInterviewService func - Creates new interview service
func NewInterviewService(client output.CompletionClient, store output.SummaryStore, settings InterviewSettings) *InterviewService {
	settings = settings.withDefaults()
	return &InterviewService{
		gateway:  NewCompletionGateway(client),
		store:    store,
		prompts:  NewPromptBuilder(settings.FollowupCap),
		policy:   domain.NewDialoguePolicy(settings.FollowupCap),
		locks:    newSessionLocks(),
		settings: settings,
	}
}

// GenerateQuestions func - Use case: build the initial question set.
// Unstructured completion output degrades to line extraction instead of failing.
func (s *InterviewService) GenerateQuestions(ctx context.Context, request domain.QuestionRequest) (*domain.QuestionSet, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	resume := domain.TruncateRunes(request.Resume, s.settings.ResumeMaxChars)
	job := domain.TruncateRunes(strings.TrimSpace(request.Job), s.settings.JobMaxChars)

	prompt := s.prompts.Questions(resume, job, s.settings.MaxQuestions)
	raw, err := s.gateway.Complete(ctx, prompt, s.settings.QuestionTemperature)
	if err != nil {
		logrus.Errorf("Question generation failed: %v", err)
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	questions, fallback := ExtractQuestions(raw, s.settings.MaxQuestions, s.settings.RequireQuestionMark)
	if fallback {
		logrus.WithField("raw", domain.TruncateRunes(raw, maxLoggedRaw)).
			Warnf("Question output was not a JSON array, extracted %d questions from text", len(questions))
	}

	return &domain.QuestionSet{Questions: questions, Fallback: fallback}, nil
}

// Answer func - Use case: evaluate one candidate answer.
// Turns of the same session run one at a time; the summary is appended only when the turn succeeds.
func (s *InterviewService) Answer(ctx context.Context, request domain.TurnRequest) (*domain.TurnResult, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	request.Job = strings.TrimSpace(request.Job)
	if request.Job == "" {
		request.Job = s.settings.DefaultJob
	}
	request.Job = domain.TruncateRunes(request.Job, s.settings.JobMaxChars)

	log := logrus.WithFields(logrus.Fields{
		"session_id":     request.SessionID,
		"followup_count": request.FollowupCount,
	})

	unlock, err := s.locks.Lock(ctx, request.SessionID)
	if err != nil {
		return nil, fmt.Errorf("waiting for session %s: %w", request.SessionID, err)
	}
	defer unlock()

	recent, err := s.store.Recent(request.SessionID, s.settings.SummaryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to read session memory: %w", err)
	}

	prompt := s.prompts.Turn(TurnPrompt{
		Job:             request.Job,
		Question:        request.Question,
		Answer:          request.Answer,
		FollowupCount:   request.FollowupCount,
		RecentSummaries: recent,
	})

	decision, err := s.gateway.Decide(ctx, prompt, s.settings.TurnTemperature)
	if err != nil {
		log.Errorf("Dialogue decision failed: %v", err)
		return nil, fmt.Errorf("failed to decide next action: %w", err)
	}

	result := s.policy.Resolve(request, *decision)

	if err := s.store.Append(request.SessionID, result.Summary); err != nil {
		return nil, fmt.Errorf("failed to record summary: %w", err)
	}

	log.WithFields(logrus.Fields{
		"model_action": decision.Action,
		"action":       result.Action,
		"overridden":   result.Overridden,
		"finished":     result.Finished(),
	}).Info("Turn resolved")

	return &result, nil
}

// GenerateReport func - Use case: write the post-interview evaluation as free text.
// A successful report releases the session memory. The session is held from the read
// of its notes to their release so an in-flight turn cannot slip in between.
func (s *InterviewService) GenerateReport(ctx context.Context, request domain.ReportRequest) (*domain.Report, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	job := strings.TrimSpace(request.Job)
	if job == "" {
		job = s.settings.DefaultJob
	}
	job = domain.TruncateRunes(job, s.settings.JobMaxChars)
	resume := domain.TruncateRunes(request.Resume, s.settings.ResumeMaxChars)

	var notes []string
	if request.SessionID != "" {
		unlock, err := s.locks.Lock(ctx, request.SessionID)
		if err != nil {
			return nil, fmt.Errorf("waiting for session %s: %w", request.SessionID, err)
		}
		defer unlock()

		all, err := s.store.All(request.SessionID)
		if err != nil {
			logrus.Warnf("Could not read summaries for session %s: %v", request.SessionID, err)
		}
		notes = all
	}

	prompt := s.prompts.Report(job, resume, request.QnA, notes)
	raw, err := s.gateway.Complete(ctx, prompt, s.settings.ReportTemperature)
	if err != nil {
		logrus.Errorf("Report generation failed: %v", err)
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	// the report closes the interview; its memory is no longer needed
	if request.SessionID != "" {
		if err := s.store.Delete(request.SessionID); err != nil {
			logrus.Warnf("Could not release session %s: %v", request.SessionID, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"session_id": request.SessionID,
		"answers":    len(request.QnA),
		"notes":      len(notes),
	}).Info("Report generated")

	return &domain.Report{Text: strings.TrimSpace(raw)}, nil
}
