package domain

// Transcript - result of a speech-to-text job
type Transcript struct {
	Text  string
	JobID string
}

// TranscriptionStatus is the remote job state reported while polling
type TranscriptionStatus string

const (
	// TranscriptionQueued - waiting to be processed
	TranscriptionQueued TranscriptionStatus = "queued"
	// TranscriptionProcessing - in progress
	TranscriptionProcessing TranscriptionStatus = "processing"
	// TranscriptionCompleted - text is available
	TranscriptionCompleted TranscriptionStatus = "completed"
	// TranscriptionError - the job failed
	TranscriptionError TranscriptionStatus = "error"
)

// SynthesisRequest - text to speak with the configured voice
type SynthesisRequest struct {
	Text string
}
