// Package agent orchestrates the screening workflow: resume ingestion, the
// batch screening pass, reply generation and draft persistence.
package agent

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-screener/internal/drafts"
	"github.com/fmuoria/resume-screener/internal/ingestion"
	"github.com/fmuoria/resume-screener/internal/models"
	"github.com/fmuoria/resume-screener/internal/reply"
	"github.com/fmuoria/resume-screener/internal/screening"
)

// ErrCandidateNotFound is returned when an operation names a candidate that
// is not in the session list.
var ErrCandidateNotFound = errors.New("candidate not found")

// ProgressCallback is called to report progress during batch operations.
type ProgressCallback func(current, total int, message string)

// ScreeningAgent owns the session's candidate list. Candidates are mutated
// in place by screening passes; all access goes through the agent's lock so
// the CLI and the HTTP surface can share one agent.
type ScreeningAgent struct {
	FileHandler *ingestion.FileHandler

	store      *drafts.Store
	log        *zap.Logger
	mu         sync.RWMutex
	candidates []*models.Candidate
	progressCb ProgressCallback
}

// New creates a screening agent.
func New(uploadsDir string, store *drafts.Store, log *zap.Logger) *ScreeningAgent {
	return &ScreeningAgent{
		FileHandler: ingestion.NewFileHandler(uploadsDir),
		store:       store,
		log:         log,
	}
}

// SetProgressCallback sets the progress callback function.
func (a *ScreeningAgent) SetProgressCallback(cb ProgressCallback) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.progressCb = cb
}

func (a *ScreeningAgent) reportProgress(current, total int, message string) {
	a.mu.RLock()
	cb := a.progressCb
	a.mu.RUnlock()

	if cb != nil {
		cb(current, total, message)
	}
}

// AddResumeFiles ingests the given resume files as unscreened candidates and
// returns how many were added. Unsupported files are skipped with a warning;
// a file whose text extraction fails is retained with empty text so the
// batch never aborts on one bad resume. Paths already in the session are
// ignored.
func (a *ScreeningAgent) AddResumeFiles(paths []string) int {
	added := 0
	for _, path := range paths {
		if !ingestion.IsSupported(path) {
			a.log.Warn("skipping unsupported file", zap.String("path", path))
			continue
		}
		if a.hasPath(path) {
			continue
		}

		text, err := ingestion.ExtractText(path)
		if err != nil {
			a.log.Warn("failed to extract text, keeping candidate with empty text",
				zap.String("path", path), zap.Error(err))
			text = ""
		}

		candidate := models.NewCandidate(filepath.Base(path), path, text)

		a.mu.Lock()
		a.candidates = append(a.candidates, candidate)
		a.mu.Unlock()
		added++
	}
	return added
}

// IngestUploads adds every supported resume in the uploads directory.
func (a *ScreeningAgent) IngestUploads() (int, error) {
	paths, err := a.FileHandler.ListResumeFiles()
	if err != nil {
		return 0, fmt.Errorf("failed to list resume files: %w", err)
	}
	return a.AddResumeFiles(paths), nil
}

func (a *ScreeningAgent) hasPath(path string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, c := range a.candidates {
		if c.Path == path {
			return true
		}
	}
	return false
}

// ScreenAll runs the screening pass over every candidate. The skill lists
// must already be trimmed and lowercased (models.ParseSkillList). Screening
// is idempotent: re-running with the same lists yields identical results.
func (a *ScreeningAgent) ScreenAll(required, critical []string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	allSkills := make([]string, 0, len(required)+len(critical))
	allSkills = append(allSkills, required...)
	allSkills = append(allSkills, critical...)

	total := len(a.candidates)
	for i, c := range a.candidates {
		a.log.Debug("screening candidate", zap.String("file", c.Name))

		found := screening.FindSkillMatches(c.Text, allSkills)
		classification, pct, reason := screening.Classify(required, found, critical)

		c.FoundSkills = found
		c.Classification = classification
		c.MatchPct = pct
		c.Reason = reason

		if cb := a.progressCb; cb != nil {
			cb(i+1, total, fmt.Sprintf("Screened %s (%d/%d)", c.Name, i+1, total))
		}
	}

	a.log.Info("screening complete", zap.Int("candidates", total))
	return total
}

// GenerateReply composes the reply message for one candidate, extracting a
// display name from the resume text when possible.
func (a *ScreeningAgent) GenerateReply(id uuid.UUID) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	c := a.find(id)
	if c == nil {
		return "", ErrCandidateNotFound
	}
	name := reply.ExtractName(c.Text)
	return reply.Generate(name, c.Classification, c.FoundSkills, c.MatchPct), nil
}

// SaveDraft persists a reply draft for one candidate and returns the stored
// record.
func (a *ScreeningAgent) SaveDraft(id uuid.UUID, replyText string) (models.Draft, error) {
	if replyText == "" {
		return models.Draft{}, errors.New("reply text is empty")
	}

	a.mu.RLock()
	c := a.find(id)
	a.mu.RUnlock()
	if c == nil {
		return models.Draft{}, ErrCandidateNotFound
	}

	draft := models.Draft{
		CandidateFile:  c.Name,
		Classification: c.Classification,
		MatchPct:       c.MatchPct,
		Reply:          replyText,
		SavedAt:        time.Now().Format(time.RFC3339),
	}
	if err := a.store.Append(draft); err != nil {
		return models.Draft{}, fmt.Errorf("failed to save draft: %w", err)
	}
	a.log.Info("saved reply draft", zap.String("file", c.Name))
	return draft, nil
}

// Drafts returns all saved reply drafts.
func (a *ScreeningAgent) Drafts() []models.Draft {
	return a.store.Load()
}

// Remove deletes one candidate from the session.
func (a *ScreeningAgent) Remove(id uuid.UUID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, c := range a.candidates {
		if c.ID == id {
			a.candidates = append(a.candidates[:i], a.candidates[i+1:]...)
			a.log.Info("removed candidate", zap.String("file", c.Name))
			return nil
		}
	}
	return ErrCandidateNotFound
}

// Clear removes every candidate from the session.
func (a *ScreeningAgent) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.candidates = nil
}

// Candidates returns a snapshot of the session's candidates.
func (a *ScreeningAgent) Candidates() []models.Candidate {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.Candidate, 0, len(a.candidates))
	for _, c := range a.candidates {
		out = append(out, *c)
	}
	return out
}

// Results returns the per-candidate screening records for display and
// export.
func (a *ScreeningAgent) Results() []models.ScreeningResult {
	a.mu.RLock()
	defer a.mu.RUnlock()

	results := make([]models.ScreeningResult, 0, len(a.candidates))
	for _, c := range a.candidates {
		results = append(results, c.Result())
	}
	return results
}

// find must be called with the lock held.
func (a *ScreeningAgent) find(id uuid.UUID) *models.Candidate {
	for _, c := range a.candidates {
		if c.ID == id {
			return c
		}
	}
	return nil
}
