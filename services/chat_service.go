package services

import (
	"context"
	"fmt"
	"strings"

	"github/itish2003/pdfchat/logger"
	"github/itish2003/pdfchat/models"
)

// Stage names the collaborator call that failed.
type Stage string

const (
	StageSearch   Stage = "search"
	StageGenerate Stage = "generate"
)

// CollaboratorError wraps a failure of the search or generation collaborator.
// Its message is the collaborator's own, unchanged, so it can be reported to
// the caller as-is.
type CollaboratorError struct {
	Stage Stage
	Err   error
}

func (e *CollaboratorError) Error() string {
	if e == nil || e.Err == nil {
		return fmt.Sprintf("%s failed", e.stage())
	}
	return e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *CollaboratorError) stage() Stage {
	if e == nil {
		return "collaborator"
	}
	return e.Stage
}

// ChatService answers a single question from the stored documents.
type ChatService interface {
	Ask(ctx context.Context, message string) (*models.ChatResponse, error)
}

// chatServiceImpl holds the two collaborators it needs to do its job.
type chatServiceImpl struct {
	searcher  Searcher
	generator Generator
}

// NewChatService creates a new chat service instance.
func NewChatService(searcher Searcher, generator Generator) ChatService {
	return &chatServiceImpl{
		searcher:  searcher,
		generator: generator,
	}
}

// Ask runs search, prompt assembly and generation in sequence. Collaborator
// failures come back as *CollaboratorError; anything else is a plain error.
func (s *chatServiceImpl) Ask(ctx context.Context, message string) (*models.ChatResponse, error) {
	documents, err := s.searcher.Search(ctx, message)
	if err != nil {
		return nil, &CollaboratorError{Stage: StageSearch, Err: err}
	}

	prompt, err := BuildPrompt(documents, message)
	if err != nil {
		return nil, fmt.Errorf("could not build prompt: %w", err)
	}

	generation, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, &CollaboratorError{Stage: StageGenerate, Err: err}
	}
	if generation == nil {
		return nil, &CollaboratorError{Stage: StageGenerate, Err: ErrEmptyGeneration}
	}

	logger.DebugWithFields("generated answer", logger.Fields{
		"prompt_chars": len(prompt),
		"answer_chars": len(generation.Text),
	})

	return &models.ChatResponse{
		Query:    message,
		Response: strings.TrimSpace(generation.Text),
	}, nil
}
