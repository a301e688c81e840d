package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/arbiter/internal/domain"
	"github.com/vedran77/arbiter/internal/judge"
	"github.com/vedran77/arbiter/internal/repository"
)

var (
	ErrDebateNotFound = errors.New("debate not found")
	ErrNotDebateOwner = errors.New("debate belongs to another user")
)

// Judge scores two argument sides. Satisfied by judge.Client; tests stub it.
type Judge interface {
	Judge(ctx context.Context, sideA, sideB []string) (*judge.Verdict, error)
}

type DebateService struct {
	debateRepo repository.DebateRepository
	judge      Judge
}

func NewDebateService(debateRepo repository.DebateRepository, j Judge) *DebateService {
	return &DebateService{
		debateRepo: debateRepo,
		judge:      j,
	}
}

type SubmitInput struct {
	Topic string   `json:"topic"`
	SideA []string `json:"sideA"`
	SideB []string `json:"sideB"`
}

// Submit judges the two sides and persists the result. The judging call comes
// first: if it fails, no record is created.
func (s *DebateService) Submit(ctx context.Context, ownerID uuid.UUID, input SubmitInput) (*domain.Debate, error) {
	verdict, err := s.judge.Judge(ctx, input.SideA, input.SideB)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Topic)
	if title == "" {
		title = fmt.Sprintf("Debate %s", time.Now().Format("2006-01-02"))
	}

	debate := &domain.Debate{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		SideA:     input.SideA,
		SideB:     input.SideB,
		ScoreA:    verdict.ScoreA,
		ScoreB:    verdict.ScoreB,
		Winner:    verdict.Winner,
		Feedback:  verdict.Feedback,
		CreatedAt: time.Now(),
	}

	if err := s.debateRepo.Create(ctx, debate); err != nil {
		return nil, fmt.Errorf("creating debate: %w", err)
	}

	return debate, nil
}

// History lists the caller's debates, newest first. A user with no debates
// gets an empty list, not an error.
func (s *DebateService) History(ctx context.Context, ownerID uuid.UUID) ([]domain.Debate, error) {
	debates, err := s.debateRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if debates == nil {
		debates = []domain.Debate{}
	}
	return debates, nil
}

// GetByID enforces owner-scoped access: a debate that exists but belongs to
// someone else yields ErrNotDebateOwner, distinct from not-found.
func (s *DebateService) GetByID(ctx context.Context, callerID, debateID uuid.UUID) (*domain.Debate, error) {
	debate, err := s.debateRepo.GetByID(ctx, debateID)
	if err != nil {
		return nil, err
	}
	if debate == nil {
		return nil, ErrDebateNotFound
	}
	if debate.OwnerID != callerID {
		return nil, ErrNotDebateOwner
	}
	return debate, nil
}
