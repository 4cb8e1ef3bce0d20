package domain

import (
	"context"
	"fmt"
	"time"

	"freelance-flow/internal/entities"
	"freelance-flow/internal/notify"
	"freelance-flow/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log      *zap.SugaredLogger
	repo     repository.Repository
	pub      notify.Publisher
	validate *validator.Validate
	timeout  time.Duration
	now      func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	pub notify.Publisher,
	timeout time.Duration,
) *Usecase {
	if pub == nil {
		pub = notify.Nop{}
	}
	return &Usecase{
		log:      log,
		repo:     repo,
		pub:      pub,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		timeout:  timeout,
		now:      time.Now,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (u *Usecase) check(v any) error {
	if err := u.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrInvalidArgument, err)
	}
	return nil
}

// requireMember fails with ErrAccessDenied unless userID belongs to projectID.
func (u *Usecase) requireMember(ctx context.Context, projectID, userID int64) error {
	ok, err := u.repo.IsMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return entities.ErrAccessDenied
	}
	return nil
}
