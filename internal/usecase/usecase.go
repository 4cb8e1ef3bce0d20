package usecase

import (
	"time"

	"freelance-flow/internal/notify"
	"freelance-flow/internal/repository"
	"freelance-flow/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	ProjectUsecaseInterface
	ClientUsecaseInterface
	ChatUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	pub notify.Publisher,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, repo, pub, timeout)
}
