package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
)

type Delete struct {
	repo domain.Repository
}

func NewDelete(repo domain.Repository) *Delete {
	return &Delete{repo: repo}
}

// Execute removes an appointment. false means the id was unknown.
func (uc *Delete) Execute(ctx context.Context, id string) (bool, error) {
	return uc.repo.DeleteAppointment(ctx, id)
}
