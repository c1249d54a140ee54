package customerRepo

import (
	"context"

	"sparklewash/models"
)

// CustomerRepository is the persistence collaborator for customer records,
// keyed by phone number. Upsert keeps exactly one document per phone.
type CustomerRepository interface {
	Upsert(ctx context.Context, customer models.Customer) error
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	SetFCMToken(ctx context.Context, phone, token string) error
}
