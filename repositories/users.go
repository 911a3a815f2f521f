package repositories

import (
	"context"
	"strings"

	"hotel-booking/models"
)

type UserRepository struct {
	Repository[models.User]
}

// GetByEmail returns nil, nil for an unknown address.
func (r UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.GetOneOrNone(ctx, Filter{"email": strings.ToLower(strings.TrimSpace(email))})
}
