package security

import (
	"context"
	"errors"

	"showroom-backend/internal/repository"
)

// RequestGuard answers object-level access questions that role checks
// alone cannot, such as whether a customer may read a given request.
type RequestGuard struct {
	requests repository.RequestRepository
}

func NewRequestGuard(requests repository.RequestRepository) *RequestGuard {
	return &RequestGuard{requests: requests}
}

// IsOwnerOfRequest reports whether the request was created by the
// customer with the given username. Unknown requests answer false.
func (g *RequestGuard) IsOwnerOfRequest(ctx context.Context, username string, requestID int64) (bool, error) {
	req, err := g.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return req.CustomerUsername == username, nil
}
