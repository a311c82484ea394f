package service

import (
	"errors"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
)

// Sentinel errors surfaced to callers; the HTTP layer maps these to
// status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTitleRequired      = errors.New("title is required")
	ErrDateRequired       = errors.New("date is required")
	ErrNameRequired       = errors.New("name is required")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrPredefinedCategory = errors.New("cannot delete a predefined category")
	ErrCategoryInUse      = errors.New("cannot delete a category that is in use")
)

// resolveOwner applies the storage mode: authenticated deployments
// reject requests without an owner, local deployments fall back to the
// implicit owner.
func resolveOwner(ownerID string, requireAuth bool) (string, error) {
	if ownerID != "" {
		return ownerID, nil
	}
	if requireAuth {
		return "", ErrUnauthenticated
	}
	return model.DefaultOwner, nil
}
