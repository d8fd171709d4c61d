package impl

import (
	"context"

	domainerrors "urjabandhu/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadOwned finds a record by id and checks it belongs to userID. repoNotFound
// is the repository's sentinel, notFound the error reported to callers.
// Foreign records are not found for reads and forbidden for mutations.
func loadOwned[T any](
	ctx context.Context,
	find func(context.Context, uuid.UUID) (T, error),
	owner func(T) uuid.UUID,
	userID, id uuid.UUID,
	repoNotFound error,
	notFound *domainerrors.BaseError,
	mutation bool,
) (T, error) {
	var zero T

	rec, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, repoNotFound) {
			return zero, errors.Wrap(notFound, id.String())
		}

		return zero, errors.Wrap(err, "failed to load record")
	}

	if owner(rec) != userID {
		if mutation {
			return zero, errors.Wrap(domainerrors.ErrRecordOwnershipViolation, id.String())
		}

		return zero, errors.Wrap(notFound, id.String())
	}

	return rec, nil
}

// mapNotFound translates a repository sentinel into the caller-facing error.
func mapNotFound(err, repoNotFound error, notFound *domainerrors.BaseError, msg string) error {
	if errors.Is(err, repoNotFound) {
		return errors.Wrap(notFound, msg)
	}

	return errors.Wrap(err, msg)
}
