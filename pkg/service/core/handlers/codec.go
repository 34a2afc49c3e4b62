package handlers

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/auth"
	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

// userFromContext returns the session user. The auth middleware lets
// anonymous requests through, so every endpoint that needs a user
// resolves it here.
func userFromContext(ctx context.Context) (*service.User, error) {
	user := auth.GetUser(ctx)
	if user == nil {
		return nil, errs.E(errs.Unauthenticated, fmt.Errorf("no session"))
	}

	return user, nil
}

func uuidParam(ctx context.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParamFromCtx(ctx, name))
	if err != nil {
		return uuid.Nil, errs.E(errs.InvalidRequest, errs.Parameter(name), fmt.Errorf("parsing %s: %w", name, err))
	}

	return id, nil
}
