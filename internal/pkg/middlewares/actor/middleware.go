package actor

import (
	"context"
	"net/http"
	"strconv"

	"backoffice/internal/entities"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"

	defaultRole = "operator"
)

type contextKey struct{}

// Middleware extracts the acting back-office user from request headers and
// puts it into the context. Requests without an actor id are rejected, audit
// entries are meaningless without one.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idStr := r.Header.Get(headerActorID)
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil || id <= 0 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role := r.Header.Get(headerActorRole)
			if role == "" {
				role = defaultRole
			}

			actorEntity := entities.Actor{
				UserID: id,
				Role:   role,
			}

			ctx := context.WithValue(r.Context(), contextKey{}, actorEntity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the actor stored by Middleware. Callers outside an
// HTTP request get the system actor.
func FromContext(ctx context.Context) entities.Actor {
	actorEntity, ok := ctx.Value(contextKey{}).(entities.Actor)
	if !ok {
		return entities.SystemActor
	}
	return actorEntity
}
