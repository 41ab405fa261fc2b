package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/wodmeet/wodmeet/internal/api/shared"
)

// ActorHeader names the header carrying the acting user's ID. Requests
// without it are anonymous and may only touch unowned resources.
const ActorHeader = "X-User-ID"

// Actor adds the acting user's ID from ActorHeader to the request context.
// A malformed ID is rejected with 400.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(ActorHeader))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+ActorHeader+" header")
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.SetActorID(r.Context(), id)))
	})
}
