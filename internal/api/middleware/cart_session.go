package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	CartCookieName = "cart_id"
	CartHeader     = "X-Cart-ID"
)

type cartContextKey struct{}

// CartSession binds every request to a cart. The id comes from the X-Cart-ID header or
// the cart_id cookie; a request carrying neither, or an id that is not a UUID, gets a
// fresh id and the cookie is issued.
type CartSession struct {
	ttl    time.Duration
	secure bool
}

func NewCartSession(ttl time.Duration, secure bool) *CartSession {
	return &CartSession{ttl: ttl, secure: secure}
}

func (m *CartSession) Handle(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		cartID, ok := sessionID(r)
		if !ok {
			cartID = uuid.NewString()
			logger.Info("Issued new cart session", slog.String("cartId", cartID))
		}

		// the cookie is rewritten on every request so its lifetime follows the cart TTL
		http.SetCookie(w, &http.Cookie{
			Name:     CartCookieName,
			Value:    cartID,
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(CartHeader, cartID)

		ctx := context.WithValue(r.Context(), cartContextKey{}, cartID)
		ctx = WithLogger(ctx, logger.With(slog.String("cartId", cartID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func sessionID(r *http.Request) (string, bool) {
	candidate := r.Header.Get(CartHeader)

	if candidate == "" {
		if cookie, err := r.Cookie(CartCookieName); err == nil {
			candidate = cookie.Value
		}
	}

	if candidate == "" {
		return "", false
	}

	id, err := uuid.Parse(candidate)
	if err != nil {
		return "", false
	}

	return id.String(), true
}

// CartIDFromContext returns the cart session id set by CartSession.
func CartIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(cartContextKey{}).(string)
	return id, ok && id != ""
}

// WithCartID is used by tests and by callers that resolve the session themselves.
func WithCartID(ctx context.Context, cartID string) context.Context {
	return context.WithValue(ctx, cartContextKey{}, cartID)
}
