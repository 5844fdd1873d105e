package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopdarven/storefront/internal/errors"
	"github.com/shopdarven/storefront/internal/utils/response"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

const AdminCookieName = "admin_token"

type adminContextKey struct{}

// AdminAuth accepts the shop API's admin token, checked locally with the shared HS256 key.
// The token is then forwarded on every shop API call made for the request.
type AdminAuth struct {
	jwtKey []byte
	secure bool
}

func NewAdminAuth(jwtKey []byte, secure bool) *AdminAuth {
	return &AdminAuth{jwtKey: jwtKey, secure: secure}
}

func (m *AdminAuth) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		tokenString, fromCookie, err := bearerToken(r)
		if err != nil {
			logger.Warn("Rejected admin request", slog.String("reason", err.Message))
			response.Error(w, err)
			return
		}

		claims := &jwt.RegisteredClaims{}

		token, parseErr := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return m.jwtKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if parseErr != nil || !token.Valid || claims.Subject == "" {
			if parseErr != nil {
				logger.Warn("Admin JWT rejected", slog.String("error", parseErr.Error()))
			}

			if fromCookie {
				ClearAdminCookie(w, m.secure)
			}

			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), adminContextKey{}, claims.Subject)
		ctx = shopapi.WithToken(ctx, tokenString)

		requestScopedLogger := logger.With(slog.String("admin", claims.Subject))
		ctx = WithLogger(ctx, requestScopedLogger)

		requestScopedLogger.Debug("Admin authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// bearerToken reads "Authorization: Bearer <token>", falling back to the admin cookie.
func bearerToken(r *http.Request) (string, bool, *errors.AppError) {
	authHeader := r.Header.Get("Authorization")

	if authHeader == "" {
		cookie, err := r.Cookie(AdminCookieName)
		if err != nil || cookie.Value == "" {
			return "", false, errors.UnauthorizedError("Authorization header is required")
		}

		return cookie.Value, true, nil
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false, errors.UnauthorizedError("Invalid authorization format")
	}

	return token, false, nil
}

// AdminFromContext returns the username of the authenticated admin.
func AdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminContextKey{}).(string)
	return username, ok
}

func SetAdminCookie(w http.ResponseWriter, token string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func ClearAdminCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
