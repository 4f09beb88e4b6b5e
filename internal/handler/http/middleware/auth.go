package middleware

import (
	"net/http"

	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/handler/http/response"
	appjwt "github.com/attendly/hr-console-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RawSessionToken returns the token string the Verifier resolved: the
// Authorization header first, then the jwt cookie. Revocation must look at
// the same channels or a logged-out token could sneak back in as a cookie.
func RawSessionToken(r *http.Request) string {
	if token := jwtauth.TokenFromHeader(r); token != "" {
		return token
	}
	return jwtauth.TokenFromCookie(r)
}

// SessionRequired rejects requests without a valid, unrevoked session token
// carrying the hr_id claim.
func SessionRequired(jwtService appjwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "session" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			hrID, ok := claims["hr_id"].(string)
			if !ok || hrID == "" {
				response.HandleError(w, auth.ErrNoSession)
				return
			}

			if raw := RawSessionToken(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
