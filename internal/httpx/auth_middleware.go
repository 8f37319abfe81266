package httpx

import (
	"net/http"
	"strings"

	"bookstore/internal/platform/crypto"
)

// AuthMiddleware rejects requests without a valid bearer token before the
// wrapped handler runs. The verified principal is stored in the context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				w.Header().Set("WWW-Authenticate", "Bearer")
				Unauthorized(w, r)
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				Unauthorized(w, r)
				return
			}

			ctx := ContextWithPrincipal(r.Context(), Principal{SellerID: claims.Sub, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
