package middleware

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuth guards the admin endpoints with a shared key. keyHash is a
// bcrypt hash of the key; an empty hash disables the check, matching the
// open admin panel of development setups. The key arrives as
// "Authorization: Bearer <key>" or, for plain browser links like the CSV
// export, as an "adminKey" query parameter.
func AdminAuth(keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			key := extractBearerToken(r.Header.Get("Authorization"))
			if key == "" {
				key = r.URL.Query().Get("adminKey")
			}

			if key == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"Invalid admin key"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
