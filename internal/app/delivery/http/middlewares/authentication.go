package middlewares

import (
	"context"
	"net/http"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/exceptions"
	"phonebook-service/internal/pkg/utils"
	"strings"
)

// Authenticate guards a route behind a bearer session token. The header must
// be exactly "Bearer <token>"; any other shape is rejected before the token
// is even parsed. On success the loaded user rides along on the request
// context under constvars.ContextUserKey.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != constvars.AuthSchemeBearer || parts[1] == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := parts[1]

		userID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		user, err := m.UserRepository.FindByID(r.Context(), userID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		// A signed, unexpired token stays valid after logout unless single
		// session enforcement is switched on, which pins the presented token
		// to the one stored at login.
		if m.InternalConfig.JWT.EnforceSingleSession && user.Token != tokenString {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenNotCurrentSession(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
