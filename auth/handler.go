package auth

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Authenticator is the credential gate used by the login handler.
type Authenticator interface {
	Authenticate(username, password string) (bool, error)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// LoginHandler checks the posted credentials and sets the session cookie.
func LoginHandler(gate Authenticator, sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeJSONError(w, "Invalid request", http.StatusBadRequest)
			return
		}

		ok, err := gate.Authenticate(input.Username, input.Password)
		if err != nil {
			log.Error().Err(err).Msg("Error checking credentials")
			writeJSONError(w, "Could not check credentials", http.StatusInternalServerError)
			return
		}
		if !ok {
			writeJSONError(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}

		token, err := sessions.Issue(input.Username)
		if err != nil {
			log.Error().Err(err).Msg("Error issuing session token")
			writeJSONError(w, "Could not start session", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteStrictMode,
		})
		log.Info().Str("username", input.Username).Msg("login accepted")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Login successful"})
	}
}

// LogoutHandler clears the session cookie.
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
	}
}
