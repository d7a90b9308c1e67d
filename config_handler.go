package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"optiedge/config"

	"github.com/rs/zerolog/log"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// GetPrefsHandler returns the current UI prefs.
func GetPrefsHandler(prefs *config.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prefs.Get())
	}
}

// SavePrefsHandler stores the posted prefs. A failed write is logged and
// reported, but the in-memory prefs still apply for this run.
func SavePrefsHandler(prefs *config.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var newPrefs config.Prefs
		if err := json.NewDecoder(r.Body).Decode(&newPrefs); err != nil {
			writeJSONError(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := validateDensity(newPrefs.Density); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := prefs.Save(newPrefs); err != nil {
			log.Warn().Err(err).Msg("Error saving prefs")
			writeJSONError(w, "Preferences applied but could not be saved", http.StatusOK)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Preferences saved"})
	}
}

func validateDensity(density string) error {
	switch density {
	case "", config.DensityComfortable, config.DensityCompact:
		return nil
	}
	return fmt.Errorf("unknown density: %s", density)
}
