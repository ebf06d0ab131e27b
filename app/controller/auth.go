package controller

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"
)

// authorizeAdmin gates an admin endpoint behind the single shared password
// (ADMIN_PASSWORD env), supplied as the X-Admin-Password header. Writes the
// error response itself and returns false when the request is not allowed.
func authorizeAdmin(w http.ResponseWriter, r *http.Request) bool {
	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		log.Printf("❌ Admin: ADMIN_PASSWORD is not configured, rejecting request")
		http.Error(w, "Admin access is not configured", http.StatusServiceUnavailable)
		return false
	}

	supplied := r.Header.Get("X-Admin-Password")
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(expected)) != 1 {
		http.Error(w, "Contraseña incorrecta", http.StatusUnauthorized)
		return false
	}
	return true
}
