package middleware

import (
	"net/http"
)

// LimitBody limita o tamanho do corpo da requisição; leituras além do limite falham com *http.MaxBytesError
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
