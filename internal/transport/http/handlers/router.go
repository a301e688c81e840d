package handlers

import "net/http"

// NewRouter wires all routes. The auth middleware guards every debate route;
// registration and login are public.
func NewRouter(authHandler *AuthHandler, debateHandler *DebateHandler, auth func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	mux.Handle("POST /debates", auth(http.HandlerFunc(debateHandler.Submit)))
	mux.Handle("GET /debates/history", auth(http.HandlerFunc(debateHandler.History)))
	mux.Handle("GET /debates/{id}", auth(http.HandlerFunc(debateHandler.Get)))

	return mux
}
