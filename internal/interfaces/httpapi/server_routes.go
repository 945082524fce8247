package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/gamemodes", handler.ListGamemodes)
	mux.HandleFunc("GET /v1/gamemodes/{gamemodeID}/categories", handler.ListCategoriesByGamemode)
	mux.HandleFunc("GET /v1/categories/{categoryID}/leaderboard", handler.GetLeaderboard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedSubmissionRoutes(mux, handler, verifier)
	registerAuthorizedModerationRoutes(mux, handler, verifier)
	registerAuthorizedAdminRoutes(mux, handler, verifier)
}

func registerAuthorizedSubmissionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/records", RequireAuth(verifier, http.HandlerFunc(handler.SubmitRecord)))
	mux.Handle("GET /v1/records/me", RequireAuth(verifier, http.HandlerFunc(handler.ListMySubmissions)))
}

func registerAuthorizedModerationRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/moderation/queue", RequireAuth(verifier, http.HandlerFunc(handler.ListModerationQueue)))
	mux.Handle("POST /v1/moderation/records/{recordID}/review", RequireAuth(verifier, http.HandlerFunc(handler.ReviewRecord)))
	mux.Handle("GET /v1/moderation/records/{recordID}/audit", RequireAuth(verifier, http.HandlerFunc(handler.ListAuditTrail)))
}

func registerAuthorizedAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/admin/gamemodes", RequireAuth(verifier, http.HandlerFunc(handler.CreateGamemode)))
	mux.Handle("PUT /v1/admin/gamemodes/{gamemodeID}/active", RequireAuth(verifier, http.HandlerFunc(handler.SetGamemodeActive)))
	mux.Handle("POST /v1/admin/categories", RequireAuth(verifier, http.HandlerFunc(handler.CreateCategory)))
	mux.Handle("PUT /v1/admin/categories/{categoryID}/active", RequireAuth(verifier, http.HandlerFunc(handler.SetCategoryActive)))
	mux.Handle("GET /v1/admin/profiles", RequireAuth(verifier, http.HandlerFunc(handler.ListProfiles)))
	mux.Handle("PUT /v1/admin/profiles/{profileID}/role", RequireAuth(verifier, http.HandlerFunc(handler.ChangeProfileRole)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/proof-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunProofSweepJob)))
}
