package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/championships", handler.ListChampionships)
	mux.HandleFunc("GET /v1/championships/{championshipID}", handler.GetChampionship)
	mux.HandleFunc("GET /v1/championships/{championshipID}/matches", handler.ListMatchesByChampionship)
	mux.HandleFunc("GET /v1/championships/{championshipID}/ranking", handler.GetChampionshipRanking)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPrediction)))
	mux.Handle("GET /v1/predictions", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPredictions)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/admin/championships", RequireAdmin(verifier, http.HandlerFunc(handler.CreateChampionship)))
	mux.Handle("PUT /v1/admin/championships/{championshipID}", RequireAdmin(verifier, http.HandlerFunc(handler.UpdateChampionship)))
	mux.Handle("POST /v1/admin/championships/{championshipID}/recompute-points", RequireAdmin(verifier, http.HandlerFunc(handler.RecomputeChampionshipPoints)))
	mux.Handle("POST /v1/admin/matches", RequireAdmin(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("POST /v1/admin/sync", RequireAdmin(verifier, http.HandlerFunc(handler.RunAdminSync)))
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, cronSyncToken string) {
	mux.Handle("GET /v1/internal/sync", RequireCronSecret(cronSyncToken, http.HandlerFunc(handler.RunCronSync)))
}
