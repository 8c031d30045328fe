package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Dictionary *DictionaryHandler
	History    *HistoryHandler
	TTS        *TTSHandler
	Health     *HealthHandler
}

// NewRouter builds the HTTP route table. Provider-backed routes (lookup,
// tts) take extra middleware so the caller can rate-limit them separately.
func NewRouter(h Handlers, lookupMW, ttsMW func(http.Handler) http.Handler) *http.ServeMux {
	passthrough := func(next http.Handler) http.Handler { return next }
	if lookupMW == nil {
		lookupMW = passthrough
	}
	if ttsMW == nil {
		ttsMW = passthrough
	}

	mux := http.NewServeMux()

	mux.Handle("POST /api/dictionary/lookup", lookupMW(http.HandlerFunc(h.Dictionary.Lookup)))
	mux.HandleFunc("GET /api/words", h.Dictionary.ListWords)
	mux.HandleFunc("POST /api/words", h.Dictionary.SaveWord)
	mux.HandleFunc("GET /api/words/{word}", h.Dictionary.GetWord)
	mux.HandleFunc("DELETE /api/words/{word}", h.Dictionary.DeleteWord)

	mux.HandleFunc("GET /api/search-history", h.History.ListRecent)
	mux.HandleFunc("POST /api/search-history", h.History.AddSearch)

	mux.Handle("POST /api/tts", ttsMW(http.HandlerFunc(h.TTS.Speak)))

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	return mux
}
