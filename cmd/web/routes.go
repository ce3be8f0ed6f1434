package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(next)))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.identify(shared(app.timeout(next))))))
		}
		// The chat endpoint streams server-sent events, so it runs without
		// the buffering timeout handler.
		streaming = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.identify(shared(next)))))
		}
	)

	mux.Handle("POST /api/program/generate", session(http.HandlerFunc(app.programGeneratePOST)))
	mux.Handle("GET /api/program", session(http.HandlerFunc(app.programGET)))

	mux.Handle("GET /api/exercises", session(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /api/exercises/{id}", session(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("POST /api/coach/chat", streaming(http.HandlerFunc(app.coachChatPOST)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	return mux
}
