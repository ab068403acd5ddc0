package server

import (
	"context"
	"net/http"

	"aromaforge/internal/handlers"
	applog "aromaforge/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/logout", handlers.Logout)
	mux.Handle("/app", handlers.RequireAuthentication(http.HandlerFunc(handlers.Workspace)))
	mux.Handle("/app/preferences/update", handlers.RequireAuthentication(http.HandlerFunc(handlers.UpdatePreferences)))
	mux.Handle("/app/api/compose", handlers.RequireAuthentication(http.HandlerFunc(handlers.Compose)))
	mux.Handle("/app/api/blends", handlers.RequireAuthentication(http.HandlerFunc(handlers.Blends)))
	mux.Handle("/app/api/blends/", handlers.RequireAuthentication(http.HandlerFunc(handlers.Blends)))
	mux.Handle("/app/reports/batch", handlers.RequireAuthentication(http.HandlerFunc(handlers.BatchReport)))
	mux.HandleFunc("/", handlers.Home)
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))
	applog.Debug(context.Background(), "http routes registered")
	return mux
}
