package router

import (
	"net/http"

	_ "smartcity-portal/docs"
	"smartcity-portal/handler"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter registers every portal route. Admin routes require a bearer token
// with the admin role.
func NewRouter(registrationHandler *handler.RegistrationHandler, authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler, auth handler.Authenticator) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	if registrationHandler != nil && authHandler != nil && adminHandler != nil {
		authenticated := handler.AuthMiddleware(auth)
		admin := func(h http.Handler) http.Handler {
			return authenticated(handler.AdminMiddleware(h))
		}

		mux.Handle("POST /auth/signup", handler.ErrorHandlingMiddleware(registrationHandler.Signup))
		mux.Handle("POST /auth/signin", handler.ErrorHandlingMiddleware(authHandler.SignIn))
		mux.Handle("POST /auth/admin/login", handler.ErrorHandlingMiddleware(authHandler.AdminLogin))
		mux.Handle("POST /auth/admin/logout", admin(handler.ErrorHandlingMiddleware(authHandler.AdminLogout)))

		mux.Handle("GET /admin/registrations/pending", admin(handler.ErrorHandlingMiddleware(adminHandler.ListPending)))
		mux.Handle("POST /admin/registrations/{id}/approve", admin(handler.ErrorHandlingMiddleware(adminHandler.Approve)))
		mux.Handle("POST /admin/registrations/{id}/disapprove", admin(handler.ErrorHandlingMiddleware(adminHandler.Disapprove)))
	}

	return handler.MetricsMiddleware(mux)
}
