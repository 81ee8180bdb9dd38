package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/repository"
)

// New wires repositories, middleware, and handlers into the HTTP handler
// served by main. The pool is injected here and owned by the caller.
func New(cfg *config.Config, pool *pgxpool.Pool, logger zerolog.Logger) http.Handler {
	users := repository.NewUserRepo(pool)
	courses := repository.NewCourseRepo(pool)

	validate := validator.New()
	respond := handler.NewResponder(logger, cfg.EnableGlobalErrorLogging)
	userHandler := handler.NewUserHandler(users, validate, respond, logger)
	courseHandler := handler.NewCourseHandler(courses, users, validate, respond, logger)

	auth := middleware.BasicAuth(users, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recover(cfg.EnableGlobalErrorLogging, logger))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the REST API project!",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.CreateUser)
		r.With(auth).Get("/users", userHandler.GetUser)

		r.Get("/courses", courseHandler.ListCourses)
		r.Get("/courses/{id}", courseHandler.GetCourse)
		r.With(auth).Post("/courses", courseHandler.CreateCourse)
		r.With(auth).Put("/courses/{id}", courseHandler.UpdateCourse)
		r.With(auth).Delete("/courses/{id}", courseHandler.DeleteCourse)
	})

	// Any unmatched route or method gets the same 404 body.
	routeNotFound := func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusNotFound, map[string]string{
			"message": "Route Not Found",
		})
	}
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return cors.AllowAll().Handler(r)
}
