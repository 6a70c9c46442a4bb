package routes

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"api/handlers"
	"api/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	followerHandler *handlers.FollowerHandler,
	systemHandler *handlers.SystemHandler,
) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", systemHandler.Home).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// User routes
	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users", userHandler.Create).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods("PUT")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods("DELETE")
	api.HandleFunc("/users/{id:[0-9]+}/followers", userHandler.GetFollowers).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/following", userHandler.GetFollowing).Methods("GET")

	// Post routes
	api.HandleFunc("/posts", postHandler.List).Methods("GET")
	api.HandleFunc("/posts", postHandler.Create).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}", postHandler.Get).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", postHandler.Update).Methods("PUT")
	api.HandleFunc("/posts/{id:[0-9]+}", postHandler.Delete).Methods("DELETE")
	api.HandleFunc("/posts/{id:[0-9]+}/comments", postHandler.GetComments).Methods("GET")

	// Comment routes
	api.HandleFunc("/comments", commentHandler.List).Methods("GET")
	api.HandleFunc("/comments", commentHandler.Create).Methods("POST")
	api.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Get).Methods("GET")
	api.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Update).Methods("PUT")
	api.HandleFunc("/comments/{id:[0-9]+}", commentHandler.Delete).Methods("DELETE")

	// Follower routes
	api.HandleFunc("/followers", followerHandler.List).Methods("GET")
	api.HandleFunc("/followers", followerHandler.Create).Methods("POST")
	api.HandleFunc("/followers/{id:[0-9]+}", followerHandler.Get).Methods("GET")
	api.HandleFunc("/followers/{id:[0-9]+}", followerHandler.Update).Methods("PUT")
	api.HandleFunc("/followers/{id:[0-9]+}", followerHandler.Delete).Methods("DELETE")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return monitoring.InstrumentHandler(cors(router))
}
