package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"api/database"
	"api/handlers"
	"api/logger"
	"api/repositories"
	"api/routes"
	"api/services"
)

func main() {
	logger.InitLogger()

	db, err := database.ConnectDB()
	if err != nil {
		logrus.Fatalf("database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	policy, err := services.ParseDeletePolicy(os.Getenv("DELETE_POLICY"))
	if err != nil {
		logrus.Fatalf("bad configuration: %v", err)
	}

	svcs := services.New(
		repositories.NewUserRepository(db),
		repositories.NewPostRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewFollowerRepository(db),
		policy,
	)

	handler := routes.SetupRoutes(
		handlers.NewUserHandler(svcs.Users, svcs.Followers),
		handlers.NewPostHandler(svcs.Posts, svcs.Users),
		handlers.NewCommentHandler(svcs.Comments, svcs.Users),
		handlers.NewFollowerHandler(svcs.Followers),
		handlers.NewSystemHandler(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logrus.WithFields(logrus.Fields{
		"port":          port,
		"delete_policy": policy.String(),
	}).Info("server starting")

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
