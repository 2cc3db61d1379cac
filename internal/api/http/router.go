package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mentorhub-backend/internal/security"
	"mentorhub-backend/internal/service"
)

// NewRouter wires the API surface. The leaderboard read is public;
// everything under /mentorship and /notifications requires a valid token.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	mentorshipSvc service.MentorshipService,
	leaderboardSvc service.LeaderboardService,
	noteSvc service.NotificationService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	mentorshipHandler := NewMentorshipHandler(mentorshipSvc)
	leaderboardHandler := NewLeaderboardHandler(leaderboardSvc)
	notificationHandler := NewNotificationHandler(noteSvc)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", leaderboardHandler.GetLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/users/{id:[0-9]+}", leaderboardHandler.GetUserContributions).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))
	authed.HandleFunc("/users/me", authHandler.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/mentorship/requests", mentorshipHandler.CreateRequest).Methods(http.MethodPost)
	authed.HandleFunc("/mentorship/requests", mentorshipHandler.ListRequests).Methods(http.MethodGet)
	authed.HandleFunc("/mentorship/requests/{id:[0-9]+}", mentorshipHandler.GetRequest).Methods(http.MethodGet)
	authed.HandleFunc("/mentorship/requests/{id:[0-9]+}/accept", mentorshipHandler.AcceptRequest).Methods(http.MethodPut)
	authed.HandleFunc("/mentorship/requests/{id:[0-9]+}/reject", mentorshipHandler.RejectRequest).Methods(http.MethodPut)
	authed.HandleFunc("/mentorship/requests/{id:[0-9]+}/archive", mentorshipHandler.ArchiveRequest).Methods(http.MethodPut)
	authed.HandleFunc("/mentorship/stats", mentorshipHandler.Stats).Methods(http.MethodGet)
	authed.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPut)

	return router
}
