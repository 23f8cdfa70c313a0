package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/server/middleware"
	"github.com/tomasbusse/avalingo/pkg/server/store"
	gormstore "github.com/tomasbusse/avalingo/pkg/server/store/gorm"
)

// Server carries everything the endpoint handlers need. Endpoints
// register themselves on Router and reach storage through the store
// interfaces, so tests can swap in mocks.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.AvalingoConfig
	Auth   *middleware.TokenAuthenticator

	RolesStore       store.RolesStore
	AssignmentsStore store.AssignmentsStore
	PermissionsStore store.PermissionsStore
	QuestionsStore   store.QuestionsStore
	AttemptsStore    store.AttemptsStore
	HealthStore      store.HealthStore

	srv *http.Server
}

// NewServer constructs a Server with GORM-backed stores and Apache-style
// request logging on stdout.
func NewServer(
	db *gorm.DB,
	cfg *config.AvalingoConfig,
	auth *middleware.TokenAuthenticator,
	host string,
	port string,
) *Server {
	router := mux.NewRouter()
	loggedRouter := handlers.LoggingHandler(os.Stdout, router)

	srv := &http.Server{
		Handler:      loggedRouter,
		Addr:         host + ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,
		Auth:   auth,

		RolesStore:       gormstore.NewRolesStore(db),
		AssignmentsStore: gormstore.NewAssignmentsStore(db),
		PermissionsStore: gormstore.NewPermissionsStore(db),
		QuestionsStore:   gormstore.NewQuestionsStore(db),
		AttemptsStore:    gormstore.NewAttemptsStore(db),
		HealthStore:      gormstore.NewHealthStore(db),

		srv: srv,
	}
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
