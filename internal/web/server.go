package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ehrlich-b/cube/internal/thistlethwaite"
)

type Server struct {
	router    *mux.Router
	solver    *thistlethwaite.Solver
	tablesDir string
}

// NewServer builds a server with its Thistlethwaite phase tables loaded
// from tablesDir. Missing or corrupt table files are logged and leave the
// affected phases empty rather than failing startup, same as the CLI.
func NewServer(tablesDir string) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		solver:    thistlethwaite.LoadSolver(tablesDir),
		tablesDir: tablesDir,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// API routes
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/exec", s.handleExec).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/selftest", s.handleSelftest).Methods("POST")
	api.HandleFunc("/tables", s.handleTables).Methods("GET")

	// Static files
	s.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./internal/web/static/"))))

	// Serve main page and terminal
	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
	s.router.HandleFunc("/terminal", s.handleTerminal).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
