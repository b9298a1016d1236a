package app

import (
	"log"
	"net/http"
	"time"

	"campusdocs/files_backend/internal/handler"
	"campusdocs/files_backend/internal/pkg/apperrors"
	"campusdocs/files_backend/internal/pkg/httputils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	router        *mux.Router
	allowedOrigin string
}

func NewServer(fileHandler *handler.FileHandler, allowedOrigin string) *Server {
	router := mux.NewRouter()

	// A verb nobody registered still gets the JSON envelope.
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.ResponseError(w, apperrors.NewVerification(
			http.StatusMethodNotAllowed, "Request method not allowed."))
	})

	// Routes
	fileHandler.RegisterRoutes(router)
	router.HandleFunc("/ping", handler.Ping).Methods("GET", "OPTIONS")

	router.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	swaggerHandler := httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)

	router.PathPrefix("/swagger/").Handler(swaggerHandler)

	return &Server{router: router, allowedOrigin: allowedOrigin}
}

func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{s.allowedOrigin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)
	return cors(s.router)
}

func (s *Server) Run(port string) {
	srv := &http.Server{
		Handler:      s.Handler(),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(srv.ListenAndServe())
}
