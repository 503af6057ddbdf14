package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/rneedle3/play-now/middleware"
)

type PlayNowHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewPlayNowHttpServer(router *Router, muxRouter *mux.Router) *PlayNowHttpServer {
	return &PlayNowHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

func (s *PlayNowHttpServer) Start() {
	s.router.RegisterRoutes()

	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type"}),
	)(middleware.MonitorMiddleware(middleware.RateLimitMiddleware(s.muxRouter)))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: handler,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on :8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
