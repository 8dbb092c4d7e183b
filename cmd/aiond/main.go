// cmd/aiond/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	serverhttp "github.com/Serosh-commits/Aion/internal/server/http"
	"github.com/Serosh-commits/Aion/internal/store"
)

var (
	port = flag.Int("port", 8080, "The server port")
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	flag.Parse()

	var gormDB, dbErr = connectDatabase()
	if dbErr != nil {
		log.Fatalf("Failed to connect to database: %v", dbErr)
	}

	st := store.New(gormDB)
	if err := st.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	mux := http.NewServeMux()
	serverhttp.NewServer(st).Routes(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: mux,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down HTTP server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
	}()

	log.Printf("Server listening at %v", listener.Addr())
	if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to serve: %v", err)
	}
}

// connectDatabase prefers a single DATABASE_URL, falling back to discrete
// DB_* variables (with connection-pool tuning) when it is not set.
func connectDatabase() (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return store.ConnectURL(url)
	}
	return store.Connect(store.ConnConfigFromEnv())
}
