package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"clinic-backend/internal/config"
	"clinic-backend/internal/gateway"
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/routes"
	"clinic-backend/internal/workflow"
	"clinic-backend/pkg/utils"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	ctx := context.Background()

	// 2. Connect DB
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// 3. Client Cloud Storage & Firebase
	storageClient, err := storage.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		log.Fatalf("Error creating storage client: %v", err)
	}
	defer storageClient.Close()

	identity, err := gateway.NewIdentity(ctx, cfg.CredentialsFile, cfg.FirebaseAPIKey)
	if err != nil {
		log.Fatalf("Error initializing firebase: %v", err)
	}

	// 4. Rakit gateway -> workflow -> handler (semua lewat injection,
	// tidak ada singleton global)
	dbGateway := gateway.NewDatabase(db)
	objectStorage := gateway.NewObjectStorage(storageClient, cfg.StorageBucket)

	authWorkflow := workflow.NewAuth(dbGateway, identity, cfg.JWTSecret)
	patientWorkflow := workflow.NewPatient(dbGateway, objectStorage)

	authHandler := handlers.NewAuthHandler(authWorkflow)
	patientHandler := handlers.NewPatientHandler(patientWorkflow)

	// 5. Init Router + Routes
	r := gin.Default()
	r.MaxMultipartMemory = handlers.MaxImageSize

	routes.SetupRoutes(r, authHandler, patientHandler, cfg.JWTSecret)

	// Test Ping
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, http.StatusOK, true, "Server OK!", nil)
	})

	// 6. Run Server + graceful shutdown
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("Server berjalan di port " + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Signal received: closing server gracefully.")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
