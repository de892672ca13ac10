package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/schoolconnect/school-connect/internal/ai"
	"github.com/schoolconnect/school-connect/internal/chat"
	"github.com/schoolconnect/school-connect/internal/config"
	"github.com/schoolconnect/school-connect/internal/httpapi"
	"github.com/schoolconnect/school-connect/internal/httpapi/handlers"
	"github.com/schoolconnect/school-connect/internal/store/mongostore"
	"github.com/schoolconnect/school-connect/internal/store/rabbitmq"
	"github.com/schoolconnect/school-connect/internal/store/redisstore"
	"github.com/schoolconnect/school-connect/internal/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	client, store, err := mongostore.Connect(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	var cache chat.ActivityCache
	if err := rds.Ping(ctx); err != nil {
		log.Printf("redis unavailable, room activity counts uncached: %v", err)
	} else {
		cache = rds
		defer rds.Close()
	}

	var rabbit *rabbitmq.Publisher
	if pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue); err != nil {
		log.Printf("rabbitmq unavailable, async assistant disabled: %v", err)
	} else {
		rabbit = pub
		defer rabbit.Close()
	}

	registry := chat.NewRegistry()
	chatSvc := chat.NewService(store, store, store, registry, cache)
	assistant := ai.NewAssistant(ai.NewHuggingFaceProvider(cfg.AIBaseURL, cfg.AIModel, cfg.AIToken))

	h := handlers.NewHandler(store, cfg, chatSvc, assistant, rabbit)
	router := httpapi.NewRouter(h, ws.NewHandler(registry))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	registry.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
