package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/c2fo/bucketcreds"
	"github.com/c2fo/bucketcreds/config"
	"github.com/c2fo/bucketcreds/scopes"
	"github.com/c2fo/bucketcreds/server"
	"github.com/c2fo/bucketcreds/sts"
)

func main() {
	// get env to start; a missing .env file is fine outside development
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg := config.Load()

	exchanger := sts.NewExchanger().WithOptions(sts.Options{
		Region:   cfg.Region,
		Endpoint: cfg.STSEndpoint,
	})
	issuer := bucketcreds.NewIssuer(scopes.Authorizer{}, exchanger)

	r := gin.Default()
	server.New(issuer).Register(r)

	log.Printf("Starting HTTP server on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
