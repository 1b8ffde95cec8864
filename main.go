package main

import (
	"fmt"
	"log"

	"canteen/configs"
	"canteen/pkg/otp"
	"canteen/routes"
	"canteen/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Redis-backed reset codes. Optional: without redis the password-reset
	// endpoints report the feature as unavailable, everything else works.
	otpStore, err := otp.NewStore(cfg.RedisURL, cfg.OTPTTL)
	if err != nil {
		log.Printf("redis unavailable, password reset disabled: %v", err)
		otpStore = nil
	}

	// Live notification push
	hub := ws.NewNotifyHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, otpStore, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
