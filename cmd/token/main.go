package main

import (
	"flag"
	"fmt"
	"os"
	"slot_engine/internal/config"
	"slot_engine/internal/config/env"
	"slot_engine/pkg/token"
	"time"

	log "github.com/sirupsen/logrus"
)

// Выпускает access токен для игрока. Логин живёт в другом сервисе, это утилита для разработки
func main() {
	userID := flag.String("user", "", "player id (token subject)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: token -user <id> [-ttl 24h]")
		os.Exit(2)
	}

	if err := config.Load(".env"); err != nil {
		log.WithError(err).Debug(".env not loaded")
	}

	cfg, err := env.NewJWTConfig()
	if err != nil {
		log.WithError(err).Fatal("jwt config")
	}

	tok, err := token.GenerateAccessToken(*userID, cfg.AccessTokenSecretKey(), *ttl)
	if err != nil {
		log.WithError(err).Fatal("generate token")
	}
	fmt.Println(tok)
}
