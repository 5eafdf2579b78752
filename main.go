package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rallyhq/matchpoint/config"
	"github.com/rallyhq/matchpoint/database"
	"github.com/rallyhq/matchpoint/discord"
)

func main() {
	config.Init()

	db := database.Init()
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())

	go discord.Init(ctx)

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	<-stopChan
	log.Println("Shutting down...")

	cancel()

	log.Println("Shutdown complete")
}
