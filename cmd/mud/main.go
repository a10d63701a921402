package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lawnchairsociety/shatteredrealms/server/internal/config"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/logger"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/server"
	"github.com/lawnchairsociety/shatteredrealms/server/internal/world"
)

func main() {
	host := flag.String("host", "", "Interface to bind (overrides config; default all interfaces)")
	port := flag.Int("port", 0, "Telnet server port (overrides config)")
	roomsFile := flag.String("rooms", "data/rooms.yaml", "Path to rooms YAML file")
	npcsFile := flag.String("npcs", "data/npcs.yaml", "Path to NPCs YAML file")
	serverConfigFile := flag.String("config", "data/server.yaml", "Path to server config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting Shattered Realms MUD Server")

	cfg, err := config.LoadConfig(*serverConfigFile)
	if err != nil {
		logger.Warning("Failed to load server config, using defaults", "error", err)
	}
	if *host != "" {
		cfg.Listen.Host = *host
	}
	if *port != 0 {
		cfg.Listen.Port = *port
	}

	// Rooms load before NPCs so NPC room references resolve
	gameWorld := world.NewWorld()
	if err := gameWorld.Initialize(*roomsFile, *npcsFile); err != nil {
		log.Fatalf("Failed to initialize world: %v", err)
	}

	srv := server.NewServer(cfg, gameWorld)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Shutting down", "signal", sig.String())
		srv.Stop()
		os.Exit(0)
	}()

	var g errgroup.Group
	g.Go(srv.Start)
	if cfg.WebSocket.Enabled {
		wsAddr := fmt.Sprintf("%s:%d", cfg.Listen.Host, cfg.WebSocket.Port)
		g.Go(func() error { return srv.StartWebSocket(wsAddr) })
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
