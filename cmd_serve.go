package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Joeltronics/wordlebot/internal/httpserver"
	"github.com/Joeltronics/wordlebot/internal/store"
)

// runServe starts the HTTP API with in-memory game sessions.
func runServe(cmd *cobra.Command, args []string) {
	lists, err := loadLists()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	srv := httpserver.New(lists, store.NewMemoryStore(), engineParams())
	port := flagPort
	if port == "" {
		port = getEnv("PORT", "5175")
	}
	log.Info().Str("port", port).Msg("starting wordlebot server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
