package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"optiedge/database"
	"optiedge/inventory"
	"optiedge/loader"
	"optiedge/shell"
)

const dbPath = "./optiedge_inventory.db"

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(zerolog.WarnLevel).With().Timestamp().Logger()

	dbConn, err := database.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("db open error")
	}
	defer dbConn.Close()

	if err := loader.InitDatabase(dbConn); err != nil {
		log.Fatal().Err(err).Msg("Database initialization failed")
	}

	sh := shell.New(inventory.NewService(dbConn), os.Stdout)
	if err := sh.Run(); err != nil {
		log.Error().Err(err).Msg("shell stopped")
		os.Exit(1)
	}
}
