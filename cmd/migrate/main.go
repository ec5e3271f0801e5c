// Aplica las migraciones SQL con goose sobre el driver stdlib de pgx.
//
// Uso: migrate [-dir ./migrations] [up|down|status|version ...]
package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lindakrystal/inventario/pkg/config"
	"github.com/lindakrystal/inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(cfg.App.Env, "info")

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "directorio con las migraciones")
	flag.Parse()

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión")
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}

	args := flag.Args()
	command := "up"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("goose")
	}
	log.Info().Str("command", command).Msg("migración aplicada")
}
