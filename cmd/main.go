// Package main is the entry point for the pack-planner application.
//
// @title           Pack Planner API
// @version         1.0.0
// @description     Computes which packs to ship for an order and manages the set of available pack sizes.
//
//	Plans never ship fewer items than ordered. Among those plans the service
//	prefers the fewest packs, then the fewest items shipped.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/pack-planner
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Operator API key. Required for pack size changes when authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" issued by POST /auth/token.
//
// @tag.name        Packs
// @tag.description Pack plans and pack size registry
//
// @tag.name        Auth
// @tag.description Operator token issuance
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pack-planner/config"
	_ "github.com/guttosm/pack-planner/docs" // swagger docs
	"github.com/guttosm/pack-planner/internal/app"
)

// cliFlags holds command-line overrides. Unset flags keep the file and
// environment values.
type cliFlags struct {
	configFile *string
	port       *string
	logLevel   *string
	packSizes  *string
	rateLimit  *int
	cacheSize  *int
	mongoURI   *string
	auth       *bool
}

func newCLI() (*kingpin.Application, *cliFlags) {
	cli := kingpin.New("pack-planner", "Pack Planner - computes the packs to ship for an order")
	f := &cliFlags{
		configFile: cli.Flag("config", "Path to YAML configuration file").Short('c').String(),
		port:       cli.Flag("port", "HTTP port exposed by the service").String(),
		logLevel:   cli.Flag("log-level", "Log level (debug, info, warn, error)").Enum("debug", "info", "warn", "error"),
		packSizes:  cli.Flag("pack-sizes", "Comma-separated default pack sizes").String(),
		rateLimit:  cli.Flag("rate-limit", "Requests per window per client (0 disables)").Default("-1").Int(),
		cacheSize:  cli.Flag("cache-size", "Plan cache capacity (0 disables)").Default("-1").Int(),
		mongoURI:   cli.Flag("mongo-uri", "MongoDB URI; setting it enables the database").String(),
		auth:       cli.Flag("auth", "Require operator authentication for pack size changes").Bool(),
	}
	return cli, f
}

// apply overlays the flags that were set on cfg.
func (f *cliFlags) apply(cfg *config.Config) error {
	if *f.port != "" {
		cfg.Server.Port = *f.port
	}
	if *f.logLevel != "" {
		cfg.Log.Level = *f.logLevel
	}
	if *f.packSizes != "" {
		sizes := config.ParseIntSlice(*f.packSizes)
		if len(sizes) == 0 {
			return fmt.Errorf("--pack-sizes %q contains no positive sizes", *f.packSizes)
		}
		cfg.Packs.DefaultSizes = sizes
	}
	if *f.rateLimit >= 0 {
		cfg.Server.RateLimit = *f.rateLimit
	}
	if *f.cacheSize >= 0 {
		cfg.Cache.Size = *f.cacheSize
	}
	if *f.mongoURI != "" {
		cfg.Database.URI = *f.mongoURI
		cfg.Database.Enabled = true
	}
	if *f.auth {
		cfg.Auth.Enabled = true
	}
	return nil
}

func loadConfig(args []string) (config.Config, error) {
	cli, flags := newCLI()
	if _, err := cli.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*flags.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := flags.apply(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pack-planner: %v\n", err)
		os.Exit(2)
	}

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout,
		func(ctx context.Context) error { return application.Close(ctx) },
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
