package main

import (
	"flag"
	"log"

	"tasklist/internal/app"
	"tasklist/internal/config"
)

// @title        tasklist API
// @version      1.0
// @description  Task tracking with category, due-date and status filters.
// @BasePath     /
func main() {
	configPath := flag.String("config", config.DefaultPath, "config file path")
	envPath := flag.String("env", ".env", "dotenv file path")
	flag.Parse()

	if err := config.LoadEnvFile(*envPath); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
