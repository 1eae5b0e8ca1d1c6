package main

import (
	"log"

	"github.com/Rezuan-Alam-Rean/building-management-server/startup"
	"github.com/Rezuan-Alam-Rean/building-management-server/startup/config"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	server := startup.NewServer(cfg)
	server.Start()
}
