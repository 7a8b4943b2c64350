package main

import (
	"flag"
	"log"
	"os"

	"github.com/bpodwinski/go-raymarch/pkg/config"
	"github.com/bpodwinski/go-raymarch/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	tuningPath := flag.String("config", "", "Optional TOML tuning file overriding scene constants")
	flag.Parse()

	tuning := config.Default()
	if *tuningPath != "" {
		var err error
		tuning, err = config.Load(*tuningPath)
		if err != nil {
			log.Printf("Error loading config: %v", err)
			os.Exit(1)
		}
	}

	webServer := server.NewServer(*port, tuning)

	log.Printf("Ray Marcher Preview Server")
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
