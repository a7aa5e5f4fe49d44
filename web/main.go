package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes-dir", "scenes", "Directory containing JSON scene files")
	flag.Parse()

	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Try http://localhost:%d/render?scene=default&width=320&height=240", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
