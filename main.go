package main

import (
	"log"

	"github.com/tranngoc769/QTKit/internal/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	qtkitApp, err := app.NewQTKitApp()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	qtkitApp.ShowAndRun()
}
