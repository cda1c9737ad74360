package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/gobank/internal/app"
)

func main() {
	application := app.New()      // Initialize the application
	code := <-application.Start() // Run the session until exit, login failure or a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	application.Stop(ctx) // Stop the application gracefully
	cancel()

	os.Exit(code)
}
