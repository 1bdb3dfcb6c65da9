package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/PedroM85/task-list/modules/api"
	"github.com/PedroM85/task-list/modules/auth"
	"github.com/PedroM85/task-list/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task List API ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then dependent modules.
	app.Register(auth.NewModule())
	app.Register(task.NewModule())
	app.Register(api.NewModule())

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (bearer token required on all task routes):")
	log.Println("  GET    /api/tasks      - List the caller's tasks")
	log.Println("  POST   /api/tasks      - Create a task")
	log.Println("  PUT    /api/tasks/:id  - Rename a task")
	log.Println("  PATCH  /api/tasks/:id  - Mark a task done / not done")
	log.Println("  DELETE /api/tasks/:id  - Delete a task")
	log.Println("  GET    /health         - Health check (public)")
	log.Println("")
	log.Println("Use cmd/devtoken to mint a development bearer token.")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
