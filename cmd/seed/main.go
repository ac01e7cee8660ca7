// Command seed populates the database with an admin account and sample
// projects for development.
package main

import (
	"flag"
	"log"

	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.StringVar(&opts.AdminEmail, "admin-email", opts.AdminEmail, "admin account email")
	flag.StringVar(&opts.AdminPassword, "admin-password", opts.AdminPassword, "admin account password")
	flag.IntVar(&opts.Projects, "projects", opts.Projects, "number of sample projects to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded admin %q and %d projects", opts.AdminEmail, opts.Projects)
}
