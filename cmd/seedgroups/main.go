// Command seedgroups populates the fixed catalog of public groups. It is
// idempotent: groups that already exist by name are skipped. Run it once
// after the first user has registered.
package main

import (
	"errors"
	"log"

	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/angelina-2003/HushHours/internal/repository"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var groupNames = []string{
	"New York City",
	"Gambling Arena",
	"Selfie Club",
	"Live Pics Only",
	"Tattoo and Beard",
	"Truth or Dare",
	"Tokyo Nights",
	"Art & Design",
	"Food Lovers",
	"Miami Beach",
	"Gaming Zone",
	"Business Network",
	"Music Vibes",
	"Fitness Freaks",
	"Travel Buddies",
	"Book Club",
	"Movie Buffs",
	"Tech Talk",
	"London Calling",
	"Party People",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	creator, err := userRepo.FindOldest()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal("No users found. Register a user before seeding groups.")
		}
		log.Fatal("Failed to look up seed owner:", err)
	}

	created, existing := 0, 0
	for _, name := range groupNames {
		if _, err := groupRepo.FindByName(name); err == nil {
			existing++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Lookup failed for %q: %v", name, err)
			continue
		}

		group := &models.Group{Name: name, CreatedBy: creator.ID}
		if err := groupRepo.CreateWithCreator(group); err != nil {
			log.Printf("Failed to create %q: %v", name, err)
			continue
		}
		log.Printf("Created group %q (id=%d)", name, group.ID)
		created++
	}

	log.Printf("Done: %d created, %d already existed", created, existing)
}
