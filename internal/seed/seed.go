// Package seed provides helpers to create development and demo data.
// Not intended for production use beyond the initial admin account.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"showcase/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls what the seeder creates.
type Options struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	Projects      int
}

// DefaultOptions returns sensible development defaults.
func DefaultOptions() Options {
	return Options{
		AdminName:     "Admin",
		AdminEmail:    "admin@example.com",
		AdminPassword: "password123",
		Projects:      6,
	}
}

// Run creates the admin user (if absent) and a batch of sample projects.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if err := ensureAdmin(db, opts); err != nil {
		return err
	}

	for i := 0; i < opts.Projects; i++ {
		project := BuildProject(i + 1)
		if err := db.Create(project).Error; err != nil {
			return fmt.Errorf("seeding project %d: %w", i+1, err)
		}
	}
	return nil
}

func ensureAdmin(db *gorm.DB, opts Options) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", opts.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Name:     opts.AdminName,
		Email:    opts.AdminEmail,
		Password: string(hash),
	}).Error
}

// BuildProject constructs a realistic sample project without persisting it.
func BuildProject(order int) *models.Project {
	techPool := []string{
		"Go", "TypeScript", "React", "PostgreSQL", "Redis", "Docker",
		"Python", "Kubernetes", "GraphQL", "Terraform",
	}
	rand.Shuffle(len(techPool), func(i, j int) {
		techPool[i], techPool[j] = techPool[j], techPool[i]
	})
	n := 2 + rand.Intn(3)

	// realistic created_at spread over the last ~18 months
	createdAt := time.Now().AddDate(0, 0, -rand.Intn(540))

	return &models.Project{
		Title:        gofakeit.AppName(),
		Description:  gofakeit.Paragraph(1, 3, 8, " "),
		Technologies: append([]string(nil), techPool[:n]...),
		ImageURL:     fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", uuid.New().String()[:8]),
		DemoURL:      gofakeit.URL(),
		RepoURL:      fmt.Sprintf("https://github.com/%s/%s", gofakeit.Username(), gofakeit.Word()),
		Featured:     order <= 3,
		Order:        order,
		CreatedAt:    createdAt,
	}
}
