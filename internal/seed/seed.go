package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/repository"
)

// Run provisions the baseline municipalities and admin accounts.
// Every step is idempotent so restarts never duplicate rows or reset
// passwords an admin has already changed.
func Run(ctx context.Context, repos *repository.Repositories) error {
	municipalityIDs, err := seedMunicipalities(ctx, repos)
	if err != nil {
		return fmt.Errorf("seed municipalities: %w", err)
	}

	if err := seedAdmin(ctx, repos, "admin", "admin123", nil); err != nil {
		return fmt.Errorf("seed super admin: %w", err)
	}

	municipalityAdmins := map[string]string{
		"admin_chn": "Chennai",
		"admin_cbe": "Coimbatore",
		"admin_slm": "Salem",
	}
	for username, city := range municipalityAdmins {
		id, ok := municipalityIDs[city]
		if !ok {
			return fmt.Errorf("seed admin %s: municipality %s missing", username, city)
		}
		if err := seedAdmin(ctx, repos, username, "admin123", &id); err != nil {
			return fmt.Errorf("seed admin %s: %w", username, err)
		}
	}

	return nil
}

func seedMunicipalities(ctx context.Context, repos *repository.Repositories) (map[string]uuid.UUID, error) {
	cities := []domain.Municipality{
		{Name: "Chennai", District: "Chennai"},
		{Name: "Coimbatore", District: "Coimbatore"},
		{Name: "Salem", District: "Salem"},
	}

	ids := make(map[string]uuid.UUID, len(cities))
	for _, city := range cities {
		existing, err := repos.Municipality.GetByName(ctx, city.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			ids[city.Name] = existing.ID
			continue
		}

		city.ID = uuid.New()
		if err := repos.Municipality.Create(ctx, &city); err != nil {
			return nil, err
		}
		ids[city.Name] = city.ID
		log.Printf("Seeded municipality %s", city.Name)
	}

	return ids, nil
}

func seedAdmin(ctx context.Context, repos *repository.Repositories, username, password string, municipalityID *uuid.UUID) error {
	exists, err := repos.Admin.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.Admin{
		ID:             uuid.New(),
		Username:       username,
		PasswordHash:   string(hash),
		MunicipalityID: municipalityID,
	}
	if err := repos.Admin.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", username)
	return nil
}
