package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// walkthroughAccountNumber is the account the README walkthrough looks up
const walkthroughAccountNumber = "12345"

// SeedSampleData populates the database with the walkthrough account plus a
// handful of generated holders. Idempotent: existing account numbers are
// left alone.
func SeedSampleData(db *gorm.DB, fillerCount int) error {
	if err := seedWalkthroughAccount(db); err != nil {
		return err
	}

	for i := 0; i < fillerCount; i++ {
		if err := seedFillerAccount(db); err != nil {
			return fmt.Errorf("failed to seed filler account: %w", err)
		}
	}

	log.Printf("Seeded sample data (%d filler accounts)", fillerCount)
	return nil
}

func seedWalkthroughAccount(db *gorm.DB) error {
	var existing models.Account
	err := db.Where("account_number = ?", walkthroughAccountNumber).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check walkthrough account: %w", err)
	}

	user := &models.User{
		Email:         "john.doe@bbbank.example",
		FirstName:     "John",
		LastName:      "Doe",
		ProfilePicURL: "assets/images/john-doe.png",
	}
	if err := db.Where("email = ?", user.Email).FirstOrCreate(user).Error; err != nil {
		return fmt.Errorf("failed to create walkthrough user: %w", err)
	}

	account := &models.Account{
		UserID:         user.ID,
		AccountNumber:  walkthroughAccountNumber,
		AccountTitle:   "John Doe",
		CurrentBalance: decimal.NewFromFloat(1000.50),
		AccountStatus:  models.AccountStatusActive,
	}
	if err := db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create walkthrough account: %w", err)
	}

	return nil
}

func seedFillerAccount(db *gorm.DB) error {
	firstName := gofakeit.FirstName()
	lastName := gofakeit.LastName()

	user := &models.User{
		Email:         gofakeit.Email(),
		FirstName:     firstName,
		LastName:      lastName,
		ProfilePicURL: gofakeit.ImageURL(128, 128),
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	status := models.AccountStatusActive
	if gofakeit.Bool() && gofakeit.Bool() {
		status = models.AccountStatusInActive
	}

	account := &models.Account{
		UserID:         user.ID,
		AccountNumber:  fmt.Sprintf("%04d-%04d", gofakeit.Number(1, 9999), gofakeit.Number(1000, 9999)),
		AccountTitle:   firstName + " " + lastName,
		CurrentBalance: decimal.NewFromFloat(gofakeit.Float64Range(10, 25000)).Round(2),
		AccountStatus:  status,
	}

	err := db.Create(account).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Generated number collided, skip this one
		return nil
	}
	return err
}
