package database

import (
	"context"
	"errors"
	"log"

	"carrier-booking-api-server/internal/auth"
	"carrier-booking-api-server/internal/models"
	"carrier-booking-api-server/internal/store"
)

const superAdminEmail = "superadmin@example.com"

// SeedSuperAdmin creates the initial superadmin account if none exists.
func SeedSuperAdmin(users store.UserStore) error {
	_, err := users.GetUserByEmail(context.Background(), superAdminEmail)
	if err == nil {
		log.Println("Super admin already exists. Seeding skipped.")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	log.Println("Super admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword("superadminpassword")
	if err != nil {
		return err
	}

	err = users.CreateUser(context.Background(), &models.User{
		Email:      superAdminEmail,
		Name:       "Super Admin",
		Password:   hashedPassword,
		Role:       "superadmin",
		OperatorID: "system",
		Status:     "active",
	})
	if err != nil {
		return err
	}

	log.Println("Super admin seeded successfully.")
	return nil
}
