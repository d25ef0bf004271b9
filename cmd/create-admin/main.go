package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"events-marketplace/internal/config"
	"events-marketplace/internal/database"
	"events-marketplace/internal/models"
	"events-marketplace/internal/repositories"
)

// Admin accounts cannot be created through the public registration
// endpoint, so this utility seeds one directly.
func main() {
	log := logrus.New()

	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	firstName := flag.String("first-name", "Admin", "admin first name")
	lastName := flag.String("last-name", "User", "admin last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	req := &models.UserCreateRequest{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      models.RoleAdmin,
	}
	if err := req.Validate(); err != nil {
		log.WithError(err).Fatal("invalid admin details")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash password")
	}

	users := repositories.NewUserRepository(db.DB)
	user, err := users.Create(context.Background(), req, string(hash))
	if err != nil {
		log.WithError(err).Fatal("failed to create admin user")
	}

	log.WithFields(logrus.Fields{
		"id":    user.ID,
		"email": user.Email,
	}).Info("admin user created")
}
