// createadmin seeds (or resets) the single shared admin credential.
// Run once against the target database:
//
//	go run ./cmd/createadmin -username admin -password secret
package main

import (
	"errors"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"everify_backend/internals/configs"
	database "everify_backend/internals/databases"
	"everify_backend/internals/features/admins/model"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	configs.LoadEnv()
	database.ConnectDB()

	if err := database.DB.AutoMigrate(&model.AdminModel{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), 10)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	var existing model.AdminModel
	err = database.DB.Where("admin_username = ?", *username).First(&existing).Error
	switch {
	case err == nil:
		existing.AdminPassword = string(hashed)
		if err := database.DB.Save(&existing).Error; err != nil {
			log.Fatalf("update failed: %v", err)
		}
		log.Printf("✅ admin %q password updated", *username)
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin := model.AdminModel{
			AdminUsername: *username,
			AdminPassword: string(hashed),
		}
		if err := database.DB.Create(&admin).Error; err != nil {
			log.Fatalf("create failed: %v", err)
		}
		log.Printf("✅ admin %q created (id=%s)", *username, admin.AdminID)
	default:
		log.Fatalf("lookup failed: %v", err)
	}
}
