package database

import (
	"log"

	"pouchesitaly/constants"
	"pouchesitaly/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme-admin"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "admin", Email: "admin@pouchesitaly.com", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	menus := []model.Menu{
		{Location: "header", Items: `[{"label":"Shop","labelIt":"Negozio","href":"/shop"},{"label":"About","labelIt":"Chi siamo","href":"/about"}]`},
		{Location: "footer", Items: `[{"label":"Terms","labelIt":"Termini","href":"/terms"},{"label":"Privacy","labelIt":"Privacy","href":"/privacy"}]`},
	}

	for _, menu := range menus {
		if err := db.Where(model.Menu{Location: menu.Location}).FirstOrCreate(&menu).Error; err != nil {
			log.Println("failed to seed menu:", menu.Location, "error:", err)
		}
	}

	metas := []model.SiteMeta{
		{Key: "site_title", Value: "Pouches Italy"},
		{Key: "site_title_it", Value: "Pouches Italy"},
		{Key: "default_currency", Value: constants.DEFAULT_CURRENCY},
	}

	for _, meta := range metas {
		if err := db.Where(model.SiteMeta{Key: meta.Key}).FirstOrCreate(&meta).Error; err != nil {
			log.Println("failed to seed site meta:", meta.Key, "error:", err)
		}
	}
}
