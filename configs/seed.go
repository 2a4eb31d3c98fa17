package configs

import (
	"log"
	"strings"

	"github.com/waritsara2543/food-ordering/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}
	// ฝั่ง login lowercase ก่อนเทียบ ฝั่ง seed ต้องเก็บแบบเดียวกัน
	email = strings.ToLower(email)

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{Email: email, Password: string(hash)}
	return db.Create(&admin).Error
}

// Seed เมนูเริ่มต้น (ข้ามถ้ามีเมนูอยู่แล้ว)
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "ชาเย็น", Price: 25, Category: entity.CategoryDrinks, Image: entity.PlaceholderImage, Available: true},
		{Name: "กาแฟเย็น", Price: 30, Category: entity.CategoryDrinks, Image: entity.PlaceholderImage, Available: true},
		{Name: "โกโก้เย็น", Price: 30, Category: entity.CategoryDrinks, Image: entity.PlaceholderImage, Available: true},
		{Name: "แซนด์วิชแฮมชีส", Price: 45, Category: entity.CategoryFood, Image: entity.PlaceholderImage, Available: true},
		{Name: "ขนมปังปิ้งเนยนม", Price: 35, Category: entity.CategoryFood, Image: entity.PlaceholderImage, Available: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("menu seeded")
	return nil
}
