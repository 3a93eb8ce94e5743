package config

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func jsonList(items ...string) datatypes.JSON {
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

// SeedDatabase inserts a default admin, a starter catalog and a sample
// promo. Each block is count-guarded so reseeding is a no-op.
func SeedDatabase(db *gorm.DB) {
	var adminCount int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount)
	if adminCount == 0 {
		password := utils.EnvOrDefault("ADMIN_PASSWORD", "admin123")
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName: "Admin User",
				Email:    "admin@hotel.local",
				Password: string(hash),
				IsAdmin:  true,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{
				Name: "Standard", Category: models.CategoryStandard,
				Description: "Standard room with queen bed",
				BasePrice:   80, MaxOccupancy: 2, Active: true,
				Amenities: jsonList("wifi", "tv"),
			},
			{
				Name: "Superior", Category: models.CategorySuperior,
				Description: "Superior room with city view",
				BasePrice:   120, MaxOccupancy: 3, Active: true,
				Amenities: jsonList("wifi", "tv", "minibar"),
			},
			{
				Name: "Deluxe", Category: models.CategoryDeluxe,
				Description: "Deluxe room with king bed",
				BasePrice:   180, MaxOccupancy: 4, Active: true,
				Amenities: jsonList("wifi", "tv", "minibar", "bathtub"),
			},
			{
				Name: "Suite", Category: models.CategorySuite,
				Description: "Suite with separate living area",
				BasePrice:   300, MaxOccupancy: 5, Active: true,
				Amenities: jsonList("wifi", "tv", "minibar", "bathtub", "balcony"),
			},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("Room types seeded")

			var roomCount int64
			db.Model(&models.Room{}).Count(&roomCount)
			if roomCount == 0 {
				rooms := []models.Room{}
				for i, rt := range roomTypes {
					floor := i + 1
					for n := 1; n <= 4; n++ {
						rooms = append(rooms, models.Room{
							RoomNumber: fmt.Sprintf("%d%02d", floor, n),
							RoomTypeID: rt.ID,
							Floor:      strconv.Itoa(floor),
							Available:  true,
						})
					}
				}
				if err := db.Create(&rooms).Error; err != nil {
					log.Printf("warning: failed to seed rooms: %v", err)
				} else {
					log.Println("Rooms seeded")
				}
			}
		}
	}

	var promoCount int64
	db.Model(&models.PromoOffer{}).Count(&promoCount)
	if promoCount == 0 {
		minAmount := 100.0
		maxDiscount := 50.0
		limit := 100
		now := utils.Today()
		promo := models.PromoOffer{
			Code:             "SUMMER20",
			Name:             "Summer Sale",
			Description:      "20% off summer stays",
			DiscountType:     models.DiscountPercentage,
			DiscountValue:    20,
			MinBookingAmount: &minAmount,
			MaxDiscount:      &maxDiscount,
			ValidFrom:        now,
			ValidUntil:       now.AddDate(0, 3, 0),
			UsageLimit:       &limit,
			Active:           true,
		}
		if err := db.Create(&promo).Error; err != nil {
			log.Printf("warning: failed to seed promo offer: %v", err)
		} else {
			log.Println("Promo offers seeded")
		}
	}
}
