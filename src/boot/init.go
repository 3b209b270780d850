package boot

import (
	"log"
	"os"
	"time"

	"rms/src/common"
	"rms/src/db"
	"rms/src/lib"
	"rms/src/models"
	"rms/src/types"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	dbi := db.GetDb()

	err := dbi.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.InventoryItem{},
		&models.Table{},
		&models.Reservation{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return dbi
}

// SeedAdminUser provisions the configured admin account and grants it the
// manager capability as an explicit follow-up step.
func SeedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return
	}
	dbi := db.GetDb()
	var admin models.User
	err := dbi.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.User{Email: email}).
			Attrs(&models.User{Name: "Admin", Role: types.ROLE_ADMIN}).
			FirstOrCreate(&admin).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error seeding admin user: %s\n", err.Error())
		return
	}
	if err := common.AssignManager(admin.ID); err != nil {
		log.Printf("Error granting manager capability to admin [%d]: %s\n", admin.ID, err.Error())
	}
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateCronJob(func() {
		alerts, err := common.GetStockAlerts(0)
		if err != nil {
			log.Printf("Stock alert scan failed: %s\n", err.Error())
			return
		}
		for _, alert := range alerts {
			log.Printf("[stock-alert] %s: quantity=%d threshold=%d deficit=%d\n",
				alert.MenuItem, alert.Quantity, alert.Threshold, alert.Deficit)
		}
	}, 15*time.Minute)
	if err != nil {
		log.Printf("Error scheduling stock alert scan: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled stock alert scan: %s\n", *id)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}
