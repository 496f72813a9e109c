package boot

import (
	"log"

	"hms/src/common"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Guest{},
		&models.GuestDocument{},
		&models.RoomType{},
		&models.Room{},
		&models.Reservation{},
		&models.ReservationService{},
		&models.Invoice{},
		&models.InvoiceLineItem{},
		&models.Payment{},
		&models.Refund{},
		&models.HousekeepingTask{},
		&models.HousekeepingSupply{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	// nightly front desk snapshot, just after the audit hour
	if _, err := lib.CreateDailyJob(common.RefreshDashboardSnapshot, 0, 5); err != nil {
		log.Printf("Error scheduling snapshot job: %s\n", err.Error())
	}
	sched.Start()
	log.Println("Jobs in queue:", len(sched.Jobs()))
}
