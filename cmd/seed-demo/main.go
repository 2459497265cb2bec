// Demo data seeder: creates a demo account with a handful of resources
// and production history so a fresh install has something to show.
package main

import (
	"fmt"
	"time"

	"github.com/Tanmay1202/macnmanage/internal/config"
	"github.com/Tanmay1202/macnmanage/internal/database"
	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/Tanmay1202/macnmanage/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const (
	demoEmail    = "demo@macnmanage.local"
	demoPassword = "demo1234"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.User{}, &models.Resource{}, &models.ProductionLog{}); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}

	var existing models.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		logrus.Infof("Demo user already exists (%s), nothing to do", demoEmail)
		return
	}

	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{Name: "Demo Operator", Email: demoEmail, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		logrus.Fatalf("Failed to create demo user: %v", err)
	}

	resources := []models.Resource{
		{
			UserID: user.ID, Name: "Steel Rods", Type: models.TypeRawMaterial,
			Quantity: 500, Unit: "kg", PricePerUnit: 2.5,
			Location: "Warehouse A", Status: models.StatusAvailable,
			CustomFields: datatypes.JSONMap{"grade": "S235", "supplier": "NordSteel"},
		},
		{
			UserID: user.ID, Name: "CNC Mill 01", Type: models.TypeMachine,
			Quantity: 1, Unit: "pcs", PricePerUnit: 42000,
			Location: "Hall 2", Status: models.StatusOperational,
		},
		{
			UserID: user.ID, Name: "Cutting Fluid", Type: models.TypeRawMaterial,
			Quantity: 12, Unit: "liters", PricePerUnit: 8.9,
			Location: "Shelf 3", Status: models.StatusLowStock,
		},
		{
			UserID: user.ID, Name: "Torque Wrench", Type: models.TypeTool,
			Quantity: 4, Unit: "pcs", PricePerUnit: 120,
			Status: models.StatusAvailable,
		},
		{
			UserID: user.ID, Name: "Mounting Bracket", Type: models.TypeFinishedGood,
			Quantity: 230, Unit: "pcs", PricePerUnit: 6.75,
			Location: "Warehouse B", Status: models.StatusAvailable,
		},
	}
	for i := range resources {
		if err := db.Create(&resources[i]).Error; err != nil {
			logrus.Fatalf("Failed to create resource %q: %v", resources[i].Name, err)
		}
	}

	mill := resources[1]
	logs := []models.ProductionLog{
		{UserID: user.ID, ResourceID: mill.ID, Action: models.ActionStart, Efficiency: 100},
		{UserID: user.ID, ResourceID: mill.ID, Action: models.ActionOutput, QuantityProduced: 50, Efficiency: 96, Notes: "First batch of brackets"},
		{UserID: user.ID, ResourceID: mill.ID, Action: models.ActionMaintenance, Efficiency: 100, Notes: "Scheduled spindle check"},
	}
	for i := range logs {
		if err := db.Create(&logs[i]).Error; err != nil {
			logrus.Fatalf("Failed to create production log: %v", err)
		}
		// Keep createdAt ordering visible in listings
		time.Sleep(10 * time.Millisecond)
	}

	fmt.Printf("Seeded demo account %s (password: %s) with %d resources and %d log entries\n",
		demoEmail, demoPassword, len(resources), len(logs))
}
