package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dealernet/garage-backend/internal/events"
	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/repos"
	"github.com/dealernet/garage-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Garage{},
		&types.OpeningTime{},
		&types.Vehicle{},
		&types.Accessory{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// recordingNotifier captures published events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []events.VehicleCreatedEvent
}

func (rn *recordingNotifier) NotifyVehicleCreated(_ context.Context, event events.VehicleCreatedEvent) {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	rn.events = append(rn.events, event)
}

func (rn *recordingNotifier) published() []events.VehicleCreatedEvent {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	return append([]events.VehicleCreatedEvent(nil), rn.events...)
}

type testEnv struct {
	db            *gorm.DB
	log           *logger.Logger
	garageRepo    repos.GarageRepo
	vehicleRepo   repos.VehicleRepo
	accessoryRepo repos.AccessoryRepo
	notifier      *recordingNotifier

	garages     GarageService
	vehicles    VehicleService
	accessories AccessoryService
}

func newTestEnv(t *testing.T, maxVehicles int) *testEnv {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	env := &testEnv{
		db:            db,
		log:           log,
		garageRepo:    repos.NewGarageRepo(db, log),
		vehicleRepo:   repos.NewVehicleRepo(db, log),
		accessoryRepo: repos.NewAccessoryRepo(db, log),
		notifier:      &recordingNotifier{},
	}
	env.garages = NewGarageService(db, log, env.garageRepo, env.vehicleRepo)
	env.vehicles = NewVehicleService(db, log, env.vehicleRepo, env.garageRepo, env.notifier, maxVehicles)
	env.accessories = NewAccessoryService(db, log, env.accessoryRepo, env.vehicleRepo)
	return env
}

func garageInput(name string) *types.GarageInput {
	return &types.GarageInput{
		Name:      name,
		Address:   "12 rue des Lilas",
		City:      "Lyon",
		Telephone: "0478123456",
		Email:     "contact@garage.example",
		HorairesOuverture: map[string][]types.OpeningSlot{
			"MONDAY": {{StartTime: "08:00", EndTime: "12:00"}, {StartTime: "14:00", EndTime: "18:00"}},
			"FRIDAY": {{StartTime: "09:00", EndTime: "17:00"}},
		},
	}
}

func vehicleInput(brand, model string, year int, fuel string) *types.VehicleInput {
	return &types.VehicleInput{
		Brand:            brand,
		Model:            model,
		AnneeFabrication: &year,
		TypeCarburant:    fuel,
	}
}

func (env *testEnv) mustCreateGarage(t *testing.T, name string) *types.GarageView {
	t.Helper()
	view, err := env.garages.Create(context.Background(), garageInput(name))
	if err != nil {
		t.Fatalf("create garage %q: %v", name, err)
	}
	return view
}

func (env *testEnv) mustAddVehicle(t *testing.T, garageID uint, brand, model string, year int, fuel string) *types.VehicleView {
	t.Helper()
	view, err := env.vehicles.AddToGarage(context.Background(), garageID, vehicleInput(brand, model, year, fuel))
	if err != nil {
		t.Fatalf("add vehicle %s %s: %v", brand, model, err)
	}
	return view
}
