package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dealernet/garage-backend/internal/apierr"
	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/repos"
	"github.com/dealernet/garage-backend/internal/types"
)

const defaultPageSize = 10

type GarageService interface {
	Create(ctx context.Context, input *types.GarageInput) (*types.GarageView, error)
	GetByID(ctx context.Context, id uint) (*types.GarageView, error)
	List(ctx context.Context, page, size int, sortField, sortDir string) (*types.GaragePage, error)
	Update(ctx context.Context, id uint, input *types.GarageInput) (*types.GarageView, error)
	Delete(ctx context.Context, id uint) error
	FindByVehicleFuelType(ctx context.Context, fuelType types.FuelType) ([]*types.GarageView, error)
	FindByAccessoryName(ctx context.Context, name string) ([]*types.GarageView, error)
	FindByVehicleModel(ctx context.Context, model string) ([]*types.GarageView, error)
	SearchByName(ctx context.Context, name string, page, size int, sortField, sortDir string) (*types.GaragePage, error)
}

type garageService struct {
	db          *gorm.DB
	log         *logger.Logger
	garageRepo  repos.GarageRepo
	vehicleRepo repos.VehicleRepo
}

func NewGarageService(
	db *gorm.DB,
	baseLog *logger.Logger,
	garageRepo repos.GarageRepo,
	vehicleRepo repos.VehicleRepo,
) GarageService {
	serviceLog := baseLog.With("service", "GarageService")
	return &garageService{
		db:          db,
		log:         serviceLog,
		garageRepo:  garageRepo,
		vehicleRepo: vehicleRepo,
	}
}

// Columns the list endpoints accept as sort fields.
var sortableGarageColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"city":  "city",
	"email": "email",
}

func garageOrderClause(sortField, sortDir string) string {
	column, ok := sortableGarageColumns[sortField]
	if !ok {
		column = "name"
	}
	if sortDir != "desc" {
		sortDir = "asc"
	}
	return column + " " + sortDir
}

func normalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	return page, size
}

func (gs *garageService) Create(ctx context.Context, input *types.GarageInput) (*types.GarageView, error) {
	garage := &types.Garage{
		Name:         input.Name,
		Address:      input.Address,
		City:         input.City,
		Telephone:    input.Telephone,
		Email:        input.Email,
		OpeningHours: types.OpeningTimesFromInput(0, input.HorairesOuverture),
	}

	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := gs.garageRepo.Create(ctx, tx, garage)
		return err
	}); err != nil {
		gs.log.Error("Create garage failed", "error", err)
		return nil, fmt.Errorf("create garage: %w", err)
	}

	gs.log.Info("Garage created", "garage_id", garage.ID, "name", garage.Name)
	return types.NewGarageView(garage, 0), nil
}

func (gs *garageService) GetByID(ctx context.Context, id uint) (*types.GarageView, error) {
	garage, err := gs.garageRepo.GetByID(ctx, nil, id)
	if err != nil {
		gs.log.Error("Get garage failed", "garage_id", id, "error", err)
		return nil, fmt.Errorf("get garage: %w", err)
	}
	if garage == nil {
		return nil, apierr.GarageNotFound(id)
	}
	count, err := gs.vehicleRepo.CountByGarage(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	return types.NewGarageView(garage, int(count)), nil
}

func (gs *garageService) List(ctx context.Context, page, size int, sortField, sortDir string) (*types.GaragePage, error) {
	page, size = normalizePaging(page, size)
	order := garageOrderClause(sortField, sortDir)

	garages, total, err := gs.garageRepo.List(ctx, nil, page*size, size, order)
	if err != nil {
		gs.log.Error("List garages failed", "error", err)
		return nil, fmt.Errorf("list garages: %w", err)
	}
	return gs.buildPage(ctx, garages, total, page, size)
}

func (gs *garageService) SearchByName(ctx context.Context, name string, page, size int, sortField, sortDir string) (*types.GaragePage, error) {
	page, size = normalizePaging(page, size)
	order := garageOrderClause(sortField, sortDir)

	garages, total, err := gs.garageRepo.SearchByName(ctx, nil, name, page*size, size, order)
	if err != nil {
		gs.log.Error("Search garages by name failed", "name", name, "error", err)
		return nil, fmt.Errorf("search garages by name: %w", err)
	}
	return gs.buildPage(ctx, garages, total, page, size)
}

func (gs *garageService) buildPage(ctx context.Context, garages []*types.Garage, total int64, page, size int) (*types.GaragePage, error) {
	views, err := gs.buildViews(ctx, garages)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &types.GaragePage{
		Content:       views,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (gs *garageService) buildViews(ctx context.Context, garages []*types.Garage) ([]*types.GarageView, error) {
	views := make([]*types.GarageView, 0, len(garages))
	for _, garage := range garages {
		count, err := gs.vehicleRepo.CountByGarage(ctx, nil, garage.ID)
		if err != nil {
			return nil, fmt.Errorf("count vehicles: %w", err)
		}
		views = append(views, types.NewGarageView(garage, int(count)))
	}
	return views, nil
}

func (gs *garageService) Update(ctx context.Context, id uint, input *types.GarageInput) (*types.GarageView, error) {
	var garage *types.Garage
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := gs.garageRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load garage: %w", err)
		}
		if existing == nil {
			return apierr.GarageNotFound(id)
		}

		existing.Name = input.Name
		existing.Address = input.Address
		existing.City = input.City
		existing.Telephone = input.Telephone
		existing.Email = input.Email
		if err := gs.garageRepo.Save(ctx, tx, existing); err != nil {
			return fmt.Errorf("save garage: %w", err)
		}

		// Opening hours are replaced wholesale, never merged.
		hours := types.OpeningTimesFromInput(id, input.HorairesOuverture)
		if err := gs.garageRepo.ReplaceOpeningHours(ctx, tx, id, hours); err != nil {
			return fmt.Errorf("replace opening hours: %w", err)
		}
		existing.OpeningHours = hours
		garage = existing
		return nil
	}); err != nil {
		return nil, err
	}

	count, err := gs.vehicleRepo.CountByGarage(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	gs.log.Info("Garage updated", "garage_id", id)
	return types.NewGarageView(garage, int(count)), nil
}

func (gs *garageService) Delete(ctx context.Context, id uint) error {
	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := gs.garageRepo.Exists(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("check garage: %w", err)
		}
		if !exists {
			return apierr.GarageNotFound(id)
		}
		if err := gs.garageRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete garage: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	gs.log.Info("Garage deleted", "garage_id", id)
	return nil
}

func (gs *garageService) FindByVehicleFuelType(ctx context.Context, fuelType types.FuelType) ([]*types.GarageView, error) {
	garages, err := gs.garageRepo.FindByVehicleFuelType(ctx, nil, fuelType)
	if err != nil {
		gs.log.Error("Find garages by fuel type failed", "fuel_type", fuelType, "error", err)
		return nil, fmt.Errorf("find garages by fuel type: %w", err)
	}
	return gs.buildViews(ctx, garages)
}

func (gs *garageService) FindByAccessoryName(ctx context.Context, name string) ([]*types.GarageView, error) {
	garages, err := gs.garageRepo.FindByAccessoryName(ctx, nil, name)
	if err != nil {
		gs.log.Error("Find garages by accessory name failed", "accessory_name", name, "error", err)
		return nil, fmt.Errorf("find garages by accessory name: %w", err)
	}
	return gs.buildViews(ctx, garages)
}

func (gs *garageService) FindByVehicleModel(ctx context.Context, model string) ([]*types.GarageView, error) {
	garages, err := gs.garageRepo.FindByVehicleModel(ctx, nil, model)
	if err != nil {
		gs.log.Error("Find garages by vehicle model failed", "model", model, "error", err)
		return nil, fmt.Errorf("find garages by vehicle model: %w", err)
	}
	return gs.buildViews(ctx, garages)
}
