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

type AccessoryService interface {
	AddToVehicle(ctx context.Context, vehicleID uint, input *types.AccessoryInput) (*types.AccessoryView, error)
	GetByVehicle(ctx context.Context, vehicleID uint) ([]*types.AccessoryView, error)
	Update(ctx context.Context, id uint, input *types.AccessoryInput) (*types.AccessoryView, error)
	Delete(ctx context.Context, id uint) error
}

type accessoryService struct {
	db            *gorm.DB
	log           *logger.Logger
	accessoryRepo repos.AccessoryRepo
	vehicleRepo   repos.VehicleRepo
}

func NewAccessoryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	accessoryRepo repos.AccessoryRepo,
	vehicleRepo repos.VehicleRepo,
) AccessoryService {
	serviceLog := baseLog.With("service", "AccessoryService")
	return &accessoryService{
		db:            db,
		log:           serviceLog,
		accessoryRepo: accessoryRepo,
		vehicleRepo:   vehicleRepo,
	}
}

func (as *accessoryService) AddToVehicle(ctx context.Context, vehicleID uint, input *types.AccessoryInput) (*types.AccessoryView, error) {
	var accessory *types.Accessory
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := as.vehicleRepo.Exists(ctx, tx, vehicleID)
		if err != nil {
			return fmt.Errorf("check vehicle: %w", err)
		}
		if !exists {
			return apierr.VehicleNotFound(vehicleID)
		}

		accessoryType, err := types.ParseAccessoryType(input.Type)
		if err != nil {
			return fmt.Errorf("parse accessory type: %w", err)
		}
		accessory = &types.Accessory{
			Name:        input.Nom,
			Description: input.Description,
			Price:       *input.Prix,
			Type:        accessoryType,
			VehicleID:   &vehicleID,
		}
		if _, err := as.accessoryRepo.Create(ctx, tx, accessory); err != nil {
			return fmt.Errorf("create accessory: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	as.log.Info("Accessory added to vehicle", "accessory_id", accessory.ID, "vehicle_id", vehicleID)
	return types.NewAccessoryView(accessory), nil
}

func (as *accessoryService) GetByVehicle(ctx context.Context, vehicleID uint) ([]*types.AccessoryView, error) {
	exists, err := as.vehicleRepo.Exists(ctx, nil, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if !exists {
		return nil, apierr.VehicleNotFound(vehicleID)
	}

	accessories, err := as.accessoryRepo.FindByVehicle(ctx, nil, vehicleID)
	if err != nil {
		as.log.Error("Find accessories by vehicle failed", "vehicle_id", vehicleID, "error", err)
		return nil, fmt.Errorf("find accessories by vehicle: %w", err)
	}
	views := make([]*types.AccessoryView, 0, len(accessories))
	for _, accessory := range accessories {
		views = append(views, types.NewAccessoryView(accessory))
	}
	return views, nil
}

func (as *accessoryService) Update(ctx context.Context, id uint, input *types.AccessoryInput) (*types.AccessoryView, error) {
	var accessory *types.Accessory
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := as.accessoryRepo.GetByID(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("load accessory: %w", err)
		}
		if existing == nil {
			return apierr.AccessoryNotFound(id)
		}

		accessoryType, err := types.ParseAccessoryType(input.Type)
		if err != nil {
			return fmt.Errorf("parse accessory type: %w", err)
		}
		existing.Name = input.Nom
		existing.Description = input.Description
		existing.Price = *input.Prix
		existing.Type = accessoryType
		if err := as.accessoryRepo.Save(ctx, tx, existing); err != nil {
			return fmt.Errorf("save accessory: %w", err)
		}
		accessory = existing
		return nil
	}); err != nil {
		return nil, err
	}

	as.log.Info("Accessory updated", "accessory_id", id)
	return types.NewAccessoryView(accessory), nil
}

func (as *accessoryService) Delete(ctx context.Context, id uint) error {
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := as.accessoryRepo.Exists(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("check accessory: %w", err)
		}
		if !exists {
			return apierr.AccessoryNotFound(id)
		}
		return as.accessoryRepo.Delete(ctx, tx, id)
	}); err != nil {
		return err
	}
	as.log.Info("Accessory deleted", "accessory_id", id)
	return nil
}
