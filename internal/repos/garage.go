package repos

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/types"
)

type GarageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, garage *types.Garage) (*types.Garage, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Garage, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, garage *types.Garage) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	List(ctx context.Context, tx *gorm.DB, offset, limit int, order string) ([]*types.Garage, int64, error)
	SearchByName(ctx context.Context, tx *gorm.DB, name string, offset, limit int, order string) ([]*types.Garage, int64, error)
	FindByVehicleFuelType(ctx context.Context, tx *gorm.DB, fuelType types.FuelType) ([]*types.Garage, error)
	FindByAccessoryName(ctx context.Context, tx *gorm.DB, name string) ([]*types.Garage, error)
	FindByVehicleModel(ctx context.Context, tx *gorm.DB, model string) ([]*types.Garage, error)
	ReplaceOpeningHours(ctx context.Context, tx *gorm.DB, garageID uint, hours []types.OpeningTime) error
}

type garageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGarageRepo(db *gorm.DB, baseLog *logger.Logger) GarageRepo {
	repoLog := baseLog.With("repo", "GarageRepo")
	return &garageRepo{db: db, log: repoLog}
}

func (gr *garageRepo) session(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return gr.db
}

func (gr *garageRepo) Create(ctx context.Context, tx *gorm.DB, garage *types.Garage) (*types.Garage, error) {
	if err := gr.session(tx).WithContext(ctx).Create(garage).Error; err != nil {
		return nil, err
	}
	return garage, nil
}

// GetByID returns (nil, nil) when no garage has the id.
func (gr *garageRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Garage, error) {
	var garage types.Garage
	err := gr.session(tx).WithContext(ctx).
		Preload("OpeningHours").
		First(&garage, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &garage, nil
}

func (gr *garageRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := gr.session(tx).WithContext(ctx).
		Model(&types.Garage{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (gr *garageRepo) Save(ctx context.Context, tx *gorm.DB, garage *types.Garage) error {
	return gr.session(tx).WithContext(ctx).
		Omit("OpeningHours", "Vehicles").
		Save(garage).Error
}

// Delete removes the garage and all of its children. Children are
// removed explicitly inside the caller's transaction so the cascade
// does not depend on driver-level foreign key enforcement.
func (gr *garageRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	session := gr.session(tx).WithContext(ctx)
	if err := session.
		Where("vehicle_id IN (?)", session.Session(&gorm.Session{NewDB: true}).
			Model(&types.Vehicle{}).Select("id").Where("garage_id = ?", id)).
		Delete(&types.Accessory{}).Error; err != nil {
		return err
	}
	if err := session.Where("garage_id = ?", id).Delete(&types.Vehicle{}).Error; err != nil {
		return err
	}
	if err := session.Where("garage_id = ?", id).Delete(&types.OpeningTime{}).Error; err != nil {
		return err
	}
	return session.Delete(&types.Garage{}, id).Error
}

func (gr *garageRepo) List(ctx context.Context, tx *gorm.DB, offset, limit int, order string) ([]*types.Garage, int64, error) {
	q := gr.session(tx).WithContext(ctx).Model(&types.Garage{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var garages []*types.Garage
	if err := q.Preload("OpeningHours").
		Order(order).Offset(offset).Limit(limit).
		Find(&garages).Error; err != nil {
		return nil, 0, err
	}
	return garages, total, nil
}

func (gr *garageRepo) SearchByName(ctx context.Context, tx *gorm.DB, name string, offset, limit int, order string) ([]*types.Garage, int64, error) {
	q := gr.session(tx).WithContext(ctx).Model(&types.Garage{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var garages []*types.Garage
	if err := q.Preload("OpeningHours").
		Order(order).Offset(offset).Limit(limit).
		Find(&garages).Error; err != nil {
		return nil, 0, err
	}
	return garages, total, nil
}

func (gr *garageRepo) FindByVehicleFuelType(ctx context.Context, tx *gorm.DB, fuelType types.FuelType) ([]*types.Garage, error) {
	session := gr.session(tx).WithContext(ctx)
	var garages []*types.Garage
	if err := session.
		Preload("OpeningHours").
		Where("id IN (?)", session.Session(&gorm.Session{NewDB: true}).
			Model(&types.Vehicle{}).Select("garage_id").Where("fuel_type = ?", fuelType)).
		Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

func (gr *garageRepo) FindByAccessoryName(ctx context.Context, tx *gorm.DB, name string) ([]*types.Garage, error) {
	session := gr.session(tx).WithContext(ctx)
	vehicleIDs := session.Session(&gorm.Session{NewDB: true}).
		Model(&types.Accessory{}).Select("vehicle_id").Where("name = ?", name)
	var garages []*types.Garage
	if err := session.
		Preload("OpeningHours").
		Where("id IN (?)", session.Session(&gorm.Session{NewDB: true}).
			Model(&types.Vehicle{}).Select("garage_id").Where("id IN (?)", vehicleIDs)).
		Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

func (gr *garageRepo) FindByVehicleModel(ctx context.Context, tx *gorm.DB, model string) ([]*types.Garage, error) {
	session := gr.session(tx).WithContext(ctx)
	var garages []*types.Garage
	if err := session.
		Preload("OpeningHours").
		Where("id IN (?)", session.Session(&gorm.Session{NewDB: true}).
			Model(&types.Vehicle{}).Select("garage_id").Where("model = ?", model)).
		Find(&garages).Error; err != nil {
		return nil, err
	}
	return garages, nil
}

// ReplaceOpeningHours discards the stored set and installs the new one.
func (gr *garageRepo) ReplaceOpeningHours(ctx context.Context, tx *gorm.DB, garageID uint, hours []types.OpeningTime) error {
	session := gr.session(tx).WithContext(ctx)
	if err := session.Where("garage_id = ?", garageID).Delete(&types.OpeningTime{}).Error; err != nil {
		return err
	}
	if len(hours) == 0 {
		return nil
	}
	return session.Create(&hours).Error
}
