package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/types"
)

type VehicleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, vehicle *types.Vehicle) (*types.Vehicle, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Vehicle, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, vehicle *types.Vehicle) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByGarage(ctx context.Context, tx *gorm.DB, garageID uint) ([]*types.Vehicle, error)
	FindByModel(ctx context.Context, tx *gorm.DB, model string) ([]*types.Vehicle, error)
	CountByGarage(ctx context.Context, tx *gorm.DB, garageID uint) (int64, error)
}

type vehicleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVehicleRepo(db *gorm.DB, baseLog *logger.Logger) VehicleRepo {
	repoLog := baseLog.With("repo", "VehicleRepo")
	return &vehicleRepo{db: db, log: repoLog}
}

func (vr *vehicleRepo) session(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return vr.db
}

func (vr *vehicleRepo) Create(ctx context.Context, tx *gorm.DB, vehicle *types.Vehicle) (*types.Vehicle, error) {
	if err := vr.session(tx).WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// GetByID returns (nil, nil) when no vehicle has the id.
func (vr *vehicleRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Vehicle, error) {
	var vehicle types.Vehicle
	err := vr.session(tx).WithContext(ctx).First(&vehicle, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (vr *vehicleRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := vr.session(tx).WithContext(ctx).
		Model(&types.Vehicle{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (vr *vehicleRepo) Save(ctx context.Context, tx *gorm.DB, vehicle *types.Vehicle) error {
	return vr.session(tx).WithContext(ctx).
		Omit("Accessories").
		Save(vehicle).Error
}

// Delete removes the vehicle and its accessories in one pass.
func (vr *vehicleRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	session := vr.session(tx).WithContext(ctx)
	if err := session.Where("vehicle_id = ?", id).Delete(&types.Accessory{}).Error; err != nil {
		return err
	}
	return session.Delete(&types.Vehicle{}, id).Error
}

func (vr *vehicleRepo) FindByGarage(ctx context.Context, tx *gorm.DB, garageID uint) ([]*types.Vehicle, error) {
	var vehicles []*types.Vehicle
	if err := vr.session(tx).WithContext(ctx).
		Where("garage_id = ?", garageID).
		Order("id").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (vr *vehicleRepo) FindByModel(ctx context.Context, tx *gorm.DB, model string) ([]*types.Vehicle, error) {
	var vehicles []*types.Vehicle
	if err := vr.session(tx).WithContext(ctx).
		Where("model = ?", model).
		Order("id").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (vr *vehicleRepo) CountByGarage(ctx context.Context, tx *gorm.DB, garageID uint) (int64, error) {
	var count int64
	if err := vr.session(tx).WithContext(ctx).
		Model(&types.Vehicle{}).
		Where("garage_id = ?", garageID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
