package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dealernet/garage-backend/internal/logger"
	"github.com/dealernet/garage-backend/internal/types"
)

type AccessoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) (*types.Accessory, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Accessory, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByVehicle(ctx context.Context, tx *gorm.DB, vehicleID uint) ([]*types.Accessory, error)
}

type accessoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccessoryRepo(db *gorm.DB, baseLog *logger.Logger) AccessoryRepo {
	repoLog := baseLog.With("repo", "AccessoryRepo")
	return &accessoryRepo{db: db, log: repoLog}
}

func (ar *accessoryRepo) session(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ar.db
}

func (ar *accessoryRepo) Create(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) (*types.Accessory, error) {
	if err := ar.session(tx).WithContext(ctx).Create(accessory).Error; err != nil {
		return nil, err
	}
	return accessory, nil
}

// GetByID returns (nil, nil) when no accessory has the id.
func (ar *accessoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Accessory, error) {
	var accessory types.Accessory
	err := ar.session(tx).WithContext(ctx).First(&accessory, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &accessory, nil
}

func (ar *accessoryRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := ar.session(tx).WithContext(ctx).
		Model(&types.Accessory{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ar *accessoryRepo) Save(ctx context.Context, tx *gorm.DB, accessory *types.Accessory) error {
	return ar.session(tx).WithContext(ctx).Save(accessory).Error
}

func (ar *accessoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return ar.session(tx).WithContext(ctx).Delete(&types.Accessory{}, id).Error
}

func (ar *accessoryRepo) FindByVehicle(ctx context.Context, tx *gorm.DB, vehicleID uint) ([]*types.Accessory, error) {
	var accessories []*types.Accessory
	if err := ar.session(tx).WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("id").
		Find(&accessories).Error; err != nil {
		return nil, err
	}
	return accessories, nil
}
