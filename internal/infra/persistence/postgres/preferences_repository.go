// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"concourse/internal/domain/entity"
	"concourse/internal/domain/repository"
	"concourse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferencesRepository implements the repository.CustomerPreferencesRepository interface.
type preferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository is the constructor for preferencesRepository.
func NewPreferencesRepository(db *gorm.DB) repository.CustomerPreferencesRepository {
	return &preferencesRepository{
		db: db,
	}
}

// Save inserts a new preferences profile. There is no conflict handling on
// purpose: profiles are append-only, every call produces a new row.
func (repo *preferencesRepository) Save(ctx context.Context, preferences *entity.CustomerPreferences) (*entity.CustomerPreferences, error) {
	prefsM := fromPreferencesDomain(preferences)

	if err := repo.db.WithContext(ctx).Create(prefsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create customer preferences")
	}

	return toPreferencesDomain(prefsM), nil
}

// FindByCustomerID retrieves every profile of a customer, oldest first. An
// unknown customer simply yields an empty slice.
func (repo *preferencesRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*entity.CustomerPreferences, error) {
	var prefsModels []*model.CustomerPreferencesModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&prefsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find preferences by customer")
	}

	preferences := make([]*entity.CustomerPreferences, 0, len(prefsModels))
	for _, prefsM := range prefsModels {
		preferences = append(preferences, toPreferencesDomain(prefsM))
	}

	return preferences, nil
}

// --- Mapper Functions ---

// toPreferencesDomain converts a GORM CustomerPreferencesModel to a domain entity.
func toPreferencesDomain(data *model.CustomerPreferencesModel) *entity.CustomerPreferences {
	if data == nil {
		return nil
	}

	return &entity.CustomerPreferences{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		SeatPreference:  entity.SeatPreference(data.SeatPreference),
		ClassPreference: data.ClassPreference,
		ProfileName:     data.ProfileName,
		Language:        data.Language,
	}
}

// fromPreferencesDomain converts a domain entity to a GORM CustomerPreferencesModel.
func fromPreferencesDomain(data *entity.CustomerPreferences) *model.CustomerPreferencesModel {
	if data == nil {
		return nil
	}

	return &model.CustomerPreferencesModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		SeatPreference:  data.SeatPreference.String(),
		ClassPreference: data.ClassPreference,
		ProfileName:     data.ProfileName,
		Language:        data.Language,
	}
}
