package repository

import (
	"context"

	"seeds-backend/internal/app/ds"
)

func (r *Repository) ListLicenses(ctx context.Context) Result[[]ds.License] {
	licenses := []ds.License{}
	if err := r.db.WithContext(ctx).Find(&licenses).Error; err != nil {
		return resultErr[[]ds.License](err)
	}
	return resultOf(licenses)
}

func (r *Repository) InsertLicenses(ctx context.Context, licenses ...ds.License) Result[[]ds.License] {
	if err := r.db.WithContext(ctx).Create(&licenses).Error; err != nil {
		return resultErr[[]ds.License](err)
	}
	return resultOf(licenses)
}

// UpdateLicensePayment sets the payment status of the license with the given
// id and reports rows affected.
func (r *Repository) UpdateLicensePayment(ctx context.Context, id, status string) Result[int64] {
	res := r.db.WithContext(ctx).
		Model(&ds.License{}).
		Where("id = ?", id).
		Update("payment", status)
	if res.Error != nil {
		return resultErr[int64](res.Error)
	}
	return resultOf(res.RowsAffected)
}

// SearchLicensesByClient returns licenses whose client contains q, ignoring
// case. An empty q matches every row.
func (r *Repository) SearchLicensesByClient(ctx context.Context, q string) Result[[]ds.License] {
	licenses := []ds.License{}
	err := r.db.WithContext(ctx).
		Where("client ILIKE ?", containsPattern(q)).
		Find(&licenses).Error
	if err != nil {
		return resultErr[[]ds.License](err)
	}
	return resultOf(licenses)
}
