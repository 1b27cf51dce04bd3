package repository

import (
	"context"

	"seeds-backend/internal/app/ds"
)

func (r *Repository) ListClients(ctx context.Context) Result[[]ds.Client] {
	clients := []ds.Client{}
	if err := r.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return resultErr[[]ds.Client](err)
	}
	return resultOf(clients)
}

func (r *Repository) InsertClients(ctx context.Context, clients ...ds.Client) Result[[]ds.Client] {
	if err := r.db.WithContext(ctx).Create(&clients).Error; err != nil {
		return resultErr[[]ds.Client](err)
	}
	return resultOf(clients)
}

// DeleteClient removes the client with the given id. Licenses that name the
// client are left untouched.
func (r *Repository) DeleteClient(ctx context.Context, id string) Result[int64] {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ds.Client{})
	if res.Error != nil {
		return resultErr[int64](res.Error)
	}
	return resultOf(res.RowsAffected)
}
