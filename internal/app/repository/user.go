package repository

import (
	"context"
	"fmt"

	"seeds-backend/internal/app/ds"
)

// FindUserByCredentials fetches the single user whose username and password
// both match exactly. Zero rows give a nil user and no error; more than one
// row is an error.
func (r *Repository) FindUserByCredentials(ctx context.Context, username, password string) Result[*ds.User] {
	var users []ds.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		Limit(2).
		Find(&users).Error
	if err != nil {
		return resultErr[*ds.User](err)
	}

	return maybeSingle(users, fmt.Sprintf("users match %q", username))
}

func (r *Repository) ListUsers(ctx context.Context) Result[[]ds.User] {
	users := []ds.User{}
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return resultErr[[]ds.User](err)
	}
	return resultOf(users)
}

func (r *Repository) InsertUsers(ctx context.Context, users ...ds.User) Result[[]ds.User] {
	if err := r.db.WithContext(ctx).Create(&users).Error; err != nil {
		return resultErr[[]ds.User](err)
	}
	return resultOf(users)
}

// DeleteUser removes the user with the given id and reports rows affected.
func (r *Repository) DeleteUser(ctx context.Context, id string) Result[int64] {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ds.User{})
	if res.Error != nil {
		return resultErr[int64](res.Error)
	}
	return resultOf(res.RowsAffected)
}
