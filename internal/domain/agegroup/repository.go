package agegroup

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (AgeGroup, bool, error)
	List(ctx context.Context) ([]AgeGroup, error)
}
