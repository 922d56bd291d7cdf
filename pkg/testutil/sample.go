package testutil

import (
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/crypto"
)

// Password is the plain text matching the hash of every sample record.
const Password = "password"

func hashedPassword() string {
	hashed, err := crypto.HashPassword(Password)
	if err != nil {
		panic(err)
	}

	return hashed
}

// SampleGroup creates a group with randomized fields, overwritten by any
// non-zero field of init, and returns the created group.
func SampleGroup(ctx context.Context, init *entity.Group) entity.Group {
	sample := &entity.Group{
		Base:         entity.Base{ID: uuid.NewString()},
		Name:         uuid.NewString(),
		Password:     hashedPassword(),
		IsPublic:     true,
		Introduction: "sample group",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	groupRepo := repository.NewGroupRepository(&MockRedisClient{})
	if err := groupRepo.Create(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

// SamplePost creates a post in the given group with randomized fields,
// overwritten by any non-zero field of init, and returns the created post.
func SamplePost(ctx context.Context, groupID string, init *entity.Post) entity.Post {
	sample := &entity.Post{
		Base:         entity.Base{ID: uuid.NewString()},
		GroupID:      groupID,
		Nickname:     uuid.NewString(),
		Title:        uuid.NewString(),
		Content:      "sample post",
		PostPassword: hashedPassword(),
		Moment:       time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC),
		IsPublic:     true,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	postRepo := repository.NewPostRepository()
	if err := postRepo.Create(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
