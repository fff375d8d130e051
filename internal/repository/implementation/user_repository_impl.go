package implementation

import (
	"context"
	"strings"

	"migratemate-retention-be/internal/entity"
	"migratemate-retention-be/internal/model"
	"migratemate-retention-be/internal/repository/contract"
	"migratemate-retention-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	modelUser := &model.User{
		Id:    user.Id,
		Email: strings.ToLower(strings.TrimSpace(user.Email)),
	}
	return r.db.WithContext(ctx).Create(modelUser).Error
}

func (r *userRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var modelUser model.User
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&modelUser).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&modelUser), nil
}

func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.FindOne(ctx, specification.ByEmail{Email: email})
}

func (r *userRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *userRepositoryImpl) Sample(ctx context.Context, limit int) ([]*entity.User, error) {
	var modelUsers []*model.User
	if err := r.db.WithContext(ctx).Limit(limit).Find(&modelUsers).Error; err != nil {
		return nil, err
	}

	var users []*entity.User
	for _, mu := range modelUsers {
		users = append(users, r.mapToEntity(mu))
	}
	return users, nil
}

func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *userRepositoryImpl) mapToEntity(mu *model.User) *entity.User {
	return &entity.User{
		Id:        mu.Id,
		Email:     mu.Email,
		CreatedAt: mu.CreatedAt,
		UpdatedAt: mu.UpdatedAt,
	}
}
