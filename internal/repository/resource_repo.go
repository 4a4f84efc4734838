package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rodartecode/catering-event-manager-sub002/internal/model"
)

// ResourceRepository 资源数据访问接口（本服务只读）
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Resource, error)
}

type resourceRepo struct {
	db *gorm.DB
}

// NewResourceRepo 创建 ResourceRepository 实例
func NewResourceRepo(db *gorm.DB) ResourceRepository {
	return &resourceRepo{db: db}
}

func (r *resourceRepo) GetByID(ctx context.Context, id int64) (*model.Resource, error) {
	var res model.Resource
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}
