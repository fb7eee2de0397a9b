// Copyright 2024 barakatmart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/barakatmart/barakat/internal/category/internal/domain"
	"github.com/barakatmart/barakat/internal/category/internal/repository/cache"
	"github.com/barakatmart/barakat/internal/category/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCategoryNotFound = dao.ErrDataNotFound

type CategoryRepository interface {
	Create(ctx context.Context, c domain.Category) (int64, error)
	Update(ctx context.Context, c domain.Category) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

func NewCategoryRepository(d dao.CategoryDAO, ca cache.CategoryCache) CategoryRepository {
	return &categoryRepository{
		d:      d,
		cache:  ca,
		logger: elog.DefaultLogger,
	}
}

type categoryRepository struct {
	d      dao.CategoryDAO
	cache  cache.CategoryCache
	logger *elog.Component
}

func (c *categoryRepository) Create(ctx context.Context, cat domain.Category) (int64, error) {
	entity, err := c.toEntity(cat)
	if err != nil {
		return 0, err
	}
	id, err := c.d.Create(ctx, entity)
	if err != nil {
		return 0, err
	}
	c.delCache(ctx)
	return id, nil
}

func (c *categoryRepository) Update(ctx context.Context, cat domain.Category) error {
	entity, err := c.toEntity(cat)
	if err != nil {
		return err
	}
	if err = c.d.Update(ctx, entity); err != nil {
		return err
	}
	c.delCache(ctx)
	return nil
}

func (c *categoryRepository) Delete(ctx context.Context, id int64) error {
	if err := c.d.Delete(ctx, id); err != nil {
		return err
	}
	c.delCache(ctx)
	return nil
}

func (c *categoryRepository) FindById(ctx context.Context, id int64) (domain.Category, error) {
	cat, err := c.d.FindById(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	return c.toDomain(cat)
}

func (c *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if res, err := c.cache.GetCategories(ctx); err == nil {
		return res, nil
	}
	cs, err := c.d.List(ctx)
	if err != nil {
		return nil, err
	}
	res := slice.Map(cs, func(idx int, src dao.Category) domain.Category {
		r, _ := c.toDomain(src)
		return r
	})
	if er := c.cache.SetCategories(ctx, res); er != nil {
		c.logger.Error("缓存分类列表失败", elog.FieldErr(er))
	}
	return res, nil
}

func (c *categoryRepository) delCache(ctx context.Context) {
	// 分类变了，整个列表缓存失效
	if err := c.cache.DelCategories(ctx); err != nil {
		c.logger.Error("删除分类列表缓存失败", elog.FieldErr(err))
	}
}

func (c *categoryRepository) toEntity(cat domain.Category) (dao.Category, error) {
	data, err := json.Marshal(cat.Subcategories)
	if err != nil {
		return dao.Category{}, fmt.Errorf("序列化子分类失败: %w", err)
	}
	return dao.Category{
		Id:            cat.Id,
		Name:          cat.Name,
		Subcategories: string(data),
	}, nil
}

func (c *categoryRepository) toDomain(cat dao.Category) (domain.Category, error) {
	var subs []string
	if err := json.Unmarshal([]byte(cat.Subcategories), &subs); err != nil {
		return domain.Category{}, fmt.Errorf("反序列化子分类失败: %w", err)
	}
	return domain.Category{
		Id:            cat.Id,
		Name:          cat.Name,
		Subcategories: subs,
		Ctime:         cat.Ctime,
		Utime:         cat.Utime,
	}, nil
}
