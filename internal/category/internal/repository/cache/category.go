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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/barakatmart/barakat/internal/category/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const (
	expiration = 24 * time.Hour
	listKey    = "category:list"
)

var ErrCategoryListNotFound = errors.New("分类列表没找到")

type CategoryCache interface {
	SetCategories(ctx context.Context, cs []domain.Category) error
	GetCategories(ctx context.Context) ([]domain.Category, error)
	DelCategories(ctx context.Context) error
}

type categoryCache struct {
	ec ecache.Cache
}

func NewCategoryCache(ec ecache.Cache) CategoryCache {
	return &categoryCache{ec: ec}
}

func (c *categoryCache) SetCategories(ctx context.Context, cs []domain.Category) error {
	data, err := json.Marshal(cs)
	if err != nil {
		return errors.Wrap(err, "序列化分类列表失败")
	}
	return c.ec.Set(ctx, listKey, string(data), expiration)
}

func (c *categoryCache) GetCategories(ctx context.Context) ([]domain.Category, error) {
	val := c.ec.Get(ctx, listKey)
	if val.KeyNotFound() {
		return nil, ErrCategoryListNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}

	var res []domain.Category
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化分类列表失败")
}

func (c *categoryCache) DelCategories(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, listKey)
	return err
}
