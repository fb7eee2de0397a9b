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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type CategoryDAO interface {
	Create(ctx context.Context, c Category) (int64, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (Category, error)
	List(ctx context.Context) ([]Category, error)
}

type CategoryGORMDAO struct {
	db *egorm.Component
}

func NewCategoryGORMDAO(db *egorm.Component) CategoryDAO {
	return &CategoryGORMDAO{db: db}
}

func (d *CategoryGORMDAO) Create(ctx context.Context, c Category) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (d *CategoryGORMDAO) Update(ctx context.Context, c Category) error {
	res := d.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", c.Id).
		Updates(map[string]any{
			"name":          c.Name,
			"subcategories": c.Subcategories,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *CategoryGORMDAO) Delete(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Delete(&Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *CategoryGORMDAO) FindById(ctx context.Context, id int64) (Category, error) {
	var res Category
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *CategoryGORMDAO) List(ctx context.Context) ([]Category, error) {
	var res []Category
	err := d.db.WithContext(ctx).Order("ctime ASC").Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Category{})
}

type Category struct {
	Id   int64  `gorm:"primaryKey;autoIncrement;comment:分类自增ID"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_category_name;comment:分类名称"`
	// 子分类，JSON 数组
	Subcategories string `gorm:"not null;comment:子分类,JSON格式"`
	Ctime         int64
	Utime         int64
}
