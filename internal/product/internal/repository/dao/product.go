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

	"github.com/barakatmart/barakat/internal/product/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type ProductDAO interface {
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (Product, error)
	FindOnShelfBySN(ctx context.Context, sn string) (Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	ListOnShelfByCategory(ctx context.Context, category string, offset, limit int) ([]Product, error)
	CountOnShelfByCategory(ctx context.Context, category string) (int64, error)
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product) error {
	p.Utime = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":        p.Name,
			"price":       p.Price,
			"discount":    p.Discount,
			"stock":       p.Stock,
			"description": p.Description,
			"images":      p.Images,
			"category":    p.Category,
			"subcategory": p.Subcategory,
			"status":      p.Status,
			"utime":       p.Utime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	res := d.db.WithContext(ctx).Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (d *ProductGORMDAO) FindById(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *ProductGORMDAO) FindOnShelfBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).
		Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).
		First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) ListOnShelfByCategory(ctx context.Context, category string, offset, limit int) ([]Product, error) {
	var res []Product
	query := d.db.WithContext(ctx).Where("status = ?", domain.StatusOnShelf.ToUint8())
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) CountOnShelfByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	query := d.db.WithContext(ctx).Model(&Product{}).
		Where("status = ?", domain.StatusOnShelf.ToUint8())
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Count(&count).Error
	return count, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{})
}

type Product struct {
	Id   int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN   string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Name string `gorm:"type:varchar(255);not null;comment:商品名称"`
	// 单位为fils, 999表示9.99 AED
	Price       int64  `gorm:"not null;comment:商品单价"`
	Discount    int64  `gorm:"not null;default:0;comment:折扣百分比"`
	Stock       int64  `gorm:"not null;comment:库存数量"`
	Description string `gorm:"not null;comment:商品描述"`
	// 图片，JSON 数组，最多三张
	Images      string `gorm:"type:varchar(1024);not null;comment:商品图片,JSON格式"`
	Category    string `gorm:"type:varchar(255);not null;index:idx_product_category;comment:按名称引用的分类"`
	Subcategory string `gorm:"type:varchar(255);not null;comment:按值引用的子分类"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}
