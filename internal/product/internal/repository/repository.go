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

	"github.com/barakatmart/barakat/internal/product/internal/domain"
	"github.com/barakatmart/barakat/internal/product/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrProductNotFound = dao.ErrDataNotFound

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
	FindOnShelfBySN(ctx context.Context, sn string) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, error)
	TotalOnShelf(ctx context.Context, category string) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) Create(ctx context.Context, product domain.Product) (int64, error) {
	return p.d.Create(ctx, p.toEntity(product))
}

func (p *productRepository) Update(ctx context.Context, product domain.Product) error {
	return p.d.Update(ctx, p.toEntity(product))
}

func (p *productRepository) Delete(ctx context.Context, id int64) error {
	return p.d.Delete(ctx, id)
}

func (p *productRepository) FindOnShelfBySN(ctx context.Context, sn string) (domain.Product, error) {
	product, err := p.d.FindOnShelfBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(product), nil
}

func (p *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	products, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) Total(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *productRepository) ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, error) {
	products, err := p.d.ListOnShelfByCategory(ctx, category, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) TotalOnShelf(ctx context.Context, category string) (int64, error) {
	return p.d.CountOnShelfByCategory(ctx, category)
}

func (p *productRepository) toEntity(product domain.Product) dao.Product {
	// 图片序列化失败只可能是编码 bug，空数组兜底
	images, _ := json.Marshal(product.Images)
	return dao.Product{
		Id:          product.Id,
		SN:          product.SN,
		Name:        product.Name,
		Price:       product.Price,
		Discount:    product.Discount,
		Stock:       product.Stock,
		Description: product.Description,
		Images:      string(images),
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Status:      product.Status.ToUint8(),
	}
}

func (p *productRepository) toDomain(product dao.Product) domain.Product {
	var images []string
	_ = json.Unmarshal([]byte(product.Images), &images)
	return domain.Product{
		Id:          product.Id,
		SN:          product.SN,
		Name:        product.Name,
		Price:       product.Price,
		Discount:    product.Discount,
		Stock:       product.Stock,
		Description: product.Description,
		Images:      images,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Status:      domain.Status(product.Status),
		Ctime:       product.Ctime,
		Utime:       product.Utime,
	}
}
