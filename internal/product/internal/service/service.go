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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/barakatmart/barakat/internal/product/internal/domain"
	"github.com/barakatmart/barakat/internal/product/internal/repository"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound = repository.ErrProductNotFound
	ErrInvalidProduct  = errors.New("商品信息非法")
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	// FindBySN 只返回上架商品，下单和商详都走这里
	FindBySN(ctx context.Context, sn string) (domain.Product, error)
	ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, int64, error)
	// 以下是管理端操作
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindOnShelfBySN(ctx, sn)
}

func (s *service) ListOnShelf(ctx context.Context, category string, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.ListOnShelf(ctx, category, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOnShelf(ctx, category)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) Create(ctx context.Context, p domain.Product) (int64, error) {
	p, err := s.validate(p)
	if err != nil {
		return 0, err
	}
	p.SN = shortuuid.New()
	if p.Status == 0 {
		p.Status = domain.StatusOffShelf
	}
	return s.repo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, p domain.Product) error {
	p, err := s.validate(p)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) validate(p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	if p.Name == "" || p.Category == "" {
		return domain.Product{}, ErrInvalidProduct
	}
	if p.Price <= 0 || p.Stock < 0 {
		return domain.Product{}, ErrInvalidProduct
	}
	if p.Discount < 0 || p.Discount >= 100 {
		return domain.Product{}, ErrInvalidProduct
	}
	if len(p.Images) > domain.MaxImages {
		return domain.Product{}, ErrInvalidProduct
	}
	return p, nil
}
