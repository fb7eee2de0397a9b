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

	"github.com/barakatmart/barakat/internal/category/internal/domain"
	"github.com/barakatmart/barakat/internal/category/internal/repository"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrInvalidCategory  = errors.New("分类信息非法")
)

type Service interface {
	Create(ctx context.Context, c domain.Category) (int64, error)
	Update(ctx context.Context, c domain.Category) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

func NewService(repo repository.CategoryRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CategoryRepository
}

func (s *service) Create(ctx context.Context, c domain.Category) (int64, error) {
	cat, err := s.validate(c)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, cat)
}

func (s *service) Update(ctx context.Context, c domain.Category) error {
	cat, err := s.validate(c)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, cat)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) FindById(ctx context.Context, id int64) (domain.Category, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *service) validate(c domain.Category) (domain.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.Category{}, ErrInvalidCategory
	}
	subs := slice.FilterMap(c.Subcategories, func(idx int, src string) (string, bool) {
		sub := strings.TrimSpace(src)
		return sub, sub != ""
	})
	if len(subs) < domain.MinSubcategories || len(subs) > domain.MaxSubcategories {
		return domain.Category{}, ErrInvalidCategory
	}
	c.Subcategories = subs
	return c, nil
}
