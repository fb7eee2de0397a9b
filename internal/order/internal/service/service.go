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

	"github.com/barakatmart/barakat/internal/order/internal/domain"
	"github.com/barakatmart/barakat/internal/order/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	ErrInvalidOrder  = errors.New("订单信息非法")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// CreateOrder 校验订单并落库,总价由服务端重新计算
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, sn string, status domain.Status, operator int64) error
	Delete(ctx context.Context, sn string) error
}

func NewService(repo repository.OrderRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.OrderRepository
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order, err := s.validate(order)
	if err != nil {
		return domain.Order{}, err
	}
	order.Status = domain.StatusPending
	id, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	order.Id = id
	return order, nil
}

func (s *service) validate(order domain.Order) (domain.Order, error) {
	if len(order.Items) == 0 {
		return domain.Order{}, ErrInvalidOrder
	}
	if order.PaymentMethod != domain.PaymentMethodCOD {
		return domain.Order{}, ErrInvalidOrder
	}
	order.UserInfo.Name = strings.TrimSpace(order.UserInfo.Name)
	order.UserInfo.Address = strings.TrimSpace(order.UserInfo.Address)
	order.UserInfo.Phone = strings.TrimSpace(order.UserInfo.Phone)
	if order.UserInfo.Name == "" || order.UserInfo.Address == "" || order.UserInfo.Phone == "" {
		return domain.Order{}, ErrInvalidOrder
	}
	// 总价以服务端快照价为准,忽略客户端传入的任何金额
	var total int64
	for _, item := range order.Items {
		if item.Quantity < 1 || item.UnitPrice < 0 {
			return domain.Order{}, ErrInvalidOrder
		}
		total += item.UnitPrice * item.Quantity
	}
	order.TotalPrice = total
	return order, nil
}

func (s *service) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyer(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByBuyer(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, sn string, status domain.Status, operator int64) error {
	return s.repo.UpdateStatus(ctx, sn, status, operator)
}

func (s *service) Delete(ctx context.Context, sn string) error {
	return s.repo.Delete(ctx, sn)
}
