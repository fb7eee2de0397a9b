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

	"github.com/barakatmart/barakat/internal/order/internal/domain"
	"github.com/barakatmart/barakat/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrOrderNotFound = dao.ErrDataNotFound

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (int64, error)
	// FindBySN 返回完整订单,含订单项和状态日志
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	TotalByBuyer(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
	Total(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, sn string, status domain.Status, operator int64) error
	Delete(ctx context.Context, sn string) error
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	return r.d.Create(ctx, r.toEntity(order), slice.Map(order.Items,
		func(idx int, src domain.OrderItem) dao.OrderItem {
			return dao.OrderItem{
				ProductId: src.ProductId,
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Image:     src.Image,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}))
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.assemble(ctx, o)
}

func (r *orderRepository) assemble(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.d.FindItemsByOrderId(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	logs, err := r.d.FindStatusLogsByOrderId(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o)
	res.Items = slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return r.toDomainItem(src)
	})
	res.StatusLogs = slice.Map(logs, func(idx int, src dao.OrderStatusLog) domain.StatusLog {
		return domain.StatusLog{
			Status:   domain.Status(src.Status),
			Operator: src.Operator,
			Ctime:    src.Ctime,
		}
	})
	return res, nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.d.ListByBuyer(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, os)
}

func (r *orderRepository) TotalByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return r.d.CountByBuyer(ctx, buyerID)
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := r.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, os)
}

func (r *orderRepository) Total(ctx context.Context) (int64, error) {
	return r.d.Count(ctx)
}

// attachItems 一次查出各订单的订单项,避免逐单回表
func (r *orderRepository) attachItems(ctx context.Context, os []dao.Order) ([]domain.Order, error) {
	if len(os) == 0 {
		return []domain.Order{}, nil
	}
	items, err := r.d.FindItemsByOrderIds(ctx, slice.Map(os, func(idx int, src dao.Order) int64 {
		return src.Id
	}))
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.OrderItem, len(os))
	for _, it := range items {
		grouped[it.OrderId] = append(grouped[it.OrderId], r.toDomainItem(it))
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		o := r.toDomain(src)
		o.Items = grouped[src.Id]
		return o
	}), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, sn string, status domain.Status, operator int64) error {
	return r.d.UpdateStatus(ctx, sn, status.ToUint8(), operator)
}

func (r *orderRepository) Delete(ctx context.Context, sn string) error {
	return r.d.Delete(ctx, sn)
}

func (r *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:            order.Id,
		SN:            order.SN,
		BuyerId:       order.BuyerId,
		BuyerName:     order.UserInfo.Name,
		BuyerAddress:  order.UserInfo.Address,
		BuyerPhone:    order.UserInfo.Phone,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status.ToUint8(),
	}
}

func (r *orderRepository) toDomain(order dao.Order) domain.Order {
	return domain.Order{
		Id:      order.Id,
		SN:      order.SN,
		BuyerId: order.BuyerId,
		UserInfo: domain.UserInfo{
			Name:    order.BuyerName,
			Address: order.BuyerAddress,
			Phone:   order.BuyerPhone,
		},
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		Status:        domain.Status(order.Status),
		Ctime:         order.Ctime,
		Utime:         order.Utime,
	}
}

func (r *orderRepository) toDomainItem(item dao.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ProductId: item.ProductId,
		ProductSN: item.ProductSN,
		Name:      item.Name,
		Image:     item.Image,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
	}
}
