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
	"testing"

	"github.com/barakatmart/barakat/internal/order/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepository struct {
	created []domain.Order
	nextID  int64
}

func (f *fakeOrderRepository) Create(_ context.Context, order domain.Order) (int64, error) {
	f.nextID++
	f.created = append(f.created, order)
	return f.nextID, nil
}

func (f *fakeOrderRepository) FindBySN(_ context.Context, _ string) (domain.Order, error) {
	return domain.Order{}, ErrOrderNotFound
}

func (f *fakeOrderRepository) ListByBuyer(_ context.Context, _ int64, _, _ int) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (f *fakeOrderRepository) TotalByBuyer(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (f *fakeOrderRepository) List(_ context.Context, _, _ int) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (f *fakeOrderRepository) Total(_ context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeOrderRepository) UpdateStatus(_ context.Context, _ string, _ domain.Status, _ int64) error {
	return nil
}

func (f *fakeOrderRepository) Delete(_ context.Context, _ string) error {
	return nil
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()

	validUserInfo := domain.UserInfo{
		Name:    "张三",
		Address: "迪拜国际城 中国区 A栋 101",
		Phone:   "0501234567",
	}
	validItems := []domain.OrderItem{
		{ProductSN: "SN-apple", Name: "苹果", UnitPrice: 500, Quantity: 2},
		{ProductSN: "SN-milk", Name: "牛奶", UnitPrice: 1250, Quantity: 1},
	}

	testCases := []struct {
		name      string
		order     domain.Order
		wantErr   error
		wantTotal int64
	}{
		{
			name: "创建成功_总价为各项单价乘数量之和",
			order: domain.Order{
				SN:            "orderSN-1",
				BuyerId:       7,
				UserInfo:      validUserInfo,
				Items:         validItems,
				PaymentMethod: domain.PaymentMethodCOD,
			},
			wantTotal: 2250,
		},
		{
			name: "创建成功_忽略客户端传入的总价",
			order: domain.Order{
				SN:            "orderSN-2",
				BuyerId:       7,
				UserInfo:      validUserInfo,
				Items:         validItems,
				TotalPrice:    1,
				PaymentMethod: domain.PaymentMethodCOD,
			},
			wantTotal: 2250,
		},
		{
			name: "订单项为空",
			order: domain.Order{
				SN:            "orderSN-3",
				BuyerId:       7,
				UserInfo:      validUserInfo,
				PaymentMethod: domain.PaymentMethodCOD,
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "不支持的支付方式",
			order: domain.Order{
				SN:            "orderSN-4",
				BuyerId:       7,
				UserInfo:      validUserInfo,
				Items:         validItems,
				PaymentMethod: "card",
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "收货地址为空白",
			order: domain.Order{
				SN:      "orderSN-5",
				BuyerId: 7,
				UserInfo: domain.UserInfo{
					Name:    "张三",
					Address: "   ",
					Phone:   "0501234567",
				},
				Items:         validItems,
				PaymentMethod: domain.PaymentMethodCOD,
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "购买数量小于1",
			order: domain.Order{
				SN:       "orderSN-6",
				BuyerId:  7,
				UserInfo: validUserInfo,
				Items: []domain.OrderItem{
					{ProductSN: "SN-apple", Name: "苹果", UnitPrice: 500, Quantity: 0},
				},
				PaymentMethod: domain.PaymentMethodCOD,
			},
			wantErr: ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeOrderRepository{}
			svc := NewService(repo)

			created, err := svc.CreateOrder(context.Background(), tc.order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, created.TotalPrice)
			assert.Equal(t, domain.StatusPending, created.Status)
			assert.NotZero(t, created.Id)
			require.Len(t, repo.created, 1)
			assert.Equal(t, tc.wantTotal, repo.created[0].TotalPrice)
		})
	}
}

func TestService_CreateOrder_TrimsUserInfo(t *testing.T) {
	t.Parallel()
	repo := &fakeOrderRepository{}
	svc := NewService(repo)

	created, err := svc.CreateOrder(context.Background(), domain.Order{
		SN:      "orderSN-7",
		BuyerId: 7,
		UserInfo: domain.UserInfo{
			Name:    "  张三  ",
			Address: " 迪拜国际城 ",
			Phone:   " 0501234567 ",
		},
		Items: []domain.OrderItem{
			{ProductSN: "SN-apple", Name: "苹果", UnitPrice: 500, Quantity: 1},
		},
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.UserInfo{
		Name:    "张三",
		Address: "迪拜国际城",
		Phone:   "0501234567",
	}, created.UserInfo)
}
