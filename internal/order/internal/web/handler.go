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

package web

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/barakatmart/barakat/internal/order/internal/domain"
	"github.com/barakatmart/barakat/internal/order/internal/service"
	"github.com/barakatmart/barakat/internal/pkg/sngenerator"
	"github.com/barakatmart/barakat/internal/product"
	"github.com/barakatmart/barakat/internal/user"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc         service.Service
	productSvc  product.Service
	snGenerator *sngenerator.Generator
	cache       ecache.Cache
}

func NewHandler(svc service.Service, productSvc product.Service, snGenerator *sngenerator.Generator, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, productSvc: productSvc, snGenerator: snGenerator, cache: cache}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/api/orders")
	g.POST("", ginx.BS[CreateOrderReq](h.Create))
	g.GET("/my-orders", ginx.S(h.ListMine))
	g.GET("/detail/:sn", ginx.S(h.Detail))
}

// Create 创建订单。订单项的名称和价格以服务端商品目录为准,
// 已下架或不存在的商品直接丢弃,全部丢弃则视为非法订单。
func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	buyerID := sess.Claims().Uid
	items, err := h.snapshotItems(ctx.Request.Context(), req.Items)
	if err != nil {
		return invalidOrderResult, nil
	}

	orderSN, err := h.snGenerator.Generate(buyerID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		SN:      orderSN,
		BuyerId: buyerID,
		UserInfo: domain.UserInfo{
			Name:    req.UserInfo.Name,
			Address: req.UserInfo.Address,
			Phone:   req.UserInfo.Phone,
		},
		Items:         items,
		PaymentMethod: req.PaymentMethod,
	})
	if errors.Is(err, service.ErrInvalidOrder) {
		return invalidOrderResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:    order.SN,
			Status:     order.Status.String(),
			TotalPrice: order.TotalPrice,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

func (h *Handler) snapshotItems(ctx context.Context, reqItems []CreateOrderItem) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(reqItems))
	for _, it := range reqItems {
		p, err := h.productSvc.FindBySN(ctx, it.ProductSN)
		if err != nil {
			// 商品不存在或已下架,丢弃该行
			continue
		}
		if it.Quantity < 1 || it.Quantity > p.Stock {
			return nil, fmt.Errorf("商品数量非法")
		}
		items = append(items, domain.OrderItem{
			ProductId: p.Id,
			ProductSN: p.SN,
			Name:      p.Name,
			Image:     firstImage(p.Images),
			UnitPrice: p.EffectivePrice(),
			Quantity:  it.Quantity,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("商品信息非法")
	}
	return items, nil
}

func firstImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}

// ListMine 分页查询当前用户订单,按创建时间倒序
func (h *Handler) ListMine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	offset, limit := pagination(ctx)
	orders, total, err := h.svc.ListByBuyer(ctx.Request.Context(), sess.Claims().Uid, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

// Detail 买家看自己的订单,管理员可以看任意订单,看别人的订单直接拒绝
func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	sn := ctx.Param("sn").StringOrDefault("")
	order, err := h.svc.FindBySN(ctx.Request.Context(), sn)
	if errors.Is(err, service.ErrOrderNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	claims := sess.Claims()
	if order.BuyerId != claims.Uid &&
		claims.Get("role").StringOrDefault("") != user.RoleAdmin {
		return forbiddenResult, nil
	}
	return ginx.Result{
		Data: toOrderVO(order),
	}, nil
}

func pagination(ctx *ginx.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN:      order.SN,
		BuyerId: order.BuyerId,
		UserInfo: UserInfo{
			Name:    order.UserInfo.Name,
			Address: order.UserInfo.Address,
			Phone:   order.UserInfo.Phone,
		},
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductSN: src.ProductSN,
				Name:      src.Name,
				Image:     src.Image,
				UnitPrice: src.UnitPrice,
				Quantity:  src.Quantity,
			}
		}),
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status.String(),
		StatusLogs: slice.Map(order.StatusLogs, func(idx int, src domain.StatusLog) StatusLog {
			return StatusLog{
				Status:   src.Status.String(),
				Operator: src.Operator,
				Ctime:    src.Ctime,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
