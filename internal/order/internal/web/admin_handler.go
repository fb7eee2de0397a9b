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
	"errors"

	"github.com/barakatmart/barakat/internal/order/internal/domain"
	"github.com/barakatmart/barakat/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/orders")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[OrderSNReq](h.Detail))
	g.POST("/status", ginx.BS[UpdateStatusReq](h.UpdateStatus))
	g.POST("/delete", ginx.B[OrderSNReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderSNReq) (ginx.Result, error) {
	order, err := h.svc.FindBySN(ctx.Request.Context(), req.SN)
	if errors.Is(err, service.ErrOrderNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toOrderVO(order),
	}, nil
}

// UpdateStatus 状态可以置为任意合法值,不校验前序状态,
// 审计靠状态日志而不是状态机约束。
func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq, sess session.Session) (ginx.Result, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return invalidOrderResult, nil
	}
	err = h.svc.UpdateStatus(ctx.Request.Context(), req.SN, status, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req OrderSNReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.SN)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
