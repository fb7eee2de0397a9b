package web

import (
	"errors"

	"github.com/barakatmart/barakat/internal/product/internal/domain"
	"github.com/barakatmart/barakat/internal/product/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/products")
	g.POST("/list", ginx.B[ListProductsReq](h.List))
	g.POST("/create", ginx.B[SaveProductReq](h.Create))
	g.POST("/update", ginx.B[SaveProductReq](h.Update))
	g.POST("/delete", ginx.B[DeleteProductReq](h.Delete))
}

// List 管理端列表，含下架商品
func (h *AdminHandler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	ps, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total: total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Create(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), h.toDomain(req))
	if errors.Is(err, service.ErrInvalidProduct) {
		return invalidProductResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveProductResp{Id: id},
	}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), h.toDomain(req))
	switch {
	case errors.Is(err, service.ErrInvalidProduct):
		return invalidProductResult, nil
	case errors.Is(err, service.ErrProductNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteProductReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) toDomain(req SaveProductReq) domain.Product {
	return domain.Product{
		Id:          req.Id,
		Name:        req.Name,
		Price:       req.Price,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Description: req.Description,
		Images:      req.Images,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Status:      domain.Status(req.Status),
	}
}
