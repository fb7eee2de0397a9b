package web

import (
	"errors"

	"github.com/barakatmart/barakat/internal/product/internal/domain"
	"github.com/barakatmart/barakat/internal/product/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/products")
	g.POST("/list", ginx.B[ListProductsReq](h.List))
	g.GET("/detail/:sn", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// List 前台商品列表，只返回上架商品
func (h *Handler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	ps, total, err := h.svc.ListOnShelf(ctx.Request.Context(), req.Category, req.Offset, req.Limit)
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

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	p, err := h.svc.FindBySN(ctx.Request.Context(), ctx.Param("sn").StringOrDefault(""))
	if errors.Is(err, service.ErrProductNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toProductVO(p),
	}, nil
}

func toProductVO(p domain.Product) Product {
	return Product{
		Id:             p.Id,
		SN:             p.SN,
		Name:           p.Name,
		Price:          p.Price,
		Discount:       p.Discount,
		EffectivePrice: p.EffectivePrice(),
		Stock:          p.Stock,
		Description:    p.Description,
		Images:         p.Images,
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		Status:         p.Status.ToUint8(),
		Ctime:          p.Ctime,
		Utime:          p.Utime,
	}
}
