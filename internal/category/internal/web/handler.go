package web

import (
	"errors"
	"strconv"

	"github.com/barakatmart/barakat/internal/category/internal/domain"
	"github.com/barakatmart/barakat/internal/category/internal/service"
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
	g := server.Group("/api/categories")
	g.GET("", ginx.W(h.List))
	g.GET("/detail/:id", ginx.W(h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// List 前台分类导航
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCategoriesResp{
			Categories: slice.Map(cs, func(idx int, src domain.Category) Category {
				return toCategoryVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, err := strconv.ParseInt(ctx.Param("id").StringOrDefault(""), 10, 64)
	if err != nil {
		return notFoundResult, nil
	}
	c, err := h.svc.FindById(ctx.Request.Context(), id)
	if errors.Is(err, service.ErrCategoryNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toCategoryVO(c),
	}, nil
}

func toCategoryVO(c domain.Category) Category {
	return Category{
		Id:            c.Id,
		Name:          c.Name,
		Subcategories: c.Subcategories,
		Ctime:         c.Ctime,
		Utime:         c.Utime,
	}
}
