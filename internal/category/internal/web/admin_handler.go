package web

import (
	"errors"

	"github.com/barakatmart/barakat/internal/category/internal/domain"
	"github.com/barakatmart/barakat/internal/category/internal/service"
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
	g := server.Group("/categories")
	g.POST("/list", ginx.W(h.List))
	g.POST("/create", ginx.B[SaveCategoryReq](h.Create))
	g.POST("/update", ginx.B[SaveCategoryReq](h.Update))
	g.POST("/delete", ginx.B[DeleteCategoryReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
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

func (h *AdminHandler) Create(ctx *ginx.Context, req SaveCategoryReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Category{
		Name:          req.Name,
		Subcategories: req.Subcategories,
	})
	if errors.Is(err, service.ErrInvalidCategory) {
		return invalidCategoryResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveCategoryResp{Id: id},
	}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req SaveCategoryReq) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), domain.Category{
		Id:            req.Id,
		Name:          req.Name,
		Subcategories: req.Subcategories,
	})
	switch {
	case errors.Is(err, service.ErrInvalidCategory):
		return invalidCategoryResult, nil
	case errors.Is(err, service.ErrCategoryNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteCategoryReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
