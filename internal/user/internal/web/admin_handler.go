package web

import (
	"errors"

	"github.com/barakatmart/barakat/internal/user/internal/domain"
	"github.com/barakatmart/barakat/internal/user/internal/repository"
	"github.com/barakatmart/barakat/internal/user/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.UserService
}

func NewAdminHandler(svc service.UserService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("/list", ginx.B[ListUsersReq](h.List))
	g.POST("/role", ginx.B[UpdateRoleReq](h.UpdateRole))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListUsersReq) (ginx.Result, error) {
	us, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListUsersResp{
			Total: total,
			Users: slice.Map(us, func(idx int, src domain.User) Profile {
				return Profile{
					Id:    src.Id,
					SN:    src.SN,
					Name:  src.Name,
					Email: src.Email,
					Role:  src.Role,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdateRole(ctx *ginx.Context, req UpdateRoleReq) (ginx.Result, error) {
	if req.Role != domain.RoleUser && req.Role != domain.RoleAdmin {
		return invalidInputResult, nil
	}
	err := h.svc.UpdateRole(ctx.Request.Context(), req.Uid, req.Role)
	if errors.Is(err, repository.ErrUserNotFound) {
		return invalidInputResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
