package web

import (
	"errors"
	"strings"

	"github.com/barakatmart/barakat/internal/user/internal/domain"
	"github.com/barakatmart/barakat/internal/user/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
	// 白名单，登录时在会话里打上 admin 标记
	admins []string
}

func NewHandler(svc service.UserService, admins []string) *Handler {
	return &Handler{
		svc:    svc,
		admins: admins,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	auth := server.Group("/api/auth")
	auth.POST("/register", ginx.B[RegisterReq](h.Register))
	auth.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/api/users")
	users.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || len(req.Password) < 6 {
		return invalidInputResult, nil
	}
	u, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Name:     name,
		Email:    email,
		Password: req.Password,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return duplicateEmailResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return invalidInputResult, nil
	}
	u, err := h.svc.Login(ctx.Request.Context(), email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return invalidCredentialsResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) buildSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	role := u.Role
	// 白名单只影响本次会话的标记，不改库里的角色
	if !u.IsAdmin() && slice.Contains(h.admins, u.Email) {
		role = domain.RoleAdmin
	}
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": role,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:    u.Id,
			SN:    u.SN,
			Name:  u.Name,
			Email: u.Email,
			Role:  role,
		},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			SN:    u.SN,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		},
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
