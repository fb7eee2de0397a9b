package category

import (
	"github.com/barakatmart/barakat/internal/category/internal/domain"
	"github.com/barakatmart/barakat/internal/category/internal/service"
	"github.com/barakatmart/barakat/internal/category/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Category = domain.Category
type Service = service.Service

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
