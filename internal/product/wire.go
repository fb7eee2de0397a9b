//go:build wireinject

package product

import (
	"sync"

	"github.com/barakatmart/barakat/internal/product/internal/repository"
	"github.com/barakatmart/barakat/internal/product/internal/repository/dao"
	"github.com/barakatmart/barakat/internal/product/internal/service"
	"github.com/barakatmart/barakat/internal/product/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	web.NewAdminHandler,
	service.NewService,
	repository.NewProductRepository,
	InitTablesOnce)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}
