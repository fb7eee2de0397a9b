//go:build wireinject

package category

import (
	"sync"

	"github.com/barakatmart/barakat/internal/category/internal/repository"
	"github.com/barakatmart/barakat/internal/category/internal/repository/cache"
	"github.com/barakatmart/barakat/internal/category/internal/repository/dao"
	"github.com/barakatmart/barakat/internal/category/internal/service"
	"github.com/barakatmart/barakat/internal/category/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	web.NewAdminHandler,
	cache.NewCategoryCache,
	InitTablesOnce,
	repository.NewCategoryRepository,
	service.NewService)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CategoryDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCategoryGORMDAO(db)
}
