//go:build wireinject

package order

import (
	"sync"

	"github.com/barakatmart/barakat/internal/order/internal/repository"
	"github.com/barakatmart/barakat/internal/order/internal/repository/dao"
	"github.com/barakatmart/barakat/internal/order/internal/service"
	"github.com/barakatmart/barakat/internal/order/internal/web"
	"github.com/barakatmart/barakat/internal/pkg/sngenerator"
	"github.com/barakatmart/barakat/internal/product"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	web.NewAdminHandler,
	service.NewService,
	repository.NewOrderRepository,
	InitTablesOnce,
	InitSNGenerator)

func InitModule(db *egorm.Component, ec ecache.Cache, productSvc product.Service) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

// InitSNGenerator 节点ID来自配置,多实例部署时各实例必须不同
func InitSNGenerator() *sngenerator.Generator {
	nodeID := econf.GetInt64("order.snowflakeNode")
	g, err := sngenerator.NewGenerator(nodeID)
	if err != nil {
		panic(err)
	}
	return g
}
