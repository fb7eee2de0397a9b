//go:build wireinject

package ioc

import (
	"github.com/barakatmart/barakat/internal/category"
	"github.com/barakatmart/barakat/internal/order"
	"github.com/barakatmart/barakat/internal/product"
	"github.com/barakatmart/barakat/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "AdminHdl"),
		category.InitModule,
		wire.FieldsOf(new(*category.Module), "Hdl", "AdminHdl"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl", "Svc"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
