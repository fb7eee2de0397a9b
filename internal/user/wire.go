//go:build wireinject

package user

import (
	"sync"

	"github.com/barakatmart/barakat/internal/user/internal/event"
	"github.com/barakatmart/barakat/internal/user/internal/repository"
	"github.com/barakatmart/barakat/internal/user/internal/repository/cache"
	"github.com/barakatmart/barakat/internal/user/internal/repository/dao"
	"github.com/barakatmart/barakat/internal/user/internal/service"
	"github.com/barakatmart/barakat/internal/user/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	web.NewAdminHandler,
	cache.NewUserECache,
	InitTablesOnce,
	InitRegistrationEventProducer,
	InitAdmins,
	service.NewUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMUserDAO(db)
}

func InitRegistrationEventProducer(q mq.MQ) event.RegistrationEventProducer {
	producer, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

// InitAdmins 管理端账号白名单，只打会话标记，不落库
func InitAdmins() []string {
	type Config struct {
		Emails []string `yaml:"emails"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("admin", &cfg); err != nil {
		panic(err)
	}
	return cfg.Emails
}
