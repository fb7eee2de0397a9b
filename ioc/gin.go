package ioc

import (
	"net/http"
	"strings"

	"github.com/barakatmart/barakat/internal/category"
	"github.com/barakatmart/barakat/internal/order"
	"github.com/barakatmart/barakat/internal/product"
	"github.com/barakatmart/barakat/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	categoryHdl *category.Handler,
	productHdl *product.Handler,
	orderHdl *order.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "barakatmart.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	categoryHdl.PublicRoutes(res.Engine)
	productHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	return res
}
