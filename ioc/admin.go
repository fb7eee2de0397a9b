// Copyright 2024 barakatmart
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"net/http"
	"strings"

	"github.com/barakatmart/barakat/internal/category"
	"github.com/barakatmart/barakat/internal/order"
	"github.com/barakatmart/barakat/internal/product"
	"github.com/barakatmart/barakat/internal/user"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(userHdl *user.AdminHandler,
	categoryHdl *category.AdminHandler,
	productHdl *product.AdminHandler,
	orderHdl *order.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
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

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	userHdl.PrivateRoutes(res.Engine)
	categoryHdl.PrivateRoutes(res.Engine)
	productHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	return res
}

func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("role").StringOrDefault("") != user.RoleAdmin {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限")
			return
		}
	}
}
