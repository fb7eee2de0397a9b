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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/barakatmart/barakat/internal/order"
	"github.com/barakatmart/barakat/internal/order/internal/domain"
	"github.com/barakatmart/barakat/internal/order/internal/errs"
	"github.com/barakatmart/barakat/internal/order/internal/integration/startup"
	"github.com/barakatmart/barakat/internal/order/internal/repository/dao"
	"github.com/barakatmart/barakat/internal/order/internal/web"
	"github.com/barakatmart/barakat/internal/product"
	productmocks "github.com/barakatmart/barakat/internal/product/mocks"
	"github.com/barakatmart/barakat/internal/test"
	testioc "github.com/barakatmart/barakat/internal/test/ioc"
	"github.com/barakatmart/barakat/ioc"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testUID  = int64(234)
	otherUID = int64(235)
	adminUID = int64(236)
)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
	dao         dao.OrderDAO
	cache       ecache.Cache
	module      *order.Module
	svc         order.Service
	ctrl        *gomock.Controller
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())

	module, err := startup.InitModule(s.getProductMockService())
	require.NoError(s.T(), err)
	s.module = module
	s.svc = module.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	// 管理端路由挂在独立服务上,会话带 admin 标记
	adminServer := egin.Load("server").Build()
	adminServer.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  adminUID,
			Data: map[string]string{"role": "admin"},
		}))
	})
	module.AdminHdl.PrivateRoutes(adminServer.Engine)
	module.Hdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer

	s.db = testioc.InitDB()
	err = dao.InitTables(s.db)
	require.NoError(s.T(), err)
	s.dao = dao.NewOrderGORMDAO(s.db)
	s.cache = testioc.InitCache()
}

func (s *OrderModuleTestSuite) getProductMockService() *productmocks.MockService {
	mockedProductSvc := productmocks.NewMockService(s.ctrl)
	products := map[string]product.Product{
		"SN-apple": {
			Id:       100,
			SN:       "SN-apple",
			Name:     "苹果",
			Price:    500,
			Discount: 0,
			Stock:    10,
			Images:   []string{"apple.png"},
			Category: "水果",
			Status:   product.StatusOnShelf,
		},
		"SN-milk": {
			Id:       101,
			SN:       "SN-milk",
			Name:     "牛奶",
			Price:    1000,
			Discount: 10,
			Stock:    5,
			Images:   []string{"milk.png"},
			Category: "乳制品",
			Status:   product.StatusOnShelf,
		},
	}
	mockedProductSvc.EXPECT().FindBySN(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sn string) (product.Product, error) {
			p, ok := products[sn]
			if !ok {
				return product.Product{}, errors.New("商品SN非法")
			}
			return p, nil
		}).AnyTimes()
	return mockedProductSvc
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `order_items`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("DROP TABLE `order_status_logs`").Error
	require.NoError(s.T(), err)

	s.ctrl.Finish()
}

func (s *OrderModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `orders`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_items`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `order_status_logs`").Error
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) validUserInfo() web.UserInfo {
	return web.UserInfo{
		Name:    "张三",
		Address: "迪拜国际城 中国区 A栋 101",
		Phone:   "0501234567",
	}
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder() {
	t := s.T()

	testCases := []struct {
		name     string
		req      web.CreateOrderReq
		wantCode int
		after    func(t *testing.T, resp test.Result[web.CreateOrderResp])
	}{
		{
			name: "创建成功_总价按折后快照价计算",
			req: web.CreateOrderReq{
				RequestID: "req-create-1",
				Items: []web.CreateOrderItem{
					{ProductSN: "SN-apple", Quantity: 2},
					{ProductSN: "SN-milk", Quantity: 1},
				},
				UserInfo:      s.validUserInfo(),
				PaymentMethod: "cod",
			},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, "pending", resp.Data.Status)
				// 苹果 500*2 + 牛奶 1000*90%
				assert.Equal(t, int64(1900), resp.Data.TotalPrice)
				require.NotEmpty(t, resp.Data.OrderSN)

				created, err := s.dao.FindByBuyerAndSN(context.Background(), testUID, resp.Data.OrderSN)
				require.NoError(t, err)
				assert.Equal(t, uint8(1), created.Status)
				assert.Equal(t, int64(1900), created.TotalPrice)
				assert.Equal(t, "cod", created.PaymentMethod)
				assert.Equal(t, "张三", created.BuyerName)

				items, err := s.dao.FindItemsByOrderId(context.Background(), created.Id)
				require.NoError(t, err)
				require.Len(t, items, 2)
				assert.Equal(t, "苹果", items[0].Name)
				assert.Equal(t, int64(500), items[0].UnitPrice)
				assert.Equal(t, int64(900), items[1].UnitPrice)

				logs, err := s.dao.FindStatusLogsByOrderId(context.Background(), created.Id)
				require.NoError(t, err)
				require.Len(t, logs, 1)
				assert.Equal(t, uint8(1), logs[0].Status)
				assert.Equal(t, testUID, logs[0].Operator)
			},
		},
		{
			name: "未知商品被丢弃_其余正常下单",
			req: web.CreateOrderReq{
				RequestID: "req-create-2",
				Items: []web.CreateOrderItem{
					{ProductSN: "SN-apple", Quantity: 1},
					{ProductSN: "SN-unknown", Quantity: 3},
				},
				UserInfo:      s.validUserInfo(),
				PaymentMethod: "cod",
			},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, int64(500), resp.Data.TotalPrice)
				created, err := s.dao.FindByBuyerAndSN(context.Background(), testUID, resp.Data.OrderSN)
				require.NoError(t, err)
				items, err := s.dao.FindItemsByOrderId(context.Background(), created.Id)
				require.NoError(t, err)
				require.Len(t, items, 1)
				assert.Equal(t, "SN-apple", items[0].ProductSN)
			},
		},
		{
			name: "全部商品不存在",
			req: web.CreateOrderReq{
				RequestID: "req-create-3",
				Items: []web.CreateOrderItem{
					{ProductSN: "SN-unknown", Quantity: 1},
				},
				UserInfo:      s.validUserInfo(),
				PaymentMethod: "cod",
			},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.InvalidOrder.Code, resp.Code)
			},
		},
		{
			name: "购买数量超过库存",
			req: web.CreateOrderReq{
				RequestID: "req-create-4",
				Items: []web.CreateOrderItem{
					{ProductSN: "SN-milk", Quantity: 6},
				},
				UserInfo:      s.validUserInfo(),
				PaymentMethod: "cod",
			},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.InvalidOrder.Code, resp.Code)
			},
		},
		{
			name: "不支持的支付方式",
			req: web.CreateOrderReq{
				RequestID: "req-create-5",
				Items: []web.CreateOrderItem{
					{ProductSN: "SN-apple", Quantity: 1},
				},
				UserInfo:      s.validUserInfo(),
				PaymentMethod: "card",
			},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.InvalidOrder.Code, resp.Code)
			},
		},
		{
			name: "收货信息不完整",
			req: web.CreateOrderReq{
				RequestID: "req-create-6",
				Items: []web.CreateOrderItem{
					{ProductSN: "SN-apple", Quantity: 1},
				},
				UserInfo: web.UserInfo{
					Name: "张三",
				},
				PaymentMethod: "cod",
			},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.CreateOrderResp]) {
				assert.Equal(t, errs.InvalidOrder.Code, resp.Code)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/api/orders", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder_DuplicateRequestID() {
	t := s.T()
	req := web.CreateOrderReq{
		RequestID: "req-dup-1",
		Items: []web.CreateOrderItem{
			{ProductSN: "SN-apple", Quantity: 1},
		},
		UserInfo:      s.validUserInfo(),
		PaymentMethod: "cod",
	}

	first, err := http.NewRequest(http.MethodPost, "/api/orders", iox.NewJSONReader(req))
	require.NoError(t, err)
	first.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, first)
	require.Equal(t, 200, recorder.Code)

	second, err := http.NewRequest(http.MethodPost, "/api/orders", iox.NewJSONReader(req))
	require.NoError(t, err)
	second.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder2, second)
	assert.Equal(t, 500, recorder2.Code)

	total, err := s.dao.CountByBuyer(context.Background(), testUID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func (s *OrderModuleTestSuite) createTestOrder(t *testing.T, buyerID int64, sn string) domain.Order {
	created, err := s.svc.CreateOrder(context.Background(), domain.Order{
		SN:      sn,
		BuyerId: buyerID,
		UserInfo: domain.UserInfo{
			Name:    "张三",
			Address: "迪拜国际城 中国区 A栋 101",
			Phone:   "0501234567",
		},
		Items: []domain.OrderItem{
			{ProductId: 100, ProductSN: "SN-apple", Name: "苹果", UnitPrice: 500, Quantity: 2},
		},
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)
	return created
}

func (s *OrderModuleTestSuite) TestHandler_ListMine() {
	t := s.T()
	for i := 0; i < 3; i++ {
		s.createTestOrder(t, testUID, fmt.Sprintf("orderSN-mine-%d", i))
	}
	s.createTestOrder(t, otherUID, "orderSN-other-1")

	req, err := http.NewRequest(http.MethodGet, "/api/orders/my-orders?offset=0&limit=2", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan()
	assert.Equal(t, int64(3), resp.Data.Total)
	require.Len(t, resp.Data.Orders, 2)
	for _, o := range resp.Data.Orders {
		assert.Equal(t, testUID, o.BuyerId)
		assert.Equal(t, "pending", o.Status)
		require.Len(t, o.Items, 1)
		assert.Equal(t, int64(1000), o.TotalPrice)
	}
}

func (s *OrderModuleTestSuite) TestHandler_Detail() {
	t := s.T()
	s.createTestOrder(t, testUID, "orderSN-detail-1")
	s.createTestOrder(t, otherUID, "orderSN-detail-2")

	testCases := []struct {
		name     string
		sn       string
		admin    bool
		wantCode int
		after    func(t *testing.T, resp test.Result[web.Order])
	}{
		{
			name:     "买家查看自己的订单",
			sn:       "orderSN-detail-1",
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.Order]) {
				assert.Equal(t, "orderSN-detail-1", resp.Data.SN)
				assert.Equal(t, "pending", resp.Data.Status)
				require.Len(t, resp.Data.StatusLogs, 1)
				assert.Equal(t, "pending", resp.Data.StatusLogs[0].Status)
			},
		},
		{
			name:     "买家查看他人订单被拒绝",
			sn:       "orderSN-detail-2",
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.Order]) {
				assert.Equal(t, errs.Forbidden.Code, resp.Code)
			},
		},
		{
			name:     "管理员查看任意订单",
			sn:       "orderSN-detail-2",
			admin:    true,
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.Order]) {
				assert.Equal(t, "orderSN-detail-2", resp.Data.SN)
				assert.Equal(t, otherUID, resp.Data.BuyerId)
			},
		},
		{
			name:     "订单不存在",
			sn:       "orderSN-missing",
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[web.Order]) {
				assert.Equal(t, errs.OrderNotFound.Code, resp.Code)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/orders/detail/"+tc.sn, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Order]()
			if tc.admin {
				s.adminServer.ServeHTTP(recorder, req)
			} else {
				s.server.ServeHTTP(recorder, req)
			}
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

// 登录校验和管理端权限校验都在服务器中间件上,
// 单独起服务器走一遍完整的拦截链路
func (s *OrderModuleTestSuite) TestHandler_CreateOrder_Unauthenticated() {
	t := s.T()

	server := egin.Load("server").Build()
	server.Use(session.CheckLoginMiddleware())
	s.module.Hdl.PrivateRoutes(server.Engine)

	req, err := http.NewRequest(http.MethodPost,
		"/api/orders", iox.NewJSONReader(web.CreateOrderReq{
			RequestID:     "request-anon-1",
			Items:         []web.CreateOrderItem{{ProductSN: "SN-apple", Quantity: 1}},
			UserInfo:      web.UserInfo{Name: "张三", Address: "迪拜国际城", Phone: "0501234567"},
			PaymentMethod: "cod",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func (s *OrderModuleTestSuite) TestAdminHandler_ForbiddenForNormalUser() {
	t := s.T()

	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	server.Use(ioc.AdminPermission())
	s.module.AdminHdl.PrivateRoutes(server.Engine)

	req, err := http.NewRequest(http.MethodPost,
		"/orders/list", iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func (s *OrderModuleTestSuite) TestAdminHandler_List() {
	t := s.T()
	s.createTestOrder(t, testUID, "orderSN-admin-list-1")
	s.createTestOrder(t, otherUID, "orderSN-admin-list-2")

	req, err := http.NewRequest(http.MethodPost,
		"/orders/list", iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan()
	assert.Equal(t, int64(2), resp.Data.Total)
	assert.Len(t, resp.Data.Orders, 2)
}

func (s *OrderModuleTestSuite) TestAdminHandler_UpdateStatus() {
	t := s.T()

	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.UpdateStatusReq
		wantCode int
		after    func(t *testing.T, resp test.Result[any])
	}{
		{
			name: "直接置为已发货_留下审计日志",
			before: func(t *testing.T) {
				s.createTestOrder(t, testUID, "orderSN-status-1")
			},
			req:      web.UpdateStatusReq{SN: "orderSN-status-1", Status: "shipped"},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[any]) {
				assert.Equal(t, "OK", resp.Msg)
				o, err := s.dao.FindBySN(context.Background(), "orderSN-status-1")
				require.NoError(t, err)
				assert.Equal(t, uint8(4), o.Status)
				logs, err := s.dao.FindStatusLogsByOrderId(context.Background(), o.Id)
				require.NoError(t, err)
				require.Len(t, logs, 2)
				assert.Equal(t, uint8(4), logs[1].Status)
				assert.Equal(t, adminUID, logs[1].Operator)
			},
		},
		{
			name: "已送达之后仍可改回处理中",
			before: func(t *testing.T) {
				s.createTestOrder(t, testUID, "orderSN-status-2")
				err := s.dao.UpdateStatus(context.Background(), "orderSN-status-2", 5, adminUID)
				require.NoError(t, err)
			},
			req:      web.UpdateStatusReq{SN: "orderSN-status-2", Status: "processing"},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[any]) {
				o, err := s.dao.FindBySN(context.Background(), "orderSN-status-2")
				require.NoError(t, err)
				assert.Equal(t, uint8(3), o.Status)
				logs, err := s.dao.FindStatusLogsByOrderId(context.Background(), o.Id)
				require.NoError(t, err)
				require.Len(t, logs, 3)
			},
		},
		{
			name:     "非法状态",
			before:   func(t *testing.T) {},
			req:      web.UpdateStatusReq{SN: "orderSN-whatever", Status: "refunded"},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[any]) {
				assert.Equal(t, errs.InvalidOrder.Code, resp.Code)
			},
		},
		{
			name:     "订单不存在",
			before:   func(t *testing.T) {},
			req:      web.UpdateStatusReq{SN: "orderSN-missing", Status: "confirmed"},
			wantCode: 200,
			after: func(t *testing.T, resp test.Result[any]) {
				assert.Equal(t, errs.OrderNotFound.Code, resp.Code)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/orders/status", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.adminServer.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.after(t, recorder.MustScan())
		})
	}
}

// 并发变更同一订单,最后写入者胜出,但每次变更都要留下日志
func (s *OrderModuleTestSuite) TestService_ConcurrentStatusUpdates() {
	t := s.T()
	sn := "orderSN-concurrent-1"
	s.createTestOrder(t, testUID, sn)

	statuses := []order.Status{order.StatusShipped, order.StatusCancelled}
	var wg sync.WaitGroup
	for _, st := range statuses {
		wg.Add(1)
		go func(st order.Status) {
			defer wg.Done()
			assert.NoError(t, s.svc.UpdateStatus(context.Background(), sn, st, adminUID))
		}(st)
	}
	wg.Wait()

	ord, err := s.svc.FindBySN(context.Background(), sn)
	require.NoError(t, err)
	assert.Contains(t, statuses, ord.Status)
	// 初始 pending 一条,两次并发变更各一条
	require.Len(t, ord.StatusLogs, 3)
	for _, lg := range ord.StatusLogs[1:] {
		assert.Equal(t, adminUID, lg.Operator)
	}
}

func (s *OrderModuleTestSuite) TestAdminHandler_Delete() {
	t := s.T()
	created := s.createTestOrder(t, testUID, "orderSN-delete-1")

	req, err := http.NewRequest(http.MethodPost,
		"/orders/delete", iox.NewJSONReader(web.OrderSNReq{SN: "orderSN-delete-1"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "OK", recorder.MustScan().Msg)

	_, err = s.dao.FindBySN(context.Background(), "orderSN-delete-1")
	assert.ErrorIs(t, err, dao.ErrDataNotFound)
	items, err := s.dao.FindItemsByOrderId(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Empty(t, items)
	logs, err := s.dao.FindStatusLogsByOrderId(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Empty(t, logs)

	// 重复删除
	req2, err := http.NewRequest(http.MethodPost,
		"/orders/delete", iox.NewJSONReader(web.OrderSNReq{SN: "orderSN-delete-1"}))
	require.NoError(t, err)
	req2.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder2, req2)
	require.Equal(t, 200, recorder2.Code)
	assert.Equal(t, errs.OrderNotFound.Code, recorder2.MustScan().Code)
}
