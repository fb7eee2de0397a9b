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

package web

// CreateOrderReq 创建订单请求
type CreateOrderReq struct {
	RequestID     string            `json:"requestID"` // 请求去重,防止订单重复提交
	Items         []CreateOrderItem `json:"items"`
	UserInfo      UserInfo          `json:"userInfo"`
	PaymentMethod string            `json:"paymentMethod"`
}

type CreateOrderItem struct {
	ProductSN string `json:"productSN"`
	Quantity  int64  `json:"quantity"`
}

type CreateOrderResp struct {
	OrderSN    string `json:"orderSN"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"totalPrice"`
}

type UserInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Order struct {
	SN            string      `json:"sn"`
	BuyerId       int64       `json:"buyerId,omitempty"`
	UserInfo      UserInfo    `json:"userInfo"`
	Items         []OrderItem `json:"items"`
	TotalPrice    int64       `json:"totalPrice"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        string      `json:"status"`
	StatusLogs    []StatusLog `json:"statusLogs,omitempty"`
	Ctime         int64       `json:"ctime"`
	Utime         int64       `json:"utime"`
}

type OrderItem struct {
	ProductSN string `json:"productSN"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type StatusLog struct {
	Status   string `json:"status"`
	Operator int64  `json:"operator"`
	Ctime    int64  `json:"ctime"`
}

// ListOrdersReq 管理端分页查询所有订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

// UpdateStatusReq 管理端变更订单状态
type UpdateStatusReq struct {
	SN     string `json:"sn"`
	Status string `json:"status"`
}
