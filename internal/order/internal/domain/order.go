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

package domain

import "fmt"

type Status uint8

const (
	StatusPending    Status = 1
	StatusConfirmed  Status = 2
	StatusProcessing Status = 3
	StatusShipped    Status = 4
	StatusDelivered  Status = 5
	StatusCancelled  Status = 6
)

var statusNames = map[Status]string{
	StatusPending:    "pending",
	StatusConfirmed:  "confirmed",
	StatusProcessing: "processing",
	StatusShipped:    "shipped",
	StatusDelivered:  "delivered",
	StatusCancelled:  "cancelled",
}

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// String 对外一律用字符串表示,库里存 uint8
func (s Status) String() string {
	return statusNames[s]
}

func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("未知的订单状态: %q", name)
}

// PaymentMethodCOD 目前只支持货到付款
const PaymentMethodCOD = "cod"

type Order struct {
	Id            int64
	SN            string
	BuyerId       int64
	UserInfo      UserInfo
	Items         []OrderItem
	TotalPrice    int64
	PaymentMethod string
	Status        Status
	StatusLogs    []StatusLog
	Ctime         int64
	Utime         int64
}

// OrderItem 下单时从商品目录快照,此后不再随商品变动
type OrderItem struct {
	ProductId int64
	ProductSN string
	Name      string
	Image     string
	UnitPrice int64
	Quantity  int64
}

// UserInfo 收货信息快照
type UserInfo struct {
	Name    string
	Address string
	Phone   string
}

// StatusLog 状态变更审计记录,只追加不修改
type StatusLog struct {
	Status   Status
	Operator int64
	Ctime    int64
}
