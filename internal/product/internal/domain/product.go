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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusOffShelf 下架
	StatusOffShelf Status = 1
	// StatusOnShelf 上架
	StatusOnShelf Status = 2
)

// MaxImages 每个商品最多三张图
const MaxImages = 3

type Product struct {
	Id   int64
	SN   string
	Name string
	// Price 单位为 fils，1 AED = 100 fils
	Price int64
	// Discount 折扣百分比，0 表示无折扣
	Discount    int64
	Stock       int64
	Description string
	// Images CDN 绝对路径，最多三张
	Images []string
	// Category 按值引用分类名称
	Category    string
	Subcategory string
	Status      Status
	Ctime       int64
	Utime       int64
}

// EffectivePrice 折后单价，向下取整
func (p Product) EffectivePrice() int64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price - p.Price*p.Discount/100
}
