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

type Product struct {
	Id       int64  `json:"id,omitempty"`
	SN       string `json:"sn"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Discount int64  `json:"discount,omitempty"`
	// EffectivePrice 折后价，前台展示用
	EffectivePrice int64    `json:"effectivePrice"`
	Stock          int64    `json:"stock"`
	Description    string   `json:"description,omitempty"`
	Images         []string `json:"images,omitempty"`
	Category       string   `json:"category"`
	Subcategory    string   `json:"subcategory,omitempty"`
	Status         uint8    `json:"status,omitempty"`
	Ctime          int64    `json:"ctime,omitempty"`
	Utime          int64    `json:"utime,omitempty"`
}

// ListProductsReq 前台按分类分页
type ListProductsReq struct {
	Category string `json:"category,omitempty"`
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

// SaveProductReq 管理端创建/更新商品
type SaveProductReq struct {
	Id          int64    `json:"id,omitempty"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Discount    int64    `json:"discount,omitempty"`
	Stock       int64    `json:"stock"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Status      uint8    `json:"status,omitempty"`
}

type SaveProductResp struct {
	Id int64 `json:"id"`
}

type DeleteProductReq struct {
	Id int64 `json:"id"`
}
