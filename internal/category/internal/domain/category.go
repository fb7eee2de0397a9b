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

const (
	// MinSubcategories 每个分类至少一个子分类
	MinSubcategories = 1
	// MaxSubcategories 每个分类最多十个子分类
	MaxSubcategories = 10
)

type Category struct {
	Id   int64
	Name string
	// Subcategories 有序，商品按值引用其中某一项
	Subcategories []string
	Ctime         int64
	Utime         int64
}
