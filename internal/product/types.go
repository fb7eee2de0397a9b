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

package product

import (
	"github.com/barakatmart/barakat/internal/product/internal/domain"
	"github.com/barakatmart/barakat/internal/product/internal/service"
	"github.com/barakatmart/barakat/internal/product/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Product = domain.Product

// Service 订单模块下单时反查商品快照
type Service = service.Service

const (
	StatusOffShelf = domain.StatusOffShelf
	StatusOnShelf  = domain.StatusOnShelf
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
