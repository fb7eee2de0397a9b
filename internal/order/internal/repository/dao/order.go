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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

type OrderDAO interface {
	// Create 同一事务内写入订单、订单项和首条状态日志
	Create(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindByBuyerAndSN(ctx context.Context, buyerID int64, sn string) (Order, error)
	FindItemsByOrderId(ctx context.Context, oid int64) ([]OrderItem, error)
	FindItemsByOrderIds(ctx context.Context, oids []int64) ([]OrderItem, error)
	FindStatusLogsByOrderId(ctx context.Context, oid int64) ([]OrderStatusLog, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	// UpdateStatus 更新订单状态并追加一条状态日志
	UpdateStatus(ctx context.Context, sn string, status uint8, operator int64) error
	// Delete 硬删除订单及其订单项和状态日志
	Delete(ctx context.Context, sn string) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Create(&OrderStatusLog{
			OrderId:  o.Id,
			Status:   o.Status,
			Operator: o.BuyerId,
			Ctime:    now,
		}).Error
	})
	return o.Id, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (d *OrderGORMDAO) FindByBuyerAndSN(ctx context.Context, buyerID int64, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ? AND sn = ?", buyerID, sn).
		First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderId(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Find(&res, "order_id = ?", oid).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderIds(ctx context.Context, oids []int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Find(&res, "order_id IN ?", oids).Error
	return res, err
}

func (d *OrderGORMDAO) FindStatusLogsByOrderId(ctx context.Context, oid int64) ([]OrderStatusLog, error) {
	var res []OrderStatusLog
	err := d.db.WithContext(ctx).
		Order("id ASC").
		Find(&res, "order_id = ?", oid).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).
		Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, sn string, status uint8, operator int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.First(&o, "sn = ?", sn).Error; err != nil {
			return err
		}
		// 并发更新走最后写入,每次更新都留一条日志
		err := tx.Model(&Order{}).
			Where("id = ?", o.Id).
			Updates(map[string]any{
				"status": status,
				"utime":  now,
			}).Error
		if err != nil {
			return err
		}
		return tx.Create(&OrderStatusLog{
			OrderId:  o.Id,
			Status:   status,
			Operator: operator,
			Ctime:    now,
		}).Error
	})
}

func (d *OrderGORMDAO) Delete(ctx context.Context, sn string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.First(&o, "sn = ?", sn).Error; err != nil {
			return err
		}
		if err := tx.Delete(&Order{}, "id = ?", o.Id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&OrderItem{}, "order_id = ?", o.Id).Error; err != nil {
			return err
		}
		return tx.Delete(&OrderStatusLog{}, "order_id = ?", o.Id).Error
	})
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{}, &OrderStatusLog{})
}

type Order struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN            string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId       int64  `gorm:"not null;index:idx_buyer_id;comment:买家ID"`
	BuyerName     string `gorm:"type:varchar(255);not null;comment:收货人姓名"`
	BuyerAddress  string `gorm:"type:varchar(512);not null;comment:收货地址"`
	BuyerPhone    string `gorm:"type:varchar(64);not null;comment:联系电话"`
	TotalPrice    int64  `gorm:"not null;comment:订单总价;单位为费尔, 999表示9.99迪拉姆"`
	PaymentMethod string `gorm:"type:varchar(32);not null;comment:支付方式"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待处理 2=已确认 3=处理中 4=已发货 5=已送达 6=已取消"`
	Ctime         int64
	Utime         int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64  `gorm:"not null;comment:商品自增ID"`
	ProductSN string `gorm:"type:varchar(255);not null;comment:商品序列号"`
	Name      string `gorm:"type:varchar(255);not null;comment:下单时商品名称快照"`
	Image     string `gorm:"type:varchar(512);comment:下单时商品主图快照"`
	UnitPrice int64  `gorm:"not null;comment:下单时单价快照;单位为费尔"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}

// OrderStatusLog 只追加不修改
type OrderStatusLog struct {
	Id       int64 `gorm:"primaryKey;autoIncrement"`
	OrderId  int64 `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	Status   uint8 `gorm:"type:tinyint unsigned;not null;comment:变更后状态"`
	Operator int64 `gorm:"not null;comment:操作者用户ID"`
	Ctime    int64
}
