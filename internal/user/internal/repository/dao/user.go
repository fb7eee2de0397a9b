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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 邮箱撞了唯一索引
var ErrUserDuplicate = errors.New("用户已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id int64, role string) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := ud.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}

func (ud *GORMUserDAO) UpdateRole(ctx context.Context, id int64, role string) error {
	res := ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"role":  role,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

type User struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	SN    string `gorm:"type:varchar(256);unique"`
	Name  string `gorm:"type:varchar(256);not null"`
	Email string `gorm:"type:varchar(256);not null;uniqueIndex:uniq_user_email"`
	// bcrypt 密文
	Password string `gorm:"type:varchar(256);not null"`
	Role     string `gorm:"type:varchar(32);not null;default:user;comment:角色 user/admin"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
