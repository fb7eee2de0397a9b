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

package repository

import (
	"context"

	"github.com/barakatmart/barakat/internal/user/internal/domain"
	"github.com/barakatmart/barakat/internal/user/internal/repository/cache"
	"github.com/barakatmart/barakat/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Total(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id int64, role string) error
}

type CachedUserRepository struct {
	d      dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		d:      d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return repo.d.Insert(ctx, repo.toEntity(u))
}

func (repo *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	// 登录路径，不走缓存，要拿密文
	u, err := repo.d.FindByEmail(ctx, email)
	return repo.toDomain(u), err
}

func (repo *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.cache.Get(ctx, id)
	if err == nil && u.Id > 0 {
		return u, nil
	}
	ue, err := repo.d.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	res := repo.toDomain(ue)
	// 缓存里面不放密码
	res.Password = ""
	if er := repo.cache.Set(ctx, res); er != nil {
		repo.logger.Error("缓存用户信息失败",
			elog.Int64("uid", id), elog.FieldErr(er))
	}
	return res, nil
}

func (repo *CachedUserRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	us, err := repo.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		res := repo.toDomain(src)
		res.Password = ""
		return res
	}), nil
}

func (repo *CachedUserRepository) Total(ctx context.Context) (int64, error) {
	return repo.d.Count(ctx)
}

func (repo *CachedUserRepository) UpdateRole(ctx context.Context, id int64, role string) error {
	err := repo.d.UpdateRole(ctx, id, role)
	if err != nil {
		return err
	}
	// 角色变了，缓存里的旧数据必须失效
	if er := repo.cache.Delete(ctx, id); er != nil {
		repo.logger.Error("删除用户缓存失败",
			elog.Int64("uid", id), elog.FieldErr(er))
	}
	return nil
}

func (repo *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		SN:       u.SN,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
	}
}

func (repo *CachedUserRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		SN:       u.SN,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Role:     u.Role,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}
