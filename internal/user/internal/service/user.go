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

package service

import (
	"context"
	"errors"

	"github.com/barakatmart/barakat/internal/user/internal/domain"
	"github.com/barakatmart/barakat/internal/user/internal/event"
	"github.com/barakatmart/barakat/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserDuplicate = repository.ErrUserDuplicate
	// ErrInvalidCredentials 刻意不区分邮箱不存在和密码不对
	ErrInvalidCredentials = errors.New("邮箱或密码不正确")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// Register 注册新用户，密码在这里做 bcrypt
	Register(ctx context.Context, u domain.User) (domain.User, error)
	// Login 校验邮箱和密码，成功返回用户（密码已抹掉）
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	UpdateRole(ctx context.Context, id int64, role string) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = string(hash)
	u.SN = shortuuid.New()
	// 注册只能拿到普通角色，admin 要通过管理端显式授予
	u.Role = domain.RoleUser
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	u.Password = ""

	// 发送注册成功消息，失败不影响注册结果
	evt := event.RegistrationEvent{Uid: id}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if er := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); er != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	var (
		eg    errgroup.Group
		us    []domain.User
		total int64
	)
	eg.Go(func() error {
		var err error
		us, err = svc.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Total(ctx)
		return err
	})
	return us, total, eg.Wait()
}

func (svc *userService) UpdateRole(ctx context.Context, id int64, role string) error {
	return svc.repo.UpdateRole(ctx, id, role)
}
