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
	"testing"

	"github.com/barakatmart/barakat/internal/user/internal/domain"
	"github.com/barakatmart/barakat/internal/user/internal/event"
	"github.com/barakatmart/barakat/internal/user/internal/repository"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users  map[string]domain.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]domain.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, u domain.User) (int64, error) {
	if _, ok := f.users[u.Email]; ok {
		return 0, ErrUserDuplicate
	}
	f.nextID++
	u.Id = f.nextID
	f.users[u.Email] = u
	return u.Id, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) FindById(_ context.Context, id int64) (domain.User, error) {
	for _, u := range f.users {
		if u.Id == id {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepository) List(_ context.Context, _, _ int) ([]domain.User, error) {
	return []domain.User{}, nil
}

func (f *fakeUserRepository) Total(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepository) UpdateRole(_ context.Context, id int64, role string) error {
	for email, u := range f.users {
		if u.Id == id {
			u.Role = role
			f.users[email] = u
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func newTestProducer(t *testing.T) event.RegistrationEventProducer {
	t.Helper()
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), event.RegistrationEventName, 1)
	require.NoError(t, err)
	p, err := event.NewRegistrationEventProducer(q)
	require.NoError(t, err)
	return p
}

func TestUserService_Register(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, newTestProducer(t))

	u, err := svc.Register(context.Background(), domain.User{
		Name:     "张三",
		Email:    "zhangsan@example.com",
		Password: "hello#world123",
		// 客户端传什么角色都不认
		Role: domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotZero(t, u.Id)
	assert.NotEmpty(t, u.SN)
	assert.Equal(t, domain.RoleUser, u.Role)
	// 返回值不带密码
	assert.Empty(t, u.Password)

	// 库里存的是 bcrypt 摘要
	stored := repo.users["zhangsan@example.com"]
	assert.NotEqual(t, "hello#world123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hello#world123")))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, newTestProducer(t))

	_, err := svc.Register(context.Background(), domain.User{
		Name:     "张三",
		Email:    "zhangsan@example.com",
		Password: "hello#world123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), domain.User{
		Name:     "李四",
		Email:    "zhangsan@example.com",
		Password: "another#pass456",
	})
	assert.ErrorIs(t, err, ErrUserDuplicate)
}

func TestUserService_Login(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo, newTestProducer(t))

	_, err := svc.Register(context.Background(), domain.User{
		Name:     "张三",
		Email:    "zhangsan@example.com",
		Password: "hello#world123",
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "登录成功", email: "zhangsan@example.com", password: "hello#world123"},
		{name: "密码错误", email: "zhangsan@example.com", password: "wrong#pass", wantErr: ErrInvalidCredentials},
		// 未注册和密码错误对外不可区分
		{name: "邮箱未注册", email: "nobody@example.com", password: "hello#world123", wantErr: ErrInvalidCredentials},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			u, err := svc.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.email, u.Email)
			assert.Empty(t, u.Password)
		})
	}
}
