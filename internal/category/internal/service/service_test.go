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

	"github.com/barakatmart/barakat/internal/category/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepository struct {
	created []domain.Category
	nextID  int64
}

func (f *fakeCategoryRepository) Create(_ context.Context, c domain.Category) (int64, error) {
	f.nextID++
	f.created = append(f.created, c)
	return f.nextID, nil
}

func (f *fakeCategoryRepository) Update(_ context.Context, _ domain.Category) error {
	return nil
}

func (f *fakeCategoryRepository) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeCategoryRepository) FindById(_ context.Context, id int64) (domain.Category, error) {
	if id >= 1 && id <= int64(len(f.created)) {
		return f.created[id-1], nil
	}
	return domain.Category{}, ErrCategoryNotFound
}

func (f *fakeCategoryRepository) List(_ context.Context) ([]domain.Category, error) {
	return []domain.Category{}, nil
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    domain.Category
		wantErr  error
		wantSubs []string
	}{
		{
			name: "创建成功_子分类去掉空白",
			input: domain.Category{
				Name:          " 乳制品 ",
				Subcategories: []string{" 牛奶 ", "酸奶", "  "},
			},
			wantSubs: []string{"牛奶", "酸奶"},
		},
		{
			name: "名称为空白",
			input: domain.Category{
				Name:          "   ",
				Subcategories: []string{"牛奶"},
			},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "没有有效子分类",
			input: domain.Category{
				Name:          "乳制品",
				Subcategories: []string{"  ", ""},
			},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "子分类超过上限",
			input: domain.Category{
				Name: "乳制品",
				Subcategories: []string{
					"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k",
				},
			},
			wantErr: ErrInvalidCategory,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := &fakeCategoryRepository{}
			svc := NewService(repo)
			id, err := svc.Create(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, id)
			require.Len(t, repo.created, 1)
			assert.Equal(t, tc.wantSubs, repo.created[0].Subcategories)
		})
	}
}

func TestService_FindById(t *testing.T) {
	t.Parallel()
	repo := &fakeCategoryRepository{}
	svc := NewService(repo)
	id, err := svc.Create(context.Background(), domain.Category{
		Name:          "水果",
		Subcategories: []string{"苹果", "柑橘"},
	})
	require.NoError(t, err)

	c, err := svc.FindById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "水果", c.Name)
	assert.Equal(t, []string{"苹果", "柑橘"}, c.Subcategories)

	_, err = svc.FindById(context.Background(), id+1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
