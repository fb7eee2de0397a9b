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
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id    int64
	SN    string
	Name  string
	Email string
	// Password 是 bcrypt 之后的密文，除登录校验外任何地方不允许往外传
	Password string
	Role     string
	Ctime    int64
	Utime    int64
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
