package web

type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Id    int64  `json:"id,omitempty"`
	SN    string `json:"sn,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// ListUsersReq 管理端分页查询用户
type ListUsersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListUsersResp struct {
	Total int64     `json:"total,omitempty"`
	Users []Profile `json:"users,omitempty"`
}

// UpdateRoleReq 管理端显式授予/回收角色
type UpdateRoleReq struct {
	Uid  int64  `json:"uid"`
	Role string `json:"role"`
}
