package web

// Category 前台导航和管理端共用的视图对象
type Category struct {
	Id            int64    `json:"id,omitempty"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
	Ctime         int64    `json:"ctime,omitempty"`
	Utime         int64    `json:"utime,omitempty"`
}

type SaveCategoryReq struct {
	Id            int64    `json:"id,omitempty"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

type SaveCategoryResp struct {
	Id int64 `json:"id"`
}

type DeleteCategoryReq struct {
	Id int64 `json:"id"`
}

type ListCategoriesResp struct {
	Categories []Category `json:"categories,omitempty"`
}
