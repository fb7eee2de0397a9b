package web

import (
	"github.com/barakatmart/barakat/internal/category/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCategoryResult = ginx.Result{
		Code: errs.InvalidCategory.Code,
		Msg:  errs.InvalidCategory.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.CategoryNotFound.Code,
		Msg:  errs.CategoryNotFound.Msg,
	}
)
