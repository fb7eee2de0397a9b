package web

import (
	"github.com/barakatmart/barakat/internal/product/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidProductResult = ginx.Result{
		Code: errs.InvalidProduct.Code,
		Msg:  errs.InvalidProduct.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
)
