package web

import (
	"github.com/barakatmart/barakat/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidOrderResult = ginx.Result{
		Code: errs.InvalidOrder.Code,
		Msg:  errs.InvalidOrder.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
)
