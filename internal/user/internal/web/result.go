package web

import (
	"github.com/barakatmart/barakat/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.UserDuplicateEmail.Code,
		Msg:  errs.UserDuplicateEmail.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
