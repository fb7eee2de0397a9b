package errs

var (
	SystemError      = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidCategory  = ErrorCode{Code: 503002, Msg: "分类信息非法"}
	CategoryNotFound = ErrorCode{Code: 503003, Msg: "分类不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
