package errs

var (
	SystemError   = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidOrder  = ErrorCode{Code: 504002, Msg: "订单信息非法"}
	OrderNotFound = ErrorCode{Code: 504003, Msg: "订单不存在"}
	Forbidden     = ErrorCode{Code: 504004, Msg: "无权访问该订单"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
