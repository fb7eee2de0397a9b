package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "系统错误"}
	InvalidProduct  = ErrorCode{Code: 502002, Msg: "商品信息非法"}
	ProductNotFound = ErrorCode{Code: 502003, Msg: "商品不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
