package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserDuplicateEmail = ErrorCode{Code: 501002, Msg: "该邮箱已经注册"}
	InvalidCredentials = ErrorCode{Code: 501003, Msg: "邮箱或密码不正确"}
	InvalidInput       = ErrorCode{Code: 501004, Msg: "参数合法性验证失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
