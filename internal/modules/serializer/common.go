package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every handler returns. Msg carries the
// user-facing outcome; Error carries diagnostic detail in non-release
// mode only.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err builds an error response.
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr covers internal/storage failures.
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr covers malformed or missing input.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr covers missing or invalid authentication.
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// ForbiddenErr covers authenticated callers without sufficient rights.
func ForbiddenErr(msg string) Response {
	if msg == "" {
		msg = "insufficient permissions"
	}
	return Err(http.StatusForbidden, msg, nil)
}

// NotFoundErr covers rows that are absent or out of the caller's scope;
// the two causes are deliberately indistinguishable.
func NotFoundErr(msg string) Response {
	if msg == "" {
		msg = "not found or not authorized"
	}
	return Err(http.StatusNotFound, msg, nil)
}

// ConflictErr covers uniqueness violations (duplicate email, duplicate
// task type name).
func ConflictErr(msg string) Response {
	if msg == "" {
		msg = "already exists"
	}
	return Err(http.StatusConflict, msg, nil)
}
