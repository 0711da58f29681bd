package bizerror

import (
	"errors"
	"net/http"
	"strings"
)

var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("forbidden")
var ErrNotFound = errors.New("record not found")
var ErrRoleExisted = errors.New("role existed")
var ErrScopesRequired = errors.New("scopes are required")
var ErrUnknownResourceType = errors.New("unknown resource type")

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// ErrInvalidScopes reports every unresolvable scope slug of a request, in input order.
type ErrInvalidScopes struct {
	Slugs []string
}

func (e *ErrInvalidScopes) Error() string {
	return "The following scopes are invalid: " + strings.Join(e.Slugs, ", ")
}
func (e *ErrInvalidScopes) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "role.invalid_scopes", Message: e.Error(), Data: e.Slugs}
}
