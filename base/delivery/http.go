package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensagent/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorBody is the data of a failed response
type ErrorBody struct {
	Code             domain.ErrorKind       `json:"code"`
	Message          string                 `json:"message"`
	RemainingSeconds int64                  `json:"remainingSeconds,omitempty"`
	Debug            map[string]interface{} `json:"debug,omitempty"`
}

// StatusOf is the http status of an error kind
func StatusOf(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingParam,
		domain.KindInvalidParam,
		domain.KindUnsupportedNetwork,
		domain.KindCommitmentNotFound,
		domain.KindCommitmentTooNew,
		domain.KindCommitmentExpired,
		domain.KindCommitmentMismatch,
		domain.KindSimulationFailed,
		domain.KindNotOwner:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindSessionExpired,
		domain.KindTokenNotFound,
		domain.KindNotRegistered,
		domain.KindNoPrimaryName:
		return http.StatusNotFound
	case domain.KindSessionBusy:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorBody renders err for callers, internal causes are not exposed
func ToErrorBody(err error) ErrorBody {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return ErrorBody{Code: domain.KindInternal, Message: err.Error()}
	}
	msg := derr.Message
	if derr.Kind == domain.KindInternal || msg == "" {
		msg = derr.Error()
	}
	return ErrorBody{
		Code:             derr.Kind,
		Message:          msg,
		RemainingSeconds: derr.RemainingSeconds,
		Debug:            derr.Debug,
	}
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		var derr *domain.Error
		if errors.As(err, &derr) {
			status = StatusOf(derr.Kind)
		} else if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = ToErrorBody(err)
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
