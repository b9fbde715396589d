package http

import (
	"errors"
	"net/http"

	"myfood/internal/core/application/usecases"
	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/pkg/errs"
)

const (
	KindOrderNotFound          = "OrderNotFound"
	KindSlotNotFound           = "SlotNotFound"
	KindUserNotFound           = "UserNotFound"
	KindAlreadyConfirmed       = "AlreadyConfirmed"
	KindSlotFull               = "SlotFull"
	KindConfirmationInProgress = "ConfirmationInProgress"
	KindInvalidRequest         = "InvalidRequest"
	KindInternal               = "Internal"
)

// errorKinds is checked top to bottom; the first match wins.
var errorKinds = []struct {
	err    error
	kind   string
	status int
}{
	{usecases.ErrOrderNotFound, KindOrderNotFound, http.StatusBadRequest},
	{usecases.ErrUserNotFound, KindUserNotFound, http.StatusBadRequest},
	{usecases.ErrSlotNotFound, KindSlotNotFound, http.StatusBadRequest},
	{usecases.ErrAlreadyConfirmed, KindAlreadyConfirmed, http.StatusBadRequest},
	{usecases.ErrSlotFull, KindSlotFull, http.StatusBadRequest},
	{usecases.ErrConfirmationInProgress, KindConfirmationInProgress, http.StatusConflict},
	{commands.ErrConfirmationPairIsIncomplete, KindInvalidRequest, http.StatusBadRequest},
	{errs.ErrValueIsRequired, KindInvalidRequest, http.StatusBadRequest},
	{errs.ErrValueIsInvalid, KindInvalidRequest, http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, KindInvalidRequest, http.StatusBadRequest},
}

// errorResponse classifies err. Unknown errors are Internal.
func errorResponse(err error) (int, Error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.status, Error{Code: k.status, Kind: k.kind, Message: err.Error()}
		}
	}
	return http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: "internal server error",
	}
}

func invalidRequest(message string) Error {
	return Error{Code: http.StatusBadRequest, Kind: KindInvalidRequest, Message: message}
}
