package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	"github.com/mnmsi/Lara-api/utils/errors"
	"github.com/mnmsi/Lara-api/utils/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, res any) {
	writeJSON(w, http.StatusOK, res)
}

// writeError renders err in the error envelope. Anything that is not a
// CustomError is reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), model.Failure(ce.Error()))
}
