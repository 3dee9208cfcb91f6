package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"investment-engine/service"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeRequest enforces POST + JSON, decodes the body into dst and runs
// struct validation. It writes the error response itself and reports
// whether the handler should continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any, logger *zap.Logger) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", logger)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Debug("invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid request body", logger)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err), logger)
		return false
	}

	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// writeServiceError maps input errors to 400 and everything else to 500.
func writeServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if service.IsInvalidInput(err) {
		writeError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}
	logger.Error("calculation failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}

func writeError(w http.ResponseWriter, status int, msg string, logger *zap.Logger) {
	writeJSON(w, status, errorResponse{Error: msg}, logger)
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, status int, v any, logger *zap.Logger) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("error writing response", zap.Error(err))
	}
}
