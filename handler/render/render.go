package render

import (
	"encoding/json"
	"net/http"

	"morpho/core"

	"github.com/sirupsen/logrus"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorln(err)
	}
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(H{"code": errCode, "msg": err.Error()}); err != nil {
		logrus.Errorln(err)
	}
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, -1, err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, -1, err)
}

// Code write a domain error with its code, mapping not-found codes to 404
func Code(w http.ResponseWriter, err error) {
	code, ok := err.(core.ErrorCode)
	if !ok {
		Error(w, http.StatusInternalServerError, int(core.ErrUnknown), err)
		return
	}

	status := http.StatusBadRequest
	if code == core.ErrMarketNotFound || code == core.ErrPositionNotFound {
		status = http.StatusNotFound
	}

	Error(w, status, int(code), err)
}
