package errs

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// ErrResponse is used as the response body when an error occurs.
type ErrResponse struct {
	Error ServiceError `json:"error"`
}

// ServiceError carries the error details sent to the client.
type ServiceError struct {
	Kind    string `json:"kind,omitempty"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`
}

// HTTPErrorResponse takes a writer, logger and error, maps the error
// kind to an HTTP status code, logs the error and writes a JSON error
// response body.
func HTTPErrorResponse(w http.ResponseWriter, logger zerolog.Logger, err error) {
	if err == nil {
		nilErrorResponse(w, logger)
		return
	}

	var e *Error
	if errors.As(err, &e) {
		typicalErrorResponse(w, logger, e)
		return
	}

	unknownErrorResponse(w, logger, err)
}

func httpErrorStatusCode(k Kind) int {
	switch k {
	case Exist, NotExist:
		return http.StatusNotFound
	case Invalid, Validation, InvalidRequest:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Unauthorized:
		return http.StatusForbidden
	case Other, IO, Private, Internal, Database:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func typicalErrorResponse(w http.ResponseWriter, logger zerolog.Logger, e *Error) {
	httpStatusCode := httpErrorStatusCode(e.Kind)

	if e.isZero() {
		logger.Error().Stack().Int("http_statuscode", httpStatusCode).Msg("empty error")
		sendError(w, "", httpStatusCode)
		return
	}

	logger.Error().Stack().Err(e.Err).
		Int("http_statuscode", httpStatusCode).
		Str("Kind", e.Kind.String()).
		Str("Parameter", string(e.Param)).
		Str("Code", string(e.Code)).
		Msg("error response sent to client")

	errResponse := ErrResponse{
		Error: ServiceError{
			Kind:    e.Kind.String(),
			Code:    string(e.Code),
			Param:   string(e.Param),
			Message: e.Error(),
		},
	}

	errJSON, marshalErr := json.Marshal(errResponse)
	if marshalErr != nil {
		logger.Error().Err(marshalErr).Msg("marshalling error response")
		sendError(w, "", httpStatusCode)
		return
	}

	sendError(w, string(errJSON), httpStatusCode)
}

// nilErrorResponse handles a nil error passed to HTTPErrorResponse.
// Should never happen, but a nil error must not take the server down.
func nilErrorResponse(w http.ResponseWriter, logger zerolog.Logger) {
	logger.Error().Stack().
		Int("HTTP Error StatusCode", http.StatusInternalServerError).
		Msg("nil error - no response body sent")

	w.WriteHeader(http.StatusInternalServerError)
}

// unknownErrorResponse handles errors that are not of our *Error type.
func unknownErrorResponse(w http.ResponseWriter, logger zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("unknown error")

	errResponse := ErrResponse{
		Error: ServiceError{
			Kind:    Other.String(),
			Message: err.Error(),
		},
	}

	errJSON, marshalErr := json.Marshal(errResponse)
	if marshalErr != nil {
		logger.Error().Err(marshalErr).Msg("marshalling error response")
		sendError(w, "", http.StatusInternalServerError)
		return
	}

	sendError(w, string(errJSON), http.StatusInternalServerError)
}

// sendError mirrors http.Error, but with a JSON content type.
func sendError(w http.ResponseWriter, body string, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if body != "" {
		_, _ = w.Write([]byte(body))
	}
}
