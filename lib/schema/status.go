// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "strconv"

// StatusCode is an HTTP-like status code reported by the list service.
// The named constants below are the closed set the service uses, but a
// StatusCode can hold any integer: classification is total.
type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusCreated             StatusCode = 201
	StatusNoContent           StatusCode = 204
	StatusNotModified         StatusCode = 304
	StatusBadRequest          StatusCode = 400
	StatusUnauthorized        StatusCode = 401
	StatusForbidden           StatusCode = 403
	StatusNotFound            StatusCode = 404
	StatusMethodNotAllowed    StatusCode = 405
	StatusConflict            StatusCode = 409
	StatusInternalServerError StatusCode = 500
	StatusBadGateway          StatusCode = 502
	StatusServiceUnavailable  StatusCode = 503
	StatusGatewayTimeout      StatusCode = 504
)

var statusNames = map[StatusCode]string{
	StatusOK:                  "OK",
	StatusCreated:             "CREATED",
	StatusNoContent:           "NO_CONTENT",
	StatusNotModified:         "NOT_MODIFIED",
	StatusBadRequest:          "BAD_REQUEST",
	StatusUnauthorized:        "UNAUTHORIZED",
	StatusForbidden:           "FORBIDDEN",
	StatusNotFound:            "NOT_FOUND",
	StatusMethodNotAllowed:    "METHOD_NOT_ALLOWED",
	StatusConflict:            "CONFLICT",
	StatusInternalServerError: "INTERNAL_SERVER_ERROR",
	StatusBadGateway:          "BAD_GATEWAY",
	StatusServiceUnavailable:  "SERVICE_UNAVAILABLE",
	StatusGatewayTimeout:      "GATEWAY_TIMEOUT",
}

// StatusCodes returns the closed set of status codes in ascending order.
func StatusCodes() []StatusCode {
	return []StatusCode{
		StatusOK, StatusCreated, StatusNoContent, StatusNotModified,
		StatusBadRequest, StatusUnauthorized, StatusForbidden, StatusNotFound,
		StatusMethodNotAllowed, StatusConflict, StatusInternalServerError,
		StatusBadGateway, StatusServiceUnavailable, StatusGatewayTimeout,
	}
}

// String returns the symbolic name ("NOT_FOUND") for codes in the
// closed set and the decimal number otherwise.
func (c StatusCode) String() string {
	if name, ok := statusNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Known reports whether c is one of the named status codes.
func (c StatusCode) Known() bool {
	_, ok := statusNames[c]
	return ok
}

// IsSuccessStatusCode reports whether code is in [200, 300).
func IsSuccessStatusCode(code StatusCode) bool {
	return code >= 200 && code < 300
}

// IsErrorStatusCode reports whether code is 400 or above. Codes in
// [300, 400) are neither success nor error.
func IsErrorStatusCode(code StatusCode) bool {
	return code >= 400
}
