// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("no token, authorization denied")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in authorization header")
)

// Request decoding errors. All of them map to 400 Bad Request.
var (
	ErrInvalidJSON      = errors.New("invalid JSON body")
	ErrInvalidForm      = errors.New("invalid multipart form")
	ErrRequestTooLarge  = errors.New("request body is too large")
	ErrInvalidFormValue = errors.New("invalid form value")
)
