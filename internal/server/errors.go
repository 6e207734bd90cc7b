// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

var (
	errNoServersAreCreated = errors.New("no servers are created")

	errNoHTTPAddress = fmt.Errorf("%w: HTTP address is not configured", errNoServersAreCreated)
	errNoHTTPHandler = fmt.Errorf("%w: REST handler is not initialized", errNoServersAreCreated)
)
