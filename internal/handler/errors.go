// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no handlers are created")
