// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/token-ledger/models/failure"
)

// Error is the JSON body returned for failed requests. The message never
// changes for a given failure condition, while the details carry the
// condition's specifics.
type Error struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func invalidFormat(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, Error{
		Message: "request body invalid",
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	})
}

func internal(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, Error{
		Message: "internal error",
		Details: map[string]interface{}{
			"error": err.Error(),
		},
	})
}

// apiError maps an engine failure to the HTTP error for the response. The
// failure conditions of the ledger are terminal for the invocation, not for
// the service, so each one gets a precise client-facing status.
func apiError(err error) *echo.HTTPError {

	var aiErr failure.AlreadyInitialized
	if errors.As(err, &aiErr) {
		return echo.NewHTTPError(http.StatusConflict, Error{
			Message: "ledger already initialized",
			Details: map[string]interface{}{
				"supply": aiErr.Supply.Dec(),
			},
		})
	}

	var uaErr failure.Unauthorized
	if errors.As(err, &uaErr) {
		return echo.NewHTTPError(http.StatusUnauthorized, Error{
			Message: "invocation not witnessed by required address",
			Details: map[string]interface{}{
				"address": uaErr.Address.String(),
			},
		})
	}

	var ibErr failure.InsufficientBalance
	if errors.As(err, &ibErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, Error{
			Message: "insufficient balance",
			Details: map[string]interface{}{
				"address":   ibErr.Address.String(),
				"available": ibErr.Available.Dec(),
				"requested": ibErr.Requested.Dec(),
			},
		})
	}

	var iaErr failure.InsufficientAllowance
	if errors.As(err, &iaErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, Error{
			Message: "insufficient allowance",
			Details: map[string]interface{}{
				"owner":     iaErr.Owner.String(),
				"spender":   iaErr.Spender.String(),
				"available": iaErr.Available.Dec(),
				"requested": iaErr.Requested.Dec(),
			},
		})
	}

	var aoErr failure.AmountOverflow
	if errors.As(err, &aoErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, Error{
			Message: "amount exceeds valid range",
			Details: map[string]interface{}{
				"operation": aoErr.Operation,
			},
		})
	}

	var btErr failure.BatchTransferFailed
	if errors.As(err, &btErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, Error{
			Message: "batch transfer failed",
			Details: map[string]interface{}{
				"index":  btErr.Index,
				"from":   btErr.From.String(),
				"to":     btErr.To.String(),
				"amount": btErr.Amount.Dec(),
			},
		})
	}

	var cvErr failure.CorruptedValue
	if errors.As(err, &cvErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, Error{
			Message: "ledger state corrupted",
			Details: map[string]interface{}{
				"key":    fmt.Sprintf("%x", cvErr.Key),
				"length": cvErr.Length,
			},
		})
	}

	return internal(err)
}
