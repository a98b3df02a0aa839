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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/optakt/token-ledger/models/ledger"
)

func (c *Controller) GetInfo(ctx echo.Context) error {

	engine, err := c.engine()
	if err != nil {
		return internal(err)
	}

	res := InfoResponse{
		Name:       engine.Name(),
		Symbol:     engine.Symbol(),
		Multiplier: engine.Multiplier(),
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetSupply(ctx echo.Context) error {

	engine, err := c.engine()
	if err != nil {
		return internal(err)
	}

	supply, err := engine.TotalSupply()
	if err != nil {
		return apiError(err)
	}

	res := SupplyResponse{
		Supply: supply.Dec(),
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetBalance(ctx echo.Context) error {

	address, err := ledger.ParseAddress(ctx.Param("address"))
	if err != nil {
		return invalidFormat(err)
	}

	engine, err := c.engine()
	if err != nil {
		return internal(err)
	}

	balance, err := engine.BalanceOf(address)
	if err != nil {
		return apiError(err)
	}

	res := BalanceResponse{
		Address: address.String(),
		Balance: balance.Dec(),
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetAllowance(ctx echo.Context) error {

	owner, err := ledger.ParseAddress(ctx.Param("owner"))
	if err != nil {
		return invalidFormat(err)
	}
	spender, err := ledger.ParseAddress(ctx.Param("spender"))
	if err != nil {
		return invalidFormat(err)
	}

	engine, err := c.engine()
	if err != nil {
		return internal(err)
	}

	allowance, err := engine.Allowance(owner, spender)
	if err != nil {
		return apiError(err)
	}

	res := AllowanceResponse{
		Owner:     owner.String(),
		Spender:   spender.String(),
		Allowance: allowance.Dec(),
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetEvents(ctx echo.Context) error {

	events, err := c.events.Events()
	if err != nil {
		return internal(err)
	}

	res := make([]EventResponse, 0, len(events))
	for _, event := range events {
		res = append(res, EventResponse{
			Type:   string(event.Type),
			From:   event.From.String(),
			To:     event.To.String(),
			Amount: event.Amount.Dec(),
		})
	}

	return ctx.JSON(http.StatusOK, res)
}
