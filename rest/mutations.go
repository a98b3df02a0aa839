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

	"github.com/holiman/uint256"
	"github.com/labstack/echo/v4"

	"github.com/optakt/token-ledger/models/ledger"
)

func (c *Controller) Initialize(ctx echo.Context) error {

	var req InitializeRequest
	err := ctx.Bind(&req)
	if err != nil {
		return invalidFormat(err)
	}
	err = c.validate.Struct(req)
	if err != nil {
		return invalidFormat(err)
	}

	signers, err := parseSigners(req.Signers)
	if err != nil {
		return invalidFormat(err)
	}

	engine, err := c.engine(signers...)
	if err != nil {
		return internal(err)
	}

	err = engine.Initialize()
	if err != nil {
		return apiError(err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func (c *Controller) Transfer(ctx echo.Context) error {

	var req TransferRequest
	err := ctx.Bind(&req)
	if err != nil {
		return invalidFormat(err)
	}
	err = c.validate.Struct(req)
	if err != nil {
		return invalidFormat(err)
	}

	from, _ := ledger.ParseAddress(req.From)
	to, _ := ledger.ParseAddress(req.To)
	amount, _ := uint256.FromDecimal(req.Amount)
	signers, err := parseSigners(req.Signers)
	if err != nil {
		return invalidFormat(err)
	}

	engine, err := c.engine(signers...)
	if err != nil {
		return internal(err)
	}

	transferred, err := engine.Transfer(from, to, amount)
	if err != nil {
		return apiError(err)
	}

	res := TransferResponse{
		Transferred: transferred,
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) TransferMulti(ctx echo.Context) error {

	var req TransferMultiRequest
	err := ctx.Bind(&req)
	if err != nil {
		return invalidFormat(err)
	}
	err = c.validate.Struct(req)
	if err != nil {
		return invalidFormat(err)
	}

	transfers := make([]ledger.Transfer, 0, len(req.Transfers))
	for _, item := range req.Transfers {
		from, _ := ledger.ParseAddress(item.From)
		to, _ := ledger.ParseAddress(item.To)
		amount, _ := uint256.FromDecimal(item.Amount)
		transfers = append(transfers, ledger.Transfer{
			From:   from,
			To:     to,
			Amount: amount,
		})
	}
	signers, err := parseSigners(req.Signers)
	if err != nil {
		return invalidFormat(err)
	}

	engine, err := c.engine(signers...)
	if err != nil {
		return internal(err)
	}

	err = engine.TransferMulti(transfers)
	if err != nil {
		return apiError(err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (c *Controller) Approve(ctx echo.Context) error {

	var req ApproveRequest
	err := ctx.Bind(&req)
	if err != nil {
		return invalidFormat(err)
	}
	err = c.validate.Struct(req)
	if err != nil {
		return invalidFormat(err)
	}

	owner, _ := ledger.ParseAddress(req.Owner)
	spender, _ := ledger.ParseAddress(req.Spender)
	amount, _ := uint256.FromDecimal(req.Amount)
	signers, err := parseSigners(req.Signers)
	if err != nil {
		return invalidFormat(err)
	}

	engine, err := c.engine(signers...)
	if err != nil {
		return internal(err)
	}

	err = engine.Approve(owner, spender, amount)
	if err != nil {
		return apiError(err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (c *Controller) TransferFrom(ctx echo.Context) error {

	var req TransferFromRequest
	err := ctx.Bind(&req)
	if err != nil {
		return invalidFormat(err)
	}
	err = c.validate.Struct(req)
	if err != nil {
		return invalidFormat(err)
	}

	spender, _ := ledger.ParseAddress(req.Spender)
	from, _ := ledger.ParseAddress(req.From)
	amount, _ := uint256.FromDecimal(req.Amount)
	signers, err := parseSigners(req.Signers)
	if err != nil {
		return invalidFormat(err)
	}

	engine, err := c.engine(signers...)
	if err != nil {
		return internal(err)
	}

	err = engine.TransferFrom(spender, from, amount)
	if err != nil {
		return apiError(err)
	}

	return ctx.NoContent(http.StatusOK)
}
