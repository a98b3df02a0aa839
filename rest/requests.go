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
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/holiman/uint256"

	"github.com/optakt/token-ledger/models/ledger"
)

// Addresses travel as hex strings of twice the address length, amounts as
// decimal strings so that they survive JSON number precision limits.
const (
	addressInvalid = "address_invalid"
	amountInvalid  = "amount_invalid"
	signersEmpty   = "signers_empty"
	batchEmpty     = "batch_empty"
)

// Field names are mandatory arguments of the validator library's ReportError
// method; our structured errors do not use them.
const (
	addressField = "address"
	amountField  = "amount"
	signersField = "signers"
	batchField   = "transfers"
)

type InitializeRequest struct {
	Signers []string `json:"signers"`
}

type TransferRequest struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Amount  string   `json:"amount"`
	Signers []string `json:"signers"`
}

type TransferItem struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type TransferMultiRequest struct {
	Transfers []TransferItem `json:"transfers"`
	Signers   []string       `json:"signers"`
}

type ApproveRequest struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  string   `json:"amount"`
	Signers []string `json:"signers"`
}

type TransferFromRequest struct {
	Spender string   `json:"spender"`
	From    string   `json:"from"`
	Amount  string   `json:"amount"`
	Signers []string `json:"signers"`
}

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// We register a single type per validator, so we can safely perform type
	// assertion of the provided `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(initializeValidator, InitializeRequest{})
	v.RegisterStructValidation(transferValidator, TransferRequest{})
	v.RegisterStructValidation(transferMultiValidator, TransferMultiRequest{})
	v.RegisterStructValidation(approveValidator, ApproveRequest{})
	v.RegisterStructValidation(transferFromValidator, TransferFromRequest{})

	return v
}

// reportAddress runs the full address parse, so that a well-sized string of
// invalid hex can never slip through and decode to the zero address later.
func reportAddress(sl validator.StructLevel, address string) {
	_, err := ledger.ParseAddress(address)
	if err != nil {
		sl.ReportError(address, addressField, addressField, addressInvalid, "")
	}
}

func reportAmount(sl validator.StructLevel, amount string) {
	_, err := uint256.FromDecimal(amount)
	if err != nil {
		sl.ReportError(amount, amountField, amountField, amountInvalid, "")
	}
}

func reportSigners(sl validator.StructLevel, signers []string) {
	if len(signers) == 0 {
		sl.ReportError(signers, signersField, signersField, signersEmpty, "")
	}
	for _, signer := range signers {
		reportAddress(sl, signer)
	}
}

func initializeValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(InitializeRequest)
	reportSigners(sl, req.Signers)
}

func transferValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(TransferRequest)
	reportAddress(sl, req.From)
	reportAddress(sl, req.To)
	reportAmount(sl, req.Amount)
	reportSigners(sl, req.Signers)
}

func transferMultiValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(TransferMultiRequest)
	if len(req.Transfers) == 0 {
		sl.ReportError(req.Transfers, batchField, batchField, batchEmpty, "")
	}
	for _, transfer := range req.Transfers {
		reportAddress(sl, transfer.From)
		reportAddress(sl, transfer.To)
		reportAmount(sl, transfer.Amount)
	}
	reportSigners(sl, req.Signers)
}

func approveValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(ApproveRequest)
	reportAddress(sl, req.Owner)
	reportAddress(sl, req.Spender)
	reportAmount(sl, req.Amount)
	reportSigners(sl, req.Signers)
}

func transferFromValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(TransferFromRequest)
	reportAddress(sl, req.Spender)
	reportAddress(sl, req.From)
	reportAmount(sl, req.Amount)
	reportSigners(sl, req.Signers)
}

func parseSigners(signers []string) ([]ledger.Address, error) {
	addresses := make([]ledger.Address, 0, len(signers))
	for _, signer := range signers {
		address, err := ledger.ParseAddress(signer)
		if err != nil {
			return nil, fmt.Errorf("could not parse signer address: %w", err)
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}
