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

package rest_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/token-ledger/codec/zbor"
	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/rest"
	"github.com/optakt/token-ledger/service/journal"
	"github.com/optakt/token-ledger/service/storage"
	"github.com/optakt/token-ledger/service/token"
	"github.com/optakt/token-ledger/service/witness"
	"github.com/optakt/token-ledger/testing/helpers"
	"github.com/optakt/token-ledger/testing/mocks"
)

func TestController_Queries(t *testing.T) {
	ctrl, db := setupController(t)
	defer db.Close()

	admin := mocks.GenericAddress(0)
	initialize(t, ctrl, admin)

	t.Run("token info", func(t *testing.T) {
		rec, ctx := request(t, http.MethodGet, "/token", "")

		err := ctrl.GetInfo(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res rest.InfoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, token.DefaultConfig.Name, res.Name)
		assert.Equal(t, token.DefaultConfig.Symbol, res.Symbol)
		assert.Equal(t, token.DefaultConfig.Multiplier, res.Multiplier)
	})

	t.Run("total supply", func(t *testing.T) {
		rec, ctx := request(t, http.MethodGet, "/token/supply", "")

		err := ctrl.GetSupply(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res rest.SupplyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "10000000000000000000", res.Supply)
	})

	t.Run("admin balance", func(t *testing.T) {
		rec, ctx := request(t, http.MethodGet, "/balances/:address", "")
		ctx.SetParamNames("address")
		ctx.SetParamValues(admin.String())

		err := ctrl.GetBalance(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res rest.BalanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, admin.String(), res.Address)
		assert.Equal(t, "10000000000000000000", res.Balance)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, ctx := request(t, http.MethodGet, "/balances/:address", "")
		ctx.SetParamNames("address")
		ctx.SetParamValues("not-an-address")

		err := ctrl.GetBalance(ctx)

		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestController_Initialize(t *testing.T) {
	ctrl, db := setupController(t)
	defer db.Close()

	admin := mocks.GenericAddress(0)
	body := fmt.Sprintf(`{"signers":["%s"]}`, admin.String())

	t.Run("nominal case", func(t *testing.T) {
		rec, ctx := request(t, http.MethodPost, "/initialize", body)

		err := ctrl.Initialize(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("conflict on second initialization", func(t *testing.T) {
		_, ctx := request(t, http.MethodPost, "/initialize", body)

		err := ctrl.Initialize(ctx)

		assertHTTPError(t, err, http.StatusConflict)
	})

	t.Run("unauthorized without admin signer", func(t *testing.T) {
		other := mocks.GenericAddress(9)
		body := fmt.Sprintf(`{"signers":["%s"]}`, other.String())
		_, ctx := request(t, http.MethodPost, "/initialize", body)

		err := ctrl.Initialize(ctx)

		assertHTTPError(t, err, http.StatusUnauthorized)
	})

	t.Run("rejects missing signers", func(t *testing.T) {
		_, ctx := request(t, http.MethodPost, "/initialize", `{"signers":[]}`)

		err := ctrl.Initialize(ctx)

		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestController_Transfer(t *testing.T) {
	ctrl, db := setupController(t)
	defer db.Close()

	admin := mocks.GenericAddress(0)
	receiver := mocks.GenericAddress(1)
	initialize(t, ctrl, admin)

	t.Run("nominal case", func(t *testing.T) {
		body := transferBody(admin, receiver, "100", admin)
		rec, ctx := request(t, http.MethodPost, "/transfers", body)

		err := ctrl.Transfer(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res rest.TransferResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Transferred)
	})

	t.Run("reports refused transfer", func(t *testing.T) {
		body := transferBody(receiver, admin, "101", receiver)
		rec, ctx := request(t, http.MethodPost, "/transfers", body)

		err := ctrl.Transfer(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res rest.TransferResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.False(t, res.Transferred)
	})

	t.Run("unauthorized without sender signer", func(t *testing.T) {
		body := transferBody(admin, receiver, "100", receiver)
		_, ctx := request(t, http.MethodPost, "/transfers", body)

		err := ctrl.Transfer(ctx)

		assertHTTPError(t, err, http.StatusUnauthorized)
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		body := transferBody(admin, receiver, "one hundred", admin)
		_, ctx := request(t, http.MethodPost, "/transfers", body)

		err := ctrl.Transfer(ctx)

		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("rejects well-sized non-hex address", func(t *testing.T) {
		to := strings.Repeat("zz", ledger.AddressLength)
		body := fmt.Sprintf(`{"from":"%s","to":"%s","amount":"100","signers":["%s"]}`,
			admin.String(), to, admin.String())
		_, ctx := request(t, http.MethodPost, "/transfers", body)

		err := ctrl.Transfer(ctx)

		assertHTTPError(t, err, http.StatusBadRequest)

		// Nothing was credited to the zero address.
		rec, ctx := request(t, http.MethodGet, "/balances/:address", "")
		ctx.SetParamNames("address")
		ctx.SetParamValues(ledger.Address{}.String())
		require.NoError(t, ctrl.GetBalance(ctx))

		var res rest.BalanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "0", res.Balance)
	})
}

func TestController_ApproveAndTransferFrom(t *testing.T) {
	ctrl, db := setupController(t)
	defer db.Close()

	admin := mocks.GenericAddress(0)
	spender := mocks.GenericAddress(1)
	initialize(t, ctrl, admin)

	t.Run("approve", func(t *testing.T) {
		body := fmt.Sprintf(`{"owner":"%s","spender":"%s","amount":"100","signers":["%s"]}`,
			admin.String(), spender.String(), admin.String())
		rec, ctx := request(t, http.MethodPost, "/approvals", body)

		err := ctrl.Approve(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("allowance query", func(t *testing.T) {
		rec, ctx := request(t, http.MethodGet, "/allowances/:owner/:spender", "")
		ctx.SetParamNames("owner", "spender")
		ctx.SetParamValues(admin.String(), spender.String())

		err := ctrl.GetAllowance(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res rest.AllowanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "100", res.Allowance)
	})

	t.Run("delegated transfer", func(t *testing.T) {
		body := fmt.Sprintf(`{"spender":"%s","from":"%s","amount":"60","signers":["%s"]}`,
			spender.String(), admin.String(), spender.String())
		rec, ctx := request(t, http.MethodPost, "/transfers/from", body)

		err := ctrl.TransferFrom(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("allowance exceeded", func(t *testing.T) {
		body := fmt.Sprintf(`{"spender":"%s","from":"%s","amount":"60","signers":["%s"]}`,
			spender.String(), admin.String(), spender.String())
		_, ctx := request(t, http.MethodPost, "/transfers/from", body)

		err := ctrl.TransferFrom(ctx)

		assertHTTPError(t, err, http.StatusUnprocessableEntity)
	})
}

func TestController_TransferMulti(t *testing.T) {
	ctrl, db := setupController(t)
	defer db.Close()

	admin := mocks.GenericAddress(0)
	first := mocks.GenericAddress(1)
	second := mocks.GenericAddress(2)
	initialize(t, ctrl, admin)

	t.Run("nominal case", func(t *testing.T) {
		body := fmt.Sprintf(`{"transfers":[
			{"from":"%s","to":"%s","amount":"100"},
			{"from":"%s","to":"%s","amount":"40"}
		],"signers":["%s","%s"]}`,
			admin.String(), first.String(),
			first.String(), second.String(),
			admin.String(), first.String())
		rec, ctx := request(t, http.MethodPost, "/transfers/batch", body)

		err := ctrl.TransferMulti(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failed batch reports the failing transfer", func(t *testing.T) {
		body := fmt.Sprintf(`{"transfers":[
			{"from":"%s","to":"%s","amount":"100"},
			{"from":"%s","to":"%s","amount":"500"}
		],"signers":["%s","%s"]}`,
			admin.String(), first.String(),
			first.String(), second.String(),
			admin.String(), first.String())
		_, ctx := request(t, http.MethodPost, "/transfers/batch", body)

		err := ctrl.TransferMulti(ctx)

		assertHTTPError(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		body := fmt.Sprintf(`{"transfers":[],"signers":["%s"]}`, admin.String())
		_, ctx := request(t, http.MethodPost, "/transfers/batch", body)

		err := ctrl.TransferMulti(ctx)

		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestController_GetEvents(t *testing.T) {
	ctrl, db := setupController(t)
	defer db.Close()

	admin := mocks.GenericAddress(0)
	receiver := mocks.GenericAddress(1)
	initialize(t, ctrl, admin)

	body := transferBody(admin, receiver, "100", admin)
	_, ctx := request(t, http.MethodPost, "/transfers", body)
	require.NoError(t, ctrl.Transfer(ctx))

	rec, ctx := request(t, http.MethodGet, "/events", "")

	err := ctrl.GetEvents(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res []rest.EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res, 1)
	assert.Equal(t, string(ledger.EventTransfer), res[0].Type)
	assert.Equal(t, admin.String(), res[0].From)
	assert.Equal(t, receiver.String(), res[0].To)
	assert.Equal(t, "100", res[0].Amount)
}

func setupController(t *testing.T) (*rest.Controller, *badger.DB) {
	t.Helper()

	db := helpers.InMemoryDB(t)
	lib := storage.New(zbor.NewCodec())

	recorder, err := journal.NewRecorder(mocks.NoopLogger, db, lib)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = recorder.Close()
	})
	reader := journal.NewReader(db, lib)

	admin := mocks.GenericAddress(0)
	factory := func(signers ...ledger.Address) (*token.Engine, error) {
		return token.New(mocks.NoopLogger, db, lib, witness.FromAddresses(signers...), recorder, admin), nil
	}

	ctrl, err := rest.NewController(factory, reader)
	require.NoError(t, err)

	return ctrl, db
}

func initialize(t *testing.T, ctrl *rest.Controller, admin ledger.Address) {
	t.Helper()

	body := fmt.Sprintf(`{"signers":["%s"]}`, admin.String())
	_, ctx := request(t, http.MethodPost, "/initialize", body)
	require.NoError(t, ctrl.Initialize(ctx))
}

func request(t *testing.T, method string, target string, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	ctx.SetPath(target)

	return rec, ctx
}

func transferBody(from ledger.Address, to ledger.Address, amount string, signers ...ledger.Address) string {
	quoted := make([]string, 0, len(signers))
	for _, signer := range signers {
		quoted = append(quoted, fmt.Sprintf("%q", signer.String()))
	}

	return fmt.Sprintf(`{"from":"%s","to":"%s","amount":"%s","signers":[%s]}`,
		from.String(), to.String(), amount, strings.Join(quoted, ","))
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
}
