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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/token-ledger/codec/zbor"
	"github.com/optakt/token-ledger/engine"
	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/rest"
	"github.com/optakt/token-ledger/service/journal"
	"github.com/optakt/token-ledger/service/metrics"
	"github.com/optakt/token-ledger/service/storage"
	"github.com/optakt/token-ledger/service/token"
	"github.com/optakt/token-ledger/service/witness"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAdmin      string
		flagData       string
		flagLevel      string
		flagMetrics    string
		flagMultiplier uint64
		flagName       string
		flagPort       uint16
		flagSupply     uint64
		flagSymbol     string
	)

	pflag.StringVarP(&flagAdmin, "admin", "a", "", "hex address of the ledger admin account")
	pflag.StringVarP(&flagData, "data", "d", "data", "path to database directory for ledger state")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", ":9435", "address on which to expose metrics")
	pflag.Uint64Var(&flagMultiplier, "multiplier", token.DefaultConfig.Multiplier, "number of base units per whole token")
	pflag.StringVarP(&flagName, "name", "n", token.DefaultConfig.Name, "name of the token")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to serve the ledger API on")
	pflag.Uint64Var(&flagSupply, "supply", token.DefaultConfig.Supply, "total supply in whole tokens")
	pflag.StringVarP(&flagSymbol, "symbol", "s", token.DefaultConfig.Symbol, "ticker symbol of the token")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	admin, err := ledger.ParseAddress(flagAdmin)
	if err != nil {
		log.Error().Str("admin", flagAdmin).Err(err).Msg("could not parse admin address")
		return failure
	}

	// Open the ledger state database.
	db, err := badger.Open(ledger.DefaultOptions(flagData))
	if err != nil {
		log.Error().Str("data", flagData).Err(err).Msg("could not open ledger database")
		return failure
	}

	// The storage library is initialized with a codec and provides functions
	// to interact with a Badger database while encoding and compressing
	// transparently.
	codec := zbor.NewCodec()
	lib := storage.New(codec)

	// The recorder persists emitted events; the metrics emitter counts them
	// on the way through.
	recorder, err := journal.NewRecorder(log, db, lib)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize event recorder")
		_ = db.Close()
		return failure
	}
	defer func() {
		// The recorder leases the event sequence, so it releases before the
		// database closes.
		var errs *multierror.Error
		errs = multierror.Append(errs, recorder.Close())
		errs = multierror.Append(errs, db.Close())
		err := errs.ErrorOrNil()
		if err != nil {
			log.Error().Err(err).Msg("could not close ledger state")
		}
	}()
	emitter := metrics.NewEmitter(recorder)
	reader := journal.NewReader(db, lib)

	// Each request declares its own witness set, so the controller gets a
	// factory that builds an engine scoped to the request's signers.
	factory := func(signers ...ledger.Address) (*token.Engine, error) {
		return token.New(log, db, lib, witness.FromAddresses(signers...), emitter, admin,
			token.WithName(flagName),
			token.WithSymbol(flagSymbol),
			token.WithSupply(flagSupply),
			token.WithMultiplier(flagMultiplier),
		), nil
	}

	ctrl, err := rest.NewController(factory, reader)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize controller")
		return failure
	}

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))

	server.GET("/token", ctrl.GetInfo)
	server.GET("/token/supply", ctrl.GetSupply)
	server.GET("/balances/:address", ctrl.GetBalance)
	server.GET("/allowances/:owner/:spender", ctrl.GetAllowance)
	server.GET("/events", ctrl.GetEvents)
	server.POST("/initialize", ctrl.Initialize)
	server.POST("/transfers", ctrl.Transfer)
	server.POST("/transfers/batch", ctrl.TransferMulti)
	server.POST("/transfers/from", ctrl.TransferFrom)
	server.POST("/approvals", ctrl.Approve)

	msvr := metrics.NewServer(log, flagMetrics)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	engine.New(log, "Token Ledger Server", sig).
		Component(
			"rest",
			func() error {
				err := server.Start(fmt.Sprint(":", flagPort))
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			},
			func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				err := server.Shutdown(ctx)
				if err != nil {
					log.Error().Err(err).Msg("could not shut down ledger API")
				}
			},
		).
		Component(
			"metrics",
			func() error {
				err := msvr.Start()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			},
			func() {},
		).
		Run().
		Stop()

	return success
}
