//go:build !engo

package main

import (
	"errors"

	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/engine"
	"github.com/opd-ai/go-spaceshooter/pkg/logging"
)

func runEngo(sim *engine.Simulation, cfg *config.GameConfig, logger *logging.Logger) error {
	return errors.New("engo frontend not built in, rebuild with -tags engo")
}
