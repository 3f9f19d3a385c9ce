//go:build engo

package main

import (
	"github.com/opd-ai/go-spaceshooter/pkg/config"
	"github.com/opd-ai/go-spaceshooter/pkg/engine"
	"github.com/opd-ai/go-spaceshooter/pkg/logging"
	engorender "github.com/opd-ai/go-spaceshooter/pkg/render/engo"
)

func runEngo(sim *engine.Simulation, cfg *config.GameConfig, logger *logging.Logger) error {
	return engorender.Run(sim, cfg, logger)
}
