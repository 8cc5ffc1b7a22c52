package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report/internal/commands"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Setup(cfg.App.LogOptions())
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := commands.RunServer(ctx, cfg); err != nil {
		logrus.Error(err)
	}
}
