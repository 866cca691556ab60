package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AppConfig holds the scenario parameters of the demo run.
type AppConfig struct {
	NumBS          int
	NumUE          int
	CellRadiusM    float64
	CarrierFreqGHz float64
	TxPowerDbm     float64
	Seed           int64
}

// ReadAppConfig loads config.{json,yaml,toml} from the working directory,
// falling back to the defaults below for anything not set.
func ReadAppConfig() AppConfig {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")

	if err := viper.ReadInConfig(); err != nil {
		log.Info("ReadInConfig ", err)
	}

	viper.SetDefault("NumBS", 3)
	viper.SetDefault("NumUE", 10)
	viper.SetDefault("CellRadiusM", 500.0)
	viper.SetDefault("CarrierFreqGHz", 2.1)
	viper.SetDefault("TxPowerDbm", 46.0)
	viper.SetDefault("Seed", 42)

	var cfg AppConfig
	cfg.NumBS = viper.GetInt("NumBS")
	cfg.NumUE = viper.GetInt("NumUE")
	cfg.CellRadiusM = viper.GetFloat64("CellRadiusM")
	cfg.CarrierFreqGHz = viper.GetFloat64("CarrierFreqGHz")
	cfg.TxPowerDbm = viper.GetFloat64("TxPowerDbm")
	cfg.Seed = viper.GetInt64("Seed")
	return cfg
}
