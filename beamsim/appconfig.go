package main

import (
	ms "github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/wiless/beamform/array"
)

//AppConfig  Struct for the app parameteres
type AppConfig struct {
	Scenario    string
	FrequencyHz float64
	SteeringDeg float64
	TxPowerDbm  float64
	Arrays      []array.ArrayConfig
}

var appcfg AppConfig

// ReadAppConfig reads all the configuration for the app
func ReadAppConfig() {
	log.Println(viper.AllSettings())

	viper.AddConfigPath(indir)
	viper.SetConfigName("config")

	err := viper.ReadInConfig()
	if err != nil {
		log.Print("ReadInConfig ", err)
	}
	// Set all the default values
	{
		viper.SetDefault("Scenario", "5G")
		viper.SetDefault("FrequencyHz", 30.0e9)
		viper.SetDefault("SteeringDeg", SteeringDeg)
		viper.SetDefault("TxPowerDbm", TxPowerDbm)
	}

	// Load from the external configuration files
	if err := ms.Decode(viper.AllSettings(), &appcfg); err != nil {
		log.Print("AppConfig ", err)
	}

	log.Println(appcfg.Scenario)
	log.Println(appcfg.SteeringDeg)
	log.Println(appcfg.TxPowerDbm)
}
