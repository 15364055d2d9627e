package main

import (
	"flag"

	"foodshare-api/app"

	"github.com/sirupsen/logrus"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "", "[optional] path of configuration file")
	flag.Parse()

	if err := app.Run(configFile); err != nil {
		logrus.WithField("prefix", "main").Fatal(err)
	}
}
