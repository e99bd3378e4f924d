package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/consts"
	"github.com/bitmark-inc/covid-dashboard/dashboard"
	"github.com/bitmark-inc/covid-dashboard/external/diseasesh"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

const (
	logPrefix      = "snapshot"
	defaultTimeout = 30 * time.Second
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stderr)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("dashboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("source.timeout", defaultTimeout)
	viper.SetDefault("dashboard.metric", string(consts.DefaultMetric))
	viper.SetDefault("dashboard.days", consts.DefaultDateRange)
	viper.SetDefault("i18n.lang", "en")
}

func main() {
	var configFile, metricName, outDir, lang string
	var days int

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&metricName, "metric", "", "metric for the line chart and daily change: cases, deaths or recovered")
	flag.IntVar(&days, "days", 0, "number of most recent days to fetch")
	flag.StringVar(&outDir, "out", ".", "directory the chart images are written to")
	flag.StringVar(&lang, "lang", "", "language of card and chart titles")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if metricName == "" {
		metricName = viper.GetString("dashboard.metric")
	}
	metric, err := schema.ParseMetric(metricName)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}

	if days == 0 {
		days = viper.GetInt("dashboard.days")
	}
	if days <= 0 {
		log.WithField("prefix", logPrefix).Fatalf("invalid days: %d", days)
	}

	if lang == "" {
		lang = viper.GetString("i18n.lang")
	}

	utils.InitI18NBundle()

	client := diseasesh.New(
		viper.GetString("source.url"),
		viper.GetString("source.country"),
		viper.GetDuration("source.timeout"),
	)
	pipeline := dashboard.NewPipeline(client, tally.NoopScope)

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("source.timeout"))
	defer cancel()

	result, err := pipeline.Load(ctx, days)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatalf("load historical data: %s", err)
	}

	view := dashboard.Localize(dashboard.Render(schema.State{
		SelectedMetric: metric,
		DateRange:      days,
		LoadedRange:    days,
		Data:           result.Points,
		UpdatedAt:      time.Now(),
	}), lang)

	if err := writeReport(os.Stdout, view, lang); err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}

	size := chart.Size{
		Width:  viper.GetInt("chart.width"),
		Height: viper.GetInt("chart.height"),
	}
	skipped, err := writeCharts(outDir, view, size)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}
	for _, name := range skipped {
		log.WithField("prefix", logPrefix).Warnf("%s skipped: not enough data", name)
	}
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"dir":    outDir,
		"points": len(result.Points),
	}).Info("snapshot written")
}
