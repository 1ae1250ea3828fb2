package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/franciscopereira987/taisteala/cmd/taisteala/common"
	"github.com/franciscopereira987/taisteala/pkg/middleware"
	"github.com/franciscopereira987/taisteala/pkg/utils"
)

const usage = `usage: taisteala [flags] <command> [args]

commands:
  load-airports        download the airports dataset and report its size
  journey CODES        distance of a dash separated journey, e.g. JFK-LHR-SIN
  serve                answer journey requests from the message broker

flags:
`

var errMissingJourney = errors.New("journey requires dash separated IATA codes, e.g. JFK-LHR-SIN")

func parseFlags() (*pflag.FlagSet, error) {
	flags := pflag.NewFlagSet("taisteala", pflag.ContinueOnError)
	flags.String("config", "cmd/taisteala/config/config.yaml", "path to the config file")
	flags.String("dest", "", "path to store airports data")
	flags.Bool("fetch", false, "download the dataset even if a local copy exists")
	flags.Bool("remote", false, "ask a serving worker instead of computing locally")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	return flags, flags.Parse(os.Args[1:])
}

func serve(ctx context.Context, config common.Config) error {
	index, err := common.LoadIndex(ctx, config)
	if err != nil {
		return err
	}

	m, err := middleware.Dial(config.ServerURL)
	if err != nil {
		return err
	}
	defer m.Close()

	queue, err := m.QueueDeclare(config.RequestsQueue)
	if err != nil {
		return err
	}
	if err := m.Prefetch(1); err != nil {
		return err
	}

	return common.NewWorker(m, queue, index).Run(ctx)
}

func remoteJourney(ctx context.Context, config common.Config, journey string) error {
	m, err := middleware.Dial(config.ServerURL)
	if err != nil {
		return err
	}
	defer m.Close()

	return common.RemoteJourney(ctx, m, config.RequestsQueue, journey, os.Stdout)
}

func run(ctx context.Context, v *viper.Viper, args []string) error {
	config := common.ConfigFrom(v)
	if args[0] == "serve" || (args[0] == "journey" && config.Remote) {
		if _, err := utils.RequireString(v, common.ServerURL); err != nil {
			return err
		}
	}

	switch args[0] {
	case "load-airports":
		return common.LoadAirports(ctx, config, os.Stdout)
	case "journey":
		if len(args) < 2 {
			return errMissingJourney
		}
		if config.Remote {
			return remoteJourney(ctx, config, args[1])
		}
		return common.Journey(ctx, config, args[1], os.Stdout)
	case "serve":
		return serve(ctx, config)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func main() {
	flags, err := parseFlags()
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if flags.NArg() == 0 {
		flags.Usage()
		log.Fatal("missing command")
	}

	configPath, _ := flags.GetString("config")
	v, err := common.InitConfig(configPath, flags)
	if err != nil {
		log.Fatalf("could not initialize config: %s", err)
	}
	if err := utils.InitLogger(v.GetString(common.LogLevel)); err != nil {
		log.Fatal(err)
	}
	utils.PrintConfig(v, common.ConfigVars...)

	ctx, stop := utils.WithSignal(context.Background())
	defer stop()

	err = run(ctx, v, flags.Args())
	if errors.Is(err, utils.ErrSignal) {
		log.Info("action: shutdown | result: success")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
