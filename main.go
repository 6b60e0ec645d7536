package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"voyager.com/trainer/game"
	"voyager.com/trainer/logging"
	"voyager.com/trainer/rest"
	"voyager.com/trainer/util"
)

var mainLogger = logging.GetZeroLogger("trainer::main", nil)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var runGameScript = flag.String("game-script", "", "runs the yaml scenario scripts in this directory")
	var testName = flag.String("testname", "", "runs a specific scenario script")
	var runServer = flag.Bool("server", false, "starts the trainer REST server")
	flag.Parse()

	if *runServer {
		err := rest.RunRestServer(util.TrainerEnvironment.GetRestPort())
		if err != nil {
			mainLogger.Fatal().Err(err).Msg("REST server exited")
		}
		return
	}

	scriptDir := *runGameScript
	if scriptDir == "" {
		scriptDir = util.TrainerEnvironment.GetScriptDir()
	}
	err := game.RunGameScriptTests(scriptDir, *testName)
	if err != nil {
		mainLogger.Error().Err(err).Msg("Scenario scripts failed")
		os.Exit(1)
	}
}
