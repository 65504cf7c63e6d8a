package main

import (
	"fmt"
	"os"
	"path/filepath"

	"EthVanity/internal/cli"
	"EthVanity/pkg/appcfg"
	"EthVanity/pkg/i18n"
	"EthVanity/pkg/logx"
)

func main() {
	os.Exit(run())
}

func run() int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		return cli.ExitFatal
	}

	appConf, err := appcfg.Load(filepath.Join(cwd, "configs", "app.yaml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load app config: %v (use defaults: en/info)\n", err)
		appConf = appcfg.Default()
	}

	if err := logx.Init(logx.Config{
		Level:                appConf.LogLevel,
		FilePath:             appConf.LogFile,
		ConsoleOnly:          appConf.LogFile == "",
		HideSecretsInConsole: appConf.HideSecretsInConsole,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "log init: %v\n", err)
		return cli.ExitConfig
	}
	defer logx.Close()

	logx.S().Debugw("ethvanity started",
		"cwd", cwd,
		"lang", appConf.Language,
		"log_level", appConf.LogLevel,
		"hide_secrets_in_console", appConf.HideSecretsInConsole,
		"cores", appConf.Cores,
	)

	r := cli.NewRunner(i18n.Get(appConf.Language))
	r.Cores = appConf.Cores
	return r.Run(os.Args[1:])
}
