package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/agux/rua/internal/conf"
	"github.com/agux/rua/internal/logging"
	"github.com/agux/rua/internal/ua"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var log = logging.Logger

func main() {
	code := 0
	defer func() {
		if r := recover(); r != nil {
			code = 1
		}
		logrus.Exit(code)
	}()

	if e := run(os.Args[1:]); e != nil {
		log.Errorf("%+v", e)
		code = 1
	}
}

func run(args []string) (e error) {
	flags := pflag.NewFlagSet("rua", pflag.ContinueOnError)
	config := flags.String("config", "", "path to the toml config file")
	count := flags.IntP("count", "n", 1, "number of user agents to generate")
	bind := flags.StringSlice("bind", nil, "print one user agent bound to each key instead")
	flags.String("os", "", "pin the operating system: windows, linux, macosx, android, ios")
	flags.String("chipset", "", "pin the chipset: x86, x64, intel, ppc, uintel, uppc")
	flags.String("browser", "", "pin the browser: firefox, safari, iexplorer, opera, chrome")
	flags.String("locale", "", "pin the locale, e.g. en-US or fr")
	flags.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flags.Int("max-attempts", 0, "attempts before giving up")
	flags.Int("pool-size", 0, "size of the pool used by --bind")
	flags.String("log-level", "", "log level: trace, debug, info, warning, error")
	flags.String("log-file", "", "also write logs to this file")
	if e = flags.Parse(args); e != nil {
		if errors.Is(e, pflag.ErrHelp) {
			return nil
		}
		return
	}

	if e = conf.Load(*config, flags); e != nil {
		return
	}
	if e = logging.Configure(conf.Args.Logging.LogLevel, conf.Args.Logging.LogFilePath); e != nil {
		return
	}
	if used := conf.ConfigFileUsed(); used != "" {
		log.Debugf("config file used: %s", used)
	}

	if len(*bind) > 0 {
		for _, key := range *bind {
			key = strings.TrimSpace(key)
			var agent string
			if agent, e = ua.GetUserAgent(key); e != nil {
				return errors.Wrapf(e, "unable to bind user agent to %s", key)
			}
			fmt.Printf("%s\t%s\n", key, agent)
		}
		return
	}

	if *count < 1 {
		return errors.Errorf("count must be positive: %d", *count)
	}
	var agents []string
	if agents, e = ua.Generate(*count); e != nil {
		return
	}
	for _, a := range agents {
		fmt.Println(a)
	}
	return
}
