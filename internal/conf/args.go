package conf

import (
	"go/build"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Args Global Application Arguments
var Args Arguments

var vp *viper.Viper

// Arguments arguments struct type
type Arguments struct {
	Logging struct {
		LogLevel    string `mapstructure:"log_level"`
		LogFilePath string `mapstructure:"log_file_path"`
	}

	Generator struct {
		MaxAttempts int    `mapstructure:"max_attempts"`
		Seed        int64  `mapstructure:"seed"`
		OS          string `mapstructure:"os"`
		Chipset     string `mapstructure:"chipset"`
		Browser     string `mapstructure:"browser"`
		Locale      string `mapstructure:"locale"`
	}

	Pool struct {
		Size int `mapstructure:"size"`
	}
}

// flagKeys maps command line flag names onto configuration keys.
var flagKeys = map[string]string{
	"log-level":    "logging.log_level",
	"log-file":     "logging.log_file_path",
	"max-attempts": "generator.max_attempts",
	"seed":         "generator.seed",
	"os":           "generator.os",
	"chipset":      "generator.chipset",
	"browser":      "generator.browser",
	"locale":       "generator.locale",
	"pool-size":    "pool.size",
}

func init() {
	vp = viper.New()
	setDefaults()
	vp.SetConfigName("rua") // name of config file (without extension)
	vp.SetConfigType("toml")
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		gopath = build.Default.GOPATH
	}
	vp.AddConfigPath(filepath.Join(gopath, "bin"))
	vp.AddConfigPath(".") // optionally look for config in the working directory
	if err := read(); err != nil {
		log.Panicf("config file error: %+v", err)
	}
}

// Load reads the given config file, when not empty, and overlays the flags that
// were set on the command line.
func Load(file string, flags *pflag.FlagSet) (e error) {
	if file != "" {
		vp.SetConfigFile(file)
	}
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if e = vp.BindPFlag(key, f); e != nil {
					return errors.Wrapf(e, "failed to bind flag %s", name)
				}
			}
		}
	}
	return read()
}

func read() (e error) {
	if e = vp.ReadInConfig(); e != nil {
		if _, notFound := e.(viper.ConfigFileNotFoundError); !notFound {
			return errors.Wrap(e, "unable to read config file")
		}
	}
	Args = Arguments{}
	if e = vp.Unmarshal(&Args); e != nil {
		return errors.Wrap(e, "unable to decode configuration")
	}
	checkConfig()
	return nil
}

func checkConfig() {
	if Args.Generator.MaxAttempts <= 0 {
		Args.Generator.MaxAttempts = 20
	}
	if Args.Pool.Size <= 0 {
		Args.Pool.Size = 16
	}
}

func setDefaults() {
	vp.SetDefault("logging.log_level", "info")
	vp.SetDefault("generator.max_attempts", 20)
	vp.SetDefault("generator.seed", 0)
	vp.SetDefault("pool.size", 16)
}

// ConfigFileUsed returns the file used to populate the config registry.
func ConfigFileUsed() string {
	return vp.ConfigFileUsed()
}
