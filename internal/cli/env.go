package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "dhumal"

// checkEnvironmentVariables sets every unchanged flag in flags from the matching
// <PREFIX>_<FLAG> environment variable. Dashes in flag names become underscores.
func checkEnvironmentVariables(prefix string, flags *pflag.FlagSet) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(prefix)

	flags.VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(name) {
			if err := flags.Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("error mapping environment variables to command flags: %s", strings.Join(errs, "; "))
}

func commandPrefix(name string) string {
	return envPrefix + "_" + strings.ReplaceAll(name, "-", "_")
}
