package flag

import (
	"fmt"
	"github.com/spf13/pflag"
	"os"
	"strconv"
	"strings"
	"sync"
)

type envFlag struct {
	fs     *pflag.FlagSet
	name   string
	envVar string
}

var (
	pendingLock sync.Mutex
	pending     []envFlag
)

// EnvName is the environment variable that sets a flag e.g. (puzzleboard, bot-name) -> PUZZLEBOARD_BOT_NAME.
func EnvName(prefix string, name string) string {
	name = strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}

func register(fs *pflag.FlagSet, prefix string, name string) {
	pendingLock.Lock()
	defer pendingLock.Unlock()
	pending = append(pending, envFlag{fs: fs, name: name, envVar: EnvName(prefix, name)})
}

func usageWithEnv(usage string, prefix string, name string) string {
	return fmt.Sprintf("%s (env %s)", usage, EnvName(prefix, name))
}

func StringVarEnv(fs *pflag.FlagSet, p *string, prefix string, name string, value string, usage string) {
	fs.StringVar(p, name, value, usageWithEnv(usage, prefix, name))
	register(fs, prefix, name)
}

func BoolVarEnv(fs *pflag.FlagSet, p *bool, prefix string, name string, value bool, usage string) {
	fs.BoolVar(p, name, value, usageWithEnv(usage, prefix, name))
	register(fs, prefix, name)
}

// Parse applies environment variables to every flag registered so far. Values
// given on the command line are parsed later and win over the environment.
func Parse() {
	pendingLock.Lock()
	defer pendingLock.Unlock()

	for _, f := range pending {
		val, ok := os.LookupEnv(f.envVar)
		if !ok {
			continue
		}
		if err := f.fs.Set(f.name, val); err != nil {
			fmt.Fprintf(os.Stderr, "ignoring invalid %s=%s: %s\n", f.envVar, strconv.Quote(val), err.Error())
		}
	}
	pending = nil
}
