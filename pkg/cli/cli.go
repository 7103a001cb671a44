package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Context carries what every command needs to run.
type Context struct {
	Log *logrus.Logger
	Out io.Writer
}

var CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"info" env:"SETTRIE_LOG_LEVEL"`

	Subsets   SubsetsCmd   `cmd:"" help:"Print the records whose key is a subset of the query"`
	Supersets SupersetsCmd `cmd:"" help:"Print the records whose key is a superset of the query"`
	Stats     StatsCmd     `cmd:"" help:"Print the shape of the trie built from the input files"`
}

// NewContext builds a Context writing results to out and logs to logOut.
func NewContext(level string, out io.Writer, logOut io.Writer) (*Context, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	log := logrus.New()
	log.SetOutput(logOut)
	log.SetLevel(lvl)
	return &Context{Log: log, Out: out}, nil
}
