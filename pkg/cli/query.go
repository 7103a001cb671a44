package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/khalid-nowaf/settrie/pkg/settrie"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RecordTrie indexes records by the set held in their key field.
type RecordTrie = settrie.SetTrie[string, Record]

type InputFlags struct {
	Files        []string `arg:"" type:"existingfile" help:"Input files with records in CSV, TSV, JSON or YAML format"`
	KeyColumn    string   `help:"Field holding the set elements of a record" default:"key" env:"SETTRIE_KEY_COLUMN"`
	KeyDelimiter string   `help:"Delimiter between the set elements in the key field" default:" " env:"SETTRIE_KEY_DELIMITER"`
}

type OutputFlags struct {
	Format string `help:"Output format (json, csv, yaml)" enum:"json,csv,yaml" default:"json" env:"SETTRIE_FORMAT"`
}

type SubsetsCmd struct {
	InputFlags  `embed:""`
	OutputFlags `embed:""`
	Query       []string `help:"Query set elements, comma separated" sep:","`
}

// Run executes the subsets command.
func (cmd *SubsetsCmd) Run(ctx *Context) error {
	set, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	query := NormalizeKey(cmd.Query)
	ctx.Log.WithField("query", query).Debug("running subsets query")
	return writeMatches(ctx, cmd.Format, set.Subsets(query))
}

type SupersetsCmd struct {
	InputFlags  `embed:""`
	OutputFlags `embed:""`
	Query       []string `help:"Query set elements, comma separated" sep:","`
}

// Run executes the supersets command.
func (cmd *SupersetsCmd) Run(ctx *Context) error {
	set, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	query := NormalizeKey(cmd.Query)
	ctx.Log.WithField("query", query).Debug("running supersets query")
	return writeMatches(ctx, cmd.Format, set.Supersets(query))
}

type StatsCmd struct {
	InputFlags `embed:""`
}

// Run executes the stats command.
func (cmd *StatsCmd) Run(ctx *Context) error {
	set, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	stats := set.Stats()
	_, err = fmt.Fprintf(ctx.Out, "keys: %s\nnodes: %s\nheight: %s\n",
		humanize.Comma(int64(stats.Keys)),
		humanize.Comma(int64(stats.Nodes)),
		humanize.Comma(int64(stats.Height)),
	)
	return err
}

// load parses every input file into one RecordTrie.
func (in *InputFlags) load(ctx *Context) (*RecordTrie, error) {
	set := settrie.New[string, Record]()

	for _, file := range in.Files {
		report := &LoadReport{File: file}
		err := parseFile(file, func(record Record) error {
			raw, found := record[in.KeyColumn]
			if !found {
				return errors.Errorf("record %d has no %q field", report.Records+1, in.KeyColumn)
			}

			key := SplitKey(raw, in.KeyDelimiter)
			if previous, replaced := set.Insert(key, record); replaced {
				report.Overwritten = append(report.Overwritten, Overwrite{Key: key, Previous: previous})
				ctx.Log.WithFields(logrus.Fields{"file": file, "key": key}).Warn("duplicate key, keeping the last record")
			}
			report.Records++
			return nil
		})
		if err != nil {
			return nil, err
		}
		ctx.Log.WithField("file", file).Info(report.String())
	}
	return set, nil
}

func writeMatches(ctx *Context, format string, matches *settrie.Iter[string, Record]) error {
	writer, err := NewWriter(format, ctx.Out)
	if err != nil {
		return err
	}

	records := matches.Collect()
	if err := matches.Err(); err != nil {
		return err
	}
	ctx.Log.WithField("matches", len(records)).Debug("query done")
	return writer.Write(records)
}
