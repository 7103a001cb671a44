package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeesCsv = `key,name
accounting banking,Daniels
accounting banking crime,Stevens
banking forensics,Moreau
`

func newTestContext() (*Context, *bytes.Buffer, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	out := &bytes.Buffer{}
	return &Context{Log: log, Out: out}, out, hook
}

func inputFlags(files ...string) InputFlags {
	return InputFlags{Files: files, KeyColumn: "key", KeyDelimiter: " "}
}

func names(t *testing.T, out *bytes.Buffer) []string {
	t.Helper()
	matches := []Record{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &matches))
	names := []string{}
	for _, m := range matches {
		names = append(names, m["name"])
	}
	return names
}

func TestSubsetsCmd(t *testing.T) {
	ctx, out, _ := newTestContext()
	cmd := &SubsetsCmd{
		InputFlags:  inputFlags(writeFile(t, "employees.csv", employeesCsv)),
		OutputFlags: OutputFlags{Format: "json"},
		Query:       []string{"crime", "banking", "accounting"},
	}

	require.NoError(t, cmd.Run(ctx))
	assert.Equal(t, []string{"Daniels", "Stevens"}, names(t, out))
}

func TestSupersetsCmd(t *testing.T) {
	ctx, out, _ := newTestContext()
	cmd := &SupersetsCmd{
		InputFlags:  inputFlags(writeFile(t, "employees.csv", employeesCsv)),
		OutputFlags: OutputFlags{Format: "csv"},
		Query:       []string{"banking"},
	}

	require.NoError(t, cmd.Run(ctx))
	assert.Equal(t, "key,name\n"+
		"accounting banking,Daniels\n"+
		"accounting banking crime,Stevens\n"+
		"banking forensics,Moreau\n", out.String())
}

func TestSupersetsCmdEmptyQuery(t *testing.T) {
	ctx, out, _ := newTestContext()
	cmd := &SupersetsCmd{
		InputFlags:  inputFlags(writeFile(t, "employees.csv", employeesCsv)),
		OutputFlags: OutputFlags{Format: "json"},
	}

	require.NoError(t, cmd.Run(ctx))
	assert.Equal(t, []string{"Daniels", "Stevens", "Moreau"}, names(t, out))
}

func TestLoadAcrossFiles(t *testing.T) {
	ctx, out, hook := newTestContext()
	cmd := &SubsetsCmd{
		InputFlags: inputFlags(
			writeFile(t, "employees.csv", employeesCsv),
			writeFile(t, "more.json", `[{"key": "banking accounting", "name": "Kowalski"}, {"key": "forensics", "name": "Ito"}]`),
		),
		OutputFlags: OutputFlags{Format: "json"},
		Query:       []string{"accounting", "banking", "forensics"},
	}

	require.NoError(t, cmd.Run(ctx))
	assert.Equal(t, []string{"Kowalski", "Moreau", "Ito"}, names(t, out), "Later files overwrite earlier records")

	warnings := []*logrus.Entry{}
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry)
		}
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, []string{"accounting", "banking"}, warnings[0].Data["key"])
}

func TestLoadMissingKeyColumn(t *testing.T) {
	ctx, _, _ := newTestContext()
	cmd := &StatsCmd{InputFlags: InputFlags{
		Files:        []string{writeFile(t, "employees.csv", employeesCsv)},
		KeyColumn:    "skills",
		KeyDelimiter: " ",
	}}

	err := cmd.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `record 1 has no "skills" field`)
}

func TestStatsCmd(t *testing.T) {
	ctx, out, hook := newTestContext()
	cmd := &StatsCmd{InputFlags: inputFlags(writeFile(t, "employees.csv", employeesCsv))}

	require.NoError(t, cmd.Run(ctx))
	assert.Equal(t, "keys: 3\nnodes: 6\nheight: 3\n", out.String())
	assert.Contains(t, hook.LastEntry().Message, "3 records")
}

func TestLoadReportString(t *testing.T) {
	report := &LoadReport{File: "a.csv", Records: 3}
	assert.Equal(t, "a.csv: 3 records", report.String())

	report.Overwritten = append(report.Overwritten, Overwrite{Key: []string{"x", "y"}})
	assert.Equal(t, "a.csv: 3 records, 1 overwritten [[x y]]", report.String())
}
