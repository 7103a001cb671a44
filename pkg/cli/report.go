package cli

import (
	"fmt"
	"strings"
)

// LoadReport records the outcome of loading one input file.
type LoadReport struct {
	File        string
	Records     int         // records inserted, overwrites included
	Overwritten []Overwrite // keys seen more than once, the last record wins
}

type Overwrite struct {
	Key      []string
	Previous Record
}

func (r *LoadReport) String() string {
	str := fmt.Sprintf("%s: %d records", r.File, r.Records)
	if len(r.Overwritten) == 0 {
		return str
	}

	keys := make([]string, 0, len(r.Overwritten))
	for _, o := range r.Overwritten {
		keys = append(keys, fmt.Sprintf("%v", o.Key))
	}
	return str + fmt.Sprintf(", %d overwritten [%s]", len(r.Overwritten), strings.Join(keys, " "))
}
