package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"matching-srv/internal/matching/engine"
	"matching-srv/internal/model"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// writeOutput renders v as a table or as indented JSON.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputTable, "":
		return writeTable(w, v)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeTable(w io.Writer, v any) error {
	switch data := v.(type) {
	case []engine.MatchingScore:
		return scoresTable(w, data)
	case engine.MatchingScore:
		return scoreDetail(w, data)
	case []model.MatchRun:
		return runsTable(w, data)
	case map[string]string:
		return keyValueTable(w, data)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", v)
	}
}

func scoresTable(w io.Writer, scores []engine.MatchingScore) error {
	if len(scores) == 0 {
		fmt.Fprintln(w, "No matches above the threshold.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCANDIDATE\tTOTAL\tCONTENT\tAUDIENCE\tPERF\tLOCATION\tBUDGET\tLANGUAGE")
	fmt.Fprintln(tw, "----\t---------\t-----\t-------\t--------\t----\t--------\t------\t--------")
	for i, s := range scores {
		b := s.Breakdown
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\n",
			i+1, s.CandidateID, s.TotalScore,
			b.Content, b.Audience, b.Performance, b.Location, b.Budget, b.Language)
	}
	return tw.Flush()
}

func scoreDetail(w io.Writer, s engine.MatchingScore) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Candidate:\t%s\n", s.CandidateID)
	fmt.Fprintf(tw, "Total:\t%d\n", s.TotalScore)
	fmt.Fprintf(tw, "Content:\t%.1f\n", s.Breakdown.Content)
	fmt.Fprintf(tw, "Audience:\t%.1f\n", s.Breakdown.Audience)
	fmt.Fprintf(tw, "Performance:\t%.1f\n", s.Breakdown.Performance)
	fmt.Fprintf(tw, "Location:\t%.1f\n", s.Breakdown.Location)
	fmt.Fprintf(tw, "Budget:\t%.1f\n", s.Breakdown.Budget)
	fmt.Fprintf(tw, "Language:\t%.1f\n", s.Breakdown.Language)
	fmt.Fprintf(tw, "Reasons:\t%s\n", strings.Join(s.Reasons, "; "))
	return tw.Flush()
}

func runsTable(w io.Writer, runs []model.MatchRun) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No match runs found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tTRIGGER\tCANDIDATES\tRANKED\tTOP\tCREATED")
	fmt.Fprintln(tw, "---\t-------\t----------\t------\t---\t-------")
	for _, r := range runs {
		top := "-"
		if len(r.Results) > 0 {
			top = fmt.Sprintf("%s (%d)", r.Results[0].InfluencerID, r.Results[0].TotalScore)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			r.ID, r.Trigger, r.CandidatesTotal, len(r.Results), top, r.CreatedAt.Format(time.DateTime))
	}
	return tw.Flush()
}

func keyValueTable(w io.Writer, kv map[string]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range slices.Sorted(maps.Keys(kv)) {
		fmt.Fprintf(tw, "%s:\t%s\n", k, kv[k])
	}
	return tw.Flush()
}
