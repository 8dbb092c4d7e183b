// cmd/aion-diag/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Serosh-commits/Aion/internal/config"
	"github.com/Serosh-commits/Aion/internal/diagnostics"
	"github.com/Serosh-commits/Aion/internal/reporter"
	"github.com/Serosh-commits/Aion/internal/session"
	"github.com/Serosh-commits/Aion/internal/support"
)

var (
	input      = flag.String("input", "", "Single IR file to parse and run the default pass pipeline over")
	before     = flag.String("before", "", "Before IR file, for a before/after comparison")
	after      = flag.String("after", "", "After IR file, for a before/after comparison")
	recordFile = flag.String("record", "", "Optional optimization-record file accompanying --before/--after")
	format     = flag.String("format", "text", "Output format (text, json)")
	configPath = flag.String("config", "", "Path to a YAML engine config file")
	versionFl  = flag.Bool("version", false, "Show version information")
)

const toolVersion = "0.1.0"

func main() {
	flag.Parse()

	if *versionFl {
		fmt.Printf("aion-diag version %s\n", toolVersion)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("warning: failed to load config, using defaults: %v", err)
	}

	formatGiven := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "format" {
			formatGiven = true
		}
	})
	if !formatGiven && cfg.ReportFormat != "" {
		*format = cfg.ReportFormat
	}

	sess, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aion-diag: %s\n", err)
		os.Exit(1)
	}

	if err := writeReport(sess); err != nil {
		fmt.Fprintf(os.Stderr, "aion-diag: %s\n", err)
		os.Exit(1)
	}

	os.Exit(exitStatus(sess.Diagnostics))
}

func run(cfg *config.Config) (*session.AnalysisSession, error) {
	singleGiven := *input != ""
	pairGiven := *before != "" || *after != ""

	if singleGiven && pairGiven {
		return nil, support.NewError(support.ConfigError, "--input is mutually exclusive with --before/--after")
	}
	if pairGiven && (*before == "" || *after == "") {
		return nil, support.NewError(support.ConfigError, "--before and --after must both be supplied")
	}
	if !singleGiven && !pairGiven {
		return nil, support.NewError(support.ConfigError, "one of --input or --before/--after is required")
	}

	opts := session.Options{Config: cfg}

	if singleGiven {
		text, err := os.ReadFile(*input)
		if err != nil {
			return nil, support.WrapError(support.IoError, "failed to read "+*input, err)
		}
		return session.RunSingleInput(*input, string(text), opts)
	}

	beforeText, err := os.ReadFile(*before)
	if err != nil {
		return nil, support.WrapError(support.IoError, "failed to read "+*before, err)
	}
	afterText, err := os.ReadFile(*after)
	if err != nil {
		return nil, support.WrapError(support.IoError, "failed to read "+*after, err)
	}
	return session.RunBeforeAfter(*before, string(beforeText), *after, string(afterText), *recordFile, opts)
}

func writeReport(sess *session.AnalysisSession) error {
	switch *format {
	case "json":
		return reporter.NewJSON(sess).WriteTo(os.Stdout, time.Now())
	default:
		return reporter.NewText(sess).WriteTo(os.Stdout)
	}
}

// exitStatus implements the CLI collaborator's exit-status contract: non-zero
// iff any diagnostic reached Critical severity.
func exitStatus(results []diagnostics.DiagnosticResult) int {
	for _, d := range results {
		if d.Severity == diagnostics.Critical {
			return 1
		}
	}
	return 0
}
