package main

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/config"
)

// saveRestoreBool sets a bool flag and returns a func restoring the old value.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.JSON || cfg.Output.ShowBoard || cfg.Output.Compact || cfg.Output.SquareNames {
			t.Errorf("Output = %+v; want all switches off", *cfg.Output)
		}
		if cfg.Output.MaxLineLength != 80 {
			t.Errorf("MaxLineLength = %d; want 80", cfg.Output.MaxLineLength)
		}
	})

	t.Run("switches copied", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(compact, true)()
		defer saveRestoreBool(squareNames, true)()
		defer saveRestoreInt(lineLength, 40)()
		defer saveRestoreString(selectSquare, "c3")()

		cfg := config.NewConfig()
		applyOutputFlags(cfg)

		if !cfg.Output.JSON || !cfg.Output.Compact || !cfg.Output.SquareNames {
			t.Errorf("Output = %+v; want JSON, Compact and SquareNames", *cfg.Output)
		}
		if cfg.Output.MaxLineLength != 40 {
			t.Errorf("MaxLineLength = %d; want 40", cfg.Output.MaxLineLength)
		}
		if cfg.Output.Select != "c3" {
			t.Errorf("Select = %q; want c3", cfg.Output.Select)
		}
	})

	t.Run("non-positive width keeps default", func(t *testing.T) {
		defer saveRestoreInt(lineLength, 0)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.MaxLineLength != 80 {
			t.Errorf("MaxLineLength = %d; want 80", cfg.Output.MaxLineLength)
		}
	})
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Summary},
		{"quiet", true, false, config.Silent},
		{"verbose", false, true, config.Commentary},
		{"quiet wins", true, true, config.Silent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_Duplicates(t *testing.T) {
	tests := []struct {
		name     string
		suppress bool
		check    string
		want     bool
	}{
		{"off", false, "", false},
		{"-D", true, "", true},
		{"check file implies suppression", false, "seen.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(suppressDuplicates, tt.suppress)()
			defer saveRestoreString(checkFile, tt.check)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.SuppressDuplicates != tt.want {
				t.Errorf("SuppressDuplicates = %v; want %v", cfg.SuppressDuplicates, tt.want)
			}
		})
	}
}

func TestApplyFlags_Workers(t *testing.T) {
	defer saveRestoreInt(workers, 4)()
	defer saveRestoreString(outputFile, "moves.txt")()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Workers != 4 {
		t.Errorf("Workers = %d; want 4", cfg.Workers)
	}
	if cfg.OutputFilename != "moves.txt" {
		t.Errorf("OutputFilename = %q; want moves.txt", cfg.OutputFilename)
	}
}

func TestApplyFlags_BoardWithJSONInvalid(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(showBoard, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil; want error for -J with -board")
	}
}
