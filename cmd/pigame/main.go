// Package main provides the CLI entrypoint for pigame.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docdyhr/pigame/internal/config"
	"github.com/docdyhr/pigame/internal/diff"
	"github.com/docdyhr/pigame/internal/difficulty"
	"github.com/docdyhr/pigame/internal/digits"
	"github.com/docdyhr/pigame/internal/model"
	"github.com/docdyhr/pigame/internal/render"
	"github.com/docdyhr/pigame/internal/stats"
	"github.com/docdyhr/pigame/internal/store"
	"github.com/docdyhr/pigame/internal/tui"
)

const version = "1.6.0"

const (
	defaultEvalLength = 15
	defaultMode       = "standard"
	defaultMinDigits  = 5
	defaultMaxDigits  = 100
	defaultChunkSize  = 10
	defaultTimeLimit  = 60.0
)

var (
	showVersion bool
	verbose     bool
	evalLength  int

	practiceRun  bool
	practiceMode string
	minDigits    int
	maxDigits    int
	chunkSize    int
	timeLimit    float64
	visualAid    bool
	noVisualAid  bool

	showStats  bool
	editConfig bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pigame [flags] [YOUR_PI]",
		Short:         "Memorize and evaluate the decimals of π",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "increase verbosity")
	rootCmd.Flags().IntVarP(&evalLength, "length", "p", 0, "calculate and show π with LENGTH decimals")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version")

	rootCmd.Flags().BoolVar(&practiceRun, "practice", false, "run an interactive practice session")
	rootCmd.Flags().StringVar(&practiceMode, "practice-mode", defaultMode, "practice mode (standard, timed, chunk)")
	rootCmd.Flags().IntVar(&minDigits, "min-digits", defaultMinDigits, "minimum digit goal for practice")
	rootCmd.Flags().IntVar(&maxDigits, "max-digits", defaultMaxDigits, "maximum digits per practice session")
	rootCmd.Flags().IntVar(&chunkSize, "chunk-size", defaultChunkSize, "digits per chunk in chunk mode")
	rootCmd.Flags().Float64Var(&timeLimit, "time-limit", defaultTimeLimit, "time limit in seconds for timed mode")
	rootCmd.Flags().BoolVar(&visualAid, "visual-aid", false, "underline mismatches instead of relying on color")
	rootCmd.Flags().BoolVar(&noVisualAid, "no-visual-aid", false, "disable the visual aid for this run")

	rootCmd.Flags().BoolVar(&showStats, "stats", false, "show practice statistics")
	rootCmd.Flags().BoolVar(&editConfig, "config", false, "create/open the config file")

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("pigame version: %s (https://github.com/docdyhr/pigame)\n", version)
		return nil
	}
	if editConfig {
		return runConfigEdit()
	}

	fileCfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "practice-mode", &practiceMode, fileCfg.Mode)
	applyIntConfig(cmd, "min-digits", &minDigits, fileCfg.MinDigits)
	applyIntConfig(cmd, "max-digits", &maxDigits, fileCfg.MaxDigits)
	applyIntConfig(cmd, "chunk-size", &chunkSize, fileCfg.ChunkSize)
	applyFloatConfig(cmd, "time-limit", &timeLimit, fileCfg.TimeLimitSeconds)
	applyBoolConfig(cmd, "visual-aid", &visualAid, fileCfg.VisualAid)
	if noVisualAid {
		visualAid = false
	}

	if showStats {
		return runStats()
	}
	if practiceRun {
		return runPractice()
	}
	return runEvaluate(cmd, args)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	userPi := ""
	if len(args) == 1 {
		userPi = args[0]
	}

	if userPi == "" && !cmd.Flags().Changed("length") {
		if uerr := cmd.Usage(); uerr != nil {
			return uerr
		}
		return fmt.Errorf("provide YOUR_PI, or use -p, --practice, --stats, or --config")
	}

	length := defaultEvalLength
	if cmd.Flags().Changed("length") {
		if evalLength <= 0 {
			length = defaultEvalLength
		} else {
			length = evalLength
		}
		reference, err := digits.Formatted(length)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("π with %d decimals:\t%s\n", length, reference)
		} else {
			fmt.Println(reference)
		}
		if userPi == "" {
			return nil
		}
	}

	if handleEasterEgg(userPi) {
		return nil
	}
	if err := diff.ValidateInput(userPi); err != nil {
		return err
	}

	decimals := length
	if !cmd.Flags().Changed("length") {
		// Without -p the reference length follows the input: everything
		// after the "3." prefix counts as decimals.
		decimals = len(userPi) - 2
		if len(userPi) < 3 {
			decimals = len(userPi)
		}
	}
	reference, err := digits.Formatted(decimals)
	if err != nil {
		return err
	}
	return render.Results(os.Stdout, reference, userPi, decimals, verbose, visualAid)
}

func runPractice() error {
	mode, err := model.ParseMode(practiceMode)
	if err != nil {
		return err
	}
	cfg := model.PracticeConfig{
		Mode:             mode,
		MinDigits:        minDigits,
		MaxDigits:        maxDigits,
		ChunkSize:        chunkSize,
		TimeLimitSeconds: timeLimit,
		VisualAid:        visualAid,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	reference, err := digits.Digits(cfg.MaxDigits)
	if err != nil {
		return fmt.Errorf("--max-digits: %w", err)
	}

	st := store.NewFileStore(config.DefaultStatsPath())
	records, lerr := st.Load()
	if lerr != nil {
		logErrf("warning: %v; starting with an empty history\n", lerr)
		records = nil
	}
	agg := stats.Aggregate(records)
	goal := difficulty.StartDigits(agg, cfg)

	rec, err := tui.Run(cfg, st, reference, goal)
	if err != nil {
		return err
	}

	fmt.Printf("Digits achieved: %d\n", rec.Digits)
	fmt.Printf("Errors: %d\n", rec.Errors)
	fmt.Printf("Time: %.1fs\n", rec.ElapsedSeconds)
	if speed := stats.Speed(rec.Digits, rec.ElapsedSeconds); speed > 0 {
		fmt.Printf("Speed: %.1f digits/min\n", speed)
	}
	if rec.Digits > agg.BestDigits {
		fmt.Println("New personal best!")
	}
	return nil
}

func runStats() error {
	st := store.NewFileStore(config.DefaultStatsPath())
	records, err := st.Load()
	if err != nil {
		logErrf("warning: %v; starting with an empty history\n", err)
		records = nil
	}
	width := 80
	if w, _, werr := term.GetSize(int(os.Stdout.Fd())); werr == nil && w > 0 {
		width = w
	}
	return stats.Render(os.Stdout, records, width)
}

func runConfigEdit() error {
	path := config.DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := config.Save(path, defaultFileConfig()); err != nil {
			return err
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editCmd.Stdin = os.Stdin
	editCmd.Stdout = os.Stdout
	editCmd.Stderr = os.Stderr
	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	// Reject an edit that left the file invalid rather than persisting it
	// silently into the next run.
	fileCfg, err := config.Load(path)
	if err != nil {
		return err
	}
	merged := mergedPracticeConfig(fileCfg)
	if err := merged.Validate(); err != nil {
		return fmt.Errorf("config is invalid after edit: %w", err)
	}
	return nil
}

func defaultFileConfig() config.FileConfig {
	mode := defaultMode
	minD := defaultMinDigits
	maxD := defaultMaxDigits
	chunk := defaultChunkSize
	limit := defaultTimeLimit
	aid := false
	return config.FileConfig{
		Mode:             &mode,
		MinDigits:        &minD,
		MaxDigits:        &maxD,
		ChunkSize:        &chunk,
		TimeLimitSeconds: &limit,
		VisualAid:        &aid,
	}
}

func mergedPracticeConfig(fileCfg config.FileConfig) model.PracticeConfig {
	cfg := model.PracticeConfig{
		Mode:             model.Mode(defaultMode),
		MinDigits:        defaultMinDigits,
		MaxDigits:        defaultMaxDigits,
		ChunkSize:        defaultChunkSize,
		TimeLimitSeconds: defaultTimeLimit,
	}
	if fileCfg.Mode != nil {
		cfg.Mode = model.Mode(*fileCfg.Mode)
	}
	if fileCfg.MinDigits != nil {
		cfg.MinDigits = *fileCfg.MinDigits
	}
	if fileCfg.MaxDigits != nil {
		cfg.MaxDigits = *fileCfg.MaxDigits
	}
	if fileCfg.ChunkSize != nil {
		cfg.ChunkSize = *fileCfg.ChunkSize
	}
	if fileCfg.TimeLimitSeconds != nil {
		cfg.TimeLimitSeconds = *fileCfg.TimeLimitSeconds
	}
	if fileCfg.VisualAid != nil {
		cfg.VisualAid = *fileCfg.VisualAid
	}
	return cfg
}

func handleEasterEgg(input string) bool {
	if input == "Archimedes" || input == "pi" || input == "PI" {
		fmt.Println("π is also called Archimedes constant and is commonly defined as")
		fmt.Println("the ratio of a circles circumference C to its diameter d:")
		fmt.Println("π = C / d")
		return true
	}
	return false
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
