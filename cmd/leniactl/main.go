package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"lenia/internal/config"
	"lenia/internal/growth"
	"lenia/internal/stats"
	"lenia/internal/storage"
	leniaapi "lenia/pkg/lenia"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "presets":
		return runPresets(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "plot":
		return runPlot(ctx, args[1:])
	case "info":
		return runInfo(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	presetPath := fs.String("preset", "", "preset JSON path (empty uses the built-in aquarium)")
	steps := fs.Int("steps", 100, "number of steps to advance")
	seed := fs.Int64("seed", 1, "rng seed for the aquarium injections")
	aquarium := fs.Bool("aquarium", true, "seed two aquarium creatures before running")
	workers := fs.Int("workers", 0, "convolution worker count (0 uses GOMAXPROCS)")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "lenia.db", "sqlite database path")
	outDir := fs.String("out", "", "artifact directory (empty skips charts and summary)")
	jsonOut := fs.Bool("json", false, "emit the run result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *steps <= 0 {
		return errors.New("steps must be > 0")
	}

	preset, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return err
	}

	client, err := leniaapi.New(leniaapi.Options{
		Preset:  &preset,
		Store:   store,
		Workers: *workers,
	})
	if err != nil {
		_ = storage.CloseIfSupported(store)
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	result, err := client.Run(ctx, leniaapi.RunRequest{
		Steps:        *steps,
		SeedAquarium: *aquarium,
		Seed:         *seed,
	})
	if err != nil {
		return err
	}

	if *outDir != "" {
		fn, err := growth.Get(preset.Growth)
		if err != nil {
			return err
		}
		summary := stats.RunSummary{
			Preset:    preset.Name,
			Steps:     result.Steps,
			ElapsedMS: result.Elapsed.Milliseconds(),
			Channels:  result.Channels,
		}
		paths, err := stats.WriteArtifacts(*outDir, result.RunID, fn, preset.Height, preset.Width, preset.Kernels, summary)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Printf("wrote %s\n", path)
		}
	}

	if *jsonOut {
		type runItem struct {
			RunID     string                 `json:"run_id"`
			Preset    string                 `json:"preset"`
			Steps     uint64                 `json:"steps"`
			ElapsedMS int64                  `json:"elapsed_ms"`
			Channels  []stats.ChannelSummary `json:"channels"`
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runItem{
			RunID:     result.RunID,
			Preset:    preset.Name,
			Steps:     result.Steps,
			ElapsedMS: result.Elapsed.Milliseconds(),
			Channels:  result.Channels,
		})
	}

	fmt.Printf("run_id=%s preset=%s steps=%d elapsed_ms=%d\n",
		result.RunID, preset.Name, result.Steps, result.Elapsed.Milliseconds())
	for _, ch := range result.Channels {
		fmt.Printf("channel=%d min=%.6f max=%.6f mean=%.6f mass=%.6f\n",
			ch.Channel, ch.Min, ch.Max, ch.Mean, ch.Mass)
	}
	return nil
}

func runPresets(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	list := fs.Bool("list", false, "list the built-in preset and every stored preset")
	show := fs.String("show", "", "print one preset as JSON")
	save := fs.String("save", "", "preset JSON path to save into the store")
	exportName := fs.String("export", "", "preset to export as JSON")
	output := fs.String("o", "", "output path for -export (defaults to <name>.json)")
	deleteName := fs.String("delete", "", "preset to delete from the store")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "lenia.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	actions := 0
	for _, set := range []bool{*list, *show != "", *save != "", *exportName != "", *deleteName != ""} {
		if set {
			actions++
		}
	}
	if actions > 1 {
		return errors.New("use exactly one of --list, --show, --save, --export, --delete")
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	switch {
	case *show != "":
		preset, err := resolvePreset(ctx, store, *show)
		if err != nil {
			return err
		}
		return config.Save(os.Stdout, preset)
	case *save != "":
		preset, err := config.LoadFile(*save)
		if err != nil {
			return err
		}
		if err := store.SavePreset(ctx, preset); err != nil {
			return err
		}
		fmt.Printf("saved preset=%s\n", preset.Name)
		return nil
	case *exportName != "":
		preset, err := resolvePreset(ctx, store, *exportName)
		if err != nil {
			return err
		}
		path := *output
		if path == "" {
			path = preset.Name + ".json"
		}
		if err := config.SaveFile(path, preset); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	case *deleteName != "":
		if err := store.DeletePreset(ctx, *deleteName); err != nil {
			return err
		}
		fmt.Printf("deleted preset=%s\n", *deleteName)
		return nil
	default:
		names, err := store.Presets(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("preset=%s source=builtin\n", config.Default().Name)
		for _, name := range names {
			fmt.Printf("preset=%s source=store\n", name)
		}
		return nil
	}
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "max runs to list")
	jsonOut := fs.Bool("json", false, "emit runs list as JSON")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "lenia.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	records, err := store.Runs(ctx, *limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	if *jsonOut {
		type runsItem struct {
			RunID        string                 `json:"run_id"`
			Preset       string                 `json:"preset"`
			Steps        uint64                 `json:"steps"`
			ElapsedMS    int64                  `json:"elapsed_ms"`
			CreatedAtUTC string                 `json:"created_at_utc"`
			Channels     []stats.ChannelSummary `json:"channels"`
		}
		items := make([]runsItem, 0, len(records))
		for _, r := range records {
			items = append(items, runsItem{
				RunID:        r.ID,
				Preset:       r.Preset,
				Steps:        r.Steps,
				ElapsedMS:    r.Elapsed.Milliseconds(),
				CreatedAtUTC: r.CreatedAt.UTC().Format(time.RFC3339),
				Channels:     r.Channels,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for _, r := range records {
		fmt.Printf("run_id=%s preset=%s steps=%d elapsed_ms=%d created_at=%s channels=%d\n",
			r.ID,
			r.Preset,
			r.Steps,
			r.Elapsed.Milliseconds(),
			r.CreatedAt.UTC().Format(time.RFC3339),
			len(r.Channels),
		)
	}
	return nil
}

func runPlot(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	presetPath := fs.String("preset", "", "preset JSON path (empty uses the built-in aquarium)")
	outDir := fs.String("out", "plots", "chart output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	preset, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}
	fn, err := growth.Get(preset.Growth)
	if err != nil {
		return err
	}

	paths, err := stats.WriteCharts(*outDir, preset.Name, fn, preset.Height, preset.Width, preset.Kernels)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func runInfo(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	presetPath := fs.String("preset", "", "preset JSON path (empty uses the built-in aquarium)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	preset, err := loadPreset(*presetPath)
	if err != nil {
		return err
	}

	fmt.Printf("preset=%s grid=%dx%d channels=%d dt=%g growth=%s kernels=%d\n",
		preset.Name, preset.Height, preset.Width, preset.Channels, preset.DT, preset.Growth, len(preset.Kernels))
	if len(preset.Active) > 0 {
		fmt.Printf("active=%v\n", preset.Active)
	}
	for i, d := range preset.Kernels {
		fmt.Printf("kernel=%d rings=%v radius=%.2f mean=%.4f sigma=%.4f height=%+.3f route=%d->%d\n",
			i, d.Rings, d.Radius, d.Mean, d.Sigma, d.Height, d.Source, d.Destination)
	}
	for i, row := range preset.Interaction {
		fmt.Printf("interaction=%d weights=%v\n", i, row)
	}
	return nil
}

func loadPreset(path string) (config.Preset, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

func resolvePreset(ctx context.Context, store storage.Store, name string) (config.Preset, error) {
	preset, ok, err := store.Preset(ctx, name)
	if err != nil {
		return config.Preset{}, err
	}
	if ok {
		return preset, nil
	}
	if builtin := config.Default(); name == builtin.Name {
		return builtin, nil
	}
	return config.Preset{}, fmt.Errorf("preset %q not found", name)
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: leniactl <run|presets|runs|plot|info> [flags]", msg)
}
