package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/limaJavier/matchodds/pkg/config"
	"github.com/limaJavier/matchodds/pkg/model"
	"github.com/limaJavier/matchodds/pkg/output"
)

func main() {
	// Define arguments
	configPathPtr := flag.String("config", "", "Path to the config file; if empty, config.json next to the executable is used when present")
	filePathPtr := flag.String("file", "", "Path to the scenario file (.json, .yaml or .yml)")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	formatPtr := flag.String("format", "", fmt.Sprintf("Output format. Allowed values are: %v (overrides the config)", output.Formats))
	survivorsPtr := flag.Int("survivors", -1, "Number of surviving arrangements listed at the end; 0 disables the listing (overrides the config)")
	suggestPtr := flag.Bool("suggest", false, "Propose a ceremony after every report")
	eachEventPtr := flag.Bool("each-event", false, "Print a report after every event instead of once per step")
	verbosePtr := flag.Bool("verbose", false, "Log the duration of every step")
	flag.Parse()

	// Load configuration
	settings := loadConfig(*configPathPtr)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			settings.Format = *formatPtr
		case "survivors":
			settings.SurvivorLimit = *survivorsPtr
		case "suggest":
			settings.Suggest = *suggestPtr
		case "each-event":
			settings.ReportEachEvent = *eachEventPtr
		case "verbose":
			settings.Verbose = *verbosePtr
		}
	})

	// Validate arguments
	format, err := output.ParseFormat(settings.Format)
	if err != nil {
		log.Fatal(err)
	} else if *filePathPtr == "" {
		log.Fatal("a scenario file must be specified")
	} else if settings.SurvivorLimit < 0 {
		log.Fatalf("survivors must not be negative: %v", settings.SurvivorLimit)
	}

	// Extract scenario
	scenario, err := model.ScenarioFromFile(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse scenario file: %v", err)
	}

	// Open output
	var writer io.Writer = os.Stdout
	if *outFilePathPtr != "" {
		file, err := os.Create(*outFilePathPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		writer = file
	}

	// Run scenario
	engine := scenario.NewEngine()
	if settings.Verbose {
		log.Printf("%v positions, %v elements, %v arrangements", scenario.Size(), scenario.Size()-1, engine.Total())
	}

	start := time.Now()
	remaining := scenario.Run(engine, model.RunOptions{ReportEachEvent: settings.ReportEachEvent}, func(result model.Result) {
		if settings.Verbose {
			log.Printf("%v: %v arrangements left after %v", result.Step, result.Remaining, time.Since(start).Round(time.Millisecond))
		}
		if err := writeResult(writer, format, scenario.Names, result, settings.Suggest); err != nil {
			log.Fatalf("an error occurred while writing the output: %v", err)
		}
	})

	// List survivors
	if settings.SurvivorLimit > 0 && format == output.Text {
		survivors := engine.Survivors(settings.SurvivorLimit)
		fmt.Fprintf(writer, "Surviving arrangements (%v of %v):\n", len(survivors), remaining)
		if err := output.WriteSurvivors(writer, survivors, scenario.Names); err != nil {
			log.Fatalf("an error occurred while writing the survivors: %v", err)
		}
	}

	if remaining == 0 {
		fmt.Fprintln(os.Stderr, "No arrangement is consistent with the scenario")
		os.Exit(20)
	}
}

func loadConfig(configPath string) config.Config {
	if configPath == "" {
		var err error
		if configPath, err = config.ExecutablePath(); err != nil {
			log.Fatal(err)
		}
	}

	settings, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return settings
}

// Only the text format carries titles and event descriptions; csv and json print bare reports
func writeResult(w io.Writer, format output.Format, names model.Names, result model.Result, suggest bool) error {
	if format == output.Text {
		if result.Event == nil {
			fmt.Fprintf(w, "%v\n\n", result.Step)
		} else {
			fmt.Fprintf(w, "[%v] %v\n", result.Step, result.Description)
		}
	}

	if result.Report == nil {
		return nil
	}
	if err := output.WriteReport(w, format, *result.Report, names); err != nil {
		return err
	}

	if !suggest || format != output.Text {
		return nil
	}
	suggestion, err := model.Suggest(*result.Report)
	if errors.Is(err, model.ErrNoSurvivors) {
		return nil
	} else if err != nil {
		return err
	}
	if err := output.WriteSuggestion(w, suggestion, names); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
