// Command chat is an interactive terminal trip planner. It drives the
// conversation router, the planning wizard and the typed reveal against
// an in-process search engine, so it needs only the mock scrape sources
// running locally.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/alex-user-go/tripplanner/internal/assist"
	"github.com/alex-user-go/tripplanner/internal/chat"
	"github.com/alex-user-go/tripplanner/internal/config"
	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/reveal"
	"github.com/alex-user-go/tripplanner/internal/search"
	"github.com/alex-user-go/tripplanner/internal/sources"
	"github.com/alex-user-go/tripplanner/internal/stay"
	"github.com/alex-user-go/tripplanner/internal/wizard"
)

var (
	promptColor    = color.New(color.FgCyan, color.Bold)
	assistantColor = color.New(color.FgGreen)
	warnColor      = color.New(color.FgYellow)
	headerColor    = color.New(color.FgMagenta, color.Bold)
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	interval := flag.Duration("interval", reveal.DefaultInterval, "typed reveal interval")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	// Keep the terminal clean: only warnings and errors, on stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	metrics := obs.NewMetrics(logger)

	srcs := make([]sources.Source, 0, len(cfg.Sources.Providers))
	for _, p := range cfg.Sources.Providers {
		srcs = append(srcs, sources.NewHTTPSource(p.Name, p.BaseURL, cfg.Sources.FetchTimeout, metrics, logger))
	}
	aggregator := search.NewAggregator(srcs, cfg.Sources.Timeout, metrics, logger)

	router := chat.NewRouter(aggregator, metrics, logger)

	var guide assist.Generator = assist.NewStatic()
	if cfg.Assist.OpenAIAPIKey != "" {
		guide = assist.NewOpenAI(cfg.Assist.OpenAIAPIKey, cfg.Assist.Model, logger)
	}

	stays := stay.NewService(stay.NewClient(cfg.Hotels.BaseURL, cfg.Hotels.APIKey, 10*time.Second), logger)

	p := &planner{
		router:  router,
		guide:   guide,
		stays:   stays,
		emitter: reveal.NewEmitter(*interval),
		stdin:   bufio.NewScanner(os.Stdin),
		ctx:     context.Background(),
	}
	p.machine = wizard.NewMachine(wizard.Hooks{
		OnAIResponse: p.showGuidance,
		OnComplete:   p.showComplete,
	}, logger)

	p.run()
}

type planner struct {
	router  *chat.Router
	guide   assist.Generator
	stays   *stay.Service
	machine *wizard.Machine
	emitter *reveal.Emitter
	stdin   *bufio.Scanner
	ctx     context.Context
}

func (p *planner) run() {
	headerColor.Println("True Travel planner")
	fmt.Println("Ask about destinations in plain words, or type /go <place> when you have decided. /quit exits.")
	fmt.Println()

	for {
		switch p.machine.Current() {
		case wizard.StepDestination:
			if !p.stepDestination() {
				return
			}
		case wizard.StepBudget:
			if !p.stepBudget() {
				return
			}
		case wizard.StepAccommodation:
			if !p.stepAccommodation() {
				return
			}
		case wizard.StepFlight:
			if !p.stepFlight() {
				return
			}
		case wizard.StepAddOns:
			if !p.stepAddOns() {
				return
			}
		case wizard.StepSummary:
			p.stepSummary()
			return
		}
	}
}

// read prompts and returns one trimmed input line. The second result is
// false on EOF or /quit.
func (p *planner) read(prompt string) (string, bool) {
	promptColor.Printf("%s ", prompt)
	if !p.stdin.Scan() {
		fmt.Println()
		return "", false
	}
	line := strings.TrimSpace(p.stdin.Text())
	if line == "/quit" {
		return "", false
	}
	return line, true
}

// say reveals assistant text character by character.
func (p *planner) say(text string) {
	for prefix := range p.emitter.Start(text) {
		assistantColor.Printf("\r%s", prefix)
	}
	fmt.Println()
}

func (p *planner) stepDestination() bool {
	line, ok := p.read("You:")
	if !ok {
		return false
	}
	if line == "" {
		return true
	}

	if dest, found := strings.CutPrefix(line, "/go "); found {
		dest = strings.TrimSpace(dest)
		if dest == "" {
			warnColor.Println("Usage: /go <place>")
			return true
		}
		p.machine.Update(wizard.Patch{Destination: wizard.Ptr(dest)})
		p.machine.Complete(wizard.StepDestination)
		p.fetchGuidance()
		return true
	}

	p.say(p.router.Handle(p.ctx, line))
	return true
}

func (p *planner) fetchGuidance() {
	c := p.machine.Context()
	resp, err := p.guide.Guide(p.ctx, assist.TripBrief{
		Destination: c.Destination,
		Budget:      c.Budget,
		Preferences: c.Preferences.Activities,
	})
	if err != nil {
		warnColor.Printf("guidance unavailable: %v\n", err)
		return
	}
	p.machine.AttachGuidance(resp)
}

func (p *planner) showGuidance(resp assist.Response) {
	headerColor.Println("\nSuggestions")
	for _, s := range resp.Suggestions {
		p.say("  • " + s)
	}
	if len(resp.Recommendations.Accommodations) > 0 {
		headerColor.Println("Where to stay")
		for _, s := range resp.Recommendations.Accommodations {
			fmt.Println("  • " + s)
		}
	}
	fmt.Println()
}

func (p *planner) stepBudget() bool {
	line, ok := p.read("Total budget in USD:")
	if !ok {
		return false
	}
	budget, err := strconv.ParseFloat(strings.TrimPrefix(line, "$"), 64)
	if err != nil || budget <= 0 {
		warnColor.Println("Enter a positive amount, e.g. 1500.")
		return true
	}
	p.machine.Update(wizard.Patch{Budget: wizard.Ptr(budget)})
	p.machine.Complete(wizard.StepBudget)
	return true
}

func (p *planner) stepAccommodation() bool {
	c := p.machine.Context()
	options := p.stays.Find(p.ctx, c.Destination, c.Budget)
	if len(options) == 0 {
		warnColor.Println("Nothing fits that budget. Continuing without a stay.")
		p.machine.Update(wizard.Patch{SelectedAccommodation: wizard.Ptr("none")})
		p.machine.Complete(wizard.StepAccommodation)
		return true
	}

	headerColor.Println("Places to stay")
	for i, opt := range options {
		fmt.Printf("  %d. %s (%s, %.1f★) %s\n", i+1, opt.Name, opt.Price, opt.Rating, opt.Location)
	}

	line, ok := p.read("Pick a number:")
	if !ok {
		return false
	}
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(options) {
		warnColor.Printf("Pick 1-%d.\n", len(options))
		return true
	}
	p.machine.Update(wizard.Patch{SelectedAccommodation: wizard.Ptr(options[choice-1].Name)})
	p.machine.Complete(wizard.StepAccommodation)
	return true
}

func (p *planner) stepFlight() bool {
	line, ok := p.read("Flight preference (airline, or 'skip'):")
	if !ok {
		return false
	}
	if line == "" {
		line = "skip"
	}
	p.machine.Update(wizard.Patch{SelectedFlight: wizard.Ptr(line)})
	p.machine.Complete(wizard.StepFlight)
	return true
}

func (p *planner) stepAddOns() bool {
	line, ok := p.read("Add-ons, comma separated (or 'none'):")
	if !ok {
		return false
	}
	var addOns []string
	if line != "" && line != "none" {
		for _, part := range strings.Split(line, ",") {
			if part = strings.TrimSpace(part); part != "" {
				addOns = append(addOns, part)
			}
		}
	}
	if addOns != nil {
		p.machine.Update(wizard.Patch{AddOns: addOns})
	}
	p.machine.Complete(wizard.StepAddOns)
	return true
}

func (p *planner) stepSummary() {
	c := p.machine.Context()
	headerColor.Println("\nYour trip")
	fmt.Printf("  Destination:   %s\n", c.Destination)
	fmt.Printf("  Budget:        $%.2f\n", c.Budget)
	fmt.Printf("  Accommodation: %s\n", c.SelectedAccommodation)
	fmt.Printf("  Flight:        %s\n", c.SelectedFlight)
	if len(c.AddOns) > 0 {
		fmt.Printf("  Add-ons:       %s\n", strings.Join(c.AddOns, ", "))
	}
}

func (p *planner) showComplete() {
	p.say("All set. Have a great trip!")
}
