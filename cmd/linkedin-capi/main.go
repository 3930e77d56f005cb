// Command linkedin-capi replays collected events through the LinkedIn
// Conversions API component. Built requests are printed as JSON lines, or
// dispatched when -send is set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	linkedin "github.com/edgee-cloud/linkedin-capi-go"
	"github.com/edgee-cloud/linkedin-capi-go/adapters"
	"github.com/edgee-cloud/linkedin-capi-go/internal/config"
)

func main() {
	eventsPath := flag.String("events", "", "path to a JSON file holding one event or an array of events")
	send := flag.Bool("send", false, "dispatch built requests instead of printing them")
	flag.Parse()

	if *eventsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: linkedin-capi -events events.json [-send]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := adapters.NewPrintLoggerAdapter(cfg.LogLevel)
	var httpAdapter adapters.HTTPAdapter
	if *send {
		httpAdapter = adapters.NewNetHTTPAdapter(cfg.HTTPTimeout)
	}

	failed, err := run(ctx, cfg, adapters.NewFileEventSource(*eventsPath), httpAdapter, logger, os.Stdout)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// run processes every event from source and returns how many failed.
// A nil httpAdapter prints the requests to out instead of sending them.
func run(ctx context.Context, cfg config.Config, source adapters.EventSource, httpAdapter adapters.HTTPAdapter, logger adapters.LoggerAdapter, out io.Writer) (int, error) {
	events, err := source.Load()
	if err != nil {
		return 0, err
	}

	component := linkedin.NewComponent(linkedin.ComponentConfig{
		Endpoint:      cfg.Endpoint,
		APIVersion:    cfg.APIVersion,
		Rules:         cfg.Rules,
		LoggerAdapter: logger,
	})
	settings := cfg.Settings()
	encoder := json.NewEncoder(out)

	failed := 0
	for i := range events {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		event := &events[i]

		req, err := dispatchEvent(component, event, settings)
		if err != nil {
			logger.Warn("Event %d (%s) skipped: %v", i, event.UUID, err)
			failed++
			continue
		}

		if httpAdapter == nil {
			if err := encoder.Encode(req); err != nil {
				return failed, fmt.Errorf("failed to write request: %w", err)
			}
			continue
		}

		resp, err := httpAdapter.Send(ctx, req, nil)
		if err != nil {
			logger.Error("Event %d (%s) not delivered: %v", i, event.UUID, err)
			failed++
			continue
		}
		if !resp.OK {
			logger.Error("Event %d (%s) rejected with status %d: %s", i, event.UUID, resp.Status, resp.Body)
			failed++
			continue
		}
		logger.Info("Event %d (%s) delivered with status %d", i, event.UUID, resp.Status)
	}

	return failed, nil
}

// dispatchEvent routes an event to the entry point matching its type, the
// way a host runtime does.
func dispatchEvent(component linkedin.DataCollection, event *linkedin.Event, settings linkedin.Dict) (*linkedin.Request, error) {
	switch event.EventType {
	case adapters.EventTypePage:
		return component.Page(event, settings)
	case adapters.EventTypeUser:
		return component.User(event, settings)
	default:
		return component.Track(event, settings)
	}
}
