package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/dawarpower/internal/coachapi"
	"github.com/2beens/dawarpower/internal/profile"
	"github.com/2beens/dawarpower/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const userAgent = "coachctl/1.0"

const (
	exitOK       = 0
	exitFailed   = 1
	exitMismatch = 2
	exitUsage    = 64
)

var errUsage = errors.New("usage: coachctl [-api URL] [-companion URL] [-timeout 15s] presets | schedule-check | wellness <provider> [fetch|import] | users [list|show <id>|rename <id> <name>|delete <id>] | status")

type cli struct {
	api          *coachapi.Client
	companionURL string
	httpClient   *http.Client
	stdout       io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("coachctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	apiURL := fs.String("api", coachapi.DefaultBaseURL, "remote coaching api base url")
	companionURL := fs.String("companion", "http://localhost:4200", "coach companion base url")
	timeout := fs.Duration("timeout", 15*time.Second, "timeout of a single request")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log.SetOutput(stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   *timeout,
	}
	c := &cli{
		api:          coachapi.NewClient(*apiURL, httpClient),
		companionURL: strings.TrimRight(*companionURL, "/"),
		httpClient:   httpClient,
		stdout:       stdout,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		_, _ = fmt.Fprintln(stderr, errUsage)
		return exitUsage
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "coachctl."+rest[0])
	defer span.End()

	var err error
	switch rest[0] {
	case "presets":
		err = c.presets()
	case "schedule-check":
		err = c.scheduleCheck(ctx)
	case "wellness":
		if len(rest) < 2 || len(rest) > 3 {
			err = errUsage
			break
		}
		action := "fetch"
		if len(rest) == 3 {
			action = rest[2]
		}
		err = c.wellness(ctx, rest[1], action)
	case "users":
		err = c.users(ctx, rest[1:])
	case "status":
		err = c.status(ctx)
	default:
		err = errUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		_, _ = fmt.Fprintln(stderr, errUsage)
		return exitUsage
	case errors.Is(err, errScheduleMismatch):
		_, _ = fmt.Fprintln(stderr, err)
		return exitMismatch
	default:
		_, _ = fmt.Fprintf(stderr, "request failed: %s\n", err)
		return exitFailed
	}
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) presets() error {
	return c.printJSON(profile.PresetCards())
}

var errScheduleMismatch = errors.New("mismatch between generated and fetched schedule")

// scheduleSample is the profile the persistence check builds a schedule for.
func scheduleSample() *profile.CoachProfile {
	p := &profile.CoachProfile{
		FullName:         "CLI Check",
		Occupation:       "Engineer",
		WorkStyle:        profile.WorkStyleRemote,
		Timezone:         "UTC",
		Goal:             profile.GoalMaintain,
		PreferredWindows: []string{profile.WindowMidday, profile.WindowEvening},
		EquipmentAccess:  []string{profile.EquipmentBodyweight},
		DietPreference:   profile.DietStandard,
		StressLevel:      profile.StressModerate,
	}
	p.Normalize()
	return p
}

// scheduleCheck builds a schedule, fetches it back and requires both to match.
func (c *cli) scheduleCheck(ctx context.Context) error {
	payload := coachapi.SchedulePayloadFrom(scheduleSample())

	built, err := c.api.BuildSchedule(ctx, payload)
	if err != nil {
		return fmt.Errorf("build schedule: %w", err)
	}
	fetched, err := c.api.FetchStoredSchedule(ctx, payload)
	if err != nil {
		return fmt.Errorf("fetch stored schedule: %w", err)
	}

	if !reflect.DeepEqual(built, fetched) {
		return errScheduleMismatch
	}

	return c.printJSON(fetched)
}

func (c *cli) wellness(ctx context.Context, provider, action string) error {
	if action != "fetch" && action != "import" {
		return errUsage
	}

	entries, err := c.api.ProviderSample(ctx, provider)
	if err != nil {
		return fmt.Errorf("fetch %s sample: %w", provider, err)
	}

	if action == "fetch" {
		return c.printJSON(entries)
	}

	result, err := c.api.ImportWellnessMetrics(ctx, provider, entries)
	if err != nil {
		return fmt.Errorf("import %s: %w", provider, err)
	}
	return c.printJSON(result)
}

// users manages the api's accounts. Passwords are never printed.
func (c *cli) users(ctx context.Context, args []string) error {
	if len(args) == 0 || (len(args) == 1 && args[0] == "list") {
		users, err := c.api.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		for i := range users {
			users[i].Password = ""
		}
		return c.printJSON(users)
	}

	if len(args) < 2 {
		return errUsage
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		return errUsage
	}

	switch {
	case args[0] == "show" && len(args) == 2:
		user, err := c.api.GetUser(ctx, id)
		if err != nil {
			return fmt.Errorf("get user %d: %w", id, err)
		}
		user.Password = ""
		return c.printJSON(user)
	case args[0] == "rename" && len(args) == 3:
		user, err := c.api.GetUser(ctx, id)
		if err != nil {
			return fmt.Errorf("get user %d: %w", id, err)
		}
		user.Name = args[2]
		updated, err := c.api.UpdateUser(ctx, id, *user)
		if err != nil {
			return fmt.Errorf("update user %d: %w", id, err)
		}
		updated.Password = ""
		return c.printJSON(updated)
	case args[0] == "delete" && len(args) == 2:
		status, err := c.api.DeleteUser(ctx, id)
		if err != nil {
			return fmt.Errorf("delete user %d: %w", id, err)
		}
		return c.printJSON(status)
	default:
		return errUsage
	}
}

// status asks a running companion for its health.
func (c *cli) status(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.companionURL+"/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debugf("close status response body: %s", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read status response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("companion status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var health map[string]any
	if err := json.Unmarshal(body, &health); err != nil {
		return fmt.Errorf("decode status response: %w", err)
	}
	return c.printJSON(health)
}
