// SousChef — an AI-assisted kitchen copilot.
//
// Usage:
//
//	souschef [-verbose] [-quiet]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hazemq/souschef/internal/app"
	"github.com/hazemq/souschef/internal/community"
	"github.com/hazemq/souschef/internal/config"
	"github.com/hazemq/souschef/internal/cook"
	"github.com/hazemq/souschef/internal/display"
	"github.com/hazemq/souschef/internal/domain"
	"github.com/hazemq/souschef/internal/edge"
	"github.com/hazemq/souschef/internal/kitchen"
	"github.com/hazemq/souschef/internal/logger"
	"github.com/hazemq/souschef/internal/planner"
	"github.com/hazemq/souschef/internal/recipe"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".souschef-logs/souschef.log", "file to write logs to (use \"stderr\" to log to console)")
	noAI := flag.Bool("no-ai", false, "disable AI edge calls even if keys are set")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Keep third-party libs that use the default log package on the same
	// output so they don't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)
	defer log.Sync()

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	library := recipe.NewMemoryLibrary(log)
	profiles := kitchen.NewMemoryStore(log)
	feed := community.NewMemoryFeed(log)
	assembler := planner.New(log)
	ui := display.NewUI()

	// Build the AI edge client if credentials are available.
	var ai app.AIClient

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Edge.BaseURL != "" && !*noAI {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid configuration: %v\n", err)
			os.Exit(1)
		}
		var opts []edge.ClientOption
		if cfg.Edge.HeavyTimeout > 0 {
			opts = append(opts,
				edge.WithTimeout(edge.EndpointExtract, cfg.Edge.HeavyTimeout),
				edge.WithTimeout(edge.EndpointMealPlan, cfg.Edge.HeavyTimeout),
			)
		}
		if cfg.Edge.LightTimeout > 0 {
			opts = append(opts,
				edge.WithTimeout(edge.EndpointCaption, cfg.Edge.LightTimeout),
				edge.WithTimeout(edge.EndpointScan, cfg.Edge.LightTimeout),
			)
		}
		ai = edge.NewClient(cfg.Edge.BaseURL, cfg.Edge.APIKey, log, opts...)
		log.Infow("AI edge client enabled", "base_url", cfg.Edge.BaseURL)
	} else if !*noAI {
		log.Infof("AI edge client disabled: set %s env var to enable", config.EnvEdgeBaseURL)
	}

	svc := app.New(ai, library, profiles, feed, assembler, log)

	a := &cliApp{
		svc:      svc,
		library:  library,
		profiles: profiles,
		feed:     feed,
		aiOn:     ai != nil,
		profile:  kitchen.DefaultProfile,
		log:      log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		a.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Errorf("display: %v", err)
	}
	cancel()
}

type cliApp struct {
	svc      *app.Service
	library  domain.RecipeLibrary
	profiles *kitchen.MemoryStore
	feed     domain.PostFeed
	aiOn     bool
	profile  string // active kitchen profile
	log      *zap.SugaredLogger
	ui       *display.UI

	lastList []domain.RecipeSummary // most recent listing, for numeric selection
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintChat("Hi! I'm SousChef. Save a recipe with 'extract <url>' or type 'help'.")
	a.ui.Println("")

	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-a.ui.InputChan():
			if !ok {
				return
			}
			if !a.dispatch(ctx, strings.TrimSpace(input)) {
				return
			}
		}
	}
}

// dispatch handles one REPL line. Returns false on quit.
func (a *cliApp) dispatch(ctx context.Context, input string) bool {
	if input == "" {
		return true
	}

	cmd, arg := splitCommand(input)
	a.log.Debugf("command: %s (arg=%q)", cmd, arg)

	switch cmd {
	case "help":
		a.showHelp()
	case "list", "recipes":
		a.showRecipes(ctx)
	case "show":
		a.showRecipe(ctx, arg)
	case "search", "find":
		a.search(ctx, arg)
	case "extract", "save":
		a.extract(ctx, arg)
	case "remove", "delete":
		a.remove(ctx, arg)
	case "plan":
		a.plan(ctx, arg)
	case "remoteplan":
		a.remotePlan(ctx, arg)
	case "cook":
		a.cookLoop(ctx, arg)
	case "caption":
		a.caption(ctx, arg)
	case "scan":
		a.scan(ctx, arg)
	case "post":
		a.post(ctx, arg)
	case "feed":
		a.showFeed(ctx)
	case "like":
		a.like(ctx, arg)
	case "profile":
		a.switchProfile(ctx, arg)
	case "profiles":
		a.showProfiles(ctx)
	case "appliance":
		a.addAppliance(ctx, arg)
	case "quit", "exit":
		a.ui.PrintChat("Happy cooking!")
		return false
	default:
		a.ui.PrintHint(fmt.Sprintf("Unknown command %q — type 'help'.", cmd))
	}
	return true
}

func splitCommand(input string) (cmd, arg string) {
	parts := strings.SplitN(input, " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

// resolveRecipe maps a numeric index from the last listing, or a raw ID,
// to a recipe ID. Refreshes the listing when none is cached.
func (a *cliApp) resolveRecipe(ctx context.Context, arg string) (string, bool) {
	if arg == "" {
		a.ui.PrintHint("Which recipe? Use a number from 'list'.")
		return "", false
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if len(a.lastList) == 0 {
			list, err := a.library.List(ctx)
			if err != nil {
				a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
				return "", false
			}
			a.lastList = list
		}
		if n < 1 || n > len(a.lastList) {
			a.ui.PrintHint(fmt.Sprintf("No recipe number %d — type 'list'.", n))
			return "", false
		}
		return a.lastList[n-1].ID, true
	}
	return arg, true
}

func (a *cliApp) requireAI() bool {
	if !a.aiOn {
		a.ui.PrintHint("AI is disabled. Set " + config.EnvEdgeBaseURL + " (and remove -no-ai) to enable.")
		return false
	}
	return true
}

// ── Library commands ─────────────────────────────────────────────

func (a *cliApp) showRecipes(ctx context.Context) {
	list, err := a.library.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading recipes: %v", err))
		return
	}
	a.lastList = list

	if len(list) == 0 {
		a.ui.PrintChat("No saved recipes yet. Try 'extract <url>'.")
		return
	}

	a.ui.PrintStep("Saved recipes:")
	for i, r := range list {
		line := fmt.Sprintf("[%d] %s", i+1, r.Title)
		if r.Incomplete {
			line += "  (incomplete)"
		}
		a.ui.PrintInstruction(line)
	}
	a.ui.Println("")
	a.ui.PrintChat("Type 'show <n>' for details or 'cook <n>' to start cooking.")
}

func (a *cliApp) showRecipe(ctx context.Context, arg string) {
	id, ok := a.resolveRecipe(ctx, arg)
	if !ok {
		return
	}
	r, err := a.library.Get(ctx, id)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.ui.PrintStep("=== " + r.Title + " ===")
	if r.TimeEstimateMinutes != nil {
		a.ui.PrintHint(fmt.Sprintf("About %.0f minutes", *r.TimeEstimateMinutes))
	}
	if cal, ok := r.Nutrients.Calories(); ok {
		a.ui.PrintHint(fmt.Sprintf("%.0f kcal per serving", cal))
	}
	if r.SourceURL != nil {
		a.ui.PrintHint("Source: " + *r.SourceURL)
	}

	a.ui.Println("")
	a.ui.PrintStep("Ingredients:")
	for _, ing := range r.Ingredients {
		a.ui.PrintInstruction("- " + formatIngredient(ing))
	}

	a.ui.Println("")
	a.ui.PrintStep(fmt.Sprintf("Steps (%d):", len(r.Steps)))
	for i, s := range r.Steps {
		a.ui.PrintInstruction(fmt.Sprintf("%d. %s", i+1, s))
	}
	if r.Incomplete {
		a.ui.PrintHint("This recipe has no steps yet and can't be cooked.")
	}
}

func (a *cliApp) search(ctx context.Context, query string) {
	list, err := a.library.Search(ctx, query)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.lastList = list

	if len(list) == 0 {
		a.ui.PrintChat(fmt.Sprintf("Nothing matches %q.", query))
		return
	}
	a.ui.PrintStep(fmt.Sprintf("Matches for %q:", query))
	for i, r := range list {
		a.ui.PrintInstruction(fmt.Sprintf("[%d] %s", i+1, r.Title))
	}
}

func (a *cliApp) extract(ctx context.Context, url string) {
	if !a.requireAI() {
		return
	}
	if url == "" {
		a.ui.PrintHint("Usage: extract <url>")
		return
	}

	a.ui.PrintHint("Extracting recipe, this can take a while...")
	r, err := a.svc.ExtractAndSave(ctx, url)
	if err != nil {
		a.reportRequestError("extract", err)
		return
	}

	if r.Incomplete {
		a.ui.PrintChat(fmt.Sprintf("Saved %q, but no cooking steps were found. You can still shop its ingredients.", r.Title))
	} else {
		a.ui.PrintChat(fmt.Sprintf("Saved %q (%d ingredients, %d steps).", r.Title, len(r.Ingredients), len(r.Steps)))
	}
	a.lastList = nil
}

func (a *cliApp) remove(ctx context.Context, arg string) {
	id, ok := a.resolveRecipe(ctx, arg)
	if !ok {
		return
	}
	if err := a.library.Remove(ctx, id); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintChat("Removed.")
	a.lastList = nil
}

// ── Meal planning ────────────────────────────────────────────────

func (a *cliApp) plan(ctx context.Context, arg string) {
	target, avoid := parsePlanArgs(arg)

	plan, err := a.svc.GeneratePlan(ctx, a.profile, target, avoid)
	if err != nil {
		var empty *domain.EmptyPoolError
		if errors.As(err, &empty) {
			a.ui.PrintChat("No complete recipes to plan with. Save some first with 'extract <url>'.")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.printPlan(plan)
}

func (a *cliApp) remotePlan(ctx context.Context, arg string) {
	if !a.requireAI() {
		return
	}
	target, _ := parsePlanArgs(arg)

	a.ui.PrintHint("Asking the planner service, this can take a while...")
	plan, err := a.svc.RequestRemotePlan(ctx, target)
	if err != nil {
		var empty *domain.EmptyPoolError
		if errors.As(err, &empty) {
			a.ui.PrintChat("No complete recipes to plan with. Save some first with 'extract <url>'.")
			return
		}
		a.reportRequestError("mealplan", err)
		return
	}
	a.printPlan(plan)
}

// parsePlanArgs reads "plan [calories] [avoid term,term]".
func parsePlanArgs(arg string) (target float64, avoid []string) {
	fields := strings.Fields(arg)
	for i := 0; i < len(fields); i++ {
		if n, err := strconv.ParseFloat(fields[i], 64); err == nil {
			target = n
			continue
		}
		if strings.EqualFold(fields[i], "avoid") && i+1 < len(fields) {
			for _, t := range strings.Split(fields[i+1], ",") {
				if t = strings.TrimSpace(t); t != "" {
					avoid = append(avoid, t)
				}
			}
			i++
		}
	}
	return target, avoid
}

func (a *cliApp) printPlan(plan *domain.MealPlan) {
	a.ui.PrintStep("This week:")
	for _, day := range plan.Days {
		if len(day.Meals) == 0 {
			a.ui.PrintInstruction(fmt.Sprintf("%s  —", day.Day))
			continue
		}
		titles := make([]string, len(day.Meals))
		for i, m := range day.Meals {
			titles[i] = m.Title
		}
		a.ui.PrintInstruction(fmt.Sprintf("%s  %s", day.Day, strings.Join(titles, ", ")))
	}

	if len(plan.ShoppingList) > 0 {
		a.ui.Println("")
		a.ui.PrintStep("Shopping list:")
		for _, e := range plan.ShoppingList {
			a.ui.PrintInstruction("- " + formatShoppingEntry(e))
		}
	}

	for _, w := range plan.Warnings {
		a.ui.PrintHint("note: " + w)
	}
}

// ── Cook mode ────────────────────────────────────────────────────

// cookLoop runs the guided cook-mode REPL until the user quits it. It
// owns the input channel for its duration; plain top-level commands are
// unavailable while cooking.
func (a *cliApp) cookLoop(ctx context.Context, arg string) {
	id, ok := a.resolveRecipe(ctx, arg)
	if !ok {
		return
	}

	session, r, err := a.svc.StartCooking(ctx, id)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			a.ui.PrintChat("That recipe has no cooking steps, so it can't be cooked.")
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.ui.PrintChat(fmt.Sprintf("Let's cook %s! Type 'next', 'back', 'go to <n>', 'ingredients', or 'quit'.", r.Title))
	a.showCookStep(session, r)

	for {
		select {
		case <-ctx.Done():
			a.ui.ClearProgress()
			return
		case input, ok := <-a.ui.InputChan():
			if !ok {
				a.ui.ClearProgress()
				return
			}
			cmd := cook.ParseCommand(input)
			a.log.Debugf("cook command: %s (step=%d)", cmd.Type, cmd.Step)

			switch cmd.Type {
			case cook.CommandNext:
				if session.AtEnd() {
					a.ui.ClearProgress()
					a.ui.PrintChat(fmt.Sprintf("That's it — %s is done. Enjoy!", r.Title))
					return
				}
				session.Next()
				a.showCookStep(session, r)
			case cook.CommandPrevious:
				if session.AtStart() {
					a.ui.PrintHint("Already at the first step.")
					continue
				}
				session.Previous()
				a.showCookStep(session, r)
			case cook.CommandRepeat:
				a.showCookStep(session, r)
			case cook.CommandJump:
				if err := session.JumpTo(cmd.Step - 1); err != nil {
					a.ui.PrintHint(fmt.Sprintf("There are only %d steps.", session.Len()))
					continue
				}
				a.showCookStep(session, r)
			case cook.CommandIngredients:
				a.ui.PrintStep("Ingredients:")
				for _, ing := range r.Ingredients {
					a.ui.PrintInstruction("- " + formatIngredient(ing))
				}
			case cook.CommandQuit:
				a.ui.ClearProgress()
				a.ui.PrintChat("Leaving cook mode.")
				return
			default:
				a.ui.PrintHint("Try 'next', 'back', 'repeat', 'go to <n>', 'ingredients', or 'quit'.")
			}
		}
	}
}

func (a *cliApp) showCookStep(s *cook.Session, r *domain.Recipe) {
	a.ui.SetProgress(r.Title, s.Index()+1, s.Len())
	a.ui.PrintStep(fmt.Sprintf("Step %d/%d", s.Index()+1, s.Len()))
	a.ui.PrintInstruction(s.Step())
	if s.AtEnd() {
		a.ui.PrintHint("Last step — type 'next' when you're done.")
	}
}

// ── Photos and community ─────────────────────────────────────────

func (a *cliApp) caption(ctx context.Context, image string) {
	if !a.requireAI() {
		return
	}
	if image == "" {
		a.ui.PrintHint("Usage: caption <image-uri>")
		return
	}

	c, err := a.svc.CaptionPhoto(ctx, image)
	if err != nil {
		a.reportRequestError("caption", err)
		return
	}

	a.ui.PrintChat(c.Caption)
	if len(c.Tags) > 0 {
		a.ui.PrintHint(strings.Join(c.Tags, " "))
	}
}

func (a *cliApp) scan(ctx context.Context, image string) {
	if !a.requireAI() {
		return
	}
	if image == "" {
		a.ui.PrintHint("Usage: scan <image-uri>")
		return
	}

	a.ui.PrintHint("Scanning...")
	suggestions, err := a.svc.SuggestFromScan(ctx, image)
	if err != nil {
		a.reportRequestError("scan", err)
		return
	}

	if len(suggestions) == 0 {
		a.ui.PrintChat("Couldn't suggest anything from that photo.")
		return
	}
	a.ui.PrintStep("You could make:")
	for _, s := range suggestions {
		a.ui.PrintInstruction("- " + s.Title)
		if len(s.MatchedIngredients) > 0 {
			a.ui.PrintHint("  using " + strings.Join(s.MatchedIngredients, ", "))
		}
	}
}

// post publishes "post <image-uri> [caption text]". When no caption is
// given and AI is on, one is generated first.
func (a *cliApp) post(ctx context.Context, arg string) {
	var image, caption string
	if parts := strings.SplitN(arg, " ", 2); len(parts) > 0 {
		image = parts[0]
		if len(parts) == 2 {
			caption = strings.TrimSpace(parts[1])
		}
	}
	if image == "" {
		a.ui.PrintHint("Usage: post <image-uri> [caption]")
		return
	}

	var tags []string
	if caption == "" && a.aiOn {
		c, err := a.svc.CaptionPhoto(ctx, image)
		if err != nil {
			a.reportRequestError("caption", err)
			return
		}
		caption = c.Caption
		tags = c.Tags
	}

	author := os.Getenv("USER")
	if author == "" {
		author = "me"
	}

	id, err := a.svc.PublishPost(ctx, author, image, caption, tags)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintChat("Posted! (" + id[:8] + ")")
	if caption != "" {
		a.ui.PrintHint(caption)
	}
}

func (a *cliApp) showFeed(ctx context.Context) {
	posts, err := a.feed.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	if len(posts) == 0 {
		a.ui.PrintChat("The feed is empty. Share something with 'post <image-uri>'.")
		return
	}
	for _, p := range posts {
		a.ui.PrintStep(fmt.Sprintf("%s  (%s, %d likes)", p.Author, p.ID[:8], p.Likes))
		a.ui.PrintInstruction(p.Caption)
		if len(p.Tags) > 0 {
			a.ui.PrintHint(strings.Join(p.Tags, " "))
		}
		a.ui.Println("")
	}
}

func (a *cliApp) like(ctx context.Context, id string) {
	if id == "" {
		a.ui.PrintHint("Usage: like <post-id>")
		return
	}
	if err := a.feed.Like(ctx, id); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintChat("Liked.")
}

// ── Kitchen profiles ─────────────────────────────────────────────

func (a *cliApp) showProfiles(ctx context.Context) {
	names, err := a.profiles.Names(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintStep("Kitchen profiles:")
	for _, n := range names {
		if n == a.profile {
			a.ui.PrintInstruction("* " + n)
		} else {
			a.ui.PrintInstruction("  " + n)
		}
	}
}

func (a *cliApp) switchProfile(ctx context.Context, name string) {
	if name == "" {
		a.showProfiles(ctx)
		return
	}

	p, err := a.profiles.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if err := a.profiles.Save(ctx, domain.NewKitchenProfile(name, nil, nil)); err != nil {
				a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
				return
			}
			a.profile = name
			a.ui.PrintChat(fmt.Sprintf("Created kitchen profile %q. Add equipment with 'appliance <name>'.", name))
			return
		}
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.profile = p.Name
	a.ui.PrintChat(fmt.Sprintf("Using kitchen profile %q (%d appliances).", p.Name, len(p.Appliances)))
}

func (a *cliApp) addAppliance(ctx context.Context, name string) {
	if name == "" {
		a.ui.PrintHint("Usage: appliance <name>")
		return
	}
	if err := a.profiles.AddAppliance(ctx, a.profile, name); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Added %q to kitchen %q.", name, a.profile))
}

// ── Helpers ──────────────────────────────────────────────────────

// reportRequestError prints a friendly line for edge-call failures and
// logs the detail.
func (a *cliApp) reportRequestError(op string, err error) {
	a.log.Errorf("%s: %v", op, err)

	var reqErr *domain.RequestError
	if !errors.As(err, &reqErr) {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	switch reqErr.Kind {
	case domain.RequestSuperseded:
		// A newer request replaced this one; its result will arrive instead.
	case domain.RequestTimeout:
		a.ui.PrintUrgent("The AI service took too long. Try again in a moment.")
	case domain.RequestInvalid:
		a.ui.PrintUrgent("The AI service returned something I couldn't read.")
	default:
		a.ui.PrintUrgent(fmt.Sprintf("The AI service is unavailable (tried %d times).", reqErr.Attempts))
	}
}

func formatIngredient(ing domain.Ingredient) string {
	switch {
	case ing.Quantity != nil && ing.Unit != nil:
		return fmt.Sprintf("%s %s %s", trimFloat(*ing.Quantity), *ing.Unit, ing.Name)
	case ing.Quantity != nil:
		return fmt.Sprintf("%s %s", trimFloat(*ing.Quantity), ing.Name)
	default:
		return ing.Name
	}
}

func formatShoppingEntry(e domain.ShoppingListEntry) string {
	if e.TotalQuantity == nil {
		return e.Name + " (check quantities)"
	}
	if e.Unit != nil {
		return fmt.Sprintf("%s %s %s", trimFloat(*e.TotalQuantity), *e.Unit, e.Name)
	}
	return fmt.Sprintf("%s %s", trimFloat(*e.TotalQuantity), e.Name)
}

// trimFloat renders 2 as "2" and 1.5 as "1.5".
func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func (a *cliApp) showHelp() {
	a.ui.PrintStep("Commands:")
	a.ui.PrintInstruction("  list / recipes        Show saved recipes")
	a.ui.PrintInstruction("  show <n>              Show a recipe's details")
	a.ui.PrintInstruction("  search <text>         Search recipes by title or ingredient")
	a.ui.PrintInstruction("  extract <url>         Save a recipe from a web page (AI)")
	a.ui.PrintInstruction("  remove <n>            Delete a saved recipe")
	a.ui.PrintInstruction("  cook <n>              Start guided cook mode")
	a.ui.PrintInstruction("  plan [kcal] [avoid x,y]   Build a week plan from saved recipes")
	a.ui.PrintInstruction("  remoteplan [kcal]     Ask the AI planner instead")
	a.ui.PrintInstruction("  caption <image-uri>   Caption a food photo (AI)")
	a.ui.PrintInstruction("  scan <image-uri>      Suggest recipes from a fridge photo (AI)")
	a.ui.PrintInstruction("  post <image-uri> [caption]   Share to the community feed")
	a.ui.PrintInstruction("  feed                  Show the community feed")
	a.ui.PrintInstruction("  like <post-id>        Like a post")
	a.ui.PrintInstruction("  profile [name]        Show or switch kitchen profiles")
	a.ui.PrintInstruction("  appliance <name>      Add an appliance to the active kitchen")
	a.ui.PrintInstruction("  help                  Show this message")
	a.ui.PrintInstruction("  quit / exit           Exit")
	a.ui.Println("")
	a.ui.PrintStep("Cook mode:")
	a.ui.PrintInstruction("  next / back / repeat / go to <n> / ingredients / quit")
}
