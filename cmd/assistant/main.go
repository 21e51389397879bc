package main

import (
	"bufio"
	"campus-chat/classifier"
	"campus-chat/domain"
	"campus-chat/domain/chat"
	apperrors "campus-chat/errors"
	"campus-chat/internal"
	"campus-chat/knowledge"
	"campus-chat/onboarding"
	"campus-chat/reply"
	"campus-chat/repositories"
	"campus-chat/runtime"
	"campus-chat/search"
	"campus-chat/services"
	"campus-chat/timeline"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Exit codes to provide meaningful status to the operating system or
// service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper; run() centralizes
	// initialization, lifecycle, and error reporting so defers fire
	// before the process exits.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assistant terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB) and search index (Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Engine assembly
	kv := repositories.NewBadgerKV(db)
	messageRepository := repositories.NewMessageRepository(kv, logger)
	preferences := repositories.NewPreferenceRepository(kv)

	kb := knowledge.Load()
	intents, err := classifier.New(kb)
	if err != nil {
		return exitRuntime, fmt.Errorf("classifier build failed: %w", err)
	}

	seed := time.Now().UnixNano()
	if config.RandomSeed != nil {
		seed = *config.RandomSeed
	}
	generator := reply.NewGenerator(kb, config.AssistantName, rand.New(rand.NewSource(seed)))

	restoredName, err := preferences.Name()
	if err != nil {
		return exitRuntime, fmt.Errorf("loading preferences failed: %w", err)
	}

	conversation, err := timeline.New(messageRepository, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("loading history failed: %w", err)
	}

	orchestrator := runtime.NewOrchestrator(
		logger, conversation, preferences, intents, generator,
		onboarding.New(restoredName),
		search.NewIndex(blugeWriter, logger),
		config.AssistantName, config.ReplyDelay,
	)
	if err := orchestrator.Start(); err != nil {
		return exitRuntime, fmt.Errorf("seeding welcome failed: %w", err)
	}
	service := services.NewChatService(orchestrator)

	// 4. REPL
	if err := repl(service, config); err != nil {
		return exitRuntime, err
	}
	logger.Info("Session closed")
	return exitOK, nil
}

func repl(service services.IChatService, config internal.Config) error {
	printHistory(service.History(), config.HistoryLimit)
	color.Gray.Println("Commands: /history, /find <terms>, /edit <id> <text>, /delete <id>, /theme <name>, /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.Green.Print("you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit":
			return nil
		case line == "/history":
			printHistory(service.History(), config.HistoryLimit)
		case strings.HasPrefix(line, "/find"):
			runSearch(service, line)
		case strings.HasPrefix(line, "/edit "):
			runEdit(service, config, strings.TrimPrefix(line, "/edit "))
		case strings.HasPrefix(line, "/delete "):
			runDelete(service, strings.TrimPrefix(line, "/delete "))
		case strings.HasPrefix(line, "/theme "):
			runTheme(service, strings.TrimPrefix(line, "/theme "))
		default:
			_, assistant, err := service.Submit(context.Background(), chat.SubmitCommand{Content: line})
			if errors.Is(err, apperrors.ErrEmptyContent) {
				continue
			}
			if err != nil {
				color.Red.Printf("error: %v\n", err)
				continue
			}
			color.Cyan.Printf("%s> ", config.AssistantName)
			fmt.Println(assistant.Content)
		}
	}
}

func runSearch(service services.IChatService, line string) {
	hits, err := service.Search(context.Background(), chat.SearchCommand{Input: line})
	if err != nil {
		color.Red.Printf("error: %v\n", err)
		return
	}
	if len(hits) == 0 {
		color.Gray.Println("no matches")
		return
	}
	for _, hit := range hits {
		color.Gray.Printf("[%s] %s: %s\n", hit.At.Format(time.Kitchen), hit.Sender, hit.Content)
	}
}

func runEdit(service services.IChatService, config internal.Config, args string) {
	id, rest, ok := parseID(args)
	if !ok || strings.TrimSpace(rest) == "" {
		color.Red.Println("usage: /edit <id> <new text>")
		return
	}
	updated, err := service.EditUserMessage(chat.EditCommand{ID: id, Content: rest})
	if err != nil {
		color.Red.Printf("error: %v\n", err)
		return
	}
	color.Gray.Printf("edited %s\n", updated.ID)
	printHistory(service.History(), config.HistoryLimit)
}

func runDelete(service services.IChatService, args string) {
	id, _, ok := parseID(args)
	if !ok {
		color.Red.Println("usage: /delete <id>")
		return
	}
	if err := service.DeleteMessage(chat.DeleteCommand{ID: id}); err != nil {
		color.Red.Printf("error: %v\n", err)
		return
	}
	color.Gray.Printf("deleted %s\n", id)
}

func runTheme(service services.IChatService, theme string) {
	if err := service.SetTheme(strings.TrimSpace(theme)); err != nil {
		color.Red.Printf("error: %v\n", err)
		return
	}
	color.Gray.Printf("theme set to %s\n", strings.TrimSpace(theme))
}

func parseID(args string) (uuid.UUID, string, bool) {
	fields := strings.SplitN(strings.TrimSpace(args), " ", 2)
	id, err := uuid.Parse(fields[0])
	if err != nil {
		return uuid.Nil, "", false
	}
	rest := ""
	if len(fields) == 2 {
		rest = fields[1]
	}
	return id, rest, true
}

func printHistory(messages []domain.Message, limit *int) {
	if limit != nil && len(messages) > *limit {
		messages = messages[len(messages)-*limit:]
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "At", "Sender", "Text"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, message := range messages {
		text := message.Content
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i] + " …"
		}
		table.Append([]string{
			message.ID.String(),
			message.At.Format("Jan 2 15:04"),
			string(message.Sender),
			text,
		})
	}
	table.Render()
}
