// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/medibot"
	"github.com/poiesic/medibot/ai"
	"github.com/poiesic/medibot/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "medibot",
		Usage: "Medical symptom chatbot with a semantic knowledge base",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Import a condition knowledge snapshot from a JSON file",
				Action: importCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the JSON knowledge snapshot",
						Required: true,
					},
				),
			},
			{
				Name:      "ask",
				Usage:     "Analyze a single message and print the reply",
				Action:    askCommand,
				ArgsUsage: "<message>",
				Flags: append(commonFlags(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Also print the query analysis as JSON",
					},
				),
			},
			{
				Name:   "chat",
				Usage:  "Start an interactive chat session",
				Action: chatCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "user",
						Usage: "User ID for the conversation log",
						Value: "local",
					},
				),
			},
			{
				Name:   "history",
				Usage:  "Show recent conversation log entries",
				Action: historyCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "user",
						Usage: "Limit to a single user's entries",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries",
						Value: 10,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "intent-host",
			Usage: "Intent detection service host URL (defaults to embedding-host)",
		},
		&cli.StringFlag{
			Name:  "intent-model",
			Usage: "Intent detection model name",
			Value: "qwen2.5:3b",
		},
		&cli.BoolFlag{
			Name:  "remote-intent",
			Usage: "Use the intent detection service instead of keyword rules",
		},
	}
}

func openBot(c *cli.Context) (*medibot.Bot, error) {
	intentHost := c.String("intent-host")
	if intentHost == "" {
		intentHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithIntentHost(intentHost),
		ai.WithIntentModel(c.String("intent-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []medibot.BotOption{medibot.WithAIConfig(aiConfig)}
	if c.Bool("remote-intent") {
		opts = append(opts, medibot.WithRemoteIntent())
	}

	bot, err := medibot.NewBot(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open bot: %w", err)
	}
	return bot, nil
}

func importCommand(c *cli.Context) error {
	bot, err := openBot(c)
	if err != nil {
		return err
	}
	defer bot.Close()

	path := c.String("file")
	if err := bot.ImportSnapshot(context.Background(), path); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported knowledge snapshot from %s\n", path)
	return nil
}

func askCommand(c *cli.Context) error {
	message := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if message == "" {
		return fmt.Errorf("message is required")
	}

	bot, err := openBot(c)
	if err != nil {
		return err
	}
	defer bot.Close()

	reply, analysis, err := bot.Chat(context.Background(), "cli", message)
	if err != nil {
		return err
	}

	fmt.Println(reply)

	if c.Bool("json") {
		encoded, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, string(encoded))
	}
	return nil
}

func chatCommand(c *cli.Context) error {
	bot, err := openBot(c)
	if err != nil {
		return err
	}
	defer bot.Close()

	userID := c.String("user")
	ctx := context.Background()

	fmt.Fprintln(os.Stderr, "MediBot interactive session. Type 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply, _, err := bot.Chat(ctx, userID, message)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(reply)
		fmt.Println()
	}
	return scanner.Err()
}

func historyCommand(c *cli.Context) error {
	bot, err := openBot(c)
	if err != nil {
		return err
	}
	defer bot.Close()

	ctx := context.Background()
	limit := c.Int("limit")

	entries, err := fetchHistory(ctx, bot, c.String("user"), limit)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Printf("[%s] %s\n", entry.Timestamp.Format("2006-01-02 15:04:05"), entry.UserID)
		fmt.Printf("  user: %s\n", entry.UserMessage)
		fmt.Printf("  bot:  %s\n", firstLine(entry.BotResponse))
		if len(entry.Symptoms) > 0 {
			fmt.Printf("  symptoms: %s\n", strings.Join(entry.Symptoms, ", "))
		}
		if len(entry.Conditions) > 0 {
			fmt.Printf("  conditions: %s\n", strings.Join(entry.Conditions, ", "))
		}
		fmt.Println()
	}
	return nil
}

func fetchHistory(ctx context.Context, bot *medibot.Bot, userID string, limit int) ([]*core.LogEntry, error) {
	if userID != "" {
		return bot.History(ctx, userID, limit)
	}
	return bot.Recent(ctx, limit)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
