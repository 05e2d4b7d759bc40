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


package medibot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/medibot/ai"
	"github.com/poiesic/medibot/ai/openai"
	"github.com/poiesic/medibot/core"
	"github.com/poiesic/medibot/extract"
	"github.com/poiesic/medibot/intent"
	"github.com/poiesic/medibot/knowledge"
	"github.com/poiesic/medibot/match"
	"github.com/poiesic/medibot/pipeline"
	"github.com/poiesic/medibot/respond"
	"github.com/poiesic/medibot/storage"
	"github.com/poiesic/medibot/storage/badger"
)

// Bot is the top-level medical chatbot: persistent knowledge base and
// conversation log, query analysis pipeline, and per-session response
// generation.
type Bot struct {
	backend   *badger.Backend
	convRepo  storage.ConversationRepository
	condRepo  storage.ConditionRepository
	provider  ai.AIProvider
	store     *knowledge.Store
	analyzer  *pipeline.Analyzer
	generator *respond.Generator

	mu       sync.Mutex
	sessions map[string]*respond.Context

	logger *slog.Logger
}

// BotOption configures a Bot.
type BotOption func(*botOptions)

type botOptions struct {
	aiConfig     *ai.Config
	provider     ai.AIProvider
	topK         int
	threshold    float32
	embedTimeout time.Duration
	window       int
	remoteIntent bool
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(config *ai.Config) BotOption {
	return func(o *botOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects an AI provider directly, bypassing the OpenAI
// provider construction. Used for testing.
func WithProvider(provider ai.AIProvider) BotOption {
	return func(o *botOptions) {
		o.provider = provider
	}
}

// WithTopK sets the maximum number of condition matches per query.
func WithTopK(topK int) BotOption {
	return func(o *botOptions) {
		o.topK = topK
	}
}

// WithThreshold sets the minimum similarity for a condition match.
func WithThreshold(threshold float32) BotOption {
	return func(o *botOptions) {
		o.threshold = threshold
	}
}

// WithEmbedTimeout bounds each query embedding call.
func WithEmbedTimeout(timeout time.Duration) BotOption {
	return func(o *botOptions) {
		o.embedTimeout = timeout
	}
}

// WithNegationWindow sets how many words before a symptom are checked
// for negations.
func WithNegationWindow(window int) BotOption {
	return func(o *botOptions) {
		o.window = window
	}
}

// WithRemoteIntent routes intent detection through the AI provider,
// keeping the keyword classifier as a silent fallback.
func WithRemoteIntent() BotOption {
	return func(o *botOptions) {
		o.remoteIntent = true
	}
}

// NewBot opens a bot on the given database path. An empty path uses an
// in-memory database. Conditions persisted from an earlier import are
// re-embedded on startup; if the embedding service is unreachable the
// bot starts in degraded, keyword-only mode.
func NewBot(dbPath string, opts ...BotOption) (*Bot, error) {
	// Apply options
	options := &botOptions{
		aiConfig:  ai.DefaultConfig(), // Default if not provided
		topK:      match.DefaultTopK,
		threshold: match.DefaultThreshold,
		window:    extract.DefaultWindow,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(dbPath, dbPath == "")
	if err != nil {
		return nil, err
	}

	// Create conversation repository
	convRepo, err := badger.NewConversationRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create condition repository
	condRepo := badger.NewConditionRepository(backend)

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			convRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	bot := &Bot{
		backend:  backend,
		convRepo: convRepo,
		condRepo: condRepo,
		provider: provider,
		sessions: make(map[string]*respond.Context),
		logger:   slog.Default(),
	}

	// Build the pipeline
	extractor := extract.NewExtractor(
		extract.DefaultLexicon(),
		extract.DefaultNegations(),
		extract.WithWindow(options.window),
	)

	var detector ai.IntentDetector = intent.NewClassifier(intent.DefaultRules())
	if options.remoteIntent {
		detector = intent.WithFallback(provider.IntentDetector(), detector)
	}

	matcher, err := match.NewMatcher(provider.Embedder(),
		match.WithTopK(options.topK),
		match.WithThreshold(options.threshold),
		matcherTimeoutOption(options.embedTimeout),
	)
	if err != nil {
		bot.closePartial()
		return nil, err
	}

	// Rebuild the knowledge base from persisted conditions
	base, err := bot.buildBase(context.Background())
	if err != nil {
		bot.closePartial()
		return nil, err
	}
	bot.store = knowledge.NewStore(base)

	analyzer, err := pipeline.NewAnalyzer(extractor, detector, matcher, bot.store)
	if err != nil {
		bot.closePartial()
		return nil, err
	}
	bot.analyzer = analyzer

	generator, err := respond.NewGenerator()
	if err != nil {
		bot.closePartial()
		return nil, err
	}
	bot.generator = generator

	return bot, nil
}

func matcherTimeoutOption(timeout time.Duration) match.Option {
	if timeout > 0 {
		return match.WithEmbedTimeout(timeout)
	}
	return match.WithEmbedTimeout(match.DefaultEmbedTimeout)
}

// buildBase embeds the persisted conditions. An unreachable embedding
// service degrades to an unembedded base instead of failing startup.
func (b *Bot) buildBase(ctx context.Context) (*knowledge.Base, error) {
	records, err := b.condRepo.GetConditions(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &knowledge.Base{}, nil
	}

	base, err := knowledge.Build(ctx, records, b.provider.Embedder())
	if err != nil {
		b.logger.Warn("knowledge base embedding failed, starting without embeddings", "err", err)
		return knowledge.BuildUnembedded(records), nil
	}
	return base, nil
}

// Chat analyzes a user message, generates the reply within the user's
// session context, and logs the exchange. Logging failures are reported
// but do not fail the chat.
func (b *Bot) Chat(ctx context.Context, userID, message string) (string, *core.QueryAnalysis, error) {
	analysis, err := b.analyzer.Analyze(ctx, message)
	if err != nil {
		return "", nil, err
	}

	reply := b.generator.GenerateWithContext(b.session(userID), analysis)

	conditions := make([]string, 0, len(analysis.MatchedConditions))
	for _, m := range analysis.MatchedConditions {
		conditions = append(conditions, m.Condition.Name)
	}

	entry := &core.LogEntry{
		UserID:      userID,
		Timestamp:   time.Now().UTC(),
		UserMessage: message,
		BotResponse: reply,
		Symptoms:    analysis.DetectedSymptoms,
		Conditions:  conditions,
	}
	if _, err := b.convRepo.AddLogEntries(ctx, entry); err != nil {
		b.logger.Error("failed to log conversation entry", "userID", userID, "err", err)
	}

	return reply, analysis, nil
}

// Analyze runs a message through the analysis pipeline without
// generating a reply or touching session state.
func (b *Bot) Analyze(ctx context.Context, message string) (*core.QueryAnalysis, error) {
	return b.analyzer.Analyze(ctx, message)
}

// ImportSnapshot loads condition records from a JSON snapshot file,
// persists them, and rebuilds the knowledge base.
func (b *Bot) ImportSnapshot(ctx context.Context, path string) error {
	records, err := knowledge.LoadSnapshot(path)
	if err != nil {
		return err
	}
	return b.ReloadKnowledge(ctx, records)
}

// ReloadKnowledge replaces the persisted condition set and atomically
// swaps in a freshly embedded knowledge base. Queries in flight keep
// using the previous base.
func (b *Bot) ReloadKnowledge(ctx context.Context, records []*core.ConditionRecord) error {
	if err := b.condRepo.ReplaceConditions(ctx, records...); err != nil {
		return err
	}

	base, err := knowledge.Build(ctx, records, b.provider.Embedder())
	if err != nil {
		b.logger.Warn("knowledge base embedding failed, continuing without embeddings", "err", err)
		base = knowledge.BuildUnembedded(records)
	}
	b.store.Replace(base)
	return nil
}

// History returns a user's most recent logged exchanges, newest first.
func (b *Bot) History(ctx context.Context, userID string, limit int) ([]*core.LogEntry, error) {
	return b.convRepo.GetLogEntriesByUser(ctx, userID, limit)
}

// Recent returns the most recent logged exchanges across all users.
func (b *Bot) Recent(ctx context.Context, limit int) ([]*core.LogEntry, error) {
	return b.convRepo.GetRecentLogEntries(ctx, limit)
}

// ConversationRepository exposes the conversation log store.
func (b *Bot) ConversationRepository() storage.ConversationRepository {
	return b.convRepo
}

// session returns the conversation context for a user, creating it on
// first use.
func (b *Bot) session(userID string) *respond.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	convo, ok := b.sessions[userID]
	if !ok {
		convo = respond.NewContext(respond.DefaultCapacity)
		b.sessions[userID] = convo
	}
	return convo
}

// ClearSession drops a user's conversation context.
func (b *Bot) ClearSession(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, userID)
}

func (b *Bot) closePartial() {
	if b.provider != nil {
		b.provider.Close()
	}
	if b.condRepo != nil {
		b.condRepo.Close()
	}
	if b.convRepo != nil {
		b.convRepo.Close()
	}
	if b.backend != nil {
		b.backend.Close()
	}
}

// Close shuts the bot down.
func (b *Bot) Close() error {
	// Close AI provider first
	if err := b.provider.Close(); err != nil {
		b.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := b.condRepo.Close(); err != nil {
		b.logger.Error("error closing condition repository", "err", err)
		return err
	}
	if err := b.convRepo.Close(); err != nil {
		b.logger.Error("error closing conversation repository", "err", err)
		return err
	}

	// Close backend
	if err := b.backend.Close(); err != nil {
		b.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
