package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// Translation defaults.
const (
	DefaultTranslationBatchSize = 5
	DefaultTranslationTimeout   = 60 * time.Second
	DefaultTranslationMaxTokens = 2000
)

const translationSystemPrompt = `You are a video game localization expert. Only give official %[1]s titles you are 100%% certain of. When unsure, keep the English title. Never confuse different game series.`

const translationPrompt = `I need the official %[1]s titles of the following games.

Games:
%[2]s

Analyse each game and return a JSON array. Each element has:
- "en": the original English title, copied exactly from the list above
- "cn": the official %[1]s title
- "sure": boolean, true only if you are 100%% certain this is the correct official title

Rules:
1. Only fill in official titles you are 100%% certain of.
2. If you are unsure, have never heard of the game, or it has no %[1]s title, set "cn" to the English title and "sure" to false.
3. Do not guess and do not translate the title yourself. Keeping the English title is better than a wrong one.

Example:
[
  {"en": "The Legend of Zelda: Tears of the Kingdom", "cn": "塞尔达传说：王国之泪", "sure": true},
  {"en": "Some Unknown Indie Game", "cn": "Some Unknown Indie Game", "sure": false}
]

Return only the JSON array.`

// TranslationOptions configures the TranslationService.
type TranslationOptions struct {
	Language  entities.TargetLanguage
	BatchSize int
	Timeout   time.Duration
	MaxTokens int
}

// DefaultTranslationOptions returns options for Simplified Chinese in batches of five.
func DefaultTranslationOptions() TranslationOptions {
	return TranslationOptions{
		Language:  entities.DefaultTargetLanguage(),
		BatchSize: DefaultTranslationBatchSize,
		Timeout:   DefaultTranslationTimeout,
		MaxTokens: DefaultTranslationMaxTokens,
	}
}

// TranslationService resolves official localized game titles through the LLM.
type TranslationService struct {
	llm    ports.LLMClient
	opts   TranslationOptions
	logger *zap.Logger
}

// NewTranslationService creates a new translation service. Zero option fields
// take their defaults. A nil llm makes every translation the identity.
func NewTranslationService(llm ports.LLMClient, opts TranslationOptions, logger *zap.Logger) *TranslationService {
	def := DefaultTranslationOptions()
	if opts.BatchSize <= 0 {
		opts.BatchSize = def.BatchSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = def.MaxTokens
	}
	if opts.Language.Script.Hi == 0 {
		opts.Language = def.Language
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationService{llm: llm, opts: opts, logger: logger}
}

// Language returns the target language.
func (s *TranslationService) Language() entities.TargetLanguage {
	return s.opts.Language
}

// Translate maps every input name to its display name. A name maps to itself
// unless the model returned a confident translation in the target script.
// Batches run sequentially in input order and a failed batch only affects its
// own names.
func (s *TranslationService) Translate(ctx context.Context, names []string) map[string]string {
	result := make(map[string]string, len(names))
	pending := make([]string, 0, len(names))
	for _, name := range names {
		if _, seen := result[name]; seen {
			continue
		}
		result[name] = name
		if strings.TrimSpace(name) != "" {
			pending = append(pending, name)
		}
	}

	if s.llm == nil {
		return result
	}

	for i, batch := range partition(pending, s.opts.BatchSize) {
		//nolint:loopcall // batches are sent one at a time to bound model confusion
		translated := s.translateBatch(ctx, i, batch)
		for name, display := range translated {
			result[name] = display
		}
	}
	return result
}

// partition splits names into consecutive batches of at most size.
func partition(names []string, size int) [][]string {
	if size <= 0 {
		size = DefaultTranslationBatchSize
	}
	batches := make([][]string, 0, (len(names)+size-1)/size)
	for start := 0; start < len(names); start += size {
		end := min(start+size, len(names))
		batches = append(batches, names[start:end])
	}
	return batches
}

func (s *TranslationService) translateBatch(ctx context.Context, index int, batch []string) map[string]string {
	result := make(map[string]string, len(batch))
	for _, name := range batch {
		result[name] = name
	}

	log := s.logger.With(zap.Int("batch", index), zap.Strings("names", batch))
	lang := s.opts.Language.DisplayName()

	content, err := s.llm.Complete(ctx, ports.CompletionRequest{
		System:      fmt.Sprintf(translationSystemPrompt, lang),
		Prompt:      fmt.Sprintf(translationPrompt, lang, numberedList(batch)),
		Temperature: 0,
		MaxTokens:   s.opts.MaxTokens,
		Timeout:     s.opts.Timeout,
	})
	if err != nil {
		log.Warn("translation request failed", zap.Error(err))
		return result
	}

	var items []json.RawMessage
	if err := decodeLLMJSON(content, '[', ']', &items); err != nil {
		log.Warn("translation response unreadable",
			zap.Error(err),
			zap.String("response_preview", preview(content)))
		return result
	}

	fold := cases.Fold()
	for _, raw := range items {
		var item translationItem
		if err := json.Unmarshal(raw, &item); err != nil {
			log.Debug("skipping malformed translation item", zap.ByteString("item", raw))
			continue
		}
		if reason := s.reject(item); reason != "" {
			log.Debug("translation candidate rejected",
				zap.String("en", item.EN),
				zap.String("localized", item.Localized),
				zap.String("reason", reason))
			continue
		}
		if source, ok := matchSourceName(fold, batch, item.EN); ok {
			result[source] = item.Localized
		}
	}
	return result
}

func (s *TranslationService) reject(item translationItem) string {
	switch {
	case !bool(item.Sure):
		return "not sure"
	case strings.TrimSpace(item.EN) == "" || strings.TrimSpace(item.Localized) == "":
		return "empty field"
	case !s.opts.Language.Script.In(item.Localized):
		return "no target script characters"
	default:
		return ""
	}
}

// matchSourceName finds the batch name the model referred to: exact first,
// then ignoring case and whitespace differences.
func matchSourceName(fold cases.Caser, batch []string, en string) (string, bool) {
	for _, name := range batch {
		if name == en {
			return name, true
		}
	}
	key := normalizeName(fold, en)
	for _, name := range batch {
		if normalizeName(fold, name) == key {
			return name, true
		}
	}
	return "", false
}

func normalizeName(fold cases.Caser, s string) string {
	return fold.String(strings.Join(strings.Fields(s), " "))
}

func numberedList(names []string) string {
	var sb strings.Builder
	for i, name := range names {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// translationItem is one element of the model's translation array.
type translationItem struct {
	EN        string   `json:"en"`
	Localized string   `json:"cn"`
	Sure      flexBool `json:"sure"`
}

// flexBool accepts JSON booleans and the strings "true" and "false".
// Anything else reads as false.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = flexBool(strings.EqualFold(strings.TrimSpace(s), "true"))
		return nil
	}
	*b = false
	return nil
}
