package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// Detail fetch defaults.
const (
	DefaultDetailTimeout     = 30 * time.Second
	DefaultDetailMaxTokens   = 1500
	DefaultDetailTemperature = 0.3
)

// ErrLLMNotConfigured is reported when no LLM client is available.
var ErrLLMNotConfigured = errors.New("LLM not configured")

const detailSystemPrompt = `You are a video game industry expert with deep knowledge of game development staff. Answer from your own knowledge and reply in JSON.`

const detailPrompt = `Compile the production details of the game "%s".%s

Known information:
%s

Provide the following where you can:
1. Director - name and notable works
2. Writer / scenario - name and notable works
3. Composer / music - name and notable works
4. Producer - name and notable works
5. The game series it belongs to
6. Highlights worth noting (for example a new title from a well-known creator, or a sequel to a classic series)

Reply in this JSON format, leaving arrays empty for anything you cannot find:
{
    "directors": [{"name": "Name", "known_for": ["Work 1", "Work 2"]}],
    "writers": [{"name": "Name", "known_for": ["Work 1"]}],
    "composers": [{"name": "Name", "known_for": ["Work 1"]}],
    "producers": [{"name": "Name", "known_for": ["Work 1"]}],
    "series": "Series name",
    "related_games": ["Other games by the same creators"],
    "highlights": ["Highlight 1", "Highlight 2"]
}

Return only JSON. If you cannot find any information at all, return an empty object {}.`

const detailScriptHint = `
Note: "%[1]s" is not written in %[2]s. First work out which game it refers to (and its %[2]s title, if it has one), then answer from what you know about that game.`

// DetailOptions configures the DetailService.
type DetailOptions struct {
	Language  entities.TargetLanguage
	Timeout   time.Duration
	MaxTokens int
	// Temperature is nil for the default; a pointer keeps an explicit 0 usable.
	Temperature *float32
}

// DefaultDetailOptions returns the default detail fetch options.
func DefaultDetailOptions() DetailOptions {
	temp := float32(DefaultDetailTemperature)
	return DetailOptions{
		Language:    entities.DefaultTargetLanguage(),
		Timeout:     DefaultDetailTimeout,
		MaxTokens:   DefaultDetailMaxTokens,
		Temperature: &temp,
	}
}

// DetailService fetches the creative staff of a game from the LLM.
type DetailService struct {
	llm    ports.LLMClient
	opts   DetailOptions
	logger *zap.Logger
}

// NewDetailService creates a new detail service. Zero option fields take their defaults.
func NewDetailService(llm ports.LLMClient, opts DetailOptions, logger *zap.Logger) *DetailService {
	def := DefaultDetailOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = def.MaxTokens
	}
	if opts.Temperature == nil || *opts.Temperature < 0 {
		opts.Temperature = def.Temperature
	}
	if opts.Language.Script.Hi == 0 {
		opts.Language = def.Language
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetailService{llm: llm, opts: opts, logger: logger}
}

// Available reports whether an LLM client is configured.
func (s *DetailService) Available() bool {
	return s.llm != nil
}

// Fetch sends one detail request for name. It never returns an error: failures
// are reported through the result status and retrying is left to the caller.
func (s *DetailService) Fetch(ctx context.Context, name string, info *entities.GameContext) entities.DetailsResult {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.DetailsResult{Status: entities.FetchEmpty, Err: errors.New("empty game name")}
	}
	if s.llm == nil {
		return entities.Unavailable(ErrLLMNotConfigured)
	}

	log := s.logger.With(zap.String("game", name))

	content, err := s.llm.Complete(ctx, ports.CompletionRequest{
		System:      detailSystemPrompt,
		Prompt:      s.buildPrompt(name, info),
		Temperature: *s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
		Timeout:     s.opts.Timeout,
	})
	if err != nil {
		log.Warn("detail request failed", zap.Error(err))
		return entities.Unavailable(err)
	}

	details, err := parseDetails(name, content)
	if err != nil {
		log.Warn("detail response unreadable",
			zap.Error(err),
			zap.String("response_preview", preview(content)))
		return entities.ParseFailed(err)
	}

	result := entities.Succeeded(details)
	log.Debug("detail fetch finished",
		zap.Stringer("status", result.Status),
		zap.Int("credits", details.CreditCount()))
	return result
}

func (s *DetailService) buildPrompt(name string, info *entities.GameContext) string {
	var sb strings.Builder
	if info != nil {
		writeContextLine(&sb, "Developer", info.Developer)
		writeContextLine(&sb, "Publisher", info.Publisher)
		writeContextLine(&sb, "Release date", info.ReleaseDate)
		if info.EnglishName != name {
			writeContextLine(&sb, "English title", info.EnglishName)
		}
		if info.LocalizedName != name {
			writeContextLine(&sb, s.opts.Language.DisplayName()+" title", info.LocalizedName)
		}
	}
	known := strings.TrimRight(sb.String(), "\n")
	if known == "" {
		known = "None"
	}

	hint := ""
	if !s.opts.Language.Script.In(name) {
		hint = fmt.Sprintf(detailScriptHint, name, s.opts.Language.DisplayName())
	}

	return fmt.Sprintf(detailPrompt, name, hint, known)
}

func writeContextLine(sb *strings.Builder, label, value string) {
	if value = strings.TrimSpace(value); value != "" {
		fmt.Fprintf(sb, "%s: %s\n", label, value)
	}
}

// parseDetails turns a model response into details for name. Only an
// unreadable payload or a payload that is not an object is an error.
func parseDetails(name, content string) (*entities.GameDetails, error) {
	var raw rawDetails
	if err := decodeLLMJSON(content, '{', '}', &raw); err != nil {
		return nil, err
	}

	details := entities.NewGameDetails(name)
	details.Directors = raw.Directors.credits(entities.CreditDirector)
	details.Writers = raw.Writers.credits(entities.CreditWriter)
	details.Composers = raw.Composers.credits(entities.CreditComposer)
	details.Producers = raw.Producers.credits(entities.CreditProducer)
	details.Series = strings.TrimSpace(string(raw.Series))
	details.RelatedGames = raw.RelatedGames.values()
	details.Highlights = raw.Highlights.values()
	return details, nil
}

// rawDetails is the JSON structure the model is asked for.
type rawDetails struct {
	Directors    creditList `json:"directors"`
	Writers      creditList `json:"writers"`
	Composers    creditList `json:"composers"`
	Producers    creditList `json:"producers"`
	Series       flexString `json:"series"`
	RelatedGames stringList `json:"related_games"`
	Highlights   stringList `json:"highlights"`
}

type rawCredit struct {
	Name     flexString `json:"name"`
	KnownFor stringList `json:"known_for"`
}

// UnmarshalJSON accepts a credit object or a bare name.
func (c *rawCredit) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Name = flexString(name)
		return nil
	}
	type plain rawCredit
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*c = rawCredit{}
		return nil
	}
	*c = rawCredit(p)
	return nil
}

// creditList drops anything that is not an array.
type creditList []rawCredit

func (l *creditList) UnmarshalJSON(data []byte) error {
	var items []rawCredit
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	*l = items
	return nil
}

// credits converts the list, skipping entries without a name.
func (l creditList) credits(role entities.CreditRole) []entities.Credit {
	out := make([]entities.Credit, 0, len(l))
	for _, rc := range l {
		c, err := entities.NewCredit(string(rc.Name), role, rc.KnownFor)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// flexString reads strings as-is and anything else as empty.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = ""
		return nil
	}
	*f = flexString(s)
	return nil
}

// stringList accepts an array of strings or a single string. Non-string
// elements are dropped.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = stringList{single}
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		*l = nil
		return nil
	}
	out := make(stringList, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

// values returns the trimmed, non-empty entries.
func (l stringList) values() []string {
	out := make([]string, 0, len(l))
	for _, s := range l {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
