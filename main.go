package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"voiceagents/internal/agent"
	"voiceagents/internal/cart"
	"voiceagents/internal/catalog"
	"voiceagents/internal/config"
	"voiceagents/internal/faq"
	"voiceagents/internal/journal"
	"voiceagents/internal/logger"
	"voiceagents/internal/model"
	"voiceagents/internal/session"
	"voiceagents/internal/tutor"
)

// Console driver: reads one utterance per line and prints the reply, standing
// in for the speech-to-text / text-to-speech pipeline around the agents.
func main() {
	// .env is optional, same as a missing one in production
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	if err := logger.InitLogger(cfg.LogConfig); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		return
	}

	fileCfg, err := config.LoadFile("config.yaml")
	if err != nil {
		logger.Warn().Err(err).Msg("config.yaml not loaded, using defaults")
		fileCfg = config.Defaults()
	}

	ctx := context.Background()
	sessionID := uuid.NewString()[:8]

	var transcripts session.Store
	if cfg.SessionConfig.RedisURL != "" {
		redisStore, err := session.NewRedisStore(ctx, cfg.SessionConfig.RedisURL, cfg.SessionConfig.TTLSeconds)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, falling back to in-memory transcripts")
			transcripts = session.NewMemoryStore(cfg.SessionConfig.TTLSeconds)
		} else {
			transcripts = redisStore
		}
	} else {
		transcripts = session.NewMemoryStore(cfg.SessionConfig.TTLSeconds)
	}

	events := agent.NewChannelPublisher(16)

	handle := buildAgent(os.Getenv("AGENT"), fileCfg, events, transcripts, sessionID)

	logger.Info().Str("session", sessionID).Msg("session started, type your message (ctrl-d to quit)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		reply := handle(ctx, scanner.Text())
		fmt.Println(reply)
		drainEvents(events)
	}
}

func drainEvents(events *agent.ChannelPublisher) {
	for {
		select {
		case event := <-events.C:
			logger.Debug().Str("type", event.Type).Interface("payload", event.Payload).Msg("room event")
		default:
			return
		}
	}
}

// buildAgent picks the conversation handler named by the AGENT environment
// variable; commerce is the default.
func buildAgent(name string, fileCfg *config.FileConfig, events agent.Publisher, transcripts session.Store, sessionID string) func(context.Context, string) string {
	switch strings.ToLower(name) {
	case "sdr":
		a := agent.NewSDR(agent.SDRConfig{
			FAQ:         faq.Load(fileCfg.SDR.FAQPath),
			Leads:       journal.New[model.Lead](fileCfg.SDR.LeadsFile),
			Transcripts: transcripts,
			SessionID:   sessionID,
		})
		return a.HandleTurn

	case "wellness":
		a := agent.NewWellness(agent.WellnessConfig{
			Log:         journal.New[model.WellnessEntry](fileCfg.Wellness.LogFile),
			Publisher:   events,
			Transcripts: transcripts,
			SessionID:   sessionID,
		})
		return a.HandleTurn

	case "barista":
		a := agent.NewBarista(agent.BaristaConfig{
			OrdersDir:   fileCfg.Barista.OrdersDir,
			Publisher:   events,
			Transcripts: transcripts,
			SessionID:   sessionID,
		})
		return a.HandleTurn

	case "tutor":
		a := agent.NewTutor(agent.TutorConfig{
			Content:     tutor.Load(fileCfg.Tutor.ContentPath),
			Publisher:   events,
			Transcripts: transcripts,
			SessionID:   sessionID,
		})
		return func(ctx context.Context, text string) string {
			if strings.TrimSpace(text) == "" || strings.Contains(strings.ToLower(text), "list") {
				return a.ListConcepts()
			}
			return a.ExplainConcept(ctx, strings.TrimSpace(text))
		}

	default:
		a := agent.NewCommerce(agent.CommerceConfig{
			Catalog:     catalog.Load(fileCfg.Commerce.CatalogPath),
			Orders:      cart.NewOrderBook(fileCfg.Commerce.OrdersFile),
			Publisher:   events,
			Transcripts: transcripts,
			SessionID:   sessionID,
			MaxShown:    fileCfg.Commerce.MaxShown,
		})
		return a.HandleTurn
	}
}
