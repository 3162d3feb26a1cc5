package dialogue

import (
	"fmt"
	"strings"

	"voiceagents/internal/journal"
	"voiceagents/internal/logger"
	"voiceagents/internal/model"
)

const coffeeGreeting = "Welcome! What can I get started for you today?"

var (
	drinkWords = []string{"latte", "cappuccino", "americano", "espresso", "mocha", "flat white", "cold brew"}
	sizeWords  = []string{"small", "medium", "large"}
	milkWords  = []string{"oat", "almond", "soy", "whole", "skim", "no milk"}
)

// CoffeeFlow takes a drink order over voice: drink type, size, milk, and a
// name for the cup. A completed order is written to its own timestamped file
// under the orders directory.
type CoffeeFlow struct {
	started   bool
	order     model.CoffeeOrder
	ordersDir string
}

// NewCoffeeFlow creates a flow writing completed orders under ordersDir.
func NewCoffeeFlow(ordersDir string) *CoffeeFlow {
	return &CoffeeFlow{ordersDir: ordersDir}
}

// Order returns the order slip as filled so far.
func (f *CoffeeFlow) Order() model.CoffeeOrder {
	return f.order
}

// HandleTurn processes one utterance and returns the barista's reply.
func (f *CoffeeFlow) HandleTurn(text string) string {
	if !f.started {
		f.started = true
		return coffeeGreeting
	}

	lower := strings.ToLower(text)

	if f.order.DrinkType == "" {
		f.order.DrinkType = firstMatch(lower, drinkWords...)
	}
	if f.order.Size == "" {
		f.order.Size = firstMatch(lower, sizeWords...)
	}
	if f.order.Milk == "" {
		f.order.Milk = firstMatch(lower, milkWords...)
	}
	if f.order.Name == "" {
		if name := extractAfter(text, "my name is ", "for ", "i'm "); !isStopWord(name) {
			f.order.Name = name
		}
	}

	if f.order.Complete() {
		return f.finish()
	}

	switch {
	case f.order.DrinkType == "":
		return "What would you like to drink? We have lattes, cappuccinos, americanos, espresso, and mochas."
	case f.order.Size == "":
		return "What size would you like - small, medium, or large?"
	case f.order.Milk == "":
		return "Which milk should I use? We have whole, skim, oat, almond, and soy."
	default:
		return "And what name should I put on the cup?"
	}
}

// finish writes the order slip and resets for the next customer.
func (f *CoffeeFlow) finish() string {
	recap := fmt.Sprintf("a %s %s with %s milk for %s",
		f.order.Size, f.order.DrinkType, f.order.Milk, f.order.Name)

	reply := fmt.Sprintf("Perfect, %s - coming right up!", recap)
	if _, err := journal.WriteSnapshot(f.ordersDir, "order", &f.order); err != nil {
		logger.Error().Err(err).Msg("failed to save coffee order")
		reply = fmt.Sprintf("Perfect, %s - coming right up! (I couldn't print the order slip, please check with the counter.)", recap)
	}

	f.order = model.CoffeeOrder{}
	return reply
}
