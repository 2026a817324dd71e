package coach

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"github.com/financial-coach/backend/internal/domain/entity"
)

const (
	overBudgetBanner    = "🚨 You're $%s over your monthly budget! "
	backOnTrackLead     = "Here's how to get back on track:\n\n"
	reviewPurchasesTip  = "💡 Review your recent purchases and identify areas where you can cut back next month. Every small change adds up to big savings!"
	exactBudgetMessage  = "💯 Incredible! You've spent exactly your monthly budget. You're a financial management superstar! 🌟"
	underBudgetTemplate = "🎉 Amazing—you’ve got $%s left this month! Treat yourself thoughtfully:\n" +
		"🍽️ Restaurants: %s.\n" +
		"🗺️ Attractions: %s.\n" +
		"Pro tip: go on a weekday for shorter lines and better deals, or use student/local discounts when available."
	maxWantSuggestions = 2
	treatSampleSize    = 3
)

// Restaurants is the pool under-budget treats are sampled from.
var Restaurants = []string{
	"Grab street tacos at a local taqueria (under $12)",
	"Cozy ramen night — a rich tonkotsu bowl (~$15)",
	"Share an Ethiopian injera platter (~$18 per person)",
	"Wood-fired margherita pizza to split (~$10 each)",
	"Thai green curry + jasmine rice (~$14)",
	"Mediterranean bowl with falafel and hummus (~$13)",
	"Korean bibimbap or bulgogi bowl (~$16)",
}

// Attractions is the pool of low-cost outings.
var Attractions = []string{
	"Visit the city art or science museum (look for free days)",
	"Walk a botanical garden at golden hour",
	"Self-guided tour of the historic district",
	"Sunset at a scenic overlook or waterfront",
	"Check out a local market or food hall",
	"Ride rental bikes or scooters through a park loop",
	"Catch a free community concert or outdoor movie",
}

type suggestionRule struct {
	name     string
	match    func(desc string) bool
	template string // %s is the amount
}

func containsAny(keywords ...string) func(string) bool {
	return func(desc string) bool {
		for _, k := range keywords {
			if strings.Contains(desc, k) {
				return true
			}
		}
		return false
	}
}

// Order matters: the first matching rule wins.
var suggestionRules = []suggestionRule{
	{
		name:     "coffee",
		match:    containsAny("coffee", "starbucks", "cafe"),
		template: "☕ Break up with that $%s coffee habit! Instead of buying coffee out, invest in a quality coffee maker or French press. You'll save hundreds while still getting your caffeine fix - and you can make it exactly how you like it!",
	},
	{
		name:     "dining",
		match:    containsAny("restaurant", "dining", "food", "takeout", "delivery"),
		template: "🍳 Transform that $%s dining expense into a culinary adventure! Start meal prepping on Sundays or challenge yourself to recreate your favorite restaurant dishes at home. You'll save money AND become a better cook!",
	},
	{
		name:     "clothing",
		match:    containsAny("gap", "clothes", "clothing", "shirt", "pants", "dress", "fashion"),
		template: "👗 Instead of spending $%s on new clothes, go thrifting! You'll find unique pieces at a fraction of the cost, help the environment, and discover vintage gems you can't find anywhere else!",
	},
	{
		name:     "shopping",
		match:    containsAny("shopping", "retail", "amazon", "target", "walmart"),
		template: "🛍️ That $%s shopping spree can wait! Try the 24-hour rule: wait a full day before buying anything non-essential. Check if you already own something similar, or see if you can borrow it first!",
	},
	{
		name:     "rideshare",
		match:    containsAny("uber", "lyft", "taxi", "rideshare"),
		template: "🚶‍♀️ Turn that $%s ride expense into free exercise! Walk, bike, or use public transit when possible. Your wallet AND your health will thank you!",
	},
	{
		name:     "movies",
		match:    containsAny("movie", "cinema", "theater"),
		template: "🎬 Instead of spending $%s at the movies, host a movie night at home! Make popcorn, invite friends, and create your own cinema experience for a fraction of the cost!",
	},
	{
		name:     "streaming",
		match:    containsAny("netflix", "spotify", "streaming", "subscription"),
		template: "📺 Reconsider that $%s subscription! Share accounts with family, use free alternatives like YouTube or library streaming services, or rotate subscriptions monthly instead of keeping them all active!",
	},
	{
		name:     "books",
		match:    containsAny("book", "bookstore", "kindle"),
		template: "📚 Instead of buying $%s worth of books, visit your local library! You can borrow books for free, discover new authors, and even attend free events and book clubs!",
	},
	{
		name: "fuel",
		match: func(desc string) bool {
			return strings.Contains(desc, "gas") ||
				(strings.Contains(desc, "fuel") && strings.Contains(desc, "station"))
		},
		template: "⛽ Save on that $%s gas expense by combining errands into one trip, carpooling with friends, or using apps to find the cheapest gas stations nearby!",
	},
	{
		name:     "beauty",
		match:    containsAny("beauty", "makeup", "cosmetics", "skincare"),
		template: "💄 Instead of spending $%s on beauty products, try DIY skincare with natural ingredients, swap products with friends, or look for drugstore dupes of expensive brands!",
	},
}

const genericSuggestion = "💪 Instead of spending $%s on %s, try organizing a fun activity with friends like a potluck dinner, game night, or free outdoor adventure! You'll save money while creating amazing memories that last way longer than any purchase!"

// Recommender turns a spending snapshot into advice text.
// The under-budget branch samples from rng, so output is only reproducible with a seeded source.
type Recommender struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRecommender creates a Recommender. A nil rng gets a randomly seeded source.
func NewRecommender(rng *rand.Rand) *Recommender {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Recommender{rng: rng}
}

// Recommend returns the advice for the given window. It never returns an empty string.
func (r *Recommender) Recommend(txs []Transaction, totals Totals, goal Goal) string {
	budget := goal.MonthlyBudget

	if budget.IsPositive() && totals.Total.GreaterThan(budget) {
		return overBudgetAdvice(txs, totals.Total.Sub(budget).StringFixed(2))
	}

	remaining := budget.Sub(totals.Total)
	if remaining.IsPositive() {
		restaurants, attractions := r.sampleTreats()
		return fmt.Sprintf(underBudgetTemplate,
			remaining.StringFixed(2),
			strings.Join(restaurants, "; "),
			strings.Join(attractions, "; "),
		)
	}

	return exactBudgetMessage
}

func overBudgetAdvice(txs []Transaction, overage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, overBudgetBanner, overage)

	wants := TopWants(txs, maxWantSuggestions)
	if len(wants) == 0 {
		b.WriteString(reviewPurchasesTip)
		return b.String()
	}

	tips := make([]string, 0, len(wants))
	for _, tx := range wants {
		tips = append(tips, Suggestion(tx))
	}
	b.WriteString(backOnTrackLead)
	b.WriteString(strings.Join(tips, "\n\n"))
	return b.String()
}

// TopWants returns up to limit Want transactions, largest amount first.
// Equal amounts keep input order.
func TopWants(txs []Transaction, limit int) []Transaction {
	wants := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Category == entity.CategoryWant {
			wants = append(wants, tx)
		}
	}
	sort.SliceStable(wants, func(i, j int) bool {
		return wants[i].Amount.GreaterThan(wants[j].Amount)
	})
	if len(wants) > limit {
		wants = wants[:limit]
	}
	return wants
}

// Suggestion returns the templated tip for a single Want transaction.
func Suggestion(tx Transaction) string {
	amount := tx.Amount.StringFixed(2)
	desc := strings.ToLower(tx.Description)
	for _, rule := range suggestionRules {
		if rule.match(desc) {
			return fmt.Sprintf(rule.template, amount)
		}
	}
	return fmt.Sprintf(genericSuggestion, amount, tx.Description)
}

// SuggestionKind reports which rule a description falls under, or "generic".
func SuggestionKind(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range suggestionRules {
		if rule.match(desc) {
			return rule.name
		}
	}
	return "generic"
}

func (r *Recommender) sampleTreats() ([]string, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sample(r.rng, Restaurants, treatSampleSize), sample(r.rng, Attractions, treatSampleSize)
}

func sample(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]string, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}
