package motivation

import "math/rand/v2"

// Quote is an attributed motivational quote.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Tip is a short productivity technique.
type Tip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

var quotes = []Quote{
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"It always seems impossible until it's done.", "Nelson Mandela"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"The way to get started is to quit talking and begin doing.", "Walt Disney"},
	{"Your time is limited, don't waste it living someone else's life.", "Steve Jobs"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"Success is not final, failure is not fatal: It is the courage to continue that counts.", "Winston Churchill"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"You are never too old to set another goal or to dream a new dream.", "C.S. Lewis"},
}

var affirmations = []string{
	"I am capable of achieving my goals and overcoming challenges.",
	"Today I choose to focus on what I can control and let go of what I cannot.",
	"I am becoming more productive and focused every day.",
	"I have the power to create positive change in my life.",
	"I am organized, efficient, and making progress toward my goals.",
	"I celebrate my accomplishments, no matter how small they may seem.",
	"I am committed to my personal growth and development.",
	"I have the discipline to complete my tasks and achieve my goals.",
	"I am resilient and can adapt to any situation.",
	"Today I will take one step closer to my dreams.",
}

var tips = []Tip{
	{"The Two-Minute Rule", "If a task takes less than two minutes to complete, do it immediately instead of postponing it. This prevents small tasks from piling up."},
	{"Time Blocking", "Dedicate specific blocks of time to specific tasks or types of work. This helps maintain focus and reduces context switching."},
	{"The Pomodoro Technique", "Work for 25 minutes, then take a 5-minute break. After four cycles, take a longer 15-30 minute break. This maintains high focus and prevents burnout."},
	{"Eat the Frog", "Start your day by tackling your most challenging or important task. This builds momentum and ensures critical work gets done."},
	{"The 1-3-5 Rule", "Plan to accomplish one big thing, three medium things, and five small things each day. This creates a balanced and achievable daily plan."},
	{"The 5-Second Rule", "If you have an impulse to act on a goal, count down 5-4-3-2-1 and physically move or take action before your mind talks you out of it."},
	{"The Eisenhower Matrix", "Organize tasks by urgency and importance. Focus on important tasks, schedule important but not urgent tasks, delegate urgent but not important tasks, and eliminate the rest."},
	{"Batch Similar Tasks", "Group similar tasks together and do them in one session. This reduces the mental effort of context switching and increases efficiency."},
}

// Quotes returns a copy of the quote list.
func Quotes() []Quote {
	return append([]Quote(nil), quotes...)
}

// RandomQuote picks a quote using r.
func RandomQuote(r *rand.Rand) Quote {
	return quotes[r.IntN(len(quotes))]
}

// RandomAffirmation picks an affirmation using r.
func RandomAffirmation(r *rand.Rand) string {
	return affirmations[r.IntN(len(affirmations))]
}

// TipCount is the number of tips available.
func TipCount() int {
	return len(tips)
}

// TipAt returns tip i, wrapping around in both directions so that
// previous/next navigation never runs off either end.
func TipAt(i int) Tip {
	n := len(tips)
	return tips[((i%n)+n)%n]
}
