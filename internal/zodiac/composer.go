package zodiac

import (
	"strconv"
	"strings"
	"time"
)

// Shared lexical tables for the main prophecy templates.
var (
	energyWords     = []string{"cosmic", "celestial", "universal", "spiritual", "mystical", "divine", "magical", "ethereal", "astral", "quantum"}
	actionWords     = []string{"awakens", "transforms", "reveals", "channels", "amplifies", "manifests", "creates", "unlocks", "ignites", "activates"}
	qualityWords    = []string{"profound", "intense", "gentle", "powerful", "harmonious", "dynamic", "radiant", "vibrant", "luminous", "transcendent"}
	timeWords       = []string{"today", "now", "this moment", "currently", "at present", "right now", "this day", "immediately"}
	connectionWords = []string{"through", "via", "by way of", "using", "with the help of", "guided by", "influenced by", "powered by"}
)

// Lucky-attribute tables for the category prophecies.
var (
	luckyColors   = []string{"Red", "Blue", "Green", "Yellow", "Pink", "Purple", "Orange", "Black", "White", "Brown"}
	luckyStones   = []string{"Amethyst", "Ruby", "Emerald", "Sapphire", "Diamond", "Opal", "Garnet", "Turquoise", "Jade", "Pearl", "Topaz", "Quartz"}
	luckyNumbers  = []string{"3", "7", "9", "11", "13", "17", "21", "23", "27", "31", "33", "37", "41", "44", "47", "51", "55", "63", "69", "77", "81", "88", "93", "99"}
	luckyInitials = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z"}
)

// Per-category tables, indexed love, career, health, money.
var (
	categorySubjects = [][]string{
		{"romance", "connection", "attraction", "partnership", "intimacy", "affection", "emotion", "passion"},
		{"opportunity", "success", "advancement", "recognition", "growth", "leadership", "innovation", "achievement"},
		{"vitality", "wellness", "energy", "balance", "strength", "healing", "renewal", "harmony"},
		{"prosperity", "abundance", "wealth", "income", "investment", "savings", "financial growth", "resources"},
	}
	categoryActions = [][]string{
		{"blossoms", "deepens", "emerges", "strengthens", "flourishes", "awakens", "transforms", "develops"},
		{"accelerates", "expands", "manifests", "develops", "progresses", "advances", "succeeds", "thrives"},
		{"improves", "strengthens", "restores", "energizes", "balances", "heals", "revitalizes", "harmonizes"},
		{"increases", "multiplies", "grows", "accumulates", "expands", "develops", "prospers", "flourishes"},
	}
	categoryOutcomes = [][]string{
		{"meaningful bonds", "lasting joy", "deep understanding", "emotional growth", "romantic fulfillment", "heart connections", "soul harmony", "true companionship"},
		{"professional growth", "career breakthroughs", "new opportunities", "skill development", "leadership roles", "financial rewards", "recognition", "success"},
		{"physical wellness", "mental clarity", "emotional balance", "renewed energy", "inner strength", "life vitality", "healing progress", "overall health"},
		{"financial stability", "wealth creation", "investment success", "income growth", "prosperity gains", "security building", "abundance flow", "money success"},
	}
)

func categoryIndex(category string) int {
	switch strings.ToLower(category) {
	case "love":
		return 0
	case "career":
		return 1
	case "health":
		return 2
	case "money":
		return 3
	default:
		return 0
	}
}

func categoryEmoji(category string) string {
	switch strings.ToLower(category) {
	case "love":
		return "\U0001F495" // 💕
	case "career":
		return "\U0001F680" // 🚀
	case "health":
		return "\U0001F4AA" // 💪
	case "money":
		return "\U0001F4B0" // 💰
	default:
		return "✨"
	}
}

func subject(category string, seed int) string {
	t := categorySubjects[categoryIndex(category)]
	return t[seed%len(t)]
}

func action(category string, seed int) string {
	t := categoryActions[categoryIndex(category)]
	return t[seed%len(t)]
}

func outcome(category string, seed int) string {
	t := categoryOutcomes[categoryIndex(category)]
	return t[seed%len(t)]
}

// Compose builds one upper-case prophecy sentence for the given category,
// sign and seed. Identical inputs always produce byte-identical output: every
// table lookup is modulo the table length, so any non-negative seed is valid.
// The "main" category fills one of four sentence templates straight from the
// seed; the other categories rehash (sign + category + date + seed) into a
// second-stage seed that picks the lucky attributes and sentence structure,
// and the result carries the category's emoji prefix.
func Compose(category, sign string, seed int, date time.Time) string {
	if strings.EqualFold(category, "main") {
		return composeMain(sign, seed)
	}
	return composeCategory(category, sign, seed, date)
}

func composeMain(sign string, seed int) string {
	structures := []string{
		energyWords[seed%len(energyWords)] + " energy " + actionWords[(seed+1)%len(actionWords)] + " " +
			qualityWords[(seed+2)%len(qualityWords)] + " opportunities " + timeWords[seed%len(timeWords)] +
			". Your inner wisdom guides this transformation through " + sign + "'s influence.",
		timeWords[seed%len(timeWords)] + ", " + qualityWords[(seed+3)%len(qualityWords)] + " " +
			energyWords[(seed+4)%len(energyWords)] + " forces " + actionWords[(seed+5)%len(actionWords)] +
			" new paths. " + sign + " energy flows " + connectionWords[seed%len(connectionWords)] + " your choices.",
		"A " + qualityWords[(seed+6)%len(qualityWords)] + " shift " + actionWords[(seed+7)%len(actionWords)] + " " +
			connectionWords[seed%len(connectionWords)] + " " + energyWords[(seed+8)%len(energyWords)] +
			" alignment. Your " + sign + " nature enhances this cosmic dance.",
		energyWords[(seed+9)%len(energyWords)] + " currents " + actionWords[(seed+10)%len(actionWords)] + " " +
			qualityWords[(seed+11)%len(qualityWords)] + " change in your life. " + sign +
			"'s wisdom illuminates the path forward.",
	}
	return strings.ToUpper(structures[seed%len(structures)])
}

func composeCategory(category, sign string, seed int, date time.Time) string {
	dateString := date.Format(dateLayout)

	// Second-stage seed scopes the output to (sign, category, day) while the
	// inbound seed keeps the four category fields distinct from each other.
	s := hashString(sign + category + dateString + strconv.Itoa(seed))

	color := luckyColors[s%len(luckyColors)]
	stone := luckyStones[(s+1)%len(luckyStones)]
	number := luckyNumbers[(s+2)%len(luckyNumbers)]
	initial := luckyInitials[(s+3)%len(luckyInitials)]

	structures := []string{
		"Your " + subject(category, s) + " " + action(category, s+1) + " through " + strings.ToLower(color) +
			" energy. The " + stone + " stone amplifies " + outcome(category, s+2) + " today.",
		color + " surroundings attract " + subject(category, s+3) + " that " + action(category, s+4) +
			". Look for connections with letter " + initial + " for " + outcome(category, s+5) + ".",
		"The number " + number + " guides " + subject(category, s+6) + " toward " + outcome(category, s+7) +
			". Your " + stone + " brings clarity to " + action(category, s+8) + " opportunities.",
		subject(category, s+9) + " " + action(category, s+10) + " when you embrace " + strings.ToLower(color) +
			" choices. " + stone + " energy supports " + outcome(category, s+11) + " in unexpected ways.",
	}

	return categoryEmoji(category) + " " + strings.ToUpper(structures[s%len(structures)])
}
