package classifier

import (
	"regexp"
	"strconv"
	"strings"

	"outlet-assistant/internal/chat"
)

// Classifier assigns an intent and extracts entities from a raw message.
// It is pure and total: the same (message, context) pair always yields the
// same result, and no input makes it fail.
type Classifier struct {
	locationPatterns []*regexp.Regexp
	malaysiaCities   []*regexp.Regexp
	forecastDays     *regexp.Regexp
	mathExpr         *regexp.Regexp
	rules            []rule
}

// rule is one entry of the ordered classification table. Rules are tried
// top to bottom; the first match wins, which makes category priority
// explicit (first-match, not best-match).
type rule struct {
	intent     chat.Intent
	confidence float64
	match      func(msg string) bool
	refine     refineFunc
}

// refine adjusts entities, missing fields, and confidence after a rule
// matched. It may inspect the session context.
type refineFunc func(c *Classifier, msg string, ctxBag map[string]any, ci *chat.ClassifiedIntent)

// New compiles the classification rule table.
func New() *Classifier {
	c := &Classifier{
		locationPatterns: compileAll(
			`\b(?:petaling jaya|pj)\b`,
			`\b(?:kuala lumpur|kl)\b`,
			`\b(?:ss\s*2|ss2)\b`,
			`\b(?:ss\s*15|ss15)\b`,
			`\bdamansara utama\b`,
			`\bklcc\b`,
			`\bbukit bintang\b`,
		),
		malaysiaCities: compileAll(
			`\b(?:kuala lumpur|kl|johor|penang|selangor|sabah|sarawak)\b`,
			`\b(?:ipoh|malacca|melaka|kuching|kota kinabalu|shah alam)\b`,
			`\b(?:petaling jaya|pj|subang jaya|klang|ampang)\b`,
		),
		forecastDays: regexp.MustCompile(`(\d+)[\s-]?day`),
		mathExpr:     regexp.MustCompile(`(\d+)\s*([\+\-\*\/])\s*(\d+)`),
	}

	greeting := regexpMatcher(`\b(?:hi|hello|hey|good morning|good afternoon|good evening)\b`)
	goodbye := regexpMatcher(`\b(?:bye|goodbye|thank you|thanks|see you)\b`)
	calculation := anyRegexpMatcher(
		`\d+\s*[\+\-\*\/]\s*\d+`,
		`calculate|compute|math|plus|minus|times|divided|sum|total`,
	)
	forecast := anyRegexpMatcher(
		`\b(?:forecast|tomorrow|next|week|days?|future)\b.*\b(?:weather|rain|storm)\b`,
		`\b(?:will it rain|going to rain|rain today|rain tomorrow)\b`,
		`\b(?:weather for|forecast for)\b`,
		`\b(?:3[\s-]?day|weekly|weekend) (?:weather|forecast)\b`,
	)
	current := anyRegexpMatcher(
		`\b(?:weather|temperature|temp|climate|conditions?)\b`,
		`\b(?:hot|cold|warm|cool|humid|dry)\b`,
		`\b(?:current|now|today|right now)\b.*\b(?:weather|temperature)\b`,
		`\b(?:what'?s the weather|how'?s the weather|weather like)\b`,
	)
	productSearch := anyRegexpMatcher(
		`\b(?:product|products|drinkware|mug|mugs|cup|cups|tumbler|tumblers|bottle|bottles)\b`,
		`\b(?:travel mug|coffee mug|espresso cup|french press|cold brew|thermal|carafe)\b`,
		`\b(?:ceramic|stainless steel|bamboo|glass|eco-friendly)\b`,
		`\b(?:buy|purchase|shop|store|merchandise|buy online)\b`,
	)
	outletNL := anyRegexpMatcher(
		`\b(?:find|search|locate|discover)\b.*\b(?:outlet|store|branch|location)\b`,
		`\b(?:drive.?thru|drive.?through)\b`,
		`\b(?:24.?hour|24.?hours|overnight|late night)\b`,
		`\b(?:parking|wifi|meeting|family.?friendly|student.?friendly)\b`,
		`\b(?:near|nearby|close to|around)\b`,
	)

	c.rules = []rule{
		{intent: chat.IntentGreeting, confidence: 0.9, match: greeting},
		{intent: chat.IntentGoodbye, confidence: 0.9, match: goodbye},
		{intent: chat.IntentCalculation, confidence: 0.8, match: calculation, refine: refineCalculation},
		{intent: chat.IntentWeatherForecast, confidence: 0.8, match: forecast, refine: refineForecast},
		{intent: chat.IntentWeatherCurrent, confidence: 0.8, match: current, refine: refineCurrentWeather},
		{intent: chat.IntentProductSearch, confidence: 0.8, match: productSearch, refine: refineProductSearch},
		{intent: chat.IntentOutletSearchNL, confidence: 0.8, match: outletNL, refine: refineOutletNL},
		{intent: chat.IntentOutletSearch, confidence: 0.8, match: containsAny("outlet", "store", "shop", "mall"), refine: refineOutletSearch},
		{intent: chat.IntentHoursInquiry, confidence: 0.8, match: containsAny("hour", "time", "open", "close", "when"), refine: refineInfoInquiry},
		{intent: chat.IntentLocationInquiry, confidence: 0.8, match: containsAny("address", "where", "located"), refine: refineInfoInquiry},
		{intent: chat.IntentPhoneInquiry, confidence: 0.8, match: containsAny("phone", "number", "contact", "call"), refine: refineInfoInquiry},
		{intent: chat.IntentCalculation, confidence: 0.5, match: equalsAny("calculate", "computation", "math"), refine: refineVagueCalculation},
	}

	return c
}

// Classify assigns an intent to the message. Entity extraction runs before
// intent dispatch so gazetteer hits are available to every rule.
func (c *Classifier) Classify(message string, sessionContext map[string]any) chat.ClassifiedIntent {
	msg := strings.ToLower(strings.TrimSpace(message))

	if msg == "" {
		return chat.ClassifiedIntent{
			Intent:      chat.IntentUnclear,
			Entities:    map[string]any{},
			MissingInfo: []string{"message"},
			Confidence:  0.0,
		}
	}

	ci := chat.ClassifiedIntent{
		Entities:    map[string]any{},
		MissingInfo: []string{},
	}

	// Gazetteer extraction: first match per category wins.
	for _, p := range c.locationPatterns {
		if m := p.FindString(msg); m != "" {
			ci.Entities["location"] = m
			break
		}
	}
	for _, p := range c.malaysiaCities {
		if m := p.FindString(msg); m != "" {
			ci.Entities["weather_location"] = m
			break
		}
	}
	if m := c.forecastDays.FindStringSubmatch(msg); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			ci.Entities["forecast_days"] = days
		}
	}

	for _, r := range c.rules {
		if !r.match(msg) {
			continue
		}
		ci.Intent = r.intent
		ci.Confidence = r.confidence
		if r.refine != nil {
			r.refine(c, msg, sessionContext, &ci)
		}
		return ci
	}

	ci.Intent = chat.IntentUnclear
	ci.Confidence = 0.3
	ci.MissingInfo = append(ci.MissingInfo, "clarification")
	return ci
}

// --- refinements ---

func refineCalculation(c *Classifier, msg string, _ map[string]any, ci *chat.ClassifiedIntent) {
	if m := c.mathExpr.FindStringSubmatch(msg); m != nil {
		op1, _ := strconv.Atoi(m[1])
		op2, _ := strconv.Atoi(m[3])
		ci.Entities["operand1"] = op1
		ci.Entities["operator"] = m[2]
		ci.Entities["operand2"] = op2
		return
	}
	ci.MissingInfo = append(ci.MissingInfo, "calculation_expression")
	ci.Confidence = 0.6
}

func refineVagueCalculation(_ *Classifier, _ string, _ map[string]any, ci *chat.ClassifiedIntent) {
	ci.MissingInfo = append(ci.MissingInfo, "calculation_expression")
}

func refineForecast(_ *Classifier, _ string, _ map[string]any, ci *chat.ClassifiedIntent) {
	if _, ok := ci.Entities["forecast_days"]; !ok {
		ci.Entities["forecast_days"] = 3
	}
}

func refineCurrentWeather(_ *Classifier, msg string, _ map[string]any, ci *chat.ClassifiedIntent) {
	if _, ok := ci.Entities["weather_location"]; ok {
		return
	}
	// Only a maximally vague bare term triggers clarification; anything more
	// specific silently falls back to the default city.
	switch msg {
	case "weather", "temperature", "temp", "climate":
		ci.MissingInfo = append(ci.MissingInfo, "location")
		ci.Confidence = 0.6
	}
}

func refineProductSearch(_ *Classifier, msg string, _ map[string]any, ci *chat.ClassifiedIntent) {
	ci.Entities["product_query"] = msg
}

func refineOutletNL(_ *Classifier, msg string, _ map[string]any, ci *chat.ClassifiedIntent) {
	ci.Entities["outlet_query"] = msg
}

func refineOutletSearch(_ *Classifier, msg string, _ map[string]any, ci *chat.ClassifiedIntent) {
	if _, ok := ci.Entities["location"]; ok {
		return
	}
	ci.MissingInfo = append(ci.MissingInfo, "location")
	switch msg {
	case "outlet", "outlets", "store", "stores", "shop", "shops", "show outlets", "find outlets":
		ci.Confidence = 0.6
	}
}

func refineInfoInquiry(_ *Classifier, _ string, ctxBag map[string]any, ci *chat.ClassifiedIntent) {
	if _, ok := ci.Entities["location"]; ok {
		return
	}
	if area, ok := ctxBag["area"].(string); ok && area != "" {
		return
	}
	ci.MissingInfo = append(ci.MissingInfo, "location")
}

// --- matchers ---

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

func regexpMatcher(pattern string) func(string) bool {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}

func anyRegexpMatcher(patterns ...string) func(string) bool {
	res := compileAll(patterns...)
	return func(msg string) bool {
		for _, re := range res {
			if re.MatchString(msg) {
				return true
			}
		}
		return false
	}
}

func containsAny(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}

func equalsAny(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if msg == w {
				return true
			}
		}
		return false
	}
}
