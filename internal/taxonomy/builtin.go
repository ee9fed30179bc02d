package taxonomy

// Builtin vibe and energy vocabularies: 20 canonical tags each, with the
// long tail of raw phrases that fold into them. Declaration order matters:
// a contested alias belongs to the first group that declares it.

var builtinVibeGroups = []SynonymGroup{
	{Canonical: "classic", Aliases: []string{"classic", "NYC classic", "NYC icon", "heritage NYC", "NYC legend", "NYC-famous", "iconic smoked fish"}},
	{Canonical: "local", Aliases: []string{"local", "local favorite", "neighborhood favorite", "neighborhood staple", "neighborhood gem", "neighborhood cozy", "neighborhood reliable", "neighborhood regulars"}},
	{Canonical: "cafe", Aliases: []string{"café", "coffee", "espresso bar", "espresso in miniature cups", "flat whites", "European café", "Australian café", "Aussie café", "French café", "cute French café", "Paris café fantasy", "Parisian tea salon", "Malaysian café"}},
	{Canonical: "bakery", Aliases: []string{"bakery", "modern bakery", "neighborhood bake shop", "artisanal donut shop", "Scandi bakery", "grain-obsessed bakery", "heritage wheat energy", "sourdough-forward", "precision pastry", "laminated dough temple", "laminated dough obsession", "old-school bakery", "Taiwanese-American bakery", "Filipino American bakery", "Mexican-Jewish bakery", "Caribbean bakery", "Bahraini-owned bakery"}},
	{Canonical: "bar", Aliases: []string{"bar", "cocktails", "drinks", "night", "aperitivo-adjacent", "speakeasy"}},
	{Canonical: "dinner", Aliases: []string{"dinner", "date night", "chef-driven", "chef-y plating", "modern Mexican fine dining", "family-style", "fine-dining"}},
	{Canonical: "breakfast", Aliases: []string{"breakfast", "brunch", "morning", "comfort brunch", "legendary pancakes", "thick pancakes", "challah French toast", "better-for-you brunch", "Brooklyn brunch classic"}},
	{Canonical: "shop", Aliases: []string{"shop", "browse", "design", "shopping", "boutique"}},
	{Canonical: "sightseeing", Aliases: []string{"sightseeing", "photo ops", "views", "landmark", "tourist-meets-local"}},
	{Canonical: "art", Aliases: []string{"art", "culture", "gallery", "inspiration", "museum", "pastry-as-art"}},
	{Canonical: "walk", Aliases: []string{"walk", "walkable", "outdoors", "green space", "park"}},
	{Canonical: "food-hall", Aliases: []string{"food hall", "market", "wander-and-graze", "busy market energy"}},
	{Canonical: "quick-bite", Aliases: []string{"fast", "quick recharge", "midday fuel", "walk-up", "grab-and-go", "portable", "street food energy", "24-hour snack vibe", "NYC to-go"}},
	{Canonical: "comfort", Aliases: []string{"comfort", "cozy", "family warmth", "family-friendly Tribeca brunch", "Southern comfort", "home-baked", "warm counter"}},
	{Canonical: "sweet", Aliases: []string{"sweet-treat", "dessert case", "cookie temple", "house-baked cookies", "Belle-Époque dessert cart", "cream cheese frosting mountain", "hot chocolate ritual"}},
	{Canonical: "deli", Aliases: []string{"deli", "bagel counter", "bagel drop", "Jewish appetizing landmark", "old-school lox case", "Jamaican beef patty stand"}},
	{Canonical: "matcha", Aliases: []string{"matcha", "tea bar", "tea house", "Taiwanese tea house"}},
	{Canonical: "specialty", Aliases: []string{"local specialty", "only-in-NYC", "cult following", "cult preorders", "limited batches", "micro-batch", "small-batch pastry"}},
	{Canonical: "modern", Aliases: []string{"modern café", "modern pastry lab", "futurist French", "glow-in-the-dark pastry lab", "croissant experiments"}},
	{Canonical: "authentic", Aliases: []string{"family-run", "Harlem icon", "Palestinian restaurant", "Cantonese dim sum", "dumpling-focused", "old-school Chinese bakery", "Southern + global soul food"}},
}

var builtinEnergyGroups = []SynonymGroup{
	{Canonical: "quiet", Aliases: []string{"quiet", "calm", "soft-volume", "gentle conversation", "low volume", "soft-spoken", "quiet focus", "quiet admiration"}},
	{Canonical: "cozy", Aliases: []string{"cozy", "intimate", "warm", "homey", "comfort-food cozy", "soft lighting", "low lighting", "warm wood tones", "warm staff"}},
	{Canonical: "lively", Aliases: []string{"lively", "bustling", "busy", "buzzy", "chatty", "chattery", "lively tables", "lively dining room", "lively but not chaotic", "pleasant hum", "soft buzz"}},
	{Canonical: "crowded", Aliases: []string{"crowded", "packed", "high foot traffic", "busy brunch hours", "busy weekend mornings", "busy counter", "line out the door", "lines", "line-y", "line culture", "cash line", "comfortably chaotic brunch rush", "tightly packed", "tight space"}},
	{Canonical: "social", Aliases: []string{"social", "friendly", "welcoming", "community energy", "friendly service", "friendly counter", "family tables", "sit-and-chat"}},
	{Canonical: "dimly-lit", Aliases: []string{"dimly lit", "night-out", "night-out energy", "date-y", "romantic"}},
	{Canonical: "relaxed", Aliases: []string{"relaxed", "unhurried", "idle-paced", "laid-back", "low-key", "chill", "slow pace", "slow enjoyment", "slow afternoon", "gentle morning pace", "camp-out-with-a-book"}},
	{Canonical: "touristy", Aliases: []string{"touristy", "wallet-danger", "touristy energy", "refined tourist energy", "celebratory", "special occasion", "treat-yourself", "treat as event"}},
	{Canonical: "fast-paced", Aliases: []string{"fast", "rushy", "fast turnover", "fast-moving", "efficient", "on-the-go", "grab-and-go", "quick bite", "counter service", "counter-service", "take-a-number"}},
	{Canonical: "aesthetic", Aliases: []string{"aesthetic", "Instagram latte art", "flower-wall energy", "blue-and-white branding", "social media hype", "loud visuals", "polished"}},
	{Canonical: "casual", Aliases: []string{"casual", "no-frills", "straightforward", "informal", "walk-in", "walk-up window", "drop-by", "slightly gruff"}},
	{Canonical: "local", Aliases: []string{"local", "neighborhood-y", "local regulars", "neighborhood loyalists", "neighborhood slow burn", "writer hangout", "grad student energy"}},
	{Canonical: "solo-friendly", Aliases: []string{"solo-friendly", "lingering laptops", "coffee date", "order-and-relax", "coffee-sip calm", "weekday coffee break"}},
	{Canonical: "family-friendly", Aliases: []string{"family-friendly", "family tables", "stroller energy", "welcoming"}},
	{Canonical: "bustling", Aliases: []string{"midday bustle", "mild bustle", "AM foot traffic", "morning rush", "morning line", "Brooklyn buzz", "busy brunch hours"}},
	{Canonical: "calm-indoors", Aliases: []string{"indoors", "calm indoors", "reflective", "ritual-y", "soft chatter", "light chatter", "low hum"}},
	{Canonical: "outdoors", Aliases: []string{"outdoors", "open air", "open space", "fresh air", "street-adjacent", "active", "people-watching"}},
	{Canonical: "hyped", Aliases: []string{"hyped", "high anticipation", "DM-to-order", "DM-to-get-it energy", "limited runs", "limited batches", "small batch"}},
	{Canonical: "elegant", Aliases: []string{"elegant", "polished", "refined", "delicate", "decadent", "soft music", "soft pop playlist"}},
	{Canonical: "energetic", Aliases: []string{"loud", "rowdy brunch crowd", "night-out", "late-night", "late-night weirdos", "sugar rush"}},
}

// BuiltinVibeMapping returns the builtin vibe dimension mapping.
// Construction cannot fail: the builtin tables are validated by tests.
func BuiltinVibeMapping() *Mapping {
	m, err := NewMapping(DimensionVibe, builtinVibeGroups)
	if err != nil {
		panic(err)
	}
	return m
}

// BuiltinEnergyMapping returns the builtin energy dimension mapping.
func BuiltinEnergyMapping() *Mapping {
	m, err := NewMapping(DimensionEnergy, builtinEnergyGroups)
	if err != nil {
		panic(err)
	}
	return m
}
