package model

// Default vocabulary for the analyzer. These are plain values handed to the
// analysis functions through Config, not package state: callers may replace
// any of them wholesale.

// DefaultProducts is the stock product selection list
func DefaultProducts() []string {
	return []string{
		"CeraVe", "The Ordinary", "La Roche-Posay", "Paula's Choice", "SkinCeuticals",
		"Drunk Elephant", "Supergoop", "EltaMD", "Tretinoin", "Kojic Acid",
		"Azelaic Acid", "Niacinamide", "Hyaluronic Acid", "Vitamin C Serum", "Anthelios",
	}
}

// DefaultClaimTaxonomy returns the fixed claim categories in precedence order.
// The first category whose keyword appears in a comment wins.
func DefaultClaimTaxonomy() []ClaimCategory {
	return []ClaimCategory{
		{Label: "Fades Dark Spots / Hyperpigmentation", Keywords: []string{"hyperpigmentation", "dark spots", "pih", "melasma", "even tone", "brighter"}},
		{Label: "Helps Acne / Breakouts", Keywords: []string{"acne", "pimples", "breakouts", "clogged pores", "comedones"}},
		{Label: "Anti-Aging / Wrinkles", Keywords: []string{"anti-aging", "wrinkles", "fine lines", "aging", "retinol", "tretinoin"}},
		{Label: "Hydration / Moisturizing", Keywords: []string{"hydration", "dry skin", "moisture", "hydrating", "moisturizer", "plump"}},
		{Label: "Sun Protection", Keywords: []string{"sunscreen", "spf", "sun protection", "uv", "white cast"}},
		{Label: "Improves Skin Texture", Keywords: []string{"texture", "smooth", "bumpy", "keratosis pilaris", "kp", "pores"}},
	}
}

// DefaultStopWords returns the stop-word set used by the keyword extractor:
// a standard English list plus additions for the skincare domain.
func DefaultStopWords() map[string]bool {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are", "aren't", "as", "at",
		"be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
		"can", "can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't", "doing", "don", "don't",
		"down", "during", "each", "few", "for", "from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
		"having", "he", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself", "him", "himself", "his", "how",
		"how's", "i", "i'd", "i'll", "i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself",
		"let's", "me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not", "of", "off", "on", "once", "only",
		"or", "other", "ought", "our", "ours", "ourselves", "out", "over", "own", "same", "shan", "shan't", "she", "she'd",
		"she'll", "she's", "should", "shouldn't", "so", "some", "such", "than", "that", "that's", "the", "their", "theirs",
		"them", "themselves", "then", "there", "there's", "these", "they", "they'd", "they'll", "they're", "they've", "this",
		"those", "through", "to", "too", "under", "until", "up", "very", "was", "wasn't", "we", "we'd", "we'll", "we're",
		"we've", "were", "weren't", "what", "what's", "when", "when's", "where", "where's", "which", "while", "who", "who's",
		"whom", "why", "why's", "with", "won", "won't", "would", "wouldn't", "you", "you'd", "you'll", "you're", "you've",
		"your", "yours", "yourself", "yourselves",
		// Domain additions: words so common in skincare threads they carry no signal
		"skin", "product", "products", "use", "using", "like", "get", "help", "really", "ive", "im", "would",
		"routine", "feel", "look",
	}

	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
