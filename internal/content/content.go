// Package content holds the static psychoeducational articles and
// crisis hotlines shown by the hub and SOS views.
package content

type Category string

const (
	CategorySigns  Category = "signs"
	CategoryMyths  Category = "myths"
	CategoryHelp   Category = "helping"
	CategoryCoping Category = "coping"
)

type Article struct {
	ID       string
	Category Category
	Title    string
	Content  string
}

type EmergencyContact struct {
	Name        string
	Number      string
	Description string
}

var Articles = []Article{
	{
		ID:       "1",
		Category: CategorySigns,
		Title:    "Warning Signs to Watch For",
		Content: "Suicide doesn't always have obvious \"tells,\" but there are often behavioral changes.\n\n" +
			"Look for: talking about wanting to die, extreme mood swings, giving away prized possessions, " +
			"withdrawing from friends, or sleeping too much/little.\n\n" +
			"If someone is exhibiting these behaviors, especially if they are new or increased, it's time to reach out.",
	},
	{
		ID:       "2",
		Category: CategoryMyths,
		Title:    "Myths vs. Facts",
		Content: "Myth: Asking someone if they are suicidal will plant the idea in their head.\n\n" +
			"Fact: Research shows that asking directly about suicide actually reduces the risk and provides " +
			"the individual with a sense of relief that someone noticed.\n\n" +
			"Myth: Only people with mental health issues die by suicide.\n\n" +
			"Fact: Many factors contribute to suicide, including stress, financial hardship, and relationship problems.",
	},
	{
		ID:       "3",
		Category: CategoryHelp,
		Title:    "How to Help a Friend",
		Content: "1. Ask directly: \"Are you thinking about suicide?\"\n\n" +
			"2. Listen without judgment.\n\n" +
			"3. Keep them safe: reduce access to lethal means.\n\n" +
			"4. Help them connect: contact a crisis line or professional.\n\n" +
			"5. Stay in touch: follow-up matters significantly in recovery.",
	},
	{
		ID:       "4",
		Category: CategoryCoping,
		Title:    "Immediate Coping Strategies",
		Content: "When feeling overwhelmed:\n\n" +
			"1. Try the 5-4-3-2-1 grounding technique.\n\n" +
			"2. Reach out to a trusted \"safe person\".\n\n" +
			"3. Delay any decisions for just 5 minutes, then another 5.\n\n" +
			"4. Use a physical distraction like holding an ice cube.\n\n" +
			"5. Remember that feelings are temporary, even if they feel permanent right now.",
	},
}

var EmergencyContacts = []EmergencyContact{
	{
		Name:        "Mental Illness Awareness & Support Lifeline",
		Number:      "1800 180 066",
		Description: "24/7, free and confidential support by MIASA Association.",
	},
	{
		Name:        "Talian Kasih Lifeline",
		Number:      "15999",
		Description: "Or text +6019 261 5999 to connect using WhatsApp Messenger.",
	},
}
