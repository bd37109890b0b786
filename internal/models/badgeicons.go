package models

// BadgeIcon maps a backend icon name to a renderable glyph reference. The
// glyph is an opaque identifier the templates resolve to an SVG sprite; the
// data model does not care how it is drawn.
type BadgeIcon struct {
	Name     string
	Glyph    string
	Category string
}

// FallbackBadgeIcon is rendered when the backend names an icon this catalogue
// does not know.
var FallbackBadgeIcon = BadgeIcon{Name: "Award", Glyph: "award", Category: "Achievement"}

// BadgeIcons is the static catalogue offered by the badge customizer.
var BadgeIcons = []BadgeIcon{
	// Achievement
	{Name: "Trophy", Glyph: "trophy", Category: "Achievement"},
	{Name: "Star", Glyph: "star", Category: "Achievement"},
	{Name: "Medal", Glyph: "medal", Category: "Achievement"},
	{Name: "Award", Glyph: "award", Category: "Achievement"},
	{Name: "Crown", Glyph: "crown", Category: "Achievement"},
	{Name: "Gem", Glyph: "gem", Category: "Achievement"},
	{Name: "Diamond", Glyph: "diamond", Category: "Achievement"},
	// Energy
	{Name: "Flame", Glyph: "flame", Category: "Energy"},
	{Name: "Zap", Glyph: "zap", Category: "Energy"},
	{Name: "Rocket", Glyph: "rocket", Category: "Energy"},
	{Name: "Target", Glyph: "target", Category: "Energy"},
	{Name: "Shield", Glyph: "shield", Category: "Energy"},
	{Name: "ShieldCheck", Glyph: "shield-check", Category: "Energy"},
	// Education
	{Name: "GraduationCap", Glyph: "graduation-cap", Category: "Education"},
	{Name: "BookOpen", Glyph: "book-open", Category: "Education"},
	{Name: "Brain", Glyph: "brain", Category: "Education"},
	{Name: "Lightbulb", Glyph: "lightbulb", Category: "Education"},
	{Name: "Sparkles", Glyph: "sparkles", Category: "Education"},
	// Emotion
	{Name: "Heart", Glyph: "heart", Category: "Emotion"},
	{Name: "ThumbsUp", Glyph: "thumbs-up", Category: "Emotion"},
	{Name: "PartyPopper", Glyph: "party-popper", Category: "Emotion"},
	{Name: "Gift", Glyph: "gift", Category: "Emotion"},
	{Name: "Music", Glyph: "music", Category: "Emotion"},
	// Tech
	{Name: "Code", Glyph: "code", Category: "Tech"},
	{Name: "Terminal", Glyph: "terminal", Category: "Tech"},
	{Name: "Globe", Glyph: "globe", Category: "Tech"},
	{Name: "Cpu", Glyph: "cpu", Category: "Tech"},
	{Name: "Database", Glyph: "database", Category: "Tech"},
	{Name: "Atom", Glyph: "atom", Category: "Tech"},
	// Creative
	{Name: "Palette", Glyph: "palette", Category: "Creative"},
	{Name: "PenTool", Glyph: "pen-tool", Category: "Creative"},
	{Name: "Camera", Glyph: "camera", Category: "Creative"},
	{Name: "Film", Glyph: "film", Category: "Creative"},
	{Name: "Gamepad2", Glyph: "gamepad-2", Category: "Creative"},
	// Nature
	{Name: "Mountain", Glyph: "mountain", Category: "Nature"},
	{Name: "Trees", Glyph: "trees", Category: "Nature"},
	{Name: "Compass", Glyph: "compass", Category: "Nature"},
	{Name: "Map", Glyph: "map", Category: "Nature"},
	{Name: "Anchor", Glyph: "anchor", Category: "Nature"},
	{Name: "Sailboat", Glyph: "sailboat", Category: "Nature"},
	{Name: "Sun", Glyph: "sun", Category: "Nature"},
	{Name: "Moon", Glyph: "moon", Category: "Nature"},
	// Fun
	{Name: "Bug", Glyph: "bug", Category: "Fun"},
	{Name: "Cat", Glyph: "cat", Category: "Fun"},
	{Name: "Dog", Glyph: "dog", Category: "Fun"},
	{Name: "Bird", Glyph: "bird", Category: "Fun"},
	{Name: "Fish", Glyph: "fish", Category: "Fun"},
}

var badgeIconIndex = func() map[string]BadgeIcon {
	index := make(map[string]BadgeIcon, len(BadgeIcons))
	for _, icon := range BadgeIcons {
		index[icon.Name] = icon
	}
	return index
}()

// BadgeIconByName resolves an icon name, falling back for unknown names.
func BadgeIconByName(name string) BadgeIcon {
	if icon, ok := badgeIconIndex[name]; ok {
		return icon
	}
	return FallbackBadgeIcon
}

// KnownBadgeIcon reports whether the name exists in the catalogue.
func KnownBadgeIcon(name string) bool {
	_, ok := badgeIconIndex[name]
	return ok
}

// BadgeIconCategories returns the catalogue's categories in display order.
func BadgeIconCategories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0, 8)
	for _, icon := range BadgeIcons {
		if _, ok := seen[icon.Category]; ok {
			continue
		}
		seen[icon.Category] = struct{}{}
		categories = append(categories, icon.Category)
	}
	return categories
}

// BadgeIconsInCategory filters the catalogue by category.
func BadgeIconsInCategory(category string) []BadgeIcon {
	icons := make([]BadgeIcon, 0, 8)
	for _, icon := range BadgeIcons {
		if icon.Category == category {
			icons = append(icons, icon)
		}
	}
	return icons
}
