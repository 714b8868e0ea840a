package models

// Categories lists the labels shown in the navigation submenu.
var Categories = []string{"Lifestyle", "Travel", "Technology", "Food", "Health", "Culture"}

// Palette is the fixed set of colors the gradient heading draws from.
var Palette = []string{
	"#c084fc", // purple-400
	"#db2777", // pink-600
	"#60a5fa", // blue-400
	"#34d399", // emerald-400
	"#fbbf24", // amber-400
	"#f87171", // red-400
	"#22d3ee", // cyan-400
	"#818cf8", // indigo-400
	"#e879f9", // fuchsia-400
	"#fb923c", // orange-400
}

// DefaultGradient is the heading gradient before the first tick.
var DefaultGradient = GradientPair{From: "#c084fc", To: "#db2777"}

// NavLinks are the top-level header entries around the Categories submenu.
var NavLinks = []Link{
	{Label: "Home", Href: "#"},
	{Label: "About", Href: "#"},
	{Label: "Contact", Href: "#"},
}

// SocialLinks are the footer links.
var SocialLinks = []Link{
	{Label: "Facebook", Href: "#"},
	{Label: "Twitter", Href: "#"},
	{Label: "Instagram", Href: "#"},
	{Label: "LinkedIn", Href: "#"},
}

// DefaultPosts returns a fresh copy of the posts shown on the landing page.
func DefaultPosts() []*Post {
	return []*Post{
		{
			ID:       1,
			Title:    "The Art of Mindful Living",
			Excerpt:  "Discover how mindfulness practices can transform your daily life and bring a sense of peace to your routine.",
			Date:     "June 15, 2023",
			Category: "Lifestyle",
			ReadTime: "5 min read",
		},
		{
			ID:       2,
			Title:    "Exploring Hidden Gems in South America",
			Excerpt:  "From the lush Amazon rainforest to the pristine beaches of Uruguay, South America offers countless hidden treasures.",
			Date:     "May 28, 2023",
			Category: "Travel",
			ReadTime: "8 min read",
		},
		{
			ID:       3,
			Title:    "The Future of Sustainable Tech",
			Excerpt:  "How eco-friendly innovations are reshaping the technology landscape and creating a more sustainable future.",
			Date:     "April 10, 2023",
			Category: "Technology",
			ReadTime: "6 min read",
		},
		{
			ID:       4,
			Title:    "Essential Cooking Techniques Everyone Should Know",
			Excerpt:  "Master these fundamental cooking methods to elevate your culinary skills and impress your dinner guests.",
			Date:     "March 22, 2023",
			Category: "Food",
			ReadTime: "7 min read",
		},
	}
}
