package layouts

// siteName is appended to every page title.
const siteName = "Tailwind Upgrade Notes"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + siteName
	}
	return siteName
}
