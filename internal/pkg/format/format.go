// Package format holds the display formatting helpers: pure, deterministic
// functions from raw domain values to en-IN display strings.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"swapsociety-backend/internal/domain"
)

const rupee = "₹"

// FormatPrice renders an amount of rupees with the Indian digit grouping and
// no decimals, e.g. 65000 → "₹65,000". Negative amounts are out of contract
// but render with a leading minus rather than crashing.
func FormatPrice(amount int64) string {
	if amount < 0 {
		return "-" + rupee + groupIndian(strconv.FormatInt(-amount, 10))
	}
	return rupee + groupIndian(strconv.FormatInt(amount, 10))
}

// groupIndian inserts commas per the Indian numbering system: the last three
// digits form one group, everything above groups by two (12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}

// FormatDate renders an ISO-8601 timestamp as "D Mon YYYY" (en-IN), e.g.
// "2 Jan 2006". Unparseable input renders as "Invalid Date".
func FormatDate(dateString string) string {
	t, err := time.Parse(time.RFC3339, dateString)
	if err != nil {
		return "Invalid Date"
	}
	return t.Format("2 Jan 2006")
}

// timeAgo units, largest first. Month is a fixed 30 days, year 365.
var timeAgoIntervals = []struct {
	seconds int64
	unit    string
}{
	{31536000, "year"},
	{2592000, "month"},
	{86400, "day"},
	{3600, "hour"},
	{60, "minute"},
	{1, "second"},
}

// TimeAgo reports how long ago the given ISO-8601 timestamp was, using the
// largest applicable unit ("2 days ago", "1 minute ago"). Under one second of
// elapsed time — including future timestamps — it reports "just now".
func TimeAgo(dateString string) string {
	t, err := time.Parse(time.RFC3339, dateString)
	if err != nil {
		return "just now"
	}
	return timeAgoAt(t, time.Now())
}

func timeAgoAt(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	for _, iv := range timeAgoIntervals {
		count := seconds / iv.seconds
		if count >= 1 {
			if count == 1 {
				return fmt.Sprintf("1 %s ago", iv.unit)
			}
			return fmt.Sprintf("%d %ss ago", count, iv.unit)
		}
	}
	return "just now"
}

// Truncate returns text unchanged when it fits in maxLen runes; otherwise the
// first maxLen runes, right-trimmed, with a single ellipsis appended.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimRight(string(runes[:maxLen]), " \t\n") + "…"
}

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_]+`)
	slugTrimRe     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify lowercases, strips everything outside word/space/hyphen, collapses
// whitespace and underscore runs to single hyphens, and trims edge hyphens.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return slugTrimRe.ReplaceAllString(s, "")
}

// CategoryInfoFor is the total lookup into the category table. Unknown values
// fall back to the "Other" entry; with the closed enum that branch should be
// unreachable, it exists so the UI never breaks on stale state.
func CategoryInfoFor(category domain.Category) domain.CategoryInfo {
	for _, info := range domain.Categories {
		if info.ID == category {
			return info
		}
	}
	return domain.Categories[len(domain.Categories)-1]
}
